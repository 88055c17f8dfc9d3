package site

import (
	"fmt"

	"bestdental/models"
)

// PrivacySections returns the privacy policy, with contact details taken
// from the clinic profile.
func (s *DefaultSiteService) PrivacySections() []models.LegalSection {
	c := s.Content.Clinic()

	return []models.LegalSection{
		{
			ID:    "collect",
			Title: "Information We Collect",
			Summary: "We collect information you provide directly to us, including your name, phone number, " +
				"email address, and any other information you choose to provide when booking an appointment or contacting us.",
		},
		{
			ID:      "use",
			Title:   "How We Use Your Information",
			Summary: "We use the information we collect to:",
			Items: []string{
				"Process and confirm your appointment bookings",
				"Contact you regarding your appointments and dental care",
				"Send appointment reminders via WhatsApp or SMS",
				"Respond to your inquiries and provide customer support",
				"Improve our services and patient experience",
			},
		},
		{
			ID:    "sharing",
			Title: "Information Sharing",
			Summary: "We do not sell, trade, or otherwise transfer your personal information to third parties. " +
				"Your information is kept confidential and is only used for the purposes stated in this policy.",
		},
		{
			ID:    "security",
			Title: "Data Security",
			Summary: "We implement appropriate security measures to protect your personal information against " +
				"unauthorized access, alteration, disclosure, or destruction.",
		},
		{
			ID:    "rights",
			Title: "Your Rights",
			Summary: fmt.Sprintf("You have the right to access, correct, or delete your personal information. "+
				"Contact us at %s to exercise these rights.", c.Email),
		},
		{
			ID:      "contact",
			Title:   "Contact Us",
			Summary: "If you have questions about this Privacy Policy, please contact us at:",
			Items: []string{
				"Email: " + c.Email,
				"Phone: " + c.Phone,
				fmt.Sprintf("Address: %s, %s, %s", c.Address.Street, c.Address.Locality, c.Address.Region),
			},
		},
	}
}

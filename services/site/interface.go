package site

import (
	"time"

	"bestdental/models"
	"bestdental/services/booking"
)

// SiteService assembles everything the public pages render.
type SiteService interface {
	Clinic() models.Clinic
	Services() []models.DentalService
	Service(slug string) (*models.DentalService, error)
	// BookingOptions is the catalog followed by the consultation and
	// "other" entries.
	BookingOptions() []booking.ServiceOption
	BookingSchema(today time.Time) booking.Schema
	Testimonials() []models.Testimonial
	Team() []models.TeamMember
	Gallery() models.Gallery
	PrivacySections() []models.LegalSection

	// StructuredData returns the JSON-LD Dentist document.
	StructuredData() []byte
	Sitemap(now time.Time) ([]byte, error)
	Robots() string
	BaseURL() string
}

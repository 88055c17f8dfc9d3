package booking

import "strings"

// WhatsAppBaseURL is the click-to-chat host.
const WhatsAppBaseURL = "https://wa.me"

// ComposeMessage renders the prefilled chat message for a cleaned request.
func ComposeMessage(clinic string, r Request) string {
	var b strings.Builder
	b.WriteString("Hello! I'd like to book an appointment at " + clinic + ".\n\n")
	b.WriteString("Name: " + r.Name + "\n")
	b.WriteString("Service: " + r.Service + "\n")
	b.WriteString("Preferred Date: " + r.Date + "\n")
	if r.Message != "" {
		b.WriteString("Notes: " + r.Message + "\n")
	}
	b.WriteString("\nPlease confirm my appointment. Thank you!")
	return b.String()
}

// DeepLink builds the click-to-chat URL for contact with text prefilled.
func DeepLink(contact, text string) string {
	return WhatsAppBaseURL + "/" + contact + "?text=" + EncodeURIComponent(text)
}

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s the way browsers' encodeURIComponent
// does: everything but A-Z a-z 0-9 - _ . ! ~ * ' ( ) is escaped, spaces
// become %20.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

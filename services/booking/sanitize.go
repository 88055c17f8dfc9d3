package booking

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFieldLength caps every sanitized text field, in characters.
const MaxFieldLength = 500

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// Sanitize strips angle brackets, trims surrounding whitespace and truncates
// to MaxFieldLength characters. It is a deterrent, not an escaping layer:
// quotes and other script contexts pass through. Sanitize(Sanitize(s)) ==
// Sanitize(s).
func Sanitize(s string) string {
	s = strings.TrimSpace(angleBrackets.Replace(s))
	if utf8.RuneCountInString(s) <= MaxFieldLength {
		return s
	}
	runes := []rune(s)
	// Truncation can expose trailing whitespace; trim again so a second
	// pass is a no-op.
	return strings.TrimSpace(string(runes[:MaxFieldLength]))
}

// NormalizePhone removes whitespace and hyphens.
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

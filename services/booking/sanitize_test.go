package booking

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Jane Doe", "Jane Doe"},
		{"trims", "  Jane Doe \n", "Jane Doe"},
		{"drops angle brackets", "<script>alert(1)</script>", "scriptalert(1)/script"},
		{"keeps quotes", `O'Brien "Jr"`, `O'Brien "Jr"`},
		{"only brackets", " <> ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitize_Truncates(t *testing.T) {
	long := strings.Repeat("a", 600)
	assert.Equal(t, MaxFieldLength, utf8.RuneCountInString(Sanitize(long)))

	// Multi-byte characters count once.
	accented := strings.Repeat("é", 700)
	out := Sanitize(accented)
	assert.Equal(t, MaxFieldLength, utf8.RuneCountInString(out))
	assert.True(t, utf8.ValidString(out))
}

func TestSanitize_Properties(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"<b>bold</b>",
		strings.Repeat("x", 499) + " " + strings.Repeat("y", 100),
		strings.Repeat("ab ", 300),
		" <" + strings.Repeat("z", 520) + "> ",
		strings.Repeat("<", 1000),
		"tab\tand\nnewline",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "sanitize must be idempotent for %q", in)
		assert.NotContains(t, once, "<")
		assert.NotContains(t, once, ">")
		assert.LessOrEqual(t, utf8.RuneCountInString(once), MaxFieldLength)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+254712345678", NormalizePhone("+254 712-345 678"))
	assert.Equal(t, "0712345678", NormalizePhone("\t0712 345678 "))
	assert.Equal(t, "(07)12", NormalizePhone("(07)12"))
}

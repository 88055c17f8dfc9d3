package booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+254712345678", true},
		{"254712345678", true},
		{"+254 712 345 678", true},
		{"+254-712-345-678", true},
		{"12345678", true},          // 8 significant digits
		{"123456789012345", true},   // 15 significant digits
		{"1234567", false},          // 7 digits
		{"1234567890123456", false}, // 16 digits
		{"12345", false},
		{"0712345678", false}, // leading zero
		{"+0712345678", false},
		{"++254712345678", false},
		{"+254712345678x", false},
		{"(254)712345678", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidPhone(tt.phone))
		})
	}
}

func TestValidator_Check(t *testing.T) {
	v := NewValidator()

	valid := Request{Name: "Jane Doe", Phone: "+254712345678", Service: "teeth-whitening", Date: "2025-01-01"}
	assert.Empty(t, v.Check(valid))

	errs := v.Check(Request{Name: "   ", Phone: "12345", Date: "2025-01-01"})
	assert.Equal(t, FieldErrors{
		FieldName:    CodeRequired,
		FieldPhone:   CodeInvalidFormat,
		FieldService: CodeRequired,
	}, errs)
	assert.Equal(t, []string{FieldName, FieldService}, errs.Missing())

	errs = v.Check(Request{Name: "Jane", Service: "other", Date: "2025-01-01"})
	assert.Equal(t, FieldErrors{FieldPhone: CodeRequired}, errs)
}

func TestFieldErrorText(t *testing.T) {
	assert.Equal(t, "Name is required", FieldErrorText(FieldName, CodeRequired))
	assert.Equal(t, "Please enter a valid phone number (e.g., +254712345678)", FieldErrorText(FieldPhone, CodeInvalidFormat))
	assert.Equal(t, "Please check this field", FieldErrorText(FieldMessage, CodeRequired))
}

func TestBuildSchema(t *testing.T) {
	options := []ServiceOption{{Value: "braces", Label: "Braces"}, ConsultationOption, OtherOption}
	schema := BuildSchema(options, time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, "2025-03-09", schema.MinDate)
	require.Len(t, schema.Fields, 5)
	assert.Equal(t, PhonePattern, schema.Fields[1].Pattern)
	assert.False(t, schema.Fields[4].Required)

	raw, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"pattern":"^\\+?[1-9]\\d{7,14}$"`)
	assert.Contains(t, string(raw), `"value":"consultation"`)
}

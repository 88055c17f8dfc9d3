package booking

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// PhonePattern accepts an optional "+", a leading 1-9 and 7 to 14 more
// digits. It is applied after NormalizePhone.
const PhonePattern = `^\+?[1-9]\d{7,14}$`

var phoneRe = regexp.MustCompile(PhonePattern)

// ValidPhone reports whether raw is a valid phone number once normalized.
func ValidPhone(raw string) bool {
	return phoneRe.MatchString(NormalizePhone(raw))
}

// FieldErrors maps a field name to the rule it failed.
type FieldErrors map[string]Code

// Missing returns the fields that failed Required, in form order.
func (fe FieldErrors) Missing() []string {
	var out []string
	for _, f := range Fields {
		if fe[f] == CodeRequired {
			out = append(out, f)
		}
	}
	return out
}

// Validator checks a Request against the struct tags on Request.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

// Check validates r with surrounding whitespace ignored. An empty map means
// the request is acceptable.
func (v *Validator) Check(r Request) FieldErrors {
	errs := FieldErrors{}
	err := v.validate.Struct(r.trimmed())
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			errs[fe.Field()] = CodeRequired
		} else {
			errs[fe.Field()] = CodeInvalidFormat
		}
	}
	return errs
}

var fieldMessages = map[string]map[Code]string{
	FieldName: {
		CodeRequired: "Name is required",
	},
	FieldPhone: {
		CodeRequired:      "Phone number is required",
		CodeInvalidFormat: "Please enter a valid phone number (e.g., +254712345678)",
	},
	FieldService: {
		CodeRequired: "Please select a service",
	},
	FieldDate: {
		CodeRequired: "Please select a preferred date",
	},
}

// FieldErrorText returns the inline message for a field error.
func FieldErrorText(field string, code Code) string {
	if msg, ok := fieldMessages[field][code]; ok {
		return msg
	}
	return "Please check this field"
}

// ServiceOption is one entry of the service picker.
type ServiceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Fixed picker entries offered after the catalog.
var (
	ConsultationOption = ServiceOption{Value: "consultation", Label: "General Consultation"}
	OtherOption        = ServiceOption{Value: "other", Label: "Other"}
)

// FieldRule describes one field to the browser.
type FieldRule struct {
	Name      string          `json:"name"`
	Required  bool            `json:"required"`
	MaxLength int             `json:"maxLength"`
	Pattern   string          `json:"pattern,omitempty"`
	Messages  map[Code]string `json:"messages,omitempty"`
}

// Schema is the client copy of the validation rules, served as JSON so the
// browser and the server read the same definitions.
type Schema struct {
	Fields   []FieldRule     `json:"fields"`
	Services []ServiceOption `json:"services"`
	MinDate  string          `json:"minDate"`
}

// BuildSchema returns the rules plus the service options. minDate only
// constrains the date picker; the server does not enforce it.
func BuildSchema(services []ServiceOption, today time.Time) Schema {
	rules := make([]FieldRule, 0, len(Fields))
	for _, f := range Fields {
		rule := FieldRule{
			Name:      f,
			Required:  f != FieldMessage,
			MaxLength: MaxFieldLength,
			Messages:  fieldMessages[f],
		}
		if f == FieldPhone {
			rule.Pattern = PhonePattern
		}
		rules = append(rules, rule)
	}
	return Schema{
		Fields:   rules,
		Services: services,
		MinDate:  today.Format("2006-01-02"),
	}
}

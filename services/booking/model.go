package booking

import (
	"strings"
	"time"
)

const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldService = "service"
	FieldDate    = "date"
	FieldMessage = "message"
)

// Fields lists the form fields in display order.
var Fields = []string{FieldName, FieldPhone, FieldService, FieldDate, FieldMessage}

// Request is a booking submission as the visitor typed it. It is never
// stored: it is validated, turned into a deep link and dropped.
type Request struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Phone   string `json:"phone" form:"phone" validate:"required,phone"`
	Service string `json:"service" form:"service" validate:"required"`
	Date    string `json:"date" form:"date" validate:"required"`
	Message string `json:"message,omitempty" form:"message"`
}

// Get returns the value of the named field.
func (r Request) Get(field string) string {
	switch field {
	case FieldName:
		return r.Name
	case FieldPhone:
		return r.Phone
	case FieldService:
		return r.Service
	case FieldDate:
		return r.Date
	case FieldMessage:
		return r.Message
	}
	return ""
}

// Set assigns the named field and reports whether the field exists.
func (r *Request) Set(field, value string) bool {
	switch field {
	case FieldName:
		r.Name = value
	case FieldPhone:
		r.Phone = value
	case FieldService:
		r.Service = value
	case FieldDate:
		r.Date = value
	case FieldMessage:
		r.Message = value
	default:
		return false
	}
	return true
}

func (r Request) trimmed() Request {
	return Request{
		Name:    strings.TrimSpace(r.Name),
		Phone:   strings.TrimSpace(r.Phone),
		Service: strings.TrimSpace(r.Service),
		Date:    strings.TrimSpace(r.Date),
		Message: strings.TrimSpace(r.Message),
	}
}

// Clean returns the sanitized request: text fields go through Sanitize and
// the phone number is normalized.
func (r Request) Clean() Request {
	return Request{
		Name:    Sanitize(r.Name),
		Phone:   NormalizePhone(r.Phone),
		Service: Sanitize(r.Service),
		Date:    Sanitize(r.Date),
		Message: Sanitize(r.Message),
	}
}

// Result is a processed booking request.
type Result struct {
	Reference   string
	Message     string
	WhatsAppURL string
	Booking     Request
	ReceivedAt  time.Time
}

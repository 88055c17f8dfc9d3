package booking

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies booking failures.
type Code string

const (
	CodeRequired      Code = "Required"
	CodeInvalidFormat Code = "InvalidFormat"
	CodeMissingFields Code = "MissingFields"
	CodeRateLimited   Code = "RateLimited"
	CodeInternal      Code = "InternalError"
)

// User-facing messages. None of them carries internal detail.
const (
	MsgMissingFields = "Missing required fields"
	MsgInvalidPhone  = "Invalid phone number format"
	MsgRateLimited   = "Too many requests. Please try again later."
	MsgInternal      = "Failed to process booking. Please try again."
)

// Error is a terminal failure of one submission attempt.
type Error struct {
	Code    Code
	Message string
	Fields  []string
	Err     error
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NewMissingFieldsError(fields []string) error {
	return &Error{Code: CodeMissingFields, Message: MsgMissingFields, Fields: fields}
}

func NewInvalidPhoneError() error {
	return &Error{Code: CodeInvalidFormat, Message: MsgInvalidPhone, Fields: []string{FieldPhone}}
}

func NewRateLimitedError() error {
	return &Error{Code: CodeRateLimited, Message: MsgRateLimited}
}

func NewInternalError(err error) error {
	return &Error{Code: CodeInternal, Message: MsgInternal, Err: err}
}

// CodeOf returns the code carried by err, or CodeInternal for anything else.
func CodeOf(err error) Code {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}
	return CodeInternal
}

// PublicMessage returns the text that may be shown to the caller for err.
func PublicMessage(err error) string {
	var be *Error
	if errors.As(err, &be) && be.Code != CodeInternal {
		return be.Message
	}
	return MsgInternal
}

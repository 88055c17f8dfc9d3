// Package bookingform holds the booking form's client state machine. The
// browser script mirrors it; the no-JS fallback drives it on the server.
package bookingform

import (
	"context"
	"sync"

	"bestdental/services/booking"
)

type State int

const (
	Editing State = iota
	Submitting
	Success
	EditingWithError
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case EditingWithError:
		return "editing_with_error"
	}
	return "unknown"
}

// Submitter sends a request to the booking endpoint.
type Submitter interface {
	SubmitBooking(ctx context.Context, req booking.Request) (*booking.Result, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, req booking.Request) (*booking.Result, error)

func (f SubmitterFunc) SubmitBooking(ctx context.Context, req booking.Request) (*booking.Result, error) {
	return f(ctx, req)
}

// ServiceSubmitter submits through a BookingService on behalf of one caller.
type ServiceSubmitter struct {
	Service   booking.BookingService
	CallerKey string
}

func (s ServiceSubmitter) SubmitBooking(ctx context.Context, req booking.Request) (*booking.Result, error) {
	return s.Service.Submit(ctx, s.CallerKey, req)
}

// View is a snapshot of the form for rendering.
type View struct {
	State       State
	Values      booking.Request
	FieldErrors map[string]string
	Error       string
	WhatsAppURL string
	Message     string
}

// Form is safe for concurrent use. The lock is not held while the
// submitter runs, so a second Submit during that call sees Submitting.
type Form struct {
	mu        sync.Mutex
	state     State
	values    booking.Request
	errs      booking.FieldErrors
	formErr   string
	result    *booking.Result
	validator *booking.Validator
	submitter Submitter
}

// sharedValidator is built once; validator.Validate is safe for concurrent use.
var sharedValidator = sync.OnceValue(booking.NewValidator)

func New(submitter Submitter) *Form {
	return &Form{
		state:     Editing,
		errs:      booking.FieldErrors{},
		validator: sharedValidator(),
		submitter: submitter,
	}
}

// Blank is the view of an untouched form.
func Blank() View {
	return View{State: Editing, FieldErrors: map[string]string{}}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Set edits a field and clears that field's error. Edits are ignored while
// submitting and after success.
func (f *Form) Set(field, value string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Submitting || f.state == Success {
		return false
	}
	if !f.values.Set(field, value) {
		return false
	}
	delete(f.errs, field)
	return true
}

// Submit validates the fields and, when they pass, calls the submitter.
// It is a no-op while a submission is in flight or after success.
func (f *Form) Submit(ctx context.Context) State {
	f.mu.Lock()
	switch f.state {
	case Submitting, Success:
		s := f.state
		f.mu.Unlock()
		return s
	}

	if errs := f.validator.Check(f.values); len(errs) > 0 {
		f.errs = errs
		f.formErr = ""
		f.state = EditingWithError
		f.mu.Unlock()
		return EditingWithError
	}

	f.state = Submitting
	f.formErr = ""
	req := f.values
	f.mu.Unlock()

	res, err := f.submitter.SubmitBooking(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.formErr = booking.PublicMessage(err)
		f.state = EditingWithError
		return f.state
	}
	f.result = res
	f.state = Success
	return f.state
}

// BookAnother leaves Success and starts over with empty fields.
func (f *Form) BookAnother() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != Success {
		return false
	}
	f.state = Editing
	f.values = booking.Request{}
	f.errs = booking.FieldErrors{}
	f.formErr = ""
	f.result = nil
	return true
}

func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := View{
		State:       f.state,
		Values:      f.values,
		FieldErrors: make(map[string]string, len(f.errs)),
		Error:       f.formErr,
	}
	for field, code := range f.errs {
		v.FieldErrors[field] = booking.FieldErrorText(field, code)
	}
	if f.result != nil {
		v.WhatsAppURL = f.result.WhatsAppURL
		v.Message = f.result.Message
	}
	return v
}

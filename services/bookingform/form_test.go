package bookingform

import (
	"context"
	"sync/atomic"
	"testing"

	"bestdental/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(f *Form) {
	f.Set(booking.FieldName, "Jane Doe")
	f.Set(booking.FieldPhone, "+254712345678")
	f.Set(booking.FieldService, "braces")
	f.Set(booking.FieldDate, "2025-01-01")
}

func okSubmitter(calls *int32) Submitter {
	return SubmitterFunc(func(_ context.Context, req booking.Request) (*booking.Result, error) {
		atomic.AddInt32(calls, 1)
		return &booking.Result{Message: booking.Acknowledgement, WhatsAppURL: "https://wa.me/254724124735?text=hi", Booking: req}, nil
	})
}

func TestForm_HappyPath(t *testing.T) {
	var calls int32
	f := New(okSubmitter(&calls))
	assert.Equal(t, Editing, f.State())

	fill(f)
	assert.Equal(t, Success, f.Submit(context.Background()))
	assert.EqualValues(t, 1, calls)

	v := f.View()
	assert.Equal(t, "https://wa.me/254724124735?text=hi", v.WhatsAppURL)
	assert.Equal(t, booking.Acknowledgement, v.Message)

	// Success ignores edits and further submits.
	assert.False(t, f.Set(booking.FieldName, "Other"))
	assert.Equal(t, Success, f.Submit(context.Background()))
	assert.EqualValues(t, 1, calls)
}

func TestForm_ClientValidationSkipsSubmitter(t *testing.T) {
	var calls int32
	f := New(okSubmitter(&calls))
	f.Set(booking.FieldName, "Jane Doe")
	f.Set(booking.FieldPhone, "12345")

	assert.Equal(t, EditingWithError, f.Submit(context.Background()))
	assert.Zero(t, calls)

	v := f.View()
	assert.Equal(t, "Please enter a valid phone number (e.g., +254712345678)", v.FieldErrors[booking.FieldPhone])
	assert.Equal(t, "Please select a service", v.FieldErrors[booking.FieldService])
	assert.Equal(t, "Please select a preferred date", v.FieldErrors[booking.FieldDate])
	assert.NotContains(t, v.FieldErrors, booking.FieldName)

	// Editing a field clears only its own error.
	require.True(t, f.Set(booking.FieldPhone, "+254712345678"))
	v = f.View()
	assert.NotContains(t, v.FieldErrors, booking.FieldPhone)
	assert.Contains(t, v.FieldErrors, booking.FieldService)
	assert.Equal(t, EditingWithError, f.State())
}

func TestForm_EndpointErrorReturnsToEditing(t *testing.T) {
	f := New(SubmitterFunc(func(context.Context, booking.Request) (*booking.Result, error) {
		return nil, booking.NewRateLimitedError()
	}))
	fill(f)

	assert.Equal(t, EditingWithError, f.Submit(context.Background()))
	assert.Equal(t, booking.MsgRateLimited, f.View().Error)
	assert.Equal(t, "Jane Doe", f.View().Values.Name)
}

func TestForm_SubmitWhileSubmittingIsNoop(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	f := New(SubmitterFunc(func(context.Context, booking.Request) (*booking.Result, error) {
		atomic.AddInt32(&calls, 1)
		close(entered)
		<-release
		return &booking.Result{}, nil
	}))
	fill(f)

	done := make(chan State)
	go func() { done <- f.Submit(context.Background()) }()
	<-entered

	assert.Equal(t, Submitting, f.State())
	assert.Equal(t, Submitting, f.Submit(context.Background()))
	assert.False(t, f.Set(booking.FieldName, "x"))

	close(release)
	assert.Equal(t, Success, <-done)
	assert.EqualValues(t, 1, calls)
}

func TestForm_BookAnother(t *testing.T) {
	var calls int32
	f := New(okSubmitter(&calls))
	assert.False(t, f.BookAnother())

	fill(f)
	f.Submit(context.Background())
	require.True(t, f.BookAnother())

	v := f.View()
	assert.Equal(t, Editing, v.State)
	assert.Equal(t, booking.Request{}, v.Values)
	assert.Empty(t, v.WhatsAppURL)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "editing_with_error", EditingWithError.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestNew_SharesValidator(t *testing.T) {
	a := New(nil)
	b := New(nil)
	assert.Same(t, a.validator, b.validator)
}

func TestBlank(t *testing.T) {
	v := Blank()
	assert.Equal(t, Editing, v.State)
	assert.Empty(t, v.FieldErrors)
	assert.Equal(t, New(nil).View(), v)
}

package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bestdental/services/notification"
	"bestdental/services/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type chanNotifier chan notification.BookingAlert

func (c chanNotifier) NotifyBooking(_ context.Context, a notification.BookingAlert) error {
	c <- a
	return nil
}

var fixedNow = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, notifier notification.Notifier) (*DefaultBookingService, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), 10, time.Minute,
		ratelimit.WithClock(func() time.Time { return fixedNow }))
	svc := NewBookingService(limiter, notifier, "Best Dental", "254724124735", logger)
	svc.Now = func() time.Time { return fixedNow }
	svc.NewReference = func() string { return "ref-1" }
	return svc, logs
}

func janeDoe() Request {
	return Request{Name: "Jane Doe", Phone: "+254712345678", Service: "teeth-whitening", Date: "2025-01-01"}
}

func TestSubmit_Success(t *testing.T) {
	svc, logs := newTestService(t, nil)

	res, err := svc.Submit(context.Background(), "1.2.3.4", janeDoe())
	require.NoError(t, err)

	assert.Equal(t, Acknowledgement, res.Message)
	assert.Equal(t, "ref-1", res.Reference)
	assert.Contains(t, res.WhatsAppURL, "https://wa.me/254724124735?text=")
	assert.Contains(t, res.WhatsAppURL, "Name%3A%20Jane%20Doe")
	assert.Contains(t, res.WhatsAppURL, "Service%3A%20teeth-whitening")
	assert.NotContains(t, res.WhatsAppURL, "Notes")

	audit := logs.FilterMessage("Booking request").All()
	require.Len(t, audit, 1)
	fields := audit[0].ContextMap()
	assert.Equal(t, "1.2.3.4", fields["caller"])
	assert.Equal(t, "Jane Doe", fields["name"])
	assert.Equal(t, "ref-1", fields["reference"])
}

func TestProcess_SanitizesAndNormalizes(t *testing.T) {
	svc, _ := newTestService(t, nil)

	res, err := svc.Process(context.Background(), "unknown", Request{
		Name:    "  <b>Jane</b>  ",
		Phone:   "+254 712-345-678",
		Service: "braces",
		Date:    "2025-01-01",
		Message: "<script>hi</script>",
	})
	require.NoError(t, err)

	assert.Equal(t, "bJane/b", res.Booking.Name)
	assert.Equal(t, "+254712345678", res.Booking.Phone)
	assert.Equal(t, "scripthi/script", res.Booking.Message)
	assert.Contains(t, res.WhatsAppURL, "Notes%3A%20scripthi%2Fscript")
}

func TestProcess_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		code    Code
		message string
	}{
		{"missing phone", func(r *Request) { r.Phone = "" }, CodeMissingFields, MsgMissingFields},
		{"blank name", func(r *Request) { r.Name = "   " }, CodeMissingFields, MsgMissingFields},
		{"missing date", func(r *Request) { r.Date = "" }, CodeMissingFields, MsgMissingFields},
		{"short phone", func(r *Request) { r.Phone = "12345" }, CodeInvalidFormat, MsgInvalidPhone},
		{"letters in phone", func(r *Request) { r.Phone = "+2547ABC45678" }, CodeInvalidFormat, MsgInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, logs := newTestService(t, nil)
			req := janeDoe()
			tt.mutate(&req)

			res, err := svc.Process(context.Background(), "1.2.3.4", req)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.Equal(t, tt.code, CodeOf(err))
			assert.Equal(t, tt.message, PublicMessage(err))
			assert.Zero(t, logs.FilterMessage("Booking request").Len())
		})
	}
}

func TestSubmit_RateLimited(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := svc.Submit(ctx, "1.2.3.4", janeDoe())
		require.NoError(t, err, "request %d", i+1)
	}

	_, err := svc.Submit(ctx, "1.2.3.4", janeDoe())
	assert.Equal(t, CodeRateLimited, CodeOf(err))
	assert.Equal(t, MsgRateLimited, PublicMessage(err))

	// Invalid requests still count against the caller.
	_, err = svc.Submit(ctx, "5.6.7.8", Request{})
	assert.Equal(t, CodeMissingFields, CodeOf(err))

	_, err = svc.Submit(ctx, "5.6.7.8", janeDoe())
	assert.NoError(t, err)
}

func TestSubmit_NotifiesStaff(t *testing.T) {
	alerts := make(chanNotifier, 1)
	svc, _ := newTestService(t, alerts)

	req := janeDoe()
	req.Message = "Sensitive teeth"
	res, err := svc.Submit(context.Background(), "1.2.3.4", req)
	require.NoError(t, err)

	select {
	case a := <-alerts:
		assert.Equal(t, res.Reference, a.Reference)
		assert.Equal(t, "Sensitive teeth", a.Message)
		assert.Contains(t, a.Text, "Notes: Sensitive teeth")
	case <-time.After(2 * time.Second):
		t.Fatal("staff alert was not sent")
	}
}

type failingNotifier struct{ done chan struct{} }

func (f failingNotifier) NotifyBooking(context.Context, notification.BookingAlert) error {
	defer close(f.done)
	return fmt.Errorf("twilio: unavailable")
}

func TestSubmit_NotifierFailureDoesNotFailBooking(t *testing.T) {
	n := failingNotifier{done: make(chan struct{})}
	svc, _ := newTestService(t, n)

	_, err := svc.Submit(context.Background(), "1.2.3.4", janeDoe())
	require.NoError(t, err)
	<-n.done
}

func TestPublicMessage_HidesInternals(t *testing.T) {
	err := NewInternalError(fmt.Errorf("decode: unexpected EOF at offset 12"))
	assert.Equal(t, MsgInternal, PublicMessage(err))
	assert.Equal(t, MsgInternal, PublicMessage(fmt.Errorf("boom")))
	assert.Equal(t, CodeInternal, CodeOf(fmt.Errorf("boom")))
}

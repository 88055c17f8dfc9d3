package booking

import (
	"context"
	"time"

	"bestdental/services/notification"
	"bestdental/services/ratelimit"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Acknowledgement is returned with every accepted booking request.
const Acknowledgement = "Booking request received. We will contact you within 24 hours."

const notifyTimeout = 10 * time.Second

// BookingService accepts booking requests from the website.
type BookingService interface {
	// Admit applies the per-caller rate limit.
	Admit(ctx context.Context, callerKey string) error
	// Process validates, sanitizes and logs req and builds the deep link.
	// It does not rate-limit.
	Process(ctx context.Context, callerKey string, req Request) (*Result, error)
	// Submit is Admit followed by Process.
	Submit(ctx context.Context, callerKey string, req Request) (*Result, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Limiter        *ratelimit.Limiter
	Validator      *Validator
	Notifier       notification.Notifier
	ClinicName     string
	WhatsAppNumber string
	Logger         *zap.Logger
	Now            func() time.Time
	NewReference   func() string
}

// NewBookingService wires a service with the default clock and reference
// generator.
func NewBookingService(limiter *ratelimit.Limiter, notifier notification.Notifier, clinicName, whatsappNumber string, logger *zap.Logger) *DefaultBookingService {
	if notifier == nil {
		notifier = notification.NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Limiter:        limiter,
		Validator:      NewValidator(),
		Notifier:       notifier,
		ClinicName:     clinicName,
		WhatsAppNumber: whatsappNumber,
		Logger:         logger,
		Now:            time.Now,
		NewReference:   func() string { return uuid.New().String() },
	}
}

func (s *DefaultBookingService) Admit(ctx context.Context, callerKey string) error {
	decision := s.Limiter.Allow(ctx, callerKey)
	if !decision.Allowed {
		s.Logger.Warn("Booking rate limit exceeded",
			zap.String("caller", callerKey),
			zap.Time("resetAt", decision.ResetAt),
		)
		return NewRateLimitedError()
	}
	return nil
}

func (s *DefaultBookingService) Process(ctx context.Context, callerKey string, req Request) (*Result, error) {
	fieldErrs := s.Validator.Check(req)
	if missing := fieldErrs.Missing(); len(missing) > 0 {
		return nil, NewMissingFieldsError(missing)
	}

	clean := req.Clean()
	if fieldErrs[FieldPhone] == CodeInvalidFormat {
		return nil, NewInvalidPhoneError()
	}

	now := s.Now()
	ref := s.NewReference()

	// Audit record; the request is not stored anywhere else.
	s.Logger.Info("Booking request",
		zap.String("reference", ref),
		zap.String("caller", callerKey),
		zap.String("name", clean.Name),
		zap.String("phone", clean.Phone),
		zap.String("service", clean.Service),
		zap.String("date", clean.Date),
		zap.String("message", clean.Message),
		zap.Time("timestamp", now),
	)

	text := ComposeMessage(s.ClinicName, clean)
	result := &Result{
		Reference:   ref,
		Message:     Acknowledgement,
		WhatsAppURL: DeepLink(s.WhatsAppNumber, text),
		Booking:     clean,
		ReceivedAt:  now,
	}

	s.notify(notification.BookingAlert{
		Reference:  ref,
		Name:       clean.Name,
		Phone:      clean.Phone,
		Service:    clean.Service,
		Date:       clean.Date,
		Message:    clean.Message,
		Text:       text,
		ReceivedAt: now,
	})
	return result, nil
}

func (s *DefaultBookingService) Submit(ctx context.Context, callerKey string, req Request) (*Result, error) {
	if err := s.Admit(ctx, callerKey); err != nil {
		return nil, err
	}
	return s.Process(ctx, callerKey, req)
}

// notify hands the alert to the notifier without waiting for it. Failures
// are logged and never retried.
func (s *DefaultBookingService) notify(alert notification.BookingAlert) {
	if _, ok := s.Notifier.(notification.NopNotifier); ok {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.Notifier.NotifyBooking(ctx, alert); err != nil {
			s.Logger.Warn("Staff alert failed", zap.String("reference", alert.Reference), zap.Error(err))
		}
	}()
}

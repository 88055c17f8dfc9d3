package notification

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// BookingAlert tells clinic staff that a booking request came in.
type BookingAlert struct {
	Reference  string
	Name       string
	Phone      string
	Service    string
	Date       string
	Message    string
	Text       string
	ReceivedAt time.Time
}

// Subject is a one-line summary used as an e-mail subject.
func (a BookingAlert) Subject() string {
	return fmt.Sprintf("New booking request: %s (%s) on %s", a.Name, a.Service, a.Date)
}

// Notifier delivers staff alerts. Implementations make a single attempt.
type Notifier interface {
	NotifyBooking(ctx context.Context, alert BookingAlert) error
}

// NopNotifier drops every alert.
type NopNotifier struct{}

func (NopNotifier) NotifyBooking(context.Context, BookingAlert) error { return nil }

// MultiNotifier fans an alert out to several channels and joins their errors.
type MultiNotifier []Notifier

func (m MultiNotifier) NotifyBooking(ctx context.Context, alert BookingAlert) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyBooking(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Combine returns a single Notifier for the configured channels.
func Combine(notifiers ...Notifier) Notifier {
	var active MultiNotifier
	for _, n := range notifiers {
		if n != nil {
			active = append(active, n)
		}
	}
	switch len(active) {
	case 0:
		return NopNotifier{}
	case 1:
		return active[0]
	}
	return active
}

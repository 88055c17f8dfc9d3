package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridNotifier e-mails the alert to the clinic inbox.
type SendGridNotifier struct {
	client mailSender
	from   *mail.Email
	to     *mail.Email
}

// NewSendGridNotifier returns nil when the key or an address is missing.
func NewSendGridNotifier(apiKey, fromEmail, fromName, staffEmail string) *SendGridNotifier {
	if apiKey == "" || fromEmail == "" || staffEmail == "" {
		return nil
	}
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromEmail),
		to:     mail.NewEmail("Clinic", staffEmail),
	}
}

func (n *SendGridNotifier) NotifyBooking(ctx context.Context, alert BookingAlert) error {
	plain := fmt.Sprintf("%s\n\nPatient phone: %s\nReference: %s", alert.Text, alert.Phone, alert.Reference)
	htmlBody := "<p>" + strings.ReplaceAll(html.EscapeString(plain), "\n", "<br>") + "</p>"

	message := mail.NewSingleEmail(n.from, alert.Subject(), n.to, plain, htmlBody)
	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("SendGridNotifier: failed to send e-mail alert: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("SendGridNotifier: unexpected status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator is the part of the Twilio API client we use.
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioNotifier sends the alert as a WhatsApp message to the clinic's phone.
type TwilioNotifier struct {
	api  messageCreator
	from string
	to   string
}

// NewTwilioNotifier returns nil when any credential is missing.
func NewTwilioNotifier(accountSID, authToken, from, to string) *TwilioNotifier {
	if accountSID == "" || authToken == "" || from == "" || to == "" {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioNotifier{api: client.Api, from: from, to: to}
}

func whatsappAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	if !strings.HasPrefix(number, "+") {
		number = "+" + number
	}
	return "whatsapp:" + number
}

func (n *TwilioNotifier) NotifyBooking(_ context.Context, alert BookingAlert) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(whatsappAddress(n.to))
	params.SetFrom(whatsappAddress(n.from))
	params.SetBody(fmt.Sprintf("%s\n\nPatient phone: %s\nRef: %s", alert.Text, alert.Phone, alert.Reference))

	if _, err := n.api.CreateMessage(params); err != nil {
		return fmt.Errorf("TwilioNotifier: failed to send WhatsApp alert: %w", err)
	}
	return nil
}

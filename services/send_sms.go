package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator is the part of the Twilio REST API used for SMS
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioTexter sends SMS messages through Twilio
type TwilioTexter struct {
	from string
	api  messageCreator
}

func NewTwilioTexter(accountSID, authToken, from string) *TwilioTexter {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioTexter{from: from, api: client.Api}
}

// SendSMS texts body to the given number. The Twilio client has no context support, so ctx is only
// checked before the call.
func (t *TwilioTexter) SendSMS(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	msg, err := t.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS via Twilio: %w", err)
	}

	if msg != nil && msg.Sid != nil {
		log.Info().Str("messageSid", *msg.Sid).Msg("Successfully sent SMS via Twilio")
	}
	return nil
}

// Package twilio delivers alert messages as SMS through the Twilio REST API.
package twilio

import (
	"context"
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/oshokin/panic-button/internal/config"
)

// messageCreator is the part of the Twilio API the sender uses.
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

var (
	// errNotConfigured is returned when credentials are missing.
	errNotConfigured = errors.New("twilio credentials are not configured")
	// errNoMessageSID is returned when Twilio accepts a message without an id.
	errNoMessageSID = errors.New("twilio returned no message sid")
)

// Sender sends SMS from a fixed Twilio number.
type Sender struct {
	// api creates messages.
	api messageCreator
	// from is the Twilio phone number messages are sent from.
	from string
}

// New creates a sender from Twilio credentials.
func New(cfg config.TwilioConfig) (*Sender, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.From == "" {
		return nil, errNotConfigured
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return newSender(client.Api, cfg.From), nil
}

func newSender(api messageCreator, from string) *Sender {
	return &Sender{
		api:  api,
		from: from,
	}
}

// Send queues one SMS and returns its Twilio SID.
// The Twilio client has no context support, so cancellation is only checked
// before the request; callers bound the wait themselves.
func (s *Sender) Send(ctx context.Context, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := new(openapi.CreateMessageParams).
		SetTo(to).
		SetFrom(s.from).
		SetBody(body)

	message, err := s.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("create twilio message: %w", err)
	}

	if message == nil || message.Sid == nil || *message.Sid == "" {
		return "", errNoMessageSID
	}

	return *message.Sid, nil
}

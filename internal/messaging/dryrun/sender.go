// Package dryrun provides a sender that logs alerts instead of delivering them.
// The server falls back to it when no messaging channel is configured.
package dryrun

import (
	"context"

	"github.com/google/uuid"

	"github.com/oshokin/panic-button/internal/logger"
)

// Sender logs every message and acknowledges it with a generated id.
type Sender struct{}

// New creates a dry-run sender.
func New() *Sender {
	return new(Sender)
}

// Send logs the message.
func (*Sender) Send(ctx context.Context, to, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := "dry-" + uuid.NewString()

	logger.InfoKV(ctx, "Dry-run SMS", "to", to, "body", body, "message_id", messageID)

	return messageID, nil
}

package email

import (
	"context"

	"techvista_backend/internal/logger"
)

// ConsoleSender logs mail instead of delivering it. Used in development and
// whenever SMTP is not configured.
type ConsoleSender struct{}

func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{}
}

func (s *ConsoleSender) Send(ctx context.Context, msg Message) error {
	logger.CtxInfo(ctx, "email (console sender)",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}

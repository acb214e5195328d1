package notification

import (
	"context"
	"log/slog"
)

// LogChannel writes notifications to a slog logger. Useful in development
// and as a fallback channel.
type LogChannel struct {
	log *slog.Logger
}

// NewLogChannel creates the log channel.
func NewLogChannel(log *slog.Logger) *LogChannel {
	if log == nil {
		log = slog.Default()
	}
	return &LogChannel{log: log}
}

func (c *LogChannel) Name() string { return "log" }

func (c *LogChannel) Deliver(ctx context.Context, to Recipient, msg Message) error {
	c.log.InfoContext(ctx, "notification",
		slog.String("recipient", to.ID),
		slog.String("email", to.Email),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Text),
	)
	return nil
}

package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// EmailConfig holds Resend delivery configuration.
type EmailConfig struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

// EmailChannel delivers notifications as email through the Resend API.
type EmailChannel struct {
	client *resend.Client
	config EmailConfig
}

// NewEmailChannel creates the email channel.
func NewEmailChannel(cfg EmailConfig) *EmailChannel {
	return &EmailChannel{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

func (c *EmailChannel) Name() string { return "email" }

func (c *EmailChannel) Deliver(ctx context.Context, to Recipient, msg Message) error {
	if to.Email == "" {
		return ErrNoRecipient
	}

	from := c.config.SenderEmail
	if c.config.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", c.config.SenderName, c.config.SenderEmail)
	}

	_, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    from,
		To:      []string{to.Email},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("notification: resend send: %w", err)
	}
	return nil
}

package notification

import "errors"

var (
	ErrTemplateNotFound   = errors.New("notification: template not found")
	ErrInvalidFrontmatter = errors.New("notification: invalid template frontmatter")
	ErrUnknownChannel     = errors.New("notification: unknown channel")
	ErrNoChannels         = errors.New("notification: no channels configured")
	ErrNoRecipient        = errors.New("notification: recipient has no address for channel")
	ErrDeliveryFailed     = errors.New("notification: delivery failed")
)

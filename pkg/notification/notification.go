package notification

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"sync"

	"github.com/yuin/goldmark"
	"golang.org/x/sync/errgroup"
)

// Recipient is the target of a notification.
type Recipient struct {
	ID    string
	Name  string
	Email string
}

// Notification names a template and carries the payload rendered into it.
type Notification struct {
	// Template is the template name without extension ("welcome").
	Template string

	// Data is merged with the recipient under the "user" key for
	// placeholder resolution.
	Data map[string]any

	// Channels overrides the template's channel list when non-empty.
	Channels []string
}

// Channel delivers rendered messages over one transport.
type Channel interface {
	// Name identifies the channel in template frontmatter ("email", "log").
	Name() string

	// Deliver sends the message to the recipient.
	Deliver(ctx context.Context, to Recipient, msg Message) error
}

// Notifier loads templates and fans deliveries out to channels.
// Safe for concurrent use.
type Notifier struct {
	fsys      fs.FS
	md        goldmark.Markdown
	channels  map[string]Channel
	limit     int
	mu        sync.RWMutex
	templates map[string]*Template
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithChannel registers a delivery channel.
func WithChannel(ch Channel) Option {
	return func(n *Notifier) {
		if ch != nil {
			n.channels[ch.Name()] = ch
		}
	}
}

// WithBroadcastLimit caps concurrent deliveries during Broadcast.
// Defaults to 10.
func WithBroadcastLimit(limit int) Option {
	return func(n *Notifier) {
		if limit > 0 {
			n.limit = limit
		}
	}
}

// NewNotifier creates a Notifier reading "<name>.md" templates from fsys.
func NewNotifier(fsys fs.FS, opts ...Option) (*Notifier, error) {
	n := &Notifier{
		fsys:      fsys,
		md:        goldmark.New(),
		channels:  make(map[string]Channel),
		templates: make(map[string]*Template),
		limit:     10,
	}
	for _, opt := range opts {
		opt(n)
	}

	if len(n.channels) == 0 {
		return nil, ErrNoChannels
	}
	return n, nil
}

// Send renders the notification for one recipient and delivers it over the
// resolved channels. Channel errors are joined so one failing transport
// does not hide another.
func (n *Notifier) Send(ctx context.Context, to Recipient, notif Notification) error {
	tmpl, err := n.template(notif.Template)
	if err != nil {
		return err
	}

	msg, err := tmpl.Render(n.md, renderData(to, notif.Data))
	if err != nil {
		return err
	}

	names := notif.Channels
	if len(names) == 0 {
		names = tmpl.Channels
	}
	if len(names) == 0 {
		names = n.channelNames()
	}

	var errs []error
	for _, name := range names {
		ch, ok := n.channels[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownChannel, name))
			continue
		}
		if err := ch.Deliver(ctx, to, msg); err != nil {
			errs = append(errs, fmt.Errorf("%w: channel %q: %w", ErrDeliveryFailed, name, err))
		}
	}
	return errors.Join(errs...)
}

// Broadcast sends the notification to every recipient with bounded
// concurrency. The first error cancels outstanding deliveries.
func (n *Notifier) Broadcast(ctx context.Context, recipients []Recipient, notif Notification) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(n.limit)

	for _, to := range recipients {
		g.Go(func() error {
			return n.Send(ctx, to, notif)
		})
	}
	return g.Wait()
}

// template returns the parsed template, caching parses across calls.
func (n *Notifier) template(name string) (*Template, error) {
	n.mu.RLock()
	tmpl, ok := n.templates[name]
	n.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := loadTemplate(n.fsys, name)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	n.templates[name] = tmpl
	n.mu.Unlock()
	return tmpl, nil
}

func (n *Notifier) channelNames() []string {
	names := make([]string, 0, len(n.channels))
	for name := range maps.Keys(n.channels) {
		names = append(names, name)
	}
	return names
}

func renderData(to Recipient, data map[string]any) map[string]any {
	merged := make(map[string]any, len(data)+1)
	maps.Copy(merged, data)
	merged["user"] = map[string]any{
		"id":    to.ID,
		"name":  to.Name,
		"email": to.Email,
	}
	return merged
}

package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// WithSentry enables forwarding of warning and error records to Sentry.
// An empty DSN leaves Sentry disabled, so the option is safe to pass
// unconditionally from config.
func WithSentry(dsn, environment string) Option {
	return func(s *settings) {
		s.sentryDSN = dsn
		if environment != "" {
			s.sentryEnv = environment
		}
	}
}

func newSentryHandler(s settings) (slog.Handler, bool) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         s.sentryDSN,
		Environment: s.sentryEnv,
		EnableLogs:  true,
	}); err != nil {
		// Broken Sentry config must not take logging down with it.
		slog.New(slog.NewJSONHandler(s.out, nil)).
			Error("sentry init failed", slog.String("error", err.Error()))
		return nil, false
	}

	handler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return handler, true
}

// fanoutHandler forwards each record to every underlying handler.
type fanoutHandler struct {
	handlers []slog.Handler
}

func newFanoutHandler(handlers ...slog.Handler) slog.Handler {
	return &fanoutHandler{handlers: handlers}
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, rec.Level) {
			if err := handler.Handle(ctx, rec.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithAttrs(attrs)
	}
	return newFanoutHandler(next...)
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		next[i] = handler.WithGroup(name)
	}
	return newFanoutHandler(next...)
}

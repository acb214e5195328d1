package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Extractor pulls a log attribute out of a context. Returning false skips
// the attribute for that record.
type Extractor func(ctx context.Context) (slog.Attr, bool)

type settings struct {
	out        io.Writer
	level      slog.Level
	extractors []Extractor
	sentryDSN  string
	sentryEnv  string
}

// Option configures logger construction.
type Option func(*settings)

// WithOutput sets the destination for JSON log output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLevel sets the minimum level for emitted records. Defaults to Info.
func WithLevel(level slog.Level) Option {
	return func(s *settings) {
		s.level = level
	}
}

// WithExtractors registers context extractors. Nil extractors are ignored.
func WithExtractors(extractors ...Extractor) Option {
	return func(s *settings) {
		for _, ex := range extractors {
			if ex != nil {
				s.extractors = append(s.extractors, ex)
			}
		}
	}
}

// New creates a JSON logger with the given options.
func New(opts ...Option) *slog.Logger {
	s := settings{
		out:       os.Stdout,
		level:     slog.LevelInfo,
		sentryEnv: "production",
	}
	for _, opt := range opts {
		opt(&s)
	}

	var handler slog.Handler = slog.NewJSONHandler(s.out, &slog.HandlerOptions{
		Level: s.level,
	})

	if s.sentryDSN != "" {
		if sh, ok := newSentryHandler(s); ok {
			handler = newFanoutHandler(handler, sh)
		}
	}

	return slog.New(&contextHandler{next: handler, extractors: s.extractors})
}

// Discard returns a logger that drops every record. Useful as a default
// when a component receives no logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// contextHandler injects extracted context attributes into each record
// before delegating. Extraction happens per call so request-scoped values
// stay fresh.
type contextHandler struct {
	next       slog.Handler
	extractors []Extractor
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}

package middlewares

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/getsentry/sentry-go"
)

// DefaultStackSize caps the captured stack trace in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures the panic recovery middleware.
type RecoverConfig struct {
	StackSize       int
	CaptureToSentry bool
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverStackSize sets the maximum captured stack size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		if size > 0 {
			cfg.StackSize = size
		}
	}
}

// WithSentryCapture reports recovered panics to Sentry. Requires sentry to
// be initialized (see logger.WithSentry).
func WithSentryCapture() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.CaptureToSentry = true
	}
}

// Recover returns middleware that converts panics into 500 responses.
// The panic value and stack are logged; the response body stays generic.
func Recover(log *slog.Logger, opts ...RecoverOption) func(http.Handler) http.Handler {
	cfg := &RecoverConfig{StackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					// The server uses this to abort in-flight responses.
					panic(rec)
				}

				stack := make([]byte, cfg.StackSize)
				stack = stack[:runtime.Stack(stack, false)]

				log.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(stack)),
				)

				if cfg.CaptureToSentry {
					sentry.CurrentHub().Recover(rec)
				}

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

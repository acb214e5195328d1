package tenant

import (
	"errors"
	"net/http"
)

// RequireConfig configures the Require middleware.
type RequireConfig struct {
	// ErrorHandler is invoked when no tenant resolves. Defaults to a plain
	// 403 response.
	ErrorHandler http.HandlerFunc
}

// RequireOption configures RequireConfig.
type RequireOption func(*RequireConfig)

// WithErrorHandler overrides the rejection response for unresolved tenants.
func WithErrorHandler(h http.HandlerFunc) RequireOption {
	return func(cfg *RequireConfig) {
		cfg.ErrorHandler = h
	}
}

// Require returns middleware that resolves the tenant and stores it in the
// request context. Requests without a resolvable tenant are rejected.
func Require(resolver Resolver, opts ...RequireOption) func(http.Handler) http.Handler {
	cfg := &RequireConfig{
		ErrorHandler: func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "tenant not found", http.StatusForbidden)
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t, err := resolver.Resolve(r)
			if err != nil {
				if !errors.Is(err, ErrNotFound) {
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				cfg.ErrorHandler(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), t)))
		})
	}
}

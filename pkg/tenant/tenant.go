package tenant

import (
	"context"
	"log/slog"
)

// Tenant identifies an isolated customer workspace.
type Tenant struct {
	// ID is the stable identifier used for data scoping.
	ID string

	// Slug is the human-facing identifier (subdomain, URL segment).
	Slug string

	// Name is the display name.
	Name string
}

type contextKey struct{}

// WithTenant returns a context carrying the tenant.
func WithTenant(ctx context.Context, t Tenant) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext extracts the tenant set by WithTenant or the Require
// middleware.
func FromContext(ctx context.Context) (Tenant, bool) {
	t, ok := ctx.Value(contextKey{}).(Tenant)
	return t, ok
}

// LogExtractor returns a logger extractor that annotates records with the
// tenant id when one is present in the context.
func LogExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if t, ok := FromContext(ctx); ok {
			return slog.String("tenant_id", t.ID), true
		}
		return slog.Attr{}, false
	}
}

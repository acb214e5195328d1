package tenant

import (
	"context"
	"net/http"
	"strings"
)

// Resolver determines the tenant for an incoming request.
// Implementations return ErrNotFound when the request carries no tenant.
type Resolver interface {
	Resolve(r *http.Request) (Tenant, error)
}

// LookupFunc loads a tenant by its slug, typically from a database or cache.
type LookupFunc func(ctx context.Context, slug string) (Tenant, error)

// SubdomainResolver resolves the tenant from the first subdomain label
// under a base domain: "acme.example.com" resolves the slug "acme".
type SubdomainResolver struct {
	baseDomain string
	lookup     LookupFunc
}

// NewSubdomainResolver creates a resolver for subdomains of baseDomain.
func NewSubdomainResolver(baseDomain string, lookup LookupFunc) *SubdomainResolver {
	return &SubdomainResolver{
		baseDomain: strings.ToLower(strings.TrimSpace(baseDomain)),
		lookup:     lookup,
	}
}

func (sr *SubdomainResolver) Resolve(r *http.Request) (Tenant, error) {
	if sr.lookup == nil {
		return Tenant{}, ErrNilLookup
	}

	host := normalizeHost(r.Host)
	suffix := "." + sr.baseDomain
	if !strings.HasSuffix(host, suffix) {
		return Tenant{}, ErrNotFound
	}

	sub := strings.TrimSuffix(host, suffix)
	if sub == "" || strings.Contains(sub, ".") {
		// Bare base domain or nested subdomains carry no tenant.
		return Tenant{}, ErrNotFound
	}

	return sr.lookup(r.Context(), sub)
}

// HeaderResolver resolves the tenant from a request header (API clients
// that cannot use subdomains).
type HeaderResolver struct {
	header string
	lookup LookupFunc
}

// DefaultTenantHeader is the header consulted by NewHeaderResolver when no
// header name is given.
const DefaultTenantHeader = "X-Tenant"

// NewHeaderResolver creates a resolver reading the tenant slug from header.
func NewHeaderResolver(header string, lookup LookupFunc) *HeaderResolver {
	if header == "" {
		header = DefaultTenantHeader
	}
	return &HeaderResolver{header: header, lookup: lookup}
}

func (hr *HeaderResolver) Resolve(r *http.Request) (Tenant, error) {
	if hr.lookup == nil {
		return Tenant{}, ErrNilLookup
	}

	slug := strings.TrimSpace(r.Header.Get(hr.header))
	if slug == "" {
		return Tenant{}, ErrNotFound
	}

	return hr.lookup(r.Context(), strings.ToLower(slug))
}

// Chain tries each resolver in order and returns the first resolved tenant.
type Chain []Resolver

func (c Chain) Resolve(r *http.Request) (Tenant, error) {
	for _, resolver := range c {
		t, err := resolver.Resolve(r)
		if err == nil {
			return t, nil
		}
	}
	return Tenant{}, ErrNotFound
}

// normalizeHost strips the port and lowercases the host. IPv6 literals keep
// their brackets.
func normalizeHost(host string) string {
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		if !strings.Contains(host[idx:], "]") {
			host = host[:idx]
		}
	}
	return strings.ToLower(host)
}

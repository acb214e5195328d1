package tenant

import "errors"

var (
	ErrNotFound   = errors.New("tenant: tenant not found")
	ErrNoTenant   = errors.New("tenant: no tenant in context")
	ErrNilLookup  = errors.New("tenant: lookup function cannot be nil")
	ErrEmptyQuery = errors.New("tenant: query cannot be empty")
)

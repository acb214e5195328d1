package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a key does not exist or has expired.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrClosed is returned for operations on a closed cache.
	ErrClosed = errors.New("cache: closed")
)

// Store is a byte cache with TTL support.
//
// TTL semantics for Set: positive expires after the duration, zero uses
// the backend's default TTL, negative never expires.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrDial is returned when a Redis connection cannot be established.
var ErrDial = errors.New("cache: failed to connect to redis")

const (
	dialAttempts = 3
	dialBackoff  = 2 * time.Second
)

// Dial connects to a Redis server by URL (redis:// or rediss://) and
// verifies the connection with a ping. Failed attempts retry with linear
// backoff so a service starting alongside Redis does not crash-loop; the
// context bounds the whole sequence.
func Dial(ctx context.Context, url string) (redis.UniversalClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrDial, err)
	}

	var lastErr error
	for attempt := 1; attempt <= dialAttempts; attempt++ {
		client := redis.NewClient(opts)
		err := client.Ping(ctx).Err()
		if err == nil {
			return client, nil
		}
		lastErr = err
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrDial, ctx.Err())
		case <-time.After(time.Duration(attempt) * dialBackoff):
		}
	}

	return nil, errors.Join(ErrDial, lastErr)
}

// RedisHealthcheck adapts a client to the func(ctx) error shape used by
// health aggregators.
func RedisHealthcheck(client redis.UniversalClient) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrDial
		}
		return client.Ping(ctx).Err()
	}
}

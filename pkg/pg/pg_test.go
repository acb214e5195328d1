package pg_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appkit-dev/appkit/pkg/config"
	"github.com/appkit-dev/appkit/pkg/pg"
)

func TestFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("explicit values", func(t *testing.T) {
		t.Parallel()

		cfg := config.New(map[string]any{
			"url":                "postgres://app:secret@db:5432/app",
			"max_conns":          20,
			"min_conns":          4,
			"max_conn_idle_time": "5m",
			"retry_attempts":     5,
		})

		s := pg.FromConfig(cfg)
		assert.Equal(t, "postgres://app:secret@db:5432/app", s.URL)
		assert.Equal(t, int32(20), s.MaxConns)
		assert.Equal(t, int32(4), s.MinConns)
		assert.Equal(t, 5*time.Minute, s.MaxConnIdleTime)
		assert.Equal(t, 5, s.RetryAttempts)
	})

	t.Run("defaults fill missing keys", func(t *testing.T) {
		t.Parallel()

		s := pg.FromConfig(config.New(map[string]any{
			"url": "postgres://localhost/app",
		}))
		assert.Equal(t, int32(10), s.MaxConns)
		assert.Equal(t, int32(2), s.MinConns)
		assert.Equal(t, 30*time.Minute, s.MaxConnLifetime)
		assert.Equal(t, time.Minute, s.HealthCheckPeriod)
		assert.Equal(t, 3, s.RetryAttempts)
		assert.Equal(t, 5*time.Second, s.RetryInterval)
	})
}

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("malformed url", func(t *testing.T) {
		t.Parallel()

		_, err := pg.Connect(context.Background(), pg.Settings{URL: "://not-a-url"})
		require.ErrorIs(t, err, pg.ErrParseURL)
	})
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	check := pg.Healthcheck(nil)
	require.ErrorIs(t, check(context.Background()), pg.ErrHealthcheck)
}

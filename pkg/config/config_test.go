package config_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appkit-dev/appkit/pkg/config"
)

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"app.yaml": &fstest.MapFile{Data: []byte(`
app:
  name: bookstore
  debug: false
server:
  addr: ":8080"
  timeout: 15s
database:
  pool: 10
`)},
		"app.local.yaml": &fstest.MapFile{Data: []byte(`
app:
  debug: true
database:
  pool: 3
`)},
		"features.json": &fstest.MapFile{Data: []byte(`{"features": {"uploads": true}}`)},
	}

	t.Run("single file", func(t *testing.T) {
		cfg, err := config.Load(fsys, "app.yaml")
		require.NoError(t, err)

		assert.Equal(t, "bookstore", cfg.String("app.name", ""))
		assert.Equal(t, ":8080", cfg.String("server.addr", ""))
		assert.Equal(t, 10, cfg.Int("database.pool", 0))
		assert.False(t, cfg.Bool("app.debug", true))
	})

	t.Run("later files override", func(t *testing.T) {
		cfg, err := config.Load(fsys, "app.yaml", "app.local.yaml")
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.Int("database.pool", 0))
		assert.True(t, cfg.Bool("app.debug", false))
		// Untouched keys survive the merge.
		assert.Equal(t, "bookstore", cfg.String("app.name", ""))
		assert.Equal(t, ":8080", cfg.String("server.addr", ""))
	})

	t.Run("json file", func(t *testing.T) {
		cfg, err := config.Load(fsys, "features.json")
		require.NoError(t, err)
		assert.True(t, cfg.Bool("features.uploads", false))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(fsys, "nope.yaml")
		require.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := config.Load(fstest.MapFS{"app.toml": &fstest.MapFile{Data: []byte("x = 1")}}, "app.toml")
		require.ErrorIs(t, err, config.ErrUnsupportedFormat)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Load(fstest.MapFS{"bad.yaml": &fstest.MapFile{Data: []byte("{{nope")}}, "bad.yaml")
		require.ErrorIs(t, err, config.ErrInvalidFile)
	})
}

func TestEnvExpansion(t *testing.T) {
	t.Setenv("APP_NAME", "bookstore")
	t.Setenv("EMPTY_VAR", "")

	fsys := fstest.MapFS{
		"app.yaml": &fstest.MapFile{Data: []byte(`
app:
  name: "${APP_NAME}"
  region: "${APP_REGION:-eu-west-1}"
  literal: "$$HOME"
`)},
		"strict.yaml": &fstest.MapFile{Data: []byte(`
secret: "${APP_SECRET:?app secret is required}"
`)},
	}

	t.Run("substitution and fallback", func(t *testing.T) {
		cfg, err := config.Load(fsys, "app.yaml")
		require.NoError(t, err)

		assert.Equal(t, "bookstore", cfg.String("app.name", ""))
		assert.Equal(t, "eu-west-1", cfg.String("app.region", ""))
		assert.Equal(t, "$HOME", cfg.String("app.literal", ""))
	})

	t.Run("required missing", func(t *testing.T) {
		_, err := config.Load(fsys, "strict.yaml")
		require.ErrorIs(t, err, config.ErrRequiredEnv)
		assert.Contains(t, err.Error(), "app secret is required")
	})

	t.Run("fallback on empty value", func(t *testing.T) {
		cfg, err := config.Load(fstest.MapFS{
			"e.yaml": &fstest.MapFile{Data: []byte(`v: "${EMPTY_VAR:-fallback}"`)},
		}, "e.yaml")
		require.NoError(t, err)
		assert.Equal(t, "fallback", cfg.String("v", ""))
	})
}

func TestConfigAccessors(t *testing.T) {
	t.Parallel()

	cfg := config.New(map[string]any{
		"server": map[string]any{
			"timeout": "30s",
			"retries": 5,
		},
		"replicas": []any{
			map[string]any{"host": "db-0"},
			map[string]any{"host": "db-1"},
		},
	})

	assert.Equal(t, 30*time.Second, cfg.Duration("server.timeout", 0))
	assert.Equal(t, time.Minute, cfg.Duration("server.missing", time.Minute))
	assert.Equal(t, 5, cfg.Int("server.retries", 0))
	assert.Equal(t, "db-1", cfg.String("replicas.1.host", ""))
	assert.True(t, cfg.Has("server.timeout"))
	assert.False(t, cfg.Has("server.nope"))

	sub := cfg.Sub("server")
	assert.Equal(t, 5, sub.Int("retries", 0))
	assert.Empty(t, cfg.Sub("missing").All())

	flat := cfg.All()
	assert.Equal(t, "30s", flat["server.timeout"])
}

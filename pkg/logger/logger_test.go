package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appkit-dev/appkit/pkg/logger"
)

type ctxKey string

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))
		log.Info("hello", slog.String("answer", "42"))

		entry := decode(t, &buf)
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "42", entry["answer"])
	})

	t.Run("level filtering", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Zero(t, buf.Len())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("debug level enabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
		log.Debug("verbose")
		assert.Contains(t, buf.String(), "verbose")
	})
}

func TestContextExtraction(t *testing.T) {
	t.Parallel()

	key := ctxKey("request_id")
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := ctx.Value(key).(string); ok && id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}

	t.Run("attribute injected from context", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(extractor))

		ctx := context.WithValue(context.Background(), key, "req-123")
		log.InfoContext(ctx, "handled")

		entry := decode(t, &buf)
		assert.Equal(t, "req-123", entry["request_id"])
	})

	t.Run("missing value skips attribute", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(extractor))
		log.InfoContext(context.Background(), "handled")

		entry := decode(t, &buf)
		_, present := entry["request_id"]
		assert.False(t, present)
	})

	t.Run("nil extractors ignored", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(nil, extractor))
		log.Info("still works")
		assert.Contains(t, buf.String(), "still works")
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	require.NotNil(t, log)
	log.Info("nowhere")
	log.Error("nowhere either")
}

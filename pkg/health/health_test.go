package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appkit-dev/appkit/pkg/health"
)

func TestCheckerRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("no checks always passes", func(t *testing.T) {
		t.Parallel()

		report := health.New().Run(ctx)
		assert.Equal(t, health.StatusPass, report.Status)
		assert.Empty(t, report.Checks)
	})

	t.Run("all passing", func(t *testing.T) {
		t.Parallel()

		checker := health.New(
			health.WithCheck("a", func(context.Context) error { return nil }),
			health.WithCheck("b", func(context.Context) error { return nil }),
		)

		report := checker.Run(ctx)
		assert.Equal(t, health.StatusPass, report.Status)
		assert.Len(t, report.Checks, 2)
		assert.Equal(t, health.StatusPass, report.Checks["a"].Status)
	})

	t.Run("one failure fails the report", func(t *testing.T) {
		t.Parallel()

		checker := health.New(
			health.WithCheck("ok", func(context.Context) error { return nil }),
			health.WithCheck("down", func(context.Context) error { return errors.New("connection refused") }),
		)

		report := checker.Run(ctx)
		assert.Equal(t, health.StatusFail, report.Status)
		assert.Equal(t, health.StatusFail, report.Checks["down"].Status)
		assert.Equal(t, "connection refused", report.Checks["down"].Error)
		assert.Equal(t, health.StatusPass, report.Checks["ok"].Status)
	})

	t.Run("timeout cancels slow checks", func(t *testing.T) {
		t.Parallel()

		checker := health.New(
			health.WithTimeout(10*time.Millisecond),
			health.WithCheck("slow", func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			}),
		)

		report := checker.Run(ctx)
		assert.Equal(t, health.StatusFail, report.Status)
	})
}

func TestCheckerHandler(t *testing.T) {
	t.Parallel()

	t.Run("passing report", func(t *testing.T) {
		t.Parallel()

		checker := health.New(
			health.WithCheck("db", func(context.Context) error { return nil }),
		)

		rec := httptest.NewRecorder()
		checker.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var report health.Report
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, health.StatusPass, report.Status)
	})

	t.Run("failing report", func(t *testing.T) {
		t.Parallel()

		checker := health.New(
			health.WithCheck("db", func(context.Context) error { return errors.New("down") }),
		)

		rec := httptest.NewRecorder()
		checker.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

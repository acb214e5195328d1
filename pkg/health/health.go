package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

const (
	// StatusPass marks a healthy check or report.
	StatusPass = "pass"
	// StatusFail marks a failed check or report.
	StatusFail = "fail"

	defaultTimeout = 5 * time.Second
)

// CheckFunc probes one dependency. A nil error means healthy.
type CheckFunc func(ctx context.Context) error

// Report is the aggregated result of one run.
type Report struct {
	Status string           `json:"status"`
	Checks map[string]Check `json:"checks,omitempty"`
}

// Check is the outcome of a single named check.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Checker runs a fixed set of named checks. Immutable after New.
type Checker struct {
	checks  map[string]CheckFunc
	timeout time.Duration
}

// Option configures a Checker.
type Option func(*Checker)

// WithCheck registers a named check. Registering the same name twice
// keeps the last one.
func WithCheck(name string, fn CheckFunc) Option {
	return func(c *Checker) {
		if name != "" && fn != nil {
			c.checks[name] = fn
		}
	}
}

// WithTimeout bounds a whole run. Default is 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New builds a Checker. A Checker with no checks always reports passing.
func New(opts ...Option) *Checker {
	c := &Checker{
		checks:  make(map[string]CheckFunc),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes every check concurrently under the configured timeout
// and aggregates the outcomes.
func (c *Checker) Run(ctx context.Context) Report {
	report := Report{Status: StatusPass}
	if len(c.checks) == 0 {
		return report
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	report.Checks = make(map[string]Check, len(c.checks))

	for name, fn := range c.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			result := Check{Status: StatusPass}
			if err := fn(ctx); err != nil {
				result = Check{Status: StatusFail, Error: err.Error()}
			}

			mu.Lock()
			report.Checks[name] = result
			if result.Status == StatusFail {
				report.Status = StatusFail
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	return report
}

// Handler serves the report as JSON: 200 when passing, 503 otherwise.
func (c *Checker) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report := c.Run(r.Context())

		status := http.StatusOK
		if report.Status == StatusFail {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
	})
}

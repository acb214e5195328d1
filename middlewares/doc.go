// Package middlewares provides net/http middleware used across appkit
// applications.
//
// All middleware are plain func(http.Handler) http.Handler decorators, so
// they compose with chi and every other stdlib-compatible router:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID())
//	r.Use(middlewares.Logging(log))
//	r.Use(middlewares.Recover(log))
//
// RequestID assigns each request a unique id (header passthrough or UUID),
// Logging writes one structured line per request, and Recover converts
// panics into 500 responses with a logged stack trace and optional Sentry
// capture.
package middlewares

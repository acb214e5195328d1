// Package health aggregates named dependency checks behind a single
// JSON endpoint.
//
// Checks are plain func(ctx) error closures, the shape produced by
// pg.Healthcheck and cache.RedisHealthcheck:
//
//	checker := health.New(
//		health.WithCheck("postgres", pg.Healthcheck(pool)),
//		health.WithCheck("redis", cache.RedisHealthcheck(client)),
//	)
//	mux.Handle("/healthz", checker.Handler())
//
// Checks run concurrently under a shared timeout. The endpoint answers
// 200 when every check passes and 503 otherwise, with a per-check
// breakdown in the body.
package health

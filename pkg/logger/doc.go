// Package logger builds slog loggers with context-attribute extraction and
// optional Sentry forwarding.
//
// Loggers are configured with functional options:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(tenant.LogExtractor()),
//		logger.WithSentry(os.Getenv("SENTRY_DSN"), "production"),
//	)
//
//	log.InfoContext(ctx, "user created", slog.String("user_id", id))
//
// Extractors run on every log call, so request-scoped values (request id,
// tenant) are picked up from the context automatically. When the Sentry DSN
// is empty the logger degrades to stdout-only output, which keeps the same
// construction path usable in development.
package logger

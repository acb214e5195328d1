// Package appkit is a toolkit for building multi-tenant web
// applications in Go. It is a collection of small, composable packages
// rather than a framework: each package under pkg/ stands alone, and
// middlewares/ carries the plain net/http middleware that ties them to
// a router.
//
// The core packages:
//
//   - pkg/dotpath: dot-notation access into nested data
//   - pkg/placeholder: {path} template rendering over dotpath
//   - pkg/config: layered YAML/JSON configuration with env expansion
//   - pkg/form: request binding, sanitization, and validation
//   - pkg/tenant: tenant resolution, context plumbing, query scoping
//   - pkg/audit: change tracking with pluggable stores
//   - pkg/notification: markdown templates delivered over channels
//   - pkg/upload: validated file uploads to S3-compatible storage
//   - pkg/cache, pkg/pg, pkg/health, pkg/logger: infrastructure glue
//
// See examples/blog for a complete application wiring them together.
package appkit

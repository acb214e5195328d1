// Package config loads application configuration from YAML and JSON files
// and exposes it through dot-path reads with defaults.
//
// Files are loaded in the given order and deep-merged, so later files
// override earlier ones (base config plus environment-specific overrides).
// Before parsing, ${VAR} references are expanded from the process
// environment with optional fallback and required-value operators:
//
//	database:
//	  url: "${DATABASE_URL:?database url is required}"
//	  pool: ${DB_POOL:-10}
//
// A loaded Config is immutable and safe for concurrent use:
//
//	cfg, err := config.Load(os.DirFS("configs"), "app.yaml", "app.local.yaml")
//	if err != nil {
//		return err
//	}
//
//	addr := cfg.String("server.addr", ":8080")
//	pool := cfg.Int("database.pool", 10)
//
// Reads resolve through [github.com/appkit-dev/appkit/pkg/dotpath], so any
// nesting depth is addressable ("database.replicas.0.host").
package config

// Package pg establishes PostgreSQL connection pools with startup
// retry, and carries the small transaction and healthcheck helpers the
// rest of the toolkit builds on.
//
// Pool settings come either from a Settings literal or from a loaded
// configuration tree:
//
//	settings := pg.FromConfig(cfg.Sub("database"))
//	pool, err := pg.Connect(ctx, settings)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
// Connect retries with linear backoff so a service starting alongside
// its database does not crash-loop on the first refused connection.
package pg

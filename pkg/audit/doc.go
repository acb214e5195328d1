// Package audit records an immutable trail of data changes: who changed
// what, when, and which fields moved from which value to which.
//
// Change sets are computed from before/after snapshots of an entity,
// flattened to dot-form field paths so nested structures diff field by
// field:
//
//	changes := audit.Changes(
//		map[string]any{"name": "Ada", "address": map[string]any{"city": "London"}},
//		map[string]any{"name": "Ada", "address": map[string]any{"city": "Paris"}},
//	)
//	// [{Field: "address.city", Old: "London", New: "Paris"}]
//
// A Recorder writes entries through a Store. The package ships a
// PostgreSQL store (pgx) for durable trails and a log store that renders
// entries through slog for development:
//
//	rec := audit.NewRecorder(audit.NewPGStore(pool))
//	err := rec.Record(ctx, audit.Entry{
//		Actor:      userID,
//		Action:     audit.ActionUpdate,
//		EntityKind: "user",
//		EntityID:   userID,
//		Changes:    changes,
//	})
//
// Recording failures are returned as errors and never panic; audit writes
// should not take the mutating request down with them, so callers decide
// whether a failed write is fatal.
package audit

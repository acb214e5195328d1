package audit

import (
	"context"
	"log/slog"
)

// LogStore renders entries through slog instead of persisting them.
// Suitable for development and for deployments where the trail lives in
// the log pipeline.
type LogStore struct {
	log *slog.Logger
}

// NewLogStore creates a store writing entries to log.
func NewLogStore(log *slog.Logger) *LogStore {
	if log == nil {
		log = slog.Default()
	}
	return &LogStore{log: log}
}

func (s *LogStore) Insert(ctx context.Context, entry Entry) error {
	attrs := []slog.Attr{
		slog.String("audit_id", entry.ID.String()),
		slog.String("actor", entry.Actor),
		slog.String("action", string(entry.Action)),
		slog.String("entity_kind", entry.EntityKind),
		slog.String("entity_id", entry.EntityID),
		slog.Time("occurred_at", entry.OccurredAt),
	}
	if entry.TenantID != "" {
		attrs = append(attrs, slog.String("tenant_id", entry.TenantID))
	}
	for _, ch := range entry.Changes {
		attrs = append(attrs, slog.Group(ch.Field,
			slog.Any("old", ch.Old),
			slog.Any("new", ch.New),
		))
	}

	s.log.LogAttrs(ctx, slog.LevelInfo, "audit", attrs...)
	return nil
}

package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the DDL expected by PGStore. Apply it with your migration
// tooling of choice.
const Schema = `
CREATE TABLE IF NOT EXISTS audit_entries (
	id          UUID PRIMARY KEY,
	tenant_id   TEXT NOT NULL DEFAULT '',
	actor       TEXT NOT NULL DEFAULT '',
	action      TEXT NOT NULL,
	entity_kind TEXT NOT NULL,
	entity_id   TEXT NOT NULL DEFAULT '',
	changes     JSONB NOT NULL DEFAULT '[]',
	metadata    JSONB NOT NULL DEFAULT '{}',
	occurred_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS audit_entries_entity_idx
	ON audit_entries (entity_kind, entity_id, occurred_at DESC);
CREATE INDEX IF NOT EXISTS audit_entries_tenant_idx
	ON audit_entries (tenant_id, occurred_at DESC);`

// PGStore persists audit entries in PostgreSQL.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a store backed by the given pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Insert writes the entry. Change set and metadata are stored as JSONB.
func (s *PGStore) Insert(ctx context.Context, entry Entry) error {
	changes, err := json.Marshal(entry.Changes)
	if err != nil {
		return fmt.Errorf("audit: marshaling changes: %w", err)
	}
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("audit: marshaling metadata: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO audit_entries
			(id, tenant_id, actor, action, entity_kind, entity_id, changes, metadata, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.TenantID, entry.Actor, string(entry.Action),
		entry.EntityKind, entry.EntityID, changes, metadata, entry.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("audit: inserting entry: %w", err)
	}
	return nil
}

// Get loads a single entry by id.
func (s *PGStore) Get(ctx context.Context, id uuid.UUID) (Entry, error) {
	if id == uuid.Nil {
		return Entry{}, ErrInvalidEntryID
	}

	row := s.pool.QueryRow(ctx, `
		SELECT id, tenant_id, actor, action, entity_kind, entity_id, changes, metadata, occurred_at
		FROM audit_entries WHERE id = $1`, id)

	entry, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, ErrEntryNotFound
	}
	return entry, err
}

// History returns the entries for one entity, newest first.
func (s *PGStore) History(ctx context.Context, entityKind, entityID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, tenant_id, actor, action, entity_kind, entity_id, changes, metadata, occurred_at
		FROM audit_entries
		WHERE entity_kind = $1 AND entity_id = $2
		ORDER BY occurred_at DESC
		LIMIT $3`, entityKind, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("audit: querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanEntry(row pgx.Row) (Entry, error) {
	var (
		entry    Entry
		action   string
		changes  []byte
		metadata []byte
	)

	err := row.Scan(&entry.ID, &entry.TenantID, &entry.Actor, &action,
		&entry.EntityKind, &entry.EntityID, &changes, &metadata, &entry.OccurredAt)
	if err != nil {
		return Entry{}, err
	}

	entry.Action = Action(action)
	if len(changes) > 0 {
		if err := json.Unmarshal(changes, &entry.Changes); err != nil {
			return Entry{}, fmt.Errorf("audit: unmarshaling changes: %w", err)
		}
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &entry.Metadata); err != nil {
			return Entry{}, fmt.Errorf("audit: unmarshaling metadata: %w", err)
		}
	}
	return entry, nil
}

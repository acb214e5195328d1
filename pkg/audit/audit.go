package audit

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/appkit-dev/appkit/pkg/dotpath"
	"github.com/appkit-dev/appkit/pkg/tenant"
)

// Action classifies what happened to the audited entity.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Valid reports whether the action is one of the known values.
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// Change describes a single field transition. Field is a dot-form path into
// the entity's state.
type Change struct {
	Field string `json:"field"`
	Old   any    `json:"old,omitempty"`
	New   any    `json:"new,omitempty"`
}

// Entry is one audit trail record.
type Entry struct {
	ID         uuid.UUID      `json:"id"`
	TenantID   string         `json:"tenant_id,omitempty"`
	Actor      string         `json:"actor"`
	Action     Action         `json:"action"`
	EntityKind string         `json:"entity_kind"`
	EntityID   string         `json:"entity_id"`
	Changes    []Change       `json:"changes,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Store persists audit entries.
type Store interface {
	Insert(ctx context.Context, entry Entry) error
}

// Recorder validates and records audit entries through a Store.
type Recorder struct {
	store Store
	now   func() time.Time
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithClock overrides the time source, used in tests.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRecorder creates a Recorder writing to store.
func NewRecorder(store Store, opts ...RecorderOption) *Recorder {
	r := &Recorder{store: store, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record fills in defaults (id, timestamp, tenant from context) and
// persists the entry. Validation failures and store failures are returned
// as errors; Record never panics.
func (r *Recorder) Record(ctx context.Context, entry Entry) error {
	if r.store == nil {
		return ErrNilStore
	}
	if entry.Action == "" {
		return ErrEmptyAction
	}
	if !entry.Action.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAction, entry.Action)
	}
	if entry.EntityKind == "" {
		return ErrEmptyEntity
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = r.now().UTC()
	}
	if entry.TenantID == "" {
		if t, ok := tenant.FromContext(ctx); ok {
			entry.TenantID = t.ID
		}
	}

	if err := r.store.Insert(ctx, entry); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

// Changes computes the field-level difference between two entity snapshots.
// Both snapshots are flattened to dot-form paths first, so nested maps diff
// leaf by leaf. The result is sorted by field for deterministic output.
func Changes(before, after map[string]any) []Change {
	flatOld := dotpath.Flatten(before, "")
	flatNew := dotpath.Flatten(after, "")

	var changes []Change

	for field, oldVal := range flatOld {
		newVal, exists := flatNew[field]
		switch {
		case !exists:
			changes = append(changes, Change{Field: field, Old: oldVal})
		case !equal(oldVal, newVal):
			changes = append(changes, Change{Field: field, Old: oldVal, New: newVal})
		}
	}

	for field, newVal := range flatNew {
		if _, exists := flatOld[field]; !exists {
			changes = append(changes, Change{Field: field, New: newVal})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Field < changes[j].Field
	})

	return changes
}

func equal(a, b any) bool {
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

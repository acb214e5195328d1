package audit

import "errors"

var (
	ErrNilStore       = errors.New("audit: store cannot be nil")
	ErrEmptyAction    = errors.New("audit: action cannot be empty")
	ErrEmptyEntity    = errors.New("audit: entity kind cannot be empty")
	ErrStoreFailed    = errors.New("audit: failed to persist entry")
	ErrInvalidAction  = errors.New("audit: invalid action")
	ErrEntryNotFound  = errors.New("audit: entry not found")
	ErrInvalidEntryID = errors.New("audit: invalid entry id")
)

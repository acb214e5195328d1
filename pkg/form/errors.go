package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotPointer         = errors.New("form: destination must be a non-nil struct pointer")
	ErrUnsupportedContent = errors.New("form: unsupported content type")
	ErrMalformedBody      = errors.New("form: malformed request body")
	ErrBadRule            = errors.New("form: malformed validation rule")
)

// Errors maps field names to their validation failures. It implements
// error so it can travel through ordinary error returns.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return "form: validation failed: " + strings.Join(parts, ", ")
}

// Add appends a message for a field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether the field failed validation.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

package tenant

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ScopeQuery appends a tenant guard to a SQL statement using positional
// pgx placeholders. The tenant id is appended to args and referenced by the
// next free placeholder:
//
//	ScopeQuery("SELECT * FROM posts WHERE published = $1", []any{true}, "t1")
//	// "SELECT * FROM posts WHERE published = $1 AND tenant_id = $2", [true "t1"]
//
// Statements without a WHERE clause get one.
func ScopeQuery(query string, args []any, tenantID string) (string, []any) {
	keyword := "WHERE"
	if containsWhere(query) {
		keyword = "AND"
	}

	scoped := fmt.Sprintf("%s %s tenant_id = $%d", strings.TrimRight(query, " \t\n;"), keyword, len(args)+1)
	return scoped, append(args, tenantID)
}

func containsWhere(query string) bool {
	upper := strings.ToUpper(query)
	for idx := 0; ; {
		i := strings.Index(upper[idx:], "WHERE")
		if i == -1 {
			return false
		}
		i += idx
		before := i == 0 || isSQLBoundary(upper[i-1])
		after := i+5 >= len(upper) || isSQLBoundary(upper[i+5])
		if before && after {
			return true
		}
		idx = i + 5
	}
}

func isSQLBoundary(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '(' || ch == ')'
}

// Querier is the subset of pgx.Pool/pgx.Tx needed for scoped reads.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Query runs a tenant-scoped query using the tenant from the context.
// Returns ErrNoTenant when the context carries none, so unscoped access
// fails loudly instead of leaking cross-tenant rows.
func Query(ctx context.Context, q Querier, query string, args ...any) (pgx.Rows, error) {
	t, ok := FromContext(ctx)
	if !ok {
		return nil, ErrNoTenant
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	scoped, scopedArgs := ScopeQuery(query, args, t.ID)
	return q.Query(ctx, scoped, scopedArgs...)
}

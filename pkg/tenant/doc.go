// Package tenant provides multi-tenancy scoping for HTTP handlers and
// database queries.
//
// A Tenant is resolved once per request (from a subdomain or a header),
// stored in the request context, and read back by anything downstream that
// needs tenant isolation:
//
//	resolver := tenant.NewSubdomainResolver("example.com", lookup)
//
//	r.Use(tenant.Require(resolver))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		t, _ := tenant.FromContext(r.Context())
//		query, args := tenant.ScopeQuery(
//			"SELECT * FROM posts WHERE published = $1", []any{true}, t.ID)
//		// "SELECT * FROM posts WHERE published = $1 AND tenant_id = $2"
//	}
//
// Requests that resolve no tenant are rejected with 403 by the Require
// middleware; handlers behind it can assume a tenant is always present.
package tenant

// Package rbac provides role-gating middleware. A valid token with the
// wrong role gets 403; middleware.Auth must run first so the role is in
// context.
package rbac

import (
	"net/http"

	"eshop-back/pkg/middleware"
	"eshop-back/pkg/response"
)

// HasRole allows only callers whose role is in the given set.
func HasRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := middleware.RoleFromCtx(r.Context())
			if !ok || !allowed[role] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/utils"
)

// RequireAuth blocks when no authenticated subject is present in context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		aid, ok := utils.GetString(r.Context(), CtxAdminID)
		if !ok || aid == "" {
			utils.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin is the session gate in front of every mutating/admin route:
// unauthorized calls fail here, before any core logic runs.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		aid, _ := utils.GetString(r.Context(), CtxAdminID)
		if aid == "" {
			utils.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		role, _ := utils.GetString(r.Context(), CtxRole)
		if role != "admin" {
			utils.Error(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

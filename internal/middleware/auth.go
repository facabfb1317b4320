package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/config"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/utils"
)

type ctxKey string

const (
	CtxAdminID ctxKey = "aid"
	CtxRole    ctxKey = "role"
)

// WithAuth resolves the session JWT into context values. Requests without a
// valid token pass through unauthenticated; the authorization middleware
// decides whether that is acceptable per route.
func WithAuth(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Read JWT from cookie "session" or Authorization: Bearer
			var tok string
			if c, err := r.Cookie("session"); err == nil {
				tok = c.Value
			} else if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tok = strings.TrimPrefix(h, "Bearer ")
			}

			if tok == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := utils.ParseJWT(cfg.SessionSecret, tok)
			if err != nil {
				// clear broken/expired cookie so it stops being sent
				http.SetCookie(w, &http.Cookie{
					Name:     "session",
					Value:    "",
					Path:     "/",
					HttpOnly: true,
					MaxAge:   -1,
				})
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), CtxAdminID, claims.AdminID)
			ctx = context.WithValue(ctx, CtxRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

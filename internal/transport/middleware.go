package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/goaoxor/workbench/internal/session"
)

type userKey struct{}

// CurrentUser returns the authenticated username from context, if present.
func CurrentUser(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(userKey{}).(string)
	return username, ok
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

// authMiddleware enforces a live session token on protected routes.
func authMiddleware(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "not_authenticated", "missing bearer token")
				return
			}

			username, ok := sessions.Resolve(token)
			if !ok {
				writeError(w, http.StatusUnauthorized, "not_authenticated", "invalid session token")
				return
			}

			ctx := context.WithValue(r.Context(), userKey{}, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

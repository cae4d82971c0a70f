package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/battleworld/backend/pkg/ctxutil"
)

// tokenValidator checks a session token and returns the user id plus the
// role claim snapshotted at login.
type tokenValidator interface {
	ValidateSessionToken(token string) (uuid.UUID, string, error)
}

// Auth validates the bearer token, if present, and stores the user id and
// role claim in the request context. Requests without a token pass through
// anonymous; per-operation checks reject them where identity is required.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, role, err := validator.ValidateSessionToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

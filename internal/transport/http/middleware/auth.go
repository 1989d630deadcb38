package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"hrconsole/internal/domain/auth"
)

// UserLookup confirms a token's subject still has an account.
type UserLookup interface {
	FindUser(ctx context.Context, userID string) (auth.User, bool, error)
}

// Auth attaches the bearer token's caller to the request context. Requests
// without a valid token pass through anonymously; RequirePermission rejects
// them where a route needs a caller. When users is non-nil, tokens whose
// account has gone are ignored and the stored role wins over the claim.
func Auth(secret string, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user := auth.UserContext{
				UserID:   claims.UserID,
				Name:     claims.Name,
				RoleName: claims.RoleName,
			}
			if users != nil {
				stored, ok, err := users.FindUser(r.Context(), claims.UserID)
				if err != nil {
					slog.Warn("auth user lookup failed", "err", err, "userId", claims.UserID)
					next.ServeHTTP(w, r)
					return
				}
				if !ok {
					next.ServeHTTP(w, r)
					return
				}
				user = stored.Context()
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

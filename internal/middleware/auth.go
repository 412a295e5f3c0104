package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/telemetry"
)


const bearerPrefix = "Bearer "

// BearerToken returns the token of an "Authorization: Bearer <token>" header,
// or "" when the header is absent or uses another scheme.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}

// RequireAuth resolves the bearer token to a user and rejects the request with
// 401 when the token is missing, invalid, expired, or names a deleted user.
func RequireAuth(auth domain.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.Authenticate(r.Context(), BearerToken(r))
			if err != nil {
				if domain.ErrorCode(err) == domain.EUNAUTHORIZED {
					respondUnauthorized(w, r, err)
					return
				}
				respondInternalError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
		})
	}
}

// WithUser attaches the user when a valid bearer token is present and lets
// anonymous requests through unchanged.
func WithUser(auth domain.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
		})
	}
}

// withUser stores the user and tags the request logger and Sentry scope with it.
func withUser(ctx context.Context, user *domain.User) context.Context {
	ctx = domain.NewContextWithUser(ctx, user)
	ctx = withLogger(ctx, GetLogger(ctx).With("user_id", user.ID.String()))
	telemetry.SetRequestUser(ctx, user.ID.String(), string(user.Role))
	return ctx
}

// GetUserFromContext retrieves the user from the request context
// Returns nil if no user is authenticated
func GetUserFromContext(ctx context.Context) *domain.User {
	return domain.UserFromContext(ctx)
}

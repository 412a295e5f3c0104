// Package domain provides the core marketplace types, the order status
// machine, error codes, and request context helpers.
package domain

import (
	"context"

	"github.com/google/uuid"
)

type (
	userKey      struct{}
	requestIDKey struct{}
)

// NewContextWithUser attaches the authenticated user. Set by middleware.WithUser.
func NewContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext returns the authenticated user, or nil for anonymous requests.
func UserFromContext(ctx context.Context) *User {
	user, _ := ctx.Value(userKey{}).(*User)
	return user
}

func UserIDFromContext(ctx context.Context) uuid.UUID {
	if user := UserFromContext(ctx); user != nil {
		return user.ID
	}
	return uuid.Nil
}

// RequireUserID is for handlers mounted behind RequireAuth. A missing user is
// a routing bug, so it panics and router.Recovery answers 500.
func RequireUserID(ctx context.Context) uuid.UUID {
	id := UserIDFromContext(ctx)
	if id == uuid.Nil {
		panic("domain: no authenticated user in context")
	}
	return id
}

// MustUser is RequireUserID for the whole user.
func MustUser(ctx context.Context) *User {
	user := UserFromContext(ctx)
	if user == nil {
		panic("domain: no authenticated user in context")
	}
	return user
}

func IsAuthenticated(ctx context.Context) bool {
	return UserFromContext(ctx) != nil
}

func NewContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

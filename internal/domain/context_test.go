package domain

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUserContext(t *testing.T) {
	t.Run("UserFromContext returns nil when no user", func(t *testing.T) {
		if user := UserFromContext(context.Background()); user != nil {
			t.Errorf("expected nil user, got %+v", user)
		}
	})

	t.Run("UserFromContext returns user when set", func(t *testing.T) {
		expected := &User{ID: uuid.New(), Mobile: "9876543210", Role: RoleShopOwner}
		ctx := NewContextWithUser(context.Background(), expected)

		user := UserFromContext(ctx)
		if user == nil {
			t.Fatal("expected user, got nil")
		}
		if user.ID != expected.ID {
			t.Errorf("expected ID %v, got %v", expected.ID, user.ID)
		}
		if user.Role != RoleShopOwner {
			t.Errorf("expected role %q, got %q", RoleShopOwner, user.Role)
		}
	})

	t.Run("UserIDFromContext returns uuid.Nil when no user", func(t *testing.T) {
		if id := UserIDFromContext(context.Background()); id != uuid.Nil {
			t.Errorf("expected uuid.Nil, got %v", id)
		}
	})

	t.Run("RequireUserID panics when no user", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic, got none")
			}
		}()
		RequireUserID(context.Background())
	})

	t.Run("RequireUserID returns ID when user set", func(t *testing.T) {
		expected := &User{ID: uuid.New()}
		ctx := NewContextWithUser(context.Background(), expected)

		if id := RequireUserID(ctx); id != expected.ID {
			t.Errorf("expected %v, got %v", expected.ID, id)
		}
	})

	t.Run("MustUser panics when no user", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic, got none")
			}
		}()
		MustUser(context.Background())
	})

	t.Run("IsAuthenticated", func(t *testing.T) {
		if IsAuthenticated(context.Background()) {
			t.Error("expected unauthenticated context")
		}
		ctx := NewContextWithUser(context.Background(), &User{ID: uuid.New()})
		if !IsAuthenticated(ctx) {
			t.Error("expected authenticated context")
		}
	})
}

func TestRequestIDContext(t *testing.T) {
	if id := RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("expected empty request ID, got %q", id)
	}

	ctx := NewContextWithRequestID(context.Background(), "req-123")
	if id := RequestIDFromContext(ctx); id != "req-123" {
		t.Errorf("expected %q, got %q", "req-123", id)
	}
}

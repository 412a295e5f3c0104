package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      &Error{Code: EINVALID, Message: "invalid input"},
			expected: "invalid input",
		},
		{
			name:     "with operation",
			err:      &Error{Code: EINVALID, Op: "shop.create", Message: "invalid input"},
			expected: "shop.create: invalid input",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "order.create",
				Message: "failed to save",
				Err:     errors.New("connection refused"),
			},
			expected: "order.create: failed to save: connection refused",
		},
		{
			name: "wrapped error without op",
			err: &Error{
				Code:    EINTERNAL,
				Message: "failed to save",
				Err:     errors.New("connection refused"),
			},
			expected: "failed to save: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Wrapf(t *testing.T) {
	err := ErrAlreadyTerminal.Wrapf("Cannot cancel order with status: %s", OrderStatusCompleted)

	if !errors.Is(err, ErrAlreadyTerminal) {
		t.Error("errors.Is should match the sentinel")
	}
	if got := ErrorCode(err); got != EINVALID {
		t.Errorf("ErrorCode() = %q, want %q", got, EINVALID)
	}
	if got := ErrorMessage(err); got != "Cannot cancel order with status: completed" {
		t.Errorf("ErrorMessage() = %q", got)
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"domain error", &Error{Code: ENOTFOUND}, ENOTFOUND},
		{"wrapped domain error", fmt.Errorf("handler: %w", ErrShopNotFound), ENOTFOUND},
		{"validation error", NewValidationError("signup", "mobile", "required"), EINVALID},
		{"standard error", errors.New("boom"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	generic := InternalMessage

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"domain error", ErrEmptyOrder, "Order must have at least one item"},
		{"internal error hides details", Internal(errors.New("pq: password"), "order.create", "db down"), generic},
		{"standard error hides details", errors.New("secret"), generic},
		{
			name: "validation error uses first field",
			err: &ValidationError{Fields: map[string]string{
				"password": "password is too short",
				"mobile":   "mobile is required",
			}},
			expected: "mobile is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorOp(t *testing.T) {
	if got := ErrorOp(Invalid("cart.add", "bad")); got != "cart.add" {
		t.Errorf("ErrorOp() = %q, want %q", got, "cart.add")
	}
	if got := ErrorOp(errors.New("plain")); got != "" {
		t.Errorf("ErrorOp() = %q, want empty", got)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("auth.signup", "mobile", "mobile is required")

	if got := err.Error(); got != "auth.signup: invalid mobile" {
		t.Errorf("Error() = %q", got)
	}

	err = AddFieldError(err, "password", "password is required")
	fields := GetValidationFields(err)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if got := err.Error(); got != "auth.signup: invalid mobile, password" {
		t.Errorf("Error() = %q", got)
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError should be true")
	}
	if IsValidationError(ErrShopNotFound) {
		t.Error("domain error is not a validation error")
	}
	if GetValidationFields(errors.New("x")) != nil {
		t.Error("expected nil fields for non-validation error")
	}
}

func TestConvenienceFunctions(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"Unauthorized", Unauthorized("auth.me", "no token"), EUNAUTHORIZED},
		{"Forbidden", Forbidden("shop.delete", "not owner"), EFORBIDDEN},
		{"Invalid", Invalid("product.create", "bad price"), EINVALID},
		{"Conflict", Conflict("shop.create", "duplicate"), ECONFLICT},
		{"Internal", Internal(errors.New("x"), "order.create", "failed"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}

	underlying := errors.New("timeout")
	if err := Internal(underlying, "shop.save", "failed to save shop"); !errors.Is(err, underlying) {
		t.Error("Internal should unwrap to the underlying error")
	}
}

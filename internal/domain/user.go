package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// USER DOMAIN TYPES
// =============================================================================

// Role separates buyers from shop owners.
type Role string

const (
	RoleBuyer     Role = "buyer"
	RoleShopOwner Role = "shopowner"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleShopOwner
}

// ParseRole returns the role named by s, defaulting to buyer when s is empty.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleBuyer, nil
	}
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// User is a marketplace account identified by its mobile number.
// The password hash never leaves the service layer.
type User struct {
	ID          uuid.UUID
	Mobile      string
	Name        string
	Email       string
	Role        Role
	IsVerified  bool
	HasPassword bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PublicProfile is the subset of a user visible to other users.
type PublicProfile struct {
	ID   uuid.UUID
	Name string
	Role Role
}

// Session is the result of a successful login.
type Session struct {
	Token string
	User  *User
}

// =============================================================================
// USER DOMAIN ERRORS
// =============================================================================

var (
	ErrInvalidMobile            = &Error{Code: EINVALID, Message: "Please provide a valid 10-digit mobile number"}
	ErrInvalidOTPFormat         = &Error{Code: EINVALID, Message: "Please provide a valid 6-digit OTP"}
	ErrInvalidOTP               = &Error{Code: EINVALID, Message: "Invalid or expired OTP"}
	ErrInvalidRole              = &Error{Code: EINVALID, Message: "Role must be buyer or shopowner"}
	ErrPasswordTooShort         = &Error{Code: EINVALID, Message: "Password must be at least 6 characters long"}
	ErrPasswordTooLong          = &Error{Code: EINVALID, Message: "Password must be at most 72 characters long"}
	ErrInvalidCredentials       = &Error{Code: EUNAUTHORIZED, Message: "Invalid credentials"}
	ErrPasswordLoginUnavailable = &Error{Code: EUNAUTHORIZED, Message: "Please use OTP login for this account"}
	ErrUserExists               = &Error{Code: ECONFLICT, Message: "User with this mobile number already exists"}
	ErrUserNotFound             = &Error{Code: ENOTFOUND, Message: "User not found"}
	ErrPasswordNotSet           = &Error{Code: EINVALID, Message: "This account uses OTP login. Please set a password first."}
	ErrIncorrectPassword        = &Error{Code: EUNAUTHORIZED, Message: "Current password is incorrect"}

	ErrMissingToken      = &Error{Code: EUNAUTHORIZED, Message: "No token provided"}
	ErrInvalidToken      = &Error{Code: EUNAUTHORIZED, Message: "Invalid or expired token"}
	ErrTokenUserNotFound = &Error{Code: EUNAUTHORIZED, Message: "Invalid token - user not found"}
)

// =============================================================================
// USER SERVICE INTERFACES
// =============================================================================

// SignupParams registers a password account.
type SignupParams struct {
	Mobile   string
	Password string
	Name     string
	Email    string
	Role     Role
}

// VerifyOTPParams completes an OTP login. Name and Role apply only when the
// verification creates the account.
type VerifyOTPParams struct {
	Mobile string
	Code   string
	Name   string
	Role   Role
}

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	// SendOTP replaces any pending code for mobile and returns the new one.
	SendOTP(ctx context.Context, mobile string) (string, error)

	// VerifyOTP consumes a code and logs in, creating the account on first use.
	VerifyOTP(ctx context.Context, params VerifyOTPParams) (*Session, error)

	// Signup creates a password account and logs it in.
	Signup(ctx context.Context, params SignupParams) (*Session, error)

	// Login checks a mobile and password pair.
	Login(ctx context.Context, mobile, password string) (*Session, error)

	// Authenticate resolves a session token to its user.
	Authenticate(ctx context.Context, token string) (*User, error)
}

// UpdateProfileParams carries optional profile changes. Nil leaves a field unchanged.
type UpdateProfileParams struct {
	Name  *string
	Email *string
}

// UserService manages profiles and passwords.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) (*User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
	GetPublicProfile(ctx context.Context, userID uuid.UUID) (*PublicProfile, error)
}

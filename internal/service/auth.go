package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/dukerupert/kirana/internal/auth"
	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/dukerupert/kirana/internal/telemetry"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
	otpPattern    = regexp.MustCompile(`^[0-9]{6}$`)
)

type authService struct {
	store  repository.Store
	tokens *auth.TokenIssuer
	otpTTL time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewAuthService creates the credential verifier. Codes issued by SendOTP
// expire after otpTTL.
func NewAuthService(store repository.Store, tokens *auth.TokenIssuer, otpTTL time.Duration, logger *slog.Logger) domain.AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		store:  store,
		tokens: tokens,
		otpTTL: otpTTL,
		logger: logger,
		now:    time.Now,
	}
}

// SendOTP replaces any outstanding code for the mobile number.
func (s *authService) SendOTP(ctx context.Context, mobile string) (string, error) {
	mobile = strings.TrimSpace(mobile)
	if !mobilePattern.MatchString(mobile) {
		return "", domain.ErrInvalidMobile
	}

	code, err := auth.GenerateOTP()
	if err != nil {
		return "", err
	}

	err = s.store.ExecTx(ctx, func(q repository.Querier) error {
		if err := q.DeleteOTPsByMobile(ctx, mobile); err != nil {
			return fmt.Errorf("failed to delete pending OTPs: %w", err)
		}
		_, err := q.CreateOTP(ctx, repository.CreateOTPParams{
			Mobile:    mobile,
			Code:      code,
			ExpiresAt: pgtype.Timestamptz{Time: s.now().Add(s.otpTTL), Valid: true},
		})
		if err != nil {
			return fmt.Errorf("failed to store OTP: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if telemetry.Business != nil {
		telemetry.Business.OTPRequested.Inc()
	}
	// No delivery channel yet; dev reads the code from the log.
	s.logger.Debug("otp issued", "mobile", mobile, "code", code)

	return code, nil
}

// VerifyOTP consumes the code and logs in, creating the account on first use.
func (s *authService) VerifyOTP(ctx context.Context, params domain.VerifyOTPParams) (*domain.Session, error) {
	mobile := strings.TrimSpace(params.Mobile)
	if !mobilePattern.MatchString(mobile) {
		return nil, domain.ErrInvalidMobile
	}
	code := strings.TrimSpace(params.Code)
	if !otpPattern.MatchString(code) {
		return nil, domain.ErrInvalidOTPFormat
	}
	role := params.Role
	if role == "" {
		role = domain.RoleBuyer
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	_, err := s.store.ConsumeOTP(ctx, repository.ConsumeOTPParams{Mobile: mobile, Code: code})
	if err != nil {
		if repository.IsNotFound(err) {
			s.loginFailed("otp", "invalid_otp")
			return nil, domain.ErrInvalidOTP
		}
		return nil, fmt.Errorf("failed to consume OTP: %w", err)
	}

	name := optionalText(params.Name)
	var user repository.User
	existing, err := s.store.GetUserByMobile(ctx, mobile)
	switch {
	case repository.IsNotFound(err):
		user, err = s.store.CreateUser(ctx, repository.CreateUserParams{
			Mobile:     mobile,
			Name:       name,
			Role:       string(role),
			IsVerified: true,
		})
		if err != nil {
			if repository.IsUniqueViolation(err, repository.ConstraintUsersMobile) {
				return nil, domain.ErrUserExists
			}
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		if telemetry.Business != nil {
			telemetry.Business.Signups.WithLabelValues(string(role), "otp").Inc()
		}
	case err != nil:
		return nil, fmt.Errorf("failed to get user: %w", err)
	default:
		user, err = s.store.MarkUserVerified(ctx, repository.MarkUserVerifiedParams{
			Name: name,
			ID:   existing.ID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to mark user verified: %w", err)
		}
	}

	return s.newSession(user, "otp")
}

// Signup creates a verified password account.
func (s *authService) Signup(ctx context.Context, params domain.SignupParams) (*domain.Session, error) {
	mobile := strings.TrimSpace(params.Mobile)
	if !mobilePattern.MatchString(mobile) {
		return nil, domain.ErrInvalidMobile
	}
	if len(params.Password) < auth.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	if len(params.Password) > auth.MaxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}
	role := params.Role
	if role == "" {
		role = domain.RoleBuyer
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	_, err := s.store.GetUserByMobile(ctx, mobile)
	if err == nil {
		return nil, domain.ErrUserExists
	}
	if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, repository.CreateUserParams{
		Mobile:       mobile,
		PasswordHash: pgtype.Text{String: hash, Valid: true},
		Name:         optionalText(params.Name),
		Email:        optionalText(params.Email),
		Role:         string(role),
		IsVerified:   true,
	})
	if err != nil {
		// Lost a race with a concurrent signup for the same number.
		if repository.IsUniqueViolation(err, repository.ConstraintUsersMobile) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if telemetry.Business != nil {
		telemetry.Business.Signups.WithLabelValues(string(role), "password").Inc()
	}

	return s.newSession(user, "password")
}

// Login checks a mobile and password pair. Unknown numbers and wrong
// passwords fail identically.
func (s *authService) Login(ctx context.Context, mobile, password string) (*domain.Session, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" || password == "" {
		s.loginFailed("password", "missing_credentials")
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.store.GetUserByMobile(ctx, mobile)
	if err != nil {
		if repository.IsNotFound(err) {
			s.loginFailed("password", "unknown_user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.PasswordHash.Valid || user.PasswordHash.String == "" {
		s.loginFailed("password", "no_password")
		return nil, domain.ErrPasswordLoginUnavailable
	}

	if err := auth.VerifyPassword(password, user.PasswordHash.String); err != nil {
		s.loginFailed("password", "wrong_password")
		return nil, domain.ErrInvalidCredentials
	}

	return s.newSession(user, "password")
}

// Authenticate resolves a bearer token to the user it was issued for.
func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.store.GetUserByID(ctx, uuidToPgtype(userID))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrTokenUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUser(user), nil
}

func (s *authService) newSession(user repository.User, method string) (*domain.Session, error) {
	u := toUser(user)
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	if telemetry.Business != nil {
		telemetry.Business.Logins.WithLabelValues(method).Inc()
	}
	return &domain.Session{Token: token, User: u}, nil
}

func (s *authService) loginFailed(method, reason string) {
	if telemetry.Business != nil {
		telemetry.Business.LoginFailed.WithLabelValues(method, reason).Inc()
	}
}

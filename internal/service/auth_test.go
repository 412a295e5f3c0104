package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dukerupert/kirana/internal/auth"
	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMobile = "9876543210"

func newTestAuthService(store repository.Store) (*authService, *auth.TokenIssuer) {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	svc := NewAuthService(store, tokens, 10*time.Minute, nil).(*authService)
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC) }
	return svc, tokens
}

func Test_SendOTP_RejectsInvalidMobile(t *testing.T) {
	store := newMockStore(t)
	svc, _ := newTestAuthService(store)

	for _, mobile := range []string{"", "12345", "98765432101", "98765abcde"} {
		_, err := svc.SendOTP(t.Context(), mobile)
		assert.ErrorIs(t, err, domain.ErrInvalidMobile, mobile)
	}
}

func Test_SendOTP_ReplacesPendingCode(t *testing.T) {
	store := newMockStore(t)
	svc, _ := newTestAuthService(store)

	var stored repository.CreateOTPParams
	gomock.InOrder(
		expectTx(store),
		store.EXPECT().DeleteOTPsByMobile(gomock.Any(), testMobile).Return(nil),
		store.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg repository.CreateOTPParams) (repository.Otp, error) {
				stored = arg
				return repository.Otp{Mobile: arg.Mobile, Code: arg.Code}, nil
			}),
	)

	code, err := svc.SendOTP(t.Context(), testMobile)
	require.NoError(t, err)
	assert.Len(t, code, auth.OTPLength)
	assert.Equal(t, code, stored.Code)
	assert.Equal(t, testMobile, stored.Mobile)
	assert.Equal(t, svc.now().Add(10*time.Minute), stored.ExpiresAt.Time)
}

func Test_SendOTP_StoreFailure(t *testing.T) {
	store := newMockStore(t)
	svc, _ := newTestAuthService(store)

	store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := svc.SendOTP(t.Context(), testMobile)
	assert.Error(t, err)
}

func Test_VerifyOTP_Validation(t *testing.T) {
	store := newMockStore(t)
	svc, _ := newTestAuthService(store)

	_, err := svc.VerifyOTP(t.Context(), domain.VerifyOTPParams{Mobile: "123", Code: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidMobile)

	_, err = svc.VerifyOTP(t.Context(), domain.VerifyOTPParams{Mobile: testMobile, Code: "12ab"})
	assert.ErrorIs(t, err, domain.ErrInvalidOTPFormat)

	_, err = svc.VerifyOTP(t.Context(), domain.VerifyOTPParams{Mobile: testMobile, Code: "123456", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func Test_VerifyOTP_WrongOrUsedCode(t *testing.T) {
	store := newMockStore(t)
	svc, _ := newTestAuthService(store)

	store.EXPECT().
		ConsumeOTP(gomock.Any(), repository.ConsumeOTPParams{Mobile: testMobile, Code: "123456"}).
		Return(repository.Otp{}, pgx.ErrNoRows)

	_, err := svc.VerifyOTP(t.Context(), domain.VerifyOTPParams{Mobile: testMobile, Code: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
}

func Test_VerifyOTP_CreatesAccountOnFirstUse(t *testing.T) {
	store := newMockStore(t)
	svc, tokens := newTestAuthService(store)
	userID := uuid.New()

	store.EXPECT().ConsumeOTP(gomock.Any(), gomock.Any()).Return(repository.Otp{}, nil)
	store.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(repository.User{}, pgx.ErrNoRows)
	store.EXPECT().
		CreateUser(gomock.Any(), repository.CreateUserParams{
			Mobile:     testMobile,
			Name:       pgText("Asha"),
			Role:       string(domain.RoleShopOwner),
			IsVerified: true,
		}).
		Return(repository.User{
			ID:         pgID(userID),
			Mobile:     testMobile,
			Name:       pgText("Asha"),
			Role:       string(domain.RoleShopOwner),
			IsVerified: true,
		}, nil)

	session, err := svc.VerifyOTP(t.Context(), domain.VerifyOTPParams{
		Mobile: testMobile,
		Code:   "123456",
		Name:   "Asha",
		Role:   domain.RoleShopOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, session.User.ID)
	assert.Equal(t, domain.RoleShopOwner, session.User.Role)
	assert.False(t, session.User.HasPassword)

	parsed, err := tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func Test_VerifyOTP_ExistingAccountIsMarkedVerified(t *testing.T) {
	store := newMockStore(t)
	svc, _ := newTestAuthService(store)
	userID := uuid.New()

	store.EXPECT().ConsumeOTP(gomock.Any(), gomock.Any()).Return(repository.Otp{}, nil)
	store.EXPECT().GetUserByMobile(gomock.Any(), testMobile).
		Return(repository.User{ID: pgID(userID), Mobile: testMobile, Role: "buyer"}, nil)
	store.EXPECT().
		MarkUserVerified(gomock.Any(), repository.MarkUserVerifiedParams{ID: pgID(userID)}).
		Return(repository.User{ID: pgID(userID), Mobile: testMobile, Role: "buyer", IsVerified: true}, nil)

	session, err := svc.VerifyOTP(t.Context(), domain.VerifyOTPParams{Mobile: testMobile, Code: "654321"})
	require.NoError(t, err)
	assert.True(t, session.User.IsVerified)
	assert.Equal(t, domain.RoleBuyer, session.User.Role)
}

func Test_Signup(t *testing.T) {
	t.Run("rejects short password", func(t *testing.T) {
		svc, _ := newTestAuthService(newMockStore(t))
		_, err := svc.Signup(t.Context(), domain.SignupParams{Mobile: testMobile, Password: "12345"})
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})

	t.Run("rejects password bcrypt would truncate", func(t *testing.T) {
		svc, _ := newTestAuthService(newMockStore(t))
		long := strings.Repeat("p", auth.MaxPasswordBytes+1)
		_, err := svc.Signup(t.Context(), domain.SignupParams{Mobile: testMobile, Password: long})
		assert.ErrorIs(t, err, domain.ErrPasswordTooLong)
	})

	t.Run("rejects existing mobile", func(t *testing.T) {
		store := newMockStore(t)
		svc, _ := newTestAuthService(store)
		store.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(repository.User{Mobile: testMobile}, nil)

		_, err := svc.Signup(t.Context(), domain.SignupParams{Mobile: testMobile, Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})

	t.Run("maps concurrent duplicate to exists", func(t *testing.T) {
		store := newMockStore(t)
		svc, _ := newTestAuthService(store)
		store.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(repository.User{}, pgx.ErrNoRows)
		store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(repository.User{}, &pgconn.PgError{Code: "23505", ConstraintName: repository.ConstraintUsersMobile})

		_, err := svc.Signup(t.Context(), domain.SignupParams{Mobile: testMobile, Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})

	t.Run("creates verified password account", func(t *testing.T) {
		store := newMockStore(t)
		svc, _ := newTestAuthService(store)
		userID := uuid.New()

		store.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(repository.User{}, pgx.ErrNoRows)
		store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg repository.CreateUserParams) (repository.User, error) {
				assert.True(t, arg.IsVerified)
				assert.Equal(t, "buyer", arg.Role)
				assert.Equal(t, pgText("a@example.com"), arg.Email)
				assert.NoError(t, auth.VerifyPassword("secret1", arg.PasswordHash.String))
				return repository.User{
					ID:           pgID(userID),
					Mobile:       arg.Mobile,
					PasswordHash: arg.PasswordHash,
					Email:        arg.Email,
					Role:         arg.Role,
					IsVerified:   true,
				}, nil
			})

		session, err := svc.Signup(t.Context(), domain.SignupParams{
			Mobile:   testMobile,
			Password: "secret1",
			Email:    "a@example.com",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.True(t, session.User.HasPassword)
		assert.Equal(t, "a@example.com", session.User.Email)
	})
}

func Test_Login(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	userID := uuid.New()
	withPassword := repository.User{ID: pgID(userID), Mobile: testMobile, PasswordHash: pgText(hash), Role: "buyer"}

	tests := []struct {
		name     string
		password string
		user     repository.User
		lookup   error
		wantErr  error
	}{
		{"unknown mobile", "secret1", repository.User{}, pgx.ErrNoRows, domain.ErrInvalidCredentials},
		{"otp only account", "secret1", repository.User{ID: pgID(userID), Mobile: testMobile}, nil, domain.ErrPasswordLoginUnavailable},
		{"wrong password", "secret2", withPassword, nil, domain.ErrInvalidCredentials},
		{"correct password", "secret1", withPassword, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore(t)
			svc, _ := newTestAuthService(store)
			store.EXPECT().GetUserByMobile(gomock.Any(), testMobile).Return(tt.user, tt.lookup)

			session, err := svc.Login(t.Context(), testMobile, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, session.User.ID)
		})
	}
}

func Test_Login_MissingCredentials(t *testing.T) {
	svc, _ := newTestAuthService(newMockStore(t))
	_, err := svc.Login(t.Context(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func Test_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("missing token", func(t *testing.T) {
		svc, _ := newTestAuthService(newMockStore(t))
		_, err := svc.Authenticate(t.Context(), "")
		assert.ErrorIs(t, err, domain.ErrMissingToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc, _ := newTestAuthService(newMockStore(t))
		_, err := svc.Authenticate(t.Context(), "not.a.token")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		svc, _ := newTestAuthService(newMockStore(t))
		token, err := auth.NewTokenIssuer("other-secret", time.Hour).Issue(userID)
		require.NoError(t, err)

		_, err = svc.Authenticate(t.Context(), token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("user deleted after issue", func(t *testing.T) {
		store := newMockStore(t)
		svc, tokens := newTestAuthService(store)
		token, err := tokens.Issue(userID)
		require.NoError(t, err)
		store.EXPECT().GetUserByID(gomock.Any(), pgID(userID)).Return(repository.User{}, pgx.ErrNoRows)

		_, err = svc.Authenticate(t.Context(), token)
		assert.ErrorIs(t, err, domain.ErrTokenUserNotFound)
	})

	t.Run("valid token", func(t *testing.T) {
		store := newMockStore(t)
		svc, tokens := newTestAuthService(store)
		token, err := tokens.Issue(userID)
		require.NoError(t, err)
		store.EXPECT().GetUserByID(gomock.Any(), pgID(userID)).
			Return(repository.User{ID: pgID(userID), Mobile: testMobile, Role: "shopowner"}, nil)

		user, err := svc.Authenticate(t.Context(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, domain.RoleShopOwner, user.Role)
	})
}

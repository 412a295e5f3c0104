package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dukerupert/kirana/internal/auth"
	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type userService struct {
	repo repository.Querier
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.Querier) domain.UserService {
	return &userService{repo: repo}
}

func (s *userService) getUser(ctx context.Context, userID uuid.UUID) (repository.User, error) {
	user, err := s.repo.GetUserByID(ctx, uuidToPgtype(userID))
	if err != nil {
		if repository.IsNotFound(err) {
			return repository.User{}, domain.ErrUserNotFound
		}
		return repository.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetProfile returns the full profile of the user.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUser(user), nil
}

// UpdateProfile changes name and email. Nil fields keep their stored value.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, params domain.UpdateProfileParams) (*domain.User, error) {
	if params.Email != nil {
		email := strings.TrimSpace(*params.Email)
		if email != "" && !strings.Contains(email, "@") {
			return nil, domain.NewValidationError("UpdateProfile", "email", "Please provide a valid email")
		}
	}

	user, err := s.repo.UpdateUserProfile(ctx, repository.UpdateUserProfileParams{
		Name:  patchText(params.Name),
		Email: patchText(params.Email),
		ID:    uuidToPgtype(userID),
	})
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toUser(user), nil
}

// ChangePassword replaces the password after checking the current one.
// OTP-only accounts have no current password to check.
func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if !user.PasswordHash.Valid || user.PasswordHash.String == "" {
		return domain.ErrPasswordNotSet
	}
	if err := auth.VerifyPassword(currentPassword, user.PasswordHash.String); err != nil {
		return domain.ErrIncorrectPassword
	}
	if len(newPassword) < auth.MinPasswordLength {
		return domain.ErrPasswordTooShort
	}
	if len(newPassword) > auth.MaxPasswordBytes {
		return domain.ErrPasswordTooLong
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = s.repo.UpdateUserPassword(ctx, repository.UpdateUserPasswordParams{
		ID:           user.ID,
		PasswordHash: pgtype.Text{String: hash, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// GetPublicProfile returns what other users may see of an account.
func (s *userService) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*domain.PublicProfile, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.PublicProfile{
		ID:   pgtypeToUUID(user.ID),
		Name: textValue(user.Name),
		Role: domain.Role(user.Role),
	}, nil
}

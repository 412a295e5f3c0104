package api

import (
	"net/http"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/handler"
)

// UserHandler serves /api/users.
type UserHandler struct {
	users domain.UserService
}

func NewUserHandler(users domain.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

type publicProfileResponse struct {
	handler.Envelope
	User PublicProfileDTO `json:"user"`
}

// Profile handles GET /api/users/profile
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetProfile(r.Context(), domain.RequireUserID(r.Context()))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, http.StatusOK, userResponse{
		Envelope: handler.Success(""),
		User:     toUserDTO(user),
	})
}

// UpdateProfile handles PUT /api/users/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := handler.DecodeJSON(r, "user.update_profile", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), domain.RequireUserID(r.Context()), domain.UpdateProfileParams{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, userResponse{
		Envelope: handler.Success("Profile updated successfully"),
		User:     toUserDTO(user),
	})
}

// ChangePassword handles PUT /api/users/password
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := handler.DecodeJSON(r, "user.change_password", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	err := h.users.ChangePassword(r.Context(), domain.RequireUserID(r.Context()), req.CurrentPassword, req.NewPassword)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, handler.Success("Password updated successfully"))
}

// PublicProfile handles GET /api/users/{id}
func (h *UserHandler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := handler.PathID(r, "id", domain.ErrUserNotFound)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	profile, err := h.users.GetPublicProfile(r.Context(), userID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, publicProfileResponse{
		Envelope: handler.Success(""),
		User: PublicProfileDTO{
			ID:   profile.ID,
			Name: profile.Name,
			Role: string(profile.Role),
		},
	})
}

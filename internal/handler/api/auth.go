package api

import (
	"net/http"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/handler"
)

// AuthHandler serves /api/auth: OTP and password login, signup, and the
// current-user lookup.
type AuthHandler struct {
	auth domain.AuthService

	// exposeOTP echoes issued codes in the response outside production,
	// where no SMS gateway delivers them.
	exposeOTP bool
}

func NewAuthHandler(auth domain.AuthService, exposeOTP bool) *AuthHandler {
	return &AuthHandler{auth: auth, exposeOTP: exposeOTP}
}

type sendOTPRequest struct {
	Mobile string `json:"mobile" validate:"required"`
	Role   string `json:"role"`
}

type sendOTPResponse struct {
	handler.Envelope
	OTP string `json:"otp,omitempty"`
}

type verifyOTPRequest struct {
	Mobile string `json:"mobile" validate:"required"`
	OTP    string `json:"otp" validate:"required"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type signupRequest struct {
	Mobile   string `json:"mobile" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Mobile   string `json:"mobile" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	handler.Envelope
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type userResponse struct {
	handler.Envelope
	User UserDTO `json:"user"`
}

// SendOTP handles POST /api/auth/send-otp
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := handler.DecodeJSON(r, "auth.send_otp", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if _, err := domain.ParseRole(req.Role); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	code, err := h.auth.SendOTP(r.Context(), req.Mobile)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	resp := sendOTPResponse{Envelope: handler.Success("OTP sent successfully")}
	if h.exposeOTP {
		resp.OTP = code
	}
	handler.OK(w, http.StatusOK, resp)
}

// VerifyOTP handles POST /api/auth/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := handler.DecodeJSON(r, "auth.verify_otp", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	session, err := h.auth.VerifyOTP(r.Context(), domain.VerifyOTPParams{
		Mobile: req.Mobile,
		Code:   req.OTP,
		Name:   req.Name,
		Role:   role,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, newSessionResponse("Login successful", session))
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := handler.DecodeJSON(r, "auth.signup", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	session, err := h.auth.Signup(r.Context(), domain.SignupParams{
		Mobile:   req.Mobile,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusCreated, newSessionResponse("Account created successfully", session))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := handler.DecodeJSON(r, "auth.login", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	session, err := h.auth.Login(r.Context(), req.Mobile, req.Password)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.OK(w, http.StatusOK, newSessionResponse("Login successful", session))
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := domain.MustUser(r.Context())
	handler.OK(w, http.StatusOK, userResponse{
		Envelope: handler.Success(""),
		User:     toUserDTO(user),
	})
}

func newSessionResponse(message string, session *domain.Session) sessionResponse {
	return sessionResponse{
		Envelope: handler.Success(message),
		Token:    session.Token,
		User:     toUserDTO(session.User),
	}
}

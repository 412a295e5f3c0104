package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dukerupert/kirana/internal/domain"
	"github.com/dukerupert/kirana/internal/middleware"
	"github.com/dukerupert/kirana/internal/telemetry"
)

// ErrorEnvelope is the body of every failed API response.
type ErrorEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	return middleware.StatusForCode(code)
}

// ErrorResponse logs err once and writes the JSON error envelope.
// Internal errors are reported to Sentry and their details hidden.
func ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	status := ErrorCodeToHTTPStatus(code)

	logger := middleware.GetLogger(r.Context())
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"status", status,
	}
	if op := domain.ErrorOp(err); op != "" {
		attrs = append(attrs, "op", op)
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", attrs...)
		telemetry.CaptureErrorFromContext(r.Context(), err, map[string]interface{}{
			"op":   domain.ErrorOp(err),
			"path": r.URL.Path,
		})
	} else {
		logger.Info("request rejected", attrs...)
	}

	writeJSON(w, status, ErrorEnvelope{
		Success: false,
		Message: domain.ErrorMessage(err),
		Code:    code,
		Fields:  domain.GetValidationFields(err),
	})
}

// NotFoundResponse is a convenience wrapper for unmatched routes.
func NotFoundResponse(w http.ResponseWriter, r *http.Request) {
	ErrorResponse(w, r, domain.Errorf(domain.ENOTFOUND, "", "Route not found"))
}

// UnauthorizedResponse is a convenience wrapper for 401 errors.
func UnauthorizedResponse(w http.ResponseWriter, r *http.Request) {
	ErrorResponse(w, r, domain.Unauthorized("", "Authentication required"))
}

// ForbiddenResponse is a convenience wrapper for 403 errors.
func ForbiddenResponse(w http.ResponseWriter, r *http.Request) {
	ErrorResponse(w, r, domain.Forbidden("", "You do not have permission to perform this action"))
}

// InternalErrorResponse wraps err as an internal error and writes a 500.
func InternalErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	ErrorResponse(w, r, domain.Internal(err, "", "An unexpected error occurred"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

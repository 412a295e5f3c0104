package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/dukerupert/kirana/internal/domain"
)

// Error responses written before a request reaches a handler. The handler
// package builds the same envelope with validation fields on top; it cannot
// be used here because it imports this package.

var codeStatus = map[string]int{
	domain.EINVALID:      http.StatusBadRequest,
	domain.ECONFLICT:     http.StatusBadRequest,
	domain.EUNAUTHORIZED: http.StatusUnauthorized,
	domain.EFORBIDDEN:    http.StatusForbidden,
	domain.ENOTFOUND:     http.StatusNotFound,
	domain.ETOOLARGE:     http.StatusRequestEntityTooLarge,
	domain.ERATELIMIT:    http.StatusTooManyRequests,
	domain.ENOTIMPL:      http.StatusNotImplemented,
}

// StatusForCode maps a domain error code to its HTTP status. Conflicts answer
// 400 to keep the published contract; unknown codes are 500.
func StatusForCode(code string) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	status := StatusForCode(code)

	log := GetLogger(r.Context()).Info
	if status >= http.StatusInternalServerError {
		log = GetLogger(r.Context()).Error
	}
	log("request refused by middleware", "error", err.Error(), "code", code, "status", status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Message: domain.ErrorMessage(err), Code: code})
}

func respondUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		err = domain.Unauthorized("", "Authentication required")
	}
	respondWithError(w, r, err)
}

func respondInternalError(w http.ResponseWriter, r *http.Request, err error) {
	respondWithError(w, r, domain.Internal(err, "", "An unexpected error occurred"))
}

func respondTooManyRequests(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, r, domain.Errorf(domain.ERATELIMIT, "", "Too many requests, please try again later"))
}

func respondTooLarge(w http.ResponseWriter, r *http.Request, message string) {
	respondWithError(w, r, domain.Errorf(domain.ETOOLARGE, "", "%s", message))
}

package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Application error codes. The handler layer maps each to an HTTP status.
const (
	ECONFLICT     = "conflict"        // 400, kept for wire compatibility
	EINTERNAL     = "internal"        // 500
	EINVALID      = "invalid"         // 400
	ENOTFOUND     = "not_found"       // 404
	EUNAUTHORIZED = "unauthorized"    // 401
	EFORBIDDEN    = "forbidden"       // 403
	ENOTIMPL      = "not_implemented" // 501
	ERATELIMIT    = "rate_limit"      // 429
	ETOOLARGE     = "too_large"       // 413
)

// InternalMessage replaces the message of every EINTERNAL or unknown error
// before it reaches a client.
const InternalMessage = "An internal error occurred. Please try again later."

// Error is a coded application error. Message is shown to clients unless
// Code is EINTERNAL; Op and Err only reach the logs.
type Error struct {
	Code    string
	Message string

	// Op names the failing operation, e.g. "order.cancel".
	Op string

	Err error
}

func newError(code, op, message string, err error) *Error {
	return &Error{Code: code, Op: op, Message: message, Err: err}
}

func (e *Error) Error() string {
	parts := make([]string, 0, 3)
	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	parts = append(parts, e.Message)
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrapf returns an error with e's code and a formatted message.
// errors.Is(err, e) still reports true for the result.
func (e *Error) Wrapf(format string, args ...interface{}) error {
	return newError(e.Code, "", fmt.Sprintf(format, args...), e)
}

// ErrorCode returns the code of the first *Error in err's chain, EINVALID for
// a ValidationError and EINTERNAL for anything else.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	var ve *ValidationError
	switch {
	case errors.As(err, &e):
		return e.Code
	case errors.As(err, &ve):
		return EINVALID
	}
	return EINTERNAL
}

// ErrorMessage returns the client-safe message for err.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		if e.Code == EINTERNAL {
			return InternalMessage
		}
		return e.Message
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.FirstMessage()
	}

	return InternalMessage
}

// ErrorOp returns the operation recorded on err, for logging.
func ErrorOp(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

// Errorf builds an error with a formatted message.
//
//	domain.Errorf(domain.EINVALID, "order.create", "invalid payment method: %s", method)
func Errorf(code, op, format string, args ...interface{}) error {
	return newError(code, op, fmt.Sprintf(format, args...), nil)
}

func Unauthorized(op, message string) error { return newError(EUNAUTHORIZED, op, message, nil) }
func Forbidden(op, message string) error    { return newError(EFORBIDDEN, op, message, nil) }
func Invalid(op, message string) error      { return newError(EINVALID, op, message, nil) }
func Conflict(op, message string) error     { return newError(ECONFLICT, op, message, nil) }

// Internal wraps err for logging. Clients only ever see InternalMessage.
func Internal(err error, op, message string) error {
	return newError(EINTERNAL, op, message, err)
}

// =============================================================================
// Validation Errors (field-level errors for request bodies)
// =============================================================================

// ValidationError collects per-field failures keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
	Op     string
}

func (e *ValidationError) fieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

func (e *ValidationError) Error() string {
	msg := "invalid " + strings.Join(e.fieldNames(), ", ")
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

// FirstMessage returns the message of the alphabetically first field, so the
// envelope message is stable when several fields fail.
func (e *ValidationError) FirstMessage() string {
	names := e.fieldNames()
	if len(names) == 0 {
		return "Validation failed"
	}
	return e.Fields[names[0]]
}

func NewValidationError(op, field, message string) error {
	return &ValidationError{
		Op:     op,
		Fields: map[string]string{field: message},
	}
}

// AddFieldError records a field failure on err, starting a new
// ValidationError when err is nil or of another kind.
func AddFieldError(err error, field, message string) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		ve.Fields[field] = message
		return ve
	}
	return &ValidationError{Fields: map[string]string{field: message}}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// GetValidationFields returns the field map of a ValidationError, or nil.
func GetValidationFields(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried from services up to the HTTP
// layer. HTTPCode and the wrapped cause never leave the process.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// MarshalJSON keeps Err and HTTPCode out of responses.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// The login failure message deliberately does not reveal whether the
	// email or the password was wrong.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	ErrUserNotFound       = New(CodeNotFound, "User not found", http.StatusNotFound)
	ErrMemberNotFound     = New(CodeNotFound, "Member not found", http.StatusNotFound)
	ErrTrainerNotFound    = New(CodeNotFound, "Trainer not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeAlreadyExists, "Email already exists", http.StatusConflict)
	ErrAlreadyMember      = New(CodeConflict, "User already has a member record", http.StatusConflict)
	ErrAlreadyTrainer     = New(CodeConflict, "User already has a trainer record", http.StatusConflict)
	ErrUserSpecialized    = New(CodeConflict, "User still has a member or trainer record", http.StatusConflict)
	ErrInvalidUserRole    = New(CodeValidationFailed, "Invalid user role", http.StatusBadRequest)

	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// FieldViolations is the details payload of a validation error: every failed
// rule for every field, never just the first.
type FieldViolations struct {
	Field  string   `json:"field"`
	Errors []string `json:"errors"`
}

func ValidationError(violations []FieldViolations) *AppError {
	return ErrValidationFailed.WithDetails(violations)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func BadRequest(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

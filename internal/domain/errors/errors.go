package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrConflict           = errors.New("conflict")
	ErrUnprocessable      = errors.New("unprocessable entity")

	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrCouponNotApplicable = errors.New("coupon not applicable")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrDefaultRequired     = errors.New("a default must remain active")
	ErrRefundExceedsTotal  = errors.New("refund exceeds refundable amount")
	ErrProtectedResource   = errors.New("resource is protected")
	ErrInUse               = errors.New("resource is in use")
	ErrMissingCredentials  = errors.New("provider credentials missing")
)

// Error codes returned to API clients
const (
	CodeBadRequest         = "ERR_BAD_REQUEST"
	CodeInvalidInput       = "ERR_INVALID_INPUT"
	CodeNotFound           = "ERR_NOT_FOUND"
	CodeConflict           = "ERR_CONFLICT"
	CodeUnauthorized       = "ERR_UNAUTHORIZED"
	CodeForbidden          = "ERR_FORBIDDEN"
	CodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	CodeUnprocessable      = "ERR_UNPROCESSABLE"
	CodeInternalError      = "ERR_INTERNAL"
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int               `json:"-"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrConflict)
}

// Unprocessable reports a business rule violation. cause should be one of the
// domain sentinels so callers can still errors.Is against it.
func Unprocessable(message string, cause error) *AppError {
	if cause == nil {
		cause = ErrUnprocessable
	}
	return NewAppError(http.StatusUnprocessableEntity, CodeUnprocessable, message, cause)
}

// ValidationFailed is a 422 carrying per-field messages
func ValidationFailed(fields map[string]string) *AppError {
	e := NewAppError(http.StatusUnprocessableEntity, CodeUnprocessable, "validation failed", ErrInvalidInput)
	e.Fields = fields
	return e
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

func InternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, message, nil)
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return NewAppError(http.StatusBadRequest, CodeBadRequest, message, err)
}

// FromError converts any error into an AppError, mapping domain sentinels
// to their HTTP status.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewAppError(http.StatusNotFound, CodeNotFound, err.Error(), err)
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return NewAppError(http.StatusConflict, CodeConflict, err.Error(), err)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrBadRequest):
		return NewAppError(http.StatusBadRequest, CodeInvalidInput, err.Error(), err)
	case errors.Is(err, ErrInvalidCredentials):
		return NewAppError(http.StatusUnauthorized, CodeInvalidCredentials, err.Error(), err)
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrTokenExpired):
		return NewAppError(http.StatusUnauthorized, CodeUnauthorized, err.Error(), err)
	case errors.Is(err, ErrForbidden):
		return NewAppError(http.StatusForbidden, CodeForbidden, err.Error(), err)
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrCouponNotApplicable),
		errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrDefaultRequired),
		errors.Is(err, ErrRefundExceedsTotal),
		errors.Is(err, ErrProtectedResource),
		errors.Is(err, ErrInUse),
		errors.Is(err, ErrMissingCredentials),
		errors.Is(err, ErrUnprocessable):
		return NewAppError(http.StatusUnprocessableEntity, CodeUnprocessable, err.Error(), err)
	}
	return InternalError(err)
}

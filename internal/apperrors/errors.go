package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict with current state")

// ErrForbidden indicates that the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// Statement engine input errors. Any of these aborts statement generation.
var (
	ErrInvalidRange     = errors.New("invalid date range")
	ErrUnknownCurrency  = errors.New("unknown currency")
	ErrAccountNotFound  = errors.New("account not found")
	ErrPeriodClosed     = errors.New("accounting period is closed")
	ErrUnclassifiable   = errors.New("account cannot be classified")
	ErrStatementUnavail = errors.New("statement unavailable")
)

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

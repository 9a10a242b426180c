package errors

import (
	"errors"
	"fmt"
)

type baseError struct {
	message string
}

func (e *baseError) Error() string {
	return e.message
}

// ValidationError represents a validation error (HTTP 400)
type ValidationError struct {
	baseError
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{baseError{message: message}}
}

func NewValidationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{baseError{message: fmt.Sprintf(format, args...)}}
}

// UnauthorizedError represents an authentication error (HTTP 401)
type UnauthorizedError struct {
	baseError
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{baseError{message: message}}
}

func NewUnauthorizedErrorf(format string, args ...any) *UnauthorizedError {
	return &UnauthorizedError{baseError{message: fmt.Sprintf(format, args...)}}
}

// PermissionError represents a permission error (HTTP 403)
type PermissionError struct {
	baseError
}

func NewPermissionError(message string) *PermissionError {
	return &PermissionError{baseError{message: message}}
}

func NewPermissionErrorf(format string, args ...any) *PermissionError {
	return &PermissionError{baseError{message: fmt.Sprintf(format, args...)}}
}

// NotFoundError represents a not found error (HTTP 404)
type NotFoundError struct {
	baseError
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{baseError{message: message}}
}

func NewNotFoundErrorf(format string, args ...any) *NotFoundError {
	return &NotFoundError{baseError{message: fmt.Sprintf(format, args...)}}
}

// ConflictError represents a conflict error (HTTP 409)
type ConflictError struct {
	baseError
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{baseError{message: message}}
}

func NewConflictErrorf(format string, args ...any) *ConflictError {
	return &ConflictError{baseError{message: fmt.Sprintf(format, args...)}}
}

// InternalError represents an internal server error (HTTP 500).
// The wrapped cause is logged by the mapper and never sent to the client.
type InternalError struct {
	baseError
	cause error
}

func NewInternalError(message string) *InternalError {
	return &InternalError{baseError: baseError{message: message}}
}

func NewInternalErrorf(format string, args ...any) *InternalError {
	return &InternalError{baseError: baseError{message: fmt.Sprintf(format, args...)}}
}

// WrapInternal wraps a low-level failure (database, broker) behind a client-safe message
func WrapInternal(cause error, message string) *InternalError {
	return &InternalError{baseError: baseError{message: message}, cause: cause}
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

// ServiceUnavailableError represents a service unavailable error (HTTP 503)
type ServiceUnavailableError struct {
	baseError
}

func NewServiceUnavailableError(message string) *ServiceUnavailableError {
	return &ServiceUnavailableError{baseError{message: message}}
}

func NewServiceUnavailableErrorf(format string, args ...any) *ServiceUnavailableError {
	return &ServiceUnavailableError{baseError{message: fmt.Sprintf(format, args...)}}
}

// IsNotFound reports whether err is or wraps a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err is or wraps a ConflictError
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

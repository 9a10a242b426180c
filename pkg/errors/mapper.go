package errors

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"
)

// Mapper maps domain errors to HTTP status codes
type Mapper struct {
	logger zerolog.Logger
}

// NewMapper creates a new error mapper
func NewMapper(logger zerolog.Logger) *Mapper {
	return &Mapper{logger: logger.With().Str("component", "error_mapper").Logger()}
}

// MapErrorToHTTP maps an error to HTTP status code and message
func (m *Mapper) MapErrorToHTTP(err error) (int, string) {
	if err == nil {
		return fasthttp.StatusOK, ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return fasthttp.StatusBadRequest, validationErr.Error()
	}

	var unauthorizedErr *UnauthorizedError
	if errors.As(err, &unauthorizedErr) {
		return fasthttp.StatusUnauthorized, unauthorizedErr.Error()
	}

	var permissionErr *PermissionError
	if errors.As(err, &permissionErr) {
		return fasthttp.StatusForbidden, permissionErr.Error()
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return fasthttp.StatusNotFound, notFoundErr.Error()
	}

	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return fasthttp.StatusConflict, conflictErr.Error()
	}

	var serviceUnavailableErr *ServiceUnavailableError
	if errors.As(err, &serviceUnavailableErr) {
		return fasthttp.StatusServiceUnavailable, serviceUnavailableErr.Error()
	}

	var internalErr *InternalError
	if errors.As(err, &internalErr) {
		m.logger.Error().Err(err).AnErr("cause", internalErr.cause).Msg("internal server error")
		return fasthttp.StatusInternalServerError, internalErr.Error()
	}

	if status, msg, ok := m.mapCause(err); ok {
		return status, msg
	}

	m.logger.Error().Err(err).Msg("unknown error")
	return fasthttp.StatusInternalServerError, "internal server error"
}

// mapCause covers storage, token and deadline errors that reach a handler unwrapped
func (m *Mapper) mapCause(err error) (int, string, bool) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fasthttp.StatusNotFound, "record not found", true
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fasthttp.StatusConflict, "record already exists", true
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fasthttp.StatusConflict, "referenced record does not exist", true
	case errors.Is(err, jwt.ErrTokenExpired):
		return fasthttp.StatusUnauthorized, "token expired", true
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenInvalidClaims):
		return fasthttp.StatusUnauthorized, "invalid token", true
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		m.logger.Warn().Err(err).Msg("request deadline reached")
		return fasthttp.StatusServiceUnavailable, "request timed out", true
	}
	return 0, "", false
}

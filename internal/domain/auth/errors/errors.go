package errors

import (
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
)

var (
	ErrMissingCode         = pkgerrors.NewValidationError("Authorization code is required")
	ErrNoEmail             = pkgerrors.NewValidationError("No email found in token")
	ErrExchangeFailed      = pkgerrors.NewUnauthorizedError("Failed to exchange authorization code")
	ErrNotAuthenticated    = pkgerrors.NewUnauthorizedError("Not authenticated")
	ErrInvalidToken        = pkgerrors.NewUnauthorizedError("Invalid or expired token")
	ErrInvalidRefreshToken = pkgerrors.NewUnauthorizedError("Invalid or expired refresh token")
	ErrUnknownUser         = pkgerrors.NewUnauthorizedError("User no longer exists")
)

package errors

import (
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
)

var (
	ErrUserNotFound      = pkgerrors.NewNotFoundError("User not found")
	ErrUserExists        = pkgerrors.NewConflictError("User with this email already exists")
	ErrLastUser          = pkgerrors.NewConflictError("At least one user must remain in the app.")
	ErrInvalidEmail      = pkgerrors.NewValidationError("A valid email is required")
	ErrSuperUserNotFound = pkgerrors.NewNotFoundError("Super user not found")
	ErrAlreadySuperUser  = pkgerrors.NewConflictError("User is already a super user.")
	ErrLastSuperUser     = pkgerrors.NewConflictError("At least one super user must remain in the app.")
	ErrSuperUserRequired = pkgerrors.NewPermissionError("Only super users can perform this action")
	ErrUserIDRequired    = pkgerrors.NewValidationError("User id is required")
)

// ErrDatabase wraps a repository failure
func ErrDatabase(err error) error {
	return pkgerrors.WrapInternal(err, "database operation failed")
}

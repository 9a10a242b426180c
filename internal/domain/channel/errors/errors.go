package errors

import (
	"github.com/hm-yang2/board-share/internal/domain/channel/entities"
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
)

var (
	ErrChannelNotFound    = pkgerrors.NewNotFoundError("Channel not found")
	ErrChannelIDRequired  = pkgerrors.NewNotFoundError("No Channel Id")
	ErrChannelExists      = pkgerrors.NewConflictError("A channel with this name already exists.")
	ErrInvalidName        = pkgerrors.NewValidationError("Channel name must be between 3 and 50 characters")
	ErrDescriptionTooLong = pkgerrors.NewValidationError("Channel description must be at most 255 characters")
	ErrInvalidVisibility  = pkgerrors.NewValidationError("Channel visibility must be PUBLIC or PRIVATE")
	ErrAccessDenied       = pkgerrors.NewPermissionError("User not authorized to access this channel")
	ErrUpdateDenied       = pkgerrors.NewPermissionError("User is not authorized to update this channel")
	ErrDeleteDenied       = pkgerrors.NewPermissionError("User is not authorized to delete this channel")
)

// Roster errors
var (
	ErrUserIDRequired = pkgerrors.NewValidationError("User id is required")
	ErrUserNotFound   = pkgerrors.NewNotFoundError("User not found")

	ErrMembersDenied = pkgerrors.NewPermissionError("You do not have permission to manage channel members.")
	ErrAdminsDenied  = pkgerrors.NewPermissionError("You do not have permission to manage channel admins.")
	ErrOwnersDenied  = pkgerrors.NewPermissionError("You do not have permission to manage channel owners.")

	ErrAlreadyMember = pkgerrors.NewConflictError("User is already a member of this channel.")
	ErrAlreadyAdmin  = pkgerrors.NewConflictError("User is already an admin of this channel.")
	ErrAlreadyOwner  = pkgerrors.NewConflictError("User is already an owner of this channel.")

	ErrMemberNotFound = pkgerrors.NewNotFoundError("Channel member not found")
	ErrAdminNotFound  = pkgerrors.NewNotFoundError("Channel admin not found")
	ErrOwnerNotFound  = pkgerrors.NewNotFoundError("Channel owner not found")

	ErrLastOwner = pkgerrors.NewConflictError("At least one owner must remain in the channel.")
)

// RosterDenied is returned when the caller may not manage the kind's roster
func RosterDenied(kind entities.RosterKind) error {
	switch kind {
	case entities.RosterAdmin:
		return ErrAdminsDenied
	case entities.RosterOwner:
		return ErrOwnersDenied
	default:
		return ErrMembersDenied
	}
}

// RosterDuplicate is returned when the user already holds the kind's role
func RosterDuplicate(kind entities.RosterKind) error {
	switch kind {
	case entities.RosterAdmin:
		return ErrAlreadyAdmin
	case entities.RosterOwner:
		return ErrAlreadyOwner
	default:
		return ErrAlreadyMember
	}
}

// RosterNotFound is returned for a missing row of the kind's roster
func RosterNotFound(kind entities.RosterKind) error {
	switch kind {
	case entities.RosterAdmin:
		return ErrAdminNotFound
	case entities.RosterOwner:
		return ErrOwnerNotFound
	default:
		return ErrMemberNotFound
	}
}

// ErrDatabase wraps a repository failure
func ErrDatabase(err error) error {
	return pkgerrors.WrapInternal(err, "database operation failed")
}

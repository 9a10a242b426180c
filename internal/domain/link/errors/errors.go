package errors

import (
	pkgerrors "github.com/hm-yang2/board-share/pkg/errors"
)

var (
	ErrLinkNotFound       = pkgerrors.NewNotFoundError("Link not found")
	ErrLinkIDRequired     = pkgerrors.NewNotFoundError("No Link Id")
	ErrInvalidTitle       = pkgerrors.NewValidationError("Title must be between 3 and 100 characters")
	ErrDescriptionTooLong = pkgerrors.NewValidationError("Description must be at most 255 characters")
	ErrInvalidURL         = pkgerrors.NewValidationError("Link must be an absolute http or https URL")
)

// Channel link errors
var (
	ErrChannelLinkNotFound   = pkgerrors.NewNotFoundError("Channel link not found")
	ErrChannelLinkIDRequired = pkgerrors.NewNotFoundError("No Channel Link Id")
	ErrViewDenied            = pkgerrors.NewPermissionError("User does not have permission to view links in this channel.")
	ErrCreateDenied          = pkgerrors.NewPermissionError("User does not have permission to create links in this channel.")
	ErrUpdateDenied          = pkgerrors.NewPermissionError("User does not have permission to update this channel link.")
	ErrDeleteDenied          = pkgerrors.NewPermissionError("User does not have permission to delete this channel link.")
)

// ErrDatabase wraps a repository failure
func ErrDatabase(err error) error {
	return pkgerrors.WrapInternal(err, "database operation failed")
}

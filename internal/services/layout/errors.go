package layout

import (
	"errors"

	"github.com/thenoetrevino/reportgrid/internal/database"
)

// Validation errors
var (
	ErrInvalidReportID  = errors.New("invalid report ID")
	ErrEmptyContainerID = errors.New("container ID cannot be empty")
	ErrInvalidWidth     = errors.New("width is not one of the allowed options")
	ErrContentTooLong   = errors.New("container content cannot exceed 10000 characters")
	ErrInvalidLayout    = errors.New("invalid layout")
)

// Business logic errors
var (
	// ErrRowFull means the row has no columns left for another container
	ErrRowFull = errors.New("row has no room for another container")

	// ErrLayoutNotEmpty is returned when adding a first container to a
	// report that already has some
	ErrLayoutNotEmpty = errors.New("layout already has containers")

	ErrReportNotFound    = database.ErrReportNotFound
	ErrContainerNotFound = database.ErrContainerNotFound
	ErrVersionConflict   = database.ErrVersionConflict
)

package report

import (
	"errors"

	"github.com/thenoetrevino/reportgrid/internal/database"
)

// Domain errors for report service
var (
	// Validation errors
	ErrEmptyTitle         = errors.New("report title cannot be empty")
	ErrTitleTooLong       = errors.New("report title cannot exceed 100 characters")
	ErrDescriptionTooLong = errors.New("report description cannot exceed 2000 characters")
	ErrInvalidReportID    = errors.New("invalid report ID")

	// Business logic errors
	ErrReportNotFound = database.ErrReportNotFound
)

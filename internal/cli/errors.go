package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/reportgrid/internal/converters"
	"github.com/thenoetrevino/reportgrid/internal/database"
	layoutservice "github.com/thenoetrevino/reportgrid/internal/services/layout"
	reportservice "github.com/thenoetrevino/reportgrid/internal/services/report"
)

var (
	// ErrUsage marks errors caused by how the command was invoked
	ErrUsage = errors.New("usage error")

	// ErrValidation marks input rejected before it reached a service
	ErrValidation = errors.New("validation error")
)

// StatusError carries the process exit code for an error that has already
// been reported to the user
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *StatusError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	_, code := Classify(err)
	return code
}

// Usagef builds an ErrUsage error
func Usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// Invalid marks err as a validation failure
func Invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// Classify returns the machine readable error code and exit code for err
func Classify(err error) (string, int) {
	switch {
	case errors.Is(err, database.ErrReportNotFound):
		return "REPORT_NOT_FOUND", ExitNotFound
	case errors.Is(err, database.ErrContainerNotFound):
		return "CONTAINER_NOT_FOUND", ExitNotFound
	case errors.Is(err, database.ErrVersionConflict):
		return "VERSION_CONFLICT", ExitConflict
	case errors.Is(err, ErrUsage):
		return "USAGE_ERROR", ExitUsage
	case errors.Is(err, converters.ErrInvalidDocument):
		return "INVALID_DOCUMENT", ExitDataErr
	case errors.Is(err, layoutservice.ErrRowFull):
		return "ROW_FULL", ExitValidation
	case isValidation(err):
		return "VALIDATION_ERROR", ExitValidation
	default:
		return "ERROR", ExitError
	}
}

func isValidation(err error) bool {
	for _, target := range []error{
		ErrValidation,
		layoutservice.ErrInvalidReportID,
		layoutservice.ErrEmptyContainerID,
		layoutservice.ErrInvalidWidth,
		layoutservice.ErrContentTooLong,
		layoutservice.ErrInvalidLayout,
		layoutservice.ErrLayoutNotEmpty,
		reportservice.ErrEmptyTitle,
		reportservice.ErrTitleTooLong,
		reportservice.ErrDescriptionTooLong,
		reportservice.ErrInvalidReportID,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

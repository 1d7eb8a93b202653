package database

import "errors"

var (
	ErrReportNotFound    = errors.New("report not found")
	ErrContainerNotFound = errors.New("container not found")

	// ErrVersionConflict means the layout changed since it was read
	ErrVersionConflict = errors.New("layout was modified concurrently")
)

package models

import "time"

// Report is a document whose body is a grid of containers.
// Version counts committed layout changes and guards concurrent editors.
type Report struct {
	ID          int
	Title       string
	Description string
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetID returns the report ID
func (r *Report) GetID() int {
	return r.ID
}

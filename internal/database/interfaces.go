// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/reportgrid/internal/models"
)

// ReportRepository defines report persistence.
type ReportRepository interface {
	CreateReport(ctx context.Context, title, description string) (*models.Report, error)
	GetReportByID(ctx context.Context, id int) (*models.Report, error)
	GetAllReports(ctx context.Context) ([]*models.Report, error)
	UpdateReport(ctx context.Context, id int, title, description string) error
	DeleteReport(ctx context.Context, id int) error
}

// ContainerReader defines read operations for containers.
type ContainerReader interface {
	GetContainersByReport(ctx context.Context, reportID int) ([]*models.Container, error)
	GetLayout(ctx context.Context, reportID int) (*models.Layout, error)
}

// ContainerWriter defines write operations for containers.
type ContainerWriter interface {
	SaveLayout(ctx context.Context, reportID, expectedVersion int, containers []*models.Container) (int, error)
	UpdateContainerContent(ctx context.Context, reportID int, containerID string, contentType models.ContentType, content string) error
}

// ContainerRepository combines all container-related operations.
type ContainerRepository interface {
	ContainerReader
	ContainerWriter
}

// DataStore is the unified interface for all data operations.
type DataStore interface {
	ReportRepository
	ContainerRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)

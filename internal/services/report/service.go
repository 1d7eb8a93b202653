// Package report manages report records: titles, descriptions and lifecycle.
// Layout edits live in the layout service.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/reportgrid/internal/events"
	"github.com/thenoetrevino/reportgrid/internal/models"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 2000
)

// Service defines all report-related business operations
type Service interface {
	// Read operations
	ListReports(ctx context.Context) ([]*models.Report, error)
	GetReportByID(ctx context.Context, id int) (*models.Report, error)

	// Write operations
	CreateReport(ctx context.Context, req CreateReportRequest) (*models.Report, error)
	UpdateReport(ctx context.Context, req UpdateReportRequest) (*models.Report, error)
	DeleteReport(ctx context.Context, id int) error
}

// CreateReportRequest encapsulates data for creating a report
type CreateReportRequest struct {
	Title       string
	Description string
}

// UpdateReportRequest encapsulates data for updating a report.
// Nil fields are left unchanged.
type UpdateReportRequest struct {
	ID          int
	Title       *string
	Description *string
}

// repository defines the data access methods needed by the report service
type repository interface {
	CreateReport(ctx context.Context, title, description string) (*models.Report, error)
	GetReportByID(ctx context.Context, id int) (*models.Report, error)
	GetAllReports(ctx context.Context) ([]*models.Report, error)
	UpdateReport(ctx context.Context, id int, title, description string) error
	DeleteReport(ctx context.Context, id int) error
}

type service struct {
	repo        repository
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// NewService creates a new report service. eventClient may be nil.
func NewService(repo repository, eventClient events.EventPublisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:        repo,
		eventClient: eventClient,
		logger:      logger,
	}
}

// ListReports retrieves all reports
func (s *service) ListReports(ctx context.Context) ([]*models.Report, error) {
	return s.repo.GetAllReports(ctx)
}

// GetReportByID retrieves a specific report
func (s *service) GetReportByID(ctx context.Context, id int) (*models.Report, error) {
	if id <= 0 {
		return nil, ErrInvalidReportID
	}
	return s.repo.GetReportByID(ctx, id)
}

// CreateReport creates a new report with an empty layout
func (s *service) CreateReport(ctx context.Context, req CreateReportRequest) (*models.Report, error) {
	title := strings.TrimSpace(req.Title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		return nil, err
	}

	report, err := s.repo.CreateReport(ctx, title, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	s.logger.Info("report created", "report_id", report.ID, "title", report.Title)
	s.publishReportEvent(report.ID)
	return report, nil
}

// UpdateReport updates an existing report's title and/or description
func (s *service) UpdateReport(ctx context.Context, req UpdateReportRequest) (*models.Report, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidReportID
	}

	existing, err := s.repo.GetReportByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	title := existing.Title
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
	}

	description := existing.Description
	if req.Description != nil {
		description = *req.Description
		if err := validateDescription(description); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateReport(ctx, req.ID, title, description); err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	s.logger.Info("report updated", "report_id", req.ID)
	s.publishReportEvent(req.ID)
	return s.repo.GetReportByID(ctx, req.ID)
}

// DeleteReport removes a report together with its layout
func (s *service) DeleteReport(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidReportID
	}

	if err := s.repo.DeleteReport(ctx, id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	s.logger.Info("report deleted", "report_id", id)
	s.publishReportEvent(id)
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// publishReportEvent tells other editors the report record changed
func (s *service) publishReportEvent(reportID int) {
	if s.eventClient == nil {
		return
	}
	err := events.PublishWithRetry(s.eventClient, events.Event{
		Type:     events.EventReportChanged,
		ReportID: reportID,
	}, 3)
	if err != nil {
		s.logger.Warn("failed to send event", "report_id", reportID, "error", err)
	}
}

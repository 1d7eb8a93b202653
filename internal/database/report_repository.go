package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/reportgrid/internal/models"
)

// ReportRepo handles all report-related database operations.
type ReportRepo struct {
	db *sql.DB
}

const reportColumns = `id, title, description, layout_version, created_at, updated_at`

// CreateReport inserts a report with an empty layout
func (r *ReportRepo) CreateReport(ctx context.Context, title, description string) (*models.Report, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO reports (title, description) VALUES (?, ?)`,
		title, description,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetReportByID(ctx, int(id))
}

// GetReportByID retrieves a single report
func (r *ReportRepo) GetReportByID(ctx context.Context, id int) (*models.Report, error) {
	return getReport(ctx, r.db, id)
}

// GetAllReports retrieves every report ordered by id
func (r *ReportRepo) GetAllReports(ctx context.Context) ([]*models.Report, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var reports []*models.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// UpdateReport changes a report's title and description
func (r *ReportRepo) UpdateReport(ctx context.Context, id int, title, description string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE reports SET title = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		title, description, id,
	)
	if err != nil {
		return fmt.Errorf("updating report: %w", err)
	}
	return expectAffected(result, ErrReportNotFound)
}

// DeleteReport removes a report and, through the cascade, its containers
func (r *ReportRepo) DeleteReport(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return expectAffected(result, ErrReportNotFound)
}

func getReport(ctx context.Context, q queryer, id int) (*models.Report, error) {
	row := q.QueryRowContext(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = ?`, id)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrReportNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying report %d: %w", id, err)
	}
	return report, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (*models.Report, error) {
	report := &models.Report{}
	if err := s.Scan(
		&report.ID,
		&report.Title,
		&report.Description,
		&report.Version,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return report, nil
}

func expectAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/reportgrid/internal/models"
)

// ContainerRepo handles all container-related database operations.
type ContainerRepo struct {
	db *sql.DB
}

// GetContainersByReport retrieves a report's containers ordered by row, then column
func (r *ContainerRepo) GetContainersByReport(ctx context.Context, reportID int) ([]*models.Container, error) {
	return getContainers(ctx, r.db, reportID)
}

// GetLayout reads a report and its containers in one transaction so the
// returned version matches the returned containers
func (r *ContainerRepo) GetLayout(ctx context.Context, reportID int) (*models.Layout, error) {
	var layout *models.Layout
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		report, err := getReport(ctx, tx, reportID)
		if err != nil {
			return err
		}
		containers, err := getContainers(ctx, tx, reportID)
		if err != nil {
			return err
		}
		layout = &models.Layout{Report: report, Containers: containers}
		return nil
	})
	return layout, err
}

// SaveLayout replaces a report's containers, provided the stored layout is
// still at expectedVersion. It returns the new version.
func (r *ContainerRepo) SaveLayout(ctx context.Context, reportID, expectedVersion int, containers []*models.Container) (int, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE reports
			 SET layout_version = layout_version + 1, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ? AND layout_version = ?`,
			reportID, expectedVersion,
		)
		if err != nil {
			return fmt.Errorf("bumping layout version: %w", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return versionMismatch(ctx, tx, reportID, expectedVersion)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM containers WHERE report_id = ?`, reportID); err != nil {
			return fmt.Errorf("clearing containers: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO containers (id, report_id, row_index, column_index, width, content_type, content)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer func() { _ = stmt.Close() }()

		for _, c := range containers {
			contentType := c.ContentType
			if contentType == "" {
				contentType = models.ContentText
			}
			if _, err := stmt.ExecContext(ctx,
				c.ID, reportID, c.Row, c.Column, c.Width, string(contentType), c.Content,
			); err != nil {
				return fmt.Errorf("inserting container %s: %w", c.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expectedVersion + 1, nil
}

// UpdateContainerContent changes what a container displays without touching
// the layout version
func (r *ContainerRepo) UpdateContainerContent(ctx context.Context, reportID int, containerID string, contentType models.ContentType, content string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE containers SET content_type = ?, content = ? WHERE report_id = ? AND id = ?`,
			string(contentType), content, reportID, containerID,
		)
		if err != nil {
			return fmt.Errorf("updating container: %w", err)
		}
		if err := expectAffected(result, ErrContainerNotFound); err != nil {
			return fmt.Errorf("%w: %s", err, containerID)
		}

		_, err = tx.ExecContext(ctx, `UPDATE reports SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, reportID)
		return err
	})
}

func versionMismatch(ctx context.Context, tx *sql.Tx, reportID, expectedVersion int) error {
	var current int
	err := tx.QueryRowContext(ctx, `SELECT layout_version FROM reports WHERE id = ?`, reportID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %d", ErrReportNotFound, reportID)
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: report %d is at version %d, edit was based on %d",
		ErrVersionConflict, reportID, current, expectedVersion)
}

func getContainers(ctx context.Context, q queryer, reportID int) ([]*models.Container, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, report_id, row_index, column_index, width, content_type, content
		 FROM containers WHERE report_id = ?
		 ORDER BY row_index, column_index`,
		reportID)
	if err != nil {
		return nil, fmt.Errorf("querying containers for report: %w", err)
	}
	defer func() { _ = rows.Close() }()

	containers := []*models.Container{}
	for rows.Next() {
		c := &models.Container{}
		var contentType string
		if err := rows.Scan(&c.ID, &c.ReportID, &c.Row, &c.Column, &c.Width, &contentType, &c.Content); err != nil {
			return nil, fmt.Errorf("scanning container row: %w", err)
		}
		c.ContentType = models.ContentType(contentType)
		containers = append(containers, c)
	}
	return containers, rows.Err()
}

// Package testutil holds shared fixtures for package tests
package testutil

import (
	"context"
	"database/sql"
	"strconv"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/reportgrid/internal/database"
	"github.com/thenoetrevino/reportgrid/internal/models"
)

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every pooled connection to :memory: would be a separate database
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestReport inserts a report and returns it
func CreateTestReport(t *testing.T, db *sql.DB, title string) *models.Report {
	t.Helper()
	report, err := database.NewRepository(db).CreateReport(context.Background(), title, "")
	if err != nil {
		t.Fatalf("Failed to create test report: %v", err)
	}
	return report
}

// SeedLayout stores containers as the report's first layout. Each spec is
// id, row, column, width.
func SeedLayout(t *testing.T, db *sql.DB, reportID int, specs ...ContainerSpec) *models.Layout {
	t.Helper()
	ctx := context.Background()
	repo := database.NewRepository(db)

	current, err := repo.GetLayout(ctx, reportID)
	if err != nil {
		t.Fatalf("Failed to read layout: %v", err)
	}

	containers := make([]*models.Container, len(specs))
	for i, s := range specs {
		containers[i] = &models.Container{
			ID:          s.ID,
			ReportID:    reportID,
			Row:         s.Row,
			Column:      s.Column,
			Width:       s.Width,
			ContentType: models.ContentText,
		}
	}
	if _, err := repo.SaveLayout(ctx, reportID, current.Report.Version, containers); err != nil {
		t.Fatalf("Failed to seed layout: %v", err)
	}

	layout, err := repo.GetLayout(ctx, reportID)
	if err != nil {
		t.Fatalf("Failed to read seeded layout: %v", err)
	}
	return layout
}

// ContainerSpec is the placement part of a container for SeedLayout
type ContainerSpec struct {
	ID     string
	Row    int
	Column int
	Width  int
}

// C is shorthand for a ContainerSpec
func C(id string, row, column, width int) ContainerSpec {
	return ContainerSpec{ID: id, Row: row, Column: column, Width: width}
}

// SequentialIDs returns an id generator yielding prefix1, prefix2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}

package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/reportgrid/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	// Every pooled connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile opens a file-backed database through InitDB
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reports.db")
	db, err := InitDB(context.Background(), path)
	require.NoError(t, err)
	return db, path
}

func testContainers(reportID int) []*models.Container {
	return []*models.Container{
		{ID: "a", ReportID: reportID, Row: 1, Column: 1, Width: 6, ContentType: models.ContentHeading, Content: "Sales"},
		{ID: "b", ReportID: reportID, Row: 1, Column: 2, Width: 6, ContentType: models.ContentKPI},
		{ID: "c", ReportID: reportID, Row: 2, Column: 1, Width: 12},
	}
}

package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		layout_version INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS containers (
		id TEXT NOT NULL,
		report_id INTEGER NOT NULL,
		row_index INTEGER NOT NULL CHECK (row_index > 0),
		column_index INTEGER NOT NULL CHECK (column_index > 0),
		width INTEGER NOT NULL CHECK (width BETWEEN 1 AND 12),
		content_type TEXT NOT NULL DEFAULT 'text',
		content TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (report_id, id),
		FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_containers_position
		ON containers(report_id, row_index, column_index)`,
}

// Migrate creates the database schema if needed
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}

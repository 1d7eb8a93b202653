// Package app wires the repository, services and event client together.
package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/reportgrid/internal/database"
	"github.com/thenoetrevino/reportgrid/internal/events"
	layoutservice "github.com/thenoetrevino/reportgrid/internal/services/layout"
	reportservice "github.com/thenoetrevino/reportgrid/internal/services/report"
)

// App holds all application services and provides dependency injection.
type App struct {
	repo        database.DataStore
	eventClient events.EventPublisher
	logger      *slog.Logger

	// Service layer (business logic)
	ReportService reportservice.Service
	LayoutService layoutservice.Service
}

// New creates a new App with all services initialized.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)
	return &App{
		repo:          repo,
		eventClient:   cfg.eventClient,
		logger:        cfg.logger,
		ReportService: reportservice.NewService(repo, cfg.eventClient, cfg.logger),
		LayoutService: layoutservice.NewService(repo, cfg.eventClient, cfg.logger, cfg.newID),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// EventClient returns the configured publisher, or nil when running without
// a daemon
func (a *App) EventClient() events.EventPublisher {
	return a.eventClient
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the event client, if any.
func (a *App) Close() error {
	if a.eventClient == nil {
		return nil
	}
	return a.eventClient.Close()
}

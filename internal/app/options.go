package app

import (
	"log/slog"

	"github.com/thenoetrevino/reportgrid/internal/events"
	layoutservice "github.com/thenoetrevino/reportgrid/internal/services/layout"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	newID       layoutservice.IDGenerator
}

// WithEventPublisher sets the event publisher for the application
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithIDGenerator overrides how new container ids are minted
func WithIDGenerator(gen layoutservice.IDGenerator) Option {
	return func(cfg *appConfig) {
		cfg.newID = gen
	}
}

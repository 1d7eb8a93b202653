// Package cli holds the plumbing shared by the reportgrid commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/reportgrid/internal/app"
	"github.com/thenoetrevino/reportgrid/internal/cli/styles"
	"github.com/thenoetrevino/reportgrid/internal/config"
	"github.com/thenoetrevino/reportgrid/internal/database"
	"github.com/thenoetrevino/reportgrid/internal/events"
	"github.com/thenoetrevino/reportgrid/internal/logging"
)

type contextKey string

const appKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	db        *sql.DB
	logCloser io.Closer
	owned     bool // App was created here and must be closed
}

// WithApp returns a context carrying a prebuilt app. Commands run with it
// use that app instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns the CLI for a command, preferring an app
// injected with WithApp
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		cfg := config.Default()
		styles.Init(cfg.ColorScheme)
		return &CLI{App: a, Config: cfg}, nil
	}
	return NewCLI(ctx)
}

// NewCLI loads the config, opens the database and connects to the daemon
// if one is running
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	logCloser, err := logging.Init(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath())
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	opts := []app.Option{app.WithLogger(slog.Default())}

	// The daemon is optional; without it edits are simply not broadcast
	if client := connectDaemon(ctx, cfg.SocketPath(), slog.Default()); client != nil {
		opts = append(opts, app.WithEventPublisher(client))
	}

	return &CLI{
		App:       app.New(db, opts...),
		Config:    cfg,
		db:        db,
		logCloser: logCloser,
		owned:     true,
	}, nil
}

// connectDaemon returns a connected event client, or nil with the reason
// and a remedy logged when no daemon answers on socketPath
func connectDaemon(ctx context.Context, socketPath string, logger *slog.Logger) *events.Client {
	client := events.NewClient(socketPath)
	client.SetLogger(logger)
	if err := client.Connect(ctx); err != nil {
		daemonErr := events.ClassifyDaemonError(err)
		logger.Debug("daemon not available",
			"socket_path", socketPath,
			"reason", daemonErr.Message,
			"hint", daemonErr.Hint,
			"error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// Close cleans up CLI resources. Injected apps are left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.db != nil {
		if closeErr := c.db.Close(); err == nil {
			err = closeErr
		}
	}
	if c.logCloser != nil {
		if closeErr := c.logCloser.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}

// Run sets up the CLI for cmd, hands it to fn and closes it afterwards.
// Setup failures are reported through the command's formatter.
func Run(cmd *cobra.Command, fn func(ctx context.Context, c *CLI, f *OutputFormatter) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := NewFormatter(cmd)

	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return &StatusError{Code: ExitError, Err: err}
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return fn(ctx, cliInstance, formatter)
}

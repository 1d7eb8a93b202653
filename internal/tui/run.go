package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/reportgrid/internal/app"
	"github.com/thenoetrevino/reportgrid/internal/config"
	"github.com/thenoetrevino/reportgrid/internal/events"
)

// Run opens the editor for reportID and blocks until the user quits. Live
// updates are wired when the app has a connected event client.
func Run(ctx context.Context, application *app.App, cfg *config.Config, reportID int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var eventChan <-chan events.Event
	if client := application.EventClient(); client != nil {
		if err := client.Subscribe(reportID); err != nil {
			slog.Warn("failed to subscribe to report events", "report_id", reportID, "error", err)
		}
		ch, err := client.Listen(ctx)
		if err != nil {
			slog.Warn("live updates disabled", "error", err)
		} else {
			eventChan = ch
		}
	}

	model := New(ctx, application.LayoutService, cfg, reportID, eventChan)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

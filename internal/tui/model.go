// Package tui is the interactive layout editor for a single report.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/reportgrid/internal/config"
	"github.com/thenoetrevino/reportgrid/internal/events"
	"github.com/thenoetrevino/reportgrid/internal/grid"
	"github.com/thenoetrevino/reportgrid/internal/models"
	"github.com/thenoetrevino/reportgrid/internal/render"
	layoutservice "github.com/thenoetrevino/reportgrid/internal/services/layout"
)

// Model is the editor state
type Model struct {
	ctx      context.Context
	layouts  layoutservice.Service
	reportID int

	layout *models.Layout
	items  []grid.Item // layout placement in reading order
	cursor string

	status    string
	statusErr bool

	keys     keyMap
	help     help.Model
	showHelp bool

	styles    render.Styles
	cellWidth int
	width     int

	eventChan <-chan events.Event
}

// New creates an editor for reportID. eventChan may be nil when no daemon
// is running.
func New(ctx context.Context, layouts layoutservice.Service, cfg *config.Config, reportID int, eventChan <-chan events.Event) Model {
	return Model{
		ctx:       ctx,
		layouts:   layouts,
		reportID:  reportID,
		keys:      newKeyMap(cfg.KeyMappings),
		help:      help.New(),
		styles:    render.NewStyles(cfg.ColorScheme),
		cellWidth: cfg.Render.CellWidth,
		eventChan: eventChan,
	}
}

// Init loads the layout and starts listening for live updates
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.listen())
}

// Layout returns the layout currently shown
func (m Model) Layout() *models.Layout {
	return m.layout
}

// Cursor returns the id of the selected container
func (m Model) Cursor() string {
	return m.cursor
}

// Status returns the status line text and whether it reports an error
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		layout, err := m.layouts.GetLayout(m.ctx, m.reportID)
		return layoutLoadedMsg{layout: layout, err: err}
	}
}

// listen waits for the next daemon event. Returns nil if there is no
// event stream.
func (m Model) listen() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}
	ch := m.eventChan
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// setLayout replaces the shown layout and keeps the cursor on a container
// that still exists, preferring want
func (m *Model) setLayout(layout *models.Layout, want string) {
	m.layout = layout
	m.items = grid.Sort(layout.Items())

	if want == "" {
		want = m.cursor
	}
	switch {
	case grid.Index(m.items, want) >= 0:
		m.cursor = want
	case len(m.items) > 0:
		m.cursor = m.items[0].ID
	default:
		m.cursor = ""
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) version() int {
	if m.layout == nil || m.layout.Report == nil {
		return 0
	}
	return m.layout.Report.Version
}

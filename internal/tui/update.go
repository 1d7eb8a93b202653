package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/reportgrid/internal/models"
	"github.com/thenoetrevino/reportgrid/internal/render"
	layoutservice "github.com/thenoetrevino/reportgrid/internal/services/layout"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case layoutLoadedMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
			return m, nil
		}
		m.setLayout(msg.layout, "")
		return m, nil

	case editedMsg:
		return m.handleEdited(msg)

	case RefreshMsg:
		cmds := []tea.Cmd{m.listen()}
		if m.wantsRefresh(msg) {
			cmds = append(cmds, m.load())
		}
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) wantsRefresh(msg RefreshMsg) bool {
	if msg.Event.ReportID != 0 && msg.Event.ReportID != m.reportID {
		return false
	}
	// Versions we already show (usually our own saves) need no reload
	return msg.Event.Version == 0 || msg.Event.Version > m.version()
}

func (m Model) handleEdited(msg editedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, layoutservice.ErrVersionConflict) {
		m.setStatus("layout changed elsewhere, reloaded", true)
		return m, m.load()
	}
	if msg.err != nil {
		m.setStatus(msg.err.Error(), true)
		return m, nil
	}
	if msg.layout != nil {
		m.setLayout(msg.layout, msg.cursor)
	}
	m.setStatus(msg.status, false)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		m.setStatus("reloaded", false)
		return m, m.load()
	}

	if m.layout == nil {
		return m, nil
	}

	// An empty report only accepts the insert keys, which all place the
	// first container
	if len(m.items) == 0 {
		if key.Matches(msg, m.keys.InsertBefore, m.keys.InsertAfter, m.keys.InsertRowAbove, m.keys.InsertRowBelow) {
			return m, m.addFirst()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.moveCursor(step(m.items, m.cursor, -1))
	case key.Matches(msg, m.keys.Next):
		m.moveCursor(step(m.items, m.cursor, 1))
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(rowJump(m.items, m.cursor, -1))
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(rowJump(m.items, m.cursor, 1))

	case key.Matches(msg, m.keys.InsertBefore):
		return m, m.insert("inserted before", m.layouts.InsertBefore)
	case key.Matches(msg, m.keys.InsertAfter):
		return m, m.insert("inserted after", m.layouts.InsertAfter)
	case key.Matches(msg, m.keys.InsertRowAbove):
		return m, m.insert("new row above", m.layouts.InsertRowAbove)
	case key.Matches(msg, m.keys.InsertRowBelow):
		return m, m.insert("new row below", m.layouts.InsertRowBelow)
	case key.Matches(msg, m.keys.Delete):
		return m, m.remove()

	case key.Matches(msg, m.keys.MoveLeft):
		return m, m.move(-1)
	case key.Matches(msg, m.keys.MoveRight):
		return m, m.move(1)

	case key.Matches(msg, m.keys.Grow):
		return m, m.resize(1)
	case key.Matches(msg, m.keys.Shrink):
		return m, m.resize(-1)

	case key.Matches(msg, m.keys.CycleType):
		return m, m.cycleContentType()
	}

	return m, nil
}

func (m *Model) moveCursor(id string) {
	if id != "" {
		m.cursor = id
	}
}

func (m Model) addFirst() tea.Cmd {
	return func() tea.Msg {
		layout, id, err := m.layouts.AddFirst(m.ctx, m.reportID)
		return editedMsg{layout: layout, cursor: id, status: "added first container", err: err}
	}
}

type insertFunc func(ctx context.Context, reportID int, targetID string) (*models.Layout, string, error)

func (m Model) insert(status string, fn insertFunc) tea.Cmd {
	target := m.cursor
	return func() tea.Msg {
		layout, id, err := fn(m.ctx, m.reportID, target)
		return editedMsg{layout: layout, cursor: id, status: status, err: err}
	}
}

func (m Model) remove() tea.Cmd {
	target := m.cursor
	// Land on the following container, or the previous one at the end
	next := step(m.items, target, 1)
	if next == "" {
		next = step(m.items, target, -1)
	}
	return func() tea.Msg {
		layout, err := m.layouts.Remove(m.ctx, m.reportID, target)
		return editedMsg{layout: layout, cursor: next, status: "removed " + render.ShortID(target), err: err}
	}
}

func (m Model) move(dir int) tea.Cmd {
	target, placement, ok := moveTarget(m.items, m.cursor, dir)
	if !ok {
		return nil
	}
	id := m.cursor
	return func() tea.Msg {
		layout, err := m.layouts.Move(m.ctx, layoutservice.MoveRequest{
			ReportID:    m.reportID,
			ContainerID: id,
			TargetID:    target,
			Placement:   placement,
		})
		return editedMsg{layout: layout, cursor: id, status: "moved", err: err}
	}
}

func (m Model) resize(dir int) tea.Cmd {
	id := m.cursor
	c := m.layout.Find(id)
	if c == nil {
		return nil
	}
	current := c.Width
	return func() tea.Msg {
		options, err := m.layouts.WidthOptions(m.ctx, m.reportID, id)
		if err != nil {
			return editedMsg{err: err}
		}
		width, ok := nextWidth(options, current, dir)
		if !ok {
			verb := "grow"
			if dir < 0 {
				verb = "shrink"
			}
			return editedMsg{status: fmt.Sprintf("cannot %s %s further", verb, render.ShortID(id))}
		}
		layout, err := m.layouts.Resize(m.ctx, m.reportID, id, width)
		return editedMsg{layout: layout, cursor: id, status: fmt.Sprintf("width %d", width), err: err}
	}
}

func (m Model) cycleContentType() tea.Cmd {
	c := m.layout.Find(m.cursor)
	if c == nil {
		return nil
	}
	types := models.ContentTypes()
	next := types[(slices.Index(types, c.ContentType)+1)%len(types)]

	req := layoutservice.SetContentRequest{
		ReportID:    m.reportID,
		ContainerID: c.ID,
		ContentType: next,
		Content:     c.Content,
	}
	return func() tea.Msg {
		layout, err := m.layouts.SetContent(m.ctx, req)
		if err != nil {
			slog.Debug("content type change failed", "report_id", req.ReportID, "container_id", req.ContainerID, "error", err)
		}
		return editedMsg{layout: layout, cursor: req.ContainerID, status: next.Label(), err: err}
	}
}

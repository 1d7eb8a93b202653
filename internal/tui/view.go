package tui

import (
	"strings"

	"github.com/thenoetrevino/reportgrid/internal/render"
)

// View renders the editor
func (m Model) View() string {
	if m.layout == nil {
		if m.status != "" {
			return m.statusLine() + "\n"
		}
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(render.Header(m.layout.Report, &m.styles))
	b.WriteString("\n\n")
	b.WriteString(render.Grid(m.layout, render.Options{
		CellWidth: m.cellWidth,
		Selected:  m.cursor,
		ShowSpan:  true,
		Styles:    &m.styles,
	}))
	b.WriteString("\n\n")
	if line := m.statusLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.Error.Render(m.status)
	}
	return m.styles.Info.Render(m.status)
}

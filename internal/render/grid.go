package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/thenoetrevino/reportgrid/internal/config/colors"
	"github.com/thenoetrevino/reportgrid/internal/grid"
	"github.com/thenoetrevino/reportgrid/internal/models"
)

const (
	// DefaultCellWidth is the number of terminal columns per grid unit
	DefaultCellWidth = 6

	// boxLines is the inner height of every container box
	boxLines = 3

	shortIDLength = 8
)

// Options controls how a layout is drawn
type Options struct {
	CellWidth int
	Selected  string // container id drawn with the selection border
	ShowSpan  bool   // append "span/12" to each row
	Styles    *Styles
}

// Grid draws a layout as rows of boxes, each box width*CellWidth columns
// wide. Each run of rows left empty by removals is drawn as one faint
// placeholder line.
func Grid(layout *models.Layout, opts Options) string {
	cellWidth := opts.CellWidth
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	styles := opts.Styles
	if styles == nil {
		s := NewStyles(*colors.Default())
		styles = &s
	}

	items := layout.Items()
	rows := grid.Rows(items)
	if len(rows) == 0 {
		return styles.EmptyRow.Width(grid.TotalColumns * cellWidth).Render("no containers yet")
	}

	containers := make(map[string]*models.Container, len(layout.Containers))
	for _, c := range layout.Containers {
		containers[c.ID] = c
	}

	var lines []string
	prev := 0
	for _, row := range rows {
		if gap := emptyRows(prev+1, row-1); gap != "" {
			lines = append(lines, styles.EmptyRow.
				Width(grid.TotalColumns*cellWidth).
				Render(gap))
		}
		prev = row

		rowItems := grid.RowItems(items, row)
		boxes := make([]string, 0, len(rowItems))
		for _, it := range rowItems {
			boxes = append(boxes, box(containers[it.ID], it.Width*cellWidth, it.ID == opts.Selected, styles))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
		if opts.ShowSpan {
			span := styles.Subtle.Render(fmt.Sprintf(" %d/%d", grid.RowSpan(items, row), grid.TotalColumns))
			line = lipgloss.JoinHorizontal(lipgloss.Center, line, span)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// emptyRows labels the unoccupied rows from..to, or returns "" for none
func emptyRows(from, to int) string {
	switch {
	case to < from:
		return ""
	case from == to:
		return fmt.Sprintf("· empty row %d ·", from)
	default:
		return fmt.Sprintf("· empty rows %d-%d ·", from, to)
	}
}

// box draws one container outerWidth columns wide including its border
func box(c *models.Container, outerWidth int, selected bool, styles *Styles) string {
	style := styles.Box
	if selected {
		style = styles.Selected
	}

	inner := max(outerWidth-style.GetHorizontalBorderSize(), 1)

	kind := c.ContentType.Label()
	body := []string{
		styles.Kind.Render(ansi.Truncate(kind, inner, "…")),
		styles.Subtle.Render(ansi.Truncate("#"+ShortID(c.ID), inner, "…")),
		styles.Content.Render(ansi.Truncate(firstLine(c.Content), inner, "…")),
	}

	return style.
		Width(inner).
		Height(boxLines).
		MaxHeight(boxLines + style.GetVerticalBorderSize()).
		Render(strings.Join(body, "\n"))
}

// ShortID trims long generated ids for display
func ShortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Header renders the report title with its id and layout version
func Header(report *models.Report, styles *Styles) string {
	if styles == nil {
		s := NewStyles(*colors.Default())
		styles = &s
	}
	return styles.Title.Render(report.Title) +
		styles.Subtle.Render(fmt.Sprintf("  #%d  v%d", report.ID, report.Version))
}

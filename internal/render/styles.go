// Package render draws report layouts for the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/reportgrid/internal/config/colors"
)

// Styles holds every lipgloss style the renderer uses
type Styles struct {
	Box      lipgloss.Style
	Selected lipgloss.Style
	EmptyRow lipgloss.Style
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Content  lipgloss.Style
	Kind     lipgloss.Style
	Info     lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds the renderer's styles from a color scheme
func NewStyles(scheme colors.ColorScheme) Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.ContainerBorder)),

		// Thick border so the cursor is visible without colors
		Selected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(scheme.SelectedBorder)),

		EmptyRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.EmptyRow)).
			Align(lipgloss.Center).
			Faint(true),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),

		Content: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Normal)),

		Kind: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.InfoFg)),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.ErrorFg)),
	}
}

package tui

import (
	"github.com/thenoetrevino/reportgrid/internal/events"
	"github.com/thenoetrevino/reportgrid/internal/models"
)

// layoutLoadedMsg carries a freshly read layout
type layoutLoadedMsg struct {
	layout *models.Layout
	err    error
}

// editedMsg is the outcome of one layout edit. cursor is the container the
// selection should land on; empty keeps the current one.
type editedMsg struct {
	layout *models.Layout
	cursor string
	status string
	err    error
}

// RefreshMsg is sent when the daemon reports a change made elsewhere
type RefreshMsg struct {
	Event events.Event
}

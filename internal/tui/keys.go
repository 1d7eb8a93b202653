package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/reportgrid/internal/config"
)

// keyMap holds the editor's bindings, built from the user's key mappings
type keyMap struct {
	Prev key.Binding
	Next key.Binding
	Up   key.Binding
	Down key.Binding

	InsertBefore   key.Binding
	InsertAfter    key.Binding
	InsertRowAbove key.Binding
	InsertRowBelow key.Binding
	Delete         key.Binding
	MoveLeft       key.Binding
	MoveRight      key.Binding

	Grow   key.Binding
	Shrink key.Binding

	CycleType key.Binding

	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	bind := func(k, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
	}

	return keyMap{
		Prev: bind(km.PrevContainer, "prev"),
		Next: bind(km.NextContainer, "next"),
		Up:   bind(km.RowUp, "row up"),
		Down: bind(km.RowDown, "row down"),

		InsertBefore:   bind(km.InsertBefore, "insert before"),
		InsertAfter:    bind(km.InsertAfter, "insert after"),
		InsertRowAbove: bind(km.InsertRowAbove, "new row above"),
		InsertRowBelow: bind(km.InsertRowBelow, "new row below"),
		Delete:         bind(km.DeleteContainer, "delete"),
		MoveLeft:       bind(km.MoveLeft, "move left"),
		MoveRight:      bind(km.MoveRight, "move right"),

		Grow:   bind(km.Grow, "grow"),
		Shrink: bind(km.Shrink, "shrink"),

		CycleType: bind(km.CycleContentType, "content type"),

		Reload: bind(km.Reload, "reload"),
		Help:   bind(km.ShowHelp, "help"),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.InsertAfter, k.Delete, k.Grow, k.Shrink, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Up, k.Down},
		{k.InsertBefore, k.InsertAfter, k.InsertRowAbove, k.InsertRowBelow},
		{k.Delete, k.MoveLeft, k.MoveRight, k.Grow, k.Shrink},
		{k.CycleType, k.Reload, k.Help, k.Quit},
	}
}

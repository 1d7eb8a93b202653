package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type rendererKey struct {
	width int
	style string
}

var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

// getRenderer returns a cached glamour renderer for the given width and style
func getRenderer(width int, style string) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, style: style}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	rendererCache.Store(key, renderer)
	return renderer, nil
}

// Markdown renders a report description. style is a glamour standard style
// ("dark", "light", "notty", ...); empty picks one from the terminal.
func Markdown(description string, width int, style string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", nil
	}
	if width <= 0 {
		width = 80
	}

	renderer, err := getRenderer(width, style)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(description)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

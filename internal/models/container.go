package models

import "github.com/thenoetrevino/reportgrid/internal/grid"

// Container is one placed rectangle on a report's grid together with the
// content it displays
type Container struct {
	ID          string
	ReportID    int
	Row         int
	Column      int
	Width       int
	ContentType ContentType
	Content     string
}

// GridItem returns the container's placement
func (c *Container) GridItem() grid.Item {
	return grid.Item{
		ID:     c.ID,
		Row:    c.Row,
		Column: c.Column,
		Width:  c.Width,
	}
}

// Layout is a report together with its containers ordered by (row, column)
type Layout struct {
	Report     *Report
	Containers []*Container
}

// Items returns the placement of every container
func (l *Layout) Items() []grid.Item {
	items := make([]grid.Item, len(l.Containers))
	for i, c := range l.Containers {
		items[i] = c.GridItem()
	}
	return items
}

// Find returns the container with the given id, or nil
func (l *Layout) Find(id string) *Container {
	for _, c := range l.Containers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// WithItems builds the container list for a new placement. Containers keep
// their content; ids the layout has not seen before become empty text
// containers.
func (l *Layout) WithItems(items []grid.Item) []*Container {
	reportID := 0
	if l.Report != nil {
		reportID = l.Report.ID
	}

	out := make([]*Container, len(items))
	for i, it := range items {
		c := &Container{
			ID:          it.ID,
			ReportID:    reportID,
			Row:         it.Row,
			Column:      it.Column,
			Width:       it.Width,
			ContentType: ContentText,
		}
		if prev := l.Find(it.ID); prev != nil {
			c.ContentType = prev.ContentType
			c.Content = prev.Content
		}
		out[i] = c
	}
	return out
}

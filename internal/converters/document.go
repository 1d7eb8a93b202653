// Package converters moves report layouts in and out of portable template
// documents.
//
// A Document is the file form of a layout: the report's title and
// description plus every container's placement and content. Documents can be
// written as YAML or JSON, and read from YAML, JSON or hand-written HCL:
//
//	title = "Weekly situation"
//
//	container "header" {
//	  row    = 1
//	  column = 1
//	  width  = 12
//	  type   = "heading"
//	}
//
// Every decoded document is checked against the grid invariants before it
// is returned.
package converters

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/reportgrid/internal/grid"
	"github.com/thenoetrevino/reportgrid/internal/models"
)

// ErrInvalidDocument wraps every problem found while decoding a document
var ErrInvalidDocument = errors.New("invalid layout document")

// Document is the serialisable form of a report layout
type Document struct {
	Title       string         `json:"title,omitempty" yaml:"title,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Containers  []ContainerDoc `json:"containers" yaml:"containers"`
}

// ContainerDoc is one container in a Document
type ContainerDoc struct {
	ID      string             `json:"id" yaml:"id"`
	Row     int                `json:"row" yaml:"row"`
	Column  int                `json:"column" yaml:"column"`
	Width   int                `json:"width" yaml:"width"`
	Type    models.ContentType `json:"type,omitempty" yaml:"type,omitempty"`
	Content string             `json:"content,omitempty" yaml:"content,omitempty"`
}

// ToDocument captures a layout, containers in (row, column) order
func ToDocument(layout *models.Layout) Document {
	doc := Document{Containers: make([]ContainerDoc, 0, len(layout.Containers))}
	if layout.Report != nil {
		doc.Title = layout.Report.Title
		doc.Description = layout.Report.Description
	}

	containers := make(map[string]*models.Container, len(layout.Containers))
	for _, c := range layout.Containers {
		containers[c.ID] = c
	}
	for _, it := range grid.Sort(layout.Items()) {
		c := containers[it.ID]
		doc.Containers = append(doc.Containers, ContainerDoc{
			ID:      c.ID,
			Row:     c.Row,
			Column:  c.Column,
			Width:   c.Width,
			Type:    c.ContentType,
			Content: c.Content,
		})
	}
	return doc
}

// ToContainers converts the document's containers for reportID. A missing
// content type becomes text.
func (d Document) ToContainers(reportID int) []*models.Container {
	out := make([]*models.Container, len(d.Containers))
	for i, c := range d.Containers {
		ct := c.Type
		if ct == "" {
			ct = models.ContentText
		}
		out[i] = &models.Container{
			ID:          c.ID,
			ReportID:    reportID,
			Row:         c.Row,
			Column:      c.Column,
			Width:       c.Width,
			ContentType: ct,
			Content:     c.Content,
		}
	}
	return out
}

// Items returns the placement part of the document
func (d Document) Items() []grid.Item {
	items := make([]grid.Item, len(d.Containers))
	for i, c := range d.Containers {
		items[i] = grid.Item{ID: c.ID, Row: c.Row, Column: c.Column, Width: c.Width}
	}
	return items
}

// Validate checks the placement and content types
func (d Document) Validate() error {
	var errs []error
	if err := grid.Validate(d.Items()); err != nil {
		errs = append(errs, err)
	}
	for _, c := range d.Containers {
		if c.Type != "" && !c.Type.Valid() {
			errs = append(errs, fmt.Errorf("container %s: unknown content type %q", c.ID, c.Type))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}

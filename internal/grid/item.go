// Package grid implements the report layout engine.
//
// A layout is a flat list of items placed on a 12 unit wide grid. Items that
// share a Row form a horizontal band and are ordered left to right by Column.
// Every operation is a pure function over the list: the input is never
// mutated and the returned slice becomes the baseline for the next edit.
package grid

import (
	"cmp"
	"slices"
)

const (
	// TotalColumns is the number of grid units in a row.
	TotalColumns = 12

	// MinWidth is the narrowest width offered when resizing an item.
	MinWidth = 3

	// RowInsertWidth is the width of the item created by a row insertion.
	RowInsertWidth = 6
)

// Item is a single rectangle placed on the grid
type Item struct {
	ID     string `json:"id" yaml:"id"`
	Row    int    `json:"row" yaml:"row"`
	Column int    `json:"column" yaml:"column"`
	Width  int    `json:"width" yaml:"width"`
}

// OrderKey selects which field Reorder renumbers
type OrderKey int

const (
	ByColumn OrderKey = iota
	ByRow
)

// Sort returns a copy of items ordered by (row, column). Ties keep their
// input order.
func Sort(items []Item) []Item {
	out := clone(items)
	slices.SortStableFunc(out, compareItems)
	return out
}

func compareItems(a, b Item) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Column, b.Column)
}

// Find returns the item with the given id
func Find(items []Item, id string) (Item, bool) {
	i := Index(items, id)
	if i < 0 {
		return Item{}, false
	}
	return items[i], true
}

// Index returns the position of the item with the given id, or -1
func Index(items []Item, id string) int {
	return slices.IndexFunc(items, func(it Item) bool { return it.ID == id })
}

// RowItems returns the items of a row ordered by column
func RowItems(items []Item, row int) []Item {
	var out []Item
	for _, it := range items {
		if it.Row == row {
			out = append(out, it)
		}
	}
	slices.SortStableFunc(out, compareItems)
	return out
}

// RowSpan is the total width of the items in a row
func RowSpan(items []Item, row int) int {
	total := 0
	for _, it := range items {
		if it.Row == row {
			total += it.Width
		}
	}
	return total
}

// Rows returns the distinct row numbers in ascending order
func Rows(items []Item) []int {
	var rows []int
	for _, it := range items {
		if !slices.Contains(rows, it.Row) {
			rows = append(rows, it.Row)
		}
	}
	slices.Sort(rows)
	return rows
}

// CanInsert reports whether a row has room for another item. Callers must
// check it before InsertBefore or InsertAfter.
func CanInsert(items []Item, row int) bool {
	return RowSpan(items, row) < TotalColumns
}

func clone(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func span(row []Item) int {
	total := 0
	for _, it := range row {
		total += it.Width
	}
	return total
}

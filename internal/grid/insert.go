package grid

import (
	"fmt"
	"slices"
)

// First returns the layout of a report holding a single full width item.
func First(id string) []Item {
	return []Item{{ID: id, Row: 1, Column: 1, Width: TotalColumns}}
}

// InsertBefore places a new item immediately left of the target. The new
// item takes whatever width is left in the row; on a full row that is zero
// or less, so callers guard with CanInsert.
func InsertBefore(items []Item, targetID, newID string) ([]Item, error) {
	return insertBeside(items, targetID, newID, 0)
}

// InsertAfter places a new item immediately right of the target, with the
// same width rule as InsertBefore.
func InsertAfter(items []Item, targetID, newID string) ([]Item, error) {
	return insertBeside(items, targetID, newID, 1)
}

func insertBeside(items []Item, targetID, newID string, offset int) ([]Item, error) {
	target, ok := Find(items, targetID)
	if !ok {
		return items, fmt.Errorf("%w: %s", ErrItemNotFound, targetID)
	}

	row := RowItems(items, target.Row)
	pos := Index(row, target.ID)

	created := Item{
		ID:     newID,
		Row:    target.Row,
		Column: target.Column + offset,
		Width:  TotalColumns - span(row),
	}

	row = slices.Insert(row, pos+offset, created)
	row = Reorder(row, ByColumn)

	return replaceRow(items, target.Row, row), nil
}

// InsertRowAbove opens a new row at the given row number holding one half
// width item. The given row and every row below it shift down by one.
func InsertRowAbove(items []Item, row int, newID string) ([]Item, error) {
	if row < 1 {
		return items, ErrInvalidRow
	}
	return openRow(items, Item{ID: newID, Row: row, Column: 1, Width: RowInsertWidth}), nil
}

// InsertRowBelow opens a new row directly under the given row holding one
// half width item. Every row below the given one shifts down by one.
func InsertRowBelow(items []Item, row int, newID string) ([]Item, error) {
	if row < 1 {
		return items, ErrInvalidRow
	}
	return openRow(items, Item{ID: newID, Row: row + 1, Column: 1, Width: RowInsertWidth}), nil
}

func openRow(items []Item, created Item) []Item {
	out := make([]Item, 0, len(items)+1)
	for _, it := range items {
		if it.Row >= created.Row {
			it.Row++
		}
		out = append(out, it)
	}
	out = append(out, created)
	return Sort(out)
}

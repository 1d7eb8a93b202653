package grid

import (
	"fmt"
	"slices"
)

// Placement says on which side of a target a moved item lands
type Placement int

const (
	Before Placement = iota
	After
)

// Remove deletes the item with the given id. Rows and columns of the
// remaining items are left as they are, so a row can end up empty. An
// unknown id returns an unchanged copy.
func Remove(items []Item, id string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Resize sets the width of an item without checking the row capacity.
// Guard with WidthOptions.
func Resize(items []Item, id string, width int) ([]Item, error) {
	i := Index(items, id)
	if i < 0 {
		return items, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	out := clone(items)
	out[i].Width = width
	return out, nil
}

// Move detaches an item and splices it next to target, in target's row.
// Both the row it left and the row it joined are renumbered densely. Row
// capacity is not checked.
func Move(items []Item, id, targetID string, placement Placement) ([]Item, error) {
	if id == targetID {
		return items, ErrSelfMove
	}
	moving, ok := Find(items, id)
	if !ok {
		return items, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	target, ok := Find(items, targetID)
	if !ok {
		return items, fmt.Errorf("%w: %s", ErrItemNotFound, targetID)
	}

	rest := Remove(items, id)
	rest = replaceRow(rest, moving.Row, Reorder(RowItems(rest, moving.Row), ByColumn))

	dst := RowItems(rest, target.Row)
	pos := Index(dst, targetID)
	if placement == After {
		pos++
	}
	moving.Row = target.Row
	dst = slices.Insert(dst, pos, moving)

	return replaceRow(rest, target.Row, Reorder(dst, ByColumn)), nil
}

package tui

import "github.com/thenoetrevino/reportgrid/internal/grid"

// step returns the id delta positions away from cursor in reading order,
// or "" when that runs off either end
func step(items []grid.Item, cursor string, delta int) string {
	i := grid.Index(items, cursor)
	if i < 0 {
		return ""
	}
	j := i + delta
	if j < 0 || j >= len(items) {
		return ""
	}
	return items[j].ID
}

// rowJump moves the cursor to the nearest occupied row in direction dir
// (-1 up, +1 down), keeping the column where the new row allows it
func rowJump(items []grid.Item, cursor string, dir int) string {
	current, ok := grid.Find(items, cursor)
	if !ok {
		return ""
	}

	rows := grid.Rows(items)
	target := 0
	for _, r := range rows {
		if dir < 0 && r < current.Row {
			target = r
		}
		if dir > 0 && r > current.Row {
			target = r
			break
		}
	}
	if target == 0 {
		return ""
	}

	row := grid.RowItems(items, target)
	col := min(current.Column, len(row))
	return row[col-1].ID
}

// nextWidth picks the closest allowed width above (dir > 0) or below
// (dir < 0) the current one; ok is false when there is none
func nextWidth(options []int, current, dir int) (int, bool) {
	if dir > 0 {
		for _, w := range options {
			if w > current {
				return w, true
			}
		}
		return 0, false
	}
	for i := len(options) - 1; i >= 0; i-- {
		if options[i] < current {
			return options[i], true
		}
	}
	return 0, false
}

// moveTarget finds where a container lands when dragged one slot in
// direction dir. Crossing into another row places it at that row's edge.
func moveTarget(items []grid.Item, cursor string, dir int) (string, grid.Placement, bool) {
	current, ok := grid.Find(items, cursor)
	if !ok {
		return "", grid.Before, false
	}
	neighborID := step(items, cursor, dir)
	if neighborID == "" {
		return "", grid.Before, false
	}
	neighbor, _ := grid.Find(items, neighborID)

	sameRow := neighbor.Row == current.Row
	switch {
	case dir < 0 && sameRow, dir > 0 && !sameRow:
		return neighborID, grid.Before, true
	default:
		return neighborID, grid.After, true
	}
}

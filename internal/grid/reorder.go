package grid

// Reorder assigns key = i+1 to every item in input order. It does not sort:
// callers pass an already ordered sequence.
func Reorder(items []Item, key OrderKey) []Item {
	out := clone(items)
	for i := range out {
		switch key {
		case ByRow:
			out[i].Row = i + 1
		default:
			out[i].Column = i + 1
		}
	}
	return out
}

// replaceRow swaps every item of row for replacement and returns the full
// list sorted by (row, column).
func replaceRow(items []Item, row int, replacement []Item) []Item {
	out := make([]Item, 0, len(items)+1)
	for _, it := range items {
		if it.Row != row {
			out = append(out, it)
		}
	}
	out = append(out, replacement...)
	return Sort(out)
}

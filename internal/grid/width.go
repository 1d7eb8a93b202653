package grid

import "fmt"

// MaxWidth is the widest the target could be if the rest of its row stayed
// as it is.
func MaxWidth(items []Item, targetID string) (int, error) {
	target, ok := Find(items, targetID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrItemNotFound, targetID)
	}
	return TotalColumns - (RowSpan(items, target.Row) - target.Width), nil
}

// WidthOptions lists the widths a user may pick for the target: MinWidth up
// to two units short of MaxWidth, so a resize never leaves a sliver too
// narrow to hold another item. The list is empty when nothing fits.
func WidthOptions(items []Item, targetID string) ([]int, error) {
	maxWidth, err := MaxWidth(items, targetID)
	if err != nil {
		return nil, err
	}

	upper := maxWidth - 2
	if upper < MinWidth {
		return []int{}, nil
	}

	options := make([]int, 0, upper-MinWidth+1)
	for w := MinWidth; w <= upper; w++ {
		options = append(options, w)
	}
	return options, nil
}

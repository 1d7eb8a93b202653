package grid

import (
	"errors"
	"fmt"
)

// Validate checks a layout against the grid invariants and returns every
// violation joined into one error, or nil.
func Validate(items []Item) error {
	var errs []error

	ids := make(map[string]bool, len(items))
	cells := make(map[[2]int]string, len(items))

	for _, it := range items {
		if it.ID == "" {
			errs = append(errs, fmt.Errorf("%w (row %d, column %d)", ErrEmptyID, it.Row, it.Column))
		} else if ids[it.ID] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateID, it.ID))
		}
		ids[it.ID] = true

		if it.Row < 1 {
			errs = append(errs, fmt.Errorf("%w: item %s has row %d", ErrInvalidRow, it.ID, it.Row))
		}
		if it.Column < 1 {
			errs = append(errs, fmt.Errorf("%w: item %s has column %d", ErrInvalidColumn, it.ID, it.Column))
		}
		if it.Width < 1 || it.Width > TotalColumns {
			errs = append(errs, fmt.Errorf("%w: item %s has width %d", ErrInvalidWidth, it.ID, it.Width))
		}

		cell := [2]int{it.Row, it.Column}
		if other, ok := cells[cell]; ok {
			errs = append(errs, fmt.Errorf("%w: %s and %s at row %d column %d",
				ErrCellOccupied, other, it.ID, it.Row, it.Column))
		} else {
			cells[cell] = it.ID
		}
	}

	for _, row := range Rows(items) {
		if total := RowSpan(items, row); total > TotalColumns {
			errs = append(errs, fmt.Errorf("%w: row %d spans %d", ErrRowOverflow, row, total))
		}
	}

	return errors.Join(errs...)
}

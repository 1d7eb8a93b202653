package grid

import "errors"

var (
	ErrItemNotFound = errors.New("grid item not found")
	ErrInvalidRow   = errors.New("row must be greater than 0")
	ErrSelfMove     = errors.New("cannot move an item relative to itself")

	// Validation errors
	ErrEmptyID       = errors.New("item id cannot be empty")
	ErrDuplicateID   = errors.New("duplicate item id")
	ErrInvalidColumn = errors.New("column must be greater than 0")
	ErrInvalidWidth  = errors.New("width out of range")
	ErrCellOccupied  = errors.New("row and column already occupied")
	ErrRowOverflow   = errors.New("row exceeds total column span")
)

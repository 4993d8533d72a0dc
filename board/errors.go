package board

import "errors"

var (
	// ErrNegativeDimension indicates a negative column or row count.
	ErrNegativeDimension = errors.New("board: columns and rows must be non-negative")
	// ErrTooLarge indicates a cell count that overflows int.
	ErrTooLarge = errors.New("board: columns × rows overflows the cell count")
)

package bishop

import (
	"errors"

	"github.com/katalvlaran/bishopart/board"
)

// Sentinel errors for Config validation.
var (
	// ErrNegativeDimension indicates a negative row or column count.
	ErrNegativeDimension = board.ErrNegativeDimension
	// ErrBoardTooLarge indicates Rows × Columns overflows int.
	ErrBoardTooLarge = board.ErrTooLarge
	// ErrNegativeSteps indicates a negative step limit.
	ErrNegativeSteps = errors.New("bishop: steps must be non-negative")
	// ErrEmptyPalette indicates an explicitly empty symbol palette.
	ErrEmptyPalette = errors.New("bishop: symbol palette must not be empty")
	// ErrHomeOutOfRange indicates a starting index outside the board.
	ErrHomeOutOfRange = errors.New("bishop: home index out of range")
)

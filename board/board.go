package board

import (
	"math"

	"github.com/katalvlaran/bishopart/step"
)

// New constructs a Board. Zero dimensions are allowed and produce an empty board.
// Returns ErrNegativeDimension if columns or rows is negative and
// ErrTooLarge if columns×rows does not fit in an int.
func New(columns, rows int) (*Board, error) {
	if columns < 0 || rows < 0 {
		return nil, ErrNegativeDimension
	}
	if columns > 0 && rows > math.MaxInt/columns {
		return nil, ErrTooLarge
	}

	return &Board{Columns: columns, Rows: rows}, nil
}

// Cells returns the number of cells on the board.
func (b Board) Cells() int {
	return b.Columns * b.Rows
}

// Center returns the index of the middle cell, (cells-1)/2, or 0 for an empty board.
// On even-sized boards this rounds toward the top-left.
func (b Board) Center() int {
	if b.Cells() == 0 {
		return 0
	}

	return (b.Cells() - 1) / 2
}

// InBounds reports whether (x,y) lies within the board.
// Complexity: O(1).
func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Columns && y >= 0 && y < b.Rows
}

// Contains reports whether idx addresses a cell of the board.
func (b Board) Contains(idx int) bool {
	return idx >= 0 && idx < b.Cells()
}

// Index maps (x,y) to a row-major index: y*Columns + x.
// Complexity: O(1).
func (b Board) Index(x, y int) int {
	return y*b.Columns + x
}

// Coordinate converts a row-major index back to (x,y).
// Must not be called on a board with zero columns.
// Complexity: O(1).
func (b Board) Coordinate(idx int) (x, y int) {
	return idx % b.Columns, idx / b.Columns
}

// Clamp saturates x to [0, Columns-1] and y to [0, Rows-1], each axis on its own.
func (b Board) Clamp(x, y int) (int, int) {
	return clamp(x, b.Columns-1), clamp(y, b.Rows-1)
}

// Move applies d to the cell at idx and returns the resulting index.
// An axis that would leave the board stays on its edge while the other
// axis still moves.
// Complexity: O(1).
func (b Board) Move(idx int, d step.Direction) int {
	x, y := b.Coordinate(idx)
	dx, dy := d.Delta()
	x, y = b.Clamp(x+dx, y+dy)

	return b.Index(x, y)
}

// clamp saturates v to [0, hi].
func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}

	return v
}

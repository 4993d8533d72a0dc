// Package bishop walks a drunken bishop across a board and renders the
// visit counts as ASCII fingerprint art.
//
// What:
//
//   - Config describes one rendering request: the data, board size, step
//     limit, starting cell, symbol palette and cycling policy.
//   - Walk decodes the data into moves (package step) and applies them on a
//     board (package board), recording the cell reached after every move.
//   - Render maps each cell to a symbol: 'S' for the start, 'E' for the end,
//     and palette[n] for a cell visited n times.
//   - Frame draws a +---+ / |...| border around the rendered cells.
//
// Pipeline:
//
//	bytes ─► step.Decode ─► Walk ─► Counts ─► Render ─► Frame
//
// Output for DefaultConfig with Data "hello world":
//
//	+-----------------+
//	|                 |
//	|       o         |
//	|      . X . E    |
//	|       0 + =     |
//	|      o S + *    |
//	|     .   . =     |
//	|                 |
//	|                 |
//	|                 |
//	+-----------------+
//
// Complexity:
//
//   - Walk:   O(steps) time, O(steps) memory.
//   - Render: O(steps + rows·columns) time, O(rows·columns) memory.
//
// Errors:
//
//   - ErrNegativeDimension: rows or columns is negative.
//   - ErrBoardTooLarge: rows × columns overflows int.
//   - ErrNegativeSteps: Steps is negative.
//   - ErrEmptyPalette: Symbols is non-nil but empty.
//   - ErrHomeOutOfRange: Home does not address a cell of the board.
//
// Everything here is synchronous and free of shared state; independent
// configurations may be rendered in parallel.
package bishop

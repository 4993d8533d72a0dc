// Package board models the rectangular grid a drunken bishop walks on.
//
// What:
//
//   - Board holds Columns × Rows cells addressed in row-major order.
//   - Index / Coordinate convert between (x,y) and flat indices.
//   - Clamp and Move keep every position inside the grid by saturating
//     each axis independently, so a bishop pushed into a wall slides along it.
//
// Degenerate boards (zero columns or zero rows) are valid: they have no
// cells, and Move on them is never called by the walker.
//
// Complexity:
//
//   - All operations: O(1) time and memory.
//
// Errors:
//
//   - ErrNegativeDimension: columns or rows is negative.
//   - ErrTooLarge: columns × rows overflows int.
package board

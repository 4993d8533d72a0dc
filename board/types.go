package board

// Board is an immutable Columns × Rows grid. Cell (x,y) lives at index y*Columns + x.
// It is a small value; methods take it by value.
type Board struct {
	Columns, Rows int
}

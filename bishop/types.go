package bishop

// Standard board geometry and walk length, as used for SSH key fingerprints.
const (
	DefaultColumns = 17
	DefaultRows    = 9
	DefaultSteps   = 64
)

// DefaultSymbols is the palette ramp from unvisited (space) to densest.
const DefaultSymbols = " .o+=*B0X@%&#/^"

// Markers for the first and last cell of the walk.
const (
	StartMarker = 'S'
	EndMarker   = 'E'
)

// Frame characters.
const (
	frameCorner = '+'
	frameEdge   = '-'
	frameSide   = '|'
)

// Config is the immutable input to a single walk.
// Use DefaultConfig() and override fields as needed.
type Config struct {
	// Data is digested into moves, four per byte.
	Data []byte

	// Rows and Columns size the board. Either may be zero.
	Rows, Columns int

	// Steps caps the number of moves; 0 means four per byte of Data.
	// A cap larger than the available moves is not padded.
	Steps int

	// Home is the starting index; nil selects the board centre.
	Home *int

	// Symbols is the palette indexed by visit count; nil selects DefaultSymbols.
	Symbols []rune

	// Cycle wraps counts beyond the palette (n mod len) instead of
	// saturating at the last symbol.
	Cycle bool
}

// Result is the outcome of a walk.
type Result struct {
	// Visited holds the index reached after each move, in order.
	Visited []int
	// Start is the index the walk began on.
	Start int
	// Current is the index the walk ended on; equal to Start when no move was made.
	Current int
}

// Moved reports whether the walk made at least one move.
func (r Result) Moved() bool {
	return len(r.Visited) > 0
}

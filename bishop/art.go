package bishop

import (
	"strings"

	"github.com/katalvlaran/bishopart/board"
)

// Art is a validated configuration together with its walk and rendered
// cells. It is read-only after New and safe for concurrent use.
type Art struct {
	cfg   Config
	board *board.Board
	res   Result
	cells []rune
}

// New validates cfg, walks it once and renders the cells.
func New(cfg Config) (*Art, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b, _ := board.New(cfg.Columns, cfg.Rows)
	res := walk(cfg, b)

	return &Art{
		cfg:   cfg,
		board: b,
		res:   res,
		cells: Render(cfg, res),
	}, nil
}

// Config returns the configuration the art was built from.
func (a *Art) Config() Config { return a.cfg }

// Board returns the board geometry.
func (a *Art) Board() board.Board { return *a.board }

// Result returns the walk.
func (a *Art) Result() Result { return a.res }

// Counts returns a fresh visit-count table of the walk.
func (a *Art) Counts() map[int]int { return a.res.Counts() }

// Cells returns a copy of the unframed row-major cells.
func (a *Art) Cells() []rune {
	out := make([]rune, len(a.cells))
	copy(out, a.cells)

	return out
}

// Lines returns the framed art split into lines: Rows+2 of them, or just
// the two borders when Columns is zero.
func (a *Art) Lines() []string {
	return strings.Split(a.String(), "\n")
}

// String returns the framed art.
func (a *Art) String() string {
	return Frame(a.cells, a.cfg.Columns)
}

// Draw is a shorthand for New(cfg) followed by String.
func Draw(cfg Config) (string, error) {
	a, err := New(cfg)
	if err != nil {
		return "", err
	}

	return a.String(), nil
}

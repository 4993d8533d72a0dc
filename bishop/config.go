package bishop

import "github.com/katalvlaran/bishopart/board"

// DefaultConfig returns a Config with the standard 17×9 board, a 64-step
// limit, the centre as home, DefaultSymbols and saturating counts.
func DefaultConfig() Config {
	return Config{
		Rows:    DefaultRows,
		Columns: DefaultColumns,
		Steps:   DefaultSteps,
	}
}

// WithHome returns a copy of c starting at idx.
func (c Config) WithHome(idx int) Config {
	c.Home = &idx
	return c
}

// Validate reports the first problem that would make c unrenderable.
// An out-of-range Home is rejected rather than clamped.
func (c Config) Validate() error {
	b, err := board.New(c.Columns, c.Rows)
	if err != nil {
		return err
	}
	if c.Steps < 0 {
		return ErrNegativeSteps
	}
	if c.Symbols != nil && len(c.Symbols) == 0 {
		return ErrEmptyPalette
	}
	if c.Home != nil && b.Cells() > 0 && !b.Contains(*c.Home) {
		return ErrHomeOutOfRange
	}

	return nil
}

// palette returns the effective symbol palette.
func (c Config) palette() []rune {
	if c.Symbols == nil {
		return []rune(DefaultSymbols)
	}

	return c.Symbols
}

// home returns the effective starting index on b.
func (c Config) home(b *board.Board) int {
	if c.Home != nil {
		return *c.Home
	}

	return b.Center()
}

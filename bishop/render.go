package bishop

import "strings"

// Render maps every cell of the board, in row-major order, to a symbol.
// The returned slice always holds exactly Rows×Columns runes.
//
// Precedence per cell i:
//  1. i == res.Current and the walk moved: EndMarker.
//  2. i == res.Start: StartMarker.
//  3. otherwise the palette symbol for the visit count n:
//     palette[n] when n < len, palette[n mod len] when cycling,
//     else the last symbol.
//
// cfg must be valid (see Config.Validate) and res must come from Walk(cfg).
// Complexity: O(steps + rows·columns).
func Render(cfg Config, res Result) []rune {
	if cfg.Rows <= 0 || cfg.Columns <= 0 {
		return []rune{}
	}
	cells := cfg.Rows * cfg.Columns

	palette := cfg.palette()
	counts := res.Counts()
	out := make([]rune, cells)
	for i := range out {
		switch {
		case res.Moved() && i == res.Current:
			out[i] = EndMarker
		case i == res.Start:
			out[i] = StartMarker
		default:
			out[i] = symbol(palette, counts[i], cfg.Cycle)
		}
	}

	return out
}

// symbol picks the palette entry for a visit count of n.
func symbol(palette []rune, n int, cycle bool) rune {
	switch {
	case n < len(palette):
		return palette[n]
	case cycle:
		return palette[n%len(palette)]
	default:
		return palette[len(palette)-1]
	}
}

// Frame draws a border around cells laid out width runes per row:
//
//	+-----+
//	|cells|
//	+-----+
//
// Lines are joined with '\n' and there is no trailing newline. A width of
// zero or less yields only the two empty borders. A short final row is
// framed as is.
func Frame(cells []rune, width int) string {
	width = max(width, 0)

	var sb strings.Builder
	border := string(frameCorner) + strings.Repeat(string(frameEdge), width) + string(frameCorner)

	sb.WriteString(border)
	sb.WriteByte('\n')
	if width > 0 {
		for start := 0; start < len(cells); start += width {
			end := min(start+width, len(cells))
			sb.WriteRune(frameSide)
			sb.WriteString(string(cells[start:end]))
			sb.WriteRune(frameSide)
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(border)

	return sb.String()
}

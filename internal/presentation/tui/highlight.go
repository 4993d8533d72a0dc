package tui

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/bishopart/bishop"
)

// Marker colours.
const (
	startColor = "#818cf8"
	endColor   = "#f472b6"
)

// Highlight returns the framed art of a with its start and end cells
// coloured. Cells are picked by position, so palette symbols that happen
// to be 'S' or 'E' stay plain. With the Ascii profile the framed art is
// returned as is.
func Highlight(a *bishop.Art, p termenv.Profile) string {
	lines := a.Lines()
	if p == termenv.Ascii {
		return strings.Join(lines, "\n")
	}

	res := a.Result()
	start, end := res.Start, -1
	if res.Moved() {
		end = res.Current
	}
	startStyle := p.String().Foreground(p.Color(startColor)).Bold()
	endStyle := p.String().Foreground(p.Color(endColor)).Bold()

	columns := a.Config().Columns
	for row := 1; row < len(lines)-1; row++ {
		var sb strings.Builder
		for col, r := range []rune(lines[row]) {
			idx := (row-1)*columns + col - 1
			inside := col > 0 && col <= columns
			switch {
			case inside && idx == end:
				sb.WriteString(endStyle.Styled(string(r)))
			case inside && idx == start:
				sb.WriteString(startStyle.Styled(string(r)))
			default:
				sb.WriteRune(r)
			}
		}
		lines[row] = sb.String()
	}

	return strings.Join(lines, "\n")
}

package step

// Direction is one diagonal move of the bishop.
type Direction uint8

const (
	// NorthWest moves up and left (bits 00).
	NorthWest Direction = iota
	// NorthEast moves up and right (bits 01).
	NorthEast
	// SouthWest moves down and left (bits 10).
	SouthWest
	// SouthEast moves down and right (bits 11).
	SouthEast
)

// StepsPerByte is the number of directions packed into one input byte.
const StepsPerByte = 4

// bitsPerStep is the width of one direction inside a byte.
const bitsPerStep = 2

// stepMask selects the two low bits of a byte.
const stepMask = 0b11

// FromBits maps the two least significant bits of b to a Direction.
// Higher bits are ignored, so FromBits(0b110) == SouthWest.
func FromBits(b byte) Direction {
	return Direction(b & stepMask)
}

// Delta returns the column and row offsets of d.
// West moves have dx = -1, east moves dx = +1; north moves dy = -1, south dy = +1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case NorthWest:
		return -1, -1
	case NorthEast:
		return 1, -1
	case SouthWest:
		return -1, 1
	default:
		return 1, 1
	}
}

// String returns the compass abbreviation of d.
func (d Direction) String() string {
	switch d {
	case NorthWest:
		return "NW"
	case NorthEast:
		return "NE"
	case SouthWest:
		return "SW"
	case SouthEast:
		return "SE"
	default:
		return "invalid"
	}
}

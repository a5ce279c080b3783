package core

// Cell is the content of one grid position.
type Cell uint8

// Cell symbols. The zero value is an empty cell.
const (
	CellEmpty Cell = iota
	CellWall
	CellPlayer
)

// Rune returns the character used to draw the cell in a terminal.
// Walls and the player share the same glyph.
func (c Cell) Rune() rune {
	switch c {
	case CellWall, CellPlayer:
		return 'X'
	default:
		return ' '
	}
}

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellWall:
		return "Wall"
	case CellPlayer:
		return "Player"
	default:
		return "Unknown"
	}
}

package flappy

import "github.com/vovakirdan/cli-flappy/internal/core"

// CellReader is the read side of a grid.
type CellReader interface {
	Get(row, col int) core.Cell
}

// Collides reports whether the cell under the player holds something other
// than empty space or the player's own stamp.
func Collides(cells CellReader, p PlayerState) bool {
	c := cells.Get(p.Row(), p.X)
	return c != core.CellEmpty && c != core.CellPlayer
}

// DetectCollision kills the player when Collides holds. Dead players are
// left untouched and the grid is not consulted.
func DetectCollision(st GameState, cells CellReader) GameState {
	if !st.Player.Alive {
		return st
	}
	if Collides(cells, st.Player) {
		st.Player.Alive = false
	}
	return st
}

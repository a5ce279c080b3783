package flappy

import "github.com/vovakirdan/cli-flappy/internal/core"

// FrameBuffer owns the session grid and the scroll / stamp / erase cycle.
// Between Erase and the next Stamp no cell holds the player glyph.
type FrameBuffer struct {
	grid *core.Grid

	stamped  bool
	row, col int
	under    core.Cell // Cell overwritten by the last stamp
}

// NewFrameBuffer creates an empty buffer of the given size.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{grid: core.NewGrid(width, height)}
}

// Grid returns the underlying grid.
func (fb *FrameBuffer) Grid() *core.Grid {
	return fb.grid
}

// Height returns the grid height.
func (fb *FrameBuffer) Height() int {
	return fb.grid.Height()
}

// Scroll rotates the grid one column to the left. The rightmost column then
// holds stale data until the obstacle generator redraws it.
func (fb *FrameBuffer) Scroll() {
	fb.grid.RotateLeft()
}

// Stamp draws the player glyph at the player's cell. Positions outside the
// grid are not drawn.
func (fb *FrameBuffer) Stamp(p PlayerState) {
	row, col := p.Row(), p.X
	if !fb.grid.InBounds(row, col) {
		fb.stamped = false
		return
	}
	fb.stamped = true
	fb.row, fb.col = row, col
	fb.under = fb.grid.Get(row, col)
	fb.grid.Set(row, col, core.CellPlayer)
}

// Erase removes the last stamp, restoring whatever it covered.
func (fb *FrameBuffer) Erase() {
	if !fb.stamped {
		return
	}
	fb.grid.Set(fb.row, fb.col, fb.under)
	fb.stamped = false
}

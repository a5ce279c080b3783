package core

import "fmt"

// Header is the status line drawn above the grid.
type Header struct {
	Score int
	Tick  int
	X     int
	Y     float64
}

// String formats the header as "Score: N, Time: T, Pos X Y".
func (h Header) String() string {
	return fmt.Sprintf("Score: %d, Time: %d, Pos %d %.1f", h.Score, h.Tick, h.X, h.Y)
}

// Surface receives rendered frames. Implementations must copy what they
// need: the grid keeps changing after Draw returns.
type Surface interface {
	Draw(h Header, g *Grid)
}

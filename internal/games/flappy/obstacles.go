package flappy

import (
	"math/rand"

	"github.com/vovakirdan/cli-flappy/internal/core"
)

// Obstacles decides the content of the rightmost grid column each tick.
type Obstacles struct {
	rng *rand.Rand
}

// NewObstacles creates an obstacle generator with the given RNG seed.
func NewObstacles(seed int64) *Obstacles {
	return &Obstacles{rng: rand.New(rand.NewSource(seed))}
}

// Update advances the obstacle phase for st.Tick and redraws the rightmost
// column of g.
//
// At every period boundary the gap toggles: a set gap is cleared (the next
// period stays open) and a cleared gap is re-rolled in [1, height/2]. Each
// boundary is worth one point. Within a period the first ObstacleSpacing+1
// ticks leave the column empty and the remaining ticks draw a wall with the
// opening at [GapHeight, GapHeight+GapSize), clipped at the bottom edge.
func (o *Obstacles) Update(st GameState, g *core.Grid) GameState {
	phase := st.Tick % st.Period()

	if phase == 0 {
		if st.GapHeight != 0 {
			st.GapHeight = 0
		} else {
			st.GapHeight = o.rollGap(g.Height())
		}
		st.Score++
	}

	col := g.Width() - 1
	if phase <= st.ObstacleSpacing || st.GapHeight == 0 {
		g.FillColumn(col, 0, g.Height(), core.CellEmpty)
		return st
	}

	openEnd := st.GapHeight + st.GapSize
	g.FillColumn(col, 0, st.GapHeight, core.CellWall)
	g.FillColumn(col, st.GapHeight, openEnd, core.CellEmpty)
	g.FillColumn(col, openEnd, g.Height(), core.CellWall)
	return st
}

// rollGap draws a gap height uniformly from [1, height/2].
func (o *Obstacles) rollGap(height int) int {
	maxGap := height / 2
	if maxGap < 1 {
		return 0 // No room for a wall; the period stays open
	}
	return 1 + o.rng.Intn(maxGap)
}

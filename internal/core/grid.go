// Package core provides the building blocks shared by the game and the
// terminal platform: the character grid, input sampling and runtime settings.
// It has no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"strings"
)

// Grid is a 2D cell buffer backing one rendered frame.
// Rows are indexed top to bottom, columns left to right.
// Dimensions are fixed for the lifetime of the grid.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  max(width, 0),
		height: max(height, 0),
	}
	g.cells = make([][]Cell, g.height)
	for row := range g.cells {
		g.cells[row] = make([]Cell, g.width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the cell at (row, col).
// Returns CellEmpty for out-of-bounds coordinates.
func (g *Grid) Get(row, col int) Cell {
	if !g.InBounds(row, col) {
		return CellEmpty
	}
	return g.cells[row][col]
}

// Set places a cell at (row, col).
// Out-of-bounds coordinates are silently ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row][col] = c
}

// RotateLeft shifts every row one column to the left. Column 0 wraps around
// to the rightmost column, everything else keeps its content.
func (g *Grid) RotateLeft() {
	if g.width < 2 {
		return
	}
	for row := range g.cells {
		r := g.cells[row]
		first := r[0]
		copy(r, r[1:])
		r[g.width-1] = first
	}
}

// FillColumn sets rows [from, to) of column col to c, clipped to the grid.
func (g *Grid) FillColumn(col, from, to int, c Cell) {
	if col < 0 || col >= g.width {
		return
	}
	from = max(from, 0)
	to = min(to, g.height)
	for row := from; row < to; row++ {
		g.cells[row][col] = c
	}
}

// String renders the grid as text, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height) // Pre-allocate for efficiency

	for row := 0; row < g.height; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for _, c := range g.cells[row] {
			sb.WriteRune(c.Rune())
		}
	}
	return sb.String()
}

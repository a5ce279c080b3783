package core

import "testing"

func TestNewGrid(t *testing.T) {
	g := NewGrid(80, 22)

	if g.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", g.Width())
	}
	if g.Height() != 22 {
		t.Errorf("Height() = %d, expected 22", g.Height())
	}

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.Get(row, col) != CellEmpty {
				t.Fatalf("New grid should be empty, got %v at (%d, %d)", g.Get(row, col), row, col)
			}
		}
	}
}

func TestNewGridNegativeSize(t *testing.T) {
	g := NewGrid(-3, -1)
	if g.Width() != 0 || g.Height() != 0 {
		t.Errorf("Negative dimensions should clamp to 0, got %dx%d", g.Width(), g.Height())
	}
	if g.String() != "" {
		t.Errorf("Empty grid should render as empty string, got %q", g.String())
	}
}

func TestGridSetGet(t *testing.T) {
	g := NewGrid(10, 10)

	g.Set(5, 3, CellWall)
	if g.Get(5, 3) != CellWall {
		t.Errorf("Get(5, 3) = %v, expected Wall", g.Get(5, 3))
	}

	// Out of bounds should be silent
	g.Set(-1, 0, CellWall)
	g.Set(100, 0, CellWall)
	g.Set(0, -1, CellWall)
	g.Set(0, 100, CellWall)

	if g.Get(-1, 0) != CellEmpty {
		t.Error("Out of bounds Get should return Empty")
	}
	if g.Get(0, 100) != CellEmpty {
		t.Error("Out of bounds Get should return Empty")
	}
}

func TestGridRotateLeft(t *testing.T) {
	g := NewGrid(6, 4)
	// Diagonal-ish pattern so every column differs
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if (row+col)%3 == 0 {
				g.Set(row, col, CellWall)
			}
		}
	}
	before := snapshot(g)

	g.RotateLeft()

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width()-1; col++ {
			if g.Get(row, col) != before.Get(row, col+1) {
				t.Errorf("After rotate (%d, %d) = %v, expected %v", row, col, g.Get(row, col), before.Get(row, col+1))
			}
		}
		// Column 0 wraps to the right edge
		if g.Get(row, g.Width()-1) != before.Get(row, 0) {
			t.Errorf("Row %d: rightmost = %v, expected wrapped %v", row, g.Get(row, g.Width()-1), before.Get(row, 0))
		}
	}
}

func TestGridRotateLeftNarrow(t *testing.T) {
	g := NewGrid(1, 2)
	g.Set(0, 0, CellWall)
	g.RotateLeft()
	if g.Get(0, 0) != CellWall {
		t.Error("Rotating a single column grid should be a no-op")
	}
}

func TestGridFillColumnClips(t *testing.T) {
	g := NewGrid(4, 5)

	g.FillColumn(3, -2, 2, CellWall)
	g.FillColumn(3, 4, 50, CellWall)
	g.FillColumn(9, 0, 5, CellWall) // Should not panic

	want := []Cell{CellWall, CellWall, CellEmpty, CellEmpty, CellWall}
	for row := range want {
		if got := g.Get(row, 3); got != want[row] {
			t.Errorf("(%d, 3) = %v, expected %v", row, got, want[row])
		}
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, CellWall)
	g.Set(1, 2, CellPlayer)

	expected := "X  \n  X"
	if g.String() != expected {
		t.Errorf("String() = %q, expected %q", g.String(), expected)
	}
}

// snapshot copies g cell by cell.
func snapshot(g *Grid) *Grid {
	c := NewGrid(g.Width(), g.Height())
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			c.Set(row, col, g.Get(row, col))
		}
	}
	return c
}

package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cli-flappy/internal/core"
)

func TestRenderFrame(t *testing.T) {
	g := core.NewGrid(6, 3)
	g.FillColumn(5, 0, 3, core.CellWall)
	g.Set(1, 2, core.CellPlayer)

	h := core.Header{Score: 3, Tick: 120, X: 2, Y: 1.5}
	lines := strings.Split(RenderFrame(h, g), "\n")

	if len(lines) != 1+g.Height() {
		t.Fatalf("got %d lines, want %d", len(lines), 1+g.Height())
	}
	if !strings.Contains(lines[0], "Score: 3, Time: 120, Pos 2 1.5") {
		t.Errorf("header = %q", lines[0])
	}

	for row := 0; row < g.Height(); row++ {
		line := lines[row+1]
		if !strings.Contains(line, "X") {
			t.Errorf("row %d should contain the wall, got %q", row, line)
		}
	}
	if strings.Count(lines[2], "X") != 2 {
		t.Errorf("row 1 should hold the player and the wall, got %q", lines[2])
	}
}

func TestFrameSinkKeepsLastFrame(t *testing.T) {
	var sink frameSink
	g := core.NewGrid(4, 2)

	sink.Draw(core.Header{Tick: 1}, g)
	first := sink.frame
	sink.Draw(core.Header{Tick: 2}, g)

	if sink.frame == first {
		t.Error("second draw should replace the frame")
	}
	if !strings.Contains(sink.frame, "Time: 2") {
		t.Errorf("frame = %q", sink.frame)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"abcdef", 4, "abcdef"},
		{"", 0, ""},
	}

	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

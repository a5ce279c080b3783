package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cli-flappy/internal/core"
)

// cellStyles maps grid cells to lipgloss styles.
var cellStyles = map[core.Cell]lipgloss.Style{
	core.CellEmpty:  lipgloss.NewStyle(),
	core.CellWall:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.CellPlayer: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// RenderFrame draws the header line followed by the grid, one line per row.
// Adjacent cells of the same kind are styled as one run to keep the number of
// ANSI escape sequences down.
func RenderFrame(h core.Header, g *core.Grid) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(g.Width()*g.Height()*2 + g.Height() + 64)

	sb.WriteString(headerStyle.Render(h.String()))

	for row := 0; row < g.Height(); row++ {
		sb.WriteRune('\n')

		col := 0
		for col < g.Width() {
			kind := g.Get(row, col)

			// Collect consecutive cells of the same kind
			var run strings.Builder
			for col < g.Width() && g.Get(row, col) == kind {
				run.WriteRune(kind.Rune())
				col++
			}

			sb.WriteString(cellStyles[kind].Render(run.String()))
		}
	}
	return sb.String()
}

// frameSink is the Surface the game model draws into. It keeps the last
// rendered frame as text for View.
type frameSink struct {
	frame string
}

// Draw implements core.Surface.
func (f *frameSink) Draw(h core.Header, g *core.Grid) {
	f.frame = RenderFrame(h, g)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cli-flappy/internal/games/flappy"
)

var (
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	newBestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// RenderSummary formats the text printed after a game ends.
func RenderSummary(score, highscore int, newBest bool) string {
	var b strings.Builder

	b.WriteString(gameOverStyle.Render("Game Over!"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Score: %d\n", score)
	fmt.Fprintf(&b, "Highscore: %d", highscore)
	if newBest {
		b.WriteString(" ")
		b.WriteString(newBestStyle.Render("(new best!)"))
	}
	b.WriteString("\n\n")

	for _, line := range flappy.Verdict(score) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

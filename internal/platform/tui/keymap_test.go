package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cli-flappy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapToken(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"space flaps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyFlap},
		{"w", runeKey('w'), core.KeyUp},
		{"upper W", runeKey('W'), core.KeyUp},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"a", runeKey('a'), core.KeyLeft},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"s", runeKey('s'), core.KeyDown},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{"d", runeKey('d'), core.KeyRight},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"unmapped", runeKey('x'), core.KeyNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Token(tt.msg); got != tt.want {
				t.Errorf("Token(%q) = %q, want %q", tt.msg.String(), got, tt.want)
			}
		})
	}
}

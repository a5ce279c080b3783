// Package storage persists scores: the single best score as plain text, and
// an optional SQLite history of finished runs.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Highscores reads and updates the best score ever seen.
type Highscores interface {
	// Highscore returns the stored best score, 0 if none.
	Highscore() (int, error)

	// Submit stores score if it beats the stored best and returns the
	// resulting best.
	Submit(score int) (int, error)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], string(filepath.Separator))), nil
}

// DefaultDir returns the per-user cache directory, ~/.cache/cli_flappy.
func DefaultDir() (string, error) {
	return ExpandHome(filepath.Join("~", ".cache", "cli_flappy"))
}

// MemoryStore keeps the highscore for the life of the process only. It
// stands in when the highscore file cannot be located.
type MemoryStore struct {
	best int
}

// Highscore implements Highscores.
func (m *MemoryStore) Highscore() (int, error) {
	return m.best, nil
}

// Submit implements Highscores.
func (m *MemoryStore) Submit(score int) (int, error) {
	m.best = max(m.best, score)
	return m.best, nil
}

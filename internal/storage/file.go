package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HighscoreFile is the name of the highscore file inside the store directory.
const HighscoreFile = "highscore.txt"

// FileStore keeps the highscore as a decimal number in a text file.
type FileStore struct {
	path string
}

// NewFileStore returns a store for dir/highscore.txt. An empty dir selects
// DefaultDir. The directory is created on the first write.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	dir, err := ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, HighscoreFile)}, nil
}

// Path returns the highscore file location.
func (f *FileStore) Path() string {
	return f.path
}

// Highscore returns the stored value. A missing or unparsable file reads as 0.
func (f *FileStore) Highscore() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	n, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return 0, nil
	}
	return int(n), nil
}

// Submit writes score only when it is strictly greater than the stored value.
// The best score is returned even when the write fails.
func (f *FileStore) Submit(score int) (int, error) {
	best, err := f.Highscore()
	if err != nil {
		return max(best, score), err
	}
	if score <= best {
		return best, nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return score, fmt.Errorf("storage: cannot create directory %s: %w", filepath.Dir(f.path), err)
	}
	if err := writeFileAtomic(f.path, []byte(strconv.Itoa(score))); err != nil {
		return score, err
	}
	return score, nil
}

// writeFileAtomic replaces path via a temp file in the same directory so a
// crash never leaves a truncated highscore behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write highscore: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write highscore: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", path, err)
	}
	return nil
}

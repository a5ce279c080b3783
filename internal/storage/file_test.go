package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFileIsZero(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "cli_flappy"))
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}

	high, err := store.Highscore()
	if err != nil {
		t.Fatalf("Highscore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Highscore() = %d, expected 0", high)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("Reading the highscore should not create the file")
	}
}

func TestFileStoreUnparsableIsZero(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, HighscoreFile), []byte("not a number"), 0o600); err != nil {
		t.Fatal(err)
	}
	store, _ := NewFileStore(dir)

	high, err := store.Highscore()
	if err != nil {
		t.Fatalf("Highscore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Highscore() = %d, expected 0 for garbage", high)
	}

	best, err := store.Submit(4)
	if err != nil || best != 4 {
		t.Errorf("Submit(4) = %d, %v; expected 4 over an unparsable file", best, err)
	}
}

func TestFileStoreKeepsMaximum(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cli_flappy")
	store, _ := NewFileStore(dir)

	best, err := store.Submit(42)
	if err != nil {
		t.Fatalf("Submit(42) failed: %v", err)
	}
	if best != 42 {
		t.Errorf("Submit(42) = %d, expected 42", best)
	}

	// A later, lower score leaves the stored value alone
	best, err = store.Submit(17)
	if err != nil {
		t.Fatalf("Submit(17) failed: %v", err)
	}
	if best != 42 {
		t.Errorf("Submit(17) = %d, expected 42", best)
	}

	// A higher score replaces it
	best, _ = store.Submit(100)
	if best != 100 {
		t.Errorf("Submit(100) = %d, expected 100", best)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "100" {
		t.Errorf("File contents = %q, expected plain decimal \"100\"", data)
	}
}

func TestFileStoreEqualScoreDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, HighscoreFile)
	if err := os.WriteFile(path, []byte("7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	store, _ := NewFileStore(dir)

	best, err := store.Submit(7)
	if err != nil || best != 7 {
		t.Fatalf("Submit(7) = %d, %v", best, err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "7\n" {
		t.Errorf("Equal score should not rewrite the file, got %q", data)
	}
}

func TestFileStoreUnwritableDir(t *testing.T) {
	// A regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	store, _ := NewFileStore(filepath.Join(blocker, "cli_flappy"))

	best, err := store.Submit(5)
	if err == nil {
		t.Error("Submit() should report the write failure")
	}
	if best != 5 {
		t.Errorf("Submit() should still return the best score, got %d", best)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.cache/cli_flappy")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if got != filepath.Join(home, ".cache", "cli_flappy") {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/tmp/x"); got != "/tmp/x" {
		t.Errorf("Absolute paths should be unchanged, got %q", got)
	}
}

func TestMemoryStore(t *testing.T) {
	var m MemoryStore

	if best, _ := m.Highscore(); best != 0 {
		t.Errorf("Highscore() = %d, expected 0", best)
	}
	for _, tt := range []struct{ submit, want int }{{5, 5}, {3, 5}, {9, 9}} {
		best, err := m.Submit(tt.submit)
		if err != nil {
			t.Fatalf("Submit(%d) failed: %v", tt.submit, err)
		}
		if best != tt.want {
			t.Errorf("Submit(%d) = %d, expected %d", tt.submit, best, tt.want)
		}
	}
}

func TestDefaultDirWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")

	if _, err := NewFileStore(""); err == nil {
		t.Error("NewFileStore(\"\") should fail without a home directory")
	}
}

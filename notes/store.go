package notes

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the location of the single note file.
type Config struct {
	Dir      string
	Filename string
}

// Store reads and writes the one note file inside the repository working
// directory. The autosave pipeline is its only writer.
type Store struct {
	path string
}

func NewStore(cfg Config) *Store {
	return &Store{path: filepath.Join(cfg.Dir, cfg.Filename)}
}

// Path returns the absolute or relative path of the note file.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the note file is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Read returns the full note contents.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read note %s: %w", s.path, err)
	}
	return string(data), nil
}

// Write replaces the note contents atomically: the content goes to a temp
// file in the same directory which is then renamed over the note, so a
// concurrent page render never observes a partial write.
func (s *Store) Write(content string) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".note-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write note: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close note temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace note %s: %w", s.path, err)
	}
	return nil
}

package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile renders into dir/name atomically: the output goes to a temp file
// that is renamed into place once render succeeds.
func WriteFile(dir, name string, render func(io.Writer) error) (string, error) {
	if name == "" {
		name = DefaultFilename
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export error creating directory: %w", err)
	}
	path := filepath.Join(dir, name)
	tmpPath := path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("export error creating temp file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := render(w); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("export error writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("export error closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("export error renaming temp file: %w", err)
	}
	return path, nil
}

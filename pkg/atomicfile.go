// Package pkg is a package that provides utilities for routefix.
package pkg

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// WriteFileAtomic replaces the file at path with content in a single step:
// the new text is written to a temporary file in the same directory and
// renamed over the target. A crash mid-write leaves either the old file or
// the new one, never a truncated mix of both.
func WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}

	tmpName := tmp.Name()

	defer func() {
		// Best-effort cleanup when the rename never happened.
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		slog.Error("failed to write temp file", "path", tmpName, "error", err)

		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set mode on temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		slog.Error("failed to replace file", "path", path, "error", err)

		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	slog.Debug("replaced file atomically", "path", path, "bytes", len(content))

	return nil
}

// Package adapter contains infrastructure adapters for the routefix CLI.
package adapter

import (
	"os"

	m "github.com/mrskwiw/routefix/internal/model"
	"github.com/mrskwiw/routefix/pkg"
)

// SourceFSAdapter abstracts the filesystem operations the migration workflow
// relies on. It intentionally hides direct `os` access so the domain logic
// can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its full contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the file's contents in one write with the given
	// permissions. Migration never appends or patches in place.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the workflow can preserve the
	// original file mode when writing back.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the os
// package.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the migrator.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions. The write
// goes through a temp-and-rename so an interrupted run never leaves a
// truncated file behind.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return pkg.WriteFileAtomic(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

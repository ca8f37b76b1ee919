// Package testable provides an abstraction over the file system so that
// loaders and the CLI can be tested with injected failures without touching
// production behavior.
package testable

import (
	"os"
	"path/filepath"
)

// FileSystem abstracts the file system operations used by propview.
// The production implementation (OsFileSystem) delegates to the standard library.
type FileSystem interface {
	// Abs returns an absolute representation of path.
	Abs(path string) (string, error)

	// Stat returns a FileInfo describing the named file.
	Stat(name string) (os.FileInfo, error)

	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// OsFileSystem is the production implementation of FileSystem.
type OsFileSystem struct{}

// Abs wraps filepath.Abs.
func (OsFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Stat wraps os.Stat.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile wraps os.ReadFile.
func (OsFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // caller controls path
}

// WriteFile wraps os.WriteFile.
func (OsFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm) //nolint:gosec // caller controls path and perms
}

// DefaultFS is the production FileSystem used by every package unless a
// test injects its own.
var DefaultFS FileSystem = OsFileSystem{}

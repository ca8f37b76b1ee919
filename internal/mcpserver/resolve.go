// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the property inspector as tools over stdio transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathInfo holds the resolved location of a snapshot file.
type PathInfo struct {
	// AbsPath is the absolute, symlink-resolved path.
	AbsPath string
	// Dir holds the snapshot and is searched for a .propview.yaml.
	Dir string
}

// ResolveSnapshot resolves a snapshot path to an absolute path. It returns
// an error if the path is empty, does not exist, or is a directory.
func ResolveSnapshot(path string) (*PathInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("path %q does not exist", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory, want a snapshot file", path)
	}

	return &PathInfo{
		AbsPath: absPath,
		Dir:     filepath.Dir(absPath),
	}, nil
}

// Package config handles .propview.yaml configuration files.
package config

import "github.com/anonkit/propview/internal/testable"

// Config represents the contents of a .propview.yaml file.
type Config struct {
	// Format names the renderer used by inspect and replay.
	Format string `yaml:"format,omitempty"`
	// Mode selects the input or output view.
	Mode    string `yaml:"mode,omitempty"`
	NoColor *bool  `yaml:"no_color,omitempty"`
	// Messages is a TOML file overriding the built-in property labels.
	Messages string `yaml:"messages,omitempty"`
	// ZeroRange controls how a loss is shown when the lattice has no range.
	ZeroRange string `yaml:"zero_range,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".propview.yaml"

// FS is the file system implementation used by this package.
var FS testable.FileSystem = testable.DefaultFS

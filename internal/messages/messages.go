// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

// Package messages resolves the labels shown by the property inspector.
// The default English catalog is embedded; users may override any subset of
// keys with their own TOML file.
package messages

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/anonkit/propview/internal/testable"
)

//go:embed default.toml
var defaultCatalog []byte

// FS is the file system implementation used by this package.
var FS testable.FileSystem = testable.DefaultFS

// Key identifies a label as "<section>.<name>".
type Key string

// Catalog maps keys to labels.
type Catalog struct {
	labels map[string]string
}

// Default returns a catalog holding the embedded English labels.
func Default() *Catalog {
	c := &Catalog{labels: make(map[string]string)}
	if err := c.merge(defaultCatalog); err != nil {
		panic(fmt.Sprintf("messages: embedded catalog is invalid: %v", err))
	}
	return c
}

// Load returns the default catalog with the labels of the TOML file at path
// layered on top. An empty path returns the default catalog.
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	if err := c.merge(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse returns the default catalog with the TOML labels in data layered on top.
func Parse(data []byte) (*Catalog, error) {
	c := Default()
	if err := c.merge(data); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) merge(data []byte) error {
	var sections map[string]map[string]string
	if _, err := toml.Decode(string(data), &sections); err != nil {
		return fmt.Errorf("decode messages: %w", err)
	}
	for section, entries := range sections {
		for name, label := range entries {
			c.labels[section+"."+name] = label
		}
	}
	return nil
}

// Get returns the label for key. Missing keys render as "!key!" so that
// they are easy to spot on screen.
func (c *Catalog) Get(key Key) string {
	if c != nil {
		if label, ok := c.labels[string(key)]; ok {
			return label
		}
	}
	return "!" + string(key) + "!"
}

// Keys returns all keys in the catalog, sorted.
func (c *Catalog) Keys() []Key {
	keys := make([]Key, 0, len(c.labels))
	for k := range c.labels {
		keys = append(keys, Key(k))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Section returns the section part of the key.
func (k Key) Section() string {
	section, _, _ := strings.Cut(string(k), ".")
	return section
}

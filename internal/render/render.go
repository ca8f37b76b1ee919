// Package render writes property trees in several formats. Renderers are
// kept in a registry keyed by format name.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/anonkit/propview/internal/messages"
	"github.com/anonkit/propview/internal/properties"
)

// ErrUnknownFormat is returned by Get for a format with no registered renderer.
var ErrUnknownFormat = errors.New("unknown format")

// Renderer writes a document to w in a specific format.
type Renderer interface {
	// Name returns the format name (e.g., "text", "json").
	Name() string

	Render(doc Document, w io.Writer) error
}

// Document is one rendered view of a property tree.
type Document struct {
	Mode properties.Mode
	// Source names the snapshot the tree was built from. It may be empty.
	Source  string
	Tree    *properties.Tree
	Enabled bool
	// Messages resolves column headers. Defaults to the embedded catalog.
	Messages *messages.Catalog
}

// Columns returns the header labels of the document's mode.
func (d Document) Columns() []string {
	cat := d.catalog()
	keys := d.Mode.Columns()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = cat.Get(k)
	}
	return out
}

func (d Document) catalog() *messages.Catalog {
	if d.Messages == nil {
		return messages.Default()
	}
	return d.Messages
}

// Node is the nested form of a tree node used by the structured formats.
type Node struct {
	Label    string   `json:"label" yaml:"label"`
	Values   []string `json:"values,omitempty" yaml:"values,omitempty"`
	Children []Node   `json:"children,omitempty" yaml:"children,omitempty"`
}

// Nodes converts the flat tree into nested nodes, roots first.
func Nodes(tree *properties.Tree) []Node {
	if tree == nil {
		return nil
	}
	var build func(ids []properties.NodeID) []Node
	build = func(ids []properties.NodeID) []Node {
		if len(ids) == 0 {
			return nil
		}
		out := make([]Node, len(ids))
		for i, id := range ids {
			out[i] = Node{
				Label:    tree.Label(id),
				Values:   trimTrailingBlanks(tree.Values(id)),
				Children: build(tree.Children(id)),
			}
		}
		return out
	}
	return build(tree.Roots())
}

func trimTrailingBlanks(values []string) []string {
	n := len(values)
	for n > 0 && values[n-1] == "" {
		n--
	}
	if n == 0 {
		return nil
	}
	return values[:n]
}

// Separator returns the text written between two documents of format in
// one stream.
func Separator(format string) string {
	switch format {
	case "yaml":
		return "---\n"
	case "text":
		return "\n"
	default:
		return ""
	}
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Renderer)
)

// Register adds a renderer to the global registry.
func Register(r Renderer) {
	mu.Lock()
	defer mu.Unlock()
	registry[r.Name()] = r
}

// Get returns the renderer with the given name.
func Get(name string) (Renderer, error) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownFormat, name, strings.Join(names(), ", "))
	}
	return r, nil
}

// Names returns the registered format names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return names()
}

func names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

package render

import (
	"encoding/json"
	"fmt"
	"io"
)

func init() {
	Register(NewJSONRenderer())
}

// view is the document shape shared by the structured formats.
type view struct {
	Source     string   `json:"source,omitempty" yaml:"source,omitempty"`
	Mode       string   `json:"mode" yaml:"mode"`
	Enabled    bool     `json:"enabled" yaml:"enabled"`
	Columns    []string `json:"columns" yaml:"columns"`
	Properties []Node   `json:"properties" yaml:"properties"`
}

func newView(doc Document) view {
	v := view{
		Source:     doc.Source,
		Mode:       doc.Mode.String(),
		Enabled:    doc.Enabled,
		Columns:    doc.Columns(),
		Properties: []Node{},
	}
	if doc.Enabled {
		if nodes := Nodes(doc.Tree); nodes != nil {
			v.Properties = nodes
		}
	}
	return v
}

// JSONRenderer writes the document as a JSON object with nested properties.
type JSONRenderer struct {
	// Compact writes a single line instead of indenting with two spaces.
	Compact bool
}

var _ Renderer = (*JSONRenderer)(nil)

// NewJSONRenderer returns a JSONRenderer with default settings.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Name returns the format name.
func (r *JSONRenderer) Name() string {
	return "json"
}

// Render writes doc to w.
func (r *JSONRenderer) Render(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	if !r.Compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(newView(doc)); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}

package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func init() {
	Register(NewYAMLRenderer())
}

// YAMLRenderer writes the document as a single YAML document.
type YAMLRenderer struct{}

var _ Renderer = (*YAMLRenderer)(nil)

// NewYAMLRenderer returns a YAMLRenderer.
func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

// Name returns the format name.
func (r *YAMLRenderer) Name() string {
	return "yaml"
}

// Render writes doc to w.
func (r *YAMLRenderer) Render(doc Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newView(doc)); err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}
	return nil
}

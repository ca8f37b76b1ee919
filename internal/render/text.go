package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/anonkit/propview/internal/messages"
	"github.com/anonkit/propview/internal/properties"
)

func init() {
	Register(NewTextRenderer())
}

// TextRenderer writes the tree as an aligned table with every node expanded.
// Child labels are indented under their parent.
type TextRenderer struct {
	// Indent is the number of spaces per tree level.
	Indent int
}

var _ Renderer = (*TextRenderer)(nil)

// NewTextRenderer returns a TextRenderer with two-space indentation.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{Indent: 2}
}

// Name returns the format name.
func (r *TextRenderer) Name() string {
	return "text"
}

// Render writes doc to w. A disabled document prints only the headers
// followed by the catalog's disabled marker.
func (r *TextRenderer) Render(doc Document, w io.Writer) error {
	cat := doc.catalog()
	if doc.Source != "" {
		if _, err := fmt.Fprintf(w, "%s\n", SectionTitle(fmt.Sprintf("%s (%s)", doc.Source, doc.Mode))); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	}

	headers := doc.Columns()
	cols := make([]Column, len(headers))
	notAnonymous := cat.Get(messages.NotAnonymousValue)
	for i, h := range headers {
		cols[i] = Column{Header: h}
		switch {
		case i == 1:
			cols[i].Color = func(v string) string {
				if v == notAnonymous {
					return colorWarning(v)
				}
				return v
			}
		case i > 1:
			cols[i].Color = colorDetail
		}
	}
	tbl := NewTable(cols...)

	tree := doc.Tree
	if doc.Enabled && tree != nil {
		tree.Walk(func(id properties.NodeID, depth int) {
			label := strings.Repeat(" ", depth*r.Indent) + tree.Label(id)
			var style ColorFunc
			if tree.HasChildren(id) {
				style = SectionTitle
			}
			tbl.AddStyledRow(style, append([]string{label}, tree.Values(id)...)...)
		})
	}

	if err := tbl.Render(w); err != nil {
		return err
	}
	if tbl.Len() == 0 {
		if _, err := fmt.Fprintf(w, "  %s\n", colorMuted(cat.Get(messages.Disabled))); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	}
	return nil
}

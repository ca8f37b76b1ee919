package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/anonkit/propview/internal/model"
	"github.com/anonkit/propview/internal/properties"
)

func TestJSONRenderer_Output(t *testing.T) {
	var buf bytes.Buffer
	doc := Document{Mode: properties.ModeOutput, Source: "run.yaml", Tree: outputTree(t, model.AnonymityAnonymous), Enabled: true}
	require.NoError(t, NewJSONRenderer().Render(doc, &buf))

	var got view
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "output", got.Mode)
	assert.Equal(t, "run.yaml", got.Source)
	assert.True(t, got.Enabled)
	assert.Equal(t, []string{"Property", "Value"}, got.Columns)
	require.NotEmpty(t, got.Properties)
	assert.Equal(t, Node{Label: "Outlying groups", Values: []string{"1"}}, got.Properties[0])
}

func TestJSONRenderer_DisabledHasEmptyProperties(t *testing.T) {
	var buf bytes.Buffer
	r := &JSONRenderer{Compact: true}
	doc := Document{Mode: properties.ModeOutput, Tree: outputTree(t, model.AnonymityAnonymous)}
	require.NoError(t, r.Render(doc, &buf))

	assert.JSONEq(t, `{"mode":"output","enabled":false,"columns":["Property","Value"],"properties":[]}`, buf.String())
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")), "compact output is a single line")
}

func TestYAMLRenderer_Input(t *testing.T) {
	var buf bytes.Buffer
	doc := Document{Mode: properties.ModeInput, Tree: inputTree(t), Enabled: true}
	require.NoError(t, NewYAMLRenderer().Render(doc, &buf))

	var got view
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "input", got.Mode)
	assert.Len(t, got.Columns, 7)
	require.Len(t, got.Properties, 3)
	assert.Equal(t, "Allowed outliers", got.Properties[1].Label)
	assert.Equal(t, []string{"5.0%"}, got.Properties[1].Values)
	assert.Len(t, got.Properties[2].Children, 4)
}

package render

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/anonkit/propview/internal/model"
	"github.com/anonkit/propview/internal/properties"
)

// noColor disables ANSI output for the duration of the test.
func noColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func outputTree(t *testing.T, anonymity model.Anonymity) *properties.Tree {
	t.Helper()
	def := model.NewDefinition(
		&model.Attribute{Name: "Age", Role: model.RoleQuasiIdentifying, Hierarchy: &model.Hierarchy{Levels: 3}},
	)
	data := &model.Handle{Rows: 5, Columns: []string{"Age"}, Definition: def}
	cfg := &model.Configuration{
		Input:    data,
		Criteria: []model.Criterion{{Kind: model.CriterionKAnonymity, K: 5}},
	}
	tree, err := properties.BuildOutput(properties.Output{
		Data:   data,
		Config: cfg,
		Result: &model.Result{Lattice: model.Lattice{TopMaxLoss: 400}, Groups: 4, OutlyingGroups: 1},
		Node: &model.LatticeNode{
			MinLoss:        120,
			MaxLoss:        120,
			Anonymity:      anonymity,
			Transformation: model.Transformation{1},
		},
	}, properties.Options{})
	require.NoError(t, err)
	return tree
}

func inputTree(t *testing.T) *properties.Tree {
	t.Helper()
	def := model.NewDefinition(
		&model.Attribute{Name: "Name", Role: model.RoleIdentifying, Type: model.DataType{Label: "String"}},
		&model.Attribute{Name: "Age", Role: model.RoleQuasiIdentifying, Type: model.DataType{Label: "Integer"}, Hierarchy: &model.Hierarchy{Levels: 3}},
	)
	data := &model.Handle{Rows: 5, Columns: []string{"Name", "Age"}, Definition: def}
	tree, err := properties.BuildInput(properties.Input{
		Data:   data,
		Config: &model.Configuration{Input: data, AllowedOutliers: 0.05},
	}, properties.Options{})
	require.NoError(t, err)
	return tree
}

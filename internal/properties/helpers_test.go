package properties

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/anonkit/propview/internal/model"
)

// dump flattens a tree into "<indent><label> = v1 | v2" lines.
func dump(t *Tree) []string {
	var lines []string
	t.Walk(func(id NodeID, depth int) {
		lines = append(lines, strings.Repeat("  ", depth)+t.Label(id)+" = "+strings.Join(t.Values(id), " | "))
	})
	return lines
}

func intPtr(i int) *int { return &i }

// captureLogger returns a logger writing text records into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// scenarioInput is a five-row dataset with one identifying, one
// quasi-identifying and one sensitive attribute.
func scenarioInput() Input {
	def := model.NewDefinition(
		&model.Attribute{Name: "Name", Role: model.RoleIdentifying, Type: model.DataType{Label: "String"}},
		&model.Attribute{
			Name:      "Age",
			Role:      model.RoleQuasiIdentifying,
			Type:      model.DataType{Label: "Integer"},
			Hierarchy: &model.Hierarchy{Levels: 3},
			MinLevel:  intPtr(0),
			MaxLevel:  intPtr(2),
		},
		&model.Attribute{Name: "Disease", Role: model.RoleSensitive, Type: model.DataType{Label: "String"}},
	)
	data := &model.Handle{Rows: 5, Columns: []string{"Name", "Age", "Disease"}, Definition: def}
	return Input{
		Data: data,
		Config: &model.Configuration{
			Input:           data,
			AllowedOutliers: 0.05,
			Hierarchies:     map[string]*model.Hierarchy{"Age": def.Hierarchy("Age")},
		},
	}
}

// scenarioOutput is an anonymous node with a single-valued loss of 120 in a
// lattice spanning [0, 400], protected by 5-anonymity.
func scenarioOutput() Output {
	in := scenarioInput()
	cfg := *in.Config
	cfg.Criteria = []model.Criterion{{Kind: model.CriterionKAnonymity, K: 5}}
	return Output{
		Data:   in.Data,
		Config: &cfg,
		Result: &model.Result{
			Lattice:        model.Lattice{BottomMinLoss: 0, TopMaxLoss: 400},
			Groups:         4,
			OutlyingGroups: 1,
		},
		Node: &model.LatticeNode{
			MinLoss:        120,
			MaxLoss:        120,
			Anonymity:      model.AnonymityAnonymous,
			Successors:     []model.Transformation{{2}, {3}},
			Predecessors:   []model.Transformation{{0}},
			Transformation: model.Transformation{1},
		},
	}
}

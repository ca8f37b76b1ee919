package observer

import (
	"errors"

	"github.com/anonkit/propview/internal/model"
	"github.com/anonkit/propview/internal/properties"
)

// Build takes a snapshot of m for mode and builds its tree. It returns
// ErrNothingToDisplay when the model lacks an input handle or, in output
// mode, a result or selected node.
func Build(m *model.Model, mode properties.Mode, opts properties.Options) (*properties.Tree, error) {
	cfg := m.Config()
	if cfg == nil {
		return nil, ErrNothingToDisplay
	}

	var (
		tree *properties.Tree
		err  error
	)
	if mode == properties.ModeInput {
		tree, err = properties.BuildInput(properties.Input{Data: cfg.Input, Config: cfg}, opts)
	} else {
		tree, err = properties.BuildOutput(properties.Output{
			Data:   m.Output,
			Config: cfg,
			Result: m.Result,
			Node:   m.SelectedNode,
		}, opts)
	}
	if errors.Is(err, properties.ErrIncomplete) {
		return nil, ErrNothingToDisplay
	}
	return tree, err
}

package properties

import (
	"strconv"

	"github.com/anonkit/propview/internal/infoloss"
	"github.com/anonkit/propview/internal/messages"
	"github.com/anonkit/propview/internal/model"
)

// Output is the snapshot an output tree is built from.
type Output struct {
	Data   *model.Handle
	Config *model.Configuration
	Result *model.Result
	Node   *model.LatticeNode
}

// BuildOutput describes the selected lattice node of a result: group
// counts, information loss, neighbourhood, transformation and, for
// anonymous nodes, the privacy criteria it satisfies.
func BuildOutput(out Output, opts Options) (*Tree, error) {
	if out.Data == nil || out.Config == nil || out.Result == nil || out.Node == nil {
		return nil, ErrIncomplete
	}
	opts = opts.withDefaults()
	b := newTreeBuilder()
	res, node := out.Result, out.Node

	// The outlying group count is shown twice under two labels.
	b.root(opts.label(messages.OutlyingGroups), strconv.Itoa(res.OutlyingGroups))
	b.root(opts.label(messages.Groups), strconv.Itoa(res.Groups))
	b.root(opts.label(messages.SuppressedGroups), strconv.Itoa(res.OutlyingGroups))

	if node.MinLoss == node.MaxLoss {
		b.root(opts.label(messages.InformationLoss), formatLoss(node.MinLoss, res.Lattice, opts.ZeroRange))
	} else {
		opts.Logger.Warn("differing minimum and maximum information loss",
			"min", node.MinLoss, "max", node.MaxLoss, "transformation", node.Transformation.String())
	}

	b.root(opts.label(messages.Successors), strconv.Itoa(len(node.Successors)))
	b.root(opts.label(messages.Predecessors), strconv.Itoa(len(node.Predecessors)))
	b.root(opts.label(messages.Transformation), node.Transformation.String())

	if node.Anonymity == model.AnonymityAnonymous {
		describeCriteria(b, out.Config, opts)
	} else {
		b.root(opts.label(messages.NotAnonymous), opts.label(messages.NotAnonymousValue))
	}
	return b.build(), nil
}

// formatLoss renders "<loss> [<pct>%]" relative to the lattice bounds.
func formatLoss(loss float64, lattice model.Lattice, policy ZeroRangePolicy) string {
	value := infoloss.FormatDouble(loss)
	pct, ok := infoloss.Relative(loss, lattice.BottomMinLoss, lattice.TopMaxLoss)
	if !ok {
		if policy == ZeroRangeOmit {
			return value
		}
		pct = 0
	}
	return value + " [" + infoloss.FormatPercent(pct) + "%]"
}

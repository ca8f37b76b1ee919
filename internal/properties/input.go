package properties

import (
	"strconv"

	"github.com/anonkit/propview/internal/infoloss"
	"github.com/anonkit/propview/internal/messages"
	"github.com/anonkit/propview/internal/model"
)

// Input is the snapshot an input tree is built from.
type Input struct {
	Data   *model.Handle
	Config *model.Configuration
}

// roleSection is one child of the attributes node.
type roleSection struct {
	role   model.Role
	title  messages.Key
	prefix messages.Key
	row    func(in Input, name string) []string
}

var roleSections = []roleSection{
	{model.RoleIdentifying, messages.Identifying, messages.IdentifyingRow, typedRow},
	{model.RoleQuasiIdentifying, messages.QuasiIdentifying, messages.QuasiIdentifyingRow, quasiIdentifierRow},
	{model.RoleSensitive, messages.Sensitive, messages.SensitiveRow, sensitiveRow},
	{model.RoleInsensitive, messages.Insensitive, messages.InsensitiveRow, typedRow},
}

// BuildInput describes the input dataset: row count, outlier budget and the
// attributes grouped by role in column order.
func BuildInput(in Input, opts Options) (*Tree, error) {
	if in.Data == nil || in.Config == nil {
		return nil, ErrIncomplete
	}
	opts = opts.withDefaults()
	b := newTreeBuilder()

	b.root(opts.label(messages.Rows), strconv.Itoa(in.Data.NumRows()))
	b.root(opts.label(messages.AllowedOutliers),
		infoloss.FormatDouble(in.Config.AllowedOutliers*100)+opts.label(messages.Percent))

	attributes := b.root(opts.label(messages.Attributes), strconv.Itoa(in.Data.NumColumns()))
	for _, section := range roleSections {
		names := attributesInRole(in.Data, section.role)
		parent := b.child(attributes, opts.label(section.title), strconv.Itoa(len(names)))
		prefix := opts.label(section.prefix)
		for i, name := range names {
			b.child(parent, prefix+strconv.Itoa(i), section.row(in, name)...)
		}
	}
	return b.build(), nil
}

// attributesInRole returns the attributes with the given role in column order.
func attributesInRole(data *model.Handle, role model.Role) []string {
	var names []string
	for i := 0; i < data.NumColumns(); i++ {
		name := data.AttributeName(i)
		if data.Definition.InRole(name, role) {
			names = append(names, name)
		}
	}
	return names
}

func typedRow(in Input, name string) []string {
	return []string{name, in.Data.Definition.DataType(name).String()}
}

// quasiIdentifierRow shows type and generalization bounds only when a
// hierarchy is attached.
func quasiIdentifierRow(in Input, name string) []string {
	def := in.Data.Definition
	if def.Hierarchy(name) == nil {
		return []string{name}
	}
	dt := def.DataType(name)
	return []string{
		name,
		dt.String(),
		dt.Format,
		strconv.Itoa(def.HierarchyHeight(name)),
		strconv.Itoa(def.MinimumGeneralization(name)),
		strconv.Itoa(def.MaximumGeneralization(name)),
	}
}

// sensitiveRow shows the type and the height of the configured hierarchy,
// placed in the height column.
func sensitiveRow(in Input, name string) []string {
	h := in.Config.Hierarchy(name)
	if h == nil {
		return []string{name}
	}
	return []string{
		name,
		in.Data.Definition.DataType(name).String(),
		"",
		strconv.Itoa(h.Height()),
	}
}

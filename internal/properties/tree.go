// Package properties builds the read-only property trees shown by the
// inspector for an input dataset or a selected anonymized output.
//
// A Tree is immutable once built. Nodes live in a flat table and refer to
// their parent by index, so a tree can be handed to any number of readers
// and replaced wholesale when the model changes.
package properties

import "slices"

// NodeID addresses a node within a single Tree.
type NodeID int

// NoParent is the parent of every root node.
const NoParent NodeID = -1

type node struct {
	label    string
	values   []string
	parent   NodeID
	children []NodeID
}

// Tree is an ordered forest of property rows.
type Tree struct {
	nodes []node
	roots []NodeID
}

// Empty returns a tree without nodes.
func Empty() *Tree {
	return &Tree{}
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree) IsEmpty() bool {
	return t.Len() == 0
}

// Roots returns the root nodes in display order.
func (t *Tree) Roots() []NodeID {
	if t == nil {
		return nil
	}
	return slices.Clone(t.roots)
}

// Children returns the children of id in display order.
func (t *Tree) Children(id NodeID) []NodeID {
	return slices.Clone(t.nodes[id].children)
}

// Parent returns the parent of id. The second result is false for roots.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	p := t.nodes[id].parent
	return p, p != NoParent
}

// HasChildren reports whether id has at least one child.
func (t *Tree) HasChildren(id NodeID) bool {
	return len(t.nodes[id].children) > 0
}

// Label returns the property name of id.
func (t *Tree) Label(id NodeID) string {
	return t.nodes[id].label
}

// Value returns the value of id in value column i (0-based, the label
// column excluded). Columns past the node's values yield ("", false).
func (t *Tree) Value(id NodeID, i int) (string, bool) {
	values := t.nodes[id].values
	if i < 0 || i >= len(values) {
		return "", false
	}
	return values[i], true
}

// Values returns a copy of all values of id.
func (t *Tree) Values(id NodeID) []string {
	return slices.Clone(t.nodes[id].values)
}

// Walk visits every node depth-first in display order. Roots have depth 0.
func (t *Tree) Walk(fn func(id NodeID, depth int)) {
	if t == nil {
		return
	}
	var visit func(id NodeID, depth int)
	visit = func(id NodeID, depth int) {
		fn(id, depth)
		for _, c := range t.nodes[id].children {
			visit(c, depth+1)
		}
	}
	for _, r := range t.roots {
		visit(r, 0)
	}
}

// Equal reports whether both trees have the same shape, labels and values.
func (t *Tree) Equal(other *Tree) bool {
	if t.Len() != other.Len() {
		return false
	}
	if t.Len() == 0 {
		return true
	}
	var same func(a, b []NodeID) bool
	same = func(a, b []NodeID) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			na, nb := t.nodes[a[i]], other.nodes[b[i]]
			if na.label != nb.label || !slices.Equal(na.values, nb.values) {
				return false
			}
			if !same(na.children, nb.children) {
				return false
			}
		}
		return true
	}
	return same(t.roots, other.roots)
}

// treeBuilder appends nodes to a tree under construction. Children can only
// be attached to nodes that already exist, which keeps the result acyclic.
type treeBuilder struct {
	tree *Tree
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{tree: &Tree{}}
}

func (b *treeBuilder) add(parent NodeID, label string, values []string) NodeID {
	id := NodeID(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, node{label: label, values: values, parent: parent})
	if parent == NoParent {
		b.tree.roots = append(b.tree.roots, id)
	} else {
		b.tree.nodes[parent].children = append(b.tree.nodes[parent].children, id)
	}
	return id
}

func (b *treeBuilder) root(label string, values ...string) NodeID {
	return b.add(NoParent, label, values)
}

func (b *treeBuilder) child(parent NodeID, label string, values ...string) NodeID {
	return b.add(parent, label, values)
}

// build hands out the finished tree. The builder must not be used afterwards.
func (b *treeBuilder) build() *Tree {
	t := b.tree
	b.tree = nil
	return t
}

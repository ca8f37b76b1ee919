// Package model defines the anonymization state read by the property
// inspector: dataset handles, attribute definitions, configurations,
// privacy criteria, and the lattice result of an anonymization run.
//
// The inspector never mutates these values. They are produced by the
// anonymization engine (or, in this repository, loaded from snapshot files).
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Role is the part an attribute plays in anonymization.
type Role int

const (
	// RoleInsensitive attributes are kept as-is. Unclassified attributes default to it.
	RoleInsensitive Role = iota
	// RoleIdentifying attributes are removed from the output.
	RoleIdentifying
	// RoleQuasiIdentifying attributes are generalized.
	RoleQuasiIdentifying
	// RoleSensitive attributes are protected by l-diversity or t-closeness.
	RoleSensitive
)

var roleNames = map[Role]string{
	RoleInsensitive:      "insensitive",
	RoleIdentifying:      "identifying",
	RoleQuasiIdentifying: "quasi-identifying",
	RoleSensitive:        "sensitive",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "role(" + strconv.Itoa(int(r)) + ")"
}

// ParseRole converts a role name into a Role. Matching is case-insensitive
// and accepts "qi" as shorthand for quasi-identifying.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "insensitive":
		return RoleInsensitive, nil
	case "identifying":
		return RoleIdentifying, nil
	case "quasi-identifying", "quasi_identifying", "qi":
		return RoleQuasiIdentifying, nil
	case "sensitive":
		return RoleSensitive, nil
	default:
		return RoleInsensitive, fmt.Errorf("unknown attribute role %q", s)
	}
}

// DataType describes the type of an attribute's values.
type DataType struct {
	// Label is the human-readable type name, e.g. "String" or "Date".
	Label string
	// Format is the optional parse/print pattern, e.g. "dd.MM.yyyy".
	Format string
}

func (d DataType) String() string {
	if d.Label == "" {
		return "String"
	}
	return d.Label
}

// HasFormat reports whether the type carries a format string.
func (d DataType) HasFormat() bool {
	return d.Format != ""
}

// Hierarchy is a generalization hierarchy attached to an attribute.
// Rows holds one row per distinct value; column i is generalization level i.
type Hierarchy struct {
	Rows [][]string
	// Levels is used as the height when Rows is empty.
	Levels int
}

// Height returns the number of generalization levels, taken from the finest
// level row when rows are present. A nil hierarchy has height 0.
func (h *Hierarchy) Height() int {
	if h == nil {
		return 0
	}
	if len(h.Rows) > 0 {
		return len(h.Rows[0])
	}
	return h.Levels
}

// Attribute is the definition of a single column.
type Attribute struct {
	Name      string
	Role      Role
	Type      DataType
	Hierarchy *Hierarchy
	// MinLevel and MaxLevel bound generalization. Nil means unbounded.
	MinLevel *int
	MaxLevel *int
}

// Definition is the attribute definition lookup of a dataset.
type Definition struct {
	Attributes map[string]*Attribute
}

// NewDefinition indexes attrs by name.
func NewDefinition(attrs ...*Attribute) *Definition {
	d := &Definition{Attributes: make(map[string]*Attribute, len(attrs))}
	for _, a := range attrs {
		d.Attributes[a.Name] = a
	}
	return d
}

func (d *Definition) attribute(name string) *Attribute {
	if d == nil {
		return nil
	}
	return d.Attributes[name]
}

// Role returns the role of the named attribute. Unknown attributes are insensitive.
func (d *Definition) Role(name string) Role {
	if a := d.attribute(name); a != nil {
		return a.Role
	}
	return RoleInsensitive
}

// InRole reports whether the named attribute has the given role.
func (d *Definition) InRole(name string, role Role) bool {
	return d.Role(name) == role
}

// DataType returns the data type of the named attribute.
func (d *Definition) DataType(name string) DataType {
	if a := d.attribute(name); a != nil {
		return a.Type
	}
	return DataType{}
}

// Hierarchy returns the hierarchy attached to the named attribute, or nil.
func (d *Definition) Hierarchy(name string) *Hierarchy {
	if a := d.attribute(name); a != nil {
		return a.Hierarchy
	}
	return nil
}

// HierarchyHeight returns the height of the named attribute's hierarchy.
func (d *Definition) HierarchyHeight(name string) int {
	return d.Hierarchy(name).Height()
}

// MinimumGeneralization returns the lowest generalization level allowed for
// the named attribute. It defaults to 0.
func (d *Definition) MinimumGeneralization(name string) int {
	if a := d.attribute(name); a != nil && a.MinLevel != nil {
		return *a.MinLevel
	}
	return 0
}

// MaximumGeneralization returns the highest generalization level allowed for
// the named attribute. It defaults to the top level of its hierarchy.
func (d *Definition) MaximumGeneralization(name string) int {
	if a := d.attribute(name); a != nil && a.MaxLevel != nil {
		return *a.MaxLevel
	}
	if h := d.HierarchyHeight(name); h > 0 {
		return h - 1
	}
	return 0
}

// Handle is a read-only view of a dataset.
type Handle struct {
	Rows int
	// Columns holds the attribute names in column order.
	Columns    []string
	Definition *Definition
}

// NumRows returns the number of records.
func (h *Handle) NumRows() int { return h.Rows }

// NumColumns returns the number of attributes.
func (h *Handle) NumColumns() int { return len(h.Columns) }

// AttributeName returns the name of the attribute at column index i.
func (h *Handle) AttributeName(i int) string { return h.Columns[i] }

// Configuration is the anonymization configuration of an input or output.
type Configuration struct {
	// Input is the dataset the configuration was created for.
	Input *Handle
	// AllowedOutliers is the fraction of records that may be suppressed.
	AllowedOutliers float64
	// Hierarchies maps attribute names to their generalization hierarchy.
	Hierarchies map[string]*Hierarchy
	Criteria    []Criterion
}

// Hierarchy returns the configured hierarchy for attr, or nil.
func (c *Configuration) Hierarchy(attr string) *Hierarchy {
	if c == nil || c.Hierarchies == nil {
		return nil
	}
	return c.Hierarchies[attr]
}

// Criterion returns the first configured criterion of the given kind.
func (c *Configuration) Criterion(kind CriterionKind) (Criterion, bool) {
	if c == nil {
		return Criterion{}, false
	}
	for _, cr := range c.Criteria {
		if cr.Kind == kind {
			return cr, true
		}
	}
	return Criterion{}, false
}

// ContainsCriterion reports whether a criterion of the given kind is configured.
func (c *Configuration) ContainsCriterion(kind CriterionKind) bool {
	_, ok := c.Criterion(kind)
	return ok
}

// Model is the full state of an anonymization session.
type Model struct {
	InputConfig *Configuration
	// OutputConfig is the configuration the result was computed with. It is
	// nil until an anonymization has been run.
	OutputConfig *Configuration
	Output       *Handle
	Result       *Result
	SelectedNode *LatticeNode
}

// Config returns the output configuration if present, else the input configuration.
func (m *Model) Config() *Configuration {
	if m == nil {
		return nil
	}
	if m.OutputConfig != nil {
		return m.OutputConfig
	}
	return m.InputConfig
}

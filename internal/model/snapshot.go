// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/anonkit/propview/internal/testable"
)

// FormatVersion is the snapshot format written by this build.
const FormatVersion = "v1.0.0"

// ErrUnsupportedFormat is returned for snapshots with an incompatible format_version.
var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// SnapshotFile is the on-disk representation of an anonymization session.
// The result and selected node are optional; without them the snapshot only
// describes the input.
type SnapshotFile struct {
	FormatVersion   string          `yaml:"format_version,omitempty"`
	Rows            int             `yaml:"rows"`
	AllowedOutliers float64         `yaml:"allowed_outliers"`
	Attributes      []AttributeFile `yaml:"attributes"`
	Criteria        []CriterionFile `yaml:"criteria,omitempty"`
	Result          *ResultFile     `yaml:"result,omitempty"`
	SelectedNode    *NodeFile       `yaml:"selected_node,omitempty"`
}

// AttributeFile describes one column.
type AttributeFile struct {
	Name      string         `yaml:"name"`
	Role      string         `yaml:"role,omitempty"`
	Type      string         `yaml:"type,omitempty"`
	Format    string         `yaml:"format,omitempty"`
	Hierarchy *HierarchyFile `yaml:"hierarchy,omitempty"`
}

// HierarchyFile describes a generalization hierarchy. Either rows or height
// must be given.
type HierarchyFile struct {
	Rows     [][]string `yaml:"rows,omitempty"`
	Height   int        `yaml:"height,omitempty"`
	MinLevel *int       `yaml:"min_level,omitempty"`
	MaxLevel *int       `yaml:"max_level,omitempty"`
}

// CriterionFile describes one privacy criterion.
type CriterionFile struct {
	Kind      string  `yaml:"kind"`
	Attribute string  `yaml:"attribute,omitempty"`
	K         int     `yaml:"k,omitempty"`
	L         int     `yaml:"l,omitempty"`
	C         float64 `yaml:"c,omitempty"`
	T         float64 `yaml:"t,omitempty"`
	DMin      float64 `yaml:"dmin,omitempty"`
	DMax      float64 `yaml:"dmax,omitempty"`
}

// ResultFile describes the outcome of an anonymization run.
type ResultFile struct {
	BottomMinLoss  float64 `yaml:"bottom_min_loss"`
	TopMaxLoss     float64 `yaml:"top_max_loss"`
	Groups         int     `yaml:"groups"`
	OutlyingGroups int     `yaml:"outlying_groups"`
}

// NodeFile describes the selected lattice node.
type NodeFile struct {
	MinLoss        float64 `yaml:"min_loss"`
	MaxLoss        float64 `yaml:"max_loss"`
	Anonymity      string  `yaml:"anonymity"`
	Successors     [][]int `yaml:"successors,omitempty"`
	Predecessors   [][]int `yaml:"predecessors,omitempty"`
	Transformation []int   `yaml:"transformation"`
}

// Load reads and parses the snapshot file at path.
func Load(path string) (*Model, error) {
	data, err := FS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a YAML snapshot.
func Parse(data []byte) (*Model, error) {
	var sf SnapshotFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := Validate(&sf); err != nil {
		return nil, err
	}
	return sf.Model(), nil
}

// checkFormatVersion accepts an empty version and any v1.x version.
func checkFormatVersion(v string) error {
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: format_version %q is not a semantic version", ErrUnsupportedFormat, v)
	}
	if semver.Major(v) != semver.Major(FormatVersion) {
		return fmt.Errorf("%w: format_version %s, want %s.x", ErrUnsupportedFormat, v, semver.Major(FormatVersion))
	}
	return nil
}

// Model converts the file into domain values. The file must have been
// validated. When a result is present, the output configuration is a copy
// of the input configuration, as produced by an anonymization run.
func (sf *SnapshotFile) Model() *Model {
	attrs := make([]*Attribute, 0, len(sf.Attributes))
	columns := make([]string, 0, len(sf.Attributes))
	hierarchies := make(map[string]*Hierarchy)
	for _, af := range sf.Attributes {
		role, _ := ParseRole(af.Role)
		a := &Attribute{
			Name: af.Name,
			Role: role,
			Type: DataType{Label: af.Type, Format: af.Format},
		}
		if af.Hierarchy != nil {
			a.Hierarchy = &Hierarchy{Rows: af.Hierarchy.Rows, Levels: af.Hierarchy.Height}
			a.MinLevel = af.Hierarchy.MinLevel
			a.MaxLevel = af.Hierarchy.MaxLevel
			hierarchies[af.Name] = a.Hierarchy
		}
		attrs = append(attrs, a)
		columns = append(columns, af.Name)
	}

	criteria := make([]Criterion, 0, len(sf.Criteria))
	for _, cf := range sf.Criteria {
		criteria = append(criteria, Criterion{
			Kind:      ParseCriterionKind(cf.Kind),
			Name:      cf.Kind,
			Attribute: cf.Attribute,
			K:         cf.K,
			L:         cf.L,
			C:         cf.C,
			T:         cf.T,
			DMin:      cf.DMin,
			DMax:      cf.DMax,
		})
	}

	input := &Handle{Rows: sf.Rows, Columns: columns, Definition: NewDefinition(attrs...)}
	m := &Model{
		InputConfig: &Configuration{
			Input:           input,
			AllowedOutliers: sf.AllowedOutliers,
			Hierarchies:     hierarchies,
			Criteria:        criteria,
		},
	}
	if sf.Result == nil {
		return m
	}

	out := *m.InputConfig
	out.Criteria = append([]Criterion(nil), criteria...)
	m.OutputConfig = &out
	m.Output = &Handle{Rows: sf.Rows, Columns: columns, Definition: input.Definition}
	m.Result = &Result{
		Lattice: Lattice{
			BottomMinLoss: sf.Result.BottomMinLoss,
			TopMaxLoss:    sf.Result.TopMaxLoss,
		},
		Groups:         sf.Result.Groups,
		OutlyingGroups: sf.Result.OutlyingGroups,
	}
	if nf := sf.SelectedNode; nf != nil {
		anonymity, _ := ParseAnonymity(nf.Anonymity)
		m.SelectedNode = &LatticeNode{
			MinLoss:        nf.MinLoss,
			MaxLoss:        nf.MaxLoss,
			Anonymity:      anonymity,
			Successors:     toTransformations(nf.Successors),
			Predecessors:   toTransformations(nf.Predecessors),
			Transformation: Transformation(nf.Transformation),
		}
	}
	return m
}

func toTransformations(in [][]int) []Transformation {
	out := make([]Transformation, len(in))
	for i, t := range in {
		out[i] = Transformation(t)
	}
	return out
}

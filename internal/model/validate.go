package model

import (
	"fmt"
	"strings"
)

// Validate checks all fields of a snapshot file and returns all problems at
// once. A format_version problem is reported on its own and wraps
// ErrUnsupportedFormat.
func Validate(sf *SnapshotFile) error {
	if err := checkFormatVersion(sf.FormatVersion); err != nil {
		return err
	}

	var errs []string

	if sf.Rows < 0 {
		errs = append(errs, fmt.Sprintf("rows: must be non-negative, got %d", sf.Rows))
	}
	if sf.AllowedOutliers < 0 || sf.AllowedOutliers > 1 {
		errs = append(errs, fmt.Sprintf("allowed_outliers: must be between 0.0 and 1.0, got %g", sf.AllowedOutliers))
	}

	roles := make(map[string]Role, len(sf.Attributes))
	heights := make(map[string]int)
	qis := 0
	for i, af := range sf.Attributes {
		field := fmt.Sprintf("attributes[%d]", i)
		if af.Name == "" {
			errs = append(errs, field+".name: must not be empty")
			continue
		}
		if _, dup := roles[af.Name]; dup {
			errs = append(errs, fmt.Sprintf("%s.name: duplicate attribute %q", field, af.Name))
			continue
		}
		role, err := ParseRole(af.Role)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s.role: %v", field, err))
		}
		roles[af.Name] = role
		if role == RoleQuasiIdentifying {
			qis++
		}
		if af.Hierarchy != nil {
			h, herrs := validateHierarchy(field+".hierarchy", af.Hierarchy)
			errs = append(errs, herrs...)
			heights[af.Name] = h
		}
	}

	seen := make(map[CriterionKind]bool)
	for i, cf := range sf.Criteria {
		errs = append(errs, validateCriterion(fmt.Sprintf("criteria[%d]", i), cf, roles, heights, seen)...)
	}

	if sf.Result != nil {
		r := sf.Result
		if r.TopMaxLoss < r.BottomMinLoss {
			errs = append(errs, fmt.Sprintf("result.top_max_loss: %g is below bottom_min_loss %g", r.TopMaxLoss, r.BottomMinLoss))
		}
		if r.Groups < 0 || r.OutlyingGroups < 0 {
			errs = append(errs, "result: group counts must be non-negative")
		}
		if r.OutlyingGroups > r.Groups {
			errs = append(errs, fmt.Sprintf("result.outlying_groups: %d exceeds groups %d", r.OutlyingGroups, r.Groups))
		}
	}

	if nf := sf.SelectedNode; nf != nil {
		if sf.Result == nil {
			errs = append(errs, "selected_node: requires result")
		}
		if _, ok := ParseAnonymity(nf.Anonymity); !ok {
			errs = append(errs, fmt.Sprintf("selected_node.anonymity: invalid value %q (must be anonymous, not-anonymous, or unknown)", nf.Anonymity))
		}
		if len(nf.Transformation) != qis {
			errs = append(errs, fmt.Sprintf("selected_node.transformation: has %d levels, want one per quasi-identifier (%d)", len(nf.Transformation), qis))
		}
		for _, level := range nf.Transformation {
			if level < 0 {
				errs = append(errs, "selected_node.transformation: levels must be non-negative")
				break
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("snapshot validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateHierarchy(field string, hf *HierarchyFile) (int, []string) {
	var errs []string
	height := hf.Height
	if len(hf.Rows) > 0 {
		height = len(hf.Rows[0])
		for i, row := range hf.Rows {
			if len(row) != height {
				errs = append(errs, fmt.Sprintf("%s.rows[%d]: has %d levels, want %d", field, i, len(row), height))
				break
			}
		}
	}
	if height < 0 {
		errs = append(errs, fmt.Sprintf("%s.height: must be non-negative, got %d", field, height))
	}
	minLevel, maxLevel := 0, height-1
	if hf.MinLevel != nil {
		minLevel = *hf.MinLevel
	}
	if hf.MaxLevel != nil {
		maxLevel = *hf.MaxLevel
	}
	if hf.MinLevel != nil && (minLevel < 0 || minLevel >= height) {
		errs = append(errs, fmt.Sprintf("%s.min_level: must be between 0 and %d, got %d", field, height-1, minLevel))
	}
	if hf.MaxLevel != nil && (maxLevel < 0 || maxLevel >= height) {
		errs = append(errs, fmt.Sprintf("%s.max_level: must be between 0 and %d, got %d", field, height-1, maxLevel))
	}
	if hf.MinLevel != nil && hf.MaxLevel != nil && minLevel > maxLevel {
		errs = append(errs, fmt.Sprintf("%s: min_level %d exceeds max_level %d", field, minLevel, maxLevel))
	}
	return height, errs
}

func validateCriterion(field string, cf CriterionFile, roles map[string]Role, heights map[string]int, seen map[CriterionKind]bool) []string {
	kind := ParseCriterionKind(cf.Kind)
	if kind == CriterionUnknown {
		// Unknown kinds are kept for newer producers and skipped when displayed.
		return nil
	}

	var errs []string
	if seen[kind] {
		errs = append(errs, fmt.Sprintf("%s.kind: %s configured more than once", field, kind))
	}
	seen[kind] = true

	if kind.GovernsAttribute() {
		role, ok := roles[cf.Attribute]
		switch {
		case cf.Attribute == "":
			errs = append(errs, fmt.Sprintf("%s.attribute: required for %s", field, kind))
		case !ok:
			errs = append(errs, fmt.Sprintf("%s.attribute: unknown attribute %q", field, cf.Attribute))
		case role != RoleSensitive:
			errs = append(errs, fmt.Sprintf("%s.attribute: %q is %s, want sensitive", field, cf.Attribute, role))
		}
	}

	switch kind {
	case CriterionDPresence:
		if cf.DMin < 0 || cf.DMax > 1 || cf.DMin > cf.DMax {
			errs = append(errs, fmt.Sprintf("%s: d-presence bounds must satisfy 0 <= dmin <= dmax <= 1, got (%g, %g)", field, cf.DMin, cf.DMax))
		}
	case CriterionKAnonymity:
		if cf.K < 1 {
			errs = append(errs, fmt.Sprintf("%s.k: must be at least 1, got %d", field, cf.K))
		}
	case CriterionDistinctLDiversity, CriterionEntropyLDiversity:
		if cf.L < 1 {
			errs = append(errs, fmt.Sprintf("%s.l: must be at least 1, got %d", field, cf.L))
		}
	case CriterionRecursiveCLDiversity:
		if cf.L < 1 {
			errs = append(errs, fmt.Sprintf("%s.l: must be at least 1, got %d", field, cf.L))
		}
		if cf.C <= 0 {
			errs = append(errs, fmt.Sprintf("%s.c: must be positive, got %g", field, cf.C))
		}
	case CriterionEqualDistanceTCloseness:
		if cf.T < 0 || cf.T > 1 {
			errs = append(errs, fmt.Sprintf("%s.t: must be between 0.0 and 1.0, got %g", field, cf.T))
		}
	case CriterionHierarchicalDistanceTCloseness:
		if cf.T < 0 || cf.T > 1 {
			errs = append(errs, fmt.Sprintf("%s.t: must be between 0.0 and 1.0, got %g", field, cf.T))
		}
		if _, ok := heights[cf.Attribute]; cf.Attribute != "" && !ok {
			errs = append(errs, fmt.Sprintf("%s.attribute: %q needs a hierarchy for hierarchical t-closeness", field, cf.Attribute))
		}
	}
	return errs
}

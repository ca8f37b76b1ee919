// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

package model

import "strings"

// CriterionKind identifies a privacy criterion variant.
type CriterionKind int

const (
	// CriterionUnknown is a criterion this build does not understand.
	CriterionUnknown CriterionKind = iota
	CriterionDPresence
	CriterionKAnonymity
	CriterionDistinctLDiversity
	CriterionEntropyLDiversity
	CriterionRecursiveCLDiversity
	CriterionEqualDistanceTCloseness
	CriterionHierarchicalDistanceTCloseness
)

var criterionKindNames = map[CriterionKind]string{
	CriterionDPresence:                      "d-presence",
	CriterionKAnonymity:                     "k-anonymity",
	CriterionDistinctLDiversity:             "distinct-l-diversity",
	CriterionEntropyLDiversity:              "entropy-l-diversity",
	CriterionRecursiveCLDiversity:           "recursive-cl-diversity",
	CriterionEqualDistanceTCloseness:        "equal-distance-t-closeness",
	CriterionHierarchicalDistanceTCloseness: "hierarchical-distance-t-closeness",
}

func (k CriterionKind) String() string {
	if s, ok := criterionKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseCriterionKind maps a criterion name to its kind. Names that are not
// recognized map to CriterionUnknown so that newer snapshot files still load.
func ParseCriterionKind(s string) CriterionKind {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range criterionKindNames {
		if name == s {
			return k
		}
	}
	return CriterionUnknown
}

// GovernsAttribute reports whether criteria of this kind apply to a single
// sensitive attribute.
func (k CriterionKind) GovernsAttribute() bool {
	switch k {
	case CriterionDistinctLDiversity, CriterionEntropyLDiversity, CriterionRecursiveCLDiversity,
		CriterionEqualDistanceTCloseness, CriterionHierarchicalDistanceTCloseness:
		return true
	default:
		return false
	}
}

// Criterion is a configured privacy criterion. Only the parameters of its
// Kind are meaningful.
type Criterion struct {
	Kind CriterionKind
	// Name is the kind as written by the producer. It is kept for unknown kinds.
	Name string
	// Attribute is the sensitive attribute governed by l-diversity and t-closeness.
	Attribute string

	K    int     // k-anonymity
	L    int     // l-diversity variants
	C    float64 // recursive (c,l)-diversity
	T    float64 // t-closeness variants
	DMin float64 // d-presence
	DMax float64 // d-presence
}

// IsTrivialPresence reports whether a d-presence criterion has the default
// (0, 1) bounds that are generated automatically for research subsets.
func (c Criterion) IsTrivialPresence() bool {
	return c.DMin == 0 && c.DMax == 1
}

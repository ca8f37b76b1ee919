// Copyright 2026 The Propview Authors
// SPDX-License-Identifier: MIT

package properties

import (
	"strconv"

	"github.com/anonkit/propview/internal/infoloss"
	"github.com/anonkit/propview/internal/messages"
	"github.com/anonkit/propview/internal/model"
)

// criterionOrder is the display order of criteria, independent of the order
// they were configured in.
var criterionOrder = []model.CriterionKind{
	model.CriterionDPresence,
	model.CriterionKAnonymity,
	model.CriterionDistinctLDiversity,
	model.CriterionEntropyLDiversity,
	model.CriterionRecursiveCLDiversity,
	model.CriterionEqualDistanceTCloseness,
	model.CriterionHierarchicalDistanceTCloseness,
}

// DescribeCriteria returns a tree with one root per configured privacy
// criterion, holding the criterion's parameters as children.
func DescribeCriteria(cfg *model.Configuration, opts Options) *Tree {
	b := newTreeBuilder()
	describeCriteria(b, cfg, opts.withDefaults())
	return b.build()
}

func describeCriteria(b *treeBuilder, cfg *model.Configuration, opts Options) {
	if cfg == nil {
		return
	}
	for _, kind := range criterionOrder {
		if c, ok := cfg.Criterion(kind); ok {
			describeCriterion(b, cfg, c, opts)
		}
	}
	for _, c := range cfg.Criteria {
		if c.Kind == model.CriterionUnknown {
			opts.Logger.Debug("skipping unrecognized privacy criterion", "kind", c.Name)
		}
	}
}

func describeCriterion(b *treeBuilder, cfg *model.Configuration, c model.Criterion, opts Options) {
	l := opts.label
	switch c.Kind {
	case model.CriterionDPresence:
		if c.IsTrivialPresence() {
			return
		}
		n := b.root(l(messages.DPresence), l(messages.DPresenceValue))
		b.child(n, l(messages.DMin), infoloss.FormatDouble(c.DMin))
		b.child(n, l(messages.DMax), infoloss.FormatDouble(c.DMax))

	case model.CriterionKAnonymity:
		n := b.root(l(messages.KAnonymity), l(messages.KAnonymityValue))
		b.child(n, l(messages.K), strconv.Itoa(c.K))

	case model.CriterionDistinctLDiversity:
		n := b.root(l(messages.DistinctLDiversity), l(messages.DistinctLDiversityValue))
		b.child(n, l(messages.L), strconv.Itoa(c.L))
		b.child(n, l(messages.CriterionAttribute), c.Attribute)

	case model.CriterionEntropyLDiversity:
		n := b.root(l(messages.EntropyLDiversity), l(messages.EntropyLDiversityValue))
		b.child(n, l(messages.L), strconv.Itoa(c.L))
		b.child(n, l(messages.CriterionAttribute), c.Attribute)

	case model.CriterionRecursiveCLDiversity:
		n := b.root(l(messages.RecursiveCLDiversity), l(messages.RecursiveCLDiversityValue))
		b.child(n, l(messages.C), infoloss.FormatDouble(c.C))
		b.child(n, l(messages.L), strconv.Itoa(c.L))
		b.child(n, l(messages.CriterionAttribute), c.Attribute)

	case model.CriterionEqualDistanceTCloseness:
		n := b.root(l(messages.EqualDistanceTCloseness), l(messages.EqualDistanceTClosenessValue))
		b.child(n, l(messages.T), infoloss.FormatDouble(c.T))
		b.child(n, l(messages.CriterionAttribute), c.Attribute)

	case model.CriterionHierarchicalDistanceTCloseness:
		n := b.root(l(messages.HierarchicalDistanceTCloseness), l(messages.HierarchicalDistanceTClosenessValue))
		b.child(n, l(messages.T), infoloss.FormatDouble(c.T))
		b.child(n, l(messages.CriterionAttribute), c.Attribute)
		height := ""
		if h := cfg.Hierarchy(c.Attribute); h != nil {
			height = strconv.Itoa(h.Height())
		}
		b.child(n, l(messages.Height), height)

	default:
		opts.Logger.Debug("no description for privacy criterion", "kind", c.Kind.String())
	}
}

package model

import (
	"strconv"
	"strings"
)

// Anonymity is the anonymity status of a lattice node.
type Anonymity int

const (
	AnonymityUnknown Anonymity = iota
	AnonymityAnonymous
	AnonymityNotAnonymous
)

func (a Anonymity) String() string {
	switch a {
	case AnonymityAnonymous:
		return "anonymous"
	case AnonymityNotAnonymous:
		return "not-anonymous"
	default:
		return "unknown"
	}
}

// ParseAnonymity converts a status name into an Anonymity.
func ParseAnonymity(s string) (Anonymity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "anonymous":
		return AnonymityAnonymous, true
	case "not-anonymous", "not_anonymous":
		return AnonymityNotAnonymous, true
	case "", "unknown":
		return AnonymityUnknown, true
	default:
		return AnonymityUnknown, false
	}
}

// Transformation holds one generalization level per quasi-identifying attribute.
type Transformation []int

// String renders the vector as a bracketed, comma separated list, e.g. "[1, 0, 2]".
func (t Transformation) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, level := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(level))
	}
	b.WriteByte(']')
	return b.String()
}

// LatticeNode is a single transformation in the anonymity lattice.
type LatticeNode struct {
	MinLoss        float64
	MaxLoss        float64
	Anonymity      Anonymity
	Successors     []Transformation
	Predecessors   []Transformation
	Transformation Transformation
}

// Lattice holds the loss bounds of the solution space.
type Lattice struct {
	// BottomMinLoss is the minimum information loss of the bottom node.
	BottomMinLoss float64
	// TopMaxLoss is the maximum information loss of the top node.
	TopMaxLoss float64
}

// Result is the outcome of an anonymization run.
type Result struct {
	Lattice        Lattice
	Groups         int
	OutlyingGroups int
}

package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Mapping key order does not take part in the comparison.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case LeafType:
		return compareLeaves(a, b)
	case SequenceType:
		return compareSequences(a, b)
	case MappingType:
		return compareMappings(a, b)
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Leaf < Sequence < Mapping
func rank(t Type) int {
	switch t {
	case LeafType:
		return 0
	case SequenceType:
		return 1
	case MappingType:
		return 2
	}
	return 100
}

func compareLeaves(a, b *Node) int {
	// Sub-rank: Int < Float < String
	ka, kb := leafRank(a.Kind()), leafRank(b.Kind())
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	switch a.Kind() {
	case IntKind:
		return cmp.Compare(*a.Int64, *b.Int64)
	case FloatKind:
		return cmp.Compare(*a.Float64, *b.Float64)
	default:
		return strings.Compare(a.String, b.String)
	}
}

func leafRank(k Kind) int {
	switch k {
	case IntKind:
		return 0
	case FloatKind:
		return 1
	default:
		return 2
	}
}

func compareSequences(a, b *Node) int {
	n := min(len(a.Values), len(b.Values))
	for i := range n {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareMappings(a, b *Node) int {
	ka := slices.Sorted(slices.Values(a.Fields))
	kb := slices.Sorted(slices.Values(b.Fields))
	n := min(len(ka), len(kb))
	for i := range n {
		if c := strings.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
		if c := Compare(a.Get(ka[i]), b.Get(kb[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}

// Package ir provides the in-memory representation of a linefold document.
//
// # Overview
//
// A document is a tree of *Node values. The tree is a recursive tagged union
// where values are placed in fields depending on the node type:
//
//   - LeafType: a single typed scalar (integer, float or string)
//   - MappingType: string keys to nodes, keys unique within a mapping
//   - SequenceType: an ordered list of nodes
//
// # Leaves
//
// A leaf's text is always in String. Numbers additionally carry Int64 or
// Float64; a leaf with neither is a string. InferScalar types raw text the
// way input lines are typed:
//
//	ir.InferScalar("42")    // integer 42
//	ir.InferScalar("007")   // integer 7
//	ir.InferScalar("1.5")   // float 1.5
//	ir.InferScalar("c:3")   // string "c:3"
//
// # Mappings
//
// For MappingType nodes, Fields[i] is the key for the value at Values[i], so
// there are always the same number of fields as values. Keys are unique;
// use Set to insert or replace. Key order is kept in memory but carries no
// meaning: Compare ignores it and encoders sort keys.
//
// # Paths
//
// A dotted path such as "a.b.c" names a nesting chain. FromPath turns a path
// and a value into a singleton chain of mappings:
//
//	m, _ := ir.FromPath(ir.SplitPath("a.b"), ir.FromInt(1)) // {a: {b: 1}}
//
// # Thread Safety
//
// Nodes are not safe for concurrent use.
package ir

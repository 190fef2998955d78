package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is a document tree node. Which fields are meaningful depends on Type.
type Node struct {
	Type Type

	// Mapping: Fields[i] is the key of Values[i].
	Fields []string
	// Mapping values or Sequence elements.
	Values []*Node

	// Leaf: exactly one of Int64 and Float64 is set for numbers,
	// neither for strings.
	String  string
	Int64   *int64
	Float64 *float64
}

func (y *Node) Kind() Kind {
	switch {
	case y.Int64 != nil:
		return IntKind
	case y.Float64 != nil:
		return FloatKind
	default:
		return StringKind
	}
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Int64 = nil
	dst.Float64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Fields = nil
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	dst.Values = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   LeafType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:   LeafType,
		String: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    LeafType,
		String:  strconv.FormatFloat(f, 'g', -1, 64),
		Float64: &f,
	}
}

// Mapping returns an empty mapping.
func Mapping() *Node {
	return &Node{Type: MappingType}
}

func FromMap(yMap map[string]*Node) *Node {
	res := Mapping()
	res.Fields = make([]string, 0, len(yMap))
	res.Values = make([]*Node, 0, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for _, key := range keys {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, yMap[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a mapping in the given order. Later duplicates of a key
// replace earlier ones.
func FromKeyVals(kvs []KeyVal) *Node {
	res := Mapping()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   SequenceType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

// Index returns the position of field in a mapping, or -1.
func (y *Node) Index(field string) int {
	return slices.Index(y.Fields, field)
}

func Get(y *Node, field string) *Node {
	i := y.Index(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Get(field string) *Node {
	return Get(y, field)
}

// Set replaces the value at field or appends a new entry.
func (y *Node) Set(field string, v *Node) {
	if i := y.Index(field); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

func (y *Node) Len() int {
	return len(y.Values)
}

// Clear removes all entries of a mapping or sequence in place.
func (y *Node) Clear() {
	y.Fields = nil
	y.Values = nil
}

// Drain empties y and returns its former fields and values.
func (y *Node) Drain() ([]string, []*Node) {
	fields, values := y.Fields, y.Values
	y.Clear()
	return fields, values
}

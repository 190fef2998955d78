package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// PathSep separates the segments of a dotted path.
const PathSep = "."

// SplitPath splits a dotted path into its segments. It never returns an
// empty slice: "" yields a single empty segment.
func SplitPath(dotted string) []string {
	return strings.Split(dotted, PathSep)
}

// FromPath builds a chain of single key mappings mirroring path, the last of
// which holds value. FromPath([a b c], v) is {a: {b: {c: v}}}.
func FromPath(path []string, value *Node) (*Node, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	res := value
	for i := len(path) - 1; i >= 0; i-- {
		m := Mapping()
		m.Set(path[i], res)
		res = m
	}
	return res, nil
}

// JoinPath appends field to a dotted path prefix, quoting the field if it
// would otherwise be ambiguous.
func JoinPath(prefix, field string) string {
	f := pathString(field)
	if prefix == "" {
		return f
	}
	return prefix + PathSep + f
}

// IndexPath appends a sequence index to a dotted path prefix.
func IndexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// Leaves flattens y into dotted paths of every leaf below it.
func (y *Node) Leaves() map[string]*Node {
	res := map[string]*Node{}
	y.leaves("", res)
	return res
}

func (y *Node) leaves(prefix string, dst map[string]*Node) {
	switch y.Type {
	case LeafType:
		dst[prefix] = y
	case MappingType:
		for i, field := range y.Fields {
			y.Values[i].leaves(JoinPath(prefix, field), dst)
		}
	case SequenceType:
		for i, v := range y.Values {
			v.leaves(IndexPath(prefix, i), dst)
		}
	default:
		panic(fmt.Sprintf("leaves: %s", y.Type))
	}
}

package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/linefold/format"
	"github.com/signadot/linefold/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ir.Kind, ColorAttr, string) string
}

// Encode writes node to w followed by a newline. Mapping keys are written
// in sorted order, so equal documents always encode to the same text.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.LeafType:
		return writeLeaf(w, node, es)
	case ir.MappingType:
		if len(node.Fields) == 0 {
			return writeColored(w, es, ir.MappingType, ir.StringKind, SepColor, "{}")
		}
		if err := writeColored(w, es, ir.MappingType, ir.StringKind, SepColor, "{"); err != nil {
			return err
		}
		es.depth++
		for i, j := range sortedFields(node) {
			if i > 0 {
				if err := writeColored(w, es, ir.MappingType, ir.StringKind, SepColor, ","); err != nil {
					return err
				}
			}
			if err := writeNL(w, es); err != nil {
				return err
			}
			key, err := quote(node.Fields[j])
			if err != nil {
				return err
			}
			if err := writeColored(w, es, ir.MappingType, ir.StringKind, FieldColor, key); err != nil {
				return err
			}
			sep := ":"
			if es.indent > 0 {
				sep = ": "
			}
			if err := writeColored(w, es, ir.MappingType, ir.StringKind, SepColor, sep); err != nil {
				return err
			}
			if err := encodeJSON(node.Values[j], w, es); err != nil {
				return err
			}
		}
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
		return writeColored(w, es, ir.MappingType, ir.StringKind, SepColor, "}")
	case ir.SequenceType:
		if len(node.Values) == 0 {
			return writeColored(w, es, ir.SequenceType, ir.StringKind, SepColor, "[]")
		}
		if err := writeColored(w, es, ir.SequenceType, ir.StringKind, SepColor, "["); err != nil {
			return err
		}
		es.depth++
		for i, v := range node.Values {
			if i > 0 {
				if err := writeColored(w, es, ir.SequenceType, ir.StringKind, SepColor, ","); err != nil {
					return err
				}
			}
			if err := writeNL(w, es); err != nil {
				return err
			}
			if err := encodeJSON(v, w, es); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
		return writeColored(w, es, ir.SequenceType, ir.StringKind, SepColor, "]")
	default:
		return fmt.Errorf("%w: node type %s", ErrEncoding, node.Type)
	}
}

func writeLeaf(w io.Writer, node *ir.Node, es *EncState) error {
	var (
		s   string
		err error
	)
	switch node.Kind() {
	case ir.IntKind:
		s = strconv.FormatInt(*node.Int64, 10)
	case ir.FloatKind:
		s, err = formatFloat(*node.Float64)
	default:
		s, err = quote(node.String)
	}
	if err != nil {
		return err
	}
	return writeColored(w, es, ir.LeafType, node.Kind(), ValueColor, s)
}

// formatFloat keeps a decimal point or exponent in the output so floats
// decode back as floats. JSON has no non-finite numbers; those are written
// as strings.
func formatFloat(f float64) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return quote(strconv.FormatFloat(f, 'g', -1, 64))
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}

func quote(s string) (string, error) {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func sortedFields(node *ir.Node) []int {
	idx := make([]int, len(node.Fields))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int {
		return strings.Compare(node.Fields[a], node.Fields[b])
	})
	return idx
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeColored(w io.Writer, es *EncState, t ir.Type, k ir.Kind, a ColorAttr, s string) error {
	if es.Color == nil {
		return writeString(w, s)
	}
	return writeString(w, es.Color(t, k, a, s))
}

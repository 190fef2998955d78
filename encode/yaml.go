package encode

import (
	"fmt"
	"io"

	"github.com/signadot/linefold/ir"

	"github.com/goccy/go-yaml"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := yamlValue(node)
	if err != nil {
		return err
	}
	indent := es.indent
	if indent == 0 {
		indent = 2
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(indent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, string(d))
}

// yamlValue converts node to values go-yaml encodes in a stable order.
func yamlValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.LeafType:
		switch node.Kind() {
		case ir.IntKind:
			return *node.Int64, nil
		case ir.FloatKind:
			return *node.Float64, nil
		default:
			return node.String, nil
		}
	case ir.MappingType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for _, j := range sortedFields(node) {
			v, err := yamlValue(node.Values[j])
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: node.Fields[j], Value: v})
		}
		return res, nil
	case ir.SequenceType:
		res := make([]any, len(node.Values))
		for i, yv := range node.Values {
			v, err := yamlValue(yv)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: node type %s", ErrEncoding, node.Type)
	}
}

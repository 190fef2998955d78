package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// FromJSON decodes JSON text into a document. Integral numbers become
// integer leaves and other numbers float leaves. Booleans become string
// leaves, as they would when read from a line. JSON null has no
// representation and is an error.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return FromAny(v)
}

// FromAny converts the result of decoding JSON with UseNumber into a node.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, xv := range x {
			n, err := FromAny(xv)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			m[k] = n
		}
		return FromMap(m), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, xv := range x {
			n, err := FromAny(xv)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s: %w", ErrParse, x, err)
		}
		return FromFloat(f), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromString(strconv.FormatBool(x)), nil
	case int64:
		return FromInt(x), nil
	case int:
		return FromInt(int64(x)), nil
	case float64:
		return FromFloat(x), nil
	case nil:
		return nil, fmt.Errorf("%w: null", ErrParse)
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrParse, v)
	}
}

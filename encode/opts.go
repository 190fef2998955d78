package encode

import "github.com/signadot/linefold/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent sets the number of spaces per nesting level. 0 encodes
// JSON on a single line.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = max(n, 0) }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

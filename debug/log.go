package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/linefold/encode"
	"github.com/signadot/linefold/ir"
)

// Logf writes to stderr, rendering documents and decoded JSON values as text.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = encode.MustString(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

package encode

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"
)

// SameJSON reports whether two JSON texts decode to the same value, ignoring
// object key order, formatting, number spelling (2.0 and 2) and string
// escapes. Invalid JSON is never the same as anything.
func SameJSON(a, b []byte) bool {
	na, err := normalizeJSON(a)
	if err != nil {
		return false
	}
	nb, err := normalizeJSON(b)
	if err != nil {
		return false
	}
	return jsonpatch.Equal(na, nb)
}

// normalizeJSON re-encodes d so that equal values have equal leaf bytes.
func normalizeJSON(d []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

package ir

import (
	"strconv"
	"strings"
)

// InferScalar returns a leaf typed from raw text: a base 10 integer if raw
// parses as one, else a float if it parses as one, else the string itself.
// Leading zeros are accepted, so "007" is the integer 7. Float syntax is
// decimal only: digit separators ("1_000") and hex floats ("0x1p4") stay
// strings.
func InferScalar(raw string) *Node {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return FromInt(i)
	}
	if decimalFloat(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return FromFloat(f)
		}
	}
	return FromString(raw)
}

// decimalFloat rejects the Go literal forms strconv.ParseFloat accepts
// beyond plain decimal notation.
func decimalFloat(raw string) bool {
	if strings.Contains(raw, "_") {
		return false
	}
	s := raw
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	return !(len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'))
}

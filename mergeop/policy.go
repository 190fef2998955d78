package mergeop

import (
	"fmt"
	"strings"
)

// Policy decides what happens when a mapping is merged into an existing
// sequence.
type Policy int

const (
	// GenerateError rejects the merge with ErrPolicyViolation.
	GenerateError Policy = iota
	// MergeDictInArray appends the mapping to the sequence:
	//
	//	{"a": [1,2,3]} + a.b:4 = {"a": [1,2,3,{"b":4}]}
	MergeDictInArray
	// MakeArrayAsDictValue moves the sequence under the "array" key of a
	// new mapping and merges the incoming mapping into that:
	//
	//	{"a": [1,2,3]} + a.b:4 = {"a": {"array": [1,2,3], "b": 4}}
	MakeArrayAsDictValue
)

// ArrayKey holds the prior sequence under MakeArrayAsDictValue.
const ArrayKey = "array"

func Policies() []Policy {
	return []Policy{GenerateError, MergeDictInArray, MakeArrayAsDictValue}
}

// ParsePolicy accepts the short names "error", "merge" and "wrap" as well as
// the constant names, case insensitively.
func ParsePolicy(v string) (Policy, error) {
	p, ok := map[string]Policy{
		"error":                    GenerateError,
		"generate-error":           GenerateError,
		"generateerror":            GenerateError,
		"merge":                    MergeDictInArray,
		"merge-dict-in-array":      MergeDictInArray,
		"mergedictinarray":         MergeDictInArray,
		"wrap":                     MakeArrayAsDictValue,
		"make-array-as-dict-value": MakeArrayAsDictValue,
		"makearrayasdictvalue":     MakeArrayAsDictValue,
	}[strings.ToLower(v)]
	if ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadPolicy, v)
}

func (p Policy) String() string {
	d, err := p.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case GenerateError:
		return []byte("error"), nil
	case MergeDictInArray:
		return []byte("merge"), nil
	case MakeArrayAsDictValue:
		return []byte("wrap"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a policy>", p)
	}
}

func (p *Policy) UnmarshalText(d []byte) error {
	pp, err := ParsePolicy(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

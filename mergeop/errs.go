package mergeop

import (
	"errors"
	"fmt"

	"github.com/signadot/linefold/ir"
)

var (
	// ErrPolicyViolation is returned when a mapping meets a sequence under
	// GenerateError.
	ErrPolicyViolation = errors.New("mapping merged into sequence")
	// ErrUnsupportedMerge is returned for type pairs with no defined
	// resolution: any incoming sequence, and a leaf merged into a mapping.
	ErrUnsupportedMerge = errors.New("unsupported merge")
	ErrBadPolicy        = errors.New("bad merge policy")
)

// MergeError reports the collision a merge stopped at.
type MergeError struct {
	Path     string
	Existing ir.Type
	Incoming ir.Type
	Policy   Policy
	Err      error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("%s: cannot merge %s into %s at %q (policy %s)",
		e.Err, e.Incoming, e.Existing, e.Path, e.Policy)
}

func (e *MergeError) Unwrap() error {
	return e.Err
}

// Package mergeop folds one document mapping into another.
//
// Merge consumes its source mapping and resolves each key collision by the
// types of the two values involved. The only collision with more than one
// reasonable outcome, a mapping arriving where a sequence already is, is
// decided by a Policy.
//
// Failures are reported as *MergeError, which wraps ErrPolicyViolation or
// ErrUnsupportedMerge and carries the dotted path of the collision.
package mergeop

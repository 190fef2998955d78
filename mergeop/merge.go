package mergeop

import (
	"github.com/signadot/linefold/debug"
	"github.com/signadot/linefold/ir"
)

// ValueKey holds a leaf's prior value when a mapping is merged into it.
const ValueKey = "value"

// Collision describes a key present on both sides of a merge.
type Collision struct {
	Path     string
	Existing *ir.Node
	Incoming *ir.Node
}

type MergeConfig struct {
	Policy      Policy
	OnCollision func(*Collision)
}

type MergeOpt func(*MergeConfig)

func MergePolicy(p Policy) MergeOpt {
	return func(c *MergeConfig) { c.Policy = p }
}

// OnCollision registers f to be called before each collision is resolved.
func OnCollision(f func(*Collision)) MergeOpt {
	return func(c *MergeConfig) { c.OnCollision = f }
}

// Merge folds the mapping src into the mapping dst, consuming src.
//
// Keys absent from dst are moved over as is. Collisions are resolved by the
// types of the existing and incoming values:
//
//	leaf     + leaf     -> [existing, incoming]
//	leaf     + mapping  -> {"value": existing} merged with incoming
//	mapping  + mapping  -> recursive merge
//	sequence + leaf     -> incoming appended
//	sequence + mapping  -> decided by policy
//
// Every other pair fails with ErrUnsupportedMerge. Merge stops at the first
// error: keys handled before it stay merged, the failing key leaves dst as
// it was.
func Merge(dst, src *ir.Node, policy Policy) error {
	return MergeWith(dst, src, MergePolicy(policy))
}

func MergeWith(dst, src *ir.Node, opts ...MergeOpt) error {
	cfg := &MergeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return merge(dst, src, "", cfg)
}

func merge(dst, src *ir.Node, path string, cfg *MergeConfig) error {
	if dst.Type != ir.MappingType || src.Type != ir.MappingType {
		return &MergeError{
			Path:     path,
			Existing: dst.Type,
			Incoming: src.Type,
			Policy:   cfg.Policy,
			Err:      ErrUnsupportedMerge,
		}
	}
	fields, values := src.Drain()
	for i, field := range fields {
		incoming := values[i]
		fieldPath := ir.JoinPath(path, field)
		j := dst.Index(field)
		if j == -1 {
			if debug.Merge() {
				debug.Logf("merge insert %s %s\n", fieldPath, incoming.Type)
			}
			dst.Fields = append(dst.Fields, field)
			dst.Values = append(dst.Values, incoming)
			continue
		}
		existing := dst.Values[j]
		if debug.Merge() {
			debug.Logf("merge collision at %s: %s <- %s\n", fieldPath, existing.Type, incoming.Type)
		}
		if cfg.OnCollision != nil {
			cfg.OnCollision(&Collision{Path: fieldPath, Existing: existing, Incoming: incoming})
		}
		res, err := resolve(existing, incoming, fieldPath, cfg)
		if err != nil {
			return err
		}
		dst.Values[j] = res
	}
	return nil
}

// resolve returns the node replacing existing. It only mutates existing
// once the resolution can no longer fail.
func resolve(existing, incoming *ir.Node, path string, cfg *MergeConfig) (*ir.Node, error) {
	switch existing.Type {
	case ir.LeafType:
		switch incoming.Type {
		case ir.LeafType:
			return ir.FromSlice([]*ir.Node{existing, incoming}), nil
		case ir.MappingType:
			// incoming keys merge with the normal rules, so an incoming
			// "value" collides with the promoted leaf instead of replacing it
			promoted := ir.Mapping()
			promoted.Set(ValueKey, existing)
			if err := merge(promoted, incoming, path, cfg); err != nil {
				return nil, err
			}
			return promoted, nil
		}
	case ir.MappingType:
		if incoming.Type == ir.MappingType {
			if err := merge(existing, incoming, path, cfg); err != nil {
				return nil, err
			}
			return existing, nil
		}
	case ir.SequenceType:
		switch incoming.Type {
		case ir.LeafType:
			existing.Append(incoming)
			return existing, nil
		case ir.MappingType:
			return mappingIntoSequence(existing, incoming, path, cfg)
		}
	}
	return nil, &MergeError{
		Path:     path,
		Existing: existing.Type,
		Incoming: incoming.Type,
		Policy:   cfg.Policy,
		Err:      ErrUnsupportedMerge,
	}
}

func mappingIntoSequence(existing, incoming *ir.Node, path string, cfg *MergeConfig) (*ir.Node, error) {
	switch cfg.Policy {
	case GenerateError:
		return nil, &MergeError{
			Path:     path,
			Existing: existing.Type,
			Incoming: incoming.Type,
			Policy:   cfg.Policy,
			Err:      ErrPolicyViolation,
		}
	case MergeDictInArray:
		existing.Append(incoming)
		return existing, nil
	case MakeArrayAsDictValue:
		wrapped := ir.Mapping()
		wrapped.Set(ArrayKey, existing.Clone())
		if err := merge(wrapped, incoming, path, cfg); err != nil {
			return nil, err
		}
		return wrapped, nil
	default:
		return nil, &MergeError{
			Path:     path,
			Existing: existing.Type,
			Incoming: incoming.Type,
			Policy:   cfg.Policy,
			Err:      ErrBadPolicy,
		}
	}
}

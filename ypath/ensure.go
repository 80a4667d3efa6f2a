package ypath

import (
	"go.ypath.dev/ypath/node"
	"go.ypath.dev/ypath/selector"
)

// slot is a writable reference to wherever a node currently lives: a map
// entry, a sequence element, or the root. set overwrites that location,
// which is how Ensure promotes a Null placeholder into a Map or Sequence --
// the node package's Key/IndexSlot helpers mutate shared AST state directly
// for everything except a change of concrete node type, and a type change
// is exactly when set's closure is needed.
type slot struct {
	value *node.Node
	set   func(*node.Node)
}

// applyEnsureKey is EnsureNodeApplyKey from yaml-path.cpp: apply a Key
// selector for Ensure's purposes, creating a null-valued entry where one is
// missing instead of failing NodeNotFound. A Null or Map slot is promoted
// to a Map if needed and produces exactly one child slot; a Sequence, only
// when recurse is true, distributes over its Null/Map elements (one level
// deep, matching the original's non-recursive sub-call); anything else
// contributes nothing.
func applyEnsureKey(s slot, key string, recurse bool) []slot {
	cur := s.value

	switch {
	case !cur.IsDefined() || cur.Kind() == node.KindNull || cur.Kind() == node.KindMapping:
		m := cur
		if !cur.IsGrowableMapping() {
			m = cur.EnsureMapping()
			s.set(m)
		}

		v, set := m.KeySlot(key)

		return []slot{{value: v, set: set}}

	case cur.Kind() == node.KindSequence && recurse:
		var out []slot

		seq := cur

		for i, el := range cur.Elements() {
			if el.Kind() != node.KindNull && el.Kind() != node.KindMapping {
				continue
			}

			idx := i
			elSlot := slot{
				value: el,
				set:   func(v *node.Node) { seq.SetIndex(idx, v) },
			}

			out = append(out, applyEnsureKey(elSlot, key, false)...)
		}

		return out

	default:
		return nil
	}
}

func ensureSelectorNotSupported(kvp selector.KVPair) bool {
	return kvp.Op == selector.OpNotEqual ||
		kvp.Key.Starry || kvp.Key.NoCase || kvp.Key.Required ||
		kvp.Value.Starry || kvp.Value.NoCase || kvp.Value.Required
}

func ensureErr(code Code, path string) error {
	return &Error{Code: code, Diag: Diagnostics{Code: code, FullPath: path}}
}

// Ensure walks path against n, creating missing map entries and sequence
// slots instead of failing NodeNotFound, and assigning the value of any
// Equal part encountered along the way. It supplements spec.md per
// SPEC_FULL.md §5, resolving the grammar-intersection Open Question
// directly from yaml-path.cpp's Ensure: a MapFilter part using NotEqual,
// starry, noCase, or required is rejected with SelectorNotSupported, and a
// Select part behaves exactly like a Key.
//
// Mutations to existing maps and sequences reached along the path are
// visible through n (and through any other handle aliasing the same
// subtree), since those node kinds share their underlying AST storage. The
// one exception is n itself: if n is Null or undefined, Ensure cannot
// replace what n points to, so the returned node -- not n -- is the one
// that reflects any root-level promotion. [Create] exists for exactly that
// case.
func Ensure(n *node.Node, path string, args ...Arg) (*node.Node, error) {
	p := selector.NewParser(path, args...)

	root := n
	frontier := []slot{{
		value: root,
		set:   func(v *node.Node) { root = v },
	}}

	for {
		sel, err := p.Next()
		if err != nil {
			pe, _ := err.(*selector.ParseError)
			c := codeFromParseError(pe.Kind)

			return node.Undefined(), &Error{Code: c, Diag: Diagnostics{
				Code: c, FullPath: path, ScanOffset: pe.Offset,
				Expected: pe.Expected, FoundToken: pe.Found, BoundArg: pe.BoundArg,
			}}
		}

		if sel.Kind == selector.KindNone {
			break
		}

		switch sel.Kind {
		case selector.KindKey:
			var next []slot

			for _, s := range frontier {
				next = append(next, applyEnsureKey(s, sel.Key, true)...)
			}

			if len(next) == 0 {
				return node.Undefined(), ensureErr(Internal, path)
			}

			frontier = next

		case selector.KindIndex:
			var next []slot

			for _, s := range frontier {
				cur := s.value
				if cur.IsDefined() && cur.Kind() != node.KindNull && cur.Kind() != node.KindSequence {
					continue
				}

				seq := cur.EnsureSequence()
				if seq != cur {
					s.set(seq)
				}

				v, set := seq.IndexSlot(int(sel.Index))
				next = append(next, slot{value: v, set: set})
			}

			if len(next) == 0 {
				return node.Undefined(), ensureErr(Internal, path)
			}

			frontier = next

		case selector.KindMapFilter:
			next, haveAssignment, code := applyEnsureMapFilter(frontier, sel.MapFilter)
			if code != OK {
				return node.Undefined(), ensureErr(code, path)
			}

			if len(next) == 0 {
				if haveAssignment {
					return node.NewNull(), nil
				}

				return node.Undefined(), ensureErr(InvalidNodeType, path)
			}

			frontier = next
		}
	}

	switch len(frontier) {
	case 0:
		return node.NewNull(), nil
	case 1:
		return frontier[0].value, nil
	default:
		elems := make([]*node.Node, len(frontier))
		for i, s := range frontier {
			elems[i] = s.value
		}

		return node.NewSequence(elems...), nil
	}
}

// applyEnsureMapFilter applies one MapFilter selector across the whole
// frontier during Ensure: Select parts grow the frontier the same way a Key
// selector would, and Equal/Exists parts assign (creating the key first,
// overwriting only a Null or absent value, same as the original).
func applyEnsureMapFilter(frontier []slot, parts []selector.KVPair) (next []slot, haveAssignment bool, code Code) {
	for _, kvp := range parts {
		if ensureSelectorNotSupported(kvp) {
			return nil, false, SelectorNotSupported
		}

		if kvp.Op == selector.OpSelect {
			for _, s := range frontier {
				next = append(next, applyEnsureKey(s, kvp.Key.Token, true)...)
			}

			continue
		}

		var assignTo []slot

		for _, s := range frontier {
			assignTo = append(assignTo, applyEnsureKey(s, kvp.Key.Token, true)...)
		}

		haveAssignment = haveAssignment || len(assignTo) > 0

		if kvp.Op == selector.OpExists {
			continue
		}

		for _, s := range assignTo {
			if !s.value.IsDefined() || s.value.Kind() == node.KindNull {
				s.set(node.NewString(kvp.Value.Token))
			}
		}
	}

	return next, haveAssignment, OK
}

// Create builds a brand-new document from path, as if Ensure had been
// called against a Null root.
func Create(path string, args ...Arg) (*node.Node, error) {
	return Ensure(node.NewNull(), path, args...)
}

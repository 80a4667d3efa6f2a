package ypath

import (
	"go.ypath.dev/ypath/node"
	"go.ypath.dev/ypath/selector"
)

// SelectByKey applies a Key selector to n, per spec.md §4.4.
//
//   - Map: looks up key, failing NodeNotFound if absent.
//   - Sequence: distributes key over every element that is itself a map
//     containing it, building a new sequence of the matched values; fails
//     NodeNotFound if nothing matched.
//   - Anything else: InvalidNodeType.
func SelectByKey(n *node.Node, key string) (*node.Node, Code) {
	switch n.Kind() {
	case node.KindMapping:
		v := n.Lookup(key)
		if !v.IsDefined() {
			return n, NodeNotFound
		}

		return v, OK

	case node.KindSequence:
		var matched []*node.Node

		for _, el := range n.Elements() {
			if el.Kind() != node.KindMapping {
				continue
			}

			v := el.Lookup(key)
			if v.IsDefined() {
				matched = append(matched, v)
			}
		}

		if len(matched) == 0 {
			return n, NodeNotFound
		}

		return node.NewSequence(matched...), OK

	default:
		return n, InvalidNodeType
	}
}

// SelectByIndex applies an Index selector to n, per spec.md §4.4.
//
//   - Scalar or Map: index 0 is the identity no-op; any other index fails
//     NodeNotFound.
//   - Sequence: in-range indices select the element; out-of-range fails
//     NodeNotFound.
//   - Anything else (Null, Undefined): InvalidNodeType.
func SelectByIndex(n *node.Node, index uint64) (*node.Node, Code) {
	switch n.Kind() {
	case node.KindScalar, node.KindMapping:
		if index != 0 {
			return n, NodeNotFound
		}

		return n, OK

	case node.KindSequence:
		if index >= uint64(n.Len()) {
			return n, NodeNotFound
		}

		return n.Index(int(index)), OK

	default:
		return n, InvalidNodeType
	}
}

// strIsMatch implements spec.md §4.4's string matching contract: the
// all-star wildcard matches anything, non-starry tokens require an exact
// length match, starry tokens require the candidate to be at least as long
// as the token, and the comparison is byte-wise (optionally ASCII
// case-folded).
func strIsMatch(tok selector.KVToken, s string) bool {
	if tok.IsAllStar() {
		return true
	}

	if !tok.Starry && len(s) != len(tok.Token) {
		return false
	}

	if tok.Starry && len(s) < len(tok.Token) {
		return false
	}

	cmpLen := len(tok.Token)
	if len(s) < cmpLen {
		cmpLen = len(s)
	}

	if tok.NoCase {
		for i := 0; i < cmpLen; i++ {
			if asciiLower(s[i]) != asciiLower(tok.Token[i]) {
				return false
			}
		}

		return true
	}

	return s[:cmpLen] == tok.Token[:cmpLen]
}

// asciiLower maps an ASCII upper-case letter to lower case and returns any
// other byte unchanged.
func asciiLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}

// keyIsMatch reports whether a map key's literal text matches a KVToken.
func keyIsMatch(tok selector.KVToken, key string) bool {
	return strIsMatch(tok, key)
}

// valueIsMatch implements spec.md §4.4's ValueIsMatch: Exists always holds,
// Equal requires the value to be a scalar matching the token, and NotEqual
// is its negation.
func valueIsMatch(kvp selector.KVPair, value *node.Node) bool {
	if kvp.Op == selector.OpExists {
		return true
	}

	eq := value.Kind() == node.KindScalar && func() bool {
		text, _ := value.Text()

		return strIsMatch(kvp.Value, text)
	}()

	if kvp.Op == selector.OpNotEqual {
		return !eq
	}

	return eq
}

// applyMapFilterToMap evaluates a MapFilter's conditions-then-selects
// against a single mapping node, per spec.md §4.4's ApplyMapFilter.
func applyMapFilterToMap(n *node.Node, parts []selector.KVPair) (*node.Node, Code) {
	pairs := n.Pairs()

	i := 0
	anyMatch := false

	// Conditions are sorted to the front by the parser (Invariant 4).
	for ; i < len(parts) && parts[i].Op != selector.OpSelect; i++ {
		kvp := parts[i]

		scanKeys := kvp.Key.Starry || kvp.Key.NoCase

		keyFound := false
		matched := false

		if scanKeys {
			for _, p := range pairs {
				if !keyIsMatch(kvp.Key, p.Key) {
					continue
				}

				keyFound = true

				if valueIsMatch(kvp, p.Value) {
					matched = true

					break
				}
			}
		} else {
			v := n.Lookup(kvp.Key.Token)
			if v.IsDefined() {
				keyFound = true

				if valueIsMatch(kvp, v) {
					matched = true
				}
			}
		}

		if !keyFound && kvp.Key.Required {
			return n, NodeNotFound
		}

		if matched {
			anyMatch = true
		}
	}

	if !anyMatch && i > 0 {
		return n, NodeNotFound
	}

	if i == len(parts) {
		return n, OK
	}

	var result []node.Pair

	for ; i < len(parts); i++ {
		kvp := parts[i]

		if kvp.Key.IsAllStar() {
			return n, OK
		}

		scanKeys := kvp.Key.Starry || kvp.Key.NoCase

		if scanKeys {
			for _, p := range pairs {
				if keyIsMatch(kvp.Key, p.Key) {
					result = append(result, p)
				}
			}

			continue
		}

		v := n.Lookup(kvp.Key.Token)
		if v.IsDefined() {
			result = append(result, node.Pair{Key: kvp.Key.Token, Value: v})
		}
	}

	if len(result) == 0 {
		return n, NodeNotFound
	}

	return node.NewMapping(result...), OK
}

// ApplyMapFilter applies a MapFilter selector to n, per spec.md §4.4's
// "ApplyMapFilter at the root node": a Map is filtered/projected directly,
// a Sequence is filtered element-wise (retaining surviving projected map
// elements), and anything else is InvalidNodeType.
func ApplyMapFilter(n *node.Node, parts []selector.KVPair) (*node.Node, Code) {
	switch n.Kind() {
	case node.KindMapping:
		return applyMapFilterToMap(n, parts)

	case node.KindSequence:
		var survivors []*node.Node

		for _, el := range n.Elements() {
			if el.Kind() != node.KindMapping {
				continue
			}

			projected, code := applyMapFilterToMap(el, parts)
			if code != OK {
				continue
			}

			survivors = append(survivors, projected)
		}

		if len(survivors) == 0 {
			return n, NodeNotFound
		}

		return node.NewSequence(survivors...), OK

	default:
		return n, InvalidNodeType
	}
}

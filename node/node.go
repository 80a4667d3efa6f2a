package node

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

// ErrInvalidYAML is returned by [Load] when the input cannot be parsed.
var ErrInvalidYAML = errors.New("invalid yaml")

// Kind classifies a [Node], mirroring spec.md's three YAML node kinds plus
// the Null and Undefined cases the resolver needs to distinguish.
type Kind int

const (
	// KindUndefined marks the sentinel returned by [Undefined] and by any
	// lookup/index operation that found nothing.
	KindUndefined Kind = iota
	// KindNull marks an explicitly present null node (`~`, `null`, or an
	// omitted map value).
	KindNull
	// KindScalar marks a string, integer, float, bool, or other leaf value.
	KindScalar
	// KindSequence marks a YAML sequence (list).
	KindSequence
	// KindMapping marks a YAML mapping (or a single key-value pair, which
	// goccy/go-yaml represents as its own node type).
	KindMapping
)

// String returns the name used in diagnostic messages, matching
// yaml-path.cpp's MapNodeTypeName table.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "(null)"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "map"
	default:
		return "(undefined)"
	}
}

// Node is an immutable handle onto a position in a YAML document. Multiple
// Nodes may alias the same underlying AST subtree (e.g. after an anchor is
// resolved), matching the shared-subtree semantics spec.md §3 requires of
// the external node type.
type Node struct {
	raw     ast.Node
	anchors map[string]ast.Node
}

// Undefined returns the sentinel node that is falsy in a boolean context via
// [Node.IsDefined]; it is the "no match" result every selector operator
// returns instead of a Go error value.
func Undefined() *Node {
	return &Node{}
}

// IsDefined reports whether n holds an actual document position. A nil
// receiver is treated as undefined, so callers can chain lookups freely.
func (n *Node) IsDefined() bool {
	return n != nil && n.raw != nil
}

// Load parses a YAML document (preserving comments, matching the teacher's
// own parser.ParseBytes call) and returns its root node.
func Load(data []byte) (*Node, error) {
	file, err := parser.ParseBytes(data, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return &Node{raw: newNullNode()}, nil
	}

	anchors := buildAnchorMap(file.Docs[0].Body)

	return &Node{raw: resolve(file.Docs[0].Body, anchors), anchors: anchors}, nil
}

// buildAnchorMap walks the document and records every anchor definition, the
// same traversal magicschema.buildAnchorMap performs while building a schema
// instead of answering structural queries.
func buildAnchorMap(root ast.Node) map[string]ast.Node {
	anchors := make(map[string]ast.Node)

	ast.Walk(anchorVisitor{anchors: anchors}, root)

	return anchors
}

type anchorVisitor struct {
	anchors map[string]ast.Node
}

func (v anchorVisitor) Visit(n ast.Node) ast.Visitor {
	if anchor, ok := n.(*ast.AnchorNode); ok {
		v.anchors[anchor.Name.String()] = anchor.Value
	}

	return v
}

// resolve unwraps tag, anchor, and alias wrappers down to the underlying
// value node. An alias that cannot be resolved yields nil (treated as an
// undefined node by the wrapper constructors below).
func resolve(n ast.Node, anchors map[string]ast.Node) ast.Node {
	for n != nil {
		switch v := n.(type) {
		case *ast.TagNode:
			n = v.Value
		case *ast.AnchorNode:
			n = v.Value
		case *ast.AliasNode:
			resolved, ok := anchors[v.Value.String()]
			if !ok {
				return nil
			}

			n = resolved
		default:
			return n
		}
	}

	return n
}

// wrap builds a Node over raw, inheriting n's anchor map (so aliases inside
// a subtree reached through n continue to resolve against the whole
// document) and resolving any tag/anchor/alias wrapper.
func (n *Node) wrap(raw ast.Node) *Node {
	if raw == nil {
		return Undefined()
	}

	resolved := resolve(raw, n.anchors)
	if resolved == nil {
		return Undefined()
	}

	return &Node{raw: resolved, anchors: n.anchors}
}

// Kind reports n's structural kind.
func (n *Node) Kind() Kind {
	if !n.IsDefined() {
		return KindUndefined
	}

	switch n.raw.(type) {
	case *ast.NullNode:
		return KindNull
	case *ast.MappingNode, *ast.MappingValueNode:
		return KindMapping
	case *ast.SequenceNode:
		return KindSequence
	default:
		return KindScalar
	}
}

// String renders n back to YAML text, for CLI/TUI display. It returns ""
// for [Undefined] so callers can tell "nothing matched" apart from an
// explicit null, which renders as "null".
func (n *Node) String() string {
	if !n.IsDefined() {
		return ""
	}

	return n.raw.String()
}

// Text returns the scalar's raw textual representation (quotes stripped),
// and false if n is not a scalar.
func (n *Node) Text() (string, bool) {
	if n.Kind() != KindScalar {
		return "", false
	}

	if sn, ok := n.raw.(*ast.StringNode); ok {
		return sn.Value, true
	}

	tok := n.raw.GetToken()
	if tok == nil {
		return "", false
	}

	return tok.Value, true
}

// mappingValues normalizes both of goccy/go-yaml's mapping representations
// (a MappingNode with multiple Values, or a bare MappingValueNode) into one
// slice.
func mappingValues(raw ast.Node) []*ast.MappingValueNode {
	switch v := raw.(type) {
	case *ast.MappingNode:
		return v.Values
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{v}
	default:
		return nil
	}
}

// keyText extracts a mapping key's literal text, the same GetToken-based
// approach Text uses for scalar values.
func keyText(k ast.MapKeyNode) string {
	if sn, ok := k.(*ast.StringNode); ok {
		return sn.Value
	}

	tok := k.GetToken()
	if tok == nil {
		return k.String()
	}

	return tok.Value
}

// Pair is one (key, value) entry of a mapping, returned by [Node.Pairs].
type Pair struct {
	Key   string
	Value *Node
}

// Pairs returns every non-merge-key entry of a mapping node, in document
// order. It returns nil for any other kind.
func (n *Node) Pairs() []Pair {
	if n.Kind() != KindMapping {
		return nil
	}

	values := mappingValues(n.raw)
	out := make([]Pair, 0, len(values))

	for _, mvn := range values {
		if _, ok := mvn.Key.(*ast.MergeKeyNode); ok {
			continue
		}

		out = append(out, Pair{Key: keyText(mvn.Key), Value: n.wrap(mvn.Value)})
	}

	return out
}

// Lookup returns the value mapped to key, or [Undefined] if n is not a
// mapping or has no such key.
func (n *Node) Lookup(key string) *Node {
	for _, p := range n.Pairs() {
		if p.Key == key {
			return p.Value
		}
	}

	return Undefined()
}

// Len returns a sequence's element count, or 0 for any other kind.
func (n *Node) Len() int {
	if n.Kind() != KindSequence {
		return 0
	}

	return len(n.raw.(*ast.SequenceNode).Values)
}

// Index returns the i'th element of a sequence, or [Undefined] if n is not a
// sequence or i is out of range.
func (n *Node) Index(i int) *Node {
	if n.Kind() != KindSequence {
		return Undefined()
	}

	values := n.raw.(*ast.SequenceNode).Values
	if i < 0 || i >= len(values) {
		return Undefined()
	}

	return n.wrap(values[i])
}

// Elements returns every element of a sequence node, or nil for any other
// kind.
func (n *Node) Elements() []*Node {
	if n.Kind() != KindSequence {
		return nil
	}

	values := n.raw.(*ast.SequenceNode).Values
	out := make([]*Node, len(values))

	for i, v := range values {
		out[i] = n.wrap(v)
	}

	return out
}

// newToken builds a synthetic token for constructed scalar/collection nodes.
// This mirrors the positionless tokens the library's own encoder builds when
// marshaling a Go value into an AST, since the resulting node is never
// re-serialized from source positions.
func newToken(v string) *token.Token {
	return token.New(v, v, &token.Position{})
}

func newNullNode() *ast.NullNode {
	return ast.Null(newToken("null"))
}

// NewString builds a detached scalar string node, for use as a map value
// constructed by Ensure/Create.
func NewString(s string) *Node {
	return &Node{raw: ast.String(newToken(s))}
}

// NewNull builds a detached null node.
func NewNull() *Node {
	return &Node{raw: newNullNode()}
}

// NewSequence builds a detached sequence node from elems, used by
// SelectByKey's map-distribution case and by ApplyMapFilter's root-level
// sequence-of-matches case.
func NewSequence(elems ...*Node) *Node {
	seq := ast.Sequence(newToken("-"), false)

	var anchors map[string]ast.Node

	for _, e := range elems {
		seq.Values = append(seq.Values, e.raw)

		if anchors == nil {
			anchors = e.anchors
		}
	}

	return &Node{raw: seq, anchors: anchors}
}

// NewMapping builds a detached mapping node from pairs, used by
// ApplyMapFilter's key-projection case and by Ensure's key-creation case.
func NewMapping(pairs ...Pair) *Node {
	values := make([]*ast.MappingValueNode, 0, len(pairs))

	var anchors map[string]ast.Node

	for _, p := range pairs {
		values = append(values, ast.MappingValue(newToken(":"), ast.String(newToken(p.Key)), p.Value.raw))

		if anchors == nil {
			anchors = p.Value.anchors
		}
	}

	return &Node{raw: ast.Mapping(newToken("{"), false, values...), anchors: anchors}
}

// IsGrowableMapping reports whether n wraps an *ast.MappingNode directly,
// as opposed to the bare *ast.MappingValueNode goccy/go-yaml produces for a
// single-pair mapping (which [Node.Kind] also reports as KindMapping, but
// which has no Values slice to append to). [Node.KeySlot] requires the
// former; call [Node.EnsureMapping] first to get there from either.
func (n *Node) IsGrowableMapping() bool {
	_, ok := n.raw.(*ast.MappingNode)

	return ok
}

// EnsureMapping returns n unchanged if [Node.IsGrowableMapping] already
// holds, or a freshly built growable mapping otherwise -- carrying over n's
// single existing pair if it was a bare *ast.MappingValueNode, or starting
// empty if it was Null or undefined. It never mutates n; callers that
// promote a node this way are responsible for linking the result into n's
// parent (see package ypath's Ensure).
func (n *Node) EnsureMapping() *Node {
	switch v := n.raw.(type) {
	case *ast.MappingNode:
		return n
	case *ast.MappingValueNode:
		return &Node{raw: ast.Mapping(newToken("{"), false, v), anchors: n.anchors}
	default:
		return &Node{raw: ast.Mapping(newToken("{"), false), anchors: n.anchors}
	}
}

// KeySlot returns the value currently mapped to key, creating a null entry
// first if one is absent, together with a setter that overwrites that
// entry's value in place. n must already wrap a growable mapping (see
// [Node.EnsureMapping]); it is the Go analogue of yaml-cpp's auto-vivifying
// operator[], made explicit since this package's nodes don't alias that way
// on their own.
func (n *Node) KeySlot(key string) (*Node, func(*Node)) {
	m := n.raw.(*ast.MappingNode)

	for _, mvn := range m.Values {
		if _, isMerge := mvn.Key.(*ast.MergeKeyNode); isMerge {
			continue
		}

		if keyText(mvn.Key) == key {
			mvn := mvn

			return n.wrap(mvn.Value), func(v *Node) { mvn.Value = v.raw }
		}
	}

	mvn := ast.MappingValue(newToken(":"), ast.String(newToken(key)), newNullNode())
	m.Values = append(m.Values, mvn)

	return n.wrap(mvn.Value), func(v *Node) { mvn.Value = v.raw }
}

// EnsureSequence returns n if it already wraps a growable sequence (an
// *ast.SequenceNode), or a freshly built empty one otherwise. See
// [Node.EnsureMapping].
func (n *Node) EnsureSequence() *Node {
	if _, ok := n.raw.(*ast.SequenceNode); ok {
		return n
	}

	return &Node{raw: ast.Sequence(newToken("-"), false), anchors: n.anchors}
}

// IndexSlot returns the value at sequence index i, padding with null
// elements up to i if the sequence is too short, together with a setter
// that overwrites that element in place. n must already wrap a growable
// sequence (see [Node.EnsureSequence]).
func (n *Node) IndexSlot(i int) (*Node, func(*Node)) {
	seq := n.raw.(*ast.SequenceNode)

	for len(seq.Values) <= i {
		seq.Values = append(seq.Values, newNullNode())
	}

	idx := i

	return n.wrap(seq.Values[idx]), func(v *Node) { seq.Values[idx] = v.raw }
}

// SetIndex overwrites the value at sequence index i in place. It is a
// no-op if n is not a sequence or i is out of range.
func (n *Node) SetIndex(i int, v *Node) {
	seq, ok := n.raw.(*ast.SequenceNode)
	if !ok {
		return
	}

	if i < 0 || i >= len(seq.Values) {
		return
	}

	seq.Values[i] = v.raw
}

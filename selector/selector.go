// Package selector implements the selector-level parser for YAML path
// expressions: it consumes a [token.Token] stream and produces a stream of
// [Selector] values (Key, Index, MapFilter), enforcing period separators,
// bracket/brace balance, and bound-argument substitution.
package selector

// Kind identifies which variant of the [Selector] tagged union is populated.
type Kind int

const (
	// KindNone marks a clean end of path.
	KindNone Kind = iota
	// KindInvalid marks a sticky parse error; see [Parser.Err].
	KindInvalid
	// KindKey selects a map entry (or distributes over a sequence).
	KindKey
	// KindIndex selects a sequence element, or acts as an identity no-op
	// on a scalar or map at index 0.
	KindIndex
	// KindMapFilter filters and/or projects a map's entries.
	KindMapFilter
)

// KVOp is the operator joining a KVToken key to an optional value inside a
// map filter.
type KVOp int

const (
	// OpSelect denotes a bare key used for output projection, not a
	// condition.
	OpSelect KVOp = iota
	// OpEqual requires the key's value to match the KVPair's value.
	OpEqual
	// OpNotEqual requires the key's value to NOT match the KVPair's value.
	OpNotEqual
	// OpExists requires only that the key be present, regardless of value.
	OpExists
)

// KVToken is a string fragment appearing inside a map filter, carrying the
// `!`/`^`/`*` modifier flags.
type KVToken struct {
	Token    string
	Required bool
	NoCase   bool
	Starry   bool
}

// IsAllStar reports whether this token is the standalone `*` wildcard
// (Starry with an empty Token), matching any key or value.
func (t KVToken) IsAllStar() bool {
	return t.Starry && t.Token == ""
}

// KVPair is one part of a map filter: a key, its operator, and (for
// Equal/NotEqual) the value to compare against.
type KVPair struct {
	Key   KVToken
	Value KVToken
	Op    KVOp
}

// String returns the human-readable name used in diagnostic messages,
// matching yaml-path.cpp's MapESelectorName table.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindIndex:
		return "index"
	case KindMapFilter:
		return "map filter"
	case KindNone:
		return "(none)"
	default:
		return "(invalid)"
	}
}

// Selector is the tagged union produced by [Parser.Next]: exactly one of
// Key, Index, or MapFilter is meaningful, selected by Kind.
type Selector struct {
	Kind      Kind
	Key       string
	Index     uint64
	MapFilter []KVPair
}

// Arg is a bound argument substituted positionally for a `%` token: either
// a non-negative integer (for indices) or a string (for identifiers).
type Arg struct {
	num   uint64
	str   string
	isNum bool
}

// ArgIndex creates an integer-valued bound argument.
func ArgIndex(i uint64) Arg {
	return Arg{num: i, isNum: true}
}

// ArgString creates a string-valued bound argument.
func ArgString(s string) Arg {
	return Arg{str: s}
}

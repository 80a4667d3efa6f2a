// Package token implements the character-level scanner for YAML path
// expressions: it turns a path string into a stream of [Token] values,
// tracking byte offsets for diagnostics.
package token

import "strings"

// Kind identifies the lexical category of a [Token].
type Kind int

// Token kinds, in the order the original grammar enumerates them.
const (
	None Kind = iota
	Invalid
	Period
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace
	Equal
	FetchArg
	Exclamation
	Caret
	Asterisk
	Tilde
	Comma
	QuotedIdentifier
	UnquotedIdentifier
	Index
)

var names = map[Kind]string{
	None:               "end of path",
	Invalid:            "invalid token",
	Period:             "period",
	OpenBracket:        "open bracket",
	CloseBracket:       "closing bracket",
	OpenBrace:          "open brace",
	CloseBrace:         "close brace",
	Equal:              "equal",
	FetchArg:           "bound argument",
	Exclamation:        "exclamation mark",
	Caret:              "caret",
	Asterisk:           "asterisk",
	Tilde:              "tilde",
	Comma:              "comma",
	QuotedIdentifier:   "quoted identifier",
	UnquotedIdentifier: "unquoted identifier",
	Index:              "index",
}

// String returns the human-readable name used in diagnostic messages.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}

	return "unknown token"
}

// Token is a lexical atom produced by [Scanner.Next]: either one of the
// single-character punctuation kinds, or an identifier/index carrying a
// payload in Value or Num.
type Token struct {
	Kind  Kind
	Value string
	Num   uint64
}

// Set is a bitmask over token [Kind] values, used to describe which tokens
// are acceptable at a given point in the grammar.
type Set uint32

// SetOf builds a [Set] containing the given kinds.
func SetOf(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s |= 1 << uint(k)
	}

	return s
}

// Contains reports whether k is a member of the set.
func (s Set) Contains(k Kind) bool {
	return s&(1<<uint(k)) != 0
}

// With returns a copy of s with k added.
func (s Set) With(k Kind) Set {
	return s | (1 << uint(k))
}

// Without returns a copy of s with k removed.
func (s Set) Without(k Kind) Set {
	return s &^ (1 << uint(k))
}

// String renders the set as a comma-separated list of token names, in
// declaration order, for use in diagnostic messages.
func (s Set) String() string {
	var parts []string

	for k := None; k <= Index; k++ {
		if s.Contains(k) {
			parts = append(parts, k.String())
		}
	}

	return strings.Join(parts, ", ")
}

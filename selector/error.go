package selector

import (
	"fmt"

	"go.ypath.dev/ypath/token"
)

// ErrorKind classifies a grammar-level parse failure. These map onto the
// lower half of the engine's public error codes (everything below the
// node-error boundary).
type ErrorKind int

const (
	// ErrNone is the zero value; no error.
	ErrNone ErrorKind = iota
	// ErrInternal marks a parser invariant violation (e.g. more FetchArg
	// tokens than bound arguments).
	ErrInternal
	// ErrInvalidToken marks an unexpected token for the current grammar
	// position.
	ErrInvalidToken
	// ErrInvalidIndex marks a malformed or overflowing integer index.
	ErrInvalidIndex
	// ErrUnexpectedEnd marks a path that ended where a selector was
	// required.
	ErrUnexpectedEnd
)

// ParseError is the sticky error a [Parser] enters once the grammar is
// violated; every subsequent [Parser.Next] call returns it unchanged.
type ParseError struct {
	Kind     ErrorKind
	Offset   int
	Expected token.Set
	Found    token.Kind
	BoundArg *int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrInternal:
		return "internal parser error"
	case ErrInvalidToken:
		return fmt.Sprintf("invalid token at offset %d: found %s, expected one of: %s", e.Offset, e.Found, e.Expected)
	case ErrInvalidIndex:
		return fmt.Sprintf("invalid index at offset %d", e.Offset)
	case ErrUnexpectedEnd:
		return fmt.Sprintf("unexpected end of path at offset %d, expected one of: %s", e.Offset, e.Expected)
	default:
		return "parse error"
	}
}

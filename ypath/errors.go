package ypath

import (
	"errors"

	"go.ypath.dev/ypath/selector"
)

// Code is the engine's public error code, matching spec.md §6 exactly in
// name and in relative order (codes at or above [InvalidNodeType] are node
// errors; every other non-[OK] code is a path error).
type Code int

const (
	// OK means the path fully resolved.
	OK Code = iota
	// Internal marks a parser invariant violation (e.g. more FetchArg
	// tokens than bound arguments were supplied).
	Internal
	// InvalidToken marks an unexpected token for the current grammar
	// position.
	InvalidToken
	// InvalidIndex marks a malformed or overflowing integer index.
	InvalidIndex
	// UnexpectedEnd marks a path that ended where a selector was required.
	UnexpectedEnd
	// SelectorNotSupported marks a selector shape [Ensure]/[Create] cannot
	// express (any MapFilter part using NotEqual, starry, noCase, or
	// required).
	SelectorNotSupported
	// InvalidNodeType marks a selector applied to a node kind it cannot
	// act on. Node errors begin here.
	InvalidNodeType
	// NodeNotFound marks a well-formed selector that matched nothing.
	NodeNotFound
)

var codeNames = map[Code]string{
	OK:                   "(OK)",
	Internal:             "(internal, please report)",
	InvalidToken:         "invalid token",
	InvalidIndex:         "invalid index",
	UnexpectedEnd:        "unexpected end of path",
	SelectorNotSupported: "selector not supported by this operation",
	InvalidNodeType:      "selector cannot match node type",
	NodeNotFound:         "no node matches selector",
}

// String returns the generic, single-line message for the code.
func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}

	return "unknown error"
}

// IsPathError reports whether c indicates a malformed path rather than a
// well-formed path that matched nothing.
func (c Code) IsPathError() bool {
	return c != OK && c < InvalidNodeType
}

// IsNodeError reports whether c indicates a well-formed path that failed to
// match a node.
func (c Code) IsNodeError() bool {
	return c >= InvalidNodeType
}

// Sentinel errors wrapped into the [error] values Select/Require/Ensure/
// Create return, so callers can use errors.Is without depending on [Error]'s
// Code field.
var (
	ErrPath = errors.New("yaml path error")
	ErrNode = errors.New("yaml node error")
)

// Error is the error value raised by [Require], and by [Select] for path
// (as opposed to node) errors. It carries the full [Diagnostics] so callers
// that want a detailed, multi-line report can call [Error.Detail].
type Error struct {
	Code Code
	Diag Diagnostics
}

// Error implements the error interface with the generic, single-line
// message for the code.
func (e *Error) Error() string {
	return e.Code.String()
}

// Unwrap exposes [ErrPath] or [ErrNode] so callers can classify the failure
// with errors.Is without inspecting Code directly.
func (e *Error) Unwrap() error {
	if e.Code.IsNodeError() {
		return ErrNode
	}

	return ErrPath
}

// Detail renders the multi-line diagnostic report (spec.md §4.5's "detailed"
// form of What()).
func (e *Error) Detail() string {
	return e.Diag.Report()
}

func codeFromParseError(kind selector.ErrorKind) Code {
	switch kind {
	case selector.ErrInternal:
		return Internal
	case selector.ErrInvalidToken:
		return InvalidToken
	case selector.ErrInvalidIndex:
		return InvalidIndex
	case selector.ErrUnexpectedEnd:
		return UnexpectedEnd
	default:
		return Internal
	}
}

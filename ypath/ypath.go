package ypath

import (
	"go.ypath.dev/ypath/node"
	"go.ypath.dev/ypath/selector"
)

// Select matches path against node and returns the matched node. If the
// path is malformed, it returns the [*Error] from the failed resolve along
// with [node.Undefined]. If the path is well-formed but nothing matched, it
// returns [node.Undefined] and a nil error, per spec.md §6.
func Select(n *node.Node, path string, args ...Arg) (*node.Node, error) {
	result, _, code, diag := PathResolve(n, path, args...)
	if code == OK {
		return result, nil
	}

	if code.IsNodeError() {
		return node.Undefined(), nil
	}

	return node.Undefined(), &Error{Code: code, Diag: *diag}
}

// Require is like [Select], but returns a non-nil [*Error] for any failure,
// including node-not-found.
func Require(n *node.Node, path string, args ...Arg) (*node.Node, error) {
	result, _, code, diag := PathResolve(n, path, args...)
	if code == OK {
		return result, nil
	}

	return node.Undefined(), &Error{Code: code, Diag: *diag}
}

// PathValidate parses path without a node, reporting only grammar validity
// (spec.md §6): it runs the selector parser to the end without ever
// applying a selector to a node. On success it returns the full path as the
// resolved prefix and a zero error offset. On failure it returns the
// longest successfully parsed prefix and the byte offset of the failure.
func PathValidate(path string) (resolvedPrefix string, errorOffset int, code Code) {
	p := selector.NewParser(path)

	for {
		selOffset := p.Offset()

		sel, err := p.Next()
		if err != nil {
			pe, _ := err.(*selector.ParseError)

			return path[:min(selOffset, len(path))], pe.Offset, codeFromParseError(pe.Kind)
		}

		if sel.Kind == selector.KindNone {
			return path, 0, OK
		}
	}
}

package ypath

import (
	"go.ypath.dev/ypath/node"
	"go.ypath.dev/ypath/selector"
)

// Arg is a bound argument substituted positionally for a `%` token in a
// path; see [selector.Arg].
type Arg = selector.Arg

// ArgIndex creates an integer-valued bound argument.
func ArgIndex(i uint64) Arg { return selector.ArgIndex(i) }

// ArgString creates a string-valued bound argument.
func ArgString(s string) Arg { return selector.ArgString(s) }

// PathResolve matches path against n as far as possible (spec.md §4.3):
// every selector that can be parsed and applied advances both the returned
// node and the returned remainder; it stops at the first selector-scanner
// or resolver failure, leaving the node at its farthest-matched position
// and the remainder pointing at the start of the failing selector
// (Invariant 2). diag is nil on success and holds the failure's
// diagnostics otherwise.
func PathResolve(n *node.Node, path string, args ...Arg) (result *node.Node, remainder string, code Code, diag *Diagnostics) {
	p := selector.NewParser(path, args...)
	cur := n
	rem := path

	for {
		rem = p.Remaining()
		selOffset := p.Offset()

		sel, err := p.Next()
		if err != nil {
			pe, _ := err.(*selector.ParseError)

			c := codeFromParseError(pe.Kind)

			return cur, rem, c, &Diagnostics{
				Code:           c,
				FullPath:       path,
				ScanOffset:     pe.Offset,
				SelectorOffset: selOffset,
				Expected:       pe.Expected,
				FoundToken:     pe.Found,
				BoundArg:       pe.BoundArg,
			}
		}

		if sel.Kind == selector.KindNone {
			return cur, p.Remaining(), OK, nil
		}

		if !cur.IsDefined() {
			return cur, rem, NodeNotFound, &Diagnostics{
				Code:           NodeNotFound,
				FullPath:       path,
				ScanOffset:     p.Offset(),
				SelectorOffset: selOffset,
				FoundSelector:  sel.Kind,
			}
		}

		var applied Code

		switch sel.Kind {
		case selector.KindKey:
			cur, applied = SelectByKey(cur, sel.Key)
		case selector.KindIndex:
			cur, applied = SelectByIndex(cur, sel.Index)
		case selector.KindMapFilter:
			cur, applied = ApplyMapFilter(cur, sel.MapFilter)
		}

		if applied != OK {
			return cur, rem, applied, &Diagnostics{
				Code:           applied,
				FullPath:       path,
				ScanOffset:     p.Offset(),
				SelectorOffset: selOffset,
				FoundSelector:  sel.Kind,
			}
		}
	}
}

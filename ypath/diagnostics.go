package ypath

import (
	"fmt"
	"strings"

	"go.ypath.dev/ypath/selector"
	"go.ypath.dev/ypath/token"
)

// Diagnostics accumulates everything the resolver and parser observed about
// a failed resolve, matching spec.md §3's Diagnostics data model: the full
// path, the scan and selector offsets, the expected-token bitmask, the
// offending token or selector, and the bound-argument provenance. The two
// message strings spec.md describes as "lazily materialized" are computed
// on demand by [Diagnostics.Short] and [Diagnostics.Report] instead of
// cached, since Go has no convenient mutable-const equivalent to the
// original's `mutable` fields and recomputation is cheap.
type Diagnostics struct {
	Code Code

	FullPath string

	// ScanOffset is the byte offset of the token or selector boundary that
	// triggered the error.
	ScanOffset int
	// SelectorOffset is the byte offset of the start of the selector being
	// parsed (or applied) when the error occurred; spec.md Invariant 3
	// requires FullPath[:SelectorOffset] to equal the resolved prefix.
	SelectorOffset int

	// Expected is the set of tokens that would have been accepted, set
	// only for path errors.
	Expected token.Set
	// FoundToken is the offending token's kind, set only for path errors.
	FoundToken token.Kind
	// FoundSelector is the selector kind being applied when a node error
	// occurred, set only for node errors.
	FoundSelector selector.Kind

	// BoundArg is the index of the bound argument that sourced the
	// offending token, if any.
	BoundArg *int
}

// ResolvedPath returns the longest prefix of FullPath the engine consumed
// successfully (spec.md's "resolved prefix").
func (d Diagnostics) ResolvedPath() string {
	if d.SelectorOffset > len(d.FullPath) {
		return d.FullPath
	}

	return d.FullPath[:d.SelectorOffset]
}

// Short returns the generic, single-line message for the code (spec.md
// §4.5's non-detailed What()).
func (d Diagnostics) Short() string {
	return d.Code.String()
}

// itemName returns the offending token or selector's display name, matching
// yaml-path.cpp's PathException::ErrorItem.
func (d Diagnostics) itemName() string {
	if d.Code.IsNodeError() {
		return d.FoundSelector.String()
	}

	if d.Code.IsPathError() {
		return d.FoundToken.String()
	}

	return ""
}

// Report renders the multi-line diagnostic report spec.md §4.5 describes:
// offsets, expected tokens, the offending item, the full path, and the
// resolved prefix.
func (d Diagnostics) Report() string {
	if d.Code == OK {
		return d.Short()
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", d.Short())
	fmt.Fprintf(&b, "  error at path offset: %d\n", d.ScanOffset)

	if d.BoundArg != nil {
		fmt.Fprintf(&b, "  token taken from bound arg #%d\n", *d.BoundArg)
	}

	switch {
	case d.Code.IsPathError():
		if d.Expected != 0 {
			fmt.Fprintf(&b, "  allowed tokens: %s\n", d.Expected)
		}

		if name := d.itemName(); name != "" {
			fmt.Fprintf(&b, "  token found: %s\n", name)
		}

	case d.Code.IsNodeError():
		if name := d.itemName(); name != "" {
			fmt.Fprintf(&b, "  for selector: %s\n", name)
		}
	}

	if d.FullPath != "" {
		fmt.Fprintf(&b, "  path to parse: %s\n", d.FullPath)
	}

	fmt.Fprintf(&b, "  resolved path: %s\n", d.ResolvedPath())

	return b.String()
}

// Package ypath implements a YAML path-expression engine: given a document
// node (package node) and a path string, it navigates and filters the tree
// and returns the matched node, the undefined sentinel, or a diagnostic
// explaining why nothing matched.
//
// [Select] and [Require] are the two top-level entry points most callers
// want; [PathResolve] exposes the farthest-matched-prefix behavior those two
// are built on, and [PathValidate] checks a path's grammar without a
// document. [Ensure] and [Create] are an additive supplement (see
// SPEC_FULL.md §5) that mutate or construct nodes along a path instead of
// only reading them.
package ypath

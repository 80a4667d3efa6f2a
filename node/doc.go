// Package node wraps github.com/goccy/go-yaml's AST so that the path engine
// in package ypath can walk a YAML document without depending on yaml-cpp's
// node model directly.
//
// A [Node] presents the Kind/Lookup/Index/Pairs/Len contract that the engine
// relies on (spec.md §3's "Node (external)" data model): kind inspection,
// scalar text, sequence indexing and length, map lookup and iteration, and
// construction of new sequence/map nodes for the distributive and
// projecting selector operators. Alias and anchor nodes are resolved
// transparently, the same way [github.com/goccy/go-yaml] callers already
// walk the AST (see the anchor-map construction this package is grounded
// on).
package node

// Package dom implements hotmeal's arena DOM: a flat, cache-friendly tree of
// HTML nodes, populated from an HTML5 parser and mutated in place by the
// patch applier.
//
// All nodes of a Document live in a single contiguous slice (the arena).
// Node identity is a NodeId, a dense index into that slice. Every node
// carries parent, first/last child, and previous/next sibling links plus a
// cached index recording its rank among its parent's children — the
// invariant every tree mutation in this package is responsible for
// maintaining, so that Position is O(1) instead of an O(n) sibling walk.
//
// Deletion is logical: a detached subtree's slots stay allocated but
// unreachable from the root. Nodes are never relocated within the arena, so
// a NodeId remains valid for the lifetime of the Document that produced it.
package dom

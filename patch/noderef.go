package patch

// RefKind discriminates how a NodeRef descends to its target.
type RefKind uint8

const (
	// PathRef descends from the document root by child index.
	PathRef RefKind = iota
	// SlotRef descends from a parked subtree identified by slot number.
	SlotRef
)

// NodeRef addresses a node either by Path from the document root, or by
// Slot number plus a relative Path within the parked subtree that slot
// holds.
type NodeRef struct {
	Kind RefKind
	Slot int
	Path []int
}

// Path builds a root-relative NodeRef.
func Path(indices ...int) NodeRef {
	return NodeRef{Kind: PathRef, Path: indices}
}

// SlotPath builds a NodeRef into slot n, descending by indices.
func SlotPath(n int, indices ...int) NodeRef {
	return NodeRef{Kind: SlotRef, Slot: n, Path: indices}
}

// IsSlot reports whether the ref resolves through a slot rather than the
// document root.
func (r NodeRef) IsSlot() bool { return r.Kind == SlotRef }

// Child returns a NodeRef one level deeper, at child index i.
func (r NodeRef) Child(i int) NodeRef {
	path := make([]int, len(r.Path)+1)
	copy(path, r.Path)
	path[len(r.Path)] = i
	return NodeRef{Kind: r.Kind, Slot: r.Slot, Path: path}
}

package dom

import (
	"encoding/binary"
	"hash/maphash"
)

// KindSignature identifies a node by its own content: variant, qualified
// tag and namespace (elements only), and a digest of the node's own
// properties — attributes and text content — but never its children.
// StructuralHash folds it together with the children's structural hashes.
// The differ's sibling alignment does not use it directly; its coarse pass
// keys elements by tag and namespace alone.
type KindSignature struct {
	kind   Kind
	digest uint64
}

var hashSeed = maphash.MakeSeed()

// Signature computes id's kind signature.
func (d *Document) Signature(id NodeId) KindSignature {
	n := d.slot(id)
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.kind))
	switch n.kind {
	case ElementKind:
		h.WriteString(n.tag.NamespaceString())
		h.WriteString(n.tag.LocalString())
		h.WriteString(n.namespace.String())
		writeAttrs(&h, n.attrs)
	case TextKind, CommentKind:
		h.WriteString(n.text.String())
	case DoctypeKind:
		h.WriteString(n.doctypeName.String())
		h.WriteString(n.publicID.String())
		h.WriteString(n.systemID.String())
	case ProcessingInstructionKind:
		h.WriteString(n.piTarget.String())
		h.WriteString(n.piData.String())
	}
	return KindSignature{kind: n.kind, digest: h.Sum64()}
}

// Equal reports whether two signatures match exactly.
func (s KindSignature) Equal(o KindSignature) bool {
	return s.kind == o.kind && s.digest == o.digest
}

// writeAttrs folds an element's ordered attribute sequence into the hash.
// Order matters here deliberately: the differ's open question leaves
// attribute-order sensitivity intentional, so a permutation changes the
// signature just as source-language behavior does.
func writeAttrs(h *maphash.Hash, attrs []Attr) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(len(attrs)))
	h.Write(b[:])
	for _, a := range attrs {
		h.WriteString(a.Name.NamespaceString())
		h.WriteString(a.Name.LocalString())
		h.WriteString(a.Value.String())
	}
}

// StructuralHash recursively combines id's KindSignature with the
// StructuralHash of each child in order, computed bottom-up. Equal
// structural hashes across two trees are the top-down matching phase's
// fast path for finding unchanged subtrees in O(n).
func (d *Document) StructuralHash(id NodeId) uint64 {
	sig := d.Signature(id)
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], sig.digest)
	h.Write(b[:])
	for c := d.slot(id).firstChild; c != NoNode; c = d.slot(c).nextSibling {
		binary.LittleEndian.PutUint64(b[:], d.StructuralHash(c))
		h.Write(b[:])
	}
	return h.Sum64()
}

// StructuralHashes computes the structural hash of every node reachable
// from root in one bottom-up pass, returned as a map keyed by NodeId. The
// differ calls this once per input tree rather than recomputing hashes
// node by node, since a naive StructuralHash call per node is O(n^2).
func (d *Document) StructuralHashes(root NodeId) map[NodeId]uint64 {
	out := make(map[NodeId]uint64)
	var walk func(id NodeId) uint64
	walk = func(id NodeId) uint64 {
		sig := d.Signature(id)
		var h maphash.Hash
		h.SetSeed(hashSeed)
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], sig.digest)
		h.Write(b[:])
		for c := d.slot(id).firstChild; c != NoNode; c = d.slot(c).nextSibling {
			binary.LittleEndian.PutUint64(b[:], walk(c))
			h.Write(b[:])
		}
		v := h.Sum64()
		out[id] = v
		return v
	}
	walk(root)
	return out
}

// Height returns the subtree height rooted at id: 0 for a leaf, 1 + max
// child height otherwise. Used by top-down matching's min_height gate.
func (d *Document) Height(id NodeId) int {
	maxChild := -1
	for c := d.slot(id).firstChild; c != NoNode; c = d.slot(c).nextSibling {
		if h := d.Height(c); h > maxChild {
			maxChild = h
		}
	}
	return maxChild + 1
}

// Heights computes Height for every node reachable from root in one
// bottom-up pass.
func (d *Document) Heights(root NodeId) map[NodeId]int {
	out := make(map[NodeId]int)
	var walk func(id NodeId) int
	walk = func(id NodeId) int {
		maxChild := -1
		for c := d.slot(id).firstChild; c != NoNode; c = d.slot(c).nextSibling {
			if h := walk(c); h > maxChild {
				maxChild = h
			}
		}
		h := maxChild + 1
		out[id] = h
		return h
	}
	walk(root)
	return out
}

// DescendantCount returns the number of descendants of id, not including
// id itself.
func (d *Document) DescendantCount(id NodeId) int {
	n := 0
	for c := d.slot(id).firstChild; c != NoNode; c = d.slot(c).nextSibling {
		n += 1 + d.DescendantCount(c)
	}
	return n
}

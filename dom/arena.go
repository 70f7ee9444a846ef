package dom

import (
	"github.com/bearcove/hotmeal/names"
	"github.com/bearcove/hotmeal/stem"
)

// CreateElement allocates a new, parentless element node.
func (d *Document) CreateElement(tag names.QualName, ns *names.Namespace, attrs []Attr) NodeId {
	return d.alloc(node{
		kind: ElementKind, tag: tag, namespace: ns, attrs: attrs,
		parent: NoNode, firstChild: NoNode, lastChild: NoNode, prevSibling: NoNode, nextSibling: NoNode,
	})
}

// CreateText allocates a new, parentless text node.
func (d *Document) CreateText(s stem.Stem) NodeId {
	return d.alloc(node{kind: TextKind, text: s, parent: NoNode, firstChild: NoNode, lastChild: NoNode, prevSibling: NoNode, nextSibling: NoNode})
}

// CreateComment allocates a new, parentless comment node.
func (d *Document) CreateComment(s stem.Stem) NodeId {
	return d.alloc(node{kind: CommentKind, text: s, parent: NoNode, firstChild: NoNode, lastChild: NoNode, prevSibling: NoNode, nextSibling: NoNode})
}

// CreateDoctype allocates a new, parentless doctype node.
func (d *Document) CreateDoctype(name, publicID, systemID stem.Stem) NodeId {
	return d.alloc(node{
		kind: DoctypeKind, doctypeName: name, publicID: publicID, systemID: systemID,
		parent: NoNode, firstChild: NoNode, lastChild: NoNode, prevSibling: NoNode, nextSibling: NoNode,
	})
}

// CreateProcessingInstruction allocates a new, parentless PI node.
func (d *Document) CreateProcessingInstruction(target, data stem.Stem) NodeId {
	return d.alloc(node{
		kind: ProcessingInstructionKind, piTarget: target, piData: data,
		parent: NoNode, firstChild: NoNode, lastChild: NoNode, prevSibling: NoNode, nextSibling: NoNode,
	})
}

// Append attaches child as the last child of parent. child must currently
// be parentless. O(1); updates the sibling links and child's cached index.
func (d *Document) Append(parent, child NodeId) {
	p := d.slot(parent)
	c := d.slot(child)
	if c.parent != NoNode {
		panic("dom: Append called on a node that already has a parent")
	}
	c.parent = parent
	c.prevSibling = p.lastChild
	c.nextSibling = NoNode
	if p.lastChild != NoNode {
		d.slot(p.lastChild).nextSibling = child
		c.index = d.slot(p.lastChild).index + 1
	} else {
		c.index = 0
	}
	p.lastChild = child
	if p.firstChild == NoNode {
		p.firstChild = child
	}
}

// InsertBefore attaches new as the previous sibling of anchor. new must
// currently be parentless. Shifts the cached index of anchor and every
// later sibling by one.
func (d *Document) InsertBefore(anchor, newNode NodeId) {
	a := d.slot(anchor)
	parent := a.parent
	if parent == NoNode {
		panic("dom: InsertBefore called with a parentless anchor")
	}
	n := d.slot(newNode)
	if n.parent != NoNode {
		panic("dom: InsertBefore called on a node that already has a parent")
	}
	prev := a.prevSibling
	n.parent = parent
	n.prevSibling = prev
	n.nextSibling = anchor
	n.index = a.index
	a.prevSibling = newNode
	if prev != NoNode {
		d.slot(prev).nextSibling = newNode
	} else {
		d.slot(parent).firstChild = newNode
	}
	d.shiftIndicesFrom(anchor, 1)
}

// shiftIndicesFrom adds delta to the cached index of start and every
// subsequent sibling.
func (d *Document) shiftIndicesFrom(start NodeId, delta int) {
	for c := start; c != NoNode; c = d.slot(c).nextSibling {
		d.slot(c).index += delta
	}
}

// Detach removes node from its parent's child list. The subtree rooted at
// node is preserved — only its attachment is severed — and its own cached
// index becomes meaningless until it is reattached.
func (d *Document) Detach(id NodeId) {
	n := d.slot(id)
	parent := n.parent
	if parent == NoNode {
		return
	}
	p := d.slot(parent)
	prev, next := n.prevSibling, n.nextSibling
	if prev != NoNode {
		d.slot(prev).nextSibling = next
	} else {
		p.firstChild = next
	}
	if next != NoNode {
		d.slot(next).prevSibling = prev
		d.shiftIndicesFrom(next, -1)
	} else {
		p.lastChild = prev
	}
	n.parent = NoNode
	n.prevSibling = NoNode
	n.nextSibling = NoNode
}

// SetText replaces a Text node's contents in place, preserving its NodeId.
func (d *Document) SetText(id NodeId, s stem.Stem) {
	n := d.slot(id)
	if n.kind != TextKind {
		panic("dom: SetText called on a non-text node")
	}
	n.text = s
}

// AppendText merges a text fragment onto an existing text node, used by the
// tree sink to coalesce adjacent text without allocating a fresh node.
func (d *Document) AppendText(id NodeId, extra string) {
	n := d.slot(id)
	if n.kind != TextKind {
		panic("dom: AppendText called on a non-text node")
	}
	n.text.PushString(extra)
}

// SetAttr inserts or replaces an attribute binding on an element, in place
// at its existing position if present, or appended otherwise.
func (d *Document) SetAttr(id NodeId, name names.QualName, value stem.Stem) {
	n := d.slot(id)
	if n.kind != ElementKind {
		panic("dom: SetAttr called on a non-element node")
	}
	for i := range n.attrs {
		if n.attrs[i].Name.Equal(name) {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// RemoveAttr removes every binding for name on an element.
func (d *Document) RemoveAttr(id NodeId, name names.QualName) {
	n := d.slot(id)
	if n.kind != ElementKind {
		panic("dom: RemoveAttr called on a non-element node")
	}
	out := n.attrs[:0]
	for _, a := range n.attrs {
		if !a.Name.Equal(name) {
			out = append(out, a)
		}
	}
	n.attrs = out
}

// GetAttr looks up an attribute by qualified name. Lookup is linear in
// attribute count; typical elements carry fewer than ten attributes, so a
// sorted or hashed index would not pay for itself.
func (d *Document) GetAttr(id NodeId, name names.QualName) (stem.Stem, bool) {
	for _, a := range d.slot(id).attrs {
		if a.Name.Equal(name) {
			return a.Value, true
		}
	}
	return stem.Stem{}, false
}

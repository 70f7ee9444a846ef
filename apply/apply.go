// Package apply implements §4.6's applier: replaying a differ's ordered
// patch.Patch stream against a live dom.Document until it matches the
// document the differ diffed against.
package apply

import (
	"github.com/bearcove/hotmeal/dom"
	"github.com/bearcove/hotmeal/names"
	"github.com/bearcove/hotmeal/patch"
	"github.com/bearcove/hotmeal/stem"
)

// Apply replays patches against doc in order, aborting at the first
// failure. Per §7's policy, a failure leaves doc partially patched — the
// caller is expected to discard it and re-parse, since apply errors
// indicate a differ/applier disagreement rather than a recoverable input
// problem.
func Apply(doc *dom.Document, patches []patch.Patch) error {
	slots := make(map[int]dom.NodeId)
	for i, p := range patches {
		if err := applyOne(doc, slots, i, p); err != nil {
			return err
		}
	}
	if len(slots) > 0 {
		return newError(SlotLeaked, len(patches), "%d slot(s) never consumed", len(slots))
	}
	return nil
}

func applyOne(doc *dom.Document, slots map[int]dom.NodeId, i int, p patch.Patch) error {
	switch p.Kind {
	case patch.SetTextKind:
		id, err := resolve(doc, slots, i, p.At)
		if err != nil {
			return err
		}
		if doc.Kind(id) != dom.TextKind {
			return newError(InvalidOperation, i, "SetText target is not a text node")
		}
		doc.SetText(id, stem.Owned(p.Text))

	case patch.SetAttributeKind:
		id, err := resolve(doc, slots, i, p.At)
		if err != nil {
			return err
		}
		if doc.Kind(id) != dom.ElementKind {
			return newError(InvalidOperation, i, "SetAttribute target is not an element")
		}
		doc.SetAttr(id, p.Name, stem.Owned(p.Value))

	case patch.RemoveAttributeKind:
		id, err := resolve(doc, slots, i, p.At)
		if err != nil {
			return err
		}
		if doc.Kind(id) != dom.ElementKind {
			return newError(InvalidOperation, i, "RemoveAttribute target is not an element")
		}
		doc.RemoveAttr(id, p.Name)

	case patch.UpdatePropertiesKind:
		id, err := resolve(doc, slots, i, p.At)
		if err != nil {
			return err
		}
		if !patch.HasRealChange(p.Props) {
			return newError(InvalidOperation, i, "UpdateProperties patch has no real change")
		}
		for _, c := range p.Props {
			if c.Kind == patch.PropSame {
				continue
			}
			if c.IsText {
				if doc.Kind(id) != dom.TextKind {
					return newError(InvalidOperation, i, "UpdateProperties text entry on a non-text node")
				}
				doc.SetText(id, stem.Owned(c.Value))
				continue
			}
			if doc.Kind(id) != dom.ElementKind {
				return newError(InvalidOperation, i, "UpdateProperties attribute entry on a non-element")
			}
			if c.Kind == patch.PropSet {
				doc.SetAttr(id, c.Attr, stem.Owned(c.Value))
			} else {
				doc.RemoveAttr(id, c.Attr)
			}
		}

	case patch.InsertElementKind, patch.InsertTextKind, patch.InsertCommentKind:
		parent, err := resolve(doc, slots, i, p.InsertAt.Parent)
		if err != nil {
			return err
		}
		node := buildNode(doc, p.Node)
		insertAt(doc, slots, parent, p.InsertAt.Index, p.InsertAt.DisplaceTo, node)

	case patch.RemoveKind:
		id, err := resolveConsuming(doc, slots, i, p.At)
		if err != nil {
			return err
		}
		doc.Detach(id)

	case patch.MoveKind:
		src, err := resolveConsuming(doc, slots, i, p.At)
		if err != nil {
			return err
		}
		doc.Detach(src)
		parent, err := resolve(doc, slots, i, p.InsertAt.Parent)
		if err != nil {
			return err
		}
		insertAt(doc, slots, parent, p.InsertAt.Index, p.InsertAt.DisplaceTo, src)

	default:
		return newError(InvalidOperation, i, "unknown patch kind %v", p.Kind)
	}
	return nil
}

// resolve walks ref from the document root or, for a Slot ref, from the
// slot's parked root, per §4.6: "resolving Path walks from the document
// root by the given indices; resolving Slot(n, …) looks up slot n … and
// walks within the parked subtree."
func resolve(doc *dom.Document, slots map[int]dom.NodeId, patchIndex int, ref patch.NodeRef) (dom.NodeId, error) {
	var cur dom.NodeId
	if ref.IsSlot() {
		id, ok := slots[ref.Slot]
		if !ok {
			return dom.NoNode, newError(SlotMissing, patchIndex, "slot %d is not populated", ref.Slot)
		}
		cur = id
	} else {
		cur = doc.Root()
	}
	for _, idx := range ref.Path {
		next, ok := doc.ChildAt(cur, idx)
		if !ok {
			return dom.NoNode, newError(PathOutOfBounds, patchIndex, "child index %d out of bounds", idx)
		}
		cur = next
	}
	return cur, nil
}

// resolveConsuming resolves ref like resolve, and additionally consumes
// the referenced slot when ref names a slot's root directly (an empty
// relative path) — the case where a parked subtree is being moved back
// into the tree (Move's source) or dropped outright (Remove's target).
// Insert* patches carry literal content and never consume a slot. A
// reference that merely descends into a still-parked subtree leaves the
// slot populated.
func resolveConsuming(doc *dom.Document, slots map[int]dom.NodeId, patchIndex int, ref patch.NodeRef) (dom.NodeId, error) {
	id, err := resolve(doc, slots, patchIndex, ref)
	if err != nil {
		return dom.NoNode, err
	}
	if ref.IsSlot() && len(ref.Path) == 0 {
		delete(slots, ref.Slot)
	}
	return id, nil
}

// insertAt places node as parent's i'th child. If displaceTo names a slot
// and a child already occupies position i, that child is parked in the
// slot first; otherwise an existing occupant is pushed to i+1 rather than
// disturbed, per §4.6.
func insertAt(doc *dom.Document, slots map[int]dom.NodeId, parent dom.NodeId, i int, displaceTo *int, node dom.NodeId) {
	if displaceTo != nil {
		if occupant, ok := doc.ChildAt(parent, i); ok {
			doc.Detach(occupant)
			slots[*displaceTo] = occupant
		}
	}
	if anchor, ok := doc.ChildAt(parent, i); ok {
		doc.InsertBefore(anchor, node)
	} else {
		doc.Append(parent, node)
	}
}

// buildNode materializes a patch.NewNode literal (and, for elements, its
// children) as freshly allocated arena nodes.
func buildNode(doc *dom.Document, n *patch.NewNode) dom.NodeId {
	switch n.Kind {
	case patch.NewElementKind:
		ns := n.Namespace
		if ns == nil {
			ns = names.HTML
		}
		attrs := make([]dom.Attr, len(n.Attrs))
		for i, a := range n.Attrs {
			attrs[i] = dom.Attr{Name: a.Name, Value: stem.Owned(a.Value)}
		}
		id := doc.CreateElement(n.Tag, ns, attrs)
		for _, c := range n.Children {
			doc.Append(id, buildNode(doc, c))
		}
		return id
	case patch.NewCommentKind:
		return doc.CreateComment(stem.Owned(n.Text))
	default:
		return doc.CreateText(stem.Owned(n.Text))
	}
}

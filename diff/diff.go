package diff

import (
	"github.com/bearcove/hotmeal/dom"
	"github.com/bearcove/hotmeal/names"
	"github.com/bearcove/hotmeal/patch"
)

// Diff computes the ordered patch stream that transforms oldDoc into
// newDoc, per §4.3-4.5. Comments are invisible to the differ per §3.5:
// they never participate in matching and are never targeted by emitted
// patches, so a comment present only in one of the two documents is
// simply left alone rather than inserted or removed.
func Diff(oldDoc, newDoc *dom.Document) []patch.Patch {
	m := match(oldDoc, newDoc, oldDoc.Root(), newDoc.Root(), DefaultMinHeight)
	sh := newShadow(oldDoc)

	var patches []patch.Patch
	emitChildren(oldDoc, newDoc, m, sh, oldDoc.Root(), newDoc.Root(), &patches)
	removeUnmatched(oldDoc, m, sh, oldDoc.Root(), &patches)
	return patches
}

// visibleChildren returns id's children with comments filtered out — the
// differ's own view of the tree, distinct from the arena's raw children
// used for hashing and serialization.
func visibleChildren(doc *dom.Document, id dom.NodeId) []dom.NodeId {
	kids := doc.Children(id)
	out := kids[:0:0]
	for _, k := range kids {
		if doc.Kind(k) != dom.CommentKind {
			out = append(out, k)
		}
	}
	return out
}

// emitChildren reconciles the children of a matched (oldParent, newParent)
// pair: moves and property updates for matched children, inserts for
// unmatched ones, recursing into every matched child in turn. Patches
// land in new-tree document order, which is what makes shadow refs valid
// against each patch's predecessors.
func emitChildren(oldDoc, newDoc *dom.Document, m *Matching, sh *shadow, oldParent, newParent dom.NodeId, patches *[]patch.Patch) {
	parentShadow := shadowID(oldParent)
	parentRef := sh.ref(parentShadow)

	newKids := visibleChildren(newDoc, newParent)
	for i, nk := range newKids {
		oldPartner, matched := m.OldPartner(nk)
		if !matched {
			switch newDoc.Kind(nk) {
			case dom.ElementKind:
				sid := sh.newShadowNode()
				ip := patch.InsertionPoint{Parent: parentRef, Index: i}
				*patches = append(*patches, patch.InsertElement(ip, literalSubtree(newDoc, nk)))
				sh.attachAt(parentShadow, i, sid)
			case dom.TextKind:
				sid := sh.newShadowNode()
				ip := patch.InsertionPoint{Parent: parentRef, Index: i}
				*patches = append(*patches, patch.InsertText(ip, newDoc.Text(nk).String()))
				sh.attachAt(parentShadow, i, sid)
			default:
				// Doctype/ProcessingInstruction have no Insert* counterpart
				// in the patch model (§4.4's table); skip without touching
				// the shadow, since no node is ever created for it at apply
				// time — attaching one here would desync every later index.
			}
			continue
		}

		childShadow := shadowID(oldPartner)
		cur := sh.nodes[childShadow]
		if cur.parent != parentShadow || cur.index != i {
			source := sh.ref(childShadow)
			sh.detach(childShadow)
			sh.attachAt(parentShadow, i, childShadow)
			*patches = append(*patches, patch.Move(source, patch.InsertionPoint{Parent: parentRef, Index: i}))
		}
		emitProperties(oldDoc, newDoc, oldPartner, nk, sh, patches)
		emitChildren(oldDoc, newDoc, m, sh, oldPartner, nk, patches)
	}
}

type attrKey struct {
	ns    *names.Namespace
	local *names.Name
}

func keyOf(q names.QualName) attrKey { return attrKey{q.NS, q.Local} }

// attributeChanges builds the full union property-change list for an
// element pair, in new-attribute order followed by old-only removals, with
// Same entries for attributes that did not change — the shape
// UpdateProperties needs when §4.3.4 decides to emit it.
func attributeChanges(oldDoc *dom.Document, oldId dom.NodeId, newDoc *dom.Document, newId dom.NodeId) []patch.PropertyChange {
	oldAttrs := oldDoc.Attrs(oldId)
	newAttrs := newDoc.Attrs(newId)

	oldVal := make(map[attrKey]dom.Attr, len(oldAttrs))
	for _, a := range oldAttrs {
		oldVal[keyOf(a.Name)] = a
	}

	var changes []patch.PropertyChange
	seen := make(map[attrKey]bool, len(newAttrs))
	for _, a := range newAttrs {
		k := keyOf(a.Name)
		seen[k] = true
		if old, ok := oldVal[k]; ok && old.Value.String() == a.Value.String() {
			changes = append(changes, patch.PropertyChange{Attr: a.Name, Kind: patch.PropSame})
		} else {
			changes = append(changes, patch.PropertyChange{Attr: a.Name, Kind: patch.PropSet, Value: a.Value.String()})
		}
	}
	for _, a := range oldAttrs {
		if !seen[keyOf(a.Name)] {
			changes = append(changes, patch.PropertyChange{Attr: a.Name, Kind: patch.PropRemove})
		}
	}
	return changes
}

// emitProperties compares a matched pair's own properties (attributes or
// text) and emits the isolated SetAttribute/RemoveAttribute/SetText patch
// for a single change, or UpdateProperties when multiple attributes
// changed in the same commit, per §4.4. No-op comparisons emit nothing —
// the mandatory suppression of §4.3.4.
func emitProperties(oldDoc, newDoc *dom.Document, oldId, newId dom.NodeId, sh *shadow, patches *[]patch.Patch) {
	switch newDoc.Kind(newId) {
	case dom.ElementKind:
		changes := attributeChanges(oldDoc, oldId, newDoc, newId)
		real := 0
		var only patch.PropertyChange
		for _, c := range changes {
			if c.Kind != patch.PropSame {
				real++
				only = c
			}
		}
		if real == 0 {
			return
		}
		ref := sh.ref(shadowID(oldId))
		if real == 1 {
			if only.Kind == patch.PropSet {
				*patches = append(*patches, patch.SetAttribute(ref, only.Attr, only.Value))
			} else {
				*patches = append(*patches, patch.RemoveAttribute(ref, only.Attr))
			}
			return
		}
		*patches = append(*patches, patch.UpdateProperties(ref, changes))
	case dom.TextKind:
		oldText := oldDoc.Text(oldId).String()
		newText := newDoc.Text(newId).String()
		if oldText != newText {
			*patches = append(*patches, patch.SetText(sh.ref(shadowID(oldId)), newText))
		}
	}
}

// literalSubtree converts a new-tree node (and, for elements, its
// children) into the literal payload an Insert* patch carries. Comments
// are dropped for the same reason they are never matched: they are
// invisible to the differ.
func literalSubtree(newDoc *dom.Document, id dom.NodeId) *patch.NewNode {
	switch newDoc.Kind(id) {
	case dom.ElementKind:
		attrs := newDoc.Attrs(id)
		pattrs := make([]patch.AttrValue, len(attrs))
		for i, a := range attrs {
			pattrs[i] = patch.AttrValue{Name: a.Name, Value: a.Value.String()}
		}
		var children []*patch.NewNode
		for _, c := range newDoc.Children(id) {
			if newDoc.Kind(c) == dom.CommentKind || newDoc.Kind(c) == dom.DoctypeKind || newDoc.Kind(c) == dom.ProcessingInstructionKind {
				continue
			}
			children = append(children, literalSubtree(newDoc, c))
		}
		return &patch.NewNode{Kind: patch.NewElementKind, Tag: newDoc.Tag(id), Namespace: newDoc.Namespace(id), Attrs: pattrs, Children: children}
	case dom.TextKind:
		return &patch.NewNode{Kind: patch.NewTextKind, Text: newDoc.Text(id).String()}
	default:
		return &patch.NewNode{Kind: patch.NewTextKind}
	}
}

// removeUnmatched walks the old tree and emits Remove for every topmost
// unmatched node — one whose own partner is absent but whose parent
// either has a partner or is the root. Deeper unmatched descendants are
// covered implicitly: Remove drops a whole subtree. This runs after the
// new-tree walk, matching §4.3.4's "Delete (after all of the above)".
func removeUnmatched(oldDoc *dom.Document, m *Matching, sh *shadow, id dom.NodeId, patches *[]patch.Patch) {
	for _, c := range visibleChildren(oldDoc, id) {
		if _, matched := m.NewPartner(c); matched {
			removeUnmatched(oldDoc, m, sh, c, patches)
			continue
		}
		cShadow := shadowID(c)
		*patches = append(*patches, patch.Remove(sh.ref(cShadow)))
		sh.detach(cShadow)
	}
}

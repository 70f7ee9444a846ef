package diff

import (
	"github.com/bearcove/hotmeal/dom"
	"github.com/bearcove/hotmeal/patch"
)

// shadowID identifies a node in the shadow tree. Shadow ids for the old
// tree reuse the old document's dom.NodeId values directly (the shadow
// starts as a structural copy of the old tree); shadow ids for nodes
// created by Insert* patches during emission are synthesized above the
// highest id reachable from the old root, so they never collide with any
// id the shadow already holds.
type shadowID int

type shadowNode struct {
	parent, firstChild, lastChild, prev, next shadowID
	index                                      int
}

const noShadow shadowID = -1

// shadow simulates the live arena the applier will hold while a patch
// stream is applied, so that NodeRefs computed during emission describe
// the tree *after* every preceding patch — never the original old tree.
// See §4.5.
//
// The differ always moves a node directly to its destination (attachAt
// pushes whatever already occupies that position one slot later) rather
// than parking it and reattaching later, so the shadow never needs slot
// bookkeeping — NodeRef.Slot exists for the wire format and the applier
// (apply.go), not for anything this package emits.
type shadow struct {
	nodes  map[shadowID]*shadowNode
	root   shadowID
	nextID shadowID
}

func newShadow(oldDoc *dom.Document) *shadow {
	s := &shadow{
		nodes: make(map[shadowID]*shadowNode),
	}
	root := oldDoc.Root()
	s.root = shadowID(root)
	s.nextID = 0

	var walk func(id dom.NodeId) shadowID
	walk = func(id dom.NodeId) shadowID {
		sid := shadowID(id)
		if sid+1 > s.nextID {
			s.nextID = sid + 1
		}
		sn := &shadowNode{parent: noShadow, firstChild: noShadow, lastChild: noShadow, prev: noShadow, next: noShadow, index: oldDoc.Position(id)}
		s.nodes[sid] = sn
		var prev shadowID = noShadow
		for _, c := range oldDoc.Children(id) {
			csid := walk(c)
			s.nodes[csid].parent = sid
			s.nodes[csid].prev = prev
			if prev != noShadow {
				s.nodes[prev].next = csid
			} else {
				sn.firstChild = csid
			}
			prev = csid
		}
		sn.lastChild = prev
		return sid
	}
	walk(root)
	return s
}

// newShadowNode allocates a fresh, detached shadow id for a literal
// subtree created by an Insert* patch.
func (s *shadow) newShadowNode() shadowID {
	id := s.nextID
	s.nextID++
	s.nodes[id] = &shadowNode{parent: noShadow, firstChild: noShadow, lastChild: noShadow, prev: noShadow, next: noShadow}
	return id
}

// detach splices id out of its parent's child list. It does not touch
// id's own children.
func (s *shadow) detach(id shadowID) {
	n := s.nodes[id]
	if n.prev != noShadow {
		s.nodes[n.prev].next = n.next
	} else if n.parent != noShadow {
		s.nodes[n.parent].firstChild = n.next
	}
	if n.next != noShadow {
		s.nodes[n.next].prev = n.prev
		s.reindexFrom(n.next)
	} else if n.parent != noShadow {
		s.nodes[n.parent].lastChild = n.prev
	}
	n.parent, n.prev, n.next = noShadow, noShadow, noShadow
}

// reindexFrom walks a sibling chain starting at id, fixing cached indices
// after a splice.
func (s *shadow) reindexFrom(id shadowID) {
	for cur := id; cur != noShadow; cur = s.nodes[cur].next {
		n := s.nodes[cur]
		if n.prev == noShadow {
			n.index = 0
		} else {
			n.index = s.nodes[n.prev].index + 1
		}
	}
}

// attachAt inserts id as parent's i'th child, pushing any existing
// occupant of position i (and later siblings) one position later.
func (s *shadow) attachAt(parent shadowID, i int, id shadowID) {
	pn := s.nodes[parent]

	// find current i'th child (if any) to insert before.
	var before shadowID = noShadow
	c := pn.firstChild
	for pos := 0; c != noShadow; pos++ {
		if pos == i {
			before = c
			break
		}
		c = s.nodes[c].next
	}

	n := s.nodes[id]
	n.parent = parent
	if before == noShadow {
		// append at end
		n.prev = pn.lastChild
		n.next = noShadow
		if pn.lastChild != noShadow {
			s.nodes[pn.lastChild].next = id
		} else {
			pn.firstChild = id
		}
		pn.lastChild = id
		n.index = i
	} else {
		bn := s.nodes[before]
		n.prev = bn.prev
		n.next = before
		if bn.prev != noShadow {
			s.nodes[bn.prev].next = id
		} else {
			pn.firstChild = id
		}
		bn.prev = id
		s.reindexFrom(id)
	}
}

// ref computes id's Path NodeRef against the shadow's current state,
// walking up to the root. Callers only ask for attached ids: Move's source
// and Remove's target are computed before the shadow detaches them, and
// every other call site names a node that is still attached.
func (s *shadow) ref(id shadowID) patch.NodeRef {
	var path []int
	cur := id
	for cur != s.root {
		n := s.nodes[cur]
		path = append(path, n.index)
		cur = n.parent
	}
	reversePath(path)
	return patch.Path(path...)
}

func reversePath(p []int) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

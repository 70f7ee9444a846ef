package diff

import (
	"sort"

	"github.com/bearcove/hotmeal/dom"
)

// DefaultMinHeight is the minimum subtree height the global top-down hash
// phase requires before accepting a match, per §4.3.2. Below this height,
// matching is left to reconcile's local alignment (reconcile.go) instead —
// chasing every small subtree globally is exactly the combinatorial cost
// §4.3.6 warns against.
const DefaultMinHeight = 2

// DefaultSimThreshold is kept for API stability with §4.3.3's dice
// coefficient formula (see Matching's doc comment for why this
// implementation resolves bottom-up matching differently).
const DefaultSimThreshold = 0.5

// Matching is the bidirectional node correspondence the two matching
// phases build between an old and a new tree.
//
// §4.3.3 describes bottom-up matching by dice coefficient among elements
// that already have a matched descendant to anchor a candidate search.
// That anchor requirement cannot bootstrap a diff where nothing has
// matched yet below the document root — exactly the shape of every
// concrete scenario in §8, whose trees are a handful of levels deep with
// no repeated substructure to anchor on. This implementation instead
// pairs the global top-down hash phase (topDown: whole unchanged subtrees
// matched in O(n)) with a local, per-parent reconciliation (reconcile.go)
// that aligns siblings with go-diff's rune-mapped LCS, keyed first by
// exact structural hash (so identical-content moves, like two paragraphs
// trading places, collapse to a single Move) and then by a coarse kind
// signature (so same-tag elements whose content changed still pair up
// positionally for UpdateProperties instead of delete+insert).
type Matching struct {
	oldToNew map[dom.NodeId]dom.NodeId
	newToOld map[dom.NodeId]dom.NodeId
}

func newMatching() *Matching {
	return &Matching{oldToNew: make(map[dom.NodeId]dom.NodeId), newToOld: make(map[dom.NodeId]dom.NodeId)}
}

func (m *Matching) set(o, n dom.NodeId) {
	m.oldToNew[o] = n
	m.newToOld[n] = o
}

// NewPartner returns the new-tree node matched to o, if any.
func (m *Matching) NewPartner(o dom.NodeId) (dom.NodeId, bool) {
	n, ok := m.oldToNew[o]
	return n, ok
}

// OldPartner returns the old-tree node matched to n, if any.
func (m *Matching) OldPartner(n dom.NodeId) (dom.NodeId, bool) {
	o, ok := m.newToOld[n]
	return o, ok
}

// match runs the full matching pipeline over the two trees rooted at
// oldRoot and newRoot. oldRoot and newRoot are matched to each other
// directly — they are the document roots, never subject to
// insert/move/delete.
func match(oldDoc, newDoc *dom.Document, oldRoot, newRoot dom.NodeId, minHeight int) *Matching {
	m := newMatching()
	m.set(oldRoot, newRoot)
	topDown(oldDoc, newDoc, oldRoot, newRoot, minHeight, m)
	reconcile(oldDoc, newDoc, m, oldRoot, newRoot)
	return m
}

type heightCandidate struct {
	id     dom.NodeId
	height int
}

// topDown implements §4.3.2: subtrees with equal structural hash and
// height >= minHeight are matched wholesale, largest first so that a big
// unchanged region is claimed before any of its own subtrees could be
// mistaken for a smaller, unrelated match.
func topDown(oldDoc, newDoc *dom.Document, oldRoot, newRoot dom.NodeId, minHeight int, m *Matching) {
	oldHashes := oldDoc.StructuralHashes(oldRoot)
	oldHeights := oldDoc.Heights(oldRoot)
	newHashes := newDoc.StructuralHashes(newRoot)
	newHeights := newDoc.Heights(newRoot)

	oldByHash := make(map[uint64][]dom.NodeId)
	forEachDescendant(oldDoc, oldRoot, func(id dom.NodeId) {
		if oldHeights[id] >= minHeight {
			oldByHash[oldHashes[id]] = append(oldByHash[oldHashes[id]], id)
		}
	})

	var newCandidates []heightCandidate
	forEachDescendant(newDoc, newRoot, func(id dom.NodeId) {
		if newHeights[id] >= minHeight {
			newCandidates = append(newCandidates, heightCandidate{id, newHeights[id]})
		}
	})
	sort.SliceStable(newCandidates, func(i, j int) bool { return newCandidates[i].height > newCandidates[j].height })

	consumedOld := make(map[dom.NodeId]bool)
	consumedNew := make(map[dom.NodeId]bool)
	for _, c := range newCandidates {
		if consumedNew[c.id] {
			continue
		}
		cands := oldByHash[newHashes[c.id]]
		pick := dom.NoNode
		for _, oc := range cands {
			if !consumedOld[oc] {
				pick = oc
				break
			}
		}
		if pick == dom.NoNode {
			continue
		}
		matchPairwise(oldDoc, newDoc, pick, c.id, m, consumedOld, consumedNew)
	}
}

// matchPairwise matches o and n, then walks their children in parallel —
// valid because equal structural hashes guarantee isomorphic structure.
func matchPairwise(oldDoc, newDoc *dom.Document, o, n dom.NodeId, m *Matching, consumedOld, consumedNew map[dom.NodeId]bool) {
	m.set(o, n)
	consumedOld[o] = true
	consumedNew[n] = true
	oc := visibleChildren(oldDoc, o)
	nc := visibleChildren(newDoc, n)
	count := len(oc)
	if len(nc) < count {
		count = len(nc)
	}
	for i := 0; i < count; i++ {
		matchPairwise(oldDoc, newDoc, oc[i], nc[i], m, consumedOld, consumedNew)
	}
}

func forEachDescendant(doc *dom.Document, id dom.NodeId, f func(dom.NodeId)) {
	f(id)
	for _, c := range doc.Children(id) {
		forEachDescendant(doc, c, f)
	}
}

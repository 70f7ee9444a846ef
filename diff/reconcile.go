package diff

import (
	"github.com/bearcove/hotmeal/dom"
	"github.com/bearcove/hotmeal/names"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// reconcile aligns the children of every matched (old, new) pair reachable
// from (op, np), pairing siblings that topDown's global, height-gated pass
// was too coarse to catch — either because the pair is smaller than
// minHeight, or because its content changed and so never had a matching
// structural hash to begin with.
//
// Each parent's children are aligned in two rune-mapped LCS passes over
// go-diff's DiffMainRunes, the same alignment primitive used to match map
// fields and slice elements by identity before diffing their values. The
// first pass keys by exact structural hash: an "Equal" run is an unchanged
// subtree, matched wholesale; a value that shows up in both a Delete and
// an Insert run is the same subtree relocated, which this pass recognizes
// as a move rather than a delete-then-insert. The second pass keys
// whatever remains by a coarse kind signature (element tag, or "text"),
// so a same-tag element whose content changed still gets matched
// positionally instead of producing spurious insert/delete pairs.
func reconcile(oldDoc, newDoc *dom.Document, m *Matching, op, np dom.NodeId) {
	if !isReconcilable(oldDoc, op) || !isReconcilable(newDoc, np) {
		return
	}

	oldKids := visibleChildren(oldDoc, op)
	newKids := visibleChildren(newDoc, np)
	if len(oldKids) == 0 && len(newKids) == 0 {
		return
	}

	matchedOld := make(map[dom.NodeId]bool, len(oldKids))
	matchedNew := make(map[dom.NodeId]bool, len(newKids))

	alignByHash(oldDoc, newDoc, m, oldKids, newKids, matchedOld, matchedNew)
	pairs := alignByCoarseSignature(oldDoc, newDoc, m, oldKids, newKids, matchedOld, matchedNew)

	for _, p := range pairs {
		reconcile(oldDoc, newDoc, m, p[0], p[1])
	}
}

func isReconcilable(doc *dom.Document, id dom.NodeId) bool {
	k := doc.Kind(id)
	return k == dom.ElementKind || k == dom.DocumentKind
}

// alignByHash runs the exact-structural-hash LCS pass, matching unchanged
// subtrees (directly, via matchPairwise) and relocated-but-unchanged
// subtrees (by pairing same-hash delete/insert runs).
func alignByHash(oldDoc, newDoc *dom.Document, m *Matching, oldKids, newKids []dom.NodeId, matchedOld, matchedNew map[dom.NodeId]bool) {
	oldHash := make([]uint64, len(oldKids))
	for i, k := range oldKids {
		oldHash[i] = oldDoc.StructuralHash(k)
	}
	newHash := make([]uint64, len(newKids))
	for i, k := range newKids {
		newHash[i] = newDoc.StructuralHash(k)
	}

	runeOf := make(map[uint64]rune)
	nextRune := rune(0)
	toRune := func(h uint64) rune {
		if r, ok := runeOf[h]; ok {
			return r
		}
		r := nextRune
		nextRune++
		runeOf[h] = r
		return r
	}

	oldRunes := make([]rune, len(oldKids))
	for i, h := range oldHash {
		oldRunes[i] = toRune(h)
	}
	newRunes := make([]rune, len(newKids))
	for i, h := range newHash {
		newRunes[i] = toRune(h)
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)

	deletedByHash := make(map[uint64][]dom.NodeId)
	insertedByHash := make(map[uint64][]dom.NodeId)
	consumedOld := make(map[dom.NodeId]bool)
	consumedNew := make(map[dom.NodeId]bool)

	fi, ti := 0, 0
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for range d.Text {
				ok := oldKids[fi]
				deletedByHash[oldHash[fi]] = append(deletedByHash[oldHash[fi]], ok)
				fi++
			}
		case diffmatchpatch.DiffInsert:
			for range d.Text {
				nk := newKids[ti]
				insertedByHash[newHash[ti]] = append(insertedByHash[newHash[ti]], nk)
				ti++
			}
		case diffmatchpatch.DiffEqual:
			for range d.Text {
				ok, nk := oldKids[fi], newKids[ti]
				matchPairwise(oldDoc, newDoc, ok, nk, m, consumedOld, consumedNew)
				matchedOld[ok] = true
				matchedNew[nk] = true
				fi++
				ti++
			}
		}
	}

	for h, olds := range deletedByHash {
		ins := insertedByHash[h]
		n := len(olds)
		if len(ins) < n {
			n = len(ins)
		}
		for i := 0; i < n; i++ {
			matchPairwise(oldDoc, newDoc, olds[i], ins[i], m, consumedOld, consumedNew)
			matchedOld[olds[i]] = true
			matchedNew[ins[i]] = true
		}
	}
}

type coarseKey struct {
	kind dom.Kind
	tag  *names.Name
	ns   *names.Namespace
}

func coarseKeyOf(doc *dom.Document, id dom.NodeId) coarseKey {
	k := doc.Kind(id)
	if k != dom.ElementKind {
		return coarseKey{kind: k}
	}
	tag := doc.Tag(id)
	return coarseKey{kind: k, tag: tag.Local, ns: tag.NS}
}

// alignByCoarseSignature pairs whatever alignByHash left unmatched, by tag
// (or "text"/"comment") position, so the emitter treats a content change
// as an update against the right old node instead of churn. It returns
// the element pairs newly matched this way, for the caller to recurse
// into — their children may themselves need reconciling.
func alignByCoarseSignature(oldDoc, newDoc *dom.Document, m *Matching, oldKids, newKids []dom.NodeId, matchedOld, matchedNew map[dom.NodeId]bool) [][2]dom.NodeId {
	var remOld, remNew []dom.NodeId
	for _, k := range oldKids {
		if !matchedOld[k] {
			remOld = append(remOld, k)
		}
	}
	for _, k := range newKids {
		if !matchedNew[k] {
			remNew = append(remNew, k)
		}
	}
	if len(remOld) == 0 || len(remNew) == 0 {
		return nil
	}

	runeOf := make(map[coarseKey]rune)
	nextRune := rune(0)
	toRune := func(k coarseKey) rune {
		if r, ok := runeOf[k]; ok {
			return r
		}
		r := nextRune
		nextRune++
		runeOf[k] = r
		return r
	}

	oldRunes := make([]rune, len(remOld))
	for i, k := range remOld {
		oldRunes[i] = toRune(coarseKeyOf(oldDoc, k))
	}
	newRunes := make([]rune, len(remNew))
	for i, k := range remNew {
		newRunes[i] = toRune(coarseKeyOf(newDoc, k))
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(oldRunes, newRunes, false)

	var pairs [][2]dom.NodeId
	fi, ti := 0, 0
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fi += len(d.Text)
		case diffmatchpatch.DiffInsert:
			ti += len(d.Text)
		case diffmatchpatch.DiffEqual:
			for range d.Text {
				ok, nk := remOld[fi], remNew[ti]
				m.set(ok, nk)
				if isReconcilable(oldDoc, ok) && isReconcilable(newDoc, nk) {
					pairs = append(pairs, [2]dom.NodeId{ok, nk})
				}
				fi++
				ti++
			}
		}
	}
	return pairs
}

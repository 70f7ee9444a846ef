// Package diff implements hotmeal's tree differ: a GumTree/Chawathe-style
// structural diff that maps nodes of an old arena tree onto an equivalent
// or changed new tree, then emits a minimal ordered patch.Patch stream.
//
// Matching happens in two phases. Top-down hash matching walks both trees
// looking for subtrees with identical structural hashes — these are
// unchanged regions, found in O(n) and matched wholesale together with
// all of their descendants. Local reconciliation then descends through
// matched pairs and aligns their remaining children with a rune-mapped
// LCS (see reconcile.go), pairing moved, inserted, removed and
// content-changed siblings that the global hash pass was too coarse to
// catch.
//
// Edit emission walks the new tree once, in order, consulting a shadow
// tree (see shadow.go) to compute each patch's node references against
// the state the applier will actually have after every preceding patch in
// the stream — never against the original old tree.
package diff

// Package patch defines hotmeal's patch language: the compact set of edits
// the differ emits and the applier executes against a live arena.
//
// A patch targets nodes by NodeRef, never by the differ's internal NodeId —
// NodeRef is either a Path from the document root or a Slot referencing a
// subtree parked by a previous patch in the same stream (see §4.4-4.5 of
// the design: displacement makes some targets unreachable by Path alone
// until a later patch names the slot that holds them).
//
// Patch values are the wire contract with a remote DOM: each one marshals
// to a single-key JSON object naming its kind, e.g.
// {"SetText":{"at":{"Path":[0,1,0]},"text":"hello"}}. Field order inside
// the value object is insignificant; key names are fixed.
package patch

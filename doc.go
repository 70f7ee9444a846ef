// Package hotmeal is the single library entry point §6 of the
// specification describes: parse HTML into an arena Document, diff two
// Documents into a patch stream, apply that stream to a live Document, and
// serialize a Document back to HTML. Everything else — the arena DOM
// itself, the differ, the patch model, the applier — lives in its own
// subpackage and is usable independently; this package is a thin,
// intentionally small wrapper tying them together for callers who just
// want parse/diff/apply/serialize and don't need the subpackages' own
// types directly.
package hotmeal

package hotmeal

import (
	"bytes"
	"io"

	"github.com/bearcove/hotmeal/apply"
	"github.com/bearcove/hotmeal/diff"
	"github.com/bearcove/hotmeal/dom"
	"github.com/bearcove/hotmeal/patch"
)

// Document is an arena-backed HTML document. It is a type alias, not a
// wrapper, so callers who need dom's own operations (Children, Attrs, and
// so on) can reach for them directly without an import cycle through this
// package.
type Document = dom.Document

// Patch is one edit in a diff's output or an apply's input stream.
type Patch = patch.Patch

// ApplyError is the typed failure apply returns; see apply.Error for its
// Kind values.
type ApplyError = apply.Error

// Parse reads HTML5 and returns the Document it builds. Per §7, this never
// fails on malformed input — the tokenizer and tree builder recover per
// the HTML5 spec — but it still returns an error for I/O failures from r.
func Parse(r io.Reader) (*Document, error) {
	return dom.Parse(r)
}

// ParseString is Parse over a string, for callers that already have the
// whole document in memory.
func ParseString(html string) (*Document, error) {
	return dom.Parse(bytes.NewReader([]byte(html)))
}

// Diff computes the ordered patch stream that transforms old into new.
// Pure: it mutates neither document and is a function of their content
// alone (§8's determinism property).
func Diff(old, new_ *Document) []Patch {
	return diff.Diff(old, new_)
}

// Apply replays patches against doc in order. On error (see ApplyError),
// doc is left partially patched per §7's policy; the caller should discard
// it and re-parse rather than retry in place.
func Apply(doc *Document, patches []Patch) error {
	return apply.Apply(doc, patches)
}

// Serialize writes doc's HTML to w.
func Serialize(w io.Writer, doc *Document) error {
	return doc.Serialize(w, doc.Root())
}

// SerializeString is Serialize into a freshly allocated string.
func SerializeString(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := Serialize(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

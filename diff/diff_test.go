package diff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bearcove/hotmeal/apply"
	"github.com/bearcove/hotmeal/dom"
	"github.com/bearcove/hotmeal/patch"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, html string) *dom.Document {
	t.Helper()
	d, err := dom.Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse %q: %v", html, err)
	}
	return d
}

func mustSerializeDoc(t *testing.T, d *dom.Document) string {
	t.Helper()
	var buf bytes.Buffer
	if err := d.Serialize(&buf, d.Root()); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	return buf.String()
}

func kinds(patches []patch.Patch) []patch.Kind {
	out := make([]patch.Kind, len(patches))
	for i, p := range patches {
		out[i] = p.Kind
	}
	return out
}

func countKind(patches []patch.Patch, k patch.Kind) int {
	n := 0
	for _, p := range patches {
		if p.Kind == k {
			n++
		}
	}
	return n
}

// scenario 1: an attribute is added to an otherwise unchanged element.
func TestScenarioAttributeAdd(t *testing.T) {
	old := mustParse(t, `<div>Content</div>`)
	new_ := mustParse(t, `<div class="highlight">Content</div>`)

	patches := Diff(old, new_)
	if len(patches) != 1 || patches[0].Kind != patch.SetAttributeKind {
		t.Fatalf("got %v", kinds(patches))
	}
	if patches[0].Value != "highlight" {
		t.Fatalf("got value %q", patches[0].Value)
	}
}

// scenario 2: two sibling elements trade places with nothing else
// changing — exactly one Move, no inserts or deletes.
func TestScenarioSiblingSwapIsOneMove(t *testing.T) {
	old := mustParse(t, `<p>First</p><p>Second</p>`)
	new_ := mustParse(t, `<p>Second</p><p>First</p>`)

	patches := Diff(old, new_)
	if len(patches) != 1 || patches[0].Kind != patch.MoveKind {
		t.Fatalf("got %v", kinds(patches))
	}
	if patches[0].InsertAt.Index != 0 {
		t.Fatalf("expected move to index 0, got %+v", patches[0].InsertAt)
	}
}

// scenario 3: one attribute changes on one of several list items;
// whitespace text nodes between list items are left untouched.
func TestScenarioListItemAttributeChangeLeavesWhitespaceAlone(t *testing.T) {
	old := mustParse(t, "<ul>\n  <li>A</li>\n  <li>B</li>\n</ul>")
	new_ := mustParse(t, "<ul>\n  <li>A</li>\n  <li class=\"hidden\">B</li>\n</ul>")

	patches := Diff(old, new_)
	if len(patches) != 1 || patches[0].Kind != patch.SetAttributeKind {
		t.Fatalf("got %v", kinds(patches))
	}
	if patches[0].Value != "hidden" {
		t.Fatalf("got value %q", patches[0].Value)
	}
}

// scenario 4: an attribute changes on a namespaced SVG element.
func TestScenarioSVGAttributeChange(t *testing.T) {
	old := mustParse(t, `<svg viewBox="0 0 10 10"><circle r="10"></circle></svg>`)
	new_ := mustParse(t, `<svg viewBox="0 0 10 10"><circle r="30"></circle></svg>`)

	patches := Diff(old, new_)
	if len(patches) != 1 || patches[0].Kind != patch.SetAttributeKind {
		t.Fatalf("got %v", kinds(patches))
	}
	if patches[0].Value != "30" {
		t.Fatalf("got value %q", patches[0].Value)
	}
}

// scenario 5: a new sibling text node and a new nested text node are
// inserted; the unchanged surrounding divs are never moved.
func TestScenarioNestedInsertionHasNoMoves(t *testing.T) {
	old := mustParse(t, `<div><div></div></div>`)
	new_ := mustParse(t, `A<div><div> </div></div>`)

	patches := Diff(old, new_)
	if countKind(patches, patch.MoveKind) != 0 {
		t.Fatalf("expected no moves, got %v", kinds(patches))
	}
	if countKind(patches, patch.InsertTextKind) != 2 {
		t.Fatalf("expected 2 text inserts, got %v", kinds(patches))
	}
	if countKind(patches, patch.RemoveKind) != 0 {
		t.Fatalf("expected no removes, got %v", kinds(patches))
	}
}

// scenario 6: a single text node's content changes.
func TestScenarioSingleTextChange(t *testing.T) {
	old := mustParse(t, `<p>Hello</p>`)
	new_ := mustParse(t, `<p>World</p>`)

	patches := Diff(old, new_)
	if len(patches) != 1 || patches[0].Kind != patch.SetTextKind {
		t.Fatalf("got %v", kinds(patches))
	}
	if patches[0].Text != "World" {
		t.Fatalf("got text %q", patches[0].Text)
	}
}

// Removing two adjacent siblings must still apply cleanly: each Remove is
// computed against the shadow tree's state *after* the previous Remove in
// this patch stream, not against the old tree's original indices.
func TestScenarioDeleteTwoAdjacentSiblingsRoundTrips(t *testing.T) {
	old := mustParse(t, `<ul><li>A</li><li>B</li><li>C</li></ul>`)
	new_ := mustParse(t, `<ul><li>A</li></ul>`)

	patches := Diff(old, new_)
	if countKind(patches, patch.RemoveKind) != 2 {
		t.Fatalf("expected 2 removes, got %v", kinds(patches))
	}
	for _, p := range patches {
		if p.Kind != patch.RemoveKind {
			t.Fatalf("expected only removes, got %v", kinds(patches))
		}
	}

	if err := apply.Apply(old, patches); err != nil {
		t.Fatalf("apply: %v", err)
	}
	got := mustSerializeDoc(t, old)
	want := mustSerializeDoc(t, new_)
	if got != want {
		t.Fatalf("round trip mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestDiffOfIdenticalDocumentsIsEmpty(t *testing.T) {
	old := mustParse(t, `<div class="a"><p>hi <b>there</b></p></div>`)
	new_ := mustParse(t, `<div class="a"><p>hi <b>there</b></p></div>`)
	if patches := Diff(old, new_); len(patches) != 0 {
		t.Fatalf("expected no patches for identical documents, got %v", kinds(patches))
	}
}

func TestDiffIsDeterministic(t *testing.T) {
	old := mustParse(t, `<ul><li>A</li><li>B</li><li>C</li></ul>`)
	new_ := mustParse(t, `<ul><li>C</li><li>A</li><li>B</li></ul>`)

	first := Diff(old, new_)
	second := Diff(mustParse(t, `<ul><li>A</li><li>B</li><li>C</li></ul>`), mustParse(t, `<ul><li>C</li><li>A</li><li>B</li></ul>`))

	if diff := cmp.Diff(kinds(first), kinds(second)); diff != "" {
		t.Fatalf("non-deterministic patch kinds (-first +second):\n%s", diff)
	}
}

// Comments never participate in matching or emission: removing one from
// the new document produces no patch at all.
func TestCommentsAreInvisibleToTheDiffer(t *testing.T) {
	old := mustParse(t, `<div><!-- note -->Content</div>`)
	new_ := mustParse(t, `<div>Content</div>`)
	if patches := Diff(old, new_); len(patches) != 0 {
		t.Fatalf("expected comments to be ignored entirely, got %v", kinds(patches))
	}
}

func TestUpdatePropertiesEmittedOnlyForMultipleAttributeChanges(t *testing.T) {
	old := mustParse(t, `<div a="1" b="2" c="3"></div>`)
	new_ := mustParse(t, `<div a="9" b="2" c="8"></div>`)

	patches := Diff(old, new_)
	if len(patches) != 1 || patches[0].Kind != patch.UpdatePropertiesKind {
		t.Fatalf("got %v", kinds(patches))
	}
	if !patch.HasRealChange(patches[0].Props) {
		t.Fatal("expected real changes in UpdateProperties payload")
	}
	for _, p := range patches[0].Props {
		if p.Attr.Local.String() == "b" && p.Kind != patch.PropSame {
			t.Fatalf("unchanged attribute b should report Same, got %+v", p)
		}
	}
}

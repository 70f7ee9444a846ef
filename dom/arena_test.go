package dom

import (
	"testing"

	"github.com/bearcove/hotmeal/names"
	"github.com/bearcove/hotmeal/stem"
	"github.com/google/go-cmp/cmp"
)

func quickTag(local string) names.QualName {
	return names.QName(local)
}

func TestAppendAndPositionCache(t *testing.T) {
	d := NewDocument()
	root := d.Root()
	a := d.CreateElement(names.QName("a"), names.HTML, nil)
	b := d.CreateElement(names.QName("b"), names.HTML, nil)
	c := d.CreateElement(names.QName("c"), names.HTML, nil)
	d.Append(root, a)
	d.Append(root, b)
	d.Append(root, c)

	for i, id := range []NodeId{a, b, c} {
		if got := d.Position(id); got != i {
			t.Fatalf("Position(%v) = %d, want %d", id, got, i)
		}
	}
}

func TestInsertBeforeShiftsIndices(t *testing.T) {
	d := NewDocument()
	root := d.Root()
	a := d.CreateElement(names.QName("a"), names.HTML, nil)
	b := d.CreateElement(names.QName("b"), names.HTML, nil)
	d.Append(root, a)
	d.Append(root, b)

	mid := d.CreateElement(names.QName("mid"), names.HTML, nil)
	d.InsertBefore(b, mid)

	assertPositions(t, d, root, []NodeId{a, mid, b})
}

func TestDetachShiftsLaterSiblings(t *testing.T) {
	d := NewDocument()
	root := d.Root()
	a := d.CreateElement(names.QName("a"), names.HTML, nil)
	b := d.CreateElement(names.QName("b"), names.HTML, nil)
	c := d.CreateElement(names.QName("c"), names.HTML, nil)
	d.Append(root, a)
	d.Append(root, b)
	d.Append(root, c)

	d.Detach(b)
	assertPositions(t, d, root, []NodeId{a, c})

	if d.Parent(b) != NoNode {
		t.Fatalf("expected detached node to have no parent")
	}
}

func assertPositions(t *testing.T, d *Document, parent NodeId, want []NodeId) {
	t.Helper()
	got := d.Children(parent)
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i, id := range got {
		if id != want[i] {
			t.Fatalf("children[%d] = %v, want %v", i, id, want[i])
		}
		if d.Position(id) != i {
			t.Fatalf("Position(children[%d]) = %d, want %d", i, d.Position(id), i)
		}
	}
}

func TestSetAttrInsertsThenReplacesInPlace(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement(names.QName("div"), names.HTML, nil)
	classAttr := names.QName("class")
	idAttr := names.QName("id")

	d.SetAttr(el, classAttr, stem.Owned("a"))
	d.SetAttr(el, idAttr, stem.Owned("x"))
	d.SetAttr(el, classAttr, stem.Owned("b"))

	got := flattenAttrs(d.Attrs(el))
	want := []flatAttr{{"class", "b"}, {"id", "x"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
}

// flatAttr projects an Attr down to plain exported strings so cmp.Diff can
// compare it without reaching into stem.Stem's or names.Name's unexported
// representation fields.
type flatAttr struct{ Name, Value string }

func flattenAttrs(attrs []Attr) []flatAttr {
	out := make([]flatAttr, len(attrs))
	for i, a := range attrs {
		out[i] = flatAttr{a.Name.LocalString(), a.Value.String()}
	}
	return out
}

func TestRemoveAttrDropsAllBindings(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement(names.QName("div"), names.HTML, nil)
	d.SetAttr(el, names.QName("class"), stem.Owned("a"))
	d.RemoveAttr(el, names.QName("class"))
	if _, ok := d.GetAttr(el, names.QName("class")); ok {
		t.Fatalf("expected class attribute to be gone")
	}
}

func TestAppendTextMergesAdjacent(t *testing.T) {
	d := NewDocument()
	root := d.Root()
	t1 := d.CreateText(stem.Borrow("hello "))
	d.Append(root, t1)
	d.AppendText(t1, "world")
	if d.ChildCount(root) != 1 {
		t.Fatalf("expected a single merged text node")
	}
	if got := d.Text(t1).String(); got != "hello world" {
		t.Fatalf("got %q", got)
	}
}

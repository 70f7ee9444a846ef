package dom

import (
	"testing"

	"github.com/bearcove/hotmeal/names"
	"github.com/bearcove/hotmeal/stem"
)

func TestArenaSinkMergesAdjacentTextOnAppend(t *testing.T) {
	sink := NewArenaSink()
	root := sink.Root()
	t1 := sink.CreateText("hello ")
	sink.AppendChild(root, t1)
	t2 := sink.CreateText("world")
	sink.AppendChild(root, t2)

	doc := sink.Finish()
	if doc.ChildCount(root) != 1 {
		t.Fatalf("expected adjacent text nodes to merge, got %d children", doc.ChildCount(root))
	}
	if got := doc.Text(t1).String(); got != "hello world" {
		t.Fatalf("got %q", got)
	}
}

func TestArenaSinkDuplicateAttributeFirstWins(t *testing.T) {
	sink := NewArenaSink()
	root := sink.Root()
	attrs := []Attr{
		{Name: names.QName("class"), Value: stem.Borrow("first")},
		{Name: names.QName("class"), Value: stem.Borrow("second")},
	}
	el := sink.CreateElement(names.QName("div"), names.HTML, attrs)
	sink.AppendChild(root, el)

	doc := sink.Finish()
	got := doc.Attrs(el)
	if len(got) != 1 || got[0].Value.String() != "first" {
		t.Fatalf("expected first-wins dedup, got %+v", got)
	}
}

func TestArenaSinkInsertBeforeMergesText(t *testing.T) {
	sink := NewArenaSink()
	root := sink.Root()
	t1 := sink.CreateText("hello")
	sink.AppendChild(root, t1)
	anchorEl := sink.CreateElement(names.QName("br"), names.HTML, nil)
	sink.AppendChild(root, anchorEl)

	t2 := sink.CreateText(" there")
	sink.InsertBefore(root, anchorEl, t2)

	doc := sink.Finish()
	if doc.ChildCount(root) != 2 {
		t.Fatalf("expected text merge before anchor, got %d children", doc.ChildCount(root))
	}
	if got := doc.Text(t1).String(); got != "hello there" {
		t.Fatalf("got %q", got)
	}
}

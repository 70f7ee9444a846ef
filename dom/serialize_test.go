package dom

import (
	"strings"
	"testing"

	"github.com/bearcove/hotmeal/names"
	"github.com/bearcove/hotmeal/stem"
)

func TestSerializeEscapesText(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement(quickTag("p"), names.HTML, nil)
	doc.Append(doc.Root(), p)
	txt := doc.CreateText(stem.Owned("a < b & c"))
	doc.Append(p, txt)

	var buf strings.Builder
	if err := doc.Serialize(&buf, doc.Root()); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := "<p>a &lt; b &amp; c</p>"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestSerializeRawTextElementIsUnescaped(t *testing.T) {
	doc := NewDocument()
	script := doc.CreateElement(quickTag("script"), names.HTML, nil)
	doc.Append(doc.Root(), script)
	txt := doc.CreateText(stem.Owned("if (a < b) {}"))
	doc.Append(script, txt)

	var buf strings.Builder
	if err := doc.Serialize(&buf, doc.Root()); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := "<script>if (a < b) {}</script>"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func TestSerializeVoidElementSelfCloses(t *testing.T) {
	doc := NewDocument()
	br := doc.CreateElement(quickTag("br"), names.HTML, nil)
	doc.Append(doc.Root(), br)

	var buf strings.Builder
	if err := doc.Serialize(&buf, doc.Root()); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if buf.String() != "<br>" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestSerializeDoctype(t *testing.T) {
	doc := NewDocument()
	dt := doc.CreateDoctype(stem.Owned("html"), stem.Stem{}, stem.Stem{})
	doc.Append(doc.Root(), dt)

	var buf strings.Builder
	if err := doc.Serialize(&buf, doc.Root()); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if buf.String() != "<!DOCTYPE html>" {
		t.Fatalf("got %q", buf.String())
	}
}

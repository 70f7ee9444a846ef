package dom

import (
	"strings"
	"testing"

	"github.com/bearcove/hotmeal/names"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		`<div>Content</div>`,
		`<p>First</p><p>Second</p>`,
		`<svg viewBox="0 0 100 100"><circle r="40"/></svg>`,
		`<ul>
  <li>A</li>
  <li>B</li>
</ul>`,
	}
	for _, src := range cases {
		doc, err := Parse(strings.NewReader(src))
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		var buf strings.Builder
		if err := doc.Serialize(&buf, doc.Root()); err != nil {
			t.Fatalf("Serialize: %v", err)
		}

		doc2, err := Parse(strings.NewReader(buf.String()))
		if err != nil {
			t.Fatalf("re-parse of serialized output: %v", err)
		}
		var buf2 strings.Builder
		if err := doc2.Serialize(&buf2, doc2.Root()); err != nil {
			t.Fatalf("Serialize (second pass): %v", err)
		}
		if buf.String() != buf2.String() {
			t.Fatalf("round trip mismatch:\nfirst:  %q\nsecond: %q", buf.String(), buf2.String())
		}
	}
}

func TestParsePreservesNamespacedAttribute(t *testing.T) {
	src := `<svg><a xlink:href="#x">link</a></svg>`
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Path: document -> html -> body (after head) -> svg -> a.
	html, _ := doc.ChildAt(doc.Root(), 0)
	body, _ := doc.ChildAt(html, 1)
	svg, _ := doc.ChildAt(body, 0)
	a, _ := doc.ChildAt(svg, 0)
	val, ok := doc.GetAttr(a, names.QNamePrefixed("xlink", names.XLink, "href"))
	if !ok {
		t.Fatalf("expected xlink:href to survive parse")
	}
	if val.String() != "#x" {
		t.Fatalf("got %q", val.String())
	}
}

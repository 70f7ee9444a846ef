package dom

import (
	"strings"
	"testing"
)

func TestStructuralHashEqualForIdenticalTrees(t *testing.T) {
	a, _ := Parse(strings.NewReader(`<div><p>hi</p></div>`))
	b, _ := Parse(strings.NewReader(`<div><p>hi</p></div>`))
	if a.StructuralHash(a.Root()) != b.StructuralHash(b.Root()) {
		t.Fatalf("expected identical trees to hash equally")
	}
}

func TestStructuralHashDiffersOnTextChange(t *testing.T) {
	a, _ := Parse(strings.NewReader(`<div><p>hi</p></div>`))
	b, _ := Parse(strings.NewReader(`<div><p>bye</p></div>`))
	if a.StructuralHash(a.Root()) == b.StructuralHash(b.Root()) {
		t.Fatalf("expected differing text to change the structural hash")
	}
}

func TestStructuralHashDiffersOnAttributeOrder(t *testing.T) {
	a, _ := Parse(strings.NewReader(`<div a="1" b="2"></div>`))
	b, _ := Parse(strings.NewReader(`<div b="2" a="1"></div>`))
	if a.StructuralHash(a.Root()) == b.StructuralHash(b.Root()) {
		t.Fatalf("expected attribute-order permutation to change the hash (open question: order sensitivity is intentional)")
	}
}

func TestHeightIsZeroForLeaf(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement(quickTag("br"), nil, nil)
	doc.Append(doc.Root(), el)
	if h := doc.Height(el); h != 0 {
		t.Fatalf("expected leaf height 0, got %d", h)
	}
	if h := doc.Height(doc.Root()); h != 1 {
		t.Fatalf("expected root height 1, got %d", h)
	}
}

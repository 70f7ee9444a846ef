package names

import (
	"encoding/json"
	"testing"
)

func TestInternIsPointerEqual(t *testing.T) {
	a := Intern("div")
	b := Intern("div")
	if a != b {
		t.Fatalf("Intern(%q) returned distinct pointers", "div")
	}
	c := Intern("span")
	if a == c {
		t.Fatalf("Intern returned the same pointer for distinct strings")
	}
}

func TestQualNameEqualIgnoresPrefix(t *testing.T) {
	a := QNamePrefixed("xlink", XLink, "href")
	b := QNamePrefixed("xl", XLink, "href")
	if !a.Equal(b) {
		t.Fatalf("expected %+v to equal %+v regardless of prefix", a, b)
	}
	c := QName("href")
	if a.Equal(c) {
		t.Fatalf("expected namespaced href to differ from unnamespaced href")
	}
}

func TestQualNameJSONRoundTrip(t *testing.T) {
	q := QNamePrefixed("xml", XML, "lang")
	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got QualName
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(q) || got.PrefixString() != "xml" {
		t.Fatalf("round trip mismatch: got %+v from %+v", got, q)
	}
}

func TestQNameDefaultsToHTMLNoPrefix(t *testing.T) {
	q := QName("class")
	if q.PrefixString() != "" {
		t.Fatalf("expected no prefix, got %q", q.PrefixString())
	}
	if q.NS != HTML {
		t.Fatalf("expected HTML namespace")
	}
}

package stem

import "testing"

func TestBorrowedAndOwnedCompareEqual(t *testing.T) {
	b := Borrow("hello")
	o := Owned("hello")
	if !b.Equal(o) {
		t.Fatalf("expected borrowed and owned stems with equal contents to compare equal")
	}
}

func TestPushStringPromotesToOwned(t *testing.T) {
	input := "hello "
	s := Borrow(input)
	if !s.IsBorrowed() {
		t.Fatalf("expected freshly-borrowed stem")
	}
	s.PushString("world")
	if s.IsBorrowed() {
		t.Fatalf("expected PushString to promote to owned")
	}
	if s.String() != "hello world" {
		t.Fatalf("got %q", s.String())
	}
	if input != "hello " {
		t.Fatalf("PushString mutated the original input buffer: %q", input)
	}
}

func TestEmptyAndLen(t *testing.T) {
	var z Stem
	if !z.IsEmpty() || z.Len() != 0 {
		t.Fatalf("zero Stem should be empty")
	}
	s := Owned("abc")
	if s.IsEmpty() || s.Len() != 3 {
		t.Fatalf("expected non-empty length-3 stem")
	}
}

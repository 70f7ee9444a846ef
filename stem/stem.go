// Package stem implements Stem, the compact string type hotmeal uses for
// text content, comments, and attribute values.
//
// A Stem starts out borrowed: a slice of the input buffer the document was
// parsed from, at zero copy cost. Any mutation — appending a fragment during
// text-node merging, or replacing contents via SetText — upgrades it to an
// owned, independently allocated string in place. Borrowed and owned Stems
// compare equal exactly when their contents match; callers never need to
// know which representation they hold.
package stem

import "strings"

// Stem is a small string value that may share storage with the buffer it
// was parsed from. The zero Stem is the empty string.
type Stem struct {
	borrowed string
	owned    *strings.Builder
}

// Borrow wraps s without copying. The caller must not mutate the bytes
// backing s afterward.
func Borrow(s string) Stem {
	return Stem{borrowed: s}
}

// Owned copies s into a new, independently owned Stem.
func Owned(s string) Stem {
	var b strings.Builder
	b.WriteString(s)
	return Stem{owned: &b}
}

// String returns the Stem's contents.
func (s Stem) String() string {
	if s.owned != nil {
		return s.owned.String()
	}
	return s.borrowed
}

// IsEmpty reports whether the Stem holds no characters.
func (s Stem) IsEmpty() bool {
	if s.owned != nil {
		return s.owned.Len() == 0
	}
	return s.borrowed == ""
}

// Len returns the length of the Stem's contents in bytes.
func (s Stem) Len() int {
	if s.owned != nil {
		return s.owned.Len()
	}
	return len(s.borrowed)
}

// Equal compares contents, independent of representation.
func (s Stem) Equal(o Stem) bool {
	return s.String() == o.String()
}

// PushString appends extra to the Stem's contents. A borrowed Stem is
// promoted to owned first so the original input buffer is never mutated.
// This is the operation that lets the tree sink merge adjacent text nodes
// in place instead of allocating a new node per text run.
func (s *Stem) PushString(extra string) {
	if extra == "" {
		return
	}
	if s.owned == nil {
		var b strings.Builder
		b.Grow(len(s.borrowed) + len(extra))
		b.WriteString(s.borrowed)
		s.owned = &b
		s.borrowed = ""
	}
	s.owned.WriteString(extra)
}

// IsBorrowed reports whether the Stem still shares storage with its
// originating buffer. Exposed for tests and diagnostics only; ordinary
// code should never need to branch on representation.
func (s Stem) IsBorrowed() bool {
	return s.owned == nil
}

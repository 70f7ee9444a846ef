package dbgprint

import "github.com/fatih/color"

// role names one purpose a colorized token can serve, mirroring the
// teacher's Colorable{Type, Attr} map shape (encode/encode_colors.go) but
// keyed on what a dom.Document/patch.Patch dump actually prints instead of
// an IR type.
type role int

const (
	tagRole role = iota
	attrNameRole
	attrValueRole
	textRole
	commentRole
	patchKindRole
	refRole
	dimRole
)

type colorSet struct {
	plain bool
	fns   map[role]func(string, ...any) string
}

func newColorSet(plain bool) *colorSet {
	c := &colorSet{plain: plain, fns: map[role]func(string, ...any) string{}}
	if plain {
		return c
	}
	c.fns[tagRole] = color.New(color.FgHiBlue, color.Bold).SprintfFunc()
	c.fns[attrNameRole] = color.RGB(196, 96, 16).SprintfFunc()
	c.fns[attrValueRole] = color.RGB(8, 196, 16).SprintfFunc()
	c.fns[textRole] = color.New(color.FgWhite).SprintfFunc()
	c.fns[commentRole] = color.New(color.FgGreen).SprintfFunc()
	c.fns[patchKindRole] = color.New(color.FgMagenta, color.Bold).SprintfFunc()
	c.fns[refRole] = color.New(color.FgCyan).SprintfFunc()
	c.fns[dimRole] = color.New(color.FgHiBlack).SprintfFunc()
	return c
}

func (c *colorSet) sprint(r role, s string) string {
	f, ok := c.fns[r]
	if !ok {
		return s
	}
	return f(s)
}

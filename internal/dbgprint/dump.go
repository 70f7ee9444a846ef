// Package dbgprint is a colorized human-readable dumper for the arena DOM
// and patch streams, for tracing a diff/apply run from inside this module
// (as an internal package it cannot be imported from other modules). It
// carries no environment-variable gate and no global state of its own:
// Dump colorizes only when writing to a terminal, and Sprint always
// requests color.
//
// A Display-style depth-indented tree walker paired with a role-keyed
// color map built on fatih/color.
package dbgprint

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bearcove/hotmeal/dom"
	"github.com/mattn/go-isatty"
)

// Dump writes a depth-indented tree of doc starting at its root to w,
// colorizing when w is a terminal.
func Dump(w io.Writer, doc *dom.Document) error {
	return DumpNode(w, doc, doc.Root())
}

// DumpNode writes a depth-indented tree rooted at id to w.
func DumpNode(w io.Writer, doc *dom.Document, id dom.NodeId) error {
	c := newColorSet(!wantColor(w))
	return dumpNode(w, doc, id, 0, c)
}

func wantColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func dumpNode(w io.Writer, doc *dom.Document, id dom.NodeId, depth int, c *colorSet) error {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch doc.Kind(id) {
	case dom.DocumentKind:
		for _, ch := range doc.Children(id) {
			if err := dumpNode(w, doc, ch, depth, c); err != nil {
				return err
			}
		}
		return nil
	case dom.ElementKind:
		tag := doc.Tag(id).LocalString()
		if _, err := fmt.Fprintf(w, "%s<%s", indent, c.sprint(tagRole, tag)); err != nil {
			return err
		}
		for _, a := range doc.Attrs(id) {
			name := a.Name.LocalString()
			if _, err := fmt.Fprintf(w, " %s=%s", c.sprint(attrNameRole, name), c.sprint(attrValueRole, strconv.Quote(a.Value.String()))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "> %s\n", c.sprint(dimRole, fmt.Sprintf("[#%d]", id))); err != nil {
			return err
		}
		for _, ch := range doc.Children(id) {
			if err := dumpNode(w, doc, ch, depth+1, c); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s</%s>\n", indent, c.sprint(tagRole, tag))
		return err
	case dom.TextKind:
		_, err := fmt.Fprintf(w, "%sTEXT %s\n", indent, c.sprint(textRole, strconv.Quote(doc.Text(id).String())))
		return err
	case dom.CommentKind:
		_, err := fmt.Fprintf(w, "%sCOMMENT %s\n", indent, c.sprint(commentRole, strconv.Quote(doc.Text(id).String())))
		return err
	case dom.DoctypeKind:
		_, err := fmt.Fprintf(w, "%sDOCTYPE %s\n", indent, doc.Text(id).String())
		return err
	case dom.ProcessingInstructionKind:
		target, data := doc.ProcessingInstruction(id)
		_, err := fmt.Fprintf(w, "%sPI %s %s\n", indent, target.String(), data.String())
		return err
	default:
		_, err := fmt.Fprintf(w, "%s?\n", indent)
		return err
	}
}

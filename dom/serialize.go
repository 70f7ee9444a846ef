package dom

import (
	"io"
	"strings"

	"github.com/bearcove/hotmeal/names"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

var rawTextElements = map[string]bool{
	"script": true, "style": true, "textarea": true, "title": true,
	"pre": true, "noscript": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "plaintext": true,
}

// Serialize writes id's subtree as HTML to w. Void elements self-close,
// known raw-text elements emit their text children unescaped, and
// everything else escapes &, <, > in text and &, " in attribute values.
//
// Parsing the output of Serialize yields a document that re-serializes to
// the same bytes: Serialize never emits anything the parser would not
// round-trip.
func (d *Document) Serialize(w io.Writer, id NodeId) error {
	sw := &serializeWriter{w: w}
	d.serializeNode(sw, id)
	return sw.err
}

type serializeWriter struct {
	w   io.Writer
	err error
}

func (sw *serializeWriter) WriteString(s string) {
	if sw.err != nil {
		return
	}
	_, sw.err = io.WriteString(sw.w, s)
}

func (d *Document) serializeNode(w *serializeWriter, id NodeId) {
	n := d.slot(id)
	switch n.kind {
	case DocumentKind:
		for c := n.firstChild; c != NoNode; c = d.slot(c).nextSibling {
			d.serializeNode(w, c)
		}
	case DoctypeKind:
		d.serializeDoctype(w, n)
	case ElementKind:
		d.serializeElement(w, id, n)
	case TextKind:
		w.WriteString(escapeText(n.text.String()))
	case CommentKind:
		w.WriteString("<!--")
		w.WriteString(n.text.String())
		w.WriteString("-->")
	case ProcessingInstructionKind:
		w.WriteString("<?")
		w.WriteString(n.piTarget.String())
		w.WriteString(" ")
		w.WriteString(n.piData.String())
		w.WriteString("?>")
	}
}

func (d *Document) serializeDoctype(w *serializeWriter, n *node) {
	w.WriteString("<!DOCTYPE ")
	w.WriteString(n.doctypeName.String())
	if pub := n.publicID.String(); pub != "" {
		w.WriteString(" PUBLIC \"")
		w.WriteString(pub)
		w.WriteString("\"")
		if sys := n.systemID.String(); sys != "" {
			w.WriteString(" \"")
			w.WriteString(sys)
			w.WriteString("\"")
		}
	} else if sys := n.systemID.String(); sys != "" {
		w.WriteString(" SYSTEM \"")
		w.WriteString(sys)
		w.WriteString("\"")
	}
	w.WriteString(">")
}

func (d *Document) serializeElement(w *serializeWriter, id NodeId, n *node) {
	local := n.tag.LocalString()
	w.WriteString("<")
	w.WriteString(local)
	for _, a := range n.attrs {
		w.WriteString(" ")
		w.WriteString(attrName(a.Name))
		w.WriteString("=\"")
		w.WriteString(escapeAttr(a.Value.String()))
		w.WriteString("\"")
	}
	if voidElements[local] && n.namespace.String() == "html" {
		w.WriteString(">")
		return
	}
	w.WriteString(">")
	raw := rawTextElements[local] && n.namespace.String() == "html"
	for c := n.firstChild; c != NoNode; c = d.slot(c).nextSibling {
		if raw && d.slot(c).kind == TextKind {
			w.WriteString(d.slot(c).text.String())
			continue
		}
		d.serializeNode(w, c)
	}
	w.WriteString("</")
	w.WriteString(local)
	w.WriteString(">")
}

func attrName(q names.QualName) string {
	if p := q.PrefixString(); p != "" {
		return p + ":" + q.LocalString()
	}
	return q.LocalString()
}

func escapeText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeAttr(s string) string {
	if !strings.ContainsAny(s, "&\"") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

package dom

import (
	"io"

	"golang.org/x/net/html"

	"github.com/bearcove/hotmeal/names"
	"github.com/bearcove/hotmeal/stem"
)

// Parse always succeeds; HTML5 parse errors are recovered per spec and
// never surface as a Go error. Read failures on r are the only way this
// can fail.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	sink := NewArenaSink()
	BuildFromHTMLNode(sink, root)
	return sink.Finish(), nil
}

// BuildFromHTMLNode drives sink from an already tokenized and tree-built
// golang.org/x/net/html node, the external tree-sink source this package
// treats as a black box. It performs the translation step §4.1 assigns to
// hotmeal's own code: interning names, wrapping values as Stems, resolving
// namespaces, and replaying the finished tree into sink as a sequence of
// create and append calls (AppendDoctype, AppendChild).
func BuildFromHTMLNode(sink TreeSink, root *html.Node) {
	b := &htmlBuilder{sink: sink}
	b.walkDocument(root)
	sink.Finish()
}

type htmlBuilder struct {
	sink TreeSink
}

func (b *htmlBuilder) walkDocument(doc *html.Node) {
	root := b.sink.Root()
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.DoctypeNode:
			pub, sys := doctypeIDs(c)
			b.sink.AppendDoctype(c.Data, pub, sys)
		case html.ElementNode, html.CommentNode, html.TextNode:
			b.appendConverted(root, c)
		}
	}
}

func doctypeIDs(n *html.Node) (publicID, systemID string) {
	for _, a := range n.Attr {
		switch a.Key {
		case "public":
			publicID = a.Val
		case "system":
			systemID = a.Val
		}
	}
	return
}

// appendConverted converts an *html.Node (and its subtree) into arena
// nodes and appends the result under parent.
func (b *htmlBuilder) appendConverted(parent NodeId, n *html.Node) {
	id, ok := b.convert(n)
	if !ok {
		return
	}
	b.sink.AppendChild(parent, id)
	if n.Type == html.ElementNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			b.appendConverted(id, c)
		}
	}
}

// convert creates the arena node for n itself, without recursing into
// children — callers decide whether and how to attach descendants.
func (b *htmlBuilder) convert(n *html.Node) (NodeId, bool) {
	switch n.Type {
	case html.ElementNode:
		ns := names.NamespaceByURI(namespaceURI(n.Namespace))
		tag := names.QNameIn(ns, n.Data)
		attrs := make([]Attr, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, Attr{Name: convertAttrName(a), Value: stem.Borrow(a.Val)})
		}
		return b.sink.CreateElement(tag, ns, attrs), true
	case html.TextNode:
		return b.sink.CreateText(n.Data), true
	case html.CommentNode:
		return b.sink.CreateComment(n.Data), true
	default:
		return NoNode, false
	}
}

// namespaceURI maps x/net/html's short namespace tags to the URIs
// names.NamespaceByURI expects, since x/net/html itself only distinguishes
// "", "svg", and "math".
func namespaceURI(short string) string {
	switch short {
	case "svg":
		return "http://www.w3.org/2000/svg"
	case "math":
		return "http://www.w3.org/1998/Math/MathML"
	default:
		return ""
	}
}

func convertAttrName(a html.Attribute) names.QualName {
	switch a.Namespace {
	case "xlink":
		return names.QNamePrefixed("xlink", names.XLink, a.Key)
	case "xml":
		return names.QNamePrefixed("xml", names.XML, a.Key)
	case "xmlns":
		return names.QNamePrefixed("xmlns", names.XMLNS, a.Key)
	default:
		return names.QName(a.Key)
	}
}

// Package names implements the interned identifiers shared across hotmeal's
// arena, differ, and patch packages: local names, namespaces, and qualified
// names.
//
// Local names are interned process-wide so that identical tag and attribute
// names compare and hash by pointer identity. The intern table is append-only
// and safe for concurrent use: every lookup and insertion is serialized
// behind a single mutex, which is the only discipline the interning scheme
// requires.
package names

import "sync"

// Name is an interned local name: an element tag's local part or an
// attribute's local part. Two Names are equal if and only if they point to
// the same underlying string.
type Name struct {
	s string
}

// String returns the name's text.
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	return n.s
}

var (
	internMu    sync.Mutex
	internTable = make(map[string]*Name)
)

// Intern returns the canonical *Name for s, allocating it on first sight.
// Concurrent calls are safe; the table only grows.
func Intern(s string) *Name {
	internMu.Lock()
	defer internMu.Unlock()
	if n, ok := internTable[s]; ok {
		return n
	}
	n := &Name{s: s}
	internTable[s] = n
	return n
}

// Namespace identifies the XML namespace a qualified name belongs to.
// Namespaces are compared and hashed by identity, like Name.
type Namespace struct {
	s string
}

func (ns *Namespace) String() string {
	if ns == nil {
		return ""
	}
	return ns.s
}

var (
	HTML   = &Namespace{"html"}
	SVG    = &Namespace{"svg"}
	MathML = &Namespace{"mathml"}
	XLink  = &Namespace{"xlink"}
	XML    = &Namespace{"xml"}
	XMLNS  = &Namespace{"xmlns"}
)

// NamespaceByURI maps the namespace URIs used by golang.org/x/net/html to
// hotmeal's closed namespace set. Unrecognized or empty URIs resolve to
// HTML, matching how the HTML5 tree construction algorithm treats elements
// with no explicit namespace.
func NamespaceByURI(uri string) *Namespace {
	switch uri {
	case "", "http://www.w3.org/1999/xhtml":
		return HTML
	case "http://www.w3.org/2000/svg":
		return SVG
	case "http://www.w3.org/1998/Math/MathML":
		return MathML
	case "http://www.w3.org/1999/xlink":
		return XLink
	case "http://www.w3.org/XML/1998/namespace":
		return XML
	case "http://www.w3.org/2000/xmlns/":
		return XMLNS
	default:
		return HTML
	}
}

// QualName is a qualified name: an optional source prefix, a namespace, and
// a local name. Element tags only ever populate Namespace and Local — the
// source prefix is discarded during parsing, matching how browsers parse
// HTML. Attributes keep Prefix so that namespaced forms like xlink:href and
// xml:lang survive a round trip.
type QualName struct {
	Prefix *Name
	NS     *Namespace
	Local  *Name
}

// QName interns local and builds a QualName in the HTML namespace with no
// prefix — the common case for element tags and plain attributes.
func QName(local string) QualName {
	return QualName{NS: HTML, Local: Intern(local)}
}

// QNameIn builds a QualName for an explicit namespace.
func QNameIn(ns *Namespace, local string) QualName {
	return QualName{NS: ns, Local: Intern(local)}
}

// QNamePrefixed builds a namespaced, prefixed QualName, e.g. xlink:href.
func QNamePrefixed(prefix string, ns *Namespace, local string) QualName {
	var p *Name
	if prefix != "" {
		p = Intern(prefix)
	}
	return QualName{Prefix: p, NS: ns, Local: Intern(local)}
}

// Equal reports whether two qualified names refer to the same namespace and
// local part. Prefix is not part of identity: xlink:href and a differently
// prefixed but equivalent attribute compare equal if namespace and local
// match, matching XML Namespaces semantics.
func (q QualName) Equal(o QualName) bool {
	return q.NS == o.NS && q.Local == o.Local
}

// LocalString returns the local name's text, or "" for the zero QualName.
func (q QualName) LocalString() string {
	return q.Local.String()
}

// PrefixString returns the source prefix's text, or "" if there was none.
func (q QualName) PrefixString() string {
	return q.Prefix.String()
}

// NamespaceString returns the namespace's text, or "" for the zero QualName.
func (q QualName) NamespaceString() string {
	return q.NS.String()
}

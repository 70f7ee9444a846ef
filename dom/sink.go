package dom

import (
	"github.com/bearcove/hotmeal/names"
	"github.com/bearcove/hotmeal/stem"
)

// TreeSink is the fixed set of tree-construction operations an HTML5
// tokenizer/tree-builder drives while parsing a document. hotmeal treats
// the tokenizer and tree-construction algorithm themselves as an external,
// black-box collaborator (see BuildFromHTMLNode); TreeSink is the interface
// hotmeal's own arena adapter implements so that collaborator's callbacks
// become arena mutations.
//
// There is exactly one production implementation, arenaSink, so this stays
// a concrete interface with a fixed method set rather than something
// dispatched dynamically per tokenizer.
type TreeSink interface {
	// CreateElement returns a new parentless element node. tag and the
	// attribute names arrive already interned as names.QualName values.
	// Duplicate attribute bindings are dropped: the first binding for each
	// qualified name wins.
	CreateElement(tag names.QualName, ns *names.Namespace, attrs []Attr) NodeId
	// CreateComment returns a new parentless comment node.
	CreateComment(text string) NodeId
	// CreateText returns a new parentless text node.
	CreateText(text string) NodeId
	// AppendDoctype appends a doctype node to the document root.
	AppendDoctype(name, publicID, systemID string)
	// AppendChild appends child as parent's last child. If child is a text
	// node and parent's current last child is also a text node, the
	// fragment is merged into the existing node instead of appending a
	// second one.
	AppendChild(parent, child NodeId)
	// InsertBefore inserts newNode before anchor under parent, with the
	// same text-merging behavior as AppendChild when newNode is text and
	// the node immediately before the insertion point is also text.
	InsertBefore(parent, anchor, newNode NodeId)
	// Detach removes node from its current parent, if any.
	Detach(node NodeId)
	// Reparent moves all children of from onto to, used by the HTML5 tree
	// construction algorithm's adoption agency and table foster-parenting
	// steps.
	Reparent(from, to NodeId)
	// SetQuirksMode records the document's quirks mode as determined by
	// its doctype. hotmeal does not alter parsing behavior based on this;
	// arenaSink stores the flag but exposes no accessor for it.
	SetQuirksMode(quirks bool)
	// ProcessError records a recoverable parse error. Errors never abort
	// parsing: the resulting tree is always well-formed per HTML5 tree
	// construction.
	ProcessError(msg string)
	// Root returns the NodeId of the document root, the implicit parent
	// of top-level doctype, element, text, and comment nodes.
	Root() NodeId
	// Finish returns the completed Document.
	Finish() *Document
}

// arenaSink is the sole TreeSink implementation: it drives a Document's
// arena directly.
type arenaSink struct {
	doc    *Document
	quirks bool
}

// NewArenaSink returns a TreeSink that builds into a fresh Document.
func NewArenaSink() TreeSink {
	return &arenaSink{doc: NewDocument()}
}

func (s *arenaSink) CreateElement(tag names.QualName, ns *names.Namespace, attrs []Attr) NodeId {
	dedup := dedupFirstWins(attrs)
	return s.doc.CreateElement(tag, ns, dedup)
}

// dedupFirstWins keeps only the first binding for each qualified name,
// matching the HTML5 parser's duplicate-attribute rule.
func dedupFirstWins(attrs []Attr) []Attr {
	if len(attrs) < 2 {
		return attrs
	}
	seen := make(map[names.QualName]bool, len(attrs))
	out := make([]Attr, 0, len(attrs))
	for _, a := range attrs {
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		out = append(out, a)
	}
	return out
}

func (s *arenaSink) CreateComment(text string) NodeId {
	return s.doc.CreateComment(stem.Borrow(text))
}

func (s *arenaSink) CreateText(text string) NodeId {
	return s.doc.CreateText(stem.Borrow(text))
}

func (s *arenaSink) AppendDoctype(name, publicID, systemID string) {
	dt := s.doc.CreateDoctype(stem.Borrow(name), stem.Borrow(publicID), stem.Borrow(systemID))
	s.doc.Append(s.doc.Root(), dt)
}

func (s *arenaSink) AppendChild(parent, child NodeId) {
	if s.doc.Kind(child) == TextKind {
		if last := s.doc.LastChild(parent); last != NoNode && s.doc.Kind(last) == TextKind {
			s.doc.AppendText(last, s.doc.Text(child).String())
			return
		}
	}
	s.doc.Append(parent, child)
}

func (s *arenaSink) InsertBefore(parent, anchor, newNode NodeId) {
	if s.doc.Kind(newNode) == TextKind {
		if prev := s.doc.PrevSibling(anchor); prev != NoNode && s.doc.Kind(prev) == TextKind {
			s.doc.AppendText(prev, s.doc.Text(newNode).String())
			return
		}
	}
	s.doc.InsertBefore(anchor, newNode)
}

func (s *arenaSink) Detach(node NodeId) {
	s.doc.Detach(node)
}

func (s *arenaSink) Reparent(from, to NodeId) {
	for _, c := range s.doc.Children(from) {
		s.doc.Detach(c)
		s.doc.Append(to, c)
	}
}

func (s *arenaSink) SetQuirksMode(quirks bool) {
	s.quirks = quirks
}

func (s *arenaSink) ProcessError(msg string) {
	// Parse errors never fail the build; the tree is always well-formed
	// per HTML5 tree construction. There is nowhere useful to route them
	// in a library with no logging configuration of its own.
}

func (s *arenaSink) Root() NodeId {
	return s.doc.Root()
}

func (s *arenaSink) Finish() *Document {
	return s.doc
}

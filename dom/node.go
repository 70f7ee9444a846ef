package dom

import (
	"github.com/bearcove/hotmeal/names"
	"github.com/bearcove/hotmeal/stem"
)

// NodeId is a dense index into a Document's arena. The zero value is the
// id of the document root, which is always allocated first; use NoNode for
// "no node".
type NodeId int32

// NoNode is the sentinel NodeId meaning "absent" — no parent, no sibling,
// no child.
const NoNode NodeId = -1

// Kind discriminates the variant payload a node slot carries.
type Kind uint8

const (
	DocumentKind Kind = iota
	DoctypeKind
	ElementKind
	TextKind
	CommentKind
	ProcessingInstructionKind
)

func (k Kind) String() string {
	switch k {
	case DocumentKind:
		return "Document"
	case DoctypeKind:
		return "Doctype"
	case ElementKind:
		return "Element"
	case TextKind:
		return "Text"
	case CommentKind:
		return "Comment"
	case ProcessingInstructionKind:
		return "ProcessingInstruction"
	default:
		return "Unknown"
	}
}

// Attr is one ordered (name, value) binding on an element. Attributes are
// kept as a sequence rather than a map: HTML parsing preserves source
// order, diff output must be deterministic, and duplicate bindings follow
// "first wins" per the HTML5 parser rule — none of which a map preserves.
type Attr struct {
	Name  names.QualName
	Value stem.Stem
}

// node is one arena slot. Only the fields relevant to Kind are meaningful;
// the rest sit at their zero value, mirroring the original Rust tagged
// union's "variant payload" without the allocation a boxed sum type would
// otherwise require.
type node struct {
	kind Kind

	parent, firstChild, lastChild, prevSibling, nextSibling NodeId
	index                                                    int // cached rank among siblings

	// Element
	tag       names.QualName
	namespace *names.Namespace
	attrs     []Attr

	// Doctype
	doctypeName, publicID, systemID stem.Stem

	// Text, Comment
	text stem.Stem

	// ProcessingInstruction
	piTarget, piData stem.Stem
}

// Document owns an arena of nodes and the NodeId of its root (always a
// Document-kind node). Two Documents never alias: each owns its arena
// exclusively, so they may be diffed against one another freely and
// mutated concurrently by different goroutines.
type Document struct {
	arena []node
	root  NodeId
}

// NewDocument returns an empty document consisting of just a Document-kind
// root node.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.alloc(node{kind: DocumentKind, parent: NoNode, firstChild: NoNode, lastChild: NoNode, prevSibling: NoNode, nextSibling: NoNode})
	return d
}

// Root returns the NodeId of the document's root node.
func (d *Document) Root() NodeId { return d.root }

func (d *Document) alloc(n node) NodeId {
	id := NodeId(len(d.arena))
	d.arena = append(d.arena, n)
	return id
}

func (d *Document) slot(id NodeId) *node {
	return &d.arena[id]
}

// Kind returns the node's variant.
func (d *Document) Kind(id NodeId) Kind { return d.slot(id).kind }

// Parent returns the node's parent, or NoNode if it is detached or the
// root.
func (d *Document) Parent(id NodeId) NodeId { return d.slot(id).parent }

// FirstChild, LastChild, PrevSibling, NextSibling expose the arena's
// doubly-linked structure directly.
func (d *Document) FirstChild(id NodeId) NodeId  { return d.slot(id).firstChild }
func (d *Document) LastChild(id NodeId) NodeId   { return d.slot(id).lastChild }
func (d *Document) PrevSibling(id NodeId) NodeId { return d.slot(id).prevSibling }
func (d *Document) NextSibling(id NodeId) NodeId { return d.slot(id).nextSibling }

// Tag returns an element's qualified tag name. Zero value for non-elements.
func (d *Document) Tag(id NodeId) names.QualName { return d.slot(id).tag }

// Namespace returns an element's namespace, or nil for non-elements.
func (d *Document) Namespace(id NodeId) *names.Namespace { return d.slot(id).namespace }

// Attrs returns an element's ordered attribute sequence. The returned slice
// must not be mutated by callers outside this package.
func (d *Document) Attrs(id NodeId) []Attr { return d.slot(id).attrs }

// Text returns the contents of a Text, Comment, or Doctype's name, per
// Kind. For anything else it returns the zero Stem.
func (d *Document) Text(id NodeId) stem.Stem {
	n := d.slot(id)
	switch n.kind {
	case TextKind, CommentKind:
		return n.text
	case DoctypeKind:
		return n.doctypeName
	}
	return stem.Stem{}
}

// Doctype returns a Doctype node's name, public id, and system id.
func (d *Document) Doctype(id NodeId) (name, publicID, systemID stem.Stem) {
	n := d.slot(id)
	return n.doctypeName, n.publicID, n.systemID
}

// ProcessingInstruction returns a PI node's target and data.
func (d *Document) ProcessingInstruction(id NodeId) (target, data stem.Stem) {
	n := d.slot(id)
	return n.piTarget, n.piData
}

// Position returns id's rank among its parent's children. O(1) via the
// cached index every mutation in this package keeps in sync.
func (d *Document) Position(id NodeId) int { return d.slot(id).index }

// Children returns id's children as a newly allocated slice, in order.
func (d *Document) Children(id NodeId) []NodeId {
	var out []NodeId
	for c := d.slot(id).firstChild; c != NoNode; c = d.slot(c).nextSibling {
		out = append(out, c)
	}
	return out
}

// ChildCount counts id's children without allocating.
func (d *Document) ChildCount(id NodeId) int {
	n := 0
	for c := d.slot(id).firstChild; c != NoNode; c = d.slot(c).nextSibling {
		n++
	}
	return n
}

// ChildAt returns the i'th child of id. O(i): a sibling walk. Most internal
// callers instead resolve a known child via its cached Position.
func (d *Document) ChildAt(id NodeId, i int) (NodeId, bool) {
	c := d.slot(id).firstChild
	for ; c != NoNode && i > 0; i-- {
		c = d.slot(c).nextSibling
	}
	if c == NoNode {
		return NoNode, false
	}
	return c, true
}

package patch

import "github.com/bearcove/hotmeal/names"

// Kind discriminates the nine patch operations §4.4 defines.
type Kind uint8

const (
	SetTextKind Kind = iota
	SetAttributeKind
	RemoveAttributeKind
	UpdatePropertiesKind
	InsertElementKind
	InsertTextKind
	InsertCommentKind
	RemoveKind
	MoveKind
)

func (k Kind) String() string {
	switch k {
	case SetTextKind:
		return "SetText"
	case SetAttributeKind:
		return "SetAttribute"
	case RemoveAttributeKind:
		return "RemoveAttribute"
	case UpdatePropertiesKind:
		return "UpdateProperties"
	case InsertElementKind:
		return "InsertElement"
	case InsertTextKind:
		return "InsertText"
	case InsertCommentKind:
		return "InsertComment"
	case RemoveKind:
		return "Remove"
	case MoveKind:
		return "Move"
	default:
		return "Unknown"
	}
}

// PropKind discriminates one field of an UpdateProperties change.
type PropKind uint8

const (
	PropSame PropKind = iota
	PropSet
	PropRemove
)

// PropertyChange is one entry of an UpdateProperties patch: either the
// text-node payload property, or one named attribute. A Same entry records
// a property that did not change; an UpdateProperties patch whose entries
// are all Same carries no information and is never emitted — see
// HasRealChange.
type PropertyChange struct {
	IsText bool
	Attr   names.QualName
	Kind   PropKind
	Value  string // meaningful only when Kind == PropSet
}

// InsertionPoint names where a new or moved node lands: the i'th child of
// Parent. If Parent already has a child at that index and DisplaceTo is
// set, that occupant is detached into the named slot before insertion;
// otherwise it is pushed to i+1 undisturbed.
type InsertionPoint struct {
	Parent     NodeRef
	Index      int
	DisplaceTo *int
}

// NewNodeKind discriminates the literal subtree payload carried by
// Insert{Element,Text,Comment} patches.
type NewNodeKind uint8

const (
	NewElementKind NewNodeKind = iota
	NewTextKind
	NewCommentKind
)

// AttrValue is one (name, value) binding in a NewNode literal.
type AttrValue struct {
	Name  names.QualName
	Value string
}

// NewNode is the literal subtree an Insert* patch creates. Namespace
// defaults to HTML when nil, matching ordinary element creation.
type NewNode struct {
	Kind      NewNodeKind
	Tag       names.QualName // Element
	Namespace *names.Namespace
	Attrs     []AttrValue // Element
	Text      string      // Text, Comment
	Children  []*NewNode  // Element
}

// Patch is one edit in a differ's output or an applier's input stream.
// Only the fields relevant to Kind are populated; this mirrors the arena's
// own tagged-union node rather than a Go sum type, keeping emission and
// application as flat switches over Kind instead of type assertions.
type Patch struct {
	Kind Kind

	At    NodeRef        // SetText, SetAttribute, RemoveAttribute, UpdateProperties, Remove, Move (source)
	Text  string          // SetText, InsertText, InsertComment
	Name  names.QualName  // SetAttribute, RemoveAttribute
	Value string          // SetAttribute
	Props []PropertyChange // UpdateProperties

	InsertAt InsertionPoint // InsertElement, InsertText, InsertComment, Move (destination)
	Node     *NewNode       // InsertElement, InsertText, InsertComment
}

// SetText builds a SetText patch.
func SetText(at NodeRef, text string) Patch {
	return Patch{Kind: SetTextKind, At: at, Text: text}
}

// SetAttribute builds a SetAttribute patch.
func SetAttribute(at NodeRef, name names.QualName, value string) Patch {
	return Patch{Kind: SetAttributeKind, At: at, Name: name, Value: value}
}

// RemoveAttribute builds a RemoveAttribute patch.
func RemoveAttribute(at NodeRef, name names.QualName) Patch {
	return Patch{Kind: RemoveAttributeKind, At: at, Name: name}
}

// UpdateProperties builds an UpdateProperties patch. Callers are
// responsible for never passing a props list that is all PropSame — see
// HasRealChange.
func UpdateProperties(at NodeRef, props []PropertyChange) Patch {
	return Patch{Kind: UpdatePropertiesKind, At: at, Props: props}
}

// Remove builds a Remove patch.
func Remove(at NodeRef) Patch {
	return Patch{Kind: RemoveKind, At: at}
}

// Move builds a Move patch.
func Move(source NodeRef, to InsertionPoint) Patch {
	return Patch{Kind: MoveKind, At: source, InsertAt: to}
}

// InsertElement builds an InsertElement patch.
func InsertElement(at InsertionPoint, node *NewNode) Patch {
	return Patch{Kind: InsertElementKind, InsertAt: at, Node: node}
}

// InsertText builds an InsertText patch.
func InsertText(at InsertionPoint, text string) Patch {
	return Patch{Kind: InsertTextKind, InsertAt: at, Text: text, Node: &NewNode{Kind: NewTextKind, Text: text}}
}

// InsertComment builds an InsertComment patch.
func InsertComment(at InsertionPoint, text string) Patch {
	return Patch{Kind: InsertCommentKind, InsertAt: at, Text: text, Node: &NewNode{Kind: NewCommentKind, Text: text}}
}

// HasRealChange reports whether props contains at least one non-Same
// entry. An UpdateProperties patch whose props are all Same carries no
// information and must be suppressed before emission — §4.3.4's mandatory
// no-op suppression.
func HasRealChange(props []PropertyChange) bool {
	for _, p := range props {
		if p.Kind != PropSame {
			return true
		}
	}
	return false
}

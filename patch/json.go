package patch

import (
	"encoding/json"
	"fmt"

	"github.com/bearcove/hotmeal/names"
)

// NodeRef serializes as {"Path":[...]} or {"Slot":[n,[...]]}.
func (r NodeRef) MarshalJSON() ([]byte, error) {
	path := r.Path
	if path == nil {
		path = []int{}
	}
	switch r.Kind {
	case PathRef:
		return json.Marshal(map[string][]int{"Path": path})
	case SlotRef:
		return json.Marshal(map[string][2]any{"Slot": {r.Slot, path}})
	default:
		return nil, fmt.Errorf("patch: unknown NodeRef kind %d", r.Kind)
	}
}

func (r *NodeRef) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if p, ok := raw["Path"]; ok {
		var path []int
		if err := json.Unmarshal(p, &path); err != nil {
			return err
		}
		*r = NodeRef{Kind: PathRef, Path: path}
		return nil
	}
	if s, ok := raw["Slot"]; ok {
		var tuple [2]json.RawMessage
		if err := json.Unmarshal(s, &tuple); err != nil {
			return err
		}
		var n int
		if err := json.Unmarshal(tuple[0], &n); err != nil {
			return err
		}
		var path []int
		if err := json.Unmarshal(tuple[1], &path); err != nil {
			return err
		}
		*r = NodeRef{Kind: SlotRef, Slot: n, Path: path}
		return nil
	}
	return fmt.Errorf("patch: node ref has neither Path nor Slot key: %s", data)
}

type insertionPointWire struct {
	Parent   NodeRef `json:"parent"`
	Index    int     `json:"index"`
	Displace *int    `json:"displace,omitempty"`
}

func (p InsertionPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(insertionPointWire{Parent: p.Parent, Index: p.Index, Displace: p.DisplaceTo})
}

func (p *InsertionPoint) UnmarshalJSON(data []byte) error {
	var w insertionPointWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*p = InsertionPoint{Parent: w.Parent, Index: w.Index, DisplaceTo: w.Displace}
	return nil
}

type propertyChangeWire struct {
	Text  bool            `json:"text,omitempty"`
	Attr  *names.QualName `json:"attr,omitempty"`
	Kind  string          `json:"kind"`
	Value *string         `json:"value,omitempty"`
}

func (c PropertyChange) MarshalJSON() ([]byte, error) {
	w := propertyChangeWire{Text: c.IsText}
	if !c.IsText {
		w.Attr = &c.Attr
	}
	switch c.Kind {
	case PropSame:
		w.Kind = "Same"
	case PropSet:
		w.Kind = "Set"
		v := c.Value
		w.Value = &v
	case PropRemove:
		w.Kind = "Remove"
	}
	return json.Marshal(w)
}

func (c *PropertyChange) UnmarshalJSON(data []byte) error {
	var w propertyChangeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = PropertyChange{IsText: w.Text}
	if w.Attr != nil {
		c.Attr = *w.Attr
	}
	switch w.Kind {
	case "Same":
		c.Kind = PropSame
	case "Set":
		c.Kind = PropSet
		if w.Value != nil {
			c.Value = *w.Value
		}
	case "Remove":
		c.Kind = PropRemove
	default:
		return fmt.Errorf("patch: unknown property change kind %q", w.Kind)
	}
	return nil
}

type newNodeWire struct {
	Kind      string          `json:"kind"`
	Tag       *names.QualName `json:"tag,omitempty"`
	Namespace string          `json:"ns,omitempty"`
	Attrs     []AttrValue     `json:"attrs,omitempty"`
	Text      string          `json:"text,omitempty"`
	Children  []*NewNode      `json:"children,omitempty"`
}

func (n NewNode) MarshalJSON() ([]byte, error) {
	w := newNodeWire{Attrs: n.Attrs, Text: n.Text, Children: n.Children}
	switch n.Kind {
	case NewElementKind:
		w.Kind = "Element"
		w.Tag = &n.Tag
		w.Namespace = n.Namespace.String()
	case NewTextKind:
		w.Kind = "Text"
	case NewCommentKind:
		w.Kind = "Comment"
	}
	return json.Marshal(w)
}

func (n *NewNode) UnmarshalJSON(data []byte) error {
	var w newNodeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*n = NewNode{Attrs: w.Attrs, Text: w.Text, Children: w.Children}
	switch w.Kind {
	case "Element":
		n.Kind = NewElementKind
		if w.Tag != nil {
			n.Tag = *w.Tag
		}
		n.Namespace = namespaceNamed(w.Namespace)
	case "Text":
		n.Kind = NewTextKind
	case "Comment":
		n.Kind = NewCommentKind
	default:
		return fmt.Errorf("patch: unknown new-node kind %q", w.Kind)
	}
	return nil
}

func namespaceNamed(s string) *names.Namespace {
	switch s {
	case "svg":
		return names.SVG
	case "mathml":
		return names.MathML
	case "xlink":
		return names.XLink
	case "xml":
		return names.XML
	case "xmlns":
		return names.XMLNS
	default:
		return names.HTML
	}
}

// patch wire kind payloads. Each Patch marshals as a single-key object,
// e.g. {"SetText":{"at":...,"text":...}}, matching §6's example exactly.

type setTextWire struct {
	At   NodeRef `json:"at"`
	Text string  `json:"text"`
}
type setAttributeWire struct {
	At    NodeRef        `json:"at"`
	Name  names.QualName `json:"name"`
	Value string         `json:"value"`
}
type removeAttributeWire struct {
	At   NodeRef        `json:"at"`
	Name names.QualName `json:"name"`
}
type updatePropertiesWire struct {
	At    NodeRef          `json:"at"`
	Props []PropertyChange `json:"props"`
}
type insertNodeWire struct {
	At   InsertionPoint `json:"at"`
	Node *NewNode       `json:"node"`
}
type removeWire struct {
	At NodeRef `json:"at"`
}
type moveWire struct {
	Source NodeRef        `json:"source"`
	To     InsertionPoint `json:"to"`
}

func (p Patch) MarshalJSON() ([]byte, error) {
	var payload any
	switch p.Kind {
	case SetTextKind:
		payload = setTextWire{At: p.At, Text: p.Text}
	case SetAttributeKind:
		payload = setAttributeWire{At: p.At, Name: p.Name, Value: p.Value}
	case RemoveAttributeKind:
		payload = removeAttributeWire{At: p.At, Name: p.Name}
	case UpdatePropertiesKind:
		payload = updatePropertiesWire{At: p.At, Props: p.Props}
	case InsertElementKind, InsertTextKind, InsertCommentKind:
		payload = insertNodeWire{At: p.InsertAt, Node: p.Node}
	case RemoveKind:
		payload = removeWire{At: p.At}
	case MoveKind:
		payload = moveWire{Source: p.At, To: p.InsertAt}
	default:
		return nil, fmt.Errorf("patch: unknown patch kind %d", p.Kind)
	}
	return json.Marshal(map[string]any{p.Kind.String(): payload})
}

func (p *Patch) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("patch: expected exactly one key, got %d", len(raw))
	}
	for key, body := range raw {
		switch key {
		case "SetText":
			var w setTextWire
			if err := json.Unmarshal(body, &w); err != nil {
				return err
			}
			*p = SetText(w.At, w.Text)
		case "SetAttribute":
			var w setAttributeWire
			if err := json.Unmarshal(body, &w); err != nil {
				return err
			}
			*p = SetAttribute(w.At, w.Name, w.Value)
		case "RemoveAttribute":
			var w removeAttributeWire
			if err := json.Unmarshal(body, &w); err != nil {
				return err
			}
			*p = RemoveAttribute(w.At, w.Name)
		case "UpdateProperties":
			var w updatePropertiesWire
			if err := json.Unmarshal(body, &w); err != nil {
				return err
			}
			*p = UpdateProperties(w.At, w.Props)
		case "InsertElement":
			var w insertNodeWire
			if err := json.Unmarshal(body, &w); err != nil {
				return err
			}
			*p = Patch{Kind: InsertElementKind, InsertAt: w.At, Node: w.Node}
		case "InsertText":
			var w insertNodeWire
			if err := json.Unmarshal(body, &w); err != nil {
				return err
			}
			text := ""
			if w.Node != nil {
				text = w.Node.Text
			}
			*p = Patch{Kind: InsertTextKind, InsertAt: w.At, Text: text, Node: w.Node}
		case "InsertComment":
			var w insertNodeWire
			if err := json.Unmarshal(body, &w); err != nil {
				return err
			}
			text := ""
			if w.Node != nil {
				text = w.Node.Text
			}
			*p = Patch{Kind: InsertCommentKind, InsertAt: w.At, Text: text, Node: w.Node}
		case "Remove":
			var w removeWire
			if err := json.Unmarshal(body, &w); err != nil {
				return err
			}
			*p = Remove(w.At)
		case "Move":
			var w moveWire
			if err := json.Unmarshal(body, &w); err != nil {
				return err
			}
			*p = Move(w.Source, w.To)
		default:
			return fmt.Errorf("patch: unknown patch kind %q", key)
		}
	}
	return nil
}

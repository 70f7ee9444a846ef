package names

import "encoding/json"

// qualNameWire is the stable wire shape for a qualified name:
// {"prefix":string|null,"ns":string,"local":string}.
type qualNameWire struct {
	Prefix *string `json:"prefix"`
	NS     string  `json:"ns"`
	Local  string  `json:"local"`
}

func (q QualName) MarshalJSON() ([]byte, error) {
	w := qualNameWire{NS: q.NamespaceString(), Local: q.LocalString()}
	if q.Prefix != nil {
		s := q.Prefix.String()
		w.Prefix = &s
	}
	return json.Marshal(w)
}

func (q *QualName) UnmarshalJSON(data []byte) error {
	var w qualNameWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	ns := namespaceByName(w.NS)
	*q = QualName{NS: ns, Local: Intern(w.Local)}
	if w.Prefix != nil && *w.Prefix != "" {
		q.Prefix = Intern(*w.Prefix)
	}
	return nil
}

func namespaceByName(s string) *Namespace {
	switch s {
	case "html":
		return HTML
	case "svg":
		return SVG
	case "mathml":
		return MathML
	case "xlink":
		return XLink
	case "xml":
		return XML
	case "xmlns":
		return XMLNS
	default:
		return HTML
	}
}

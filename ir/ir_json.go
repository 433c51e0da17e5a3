package ir

import (
	"github.com/goccy/go-json"
)

type nodeJSON struct {
	Name     string  `json:"name"`
	Line     int     `json:"line,omitempty"`
	Value    Value   `json:"value"`
	Children []*Node `json:"children,omitempty"`
}

type rootJSON struct {
	Tags     []string `json:"tags,omitempty"`
	Children []*Node  `json:"children"`
}

// MarshalJSON encodes v with its type, so that instants, durations and
// integral floats survive a round trip.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case NullType:
		return []byte("null"), nil
	case ListType:
		type C struct {
			Type Type    `json:"type"`
			List []Value `json:"list"`
		}
		return json.Marshal(C{Type: v.Type, List: v.List})
	case BoolType:
		type C struct {
			Type Type `json:"type"`
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{Type: v.Type, Bool: v.Bool})
	case IntType:
		type C struct {
			Type Type  `json:"type"`
			Int  int64 `json:"int"`
		}
		return json.Marshal(C{Type: v.Type, Int: v.Int})
	case FloatType:
		type C struct {
			Type  Type    `json:"type"`
			Float float64 `json:"float"`
		}
		return json.Marshal(C{Type: v.Type, Float: v.Float})
	default:
		type C struct {
			Type   Type   `json:"type"`
			String string `json:"string"`
		}
		return json.Marshal(C{Type: v.Type, String: v.String})
	}
}

func (v *Value) UnmarshalJSON(d []byte) error {
	if string(d) == "null" {
		*v = Value{}
		return nil
	}
	type C struct {
		Type   Type    `json:"type"`
		Bool   bool    `json:"bool"`
		Int    int64   `json:"int"`
		Float  float64 `json:"float"`
		String string  `json:"string"`
		List   []Value `json:"list"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	*v = Value{Type: tmp.Type, Bool: tmp.Bool, Int: tmp.Int, Float: tmp.Float, String: tmp.String, List: tmp.List}
	if v.Type == ListType && v.List == nil {
		v.List = []Value{}
	}
	return nil
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{Name: n.Name, Line: n.Line, Value: n.Value, Children: n.Children})
}

func (n *Node) UnmarshalJSON(d []byte) error {
	tmp := &nodeJSON{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.Name = tmp.Name
	n.Line = tmp.Line
	n.Value = tmp.Value
	n.Children = tmp.Children
	for _, c := range n.Children {
		c.Parent = n
	}
	return nil
}

func (r *Root) MarshalJSON() ([]byte, error) {
	children := r.Children
	if children == nil {
		children = []*Node{}
	}
	return json.Marshal(rootJSON{Tags: r.Tags, Children: children})
}

func (r *Root) UnmarshalJSON(d []byte) error {
	tmp := &rootJSON{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	r.Name = RootName
	r.Line = 0
	r.Value = Value{}
	r.Tags = tmp.Tags
	r.Children = tmp.Children
	for _, c := range r.Children {
		c.Parent = &r.Node
	}
	return nil
}

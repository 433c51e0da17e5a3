package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/agnes1/TreeML/ir"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// plainNode is the JSON rendering of a node: its value as plain data
// rather than the typed form ir uses for round trips.
type plainNode struct {
	Name     string       `json:"name"`
	Value    plainValue   `json:"value"`
	Children []*plainNode `json:"children,omitempty"`
}

type plainDoc struct {
	Tags  []string     `json:"tags,omitempty"`
	Nodes []*plainNode `json:"nodes"`
}

func nodeData(n *ir.Node) *plainNode {
	res := &plainNode{Name: n.Name, Value: plainValue(n.Value)}
	for _, c := range n.Children {
		res.Children = append(res.Children, nodeData(c))
	}
	return res
}

// plainValue writes a value as plain JSON data. Instants and durations
// keep their '@' prefix.
type plainValue ir.Value

func (v plainValue) MarshalJSON() ([]byte, error) {
	return appendPlain(nil, ir.Value(v))
}

func appendPlain(dst []byte, v ir.Value) ([]byte, error) {
	switch v.Type {
	case ir.NullType:
		return append(dst, "null"...), nil
	case ir.BoolType:
		return strconv.AppendBool(dst, v.Bool), nil
	case ir.IntType:
		return strconv.AppendInt(dst, v.Int, 10), nil
	case ir.FloatType:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return nil, fmt.Errorf("%w: %v has no JSON form", ErrEncoding, v.Float)
		}
		return strconv.AppendFloat(dst, v.Float, 'g', -1, 64), nil
	case ir.StringType, ir.InstantType, ir.DurationType:
		str := v.String
		if v.Type != ir.StringType {
			str = "@" + str
		}
		d, err := json.Marshal(str)
		if err != nil {
			return nil, err
		}
		return append(dst, d...), nil
	case ir.ListType:
		dst = append(dst, '[')
		for i := range v.List {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			dst, err = appendPlain(dst, v.List[i])
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	}
	return nil, fmt.Errorf("%w: unknown type %s", ErrEncoding, v.Type)
}

// checkFinite rejects values with no JSON form before marshalling.
func checkFinite(n *ir.Node) error {
	var err error
	n.Walk(func(_ int, c *ir.Node) bool {
		if err == nil {
			err = finite(c.Value)
		}
		return err == nil
	})
	return err
}

func finite(v ir.Value) error {
	switch v.Type {
	case ir.FloatType:
		if math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
			return fmt.Errorf("%w: %v has no JSON form", ErrEncoding, v.Float)
		}
	case ir.ListType:
		for i := range v.List {
			if err := finite(v.List[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func documentData(root *ir.Root, tags bool) *plainDoc {
	doc := &plainDoc{Nodes: []*plainNode{}}
	if tags {
		doc.Tags = root.Tags
	}
	for _, c := range root.Children {
		doc.Nodes = append(doc.Nodes, nodeData(c))
	}
	return doc
}

func nodeYAML(n *ir.Node) yaml.MapSlice {
	res := yaml.MapSlice{
		{Key: "name", Value: n.Name},
		{Key: "value", Value: n.Value.Any()},
	}
	if len(n.Children) == 0 {
		return res
	}
	children := make([]yaml.MapSlice, len(n.Children))
	for i, c := range n.Children {
		children[i] = nodeYAML(c)
	}
	return append(res, yaml.MapItem{Key: "children", Value: children})
}

func documentYAML(root *ir.Root, tags bool) yaml.MapSlice {
	var res yaml.MapSlice
	if tags && len(root.Tags) != 0 {
		res = append(res, yaml.MapItem{Key: "tags", Value: root.Tags})
	}
	nodes := make([]yaml.MapSlice, len(root.Children))
	for i, c := range root.Children {
		nodes[i] = nodeYAML(c)
	}
	return append(res, yaml.MapItem{Key: "nodes", Value: nodes})
}

func encodeJSON(w io.Writer, v any) error {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(d, '\n'))
	return err
}

func encodeYAML(w io.Writer, v any) error {
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

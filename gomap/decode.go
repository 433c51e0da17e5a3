// Package gomap decodes TreeML documents into Go values.
//
// A document becomes a JSON object which is then decoded with the usual
// json struct tags. Each node contributes a key named after the node:
//
//   - a node without children maps to its value,
//   - a node with children maps to an object of its children, with the
//     node's own value, if any, under the key "_",
//   - repeated sibling names collect into an array in document order.
//
// Struct fields tagged `treeml:"tag=key"` are filled from the document
// tag "key::value" after decoding.
package gomap

import (
	"bytes"
	"io"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/parse"

	"github.com/goccy/go-json"
)

// ValueKey holds a node's own value when it also has children.
const ValueKey = "_"

type IRFromer interface {
	FromIR(*ir.Root) error
}

// Load parses d and decodes the document into p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	return LoadReader(bytes.NewReader(d), p, opts...)
}

func LoadReader(r io.Reader, p any, opts ...parse.ParseOption) error {
	root, err := parse.Parse(r, opts...)
	if err != nil {
		return err
	}
	return FromIR(root, p)
}

// FromIR decodes root into p. Values implementing IRFromer decode
// themselves.
func FromIR(root *ir.Root, p any) error {
	if root == nil {
		return ir.ErrNilNode
	}
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(root)
	}
	d, err := json.Marshal(children(&root.Node))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(d, p); err != nil {
		return err
	}
	return fillTags(root, p)
}

// ToAny returns the plain data form of n's children.
func ToAny(n *ir.Node) map[string]any {
	return children(n)
}

func children(n *ir.Node) map[string]any {
	res := make(map[string]any, len(n.Children))
	for _, c := range n.Children {
		v := nodeToAny(c)
		prev, ok := res[c.Name]
		if !ok {
			res[c.Name] = v
			continue
		}
		if rep, isRep := prev.(repeated); isRep {
			res[c.Name] = append(rep, v)
			continue
		}
		res[c.Name] = repeated{prev, v}
	}
	for k, v := range res {
		if rep, ok := v.(repeated); ok {
			res[k] = []any(rep)
		}
	}
	return res
}

// repeated marks arrays built from sibling names, as opposed to list values.
type repeated []any

func nodeToAny(n *ir.Node) any {
	if len(n.Children) == 0 {
		return n.Value.Any()
	}
	res := children(n)
	if !n.Value.IsNull() {
		res[ValueKey] = n.Value.Any()
	}
	return res
}

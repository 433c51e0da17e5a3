package eval

import (
	"os"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/query"
)

var (
	getSym = &funcSymbol{
		name: "get",
		fn: func(doc *ir.Root, params ...any) (any, error) {
			v, err := query.Eval(&doc.Node, params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(v), nil
		},
		types: []any{new(func(string) any)},
	}
	nameSym = &funcSymbol{
		name: "name",
		fn: func(doc *ir.Root, params ...any) (any, error) {
			n, err := query.Select(&doc.Node, params[0].(string))
			if err != nil || n == nil {
				return nil, err
			}
			return n.Name, nil
		},
		types: []any{new(func(string) any)},
	}
	hasSym = &funcSymbol{
		name: "has",
		fn: func(doc *ir.Root, params ...any) (any, error) {
			n, err := query.Select(&doc.Node, params[0].(string))
			if err != nil {
				return nil, err
			}
			return n != nil, nil
		},
		types: []any{new(func(string) bool)},
	}
	countSym = &funcSymbol{
		name: "count",
		fn: func(doc *ir.Root, params ...any) (any, error) {
			n := &doc.Node
			if path := params[0].(string); path != "" {
				var err error
				n, err = query.Select(n, path)
				if err != nil {
					return nil, err
				}
				if n == nil {
					return 0, nil
				}
			}
			return len(n.Nodes(params[1].(string))), nil
		},
		types: []any{new(func(string, string) int)},
	}
	tagSym = &funcSymbol{
		name: "tag",
		fn: func(doc *ir.Root, params ...any) (any, error) {
			v, ok := doc.TagValue(params[0].(string))
			if !ok {
				return nil, nil
			}
			return v, nil
		},
		types: []any{new(func(string) any)},
	}
	getenvSym = &funcSymbol{
		name: "getenv",
		fn: func(_ *ir.Root, params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
		types: []any{new(func(string) string)},
	}
)

// Get returns get(path): the value at path as plain data, or nil.
func Get() Symbol { return getSym }

// Name returns name(path): the name of the node at path, or nil.
func Name() Symbol { return nameSym }

// Has returns has(path): whether path selects a node.
func Has() Symbol { return hasSym }

// Count returns count(path, name): the number of children called name
// under the node at path. An empty path counts top level nodes.
func Count() Symbol { return countSym }

// Tag returns tag(key): the value of the document's key::value tag, or nil.
func Tag() Symbol { return tagSym }

func GetEnv() Symbol { return getenvSym }

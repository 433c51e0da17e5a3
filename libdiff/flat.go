package libdiff

import (
	"github.com/agnes1/TreeML/ir"

	"github.com/goccy/go-json"
)

// Flatten maps the path of each node in root to its value as plain data.
func Flatten(root *ir.Root) map[string]any {
	res := map[string]any{}
	root.Walk(func(depth int, n *ir.Node) bool {
		if depth > 0 {
			res[n.Path()] = n.Value.Any()
		}
		return true
	})
	return res
}

// FlatJSON returns the JSON encoding of Flatten(root).
func FlatJSON(root *ir.Root) ([]byte, error) {
	return json.Marshal(Flatten(root))
}

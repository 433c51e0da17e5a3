package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/agnes1/TreeML/ir"
	"github.com/goccy/go-json"
)

var out io.Writer = os.Stderr

// Logf writes a formatted debug message to stderr. Trees and plain data
// arguments are rendered in full.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Root:
			if x != nil {
				args[i] = x.Dump()
			}
		case *ir.Node:
			if x != nil {
				args[i] = x.Dump()
			}
		case ir.Value:
			args[i] = x.GoString()
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

// Package debug provides environment controlled debug logging and
// event-logging sinks.
package debug

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type debug struct {
	Parse    bool
	Validate bool
	Eval     bool
	Refs     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TREEML_DEBUG_PARSE")
	d.Validate = boolEnv("TREEML_DEBUG_VALIDATE")
	d.Eval = boolEnv("TREEML_DEBUG_EVAL")
	d.Refs = boolEnv("TREEML_DEBUG_REFS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Validate() bool {
	return d.Validate
}
func Eval() bool {
	return d.Eval
}
func Refs() bool {
	return d.Refs
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}

// Enable turns on the named debug flags: parse, validate, eval or refs.
func Enable(names ...string) error {
	for _, name := range names {
		switch strings.TrimSpace(name) {
		case "parse":
			d.Parse = true
		case "validate":
			d.Validate = true
		case "eval":
			d.Eval = true
		case "refs":
			d.Refs = true
		case "":
		default:
			return fmt.Errorf("unknown debug flag %q", name)
		}
	}
	return nil
}

package refcheck

import (
	"fmt"
	"strings"

	"github.com/agnes1/TreeML/ir"
)

// Final selects what a Path reads from the nodes it reaches.
type Final int

const (
	NodeName Final = iota
	NodeValue
)

func (f Final) String() string {
	switch f {
	case NodeName:
		return "nodeName"
	case NodeValue:
		return "nodeValue"
	}
	return fmt.Sprintf("<final %d>", int(f))
}

// Path is a sequence of child names from the document root. The step name
// "token" matches any name.
type Path struct {
	Steps []string
	Final Final
}

// ParsePath parses a dotted path whose last element is nodeName or
// nodeValue, as in "creature.parts.token.nodeName".
func ParsePath(s string) (Path, error) {
	parts := strings.Split(s, ".")
	var p Path
	switch parts[len(parts)-1] {
	case "nodeName":
		p.Final = NodeName
	case "nodeValue":
		p.Final = NodeValue
	default:
		return Path{}, fmt.Errorf("%w: final step of %q must be nodeName or nodeValue", ErrPath, s)
	}
	p.Steps = parts[:len(parts)-1]
	for _, st := range p.Steps {
		if st == "" {
			return Path{}, fmt.Errorf("%w: empty step in %q", ErrPath, s)
		}
	}
	return p, nil
}

func (p Path) String() string {
	return strings.Join(append(append([]string{}, p.Steps...), p.Final.String()), ".")
}

// Find returns the nodes of doc reached by p's steps, in document order.
func (p Path) Find(doc *ir.Root) []*ir.Node {
	found := []*ir.Node{&doc.Node}
	for _, st := range p.Steps {
		var next []*ir.Node
		for _, n := range found {
			for _, c := range n.Children {
				if st == "token" || c.Name == st {
					next = append(next, c)
				}
			}
		}
		found = next
	}
	return found
}

package ir

import (
	"fmt"
	"strings"
)

const RootName = "root"

// Root is the document node. It has line 0, no value, and carries the
// document tags in source order.
type Root struct {
	Node
	Tags []string
}

func NewRoot() *Root {
	return &Root{Node: Node{Name: RootName}}
}

// Append attaches node at the given depth: starting at the root it walks
// depth times into the last child and appends node there.
func (r *Root) Append(depth int, node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if depth < 0 {
		return fmt.Errorf("%w: negative depth %d", ErrIllegalIndent, depth)
	}
	parent := &r.Node
	for i := 0; i < depth; i++ {
		last := parent.Last()
		if last == nil {
			return fmt.Errorf("%w: no parent at depth %d for %q (line %d)", ErrIllegalIndent, i+1, node.Name, node.Line)
		}
		parent = last
	}
	parent.Add(node)
	return nil
}

// AddTag records a tag in document order.
func (r *Root) AddTag(tag string) {
	r.Tags = append(r.Tags, tag)
}

// SplitTag splits a "key::value" tag. Tags without "::" are free form and
// return ok == false.
func SplitTag(tag string) (key, value string, ok bool) {
	return strings.Cut(tag, "::")
}

// TagValue returns the value of the first "key::value" tag with the given
// key.
func (r *Root) TagValue(key string) (string, bool) {
	for _, tag := range r.Tags {
		k, v, ok := SplitTag(tag)
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}

// TagValues returns the values of all "key::value" tags with the given key.
func (r *Root) TagValues(key string) []string {
	var res []string
	for _, tag := range r.Tags {
		k, v, ok := SplitTag(tag)
		if ok && k == key {
			res = append(res, v)
		}
	}
	return res
}

// Requires returns the requirement declared by the first tag, when that tag
// has the form "requires::<what>".
func (r *Root) Requires() (string, bool) {
	if len(r.Tags) == 0 {
		return "", false
	}
	k, v, ok := SplitTag(r.Tags[0])
	if !ok || k != "requires" {
		return "", false
	}
	return v, true
}

func (r *Root) Dump() string {
	sb := &strings.Builder{}
	for _, tag := range r.Tags {
		sb.WriteString("#" + tag + "\n")
	}
	sb.WriteString(r.Node.Dump())
	return sb.String()
}

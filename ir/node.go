package ir

import (
	"strconv"
	"strings"
)

// Node is one logical line of a TreeML document. Parent is a convenience
// back link; Children is authoritative.
type Node struct {
	Name     string
	Value    Value
	Line     int
	Children []*Node
	Parent   *Node
}

func NewNode(name string, v Value) *Node {
	return &Node{Name: name, Value: v}
}

func (n *Node) WithLine(line int) *Node {
	n.Line = line
	return n
}

// Add appends c as the last child of n.
func (n *Node) Add(c *Node) *Node {
	c.Parent = n
	n.Children = append(n.Children, c)
	return n
}

// Last returns the last child of n or nil.
func (n *Node) Last() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// Index returns the position of n among its parent's children, or -1.
func (n *Node) Index() int {
	if n.Parent == nil {
		return -1
	}
	for i, c := range n.Parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// Previous returns the preceding sibling of n or nil.
func (n *Node) Previous() *Node {
	i := n.Index()
	if i <= 0 {
		return nil
	}
	return n.Parent.Children[i-1]
}

// Next returns the following sibling of n or nil.
func (n *Node) Next() *Node {
	i := n.Index()
	if i < 0 || i+1 >= len(n.Parent.Children) {
		return nil
	}
	return n.Parent.Children[i+1]
}

// Nodes returns the children of n named name, in order.
func (n *Node) Nodes(name string) []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

// Child returns the first child of n named name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ValueAt follows a dotted path of child names, taking the first child with
// each name, and returns the value found there.
func (n *Node) ValueAt(path string) (Value, bool) {
	x := n
	for _, step := range strings.Split(path, ".") {
		x = x.Child(step)
		if x == nil {
			return Value{}, false
		}
	}
	return x.Value, true
}

// Walk calls f for n and then each descendant in document order, passing
// the depth relative to n. Walk stops descending below a node for which f
// returns false.
func (n *Node) Walk(f func(depth int, node *Node) bool) {
	n.walk(0, f)
}

func (n *Node) walk(depth int, f func(int, *Node) bool) {
	if !f(depth, n) {
		return
	}
	for _, c := range n.Children {
		c.walk(depth+1, f)
	}
}

func (n *Node) Clone() *Node {
	res := &Node{
		Name:  n.Name,
		Value: cloneValue(n.Value),
		Line:  n.Line,
	}
	if n.Children != nil {
		res.Children = make([]*Node, len(n.Children))
	}
	for i, c := range n.Children {
		cc := c.Clone()
		cc.Parent = res
		res.Children[i] = cc
	}
	return res
}

func cloneValue(v Value) Value {
	if v.Type != ListType {
		return v
	}
	res := make([]Value, len(v.List))
	for i := range v.List {
		res[i] = cloneValue(v.List[i])
	}
	v.List = res
	return v
}

// Path returns a query expression selecting n from the root of its tree,
// such as "item[1].name". Siblings sharing a name are told apart by index.
func (n *Node) Path() string {
	if n.Parent == nil {
		return ""
	}
	k := 0
	for _, c := range n.Parent.Children {
		if c == n {
			break
		}
		if c.Name == n.Name {
			k++
		}
	}
	step := n.Name
	if k > 0 {
		step += "[" + strconv.Itoa(k) + "]"
	}
	prefix := n.Parent.Path()
	if prefix == "" {
		return step
	}
	return prefix + "." + step
}

// Dump renders the tree below n one node per line, children indented by two
// spaces, as "name---value".
func (n *Node) Dump() string {
	sb := &strings.Builder{}
	n.dump(sb, "")
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, indent string) {
	sb.WriteString(indent)
	sb.WriteString(n.Name)
	sb.WriteString("---")
	sb.WriteString(n.Value.Text())
	sb.WriteByte('\n')
	for _, c := range n.Children {
		c.dump(sb, indent+"  ")
	}
}

func (n *Node) String() string {
	return n.Name + " : " + n.Value.Text()
}

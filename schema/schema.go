package schema

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/agnes1/TreeML/ir"
)

// NodeID addresses a Node within its Schema.
type NodeID int

const None NodeID = -1

// Node is one compiled schema node. Sibling and parent links are arena
// indices.
type Node struct {
	Name   string
	Line   int
	Flags  Flag
	ID     string
	Choice string

	// Enum, Range and Items hold the words following "enum", "range" and
	// "items". They are recorded but not enforced.
	Enum  []string
	Range []string
	Items []string

	Parent   NodeID
	Next     NodeID
	Previous NodeID
	Children []NodeID
}

func (n *Node) Has(f Flag) bool {
	return n.Flags.Has(f)
}

// Schema is a compiled schema. Its token id set is guarded so that one
// Schema may validate documents from several goroutines, one at a time.
type Schema struct {
	nodes []Node
	top   []NodeID

	mu       sync.Mutex
	tokenIDs map[string]struct{}
}

// Pass returns the empty schema, which accepts any document.
func Pass() *Schema {
	return &Schema{tokenIDs: map[string]struct{}{}}
}

// IsPass reports whether s accepts any document.
func (s *Schema) IsPass() bool {
	return len(s.top) == 0
}

// Node returns the node with the given id.
func (s *Schema) Node(id NodeID) *Node {
	if id == None {
		return nil
	}
	return &s.nodes[id]
}

// Top returns the top level schema nodes.
func (s *Schema) Top() []NodeID {
	return s.top
}

// Len returns the number of compiled nodes.
func (s *Schema) Len() int {
	return len(s.nodes)
}

// TokenIDs returns the identifiers declared during the last validation,
// sorted.
func (s *Schema) TokenIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]string, 0, len(s.tokenIDs))
	for k := range s.tokenIDs {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Reset clears the declared identifiers.
func (s *Schema) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenIDs = map[string]struct{}{}
}

// String renders s as a schema document which compiles to an equivalent
// schema.
func (s *Schema) String() string {
	sb := &strings.Builder{}
	for _, id := range s.top {
		s.write(sb, id, 0)
	}
	return sb.String()
}

func (s *Schema) write(sb *strings.Builder, id NodeID, depth int) {
	n := s.Node(id)
	sb.WriteString(strings.Repeat("\t", depth))
	sb.WriteString(n.Name)
	sb.WriteString(" :")
	words := n.Flags.Words()
	if n.ID != "" {
		words = append(words, n.ID)
	}
	if n.Choice != "" {
		words = append(words, n.Choice)
	}
	for _, mode := range []struct {
		word string
		vals []string
	}{{"enum", n.Enum}, {"range", n.Range}, {"items", n.Items}} {
		if mode.vals != nil {
			words = append(words, mode.word)
			words = append(words, mode.vals...)
		}
	}
	if len(words) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(words, ", "))
	}
	sb.WriteByte('\n')
	for _, c := range n.Children {
		s.write(sb, c, depth+1)
	}
}

func (n *Node) GoString() string {
	return fmt.Sprintf("%s(%s) line %d", n.Name, n.Flags, n.Line)
}

// Compile builds a schema from a parsed schema document. A document
// without nodes yields the pass schema.
func Compile(doc *ir.Root) (*Schema, error) {
	s := Pass()
	if _, err := s.compileChildren(&doc.Node, None); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schema) compileChildren(parent *ir.Node, pid NodeID) ([]NodeID, error) {
	var ids []NodeID
	prev := None
	for _, c := range parent.Children {
		id, err := s.compile(c, pid)
		if err != nil {
			return nil, err
		}
		s.nodes[id].Previous = prev
		if prev != None {
			s.nodes[prev].Next = id
		}
		prev = id
		ids = append(ids, id)
	}
	if pid == None {
		s.top = ids
	} else {
		s.nodes[pid].Children = ids
	}
	return ids, nil
}

type wordMode int

const (
	defaultMode wordMode = iota
	enumMode
	rangeMode
	itemsMode
)

func (s *Schema) compile(in *ir.Node, pid NodeID) (NodeID, error) {
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, Node{
		Name:     in.Name,
		Line:     in.Line,
		Parent:   pid,
		Next:     None,
		Previous: None,
	})
	n := &s.nodes[id]
	var words []ir.Value
	switch {
	case in.Value.IsList():
		words = in.Value.List
	case !in.Value.IsNull():
		words = []ir.Value{in.Value}
	}
	mode := defaultMode
	for _, w := range words {
		if w.Type != ir.StringType {
			if mode == defaultMode {
				return None, fmt.Errorf("%w: %s {line: %d}", ErrBadWord, w.Text(), in.Line)
			}
		}
		word := w.Text()
		switch mode {
		case enumMode:
			n.Enum = append(n.Enum, word)
			continue
		case rangeMode:
			n.Range = append(n.Range, word)
			continue
		case itemsMode:
			n.Items = append(n.Items, word)
			continue
		}
		if f, ok := ParseFlag(word); ok {
			n.Flags |= f
			continue
		}
		switch {
		case strings.HasPrefix(word, "id"):
			if n.ID != "" {
				return None, fmt.Errorf("%w {line: %d}", ErrDuplicateID, in.Line)
			}
			n.ID = word
		case strings.HasPrefix(word, "choice"):
			if n.Choice != "" {
				return None, fmt.Errorf("%w {line: %d}", ErrDuplicateChoice, in.Line)
			}
			n.Choice = word
		case strings.HasPrefix(word, "enum"):
			mode = enumMode
			n.Enum = []string{}
		case strings.HasPrefix(word, "range"):
			mode = rangeMode
			n.Range = []string{}
		case strings.HasPrefix(word, "items"):
			mode = itemsMode
			n.Flags |= List
			n.Items = []string{}
		default:
			return None, fmt.Errorf("%w %q {line: %d}", ErrUnknownWord, word, in.Line)
		}
	}
	if _, err := s.compileChildren(in, id); err != nil {
		return None, err
	}
	return id, nil
}

// HasMandatoryChildren reports whether any child of id is not optional.
func (s *Schema) HasMandatoryChildren(id NodeID) bool {
	for _, c := range s.nodes[id].Children {
		if !s.nodes[c].Has(Optional) {
			return true
		}
	}
	return false
}

package refcheck

import (
	"fmt"
	"sort"

	"github.com/agnes1/TreeML/debug"
	"github.com/agnes1/TreeML/ir"
)

// Group is the source side of a reference check.
type Group struct {
	Documents []*ir.Root
	Path      Path
}

// Set is the collected names or values of a Group. Names are held as
// string values, so a name matches an equal string value.
type Set struct {
	values map[uint64][]ir.Value
	n      int
}

func newSet() *Set {
	return &Set{values: map[uint64][]ir.Value{}}
}

func (s *Set) HasName(name string) bool {
	return s.Has(ir.FromString(name))
}

func (s *Set) Has(v ir.Value) bool {
	for _, x := range s.values[v.Hash()] {
		if x.Equal(v) {
			return true
		}
	}
	return false
}

func (s *Set) Len() int {
	return s.n
}

// add records v and reports whether it was new.
func (s *Set) add(v ir.Value) bool {
	if s.Has(v) {
		return false
	}
	h := v.Hash()
	s.values[h] = append(s.values[h], v)
	s.n++
	return true
}

func (p Path) key(n *ir.Node) ir.Value {
	if p.Final == NodeName {
		return ir.FromString(n.Name)
	}
	return n.Value
}

// Collect gathers the names or values the group's path reaches in every
// document. With unique set, a repeat is an error.
func (g *Group) Collect(unique bool) (*Set, error) {
	set := newSet()
	for _, doc := range g.Documents {
		for _, n := range g.Path.Find(doc) {
			if set.add(g.Path.key(n)) || !unique {
				continue
			}
			if g.Path.Final == NodeName {
				return nil, &Issue{Code: CodeNameNotUnique, Line: n.Line, Message: "Node name not unique: " + n.Name}
			}
			return nil, &Issue{Code: CodeValueNotUnique, Line: n.Line, Message: "Node value not unique: " + n.Value.Text()}
		}
	}
	if debug.Refs() {
		debug.Logf("collected %d from %d documents at %s\n", set.Len(), len(g.Documents), g.Path)
	}
	return set, nil
}

// Check reports, ordered by line, each node reached by path in referrer
// whose name or value the group does not define. Source entries must be
// unique.
func Check(referrer *ir.Root, path Path, group *Group) ([]Issue, error) {
	if referrer == nil {
		return nil, ir.ErrNilNode
	}
	set, err := group.Collect(true)
	if err != nil {
		return nil, err
	}
	var res []Issue
	for _, n := range path.Find(referrer) {
		switch path.Final {
		case NodeName:
			if !set.HasName(n.Name) {
				res = append(res, Issue{Code: CodeNameMissing, Line: n.Line, Message: "Node name not in source: " + n.Name})
			}
		case NodeValue:
			if !set.Has(n.Value) {
				res = append(res, Issue{Code: CodeValueMissing, Line: n.Line, Message: "Node value not in source: " + n.Value.Text()})
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrPath, path.Final)
		}
		if debug.Refs() {
			debug.Logf("checked %s at line %d\n", n, n.Line)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Line < res[j].Line })
	return res, nil
}

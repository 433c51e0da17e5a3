package query

import (
	"fmt"

	"github.com/agnes1/TreeML/debug"
	"github.com/agnes1/TreeML/ir"
)

// Select returns the node selected by the steps of e starting at n, or
// nil if some step matches nothing.
func (e *Expr) Select(n *ir.Node) (*ir.Node, error) {
	if e.Literal != nil {
		return nil, fmt.Errorf("%w: literal %s selects no node", ErrType, e)
	}
	if n == nil {
		return nil, ir.ErrNilNode
	}
	for _, st := range e.Steps {
		n = st.apply(n)
		if debug.Eval() {
			debug.Logf("step %s -> %v\n", st, n)
		}
		if n == nil {
			return nil, nil
		}
	}
	return n, nil
}

func (s Step) apply(n *ir.Node) *ir.Node {
	k := 0
	for _, c := range n.Children {
		if s.Name != "*" && s.Name != c.Name {
			continue
		}
		switch {
		case s.Match != nil:
			if matches(c.Value, *s.Match) {
				return c
			}
		case s.Index >= 0:
			if k == s.Index {
				return c
			}
			k++
		default:
			return c
		}
	}
	return nil
}

func matches(v, want ir.Value) bool {
	if v.IsList() {
		return v.Contains(want)
	}
	return v.Equal(want)
}

// Eval evaluates e at n. A step matching nothing yields null.
func (e *Expr) Eval(n *ir.Node) (ir.Value, error) {
	if e.Literal != nil {
		return *e.Literal, nil
	}
	sel, err := e.Select(n)
	if err != nil || sel == nil {
		return ir.Null(), err
	}
	v := sel.Value
	switch e.Func {
	case FuncName:
		return ir.FromString(sel.Name), nil
	case FuncInteger:
		return ir.FromBool(v.Type == ir.IntType), nil
	case FuncDouble:
		return ir.FromBool(v.Type == ir.FloatType), nil
	case FuncString:
		return ir.FromBool(v.Type == ir.StringType), nil
	case FuncBoolean:
		return ir.FromBool(v.Type == ir.BoolType), nil
	case FuncList:
		return ir.FromBool(v.IsList()), nil
	case FuncIndex:
		if !v.IsList() {
			return ir.Null(), fmt.Errorf("%w: list function used on non-list value %s at %s", ErrType, v.Text(), sel.Path())
		}
		x, ok := v.Index(e.Arg)
		if !ok {
			return ir.Null(), fmt.Errorf("%w: index %d out of range for list of %d at %s", ErrType, e.Arg, v.Len(), sel.Path())
		}
		return x, nil
	}
	return v, nil
}

// Eval parses and evaluates expr at n.
func Eval(n *ir.Node, expr string) (ir.Value, error) {
	e, err := Parse(expr)
	if err != nil {
		return ir.Null(), err
	}
	return e.Eval(n)
}

// Select parses expr and returns the node it selects from n.
func Select(n *ir.Node, expr string) (*ir.Node, error) {
	e, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return e.Select(n)
}

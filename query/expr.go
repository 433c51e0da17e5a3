package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/token"
)

// Func is the projection applied to the selected node.
type Func int

const (
	FuncValue Func = iota
	FuncName
	FuncInteger
	FuncDouble
	FuncString
	FuncBoolean
	FuncList
	FuncIndex
)

var funcNames = map[string]Func{
	"":        FuncValue,
	"name":    FuncName,
	"integer": FuncInteger,
	"double":  FuncDouble,
	"string":  FuncString,
	"boolean": FuncBoolean,
	"list":    FuncList,
}

// Step selects one child by name and optional predicate.
type Step struct {
	Name string
	// Index is the position among children with a matching name, or -1.
	Index int
	// Match, when set, selects the first matching child whose value
	// equals it, or whose list value contains it.
	Match *ir.Value
}

func (s Step) String() string {
	switch {
	case s.Match != nil:
		return s.Name + "[:" + formatLiteral(*s.Match) + "]"
	case s.Index >= 0:
		return s.Name + "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Name
}

// Expr is a parsed expression.
type Expr struct {
	Literal *ir.Value
	Steps   []Step
	Func    Func
	// Arg is the list index of FuncIndex.
	Arg int
}

func (e *Expr) String() string {
	if e.Literal != nil {
		return formatLiteral(*e.Literal)
	}
	parts := make([]string, len(e.Steps))
	for i, s := range e.Steps {
		parts[i] = s.String()
	}
	res := strings.Join(parts, ".")
	switch e.Func {
	case FuncValue:
	case FuncIndex:
		res += "(" + strconv.Itoa(e.Arg) + ")"
	default:
		for k, f := range funcNames {
			if f == e.Func {
				res += "(" + k + ")"
			}
		}
	}
	return res
}

func formatLiteral(v ir.Value) string {
	if v.Type == ir.StringType {
		return "'" + v.String + "'"
	}
	return v.Text()
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// Parse parses an expression.
func Parse(s string) (*Expr, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	if v, ok, err := topLiteral(s); err != nil {
		return nil, fmt.Errorf("%w: %s", err, s)
	} else if ok {
		return &Expr{Literal: &v}, nil
	}
	p := &parser{src: s}
	e, err := p.expr()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, s)
	}
	return e, nil
}

// topLiteral recognises an expression that is entirely a literal. Names may
// start with a digit, so text that does not parse as a number is left to
// the path parser.
func topLiteral(s string) (ir.Value, bool, error) {
	switch s {
	case "null":
		return ir.Null(), true, nil
	case "true":
		return ir.FromBool(true), true, nil
	case "false":
		return ir.FromBool(false), true, nil
	}
	if s[0] == '\'' {
		v, err := literal(s)
		return v, err == nil, err
	}
	if strings.IndexByte("0123456789.+-", s[0]) >= 0 {
		if v, ok := number(s); ok {
			return v, true, nil
		}
	}
	return ir.Value{}, false, nil
}

func number(s string) (ir.Value, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return ir.FromFloat(f), true
	}
	return ir.Value{}, false
}

// literal parses a predicate literal.
func literal(s string) (ir.Value, error) {
	switch s {
	case "null":
		return ir.Null(), nil
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	case "":
		return ir.Value{}, fmt.Errorf("%w: missing literal", ErrSyntax)
	}
	if s[0] == '\'' {
		if len(s) < 2 || s[len(s)-1] != '\'' {
			return ir.Value{}, fmt.Errorf("%w: unclosed string literal", ErrSyntax)
		}
		return ir.FromString(s[1 : len(s)-1]), nil
	}
	if v, ok := number(s); ok {
		return v, nil
	}
	return ir.Value{}, fmt.Errorf("%w: literal value %q", ErrSyntax, s)
}

type parser struct {
	src string
	i   int
}

func (p *parser) peek() byte {
	if p.i >= len(p.src) {
		return 0
	}
	return p.src[p.i]
}

func (p *parser) expr() (*Expr, error) {
	e := &Expr{}
	for {
		st, err := p.step()
		if err != nil {
			return nil, err
		}
		e.Steps = append(e.Steps, st)
		if p.peek() != '.' {
			break
		}
		p.i++
	}
	switch p.peek() {
	case 0:
		return e, nil
	case '(':
	default:
		return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, p.peek(), p.i)
	}
	end := strings.IndexByte(p.src[p.i:], ')')
	if end < 0 {
		return nil, fmt.Errorf("%w: unclosed function", ErrSyntax)
	}
	arg := p.src[p.i+1 : p.i+end]
	if p.i+end+1 != len(p.src) {
		return nil, fmt.Errorf("%w: text after function", ErrSyntax)
	}
	if f, ok := funcNames[arg]; ok {
		e.Func = f
		return e, nil
	}
	if isDigits(arg) {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: list index %s: %w", ErrFunction, arg, err)
		}
		e.Func = FuncIndex
		e.Arg = k
		return e, nil
	}
	return nil, fmt.Errorf("%w (%s)", ErrFunction, arg)
}

func (p *parser) step() (Step, error) {
	st := Step{Index: -1}
	start := p.i
	for p.i < len(p.src) && strings.IndexByte(".[(", p.src[p.i]) < 0 {
		p.i++
	}
	st.Name = p.src[start:p.i]
	if st.Name != "*" && !token.IsName(st.Name) {
		return st, fmt.Errorf("%w: bad step name %q", ErrSyntax, st.Name)
	}
	if p.peek() != '[' {
		return st, nil
	}
	p.i++
	pstart := p.i
	quoted := false
	for ; p.i < len(p.src); p.i++ {
		c := p.src[p.i]
		if c == '\'' {
			quoted = !quoted
		}
		if c == ']' && !quoted {
			break
		}
	}
	if p.i >= len(p.src) {
		return st, fmt.Errorf("%w: unclosed predicate", ErrSyntax)
	}
	pred := p.src[pstart:p.i]
	p.i++
	if p.peek() == '[' {
		return st, fmt.Errorf("%w: multiple predicates", ErrSyntax)
	}
	if strings.HasPrefix(pred, ":") {
		v, err := literal(pred[1:])
		if err != nil {
			return st, err
		}
		st.Match = &v
		return st, nil
	}
	if !isDigits(pred) {
		return st, fmt.Errorf("%w: bad index %q", ErrSyntax, pred)
	}
	k, err := strconv.Atoi(pred)
	if err != nil {
		return st, fmt.Errorf("%w: index %s: %w", ErrSyntax, pred, err)
	}
	st.Index = k
	return st, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

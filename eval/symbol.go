package eval

import (
	"github.com/agnes1/TreeML/ir"

	"github.com/expr-lang/expr"
)

// Symbol is a function made available to scripts.
type Symbol interface {
	String() string
	Option(doc *ir.Root) expr.Option
}

type name string

func (s name) String() string {
	return string(s)
}

// funcSymbol is a Symbol whose implementation reads the document.
type funcSymbol struct {
	name
	fn    func(doc *ir.Root, params ...any) (any, error)
	types []any
}

func (s *funcSymbol) Option(doc *ir.Root) expr.Option {
	return expr.Function(s.String(), func(params ...any) (any, error) {
		return s.fn(doc, params...)
	}, s.types...)
}

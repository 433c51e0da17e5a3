package eval

import (
	"fmt"

	"github.com/agnes1/TreeML/debug"
	"github.com/agnes1/TreeML/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env holds the variables visible to a script.
type Env map[string]any

func exprOpts(doc *ir.Root) []expr.Option {
	syms := Symbols()
	res := make([]expr.Option, len(syms))
	for i, s := range syms {
		res[i] = s.Option(doc)
	}
	return res
}

// Compile compiles script with the registered functions bound to doc.
func Compile(doc *ir.Root, script string) (*vm.Program, error) {
	if doc == nil {
		return nil, ir.ErrNilNode
	}
	prg, err := expr.Compile(script, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return prg, nil
}

// Run compiles and runs script against doc.
func Run(doc *ir.Root, script string, env Env) (any, error) {
	prg, err := Compile(doc, script)
	if err != nil {
		return nil, err
	}
	if env == nil {
		env = Env{}
	}
	res, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRun, err)
	}
	if debug.Eval() {
		debug.Logf("script %q -> %v\n", script, res)
	}
	return res, nil
}

// RunValue runs script and converts its result to a TreeML value.
func RunValue(doc *ir.Root, script string, env Env) (ir.Value, error) {
	res, err := Run(doc, script, env)
	if err != nil {
		return ir.Value{}, err
	}
	return FromAny(res)
}

// RunBool runs script, which must produce a boolean.
func RunBool(doc *ir.Root, script string, env Env) (bool, error) {
	res, err := Run(doc, script, env)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: script %q returned %T, not bool", ErrResult, script, res)
	}
	return b, nil
}

package main

import (
	"fmt"

	"github.com/agnes1/TreeML/debug"
	"github.com/agnes1/TreeML/eval"
	"github.com/agnes1/TreeML/ir"

	"github.com/scott-cotton/cli"
)

func treemlEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Syms {
		fmt.Fprintf(cc.Out, "available functions:\n")
		for _, s := range eval.Symbols() {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires a script", cli.ErrUsage)
	}
	if debug.Eval() {
		debug.LogAny(cfg.Env)
	}
	script := args[0]
	return eachDoc(args[1:], func(name string, doc *ir.Root) error {
		v, err := eval.RunValue(doc, script, cfg.Env)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		_, err = fmt.Fprintln(cc.Out, v.Text())
		return err
	})
}

package main

import (
	"fmt"

	"github.com/agnes1/TreeML/encode"
	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/query"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a query expression", cli.ErrUsage)
	}
	x, err := query.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	return eachDoc(args[1:], func(name string, doc *ir.Root) error {
		if cfg.Tree {
			n, err := x.Select(&doc.Node)
			if err != nil {
				return fmt.Errorf("error querying %s with %s: %w", name, x, err)
			}
			if n == nil {
				_, err = fmt.Fprintln(cc.Out, ir.Null().Text())
				return err
			}
			return encode.EncodeNode(n, cc.Out, opts...)
		}
		v, err := x.Eval(&doc.Node)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", name, x, err)
		}
		_, err = fmt.Fprintln(cc.Out, v.Text())
		return err
	})
}

package main

import (
	"errors"
	"fmt"

	treeml "github.com/agnes1/TreeML"
	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/schema"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires a schema file", cli.ErrUsage)
	}
	s, err := treeml.LoadSchema(args[0])
	if err != nil {
		return err
	}
	failed := 0
	err = eachDoc(args[1:], func(name string, doc *ir.Root) error {
		err := s.Validate(doc)
		var verr *schema.ValidationError
		switch {
		case err == nil:
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", name)
			}
			return nil
		case errors.As(err, &verr):
			failed++
			_, err = fmt.Fprintf(cc.Out, "%s: %s", name, verr.Report())
			return err
		default:
			return fmt.Errorf("%s: %w", name, err)
		}
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

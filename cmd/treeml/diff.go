package main

import (
	"fmt"

	"github.com/agnes1/TreeML/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly 2 arguments", cli.ErrUsage)
	}
	a, err := readDoc(args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(args[1])
	if err != nil {
		return err
	}
	mk := libdiff.Diff
	if cfg.Reverse {
		mk = libdiff.Reverse
	}
	patch, err := mk(a, b)
	if err != nil {
		return err
	}
	if patch == nil {
		return nil
	}
	if _, err := fmt.Fprintf(cc.Out, "%s\n", patch); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

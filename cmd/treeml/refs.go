package main

import (
	"fmt"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/refcheck"

	"github.com/scott-cotton/cli"
)

func refs(cfg *RefsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Refs.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: refs requires a referrer and at least one source", cli.ErrUsage)
	}
	from, err := refcheck.ParsePath(cfg.From)
	if err != nil {
		return fmt.Errorf("%w: -from: %w", cli.ErrUsage, err)
	}
	to, err := refcheck.ParsePath(cfg.To)
	if err != nil {
		return fmt.Errorf("%w: -to: %w", cli.ErrUsage, err)
	}
	referrer, err := readDoc(args[0])
	if err != nil {
		return err
	}
	group := &refcheck.Group{Path: to}
	err = eachDoc(args[1:], func(_ string, doc *ir.Root) error {
		group.Documents = append(group.Documents, doc)
		return nil
	})
	if err != nil {
		return err
	}
	issues, err := refcheck.Check(referrer, from, group)
	if err != nil {
		return err
	}
	for i := range issues {
		fmt.Fprintln(cc.Out, issues[i].String())
	}
	if len(issues) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

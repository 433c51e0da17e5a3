package main

import (
	treeml "github.com/agnes1/TreeML"

	"github.com/scott-cotton/cli"
)

func test(cfg *TestConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Test.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	var all []*treeml.CaseResult
	for _, dir := range args {
		res, err := treeml.NewRunner(dir).RunDir()
		if err != nil {
			return err
		}
		all = append(all, res...)
	}
	if cfg.Failures {
		kept := all[:0]
		for _, r := range all {
			if !r.Passed() {
				kept = append(kept, r)
			}
		}
		all = kept
	}
	failed, err := treeml.Summary(cc.Out, all)
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

package main

import (
	"github.com/agnes1/TreeML/encode"
	"github.com/agnes1/TreeML/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	first := true
	return eachDoc(args, func(_ string, doc *ir.Root) error {
		if !first {
			if _, err := cc.Out.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
		first = false
		return encode.Encode(doc, cc.Out, opts...)
	})
}

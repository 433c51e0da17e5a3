package main

import (
	"fmt"

	"github.com/agnes1/TreeML/debug"
	"github.com/agnes1/TreeML/parse"

	"github.com/scott-cotton/cli"
)

func events(cfg *EventsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Events.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := []parse.ParseOption{
		parse.ParseStreaming(true),
		parse.ParseVerbose(cc.Out),
	}
	if cfg.Chars {
		opts = append(opts, parse.ParseCharacters(true), parse.ParseSinks(debug.Characters(cc.Out)))
	}
	if cfg.Timed {
		opts = append(opts, parse.ParseTimed(cc.Out))
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if len(args) > 1 {
			fmt.Fprintf(cc.Out, "# %s\n", arg)
		}
		if _, err := readDoc(arg, opts...); err != nil {
			return err
		}
	}
	return nil
}


package main

import (
	"fmt"
	"io"
	"os"

	"github.com/agnes1/TreeML/encode"
	"github.com/agnes1/TreeML/eval"
	"github.com/agnes1/TreeML/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='encode with color'"`
	Curly bool   `cli:"name=c aliases=curly desc='write TreeML in curly format'"`
	J     bool   `cli:"name=j aliases=json desc='write json'"`
	Y     bool   `cli:"name=y aliases=yaml desc='write yaml'"`
	Tags  bool   `cli:"name=tags desc='write document tags'"`
	Debug string `cli:"name=debug desc='comma separated debug flags: parse,validate,eval,refs'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.Curly:
		fmat = format.CurlyFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := cfg.outFormat()
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeTags(cfg.Tags),
	}
	if fmat == format.JSONFormat || fmat == format.YAMLFormat {
		return res
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Tree bool `cli:"name=tree desc='print the selected subtree instead of its value'"`

	Get *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env  eval.Env
	Syms bool `cli:"name=syms desc='show available functions'"`

	Eval *cli.Command
}

type RefsConfig struct {
	*MainConfig
	From string `cli:"name=from desc='path in the referrer, ending in nodeName or nodeValue'"`
	To   string `cli:"name=to desc='path in the sources, ending in nodeName or nodeValue'"`

	Refs *cli.Command
}

type TestConfig struct {
	*MainConfig
	Failures bool `cli:"name=f desc='only report failing checks'"`

	Test *cli.Command
}

type EventsConfig struct {
	*MainConfig
	Chars bool `cli:"name=chars desc='also show each character with its parser group'"`
	Timed bool `cli:"name=timed desc='report parse time'"`

	Events *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-inspect/encode"
	"github.com/signadot/go-inspect/inspect"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`
	Wire  bool `cli:"name=wire desc='render on a single line'"`
	Types bool `cli:"name=types desc='show runtime types next to titles'"`

	Depth int `cli:"name=depth aliases=d desc='generations of children to expand'"`
	Items int `cli:"name=items aliases=n desc='max entries expanded per container'"`

	Where string `cli:"name=where desc='expr filter over composite attributes (env: name, type)'"`

	Main *cli.Command
}

func (cfg *MainConfig) inspectOpts() ([]inspect.Option, error) {
	opts := []inspect.Option{
		inspect.MaxDepth(cfg.Depth),
		inspect.MaxItems(cfg.Items),
	}
	if cfg.Where == "" {
		return opts, nil
	}
	program, err := expr.Compile(cfg.Where, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
	}
	opts = append(opts, inspect.Filter(func(name string, v any) bool {
		out, err := expr.Run(program, map[string]any{
			"name": name,
			"type": fmt.Sprintf("%T", v),
		})
		if err != nil {
			return true
		}
		b, ok := out.(bool)
		return !ok || b
	}))
	return opts, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.Wire),
		encode.ShowTypes(cfg.Types),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	HTML bool `cli:"name=html desc='render the interactive HTML style'"`
	View *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/go-inspect/encode"
	"github.com/signadot/go-inspect/inspect"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	iOpts, err := cfg.inspectOpts()
	if err != nil {
		return err
	}
	a, err := renderFile(cfg, cc, args[0], iOpts)
	if err != nil {
		return err
	}
	b, err := renderFile(cfg, cc, args[1], iOpts)
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	colorize := cfg.Color
	if !colorize {
		if f, ok := cc.Out.(*os.File); ok {
			colorize = isatty.IsTerminal(f.Fd())
		}
	}
	for _, d := range diffs {
		var s string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			if colorize {
				s = color.GreenString("%s", d.Text)
			} else {
				s = "{+" + d.Text + "+}"
			}
		case diffmatchpatch.DiffDelete:
			if colorize {
				s = color.RedString("%s", d.Text)
			} else {
				s = "[-" + d.Text + "-]"
			}
		case diffmatchpatch.DiffEqual:
			s = d.Text
		}
		if _, err := cc.Out.Write([]byte(s)); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

// renderFile renders the inspection of every document in file without
// color, so the texts diff cleanly.
func renderFile(cfg *DiffConfig, cc *cli.Context, file string, iOpts []inspect.Option) (string, error) {
	vals, err := readDocs(cc, file)
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	for i, v := range vals {
		node, err := inspect.Inspect(docTitle(file, i, len(vals)), v, iOpts...)
		if err != nil {
			return "", fmt.Errorf("error inspecting %s: %w", file, err)
		}
		encOpts := []encode.EncodeOption{
			encode.EncodeWire(cfg.Wire),
			encode.ShowTypes(cfg.Types),
		}
		if err := encode.Encode(node, buf, encOpts...); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

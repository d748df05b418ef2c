package main

import (
	"fmt"

	"github.com/signadot/go-inspect/encode"
	"github.com/signadot/go-inspect/inspect"
	"github.com/signadot/go-inspect/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	iOpts, err := cfg.inspectOpts()
	if err != nil {
		return err
	}
	encOpts := cfg.encOpts(cc.Out)
	for _, file := range args {
		vals, err := readDocs(cc, file)
		if err != nil {
			return err
		}
		for i, v := range vals {
			node, err := inspect.Inspect(docTitle(file, i, len(vals)), v, iOpts...)
			if err != nil {
				return fmt.Errorf("error inspecting %s: %w", file, err)
			}
			if cfg.HTML {
				if err := encode.HTML(ir.Project(node), cc.Out); err != nil {
					return err
				}
				continue
			}
			if err := encode.Encode(node, cc.Out, encOpts...); err != nil {
				return err
			}
		}
	}
	return nil
}

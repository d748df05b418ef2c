package main

import (
	"fmt"

	"github.com/signadot/go-inspect/inspect"
	"github.com/signadot/go-inspect/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// dump emits the render projection itself, mostly for troubleshooting
// the engine: it carries the inspect_kind diagnostic tag per node.
func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
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
	first := true
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
			d, err := yaml.Marshal(ir.Project(node))
			if err != nil {
				return fmt.Errorf("error encoding projection of %s: %w", file, err)
			}
			if !first {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return err
				}
			}
			first = false
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
		}
	}
	return nil
}

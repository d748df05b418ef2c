package main

import (
	"github.com/signadot/go-inspect/inspect"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{
		Depth: inspect.DefaultMaxDepth,
		Items: inspect.DefaultMaxItems,
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "oi").
		WithSynopsis("oi [opts] command [opts]").
		WithDescription("oi inspects object documents as bounded display trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return oiMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DumpCommand(cfg),
			DiffCommand(cfg))
}

func oiMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	vCfg := &ViewConfig{MainConfig: cfg, View: cfg.Main}
	return view(vCfg, cc, args)
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] [files]").
		WithDescription("view object documents as inspection trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dump").
		WithAliases("du").
		WithSynopsis("dump [files]").
		WithDescription("dump the render projection of inspection trees as yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff the inspection trees of two object documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

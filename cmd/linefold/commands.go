package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	return newMainCommand(&MainConfig{Delimiter: ":", Sentinel: ";"})
}

func newMainCommand(cfg *MainConfig) *cli.Command {
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "policy",
			Aliases:     []string{"how-to-dict-in-array"},
			Description: "what to do with a mapping merged into a sequence: error, merge, wrap",
			Type:        cli.NamedFuncOpt(cfg.policyFunc(), "(policy)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
		},
		&cli.Opt{
			Name:        "v",
			Aliases:     []string{"verbose"},
			Description: "increase verbosity, may be repeated",
			Type:        countOpt{&cfg.Verbosity},
		}}...)

	return cli.NewCommandAt(&cfg.Main, "linefold").
		WithSynopsis("linefold [opts] < lines").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return linefoldMain(cfg, cc, args)
		})
}

const mainDescription = `linefold folds ';path:value' lines into one document.

Lines read from stdin which start with the sentinel (';' by default) are split
at the first delimiter (':' by default) into a dotted path and a value. The
value is typed as an integer, a float or a string and merged into the document
at the path. Other lines are ignored.

Repeated keys become sequences, and a key which is both a value and a parent
keeps its value under 'value'. When a mapping arrives where a sequence already
is, -policy decides: 'error' rejects the line, 'merge' appends the mapping and
'wrap' moves the sequence under 'array' in a new mapping.

Commands

  ;stdout.loop:clear   empty the document
  ;stdout.loop:flush   print and empty the document
  ;stdout.loop:end     print the document and exit

At end of input the document is printed.`

/*
Command btreeset is a small front end for package btree.

	btreeset shell            interactive session on a tree of words
	btreeset fill --count N   bulk-load generated words and report tree statistics

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "btreeset",
		Usage:   "in-memory B-tree ordered set",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "trace",
				Usage:   "trace node splits, merges and rotations",
				EnvVars: []string{"BTREESET_TRACE"},
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Before: func(cctx *cli.Context) error {
			level := tracing.LevelInfo
			if cctx.Bool("trace") {
				level = tracing.LevelDebug
			}
			tracing.Select("btreeset").SetTraceLevel(level)
			color.NoColor = cctx.Bool("no-color") || !term.IsTerminal(int(os.Stdout.Fd()))
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdShell,
		cmdFill,
	}
	return app.Run(args)
}

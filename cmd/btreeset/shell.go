package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/btreeset"
	"github.com/npillmayer/btreeset/btree"
	"github.com/urfave/cli/v2"
)

var cmdShell = &cli.Command{
	Name:  "shell",
	Usage: "interactive session on a set of words",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "degree",
			Usage: "minimum degree B of the tree",
			Value: btree.DefaultDegree,
		},
	},
	Action: runShell,
}

func runShell(cctx *cli.Context) error {
	tree, err := btree.NewOrdered[string](cctx.Int("degree"))
	if err != nil {
		return err
	}
	sh := newShell(os.Stdin, os.Stdout, tree)
	sh.printHelp()
	return sh.loop()
}

var errExit = errors.New("exit")

type shell struct {
	scanner *bufio.Scanner
	out     io.Writer
	tree    *btree.Tree[string]
	ok      *color.Color
	fail    *color.Color
	prompt  *color.Color
}

func newShell(in io.Reader, out io.Writer, tree *btree.Tree[string]) *shell {
	return &shell{
		scanner: bufio.NewScanner(in),
		out:     out,
		tree:    tree,
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		prompt:  color.New(color.FgBlue, color.Bold),
	}
}

// loop reads commands until EOF or EXIT.
func (sh *shell) loop() error {
	sh.prompt.Fprint(sh.out, "> ")
	for sh.scanner.Scan() {
		if err := sh.processInput(sh.scanner.Text()); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
		sh.prompt.Fprint(sh.out, "> ")
	}
	return sh.scanner.Err()
}

func (sh *shell) printHelp() {
	fmt.Fprintln(sh.out, `
B-Tree set shell

Available commands:
  INS <key>...   insert keys
  DEL <key>...   remove keys
  GET <key>      search for a key
  HAS <key>      test membership
  LEN            number of keys and tree height
  STATS          structural counters
  CHECK          validate the tree shape
  DOT            print the tree in Graphviz DOT format
  HELP           show this text
  EXIT           terminate this session`)
}

func (sh *shell) processInput(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return nil
	}
	command, args := strings.ToLower(fields[0]), fields[1:]
	switch command {
	default:
		sh.fail.Fprintf(sh.out, "unknown command %q\n", command)
	case "ins":
		for _, k := range args {
			sh.report(sh.tree.Insert(k), "inserted %s", k)
		}
	case "del":
		for _, k := range args {
			_, err := sh.tree.Remove(k)
			sh.report(err, "removed %s", k)
		}
	case "get":
		if len(args) != 1 {
			fmt.Fprintln(sh.out, "usage: GET <key>")
			return nil
		}
		k, err := sh.tree.Search(args[0])
		sh.report(err, "found %s", k)
	case "has":
		if len(args) != 1 {
			fmt.Fprintln(sh.out, "usage: HAS <key>")
			return nil
		}
		fmt.Fprintln(sh.out, sh.tree.Contains(args[0]))
	case "len":
		fmt.Fprintf(sh.out, "%d keys, height %d\n", sh.tree.Len(), sh.tree.Height())
	case "stats":
		fmt.Fprintln(sh.out, sh.tree.Stats())
	case "check":
		sh.report(sh.tree.Check(), "tree is valid")
	case "dot":
		sh.tree.ToDot(sh.out)
	case "help":
		sh.printHelp()
	case "exit", "quit":
		return errExit
	}
	return nil
}

func (sh *shell) report(err error, format string, args ...any) {
	switch {
	case err == nil:
		sh.ok.Fprintf(sh.out, format+"\n", args...)
	case errors.Is(err, btreeset.ErrKeyNotFound), errors.Is(err, btreeset.ErrKeyAlreadyExists):
		sh.fail.Fprintln(sh.out, err.Error())
	default:
		sh.fail.Fprintf(sh.out, "error: %v\n", err)
	}
}

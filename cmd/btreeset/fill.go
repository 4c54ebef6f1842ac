package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-faker/faker/v4"
	"github.com/npillmayer/btreeset"
	"github.com/npillmayer/btreeset/btree"
	"github.com/urfave/cli/v2"
)

var cmdFill = &cli.Command{
	Name:  "fill",
	Usage: "bulk-load generated words and report tree statistics",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "degree",
			Usage: "minimum degree B of the tree",
			Value: btree.DefaultDegree,
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of insert attempts",
			Value: 1000,
		},
		&cli.IntFlag{
			Name:  "remove",
			Usage: "remove every n-th inserted word afterwards (0 disables)",
		},
		&cli.StringFlag{
			Name:  "dot",
			Usage: "write the resulting tree in Graphviz DOT format to `FILE`",
		},
	},
	Action: runFill,
}

func runFill(cctx *cli.Context) error {
	tree, err := btree.NewOrdered[string](cctx.Int("degree"))
	if err != nil {
		return err
	}
	inserted, dups, err := fill(tree, cctx.Int("count"), func() string { return faker.Word() })
	if err != nil {
		return err
	}
	removed := 0
	if n := cctx.Int("remove"); n > 0 {
		for i := 0; i < len(inserted); i += n {
			if _, err := tree.Remove(inserted[i]); err != nil {
				return fmt.Errorf("removing %q: %w", inserted[i], err)
			}
			removed++
		}
	}
	if err := tree.Check(); err != nil {
		return err
	}
	fmt.Fprintf(cctx.App.Writer, "inserted %d, duplicates %d, removed %d\n", len(inserted), dups, removed)
	fmt.Fprintf(cctx.App.Writer, "len %d, height %d, max keys per node %d\n", tree.Len(), tree.Height(), tree.MaxKeys())
	fmt.Fprintln(cctx.App.Writer, tree.Stats())
	if path := cctx.String("dot"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		tree.ToDot(f)
	}
	return nil
}

// fill makes count insert attempts with keys drawn from gen. It returns the
// keys actually inserted, in insertion order, and the number of duplicates.
func fill(tree *btree.Tree[string], count int, gen func() string) ([]string, int, error) {
	var inserted []string
	dups := 0
	for range count {
		w := gen()
		switch err := tree.Insert(w); {
		case err == nil:
			inserted = append(inserted, w)
		case errors.Is(err, btreeset.ErrKeyAlreadyExists):
			dups++
		default:
			return inserted, dups, err
		}
	}
	return inserted, dups, nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package subtree implements a command to extract
// the subtree induced by a set of terminals.
package subtree

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/tree"
)

var Command = &command.Command{
	Usage: `subtree [--tips <name>,...] [--file <names-file>] [--raw]
	[--translate <file>] [-o|--output <file>] [<tree-file>...]`,
	Short: "extract the subtree of a set of terminals",
	Long: `
Command subtree reads one or more trees in Newick format and prints the
subtree that contains only the indicated terminals, and their ancestors.

The terminals are given with the flag --tips, as a comma separated list, or
with the flag --file, as a file with one name per line (see
'phytools help name-files'). Terminals not found in a tree are ignored.

By default, the nodes with a single descendant are removed, and their branch
lengths are added to their descendant, so the distances between the
terminals are preserved. If the flag --raw is set, the nodes with a single
descendant will be kept.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input. By default the trees will be
printed in the standard output. Use the flag --output, or -o, to define an
output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var tipList string
var namesFile string
var raw bool
var transFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&tipList, "tips", "", "")
	c.Flags().StringVar(&namesFile, "file", "", "")
	c.Flags().BoolVar(&raw, "raw", false, "")
	c.Flags().StringVar(&transFile, "translate", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	names, err := cli.Labels(tipList, namesFile)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return c.UsageError("expecting terminal names")
	}

	table, err := cli.ReadTranslation(transFile)
	if err != nil {
		return err
	}
	ts, err := cli.ReadAllTrees(c.Stdin(), args, table)
	if err != nil {
		return err
	}

	sub := make([]*tree.Node, 0, len(ts))
	for i, t := range ts {
		m := tree.SubtreeMapping(t, names, !raw)
		if m.NewRoot == nil {
			return fmt.Errorf("tree %d: terminals not found", i+1)
		}
		sub = append(sub, m.NewRoot)
	}

	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		return cli.WriteTrees(w, newick.Default, sub)
	})
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package mrca implements a command to extract
// the clade of the most recent common ancestor
// of a set of terminals.
package mrca

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/tree"
)

var Command = &command.Command{
	Usage: `mrca [--tips <name>,...] [--file <names-file>] [--strict]
	[--translate <file>] [-o|--output <file>] [<tree-file>...]`,
	Short: "extract the clade of a common ancestor",
	Long: `
Command mrca reads one or more trees in Newick format and prints the clade
(the complete subtree) of the most recent common ancestor of a set of
terminals.

The terminals are given with the flag --tips, as a comma separated list, or
with the flag --file, as a file with one name per line (see
'phytools help name-files'). By default, terminals not found in a tree are
ignored. If the flag --strict is set, a terminal not found in a tree is an
error.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input. By default the clades will be
printed in the standard output. Use the flag --output, or -o, to define an
output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var tipList string
var namesFile string
var strict bool
var transFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&tipList, "tips", "", "")
	c.Flags().StringVar(&namesFile, "file", "", "")
	c.Flags().BoolVar(&strict, "strict", false, "")
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

	clades := make([]*tree.Node, 0, len(ts))
	for i, t := range ts {
		var m *tree.Node
		if strict {
			m, err = tree.MRCAStrict(t, names)
			if err != nil {
				return fmt.Errorf("tree %d: %v", i+1, err)
			}
		} else {
			m = tree.MRCA(t, names)
		}
		if m == nil {
			return fmt.Errorf("tree %d: terminals not found", i+1)
		}
		cl := tree.Copy(m)
		cl.ClearLength()
		clades = append(clades, cl)
	}

	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		return cli.WriteTrees(w, newick.Default, clades)
	})
}

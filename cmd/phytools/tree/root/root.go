// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package root implements a command to root a set of trees
// using an outgroup.
package root

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/tree"
)

var Command = &command.Command{
	Usage: `root [--tips <name>,...] [--file <names-file>]
	[--translate <file>] [-o|--output <file>] [<tree-file>...]`,
	Short: "root trees using an outgroup",
	Long: `
Command root reads one or more trees in Newick format and roots them on the
branch of the outgroup, i.e., the branch above the most recent common ancestor
of the outgroup terminals. The length of the branch is split in half between
the two descendants of the new root.

The outgroup terminals are given with the flag --tips, as a comma separated
list, or with the flag --file, as a file with one name per line (see
'phytools help name-files'). Terminals not found in a tree are ignored, and
it is an error if no outgroup terminal is found in a tree.

If the input tree is rooted inside the outgroup, the tree is rooted on the
branch of the ingroup (the terminals outside the outgroup). It is an error if
neither the outgroup nor the ingroup define a branch of the tree.

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
var transFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&tipList, "tips", "", "")
	c.Flags().StringVar(&namesFile, "file", "", "")
	c.Flags().StringVar(&transFile, "translate", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	out, err := cli.Labels(tipList, namesFile)
	if err != nil {
		return err
	}
	if len(out) == 0 {
		return c.UsageError("expecting outgroup terminals")
	}

	table, err := cli.ReadTranslation(transFile)
	if err != nil {
		return err
	}
	ts, err := cli.ReadAllTrees(c.Stdin(), args, table)
	if err != nil {
		return err
	}

	for i, t := range ts {
		nt, err := rootOn(t, out)
		if err != nil {
			return fmt.Errorf("tree %d: %v", i+1, err)
		}
		ts[i] = nt
	}

	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		return cli.WriteTrees(w, newick.Default, ts)
	})
}

func rootOn(t *tree.Node, out []string) (*tree.Node, error) {
	m := tree.MRCA(t, out)
	if m == nil {
		return nil, fmt.Errorf("outgroup not found")
	}
	if !m.IsRoot() {
		return tree.RootOn(m), nil
	}

	// the root is inside the outgroup
	// so use the ingroup branch
	isOut := make(map[string]bool, len(out))
	for _, l := range out {
		isOut[l] = true
	}
	var in []string
	for _, l := range t.Labels() {
		if !isOut[l] {
			in = append(in, l)
		}
	}
	if len(in) == 0 {
		return nil, fmt.Errorf("all terminals are in the outgroup")
	}
	m = tree.MRCA(t, in)
	if m.IsRoot() {
		return nil, fmt.Errorf("outgroup is not monophyletic")
	}
	return tree.RootOn(m), nil
}

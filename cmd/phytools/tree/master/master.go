// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package master implements a command to root a set of trees
// using a master tree.
package master

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/bipart"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
)

var Command = &command.Command{
	Usage: `master [--translate <file>] [-o|--output <file>]
	[--verbose] <master-tree-file> [<tree-file>...]`,
	Short: "root trees using a master tree",
	Long: `
Command master reads one or more trees in Newick format and roots them using
the relationships of a master tree.

The first argument of the command is the file with the master tree. If the
file contains more than one tree, the first one will be used. The master tree
must contain all the terminals of the trees to be rooted, and the most recent
common ancestor of those terminals in the master tree must be bifurcating.

Each tree is rooted on the first branch, in preorder, that is compatible with
the root bipartition of the master tree. If there is no compatible branch the
command ends with an error.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input. By default the trees will be
printed in the standard output. Use the flag --output, or -o, to define an
output file.

Use the flag --verbose to report the progress of the command in the standard
error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var transFile string
var output string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&transFile, "translate", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting master tree file")
	}
	logger := cli.NewLogger(c.Stderr(), verbose)

	table, err := cli.ReadTranslation(transFile)
	if err != nil {
		return err
	}
	ms, err := cli.ReadTrees(c.Stdin(), args[0], table)
	if err != nil {
		return err
	}
	master := ms[0]
	logger.Debug("master tree", "file", args[0], "tips", len(master.Labels()))

	ts, err := cli.ReadAllTrees(c.Stdin(), args[1:], table)
	if err != nil {
		return err
	}

	p := cli.NewProgress(logger)
	for i, t := range ts {
		nt, err := bipart.RootAgainst(t, master)
		if err != nil {
			return fmt.Errorf("tree %d: %v", i+1, err)
		}
		ts[i] = nt
		logger.Debug("rooted", "tree", i+1)
	}
	if verbose {
		p.Done("trees rooted", "trees", len(ts))
	}

	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		return cli.WriteTrees(w, newick.Default, ts)
	})
}

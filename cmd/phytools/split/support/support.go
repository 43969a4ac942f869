// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package support implements a command to calculate
// the support of the branches of a reference tree
// in a set of trees.
package support

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/bipart"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
)

var Command = &command.Command{
	Usage: `support [--labels] [--cpu <number>] [--verbose]
	[--translate <file>] [-o|--output <file>]
	<reference-tree-file> [<tree-file>...]`,
	Short: "calculate the support of tree branches",
	Long: `
Command support reads a reference tree, and a set of trees, all in Newick
format and with the same terminals, and calculates, for each internal branch
of the reference tree, the proportion of trees that have the same bipartition.

The first argument of the command is the file with the reference tree. If the
file contains more than one tree, only the first one will be used.

By default, the output is a tab-delimited table with the fields:

	- edge     the preorder index of the branch
	- node     the label of the node below the branch
	- support  the proportion of trees with the bipartition

If the flag --labels is set, the output will be the reference tree, in Newick
format, with the support values as labels of the internal nodes.

Trees are compared in parallel. By default all processors are used. Use the
flag --cpu to set the number of processors.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input. By default the output will be
printed in the standard output. Use the flag --output, or -o, to define an
output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var labelsFlag bool
var numCPU int
var verbose bool
var transFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&labelsFlag, "labels", false, "")
	c.Flags().IntVar(&numCPU, "cpu", runtime.NumCPU(), "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&transFile, "translate", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting reference tree file")
	}
	logger := cli.NewLogger(c.Stderr(), verbose)

	table, err := cli.ReadTranslation(transFile)
	if err != nil {
		return err
	}
	refs, err := cli.ReadTrees(c.Stdin(), args[0], table)
	if err != nil {
		return err
	}
	ref := refs[0]

	ts, err := cli.ReadAllTrees(c.Stdin(), args[1:], table)
	if err != nil {
		return err
	}
	logger.Debug("trees read", "trees", len(ts))

	p := cli.NewProgress(logger)
	sup, err := bipart.Support(context.Background(), ref, ts, numCPU)
	if err != nil {
		return err
	}
	if verbose {
		p.Done("support", "edges", len(sup), "trees", len(ts))
	}

	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		if labelsFlag {
			for _, s := range sup {
				s.Node.Label = strconv.FormatFloat(s.Support, 'f', 3, 64)
			}
			return newick.Default.Write(w, ref)
		}

		fmt.Fprintf(w, "edge\tnode\tsupport\n")
		for _, s := range sup {
			fmt.Fprintf(w, "%d\t%s\t%.6f\n", s.ID, s.Node.Label, s.Support)
		}
		return nil
	})
}

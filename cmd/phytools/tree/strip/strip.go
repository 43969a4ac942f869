// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package strip implements a command to remove
// internal labels, comments and branch lengths
// from a set of trees.
package strip

import (
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/tree"
)

var Command = &command.Command{
	Usage: `strip [--labels] [--lengths] [--comments]
	[--translate <file>] [-o|--output <file>] [<tree-file>...]`,
	Short: "remove labels and branch lengths from trees",
	Long: `
Command strip reads one or more trees in Newick format and removes the
indicated elements from the trees.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input.

If the flag --labels is set, the labels of the internal nodes will be
removed. If the flag --lengths is set, the branch lengths will be removed.
Comments are always removed, unless the flag --comments is set.

By default the trees will be printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var labelsFlag bool
var lengthsFlag bool
var commentsFlag bool
var transFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&labelsFlag, "labels", false, "")
	c.Flags().BoolVar(&lengthsFlag, "lengths", false, "")
	c.Flags().BoolVar(&commentsFlag, "comments", false, "")
	c.Flags().StringVar(&transFile, "translate", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	table, err := cli.ReadTranslation(transFile)
	if err != nil {
		return err
	}
	ts, err := cli.ReadAllTrees(c.Stdin(), args, table)
	if err != nil {
		return err
	}

	for _, t := range ts {
		tree.Strip(t, labelsFlag, lengthsFlag)
	}

	f := newick.Default
	f.Comments = commentsFlag
	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		return cli.WriteTrees(w, f, ts)
	})
}

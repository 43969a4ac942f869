// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the bipartitions of a tree.
package list

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/bipart"
	"github.com/js-arias/phytools/internal/cli"
)

var Command = &command.Command{
	Usage: `list [--translate <file>] [-o|--output <file>]
	[<tree-file>]`,
	Short: "print the bipartitions of a tree",
	Long: `
Command list reads a tree in Newick format and prints the bipartitions
(splits) defined by each internal branch of the tree.

The output is a tab-delimited table with the fields:

	- edge   the preorder index of the branch
	- node   the label of the node below the branch
	- side1  the terminals below the branch, separated by commas
	- side2  the other terminals, separated by commas

Only the first tree of the input is used. If no file is given the tree will be
read from the standard input. By default the table will be printed in the
standard output. Use the flag --output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var transFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&transFile, "translate", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	table, err := cli.ReadTranslation(transFile)
	if err != nil {
		return err
	}
	var tf string
	if len(args) > 0 {
		tf = args[0]
	}
	ts, err := cli.ReadTrees(c.Stdin(), tf, table)
	if err != nil {
		return err
	}

	es := bipart.Edges(ts[0])
	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		fmt.Fprintf(w, "edge\tnode\tside1\tside2\n")
		for _, e := range es {
			a, b := e.Sides()
			// the first side is the subtree of the node
			if !slices.Contains(a, e.Node.Leaves()[0].Label) {
				a, b = b, a
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Node.Label, strings.Join(a, ","), strings.Join(b, ","))
		}
		return nil
	})
}

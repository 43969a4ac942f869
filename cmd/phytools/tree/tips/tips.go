// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tips implements a command to print
// the terminal names of a set of trees.
package tips

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: `tips [--translate <file>] [--count] [--each]
	[<tree-file>...]`,
	Short: "print the terminals of the trees",
	Long: `
Command tips reads one or more trees in Newick format and prints the names of
the terminals in the standard output, sorted alphabetically.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input.

By default, the terminals of all trees are printed as a single list. If the
flag --each is set, the terminals of each tree will be printed in a separate
block.

If the flag --count is set, only the number of terminals will be printed.

Use the flag --translate to read a translation table for terminal names (see
'phytools help newick-files').
	`,
	SetFlags: setFlags,
	Run:      run,
}

var transFile string
var countFlag bool
var eachFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&transFile, "translate", "", "")
	c.Flags().BoolVar(&countFlag, "count", false, "")
	c.Flags().BoolVar(&eachFlag, "each", false, "")
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

	if eachFlag {
		for i, t := range ts {
			ls := t.Labels()
			slices.Sort(ls)
			if countFlag {
				fmt.Fprintf(c.Stdout(), "tree %d\t%d\n", i+1, len(ls))
				continue
			}
			fmt.Fprintf(c.Stdout(), "# tree %d\n", i+1)
			for _, l := range ls {
				fmt.Fprintf(c.Stdout(), "%s\n", l)
			}
		}
		return nil
	}

	terms := make(map[string]bool)
	for _, t := range ts {
		for _, l := range t.Labels() {
			terms[l] = true
		}
	}
	termList := make([]string, 0, len(terms))
	for tax := range terms {
		termList = append(termList, tax)
	}
	slices.Sort(termList)

	if countFlag {
		fmt.Fprintf(c.Stdout(), "%d\n", len(termList))
		return nil
	}
	for _, term := range termList {
		fmt.Fprintf(c.Stdout(), "%s\n", term)
	}
	return nil
}

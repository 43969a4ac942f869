// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package missing implements a command to print
// the names that are not found in a tree.
package missing

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: `missing [--extra] [--translate <file>]
	<names-file> [<tree-file>...]`,
	Short: "print names missing from trees",
	Long: `
Command missing reads a list of names, and one or more trees in Newick format,
and prints the names that are not terminals of the trees.

The first argument of the command is a file with one name per line (see
'phytools help name-files').

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input. The terminals of all the trees
are pooled together.

If the flag --extra is set, it will print the terminals of the trees that are
not in the list of names.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var extra bool
var transFile string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&extra, "extra", false, "")
	c.Flags().StringVar(&transFile, "translate", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting names file")
	}
	names, err := cli.ReadNames(args[0])
	if err != nil {
		return err
	}

	table, err := cli.ReadTranslation(transFile)
	if err != nil {
		return err
	}
	ts, err := cli.ReadAllTrees(c.Stdin(), args[1:], table)
	if err != nil {
		return err
	}

	terms := make(map[string]bool)
	for _, t := range ts {
		for _, l := range t.Labels() {
			terms[l] = true
		}
	}
	inList := make(map[string]bool, len(names))
	for _, nm := range names {
		inList[nm] = true
	}

	var ls []string
	if extra {
		for tm := range terms {
			if !inList[tm] {
				ls = append(ls, tm)
			}
		}
	} else {
		for nm := range inList {
			if !terms[nm] {
				ls = append(ls, nm)
			}
		}
	}
	slices.Sort(ls)

	for _, l := range ls {
		fmt.Fprintf(c.Stdout(), "%s\n", l)
	}
	return nil
}

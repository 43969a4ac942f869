// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prune implements a command to remove terminals
// from a set of trees.
package prune

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/tree"
)

var Command = &command.Command{
	Usage: `prune [--tips <name>,...] [--file <names-file>] [--keep]
	[--log <file>] [--translate <file>] [-o|--output <file>]
	[<tree-file>...]`,
	Short: "remove terminals from trees",
	Long: `
Command prune reads one or more trees in Newick format and removes the
indicated terminals. When a terminal is removed, the nodes left with a single
descendant are removed too, and their branch lengths are added to the branch
of the descendant, so the distances between the remaining terminals are
preserved.

The terminals are given with the flag --tips, as a comma separated list, or
with the flag --file, as a file with one name per line (see
'phytools help name-files'). If the flag --keep is set, the indicated
terminals will be kept, and all the other terminals will be removed.

Terminals not found in a tree are ignored. It is an error to remove all the
terminals of a tree.

Use the flag --log to write the list of removed terminals into a file.

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
var keepFlag bool
var logFile string
var transFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&tipList, "tips", "", "")
	c.Flags().StringVar(&namesFile, "file", "", "")
	c.Flags().BoolVar(&keepFlag, "keep", false, "")
	c.Flags().StringVar(&logFile, "log", "", "")
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

	if logFile == "" {
		err = pruneTrees(nil, ts, names)
	} else {
		err = cli.Output(nil, logFile, func(w io.Writer) error {
			return pruneTrees(w, ts, names)
		})
	}
	if err != nil {
		return err
	}

	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		return cli.WriteTrees(w, newick.Default, ts)
	})
}

// pruneTrees removes the terminals from each tree.
// If keepFlag is set, the indicated terminals are kept.
// If logw is not nil,
// the removed terminals are written into it.
func pruneTrees(logw io.Writer, ts []*tree.Node, names []string) error {
	for i, t := range ts {
		rm := names
		if keepFlag {
			rm = complement(t, names)
		}
		if logw != nil {
			if _, err := fmt.Fprintf(logw, "# tree %d\n", i+1); err != nil {
				return fmt.Errorf("while writing log: %v", err)
			}
		}
		nt, err := pruneTips(t, rm, logw)
		if err != nil {
			return fmt.Errorf("tree %d: %v", i+1, err)
		}
		ts[i] = nt
	}
	return nil
}

func pruneTips(root *tree.Node, names []string, logw io.Writer) (*tree.Node, error) {
	for _, nm := range names {
		n := root.Find(nm)
		if n == nil || !n.IsTip() {
			continue
		}
		p, err := n.Prune(logw)
		if err != nil {
			return nil, fmt.Errorf("terminal %q: %v", nm, err)
		}
		root = p.Root()
	}
	return root, nil
}

func complement(root *tree.Node, names []string) []string {
	keep := make(map[string]bool, len(names))
	for _, nm := range names {
		keep[nm] = true
	}
	var rm []string
	for _, l := range root.Labels() {
		if !keep[l] {
			rm = append(rm, l)
		}
	}
	return rm
}

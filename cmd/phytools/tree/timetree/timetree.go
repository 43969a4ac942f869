// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package timetree implements a command to convert
// Newick trees into time calibrated tree files,
// and back.
package timetree

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/tree"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `timetree [--name <name>] [--age <value>] [--tsv]
	[-o|--output <file>] [<tree-file>...]`,
	Short: "convert trees to and from time calibrated tree files",
	Long: `
Command timetree reads one or more trees in Newick format, with branch lengths
in million years, and writes them as a tab-delimited file of time calibrated
trees, as used by PhyGeo and other tools.

Each tree requires a name. By default the name is 'tree'. Use the flag --name
to define a different name. Trees from the second file onwards are named
'<name>.<file-index>'.

By default, the age of the root is the largest distance from the root to a
terminal. To set a different root age, use the flag --age, with a value in
million years.

If the flag --tsv is set, the input files are read as tab-delimited files of
time calibrated trees, and the trees are written in Newick format, with branch
lengths in million years.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input. By default the output will be
printed in the standard output. Use the flag --output, or -o, to define an
output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

// millionYears is the number of years in a million years.
const millionYears = 1_000_000

var newickName string
var rootAge float64
var tsvFlag bool
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&newickName, "name", "tree", "")
	c.Flags().Float64Var(&rootAge, "age", 0, "")
	c.Flags().BoolVar(&tsvFlag, "tsv", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		args = append(args, "-")
	}

	if tsvFlag {
		var ts []*tree.Node
		for _, a := range args {
			tc, err := readTreeFile(c.Stdin(), a)
			if err != nil {
				return err
			}
			for _, tn := range tc.Names() {
				ts = append(ts, fromTimeTree(tc.Tree(tn)))
			}
		}
		return cli.Output(c.Stdout(), output, func(w io.Writer) error {
			return cli.WriteTrees(w, newick.Default, ts)
		})
	}

	tc := timetree.NewCollection()
	for i, a := range args {
		tn := newickName
		if i > 0 {
			tn = fmt.Sprintf("%s.%d", newickName, i)
		}
		nc, err := readNewick(c.Stdin(), a, tn)
		if err != nil {
			return err
		}
		for _, n := range nc.Names() {
			if err := tc.Add(nc.Tree(n)); err != nil {
				return fmt.Errorf("when adding trees from %q: %v", a, err)
			}
		}
	}
	return cli.Output(c.Stdout(), output, tc.TSV)
}

func readNewick(r io.Reader, name, treeName string) (*timetree.Collection, error) {
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	c, err := timetree.Newick(r, treeName, int64(rootAge*millionYears))
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func readTreeFile(r io.Reader, name string) (*timetree.Collection, error) {
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

// fromTimeTree returns a tree
// with branch lengths in million years.
func fromTimeTree(t *timetree.Tree) *tree.Node {
	var build func(id int) *tree.Node
	build = func(id int) *tree.Node {
		n := tree.New("")
		if t.IsTerm(id) {
			n.Label = t.Taxon(id)
		}
		if !t.IsRoot(id) {
			p := t.Parent(id)
			n.SetLength(float64(t.Age(p)-t.Age(id)) / millionYears)
		}
		for _, c := range t.Children(id) {
			n.AddChild(build(c))
		}
		return n
	}
	return build(t.Root())
}

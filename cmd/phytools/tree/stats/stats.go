// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// summary statistics of a set of trees.
package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/tree"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: `stats [--tolerance <value>] [--translate <file>]
	[-o|--output <file>] [<tree-file>...]`,
	Short: "print summary statistics of trees",
	Long: `
Command stats reads one or more trees in Newick format and prints, for each
tree, the number of terminals, the number of internal nodes, the sum of the
branch lengths, the height of the tree (the largest distance from the root to
a terminal), and whether the tree is ultrametric.

The output is a tab-delimited table with the fields:

	- tree         the index of the tree in the input
	- tips         number of terminals
	- internal     number of internal nodes
	- length       sum of branch lengths
	- height       largest distance from the root to a terminal
	- ultrametric  "true" if all terminals are at the same distance
	               from the root

At the end, the mean and standard deviation of the length and height are
printed as comments.

By default, a tree is ultrametric if the difference between the largest and
smallest distance from the root to a terminal is smaller than 1e-6. Use the
flag --tolerance to change this value.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input. By default the table will be
printed in the standard output. Use the flag --output, or -o, to define an
output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var tolerance float64
var transFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&tolerance, "tolerance", 1e-6, "")
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

	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		return writeStats(w, ts)
	})
}

func writeStats(w io.Writer, ts []*tree.Node) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	header := []string{"tree", "tips", "internal", "length", "height", "ultrametric"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	lengths := make([]float64, 0, len(ts))
	heights := make([]float64, 0, len(ts))
	for i, t := range ts {
		var tips, internal int
		for n := range t.Nodes(tree.PreOrder) {
			if n.IsTip() {
				tips++
				continue
			}
			internal++
		}
		l := tree.TotalLength(t)
		h := t.Depth()
		lengths = append(lengths, l)
		heights = append(heights, h)

		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(tips),
			strconv.Itoa(internal),
			strconv.FormatFloat(l, 'f', 6, 64),
			strconv.FormatFloat(h, 'f', 6, 64),
			strconv.FormatBool(tree.IsUltrametric(t, tolerance)),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}

	if len(ts) < 2 {
		return nil
	}
	lm, lsd := stat.MeanStdDev(lengths, nil)
	hm, hsd := stat.MeanStdDev(heights, nil)
	fmt.Fprintf(w, "# length: mean %.6f sd %.6f\n", lm, lsd)
	fmt.Fprintf(w, "# height: mean %.6f sd %.6f\n", hm, hsd)
	return nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package quartets implements a command to print
// the quartets defined by the internal branches of a tree.
package quartets

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/bipart"
	"github.com/js-arias/phytools/internal/cli"
)

var Command = &command.Command{
	Usage: `quartets [--sample <number>] [--seed <number>]
	[--translate <file>] [-o|--output <file>] [<tree-file>]`,
	Short: "print the quartets of tree branches",
	Long: `
Command quartets reads a tree in Newick format and prints, for each internal
branch of the tree, the four subtrees connected to the ends of the branch:
the two descendants of the node below the branch (R1 and R2), the sibling of
the node (L1), and the rest of the tree (L2). If the sibling is at the other
side of a bifurcating root, L1 and L2 are the descendants of the sibling.
Branches in a polytomy are ignored.

The output is a tab-delimited table with the fields:

	- edge  the preorder index of the branch
	- node  the label of the node below the branch
	- R1, R2, L1, L2  the terminals of each subtree, separated by commas

If the flag --sample is set, instead of the terminal sets, the indicated
number of random quartets of terminals (one terminal from each subtree) will
be printed for each branch. Use the flag --seed to set the seed of the random
number generator.

Only the first tree of the input is used. If no file is given the tree will be
read from the standard input. By default the table will be printed in the
standard output. Use the flag --output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var sample int
var seed uint64
var transFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&sample, "sample", 0, "")
	c.Flags().Uint64Var(&seed, "seed", 0, "")
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

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	qs := bipart.Quartets(ts[0])
	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		fmt.Fprintf(w, "edge\tnode\tR1\tR2\tL1\tL2\n")
		for _, q := range qs {
			if sample > 0 {
				for i := 0; i < sample; i++ {
					s := q.Sample(rng)
					fmt.Fprintf(w, "%d\t%s\t%s\n", q.ID, q.Node.Label, strings.Join(s[:], "\t"))
				}
				continue
			}
			var sets [4]string
			for i, s := range q.Sets {
				sets[i] = strings.Join(s, ",")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", q.ID, q.Node.Label, strings.Join(sets[:], "\t"))
		}
		return nil
	})
}

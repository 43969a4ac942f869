// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package random implements a command to make
// random trees.
package random

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/sim"
	"github.com/js-arias/phytools/tree"
)

var Command = &command.Command{
	Usage: `random [-n|--tips <number>] [--file <names-file>]
	[--length <distribution>] [--trees <number>] [--seed <number>]
	[-o|--output <file>]`,
	Short: "make random trees",
	Long: `
Command random makes one or more random bifurcating trees. The trees are built
by randomly joining pairs of nodes until a single node remains.

The terminal names can be given with the flag --file, as a file with one name
per line (see 'phytools help name-files'). Otherwise, the flag --tips, or -n,
is required and defines the number of terminals, named T1 to Tn.

By default, the trees are built without branch lengths. Use the flag --length
to define a distribution for the branch lengths. The distribution is given as
<name>=<parameters>, for example "gamma=2,1". Valid distributions are:

	constant=<length>
	uniform=<min>,<max>
	exponential=<rate>
	gamma=<alpha>,<beta>
	lognormal=<mu>,<sigma>

Adding ":<n>" at the end of the distribution, for example "gamma=2,1:4", will
discretize the distribution in n categories of equal probability.

By default a single tree is made. Use the flag --trees to define the number
of trees. Use the flag --seed to set the seed of the random number generator.

By default the trees will be printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var numTips int
var namesFile string
var lengthDist string
var numTrees int
var seed uint64
var output string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&numTips, "tips", 0, "")
	c.Flags().IntVar(&numTips, "n", 0, "")
	c.Flags().StringVar(&namesFile, "file", "", "")
	c.Flags().StringVar(&lengthDist, "length", "", "")
	c.Flags().IntVar(&numTrees, "trees", 1, "")
	c.Flags().Uint64Var(&seed, "seed", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	var labels []string
	switch {
	case namesFile != "" && numTips > 0:
		return c.UsageError("flags --file and --tips can not be used together")
	case namesFile != "":
		ls, err := cli.ReadNames(namesFile)
		if err != nil {
			return err
		}
		labels = ls
	case numTips > 0:
		labels = sim.Labels(numTips)
	default:
		return c.UsageError("expecting flag --tips or --file")
	}

	var dist sim.Lengther
	if lengthDist != "" {
		d, err := sim.ParseLengther(lengthDist)
		if err != nil {
			return c.UsageError(err.Error())
		}
		dist = d
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	ts := make([]*tree.Node, 0, numTrees)
	for i := 0; i < numTrees; i++ {
		t, err := sim.Random(labels, dist, rng)
		if err != nil {
			return fmt.Errorf("tree %d: %v", i+1, err)
		}
		ts = append(ts, t)
	}

	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		return cli.WriteTrees(w, newick.Default, ts)
	})
}

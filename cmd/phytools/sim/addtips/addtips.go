// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package addtips implements a command to add terminals
// at random positions of a chronogram.
package addtips

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/sim"
)

var Command = &command.Command{
	Usage: `addtips [--min <value>] [--stem <value>] [--seed <number>]
	[--verbose] [-o|--output <file>] <names-file> [<tree-file>]`,
	Short: "add terminals to a chronogram",
	Long: `
Command addtips reads an ultrametric tree (a chronogram) in Newick format, and
a list of names, and adds each name as a new terminal attached at a random
position of a random branch of the tree, keeping the tree ultrametric.

The first argument of the command is a file with the names to be added, one
name per line (see 'phytools help name-files'). The second argument is the
file with the tree. If the file contains more than one tree, only the first
one will be used. If no tree file is given, the tree will be read from the
standard input.

The new branches will have a length of at least 0.01. Use the flag --min to
set a different minimum length. Branches shorter than twice the minimum length
are never selected.

By default, new terminals are never attached to the root. Use the flag --stem
to define the maximum length of a stem branch below the root, so new terminals
can be attached at the stem, creating a new root.

Use the flag --seed to set the seed of the random number generator.

By default the tree will be printed in the standard output. Use the flag
--output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var minLen float64
var stem float64
var seed uint64
var verbose bool
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&minLen, "min", sim.MinLength, "")
	c.Flags().Float64Var(&stem, "stem", 0, "")
	c.Flags().Uint64Var(&seed, "seed", 0, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting names file")
	}
	if minLen <= 0 {
		return c.UsageError("flag --min must be greater than 0")
	}
	logger := cli.NewLogger(c.Stderr(), verbose)

	names, err := cli.ReadNames(args[0])
	if err != nil {
		return err
	}

	var tf string
	if len(args) > 1 {
		tf = args[1]
	}
	ts, err := cli.ReadTrees(c.Stdin(), tf, nil)
	if err != nil {
		return err
	}
	t := ts[0]

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	opts := sim.AddOptions{
		MinLength: minLen,
		Stem:      stem,
	}
	t, err = sim.AddTips(t, names, opts, rng)
	if err != nil {
		return fmt.Errorf("on tree %q: %v", tf, err)
	}
	logger.Debug("terminals added", "names", len(names), "tips", len(t.Labels()))

	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		return newick.Default.Write(w, t)
	})
}

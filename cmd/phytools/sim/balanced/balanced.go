// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package balanced implements a command to make
// balanced or pectinate trees.
package balanced

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/sim"
)

var Command = &command.Command{
	Usage: `balanced [--pectinate] [--length <distribution>]
	-n|--tips <number>`,
	Short: "make a balanced or pectinate tree",
	Long: `
Command balanced makes a fully balanced, ultrametric tree. Each node splits
its terminals in two halves. The terminals are named T1 to Tn.

The flag --tips, or -n, is required and defines the number of terminals.

If the flag --pectinate is set, a fully pectinate (caterpillar) tree will be
made instead, in which T1 is the sister of all the other terminals.

By default, all branches have a length of 1 before they are adjusted to make
the tree ultrametric. Use the flag --length to define a distribution for the
branch lengths (see 'phytools sim random' for the valid distributions).

The tree is printed in the standard output.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var numTips int
var pectinate bool
var lengthDist string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&numTips, "tips", 0, "")
	c.Flags().IntVar(&numTips, "n", 0, "")
	c.Flags().BoolVar(&pectinate, "pectinate", false, "")
	c.Flags().StringVar(&lengthDist, "length", "constant=1", "")
}

func run(c *command.Command, args []string) error {
	if numTips < 2 {
		return c.UsageError("flag --tips must be at least 2")
	}
	dist, err := sim.ParseLengther(lengthDist)
	if err != nil {
		return c.UsageError(err.Error())
	}

	gen := sim.Balanced
	if pectinate {
		gen = sim.Pectinate
	}
	t, err := gen(numTips, dist)
	if err != nil {
		return err
	}
	return newick.Default.Write(c.Stdout(), t)
}

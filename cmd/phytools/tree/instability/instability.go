// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package instability implements a command to calculate
// the instability index of each taxon
// in a set of trees.
package instability

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/patristic"
)

var Command = &command.Command{
	Usage: `instability [--lengths] [--every <number>] [--seed <number>]
	[--cpu <number>] [--verbose] [--translate <file>]
	[-o|--output <file>] [<tree-file>...]`,
	Short: "calculate taxon instability scores",
	Long: `
Command instability reads a set of trees in Newick format, that share the same
terminals, and calculates the instability index of each terminal, as defined
by Hinchliff and Roalson (2013, Syst. Biol. 62: 205). Terminals that change
their position among trees have higher scores.

For each terminal, the raw instability is the sum, over all pairs of trees,
and over all other terminals, of the absolute difference of the patristic
distance between the terminal and the other terminal. By default, each branch
is counted as 1. Use the flag --lengths to use the branch lengths of the
trees.

To scale the scores, one of every five trees (change this value with the flag
--every) is copied with its terminals randomly reassigned, and the average
instability of those random trees is used as the expected value. Use the flag
--seed to set the seed of the random number generator.

The output is a tab-delimited table with the fields:

	- label  the terminal name
	- mean   the raw instability divided by the number of trees
	- score  the mean instability scaled by the expected value
	         (only if there are at least two random trees)

Distance matrices are compared in parallel. By default all processors are
used. Use the flag --cpu to set the number of processors.

One or more tree files can be given as arguments. If no file is given the
trees will be read from the standard input. By default the table will be
printed in the standard output. Use the flag --output, or -o, to define an
output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var lengths bool
var every int
var seed uint64
var numCPU int
var verbose bool
var transFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&lengths, "lengths", false, "")
	c.Flags().IntVar(&every, "every", 5, "")
	c.Flags().Uint64Var(&seed, "seed", 0, "")
	c.Flags().IntVar(&numCPU, "cpu", runtime.NumCPU(), "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&transFile, "translate", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if every < 1 {
		return c.UsageError("flag --every must be greater than 0")
	}
	logger := cli.NewLogger(c.Stderr(), verbose)

	table, err := cli.ReadTranslation(transFile)
	if err != nil {
		return err
	}
	ts, err := cli.ReadAllTrees(c.Stdin(), args, table)
	if err != nil {
		return err
	}
	logger.Debug("trees read", "trees", len(ts))

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	if seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	ms := make([]*patristic.Matrix, 0, len(ts))
	var rms []*patristic.Matrix
	for i, t := range ts {
		m, err := patristic.New(t, !lengths)
		if err != nil {
			return fmt.Errorf("tree %d: %v", i+1, err)
		}
		ms = append(ms, m)
		if i%every == 0 {
			rms = append(rms, m.Shuffle(rng))
		}
	}
	if len(ms) < 100 {
		logger.Warn("at least 100 trees are recommended for reliable precision", "trees", len(ms))
	}

	ctx := context.Background()
	p := cli.NewProgress(logger)
	inst, err := patristic.Instability(ctx, ms, numCPU)
	if err != nil {
		return err
	}
	if verbose {
		p.Done("instability", "trees", len(ms))
	}

	var expected float64
	if len(rms) > 1 {
		ri, err := patristic.Instability(ctx, rms, numCPU)
		if err != nil {
			return err
		}
		var sum float64
		for _, v := range ri {
			sum += v
		}
		expected = sum / float64(len(ri)) / float64(len(rms))
		logger.Debug("expected per-tree distance", "value", expected, "random-trees", len(rms))
	}

	labels := ms[0].Labels()
	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		tab := csv.NewWriter(w)
		tab.Comma = '\t'
		tab.UseCRLF = true

		header := []string{"label", "mean"}
		if expected > 0 {
			header = append(header, "score")
		}
		if err := tab.Write(header); err != nil {
			return fmt.Errorf("unable to write header: %v", err)
		}
		for _, l := range labels {
			mean := inst[l] / float64(len(ms))
			row := []string{
				l,
				strconv.FormatFloat(mean, 'f', 6, 64),
			}
			if expected > 0 {
				row = append(row, strconv.FormatFloat(mean/expected, 'f', 6, 64))
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
		tab.Flush()
		if err := tab.Error(); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
		return nil
	})
}

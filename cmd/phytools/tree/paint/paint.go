// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package paint implements a command to paint
// the branches of a tree
// using values associated with the nodes.
package paint

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/paint"
)

var Command = &command.Command{
	Usage: `paint --values <file> --field <name>
	[--bins <file>] [--gradient <name>]
	[--translate <file>] [-o|--output <file>] [<tree-file>]`,
	Short: "paint branches using node values",
	Long: `
Command paint reads a tree in Newick format, and a file with values associated
with node labels, and paints the branches of the tree using FigTree color
comments (for example "[&!color=#ff0000]").

The flag --values is required and defines a tab-delimited file with the node
values. The file must contain a field "label" with the labels of the nodes,
and the field given with the flag --field, with the values used to paint the
branches.

By default, the values are mapped into a color gradient, from the smallest to
the largest value. The flag --gradient sets the gradient. Valid gradient
names are:

	gray          a gray scale from light gray to black
	incandescent  the incandescent scheme of Paul Tol
	iridescent    the iridescent scheme of Paul Tol
	rainbow       the rainbow scheme of Paul Tol (default)

If the flag --bins is set, the colors will be taken from a color bins file
(see 'phytools help color-bins'). It is an error if a value is not included
in any bin.

Nodes without a value are painted black.

Only the first tree of the input is painted. If no file is given the tree will
be read from the standard input. By default the output will be printed in the
standard output. Use the flag --output, or -o, to define an output file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var valuesFile string
var fieldName string
var binsFile string
var gradient string
var transFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&valuesFile, "values", "", "")
	c.Flags().StringVar(&fieldName, "field", "", "")
	c.Flags().StringVar(&binsFile, "bins", "", "")
	c.Flags().StringVar(&gradient, "gradient", "rainbow", "")
	c.Flags().StringVar(&transFile, "translate", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if valuesFile == "" {
		return c.UsageError("flag --values must be defined")
	}
	if fieldName == "" {
		return c.UsageError("flag --field must be defined")
	}

	v, err := readValues(valuesFile)
	if err != nil {
		return err
	}

	var colorer paint.Colorer
	if binsFile != "" {
		b, err := readBins(binsFile)
		if err != nil {
			return err
		}
		colorer = b
	} else {
		g, err := paint.NewGradient(gradient)
		if err != nil {
			return c.UsageError(err.Error())
		}
		colorer = paint.NewScale(g, v)
	}

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
	t := ts[0]

	if err := paint.Paint(t, v, colorer); err != nil {
		return err
	}

	return cli.Output(c.Stdout(), output, func(w io.Writer) error {
		f := newick.Default
		f.Comments = true
		return f.Write(w, t)
	})
}

func readValues(name string) (paint.Values, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	v, err := paint.ReadValues(f, fieldName)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return v, nil
}

func readBins(name string) (paint.Bins, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var b paint.Bins
	if strings.HasSuffix(strings.ToLower(name), ".toml") {
		b, err = paint.ReadBinsTOML(f)
	} else {
		b, err = paint.ReadBins(f)
	}
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return b, nil
}

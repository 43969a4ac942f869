// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Phytools is a tool to manipulate phylogenetic trees
// in Newick format.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytools/cmd/phytools/sim"
	"github.com/js-arias/phytools/cmd/phytools/split"
	"github.com/js-arias/phytools/cmd/phytools/tree"
)

var app = &command.Command{
	Usage: "phytools <command> [<argument>...]",
	Short: "a tool to manipulate phylogenetic trees",
}

func init() {
	app.Add(sim.Command)
	app.Add(split.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}

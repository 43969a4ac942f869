// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sim is a metapackage for commands
// that simulate phylogenetic trees.
package sim

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytools/cmd/phytools/sim/addtips"
	"github.com/js-arias/phytools/cmd/phytools/sim/balanced"
	"github.com/js-arias/phytools/cmd/phytools/sim/random"
)

var Command = &command.Command{
	Usage: "sim <command> [<argument>...]",
	Short: "commands for tree simulation",
}

func init() {
	Command.Add(addtips.Command)
	Command.Add(balanced.Command)
	Command.Add(random.Command)
}

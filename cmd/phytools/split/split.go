// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package split is a metapackage for commands
// that dealt with the bipartitions
// (splits) of phylogenetic trees.
package split

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytools/cmd/phytools/split/list"
	"github.com/js-arias/phytools/cmd/phytools/split/quartets"
	"github.com/js-arias/phytools/cmd/phytools/split/support"
)

var Command = &command.Command{
	Usage: "split <command> [<argument>...]",
	Short: "commands for tree bipartitions",
}

func init() {
	Command.Add(list.Command)
	Command.Add(quartets.Command)
	Command.Add(support.Command)
}

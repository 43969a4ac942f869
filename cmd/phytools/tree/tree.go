// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with phylogenetic trees.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytools/cmd/phytools/tree/instability"
	"github.com/js-arias/phytools/cmd/phytools/tree/master"
	"github.com/js-arias/phytools/cmd/phytools/tree/missing"
	"github.com/js-arias/phytools/cmd/phytools/tree/mrca"
	"github.com/js-arias/phytools/cmd/phytools/tree/paint"
	"github.com/js-arias/phytools/cmd/phytools/tree/prune"
	"github.com/js-arias/phytools/cmd/phytools/tree/root"
	"github.com/js-arias/phytools/cmd/phytools/tree/stats"
	"github.com/js-arias/phytools/cmd/phytools/tree/strip"
	"github.com/js-arias/phytools/cmd/phytools/tree/subtree"
	"github.com/js-arias/phytools/cmd/phytools/tree/timetree"
	"github.com/js-arias/phytools/cmd/phytools/tree/tips"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for phylogenetic trees",
}

func init() {
	Command.Add(instability.Command)
	Command.Add(master.Command)
	Command.Add(missing.Command)
	Command.Add(mrca.Command)
	Command.Add(paint.Command)
	Command.Add(prune.Command)
	Command.Add(root.Command)
	Command.Add(stats.Command)
	Command.Add(strip.Command)
	Command.Add(subtree.Command)
	Command.Add(timetree.Command)
	Command.Add(tips.Command)
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(colorBinsGuide)
	app.Add(nameFilesGuide)
	app.Add(newickFilesGuide)
}

var newickFilesGuide = &command.Command{
	Usage: "newick-files",
	Short: "about tree files",
	Long: `
Phytools reads and writes phylogenetic trees in Newick (parenthetical)
format. A tree file contains one tree per line, each tree terminated by a
semicolon. Blank lines are ignored.

In a Newick tree, a pair of parentheses encloses the descendants of a node,
separated by commas. A label can be given after a terminal, or after the
closing parenthesis of an internal node. A branch length is given after a
colon, as a real number. Here is an example tree:

	((Acer_campbellii:1.5,Acer_erythranthum:1.5)Acer:2,Dipteronia:3.5);

Labels that contain spaces or any of the characters "(),:;[]'" must be
enclosed in single quotes, and a single quote inside a quoted label is
written as two single quotes:

	('Acer campbellii':1.5,'Acer erythranthum':1.5);

Text between square brackets is a comment. Comments can be nested. Comments
are kept with the node that precedes them, and most commands ignore them,
except 'phytools tree paint' that uses comments to store the branch colors
read by FigTree.

Many programs write trees using short keys (usually numbers) as terminal
names. Use the flag --translate in commands that read trees to replace the
keys with the names defined in a translation table. A translation table is a
tab-delimited file with the following fields:

	- key    the token used for the terminal in the tree
	- label  the name that replaces the token

Here is an example file:

	key	label
	1	Acer campbellii
	2	Acer erythranthum
	3	Dipteronia sinensis
	`,
}

var nameFilesGuide = &command.Command{
	Usage: "name-files",
	Short: "about name files",
	Long: `
Several commands require a list of terminal names, for example, to prune or
to select the terminals of a subtree. A name file is a plain text file with
one name per line. Spaces at the beginning and end of each line are removed.
Blank lines, and lines starting with '#' are ignored.

Here is an example file:

	# outgroup
	Dipteronia sinensis
	Dipteronia dyeriana

In most commands, a short list of names can be given with the flag --tips,
as a comma separated list, for example:

	--tips "Dipteronia sinensis,Dipteronia dyeriana"
	`,
}

var colorBinsGuide = &command.Command{
	Usage: "color-bins",
	Short: "about color bins files",
	Long: `
The command 'phytools tree paint' assigns colors to the branches of a tree
using values associated with node labels. The colors can be taken from a
color bins file, which defines the color of ranges of values.

A color bins file is a tab-delimited file with the following fields:

	- upper  the upper value of the bin
	- lower  the lower value of the bin
	- color  the color of the bin

The color can be an hexadecimal value (e.g., "ff0000" or "#ff0000"), or an
RGB value separated by commas (e.g., "255,0,0").

Bins must be sorted in descending order, and they must not overlap. The
lower value of a bin is inclusive, and the upper value is exclusive, except
for the first (highest) bin, in which the upper value is inclusive. Here is
an example file:

	upper	lower	color
	1	0.75	ff0000
	0.75	0.5	ffa500
	0.5	0	0000ff

If the file name ends with ".toml", the bins are read as TOML tables:

	[[bin]]
	upper = 1.0
	lower = 0.75
	color = "ff0000"

	[[bin]]
	upper = 0.75
	lower = 0.5
	color = "ffa500"
	`,
}

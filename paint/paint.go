// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package paint implements painting of tree branches
// using node values,
// as FigTree color comments.
package paint

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/js-arias/phytools/tree"
)

// ErrNoBin is returned when a value
// can not be assigned a color.
var ErrNoBin = errors.New("value without a color bin")

// Black is the color used for nodes without a value.
var Black = color.RGBA{0, 0, 0, 255}

// A Colorer returns the color of a value.
type Colorer interface {
	Color(v float64) (color.Color, bool)
}

// Paint sets the comment of each node of a tree
// to a FigTree color
// (for example "&!color=#ff0000"),
// using the value associated with the node label.
// Nodes without a value are painted black.
func Paint(root *tree.Node, v Values, c Colorer) error {
	for n := range root.Nodes(tree.PreOrder) {
		x, ok := v[n.Label]
		if n.Label == "" || !ok {
			n.Comment = comment(Black)
			continue
		}
		cl, ok := c.Color(x)
		if !ok {
			return fmt.Errorf("%w: node %q: value %.6f", ErrNoBin, n.Label, x)
		}
		n.Comment = comment(cl)
	}
	return nil
}

func comment(c color.Color) string {
	return "&!color=#" + Hex(c)
}

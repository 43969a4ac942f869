// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bipart implements bipartitions (splits) of the tips of a tree
// induced by its branches,
// and the utilities built on them:
// compatibility tests,
// rooting against a reference tree,
// edge quartets,
// and split support.
package bipart

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/js-arias/phytools/tree"
)

// ErrEmptySide is returned when a bipartition
// would have an empty side.
var ErrEmptySide = errors.New("bipartition with an empty side")

// A Bipartition is a pair of disjoint sets of tip labels.
type Bipartition struct {
	a, b []string
}

// New returns a bipartition from two sets of labels.
func New(a, b []string) Bipartition {
	return Bipartition{
		a: sortSet(a),
		b: sortSet(b),
	}
}

func sortSet(s []string) []string {
	s = slices.Clone(s)
	slices.Sort(s)
	return slices.Compact(s)
}

// Of returns the bipartition induced by the branch above a node.
// One side is the set of tips in the subtree of the node,
// and the other side is the rest of the tips of the tree.
// If the node is the root,
// the bipartition is defined by the tips
// of the first two children of the root.
func Of(n *tree.Node) (Bipartition, error) {
	var bp Bipartition
	if n.IsRoot() {
		if n.NumChildren() < 2 {
			return Bipartition{}, fmt.Errorf("%w: root with %d children", ErrEmptySide, n.NumChildren())
		}
		bp = New(n.Child(0).Labels(), n.Child(1).Labels())
	} else {
		in := n.Labels()
		set := make(map[string]bool, len(in))
		for _, l := range in {
			set[l] = true
		}
		var out []string
		for _, l := range n.Root().Labels() {
			if set[l] {
				continue
			}
			out = append(out, l)
		}
		bp = New(in, out)
	}

	if len(bp.a) == 0 || len(bp.b) == 0 {
		return Bipartition{}, ErrEmptySide
	}
	return bp, nil
}

// Sides returns the two sides of the bipartition.
func (bp Bipartition) Sides() (a, b []string) {
	return slices.Clone(bp.a), slices.Clone(bp.b)
}

// Equal returns true if both bipartitions
// have the same sides,
// in any order.
func (bp Bipartition) Equal(o Bipartition) bool {
	if slices.Equal(bp.a, o.a) && slices.Equal(bp.b, o.b) {
		return true
	}
	return slices.Equal(bp.a, o.b) && slices.Equal(bp.b, o.a)
}

// String returns the bipartition
// in the form "[A, B] | [C, D]".
func (bp Bipartition) String() string {
	return "[" + strings.Join(bp.a, ", ") + "] | [" + strings.Join(bp.b, ", ") + "]"
}

// Compatible returns true if the bipartition x (A|B)
// is compatible with the bipartition y (C|D),
// that is, each side of x intersects a different side of y,
// and it does not intersect the other:
//
//	(A∩C≠∅ ∧ B∩C=∅ ∧ B∩D≠∅ ∧ A∩D=∅) ∨ (A∩D≠∅ ∧ B∩D=∅ ∧ B∩C≠∅ ∧ A∩C=∅)
func Compatible(x, y Bipartition) bool {
	if intersects(x.a, y.a) && !intersects(x.b, y.a) && intersects(x.b, y.b) && !intersects(x.a, y.b) {
		return true
	}
	if intersects(x.a, y.b) && !intersects(x.b, y.b) && intersects(x.b, y.a) && !intersects(x.a, y.a) {
		return true
	}
	return false
}

// intersects returns true
// if two sorted sets share an element.
func intersects(x, y []string) bool {
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		switch {
		case x[i] == y[j]:
			return true
		case x[i] < y[j]:
			i++
		default:
			j++
		}
	}
	return false
}

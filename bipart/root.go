// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bipart

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/js-arias/phytools/tree"
)

// Errors returned when rooting against a master tree.
var (
	ErrFewTips        = errors.New("tree with fewer than three tips")
	ErrMissingLabels  = errors.New("labels missing from master tree")
	ErrMasterPolytomy = errors.New("mrca in master tree must define a bipartition, not a multifurcation")
	ErrNoCompatible   = errors.New("no bipartition in the target tree is compatible with the root bipartition in master")
)

// RootAgainst roots a target tree
// using the relationships of a master tree
// that contains all the tips of the target.
//
// The reference is the bipartition
// below the MRCA in the master tree of all the target tips,
// which must be bifurcating.
// The target is rerooted on the first branch, in preorder,
// whose bipartition is compatible with the reference.
// It returns the new root of the target.
func RootAgainst(target, master *tree.Node) (*tree.Node, error) {
	tl := target.Labels()
	if len(tl) < 3 {
		return nil, fmt.Errorf("target: %w", ErrFewTips)
	}
	ml := master.Labels()
	if len(ml) < 3 {
		return nil, fmt.Errorf("master: %w", ErrFewTips)
	}

	var missing []string
	for _, l := range tl {
		if !slices.Contains(ml, l) {
			missing = append(missing, l)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingLabels, strings.Join(missing, ","))
	}

	m := tree.MRCA(master, tl)
	if m.NumChildren() != 2 {
		return nil, ErrMasterPolytomy
	}
	ref, err := Of(m.Child(0))
	if err != nil {
		return nil, fmt.Errorf("master: %v", err)
	}

	for d := range target.Descendants(tree.PreOrder) {
		bp, err := Of(d)
		if err != nil {
			continue
		}
		if Compatible(bp, ref) {
			return tree.RootOn(d), nil
		}
	}
	return nil, ErrNoCompatible
}

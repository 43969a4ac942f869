// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/js-arias/phytools/tree"
)

// MinLength is the default minimum branch length
// used when adding tips.
const MinLength = 0.01

// ErrNoBranch is returned when there is no branch
// long enough to attach a new tip.
var ErrNoBranch = errors.New("no branch long enough to add a tip")

// AddOptions are the options used to add tips.
type AddOptions struct {
	// MinLength is the minimum length of the branches
	// created by a new attachment point.
	MinLength float64

	// Stem is the maximum length of the stem branch.
	// If it is greater than MinLength,
	// new tips can be attached to the root,
	// creating a new root.
	Stem float64
}

// AddTips adds tips at random positions of an ultrametric tree
// (a chronogram),
// keeping the tree ultrametric.
//
// For each name,
// a branch is selected at random,
// and a new node is inserted at a random position of the branch,
// with the new tip as a child.
// The length of the new tip is the height of the new node.
// It returns the root of the tree,
// that will be a new node if a tip is attached to the stem.
func AddTips(root *tree.Node, names []string, opts AddOptions, rng *rand.Rand) (*tree.Node, error) {
	minLen := opts.MinLength
	if minLen <= 0 {
		minLen = MinLength
	}

	for _, nm := range names {
		var nodes []*tree.Node
		for n := range root.Descendants(tree.PreOrder) {
			if n.Length() > 2*minLen {
				nodes = append(nodes, n)
			}
		}
		stem := opts.Stem > minLen
		if stem {
			nodes = append(nodes, root)
		}
		if len(nodes) == 0 {
			return root, fmt.Errorf("%w: while adding %q", ErrNoBranch, nm)
		}

		n := nodes[rng.IntN(len(nodes))]
		tip := tree.New(nm)
		if n.IsRoot() {
			nr := tree.New("")
			nr.AddChild(n)
			n.SetLength(minLen + rng.Float64()*(opts.Stem-minLen))
			nr.AddChild(tip)
			tip.SetLength(n.Length() + n.Depth())
			root = nr
			continue
		}

		l := n.Length()
		in := n.Graft(tip)
		in.SetLength(minLen + rng.Float64()*(l-2*minLen))
		n.SetLength(l - in.Length())
		tip.SetLength(n.Length() + n.Depth())
	}
	return root, nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bipart

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/js-arias/phytools/tree"
	"golang.org/x/sync/errgroup"
)

// Errors returned by split encoding.
var (
	ErrRepeatedTaxon = errors.New("repeated taxon")
	ErrTaxaMismatch  = errors.New("tree taxa are different from the reference taxa")
	ErrNoTrees       = errors.New("empty tree list")
)

// Taxa is a sorted list of tip labels
// used to encode splits as bit sets.
type Taxa struct {
	names []string
	index map[string]int
}

// NewTaxa returns a taxa index from a list of labels.
func NewTaxa(labels []string) (*Taxa, error) {
	names := slices.Clone(labels)
	slices.Sort(names)
	index := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := index[n]; dup {
			return nil, fmt.Errorf("%w: %q", ErrRepeatedTaxon, n)
		}
		index[n] = i
	}
	return &Taxa{names: names, index: index}, nil
}

// Names returns the taxon names.
func (tx *Taxa) Names() []string {
	return slices.Clone(tx.names)
}

// Len returns the number of taxa.
func (tx *Taxa) Len() int {
	return len(tx.names)
}

// Leafsets returns the set of tips of each node of the tree.
func (tx *Taxa) Leafsets(root *tree.Node) (map[*tree.Node]*bitset.BitSet, error) {
	n := uint(len(tx.names))
	ls := make(map[*tree.Node]*bitset.BitSet)
	tips := 0
	for nd := range root.Nodes(tree.PostOrder) {
		if nd.IsTip() {
			i, ok := tx.index[nd.Label]
			if !ok {
				return nil, fmt.Errorf("%w: unknown taxon %q", ErrTaxaMismatch, nd.Label)
			}
			ls[nd] = bitset.New(n).Set(uint(i))
			tips++
			continue
		}
		children := nd.Children()
		bs := ls[children[0]].Clone()
		for _, c := range children[1:] {
			bs.InPlaceUnion(ls[c])
		}
		ls[nd] = bs
	}
	if tips != len(tx.names) || ls[root].Count() != n {
		return nil, fmt.Errorf("%w: found %d tips, want %d", ErrTaxaMismatch, tips, n)
	}
	return ls, nil
}

// Split returns the split encoding of a set of tips.
// The first taxon is never in the set,
// so both sides of a split have the same encoding.
func (tx *Taxa) Split(bs *bitset.BitSet) *bitset.BitSet {
	if bs.Test(0) {
		return bs.Complement()
	}
	return bs.Clone()
}

// isTrivial returns true if the split
// has a single tip on one side.
func (tx *Taxa) isTrivial(s *bitset.BitSet) bool {
	c := int(s.Count())
	return c <= 1 || c >= len(tx.names)-1
}

// SplitSet returns the non-trivial splits of a tree,
// indexed by its string encoding.
func (tx *Taxa) SplitSet(root *tree.Node) (map[string]bool, error) {
	ls, err := tx.Leafsets(root)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool)
	for nd, bs := range ls {
		if nd.IsTip() || nd.IsRoot() {
			continue
		}
		s := tx.Split(bs)
		if tx.isTrivial(s) {
			continue
		}
		set[s.String()] = true
	}
	return set, nil
}

// EdgeSupport is the support of an edge
// of a reference tree.
type EdgeSupport struct {
	Edge

	// Support is the proportion of trees
	// that have the edge.
	Support float64
}

// Support returns, for each internal branch of a reference tree,
// the proportion of trees that have the same split.
// All trees must have the same taxa as the reference tree.
// Trees are encoded in parallel,
// using up to the indicated number of workers
// (if workers is 0, there is no limit).
func Support(ctx context.Context, ref *tree.Node, trees []*tree.Node, workers int) ([]EdgeSupport, error) {
	if len(trees) == 0 {
		return nil, ErrNoTrees
	}
	tx, err := NewTaxa(ref.Labels())
	if err != nil {
		return nil, fmt.Errorf("reference tree: %w", err)
	}
	rls, err := tx.Leafsets(ref)
	if err != nil {
		return nil, fmt.Errorf("reference tree: %w", err)
	}

	sets := make([]map[string]bool, len(trees))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, t := range trees {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := tx.SplitSet(t)
			if err != nil {
				return fmt.Errorf("tree %d: %w", i+1, err)
			}
			sets[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	edges := Edges(ref)
	sup := make([]EdgeSupport, 0, len(edges))
	for _, e := range edges {
		s := tx.Split(rls[e.Node])
		key := s.String()
		var c int
		for _, set := range sets {
			if set[key] {
				c++
			}
		}
		if tx.isTrivial(s) {
			// present in any tree with the same taxa
			c = len(trees)
		}
		sup = append(sup, EdgeSupport{
			Edge:    e,
			Support: float64(c) / float64(len(trees)),
		})
	}
	return sup, nil
}

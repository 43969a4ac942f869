// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package patristic implements patristic distance matrices,
// i.e., the length of the path between each pair of tips of a tree,
// and the taxon instability index
// calculated over a set of trees.
package patristic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/js-arias/phytools/tree"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Errors returned by distance matrices.
var (
	ErrTaxa     = errors.New("matrices with different taxa")
	ErrRepeated = errors.New("repeated tip label")
	ErrNoTips   = errors.New("tree without tips")
)

// A Matrix is a symmetric matrix of patristic distances.
type Matrix struct {
	labels []string
	index  map[string]int
	d      *mat.SymDense
}

// New returns the patristic distance matrix of a tree.
// If internodes is true,
// each branch is counted as 1,
// otherwise the branch lengths are used.
func New(root *tree.Node, internodes bool) (*Matrix, error) {
	labels := root.Labels()
	slices.Sort(labels)
	if len(labels) == 0 {
		return nil, ErrNoTips
	}
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrRepeated, l)
		}
		index[l] = i
	}

	m := &Matrix{
		labels: labels,
		index:  index,
		d:      mat.NewSymDense(len(labels), nil),
	}
	for n := range root.Nodes(tree.PostOrder) {
		children := n.Children()
		if len(children) < 2 {
			continue
		}
		ds := make([]map[string]float64, len(children))
		for i, c := range children {
			l := c.Length()
			if internodes {
				l = 1
			}
			ds[i] = tree.LeafDistances(c, internodes)
			for t := range ds[i] {
				ds[i][t] += l
			}
		}

		// tips in different children
		// have n as its MRCA
		for i := range ds {
			for j := i + 1; j < len(ds); j++ {
				for a, da := range ds[i] {
					for b, db := range ds[j] {
						m.d.SetSym(index[a], index[b], da+db)
					}
				}
			}
		}
	}
	return m, nil
}

// Labels returns the tip labels of the matrix.
func (m *Matrix) Labels() []string {
	return slices.Clone(m.labels)
}

// Dist returns the distance between two tips.
// It returns NaN if any of the tips is not in the matrix.
func (m *Matrix) Dist(a, b string) float64 {
	i, ok := m.index[a]
	if !ok {
		return math.NaN()
	}
	j, ok := m.index[b]
	if !ok {
		return math.NaN()
	}
	return m.d.At(i, j)
}

// Shuffle returns a new matrix
// in which the tip labels are randomly reassigned.
func (m *Matrix) Shuffle(rng *rand.Rand) *Matrix {
	perm := rng.Perm(len(m.labels))
	n := len(m.labels)
	d := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.SetSym(perm[i], perm[j], m.d.At(i, j))
		}
	}
	return &Matrix{
		labels: m.labels,
		index:  m.index,
		d:      d,
	}
}

func (m *Matrix) sameTaxa(o *Matrix) bool {
	return slices.Equal(m.labels, o.labels)
}

// Instability returns, for each taxon,
// the sum over all other taxa,
// and over all pairs of matrices,
// of the absolute difference in the distance
// between the taxon and the other taxon.
//
// All matrices must have the same taxa.
// Pairs of matrices are compared in parallel,
// using up to the indicated number of workers
// (if workers is 0, there is no limit).
// The result is indexed by taxon label.
func Instability(ctx context.Context, ms []*Matrix, workers int) (map[string]float64, error) {
	if len(ms) == 0 {
		return map[string]float64{}, nil
	}
	for i, m := range ms[1:] {
		if !ms[0].sameTaxa(m) {
			return nil, fmt.Errorf("matrix %d: %w", i+2, ErrTaxa)
		}
	}

	n := len(ms[0].labels)
	partial := make([][]float64, len(ms))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, x := range ms {
		g.Go(func() error {
			sum := make([]float64, n)
			for _, y := range ms[i+1:] {
				if err := ctx.Err(); err != nil {
					return err
				}
				for t1 := 0; t1 < n; t1++ {
					for t2 := t1 + 1; t2 < n; t2++ {
						v := math.Abs(x.d.At(t1, t2) - y.d.At(t1, t2))
						sum[t1] += v
						sum[t2] += v
					}
				}
			}
			partial[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	inst := make(map[string]float64, n)
	for i, l := range ms[0].labels {
		var s float64
		for _, p := range partial {
			s += p[i]
		}
		inst[l] = s
	}
	return inst, nil
}

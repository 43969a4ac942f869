// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sim implements simulation of phylogenetic trees:
// random trees,
// balanced and pectinate trees,
// and random addition of tips to a chronogram.
package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/js-arias/phytools/tree"
)

// ErrFewTips is returned when a tree
// would have fewer than two tips.
var ErrFewTips = errors.New("tree with fewer than two tips")

// Random returns a random bifurcating tree
// with the given tip labels.
// Nodes are shuffled,
// and the last two nodes are joined into a new node,
// until a single node remains.
// If dist is not nil,
// it is used to set the branch lengths.
func Random(labels []string, dist Lengther, rng *rand.Rand) (*tree.Node, error) {
	if len(labels) < 2 {
		return nil, fmt.Errorf("%w: got %d labels", ErrFewTips, len(labels))
	}

	nodes := make([]*tree.Node, 0, len(labels))
	for _, l := range labels {
		t := tree.New(l)
		if dist != nil {
			t.SetLength(dist.Rand())
		}
		nodes = append(nodes, t)
	}

	for len(nodes) > 1 {
		rng.Shuffle(len(nodes), func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})
		n := tree.New("")
		last := len(nodes) - 1
		n.AddChild(nodes[last])
		n.AddChild(nodes[last-1])
		nodes = nodes[:last-1]
		if dist != nil && len(nodes) > 0 {
			n.SetLength(dist.Rand())
		}
		nodes = append(nodes, n)
	}
	return nodes[0], nil
}

// Labels returns the default tip labels
// T1 to Tn.
func Labels(n int) []string {
	ls := make([]string, n)
	for i := range ls {
		ls[i] = "T" + strconv.Itoa(i+1)
	}
	return ls
}

// Balanced returns a balanced tree with n tips
// named T1 to Tn.
// Each node splits its tips in two halves,
// with the smaller half in the first child.
// Branch lengths are taken from dist
// and adjusted so the tree is ultrametric.
func Balanced(n int, dist Lengther) (*tree.Node, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d tips", ErrFewTips, n)
	}
	root := tree.New("")
	next := 1
	var split func(p *tree.Node, tips int)
	split = func(p *tree.Node, tips int) {
		half := [2]int{tips / 2, tips - tips/2}
		for _, h := range half {
			c := tree.New("")
			p.AddChild(c)
			if h < 2 {
				c.Label = "T" + strconv.Itoa(next)
				next++
				continue
			}
			split(c, h)
		}
	}
	split(root, n)
	ultrametric(root, dist)
	return root, nil
}

// Pectinate returns a fully pectinate (caterpillar) tree
// with n tips named T1 to Tn,
// in which T1 is the sister of all other tips.
// Branch lengths are taken from dist
// and adjusted so the tree is ultrametric.
func Pectinate(n int, dist Lengther) (*tree.Node, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d tips", ErrFewTips, n)
	}
	root := tree.New("")
	p := root
	for i := 1; i < n; i++ {
		c := tree.New("")
		p.AddChild(c)
		p.AddChild(tree.New("T" + strconv.Itoa(i)))
		p = c
	}
	p.Label = "T" + strconv.Itoa(n)
	ultrametric(root, dist)
	return root, nil
}

// Ultrametric sets the branch lengths of a bifurcating tree
// from a distribution.
// The shorter child branch of each node is enlarged
// so both sides have the same height.
// The two tips of a cherry receive the same length.
func ultrametric(root *tree.Node, dist Lengther) {
	height := make(map[*tree.Node]float64)
	for n := range root.Nodes(tree.PostOrder) {
		if n.IsTip() {
			var sib *tree.Node
			if p := n.Parent(); p != nil {
				for _, c := range p.Children() {
					if c != n {
						sib = c
					}
				}
			}
			if _, ok := height[sib]; ok && sib.IsTip() {
				n.SetLength(sib.Length())
			} else {
				n.SetLength(dist.Rand())
			}
			height[n] = 0
			continue
		}

		var h float64
		for _, c := range n.Children() {
			h = max(h, height[c]+c.Length())
		}
		for _, c := range n.Children() {
			if d := h - height[c] - c.Length(); d > 0 {
				c.SetLength(c.Length() + d)
			}
		}
		height[n] = h
		if !n.IsRoot() {
			n.SetLength(dist.Rand())
		}
	}
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "math"

// LeafDistances returns the sum of branch lengths
// from the node to each tip of its subtree,
// indexed by the tip label.
// If internodes is true,
// each branch is counted as 1.
func LeafDistances(n *Node, internodes bool) map[string]float64 {
	dist := make(map[string]float64)
	var walk func(nd *Node, d float64)
	walk = func(nd *Node, d float64) {
		if nd.IsTip() {
			dist[nd.Label] = d
			return
		}
		for _, c := range nd.children {
			l := c.length
			if internodes {
				l = 1
			}
			walk(c, d+l)
		}
	}
	walk(n, 0)
	return dist
}

// TotalLength returns the sum of all branch lengths
// of the subtree rooted at n,
// excluding the length of n.
func TotalLength(n *Node) float64 {
	var sum float64
	for nd := range n.Descendants(PreOrder) {
		sum += nd.length
	}
	return sum
}

// IsUltrametric returns true if all the tips of the subtree
// are at the same distance from n,
// up to the given tolerance.
func IsUltrametric(n *Node, tol float64) bool {
	min, max := math.Inf(1), math.Inf(-1)
	for _, d := range LeafDistances(n, false) {
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return max-min <= tol
}

// Strip removes the labels of the internal nodes
// if labels is true,
// and the branch lengths of all nodes
// if lengths is true.
func Strip(n *Node, labels, lengths bool) {
	for nd := range n.Nodes(PreOrder) {
		if labels && !nd.IsTip() {
			nd.Label = ""
		}
		if lengths {
			nd.ClearLength()
		}
	}
}

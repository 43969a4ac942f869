// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"cmp"
	"iter"
	"slices"
)

// Order is a traversal order.
type Order int

// Valid traversal orders.
const (
	// PreOrder visits a node before its children.
	PreOrder Order = iota

	// PostOrder visits the children before the node.
	PostOrder
)

// Nodes returns an iterator over the node
// and all of its descendants
// in the given order.
// Children are visited in their stored order.
func (n *Node) Nodes(order Order) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(order, yield)
	}
}

func (n *Node) walk(order Order, yield func(*Node) bool) bool {
	if order == PreOrder && !yield(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(order, yield) {
			return false
		}
	}
	if order == PostOrder && !yield(n) {
		return false
	}
	return true
}

// Descendants returns an iterator over the descendants of the node,
// excluding the node itself.
func (n *Node) Descendants(order Order) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for nd := range n.Nodes(order) {
			if nd == n {
				continue
			}
			if !yield(nd) {
				return
			}
		}
	}
}

// Leaves returns the tips of the subtree rooted at the node,
// in preorder.
func (n *Node) Leaves() []*Node {
	var lv []*Node
	for nd := range n.Nodes(PreOrder) {
		if nd.IsTip() {
			lv = append(lv, nd)
		}
	}
	return lv
}

// Labels returns the labels of the tips
// of the subtree rooted at the node,
// in preorder.
func (n *Node) Labels() []string {
	lv := n.Leaves()
	ls := make([]string, 0, len(lv))
	for _, l := range lv {
		ls = append(ls, l.Label)
	}
	return ls
}

// Find returns the first node in preorder
// with the given label.
// It returns nil if no node has the label.
func (n *Node) Find(label string) *Node {
	for nd := range n.Nodes(PreOrder) {
		if nd.Label == label {
			return nd
		}
	}
	return nil
}

// PathToRoot returns the ancestors of the node,
// nearest first,
// ending with the root.
func (n *Node) PathToRoot() []*Node {
	var path []*Node
	for p := n.parent; p != nil; p = p.parent {
		path = append(path, p)
	}
	return path
}

// Depth returns the maximum sum of branch lengths
// from the node to any tip in its subtree.
// The depth of a tip is 0.
func (n *Node) Depth() float64 {
	var max float64
	for _, c := range n.children {
		d := c.length + c.Depth()
		if d > max {
			max = d
		}
	}
	return max
}

// Sizes returns the number of tips
// below each node of the subtree rooted at n.
func Sizes(n *Node) map[*Node]int {
	sz := make(map[*Node]int)
	for nd := range n.Nodes(PostOrder) {
		if nd.IsTip() {
			sz[nd] = 1
			continue
		}
		var s int
		for _, c := range nd.children {
			s += sz[c]
		}
		sz[nd] = s
	}
	return sz
}

// OrderBySize sorts the children of the node
// by the number of tips in their subtrees,
// using the label to break ties.
// If recurse is true,
// all the descendants will be sorted.
// If reverse is true,
// larger subtrees will be first.
func (n *Node) OrderBySize(recurse, reverse bool) {
	sz := Sizes(n)
	n.orderBySize(sz, recurse, reverse)
}

func (n *Node) orderBySize(sz map[*Node]int, recurse, reverse bool) {
	slices.SortStableFunc(n.children, func(a, b *Node) int {
		c := cmp.Compare(sz[a], sz[b])
		if c == 0 {
			c = cmp.Compare(a.Label, b.Label)
		}
		if reverse {
			return -c
		}
		return c
	})
	if !recurse {
		return
	}
	for _, c := range n.children {
		c.orderBySize(sz, recurse, reverse)
	}
}

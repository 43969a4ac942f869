// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
)

// MRCA returns the most recent common ancestor
// of the nodes with the given labels
// in the tree rooted at root.
//
// Each label is matched to the first node in preorder
// with that label.
// Labels not found in the tree are ignored,
// and repeated matches are counted once.
// A matched node can be its own ancestor,
// so if a node includes all the other matches
// it is the MRCA.
// If only a single node is matched,
// that node is returned.
// If no label is found,
// it returns nil.
func MRCA(root *Node, labels []string) *Node {
	var nodes []*Node
	for _, l := range labels {
		nd := root.Find(l)
		if nd == nil {
			continue
		}
		if slices.Contains(nodes, nd) {
			continue
		}
		nodes = append(nodes, nd)
	}
	return mrca(nodes)
}

// MRCAStrict is like MRCA,
// but returns an error if a label is not found in the tree.
func MRCAStrict(root *Node, labels []string) (*Node, error) {
	for _, l := range labels {
		if root.Find(l) == nil {
			return nil, fmt.Errorf("%w: %q", ErrLabelNotFound, l)
		}
	}
	return MRCA(root, labels), nil
}

// mrca uses the first node
// and its path to the root as the guide path,
// and then finds the deepest index of the guide path
// shared with each other node.
func mrca(nodes []*Node) *Node {
	if len(nodes) == 0 {
		return nil
	}
	if len(nodes) == 1 {
		return nodes[0]
	}

	guide := append([]*Node{nodes[0]}, nodes[0].PathToRoot()...)

	var idx int
	for _, nd := range nodes[1:] {
		i := firstShared(guide, nd)
		if i > idx {
			idx = i
		}
	}
	return guide[idx]
}

// firstShared returns the index in the guide path
// of the first node found in it
// when walking from nd to the root.
func firstShared(guide []*Node, nd *Node) int {
	for p := nd; p != nil; p = p.parent {
		if i := slices.Index(guide, p); i >= 0 {
			return i
		}
	}
	return len(guide) - 1
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bipart

import (
	"math/rand/v2"

	"github.com/js-arias/phytools/tree"
)

// An Edge is an internal branch of a tree.
type Edge struct {
	// ID is the preorder rank of the edge,
	// starting at 1.
	ID int

	// Node is the node below the edge.
	Node *tree.Node

	Bipartition
}

// Edges returns the internal branches of a tree,
// i.e., the branches above the internal nodes
// that are not the root,
// in preorder.
func Edges(root *tree.Node) []Edge {
	var es []Edge
	for n := range root.Descendants(tree.PreOrder) {
		if n.IsTip() {
			continue
		}
		bp, err := Of(n)
		if err != nil {
			continue
		}
		es = append(es, Edge{
			ID:          len(es) + 1,
			Node:        n,
			Bipartition: bp,
		})
	}
	return es
}

// Quartet subtrees.
const (
	R1 = iota // first child
	R2        // second child
	L1        // sibling
	L2        // rest of the tree
)

// A Quartet is the set of four tip sets
// connected to the ends of an internal branch
// of a bifurcating tree.
type Quartet struct {
	Edge

	// Sets are the tip labels of each subtree.
	Sets [4][]string
}

// Quartets returns the quartets induced
// by each internal branch of a tree.
//
// The two subtrees below the branch are R1 and R2,
// the sibling subtree is L1,
// and the rest of the tree is L2.
// When the sibling is at the other side of a bifurcating root,
// L1 and L2 are the children of the sibling,
// and as the two root branches define the same bipartition
// only the first one is returned.
// Branches in a polytomy are ignored.
func Quartets(root *tree.Node) []Quartet {
	all := root.Labels()
	var qs []Quartet
	rootDone := false
	for _, e := range Edges(root) {
		n := e.Node
		p := n.Parent()
		if n.NumChildren() != 2 {
			continue
		}
		q := Quartet{Edge: e}
		q.Sets[R1] = n.Child(0).Labels()
		q.Sets[R2] = n.Child(1).Labels()

		if p.IsRoot() && p.NumChildren() == 2 {
			if rootDone {
				continue
			}
			sib := p.Child(0)
			if sib == n {
				sib = p.Child(1)
			}
			if sib.NumChildren() != 2 {
				continue
			}
			rootDone = true
			q.Sets[L1] = sib.Child(0).Labels()
			q.Sets[L2] = sib.Child(1).Labels()
			qs = append(qs, q)
			continue
		}

		if !p.IsRoot() && p.NumChildren() != 2 {
			continue
		}
		var sib *tree.Node
		for _, c := range p.Children() {
			if c != n {
				sib = c
				break
			}
		}
		q.Sets[L1] = sib.Labels()

		used := make(map[string]bool)
		for _, s := range q.Sets[:L2] {
			for _, l := range s {
				used[l] = true
			}
		}
		for _, l := range all {
			if !used[l] {
				q.Sets[L2] = append(q.Sets[L2], l)
			}
		}
		qs = append(qs, q)
	}
	return qs
}

// Sample returns a random tip from each subtree
// of the quartet.
func (q Quartet) Sample(rng *rand.Rand) [4]string {
	var s [4]string
	for i, set := range q.Sets {
		s[i] = set[rng.IntN(len(set))]
	}
	return s
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"slices"
)

// Prune removes the node from its tree
// and collapses any ancestor left with a single child,
// adding the branch length of the collapsed node
// to its only child,
// so patristic distances between the remaining tips
// are preserved.
//
// If logw is not nil,
// the label of the removed node is written on it.
//
// It returns the parent of the removed node
// after the collapse,
// or the new root of the tree,
// if the collapse reached the root.
func (n *Node) Prune(logw io.Writer) (*Node, error) {
	if n.parent == nil {
		return nil, ErrPruneRoot
	}
	if logw != nil {
		if _, err := fmt.Fprintf(logw, "removing %s\n", n.Label); err != nil {
			return nil, fmt.Errorf("while writing log: %v", err)
		}
	}
	return n.remove(), nil
}

func (n *Node) remove() *Node {
	p := n.parent
	wasTip := n.IsTip()
	p.detach(n)

	if len(p.children) == 0 {
		if p.parent == nil {
			return p
		}
		// an internal node without children
		// is not a tip
		return p.remove()
	}

	for len(p.children) == 1 {
		sib := p.children[0]
		if wasTip && !sib.IsTip() {
			// move the grandchildren to the parent
			for _, gc := range slices.Clone(sib.children) {
				p.link(gc)
			}
			p.detach(sib)
			if p.parent != nil {
				p.addLength(sib)
			}
			continue
		}

		pp := p.parent
		if pp == nil {
			return collapseRoot(p)
		}
		pp.replace(p, sib)
		sib.addLength(p)
		p = pp
	}
	return p
}

// collapseRoot removes the root knuckles
// until the root has at least two children,
// or it is a tip.
func collapseRoot(r *Node) *Node {
	for len(r.children) == 1 {
		c := r.children[0]
		r.detach(c)
		c.ClearLength()
		r = c
	}
	return r
}

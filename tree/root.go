// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "slices"

// RootOn reroots the tree that contains target
// on the branch above target
// and returns the new root.
//
// A new root node is inserted in the branch,
// splitting its length in half.
// The ancestors of target are reversed
// so each ancestor becomes a child
// of what used to be its own child,
// and the branch lengths are moved along the reversed path.
//
// If target is the root,
// or it is a child of the root,
// the tree is not modified
// and the current root is returned.
func RootOn(target *Node) *Node {
	old := target.parent
	if old == nil {
		return target
	}
	if old.parent == nil {
		return old
	}

	half := target.length / 2
	old.detach(target)
	carried, carriedHas := old.length, old.hasLen

	root := &Node{}
	root.link(target)

	// snapshot before the link is overwritten
	next := old.parent
	next.detach(old)
	root.link(old)
	if target.hasLen {
		target.length = half
		old.SetLength(half)
	} else {
		old.ClearLength()
	}

	prev := old
	var last *Node
	for cur := next; cur != nil; {
		up := cur.parent
		if up != nil {
			up.detach(cur)
		}
		prev.link(cur)

		l, h := cur.length, cur.hasLen
		cur.length, cur.hasLen = carried, carriedHas
		carried, carriedHas = l, h

		last = prev
		prev = cur
		cur = up
	}

	// prev is the old root
	switch len(prev.children) {
	case 0:
		last.detach(prev)
		if len(last.children) == 1 {
			c := last.children[0]
			last.parent.replace(last, c)
			c.addLength(last)
		}
	case 1:
		c := prev.children[0]
		last.replace(prev, c)
		c.addLength(prev)
	}
	return root
}

// Reroot reverses the path between the old root
// and a node of the same tree,
// making that node the new root.
// The length of each reversed branch
// is copied from the child to the parent.
func Reroot(oldRoot, newRoot *Node) (*Node, error) {
	if newRoot.Root() != oldRoot {
		return nil, ErrNotInTree
	}
	if newRoot == oldRoot {
		return oldRoot, nil
	}

	path := append([]*Node{newRoot}, newRoot.PathToRoot()...)
	slices.Reverse(path)
	for i, cp := range path[:len(path)-1] {
		nd := path[i+1]
		cp.detach(nd)
		nd.link(cp)
		cp.length, cp.hasLen = nd.length, nd.hasLen
	}
	newRoot.ClearLength()
	return newRoot, nil
}

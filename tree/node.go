// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements rooted phylogenetic trees
// as a graph of linked nodes,
// and the structural operations on them
// (traversal, MRCA, pruning, rerooting and subtree mapping).
package tree

import (
	"errors"
	"slices"
)

// Errors returned by structural operations.
var (
	ErrChildPresent  = errors.New("node already is a child")
	ErrNotChild      = errors.New("node is not a child")
	ErrPruneRoot     = errors.New("attempt to remove final tip (or all tips) from tree")
	ErrNotInTree     = errors.New("node is not in the tree")
	ErrLabelNotFound = errors.New("label not found in tree")
)

// A Node is a vertex of a rooted tree.
//
// A node owns its children,
// the parent link is only used to walk up the tree.
// A node without parent is the root of its tree.
type Node struct {
	// Label is the node identifier.
	// It is required for tips
	// and optional for internal nodes.
	Label string

	// Comment is the content of a bracketed comment
	// attached to the node.
	Comment string

	length   float64
	hasLen   bool
	parent   *Node
	children []*Node
}

// New returns a new node with the given label.
func New(label string) *Node {
	return &Node{Label: label}
}

// Length returns the length of the branch
// that connects the node with its parent.
func (n *Node) Length() float64 {
	return n.length
}

// HasLength returns true if a branch length is defined.
func (n *Node) HasLength() bool {
	return n.hasLen
}

// SetLength sets the length of the branch
// that connects the node with its parent.
func (n *Node) SetLength(l float64) {
	n.length = l
	n.hasLen = true
}

// ClearLength removes the branch length of the node.
func (n *Node) ClearLength() {
	n.length = 0
	n.hasLen = false
}

// addLength adds the length of the branch of src
// to the branch of the node.
func (n *Node) addLength(src *Node) {
	if !src.hasLen {
		return
	}
	n.length += src.length
	n.hasLen = true
}

// Parent returns the parent of the node,
// or nil if the node is a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children of the node
// in its stored order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// NumChildren returns the number of children of the node.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the i-th child of the node.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// IsTip returns true if the node does not have children.
func (n *Node) IsTip() bool {
	return len(n.children) == 0
}

// IsRoot returns true if the node does not have a parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Root returns the root of the tree that contains the node.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// AddChild adds c as the last child of the node.
// If c is already attached to another node,
// it will be detached from it.
func (n *Node) AddChild(c *Node) error {
	if c.parent == n {
		return ErrChildPresent
	}
	if c.parent != nil {
		c.parent.detach(c)
	}
	n.children = append(n.children, c)
	c.parent = n
	return nil
}

// RemoveChild removes c from the children of the node.
func (n *Node) RemoveChild(c *Node) error {
	if c.parent != n {
		return ErrNotChild
	}
	n.detach(c)
	return nil
}

func (n *Node) detach(c *Node) {
	i := slices.Index(n.children, c)
	if i < 0 {
		return
	}
	n.children = slices.Delete(n.children, i, i+1)
	c.parent = nil
}

// replace sets c in the position of old
// in the children of the node.
func (n *Node) replace(old, c *Node) {
	if c.parent != nil {
		c.parent.detach(c)
	}
	i := slices.Index(n.children, old)
	n.children[i] = c
	c.parent = n
	old.parent = nil
}

// link attaches a child
// that is known to be detached.
func (n *Node) link(c *Node) {
	if err := n.AddChild(c); err != nil {
		panic(err)
	}
}

// Graft inserts a new internal node
// on the branch above the node,
// and attach m as the sibling of the node.
// It returns the new internal node.
// The node must not be a root.
func (n *Node) Graft(m *Node) *Node {
	p := n.parent
	if p == nil {
		panic("tree: graft on a root node")
	}
	in := &Node{}
	p.replace(n, in)
	in.link(n)
	in.link(m)
	return in
}

// Copy returns a deep copy of the subtree rooted at n.
// The copied root does not have a parent.
func Copy(n *Node) *Node {
	c := &Node{
		Label:   n.Label,
		Comment: n.Comment,
		length:  n.length,
		hasLen:  n.hasLen,
	}
	for _, x := range n.children {
		c.link(Copy(x))
	}
	return c
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

// Mapping is an association between the nodes of a tree
// and the nodes of a subtree built from it.
type Mapping struct {
	// OldRoot is the root of the source tree.
	OldRoot *Node

	// NewRoot is the root of the subtree.
	// It is nil if no tip was selected.
	NewRoot *Node

	toNew map[*Node]*Node
	toOld map[*Node]*Node
}

// New returns the node of the subtree
// associated with a node of the source tree.
func (m *Mapping) New(old *Node) *Node {
	return m.toNew[old]
}

// Old returns the node of the source tree
// associated with a node of the subtree.
func (m *Mapping) Old(nw *Node) *Node {
	return m.toOld[nw]
}

// Len returns the number of mapped nodes.
func (m *Mapping) Len() int {
	return len(m.toNew)
}

func (m *Mapping) unmap(nw *Node) {
	delete(m.toNew, m.toOld[nw])
	delete(m.toOld, nw)
}

// SubtreeMapping builds a new tree
// with the tips of the tree rooted at root
// whose labels are in the labels list,
// and all of their ancestors.
// The source tree is not modified.
//
// If clean is true,
// the nodes of the subtree with a single child
// are collapsed,
// adding their branch length to the child.
// If the subtree root has a single child,
// the child becomes the new root.
func SubtreeMapping(root *Node, labels []string, clean bool) *Mapping {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[l] = true
	}

	keep := make(map[*Node]bool)
	for _, l := range root.Leaves() {
		if !set[l.Label] {
			continue
		}
		for nd := l; nd != nil && !keep[nd]; nd = nd.parent {
			keep[nd] = true
		}
	}

	m := &Mapping{
		OldRoot: root,
		toNew:   make(map[*Node]*Node, len(keep)),
		toOld:   make(map[*Node]*Node, len(keep)),
	}
	if !keep[root] {
		return m
	}
	m.NewRoot = m.copyKept(root, keep)

	if clean {
		m.clean()
	}
	return m
}

func (m *Mapping) copyKept(old *Node, keep map[*Node]bool) *Node {
	nw := &Node{
		Label:   old.Label,
		Comment: old.Comment,
		length:  old.length,
		hasLen:  old.hasLen,
	}
	m.toNew[old] = nw
	m.toOld[nw] = old
	for _, c := range old.children {
		if !keep[c] {
			continue
		}
		nw.link(m.copyKept(c, keep))
	}
	return nw
}

func (m *Mapping) clean() {
	for len(m.NewRoot.children) == 1 {
		r := m.NewRoot
		c := r.children[0]
		r.detach(c)
		c.ClearLength()
		m.unmap(r)
		m.NewRoot = c
		m.OldRoot = m.toOld[c]
	}

	var knuckles []*Node
	for nd := range m.NewRoot.Nodes(PostOrder) {
		if nd.parent != nil && len(nd.children) == 1 {
			knuckles = append(knuckles, nd)
		}
	}
	for _, nd := range knuckles {
		c := nd.children[0]
		nd.parent.replace(nd, c)
		c.addLength(nd)
		m.unmap(nd)
	}
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/js-arias/phytools/tree"
)

// Format defines the elements written in a newick tree.
// Tip labels are always written.
type Format struct {
	// NodeLabels is true if internal node labels
	// are written.
	NodeLabels bool

	// BranchLengths is true if branch lengths
	// are written.
	BranchLengths bool

	// Comments is true if node comments
	// are written.
	Comments bool
}

// Default is the default format,
// with node labels and branch lengths.
var Default = Format{
	NodeLabels:    true,
	BranchLengths: true,
}

// String returns a tree in newick format
// using the default format.
func String(n *tree.Node) string {
	return Default.String(n)
}

// String returns the tree rooted at n
// in newick format,
// terminated with a semicolon.
func (f Format) String(n *tree.Node) string {
	var b strings.Builder
	f.write(&b, n)
	b.WriteByte(';')
	return b.String()
}

// Write writes the tree rooted at n
// in a single line.
func (f Format) Write(w io.Writer, n *tree.Node) error {
	if _, err := fmt.Fprintf(w, "%s\n", f.String(n)); err != nil {
		return err
	}
	return nil
}

func (f Format) write(b *strings.Builder, n *tree.Node) {
	if !n.IsTip() {
		b.WriteByte('(')
		for i, c := range n.Children() {
			if i > 0 {
				b.WriteByte(',')
			}
			f.write(b, c)
		}
		b.WriteByte(')')
		if f.NodeLabels {
			b.WriteString(Quote(n.Label))
		}
	} else {
		b.WriteString(Quote(n.Label))
	}

	if f.Comments && n.Comment != "" {
		b.WriteByte('[')
		b.WriteString(n.Comment)
		b.WriteByte(']')
	}
	if f.BranchLengths && n.HasLength() {
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(n.Length(), 'g', -1, 64))
	}
}

// Quote returns a label quoted
// if it contains delimiters.
func Quote(label string) string {
	if label == "" {
		return ""
	}
	quoted := false
	for i := 0; i < len(label); i++ {
		if isDelimiter(label[i]) {
			quoted = true
			break
		}
	}
	if !quoted {
		return label
	}
	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/phytools/tree"
)

// maxLine is the maximum size of a line
// (i.e., a single tree).
const maxLine = 256 * 1024 * 1024

// Reader reads trees from an input stream
// with a tree per line.
// Empty lines are ignored.
type Reader struct {
	sc    *bufio.Scanner
	table map[string]string
	line  int
}

// NewReader returns a reader that reads from r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Reader{sc: sc}
}

// SetTranslation sets a translation table
// for the tip labels.
func (r *Reader) SetTranslation(table map[string]string) {
	r.table = table
}

// Read reads the next tree.
// At the end of the input it returns io.EOF.
func (r *Reader) Read() (*tree.Node, error) {
	for r.sc.Scan() {
		r.line++
		ln := strings.TrimSpace(r.sc.Text())
		if ln == "" {
			continue
		}
		t, err := ParseWith(ln, r.table)
		if err != nil {
			return nil, fmt.Errorf("on line %d: %w", r.line, err)
		}
		return t, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("on line %d: %v", r.line+1, err)
	}
	return nil, io.EOF
}

// ReadAll reads all the trees of r.
func ReadAll(r io.Reader) ([]*tree.Node, error) {
	nr := NewReader(r)
	var ts []*tree.Node
	for {
		t, err := nr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}

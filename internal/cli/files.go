// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/tree"
)

// ReadTranslation reads a translation table file.
// If name is empty,
// it returns a nil table.
func ReadTranslation(name string) (map[string]string, error) {
	if name == "" {
		return nil, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := newick.ReadTranslation(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}

// ReadTrees reads the Newick trees from a file.
// If name is empty or "-",
// the trees are read from r.
func ReadTrees(r io.Reader, name string, table map[string]string) ([]*tree.Node, error) {
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	nr := newick.NewReader(r)
	nr.SetTranslation(table)
	var ts []*tree.Node
	for {
		t, err := nr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("while reading file %q: %v", name, err)
		}
		ts = append(ts, t)
	}
	if len(ts) == 0 {
		return nil, fmt.Errorf("while reading file %q: %w", name, newick.ErrEmpty)
	}
	return ts, nil
}

// ReadAllTrees reads the trees of a list of files.
// If no file is given,
// the trees are read from r.
func ReadAllTrees(r io.Reader, names []string, table map[string]string) ([]*tree.Node, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var ts []*tree.Node
	for _, nm := range names {
		nt, err := ReadTrees(r, nm, table)
		if err != nil {
			return nil, err
		}
		ts = append(ts, nt...)
	}
	return ts, nil
}

// ReadNames reads a list of names from a file,
// one name per line.
// Blank lines,
// and lines starting with '#' are ignored.
func ReadNames(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ls, err := newick.ReadNames(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return ls, nil
}

// Labels returns a list of labels
// from a comma separated list,
// and from a names file.
func Labels(list, file string) ([]string, error) {
	var ls []string
	for _, l := range strings.Split(list, ",") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		ls = append(ls, l)
	}
	if file != "" {
		nl, err := ReadNames(file)
		if err != nil {
			return nil, err
		}
		ls = append(ls, nl...)
	}
	return ls, nil
}

// Output writes the output of a command
// into a file.
// If name is empty,
// it writes into w.
func Output(w io.Writer, name string, fn func(io.Writer) error) (err error) {
	if name == "" {
		return fn(w)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := fn(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}

// WriteTrees writes a list of trees,
// one per line.
func WriteTrees(w io.Writer, f newick.Format, ts []*tree.Node) error {
	for _, t := range ts {
		if err := f.Write(w, t); err != nil {
			return err
		}
	}
	return nil
}

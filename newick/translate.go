// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadTranslation reads a translation table
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - key, the token used for the tip in the tree
//   - label, the label that replaces the token
//
// Here is an example file:
//
//	key	label
//	1	Acer campbellii
//	2	Acer erythranthum
//	3	Acer platanoides
func ReadTranslation(r io.Reader) (map[string]string, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"key", "label"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	table := make(map[string]string)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "key"
		k := strings.TrimSpace(row[fields[f]])
		if k == "" {
			continue
		}
		if _, dup := table[k]; dup {
			return nil, fmt.Errorf("on row %d: field %q: repeated key %q", ln, f, k)
		}

		f = "label"
		lb := strings.TrimSpace(row[fields[f]])
		if lb == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty label", ln, f)
		}
		table[k] = lb
	}
	return table, nil
}

// ReadNames reads a list of names,
// one name per line.
// Surrounding spaces are removed,
// and blank lines,
// or lines starting with '#',
// are ignored.
func ReadNames(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	var names []string
	for s.Scan() {
		ln := strings.TrimSpace(s.Text())
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		names = append(names, ln)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

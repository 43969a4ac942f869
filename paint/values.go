// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package paint

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Values is a set of values
// indexed by node label.
type Values map[string]float64

// ReadValues reads the values of a field
// from a TSV file.
//
// The TSV file must contain the field "label",
// with the node labels,
// and the indicated field with the node values.
// Rows with an empty label or value are ignored.
// Here is an example file:
//
//	label	support	instability
//	Carex	0.85	12.5
//	Cyperus	0.42	31.0
func ReadValues(r io.Reader, field string) (Values, error) {
	field = strings.ToLower(field)

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
	for _, h := range []string{"label", field} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	v := make(Values)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "label"
		lb := strings.TrimSpace(row[fields[f]])
		if lb == "" {
			continue
		}
		if _, dup := v[lb]; dup {
			return nil, fmt.Errorf("on row %d: field %q: repeated label %q", ln, f, lb)
		}

		f = field
		s := strings.TrimSpace(row[fields[f]])
		if s == "" {
			continue
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		v[lb] = x
	}
	return v, nil
}

// TSV writes the values as a TSV file
// using the indicated field name for the values.
func (v Values) TSV(w io.Writer, field string) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write([]string{"label", field}); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	labels := make([]string, 0, len(v))
	for l := range v {
		labels = append(labels, l)
	}
	slices.Sort(labels)
	for _, l := range labels {
		row := []string{
			l,
			strconv.FormatFloat(v[l], 'f', -1, 64),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bipart_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"

	"github.com/js-arias/phytools/bipart"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/tree"
)

func mustParse(t testing.TB, s string) *tree.Node {
	t.Helper()

	n, err := newick.Parse(s)
	if err != nil {
		t.Fatalf("unable to parse %q: %v", s, err)
	}
	return n
}

func TestOf(t *testing.T) {
	r := mustParse(t, "(((A,B)X,C)Y,(D,E)Z)R;")

	tests := map[string]struct {
		node string
		want string
	}{
		"root":     {"R", "[A, B, C] | [D, E]"},
		"internal": {"X", "[A, B] | [C, D, E]"},
		"tip":      {"C", "[C] | [A, B, D, E]"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			bp, err := bipart.Of(r.Find(test.node))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := bp.String(); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}

	single := mustParse(t, "((A,B)X)R;")
	if _, err := bipart.Of(single.Find("X")); !errors.Is(err, bipart.ErrEmptySide) {
		t.Errorf("whole tree: got error %v, want %v", err, bipart.ErrEmptySide)
	}
}

func TestEqual(t *testing.T) {
	a := bipart.New([]string{"B", "A"}, []string{"C", "D"})
	b := bipart.New([]string{"D", "C"}, []string{"A", "B"})
	if !a.Equal(b) {
		t.Errorf("equal: got %v, want %v", false, true)
	}
	c := bipart.New([]string{"A"}, []string{"B", "C", "D"})
	if a.Equal(c) {
		t.Errorf("equal: got %v, want %v", true, false)
	}
	x, y := a.Sides()
	if !reflect.DeepEqual(x, []string{"A", "B"}) || !reflect.DeepEqual(y, []string{"C", "D"}) {
		t.Errorf("sides: got %v | %v", x, y)
	}
}

func TestCompatible(t *testing.T) {
	master := bipart.New([]string{"X", "Y"}, []string{"Z", "W"})

	tests := map[string]struct {
		bp   bipart.Bipartition
		want bool
	}{
		"crossing":       {bipart.New([]string{"X"}, []string{"Y", "Z", "W"}), false},
		"same":           {bipart.New([]string{"X", "Y"}, []string{"Z", "W"}), true},
		"mirrored":       {bipart.New([]string{"Z", "W"}, []string{"X", "Y"}), true},
		"subset":         {bipart.New([]string{"X"}, []string{"W"}), true},
		"disjoint taxa":  {bipart.New([]string{"P"}, []string{"Q"}), false},
		"mixed":          {bipart.New([]string{"X", "Z"}, []string{"Y", "W"}), false},
		"extra taxa":     {bipart.New([]string{"X", "Y", "P"}, []string{"Z", "W", "Q"}), true},
		"one side empty": {bipart.New([]string{"X", "Y"}, []string{"P"}), false},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := bipart.Compatible(test.bp, master); got != test.want {
				t.Errorf("got %v, want %v", got, test.want)
			}
		})
	}
}

func TestRootAgainst(t *testing.T) {
	master := mustParse(t, "((A,B),(C,(D,E)));")

	tests := map[string]struct {
		target string
		want   string
	}{
		"root child": {
			target: "(A:1,B:1,(C:1,(D:1,E:1):1):1);",
			want:   "(A:1,B:1,(C:1,(D:1,E:1):1):1);",
		},
		"wrong root": {
			target: "((D:1,E:1):1,(C:1,(A:1,B:1):2):1);",
			want:   "((A:1,B:1):1,(C:1,(D:1,E:1):2):1);",
		},
		"subset of taxa": {
			target: "((A:1,C:1):1,(D:1,E:1):1);",
			want:   "(A:0.5,(C:1,(D:1,E:1):2):0.5);",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := bipart.RootAgainst(mustParse(t, test.target), master)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := newick.String(r); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}

	errTests := map[string]struct {
		target string
		master string
		err    error
	}{
		"few tips":   {"(A,B);", "((A,B),(C,D));", bipart.ErrFewTips},
		"missing":    {"((A,B),(C,Q));", "((A,B),(C,D));", bipart.ErrMissingLabels},
		"polytomy":   {"((A,B),(C,D));", "(A,B,C,D);", bipart.ErrMasterPolytomy},
		"no support": {"(A,B,C,D);", "((A,B),(C,D));", bipart.ErrNoCompatible},
	}
	for name, test := range errTests {
		t.Run(name, func(t *testing.T) {
			_, err := bipart.RootAgainst(mustParse(t, test.target), mustParse(t, test.master))
			if !errors.Is(err, test.err) {
				t.Errorf("got error %v, want %v", err, test.err)
			}
		})
	}
}

func TestEdges(t *testing.T) {
	r := mustParse(t, "(((A,B)X,C)Y,(D,E)Z)R;")
	es := bipart.Edges(r)

	var got []string
	for i, e := range es {
		if e.ID != i+1 {
			t.Errorf("edge %q: got ID %d, want %d", e.Node.Label, e.ID, i+1)
		}
		got = append(got, e.Node.Label)
	}
	if want := []string{"Y", "X", "Z"}; !reflect.DeepEqual(got, want) {
		t.Errorf("edges: got %v, want %v", got, want)
	}
}

func TestQuartets(t *testing.T) {
	r := mustParse(t, "(((A,B)X,C)Y,(D,E)Z)R;")
	qs := bipart.Quartets(r)

	want := map[string][4][]string{
		"Y": {{"A", "B"}, {"C"}, {"D"}, {"E"}},
		"X": {{"A"}, {"B"}, {"C"}, {"D", "E"}},
	}
	if len(qs) != len(want) {
		t.Fatalf("quartets: got %d, want %d", len(qs), len(want))
	}
	for _, q := range qs {
		w, ok := want[q.Node.Label]
		if !ok {
			t.Errorf("unexpected quartet for node %q", q.Node.Label)
			continue
		}
		for i := range q.Sets {
			got := slices.Clone(q.Sets[i])
			slices.Sort(got)
			if !reflect.DeepEqual(got, w[i]) {
				t.Errorf("node %q: set %d: got %v, want %v", q.Node.Label, i, got, w[i])
			}
		}
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for _, q := range qs {
		s := q.Sample(rng)
		for i, l := range s {
			if !slices.Contains(q.Sets[i], l) {
				t.Errorf("node %q: sample %q not in set %d", q.Node.Label, l, i)
			}
		}
	}

	poly := mustParse(t, "((A,B,C)X,(D,E)Y);")
	for _, q := range bipart.Quartets(poly) {
		if q.Node.Label == "X" {
			t.Errorf("polytomy: unexpected quartet for node %q", q.Node.Label)
		}
	}
}

func TestSupport(t *testing.T) {
	ref := mustParse(t, "(((A,B)X,C)Y,(D,E)Z)R;")
	trees := []*tree.Node{
		mustParse(t, "(((A,B),C),(D,E));"),
		mustParse(t, "((A,B),(C,(D,E)));"),
		mustParse(t, "(((A,C),B),(D,E));"),
		mustParse(t, "(E,(D,(B,(A,C))));"),
	}

	sup, err := bipart.Support(context.Background(), ref, trees, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]float64{
		"Y": 1,
		"X": 0.5,
		"Z": 1,
	}
	for _, s := range sup {
		if w := want[s.Node.Label]; s.Support != w {
			t.Errorf("node %q: got support %.3f, want %.3f", s.Node.Label, s.Support, w)
		}
	}

	same := []*tree.Node{tree.Copy(ref), tree.Copy(ref)}
	sup, err = bipart.Support(context.Background(), ref, same, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range sup {
		if s.Support != 1 {
			t.Errorf("identical trees: node %q: got support %.3f, want %.3f", s.Node.Label, s.Support, 1.0)
		}
	}

	bad := []*tree.Node{mustParse(t, "((A,B),(C,Q));")}
	if _, err := bipart.Support(context.Background(), mustParse(t, "((A,B),(C,D));"), bad, 1); !errors.Is(err, bipart.ErrTaxaMismatch) {
		t.Errorf("taxa mismatch: got error %v, want %v", err, bipart.ErrTaxaMismatch)
	}
	if _, err := bipart.Support(context.Background(), ref, nil, 1); !errors.Is(err, bipart.ErrNoTrees) {
		t.Errorf("no trees: got error %v, want %v", err, bipart.ErrNoTrees)
	}
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick_test

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	gonewick "github.com/evolbioinfo/gotree/io/newick"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/tree"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"labels and lengths": {
			in:   "(a:3,(b:1e-05,c:1.3)int_|_and_33.5:5)root;",
			want: "(a:3,(b:1e-05,c:1.3)int_|_and_33.5:5)root;",
		},
		"spaces": {
			in:   " ( A : 1 , ( B:2 , C:3 ) : 4 ) ; ",
			want: "(A:1,(B:2,C:3):4);",
		},
		"polytomy": {
			in:   "(A,B,C,(D,E,F)G);",
			want: "(A,B,C,(D,E,F)G);",
		},
		"single tip": {
			in:   "A:1;",
			want: "A:1;",
		},
		"no semicolon": {
			in:   "((A,B),C)",
			want: "((A,B),C);",
		},
		"quoted": {
			in:   "('Acer campbellii':1,'O''Brien',B);",
			want: "('Acer campbellii':1,'O''Brien',B);",
		},
		"numeric labels": {
			in:   "((1:0.5,2:0.5)95:1,3:1.5)100;",
			want: "((1:0.5,2:0.5)95:1,3:1.5)100;",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := newick.Parse(test.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := newick.String(r); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}

func TestQuotedLabel(t *testing.T) {
	r, err := newick.Parse("('Acer campbellii':1,'O''Brien');")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := r.Labels()
	want := []string{"Acer campbellii", "O'Brien"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("labels: got %v, want %v", got, want)
	}
}

func TestComments(t *testing.T) {
	r, err := newick.Parse("[&R] ((A[x]:1,B:2)[&support=90]:1,C[a[b]c]);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Comment != "&R" {
		t.Errorf("root comment: got %q, want %q", r.Comment, "&R")
	}
	a := r.Find("A")
	if a.Comment != "x" {
		t.Errorf("tip comment: got %q, want %q", a.Comment, "x")
	}
	if c := a.Parent().Comment; c != "&support=90" {
		t.Errorf("internal comment: got %q, want %q", c, "&support=90")
	}
	if c := r.Find("C").Comment; c != "a[b]c" {
		t.Errorf("nested comment: got %q, want %q", c, "a[b]c")
	}

	f := newick.Format{NodeLabels: true, BranchLengths: true, Comments: true}
	want := "((A[x]:1,B:2)[&support=90]:1,C[a[b]c])[&R];"
	if got := f.String(r); got != want {
		t.Errorf("write comments: got %q, want %q", got, want)
	}
	if got, want := newick.String(r), "((A:1,B:2):1,C);"; got != want {
		t.Errorf("write: got %q, want %q", got, want)
	}
}

func TestFormat(t *testing.T) {
	r, err := newick.Parse("((A:1,B:2)X:3,C:4)R;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		f    newick.Format
		want string
	}{
		"all":        {newick.Format{NodeLabels: true, BranchLengths: true}, "((A:1,B:2)X:3,C:4)R;"},
		"no labels":  {newick.Format{BranchLengths: true}, "((A:1,B:2):3,C:4);"},
		"no lengths": {newick.Format{NodeLabels: true}, "((A,B)X,C)R;"},
		"topology":   {newick.Format{}, "((A,B),C);"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := test.f.String(r); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}

	var b strings.Builder
	if err := newick.Default.Write(&b, r); err != nil {
		t.Fatalf("write: unexpected error: %v", err)
	}
	if got, want := b.String(), "((A:1,B:2)X:3,C:4)R;\n"; got != want {
		t.Errorf("write: got %q, want %q", got, want)
	}
}

func TestTranslation(t *testing.T) {
	table := map[string]string{
		"1": "Acer campbellii",
		"2": "Acer platanoides",
	}
	r, err := newick.ParseWith("((1:1,2:1)1:1,3:2);", table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Acer campbellii", "Acer platanoides", "3"}
	if got := r.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("labels: got %v, want %v", got, want)
	}
	// internal labels are not translated
	if got := r.Find("Acer campbellii").Parent().Label; got != "1" {
		t.Errorf("internal label: got %q, want %q", got, "1")
	}
}

func TestReadTranslation(t *testing.T) {
	in := `# translation table
key	label
1	Acer campbellii
2	Acer platanoides
`
	table, err := newick.ReadTranslation(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{
		"1": "Acer campbellii",
		"2": "Acer platanoides",
	}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("got %v, want %v", table, want)
	}

	if _, err := newick.ReadTranslation(strings.NewReader("key\tname\n1\tA\n")); err == nil {
		t.Errorf("missing field: expecting error")
	}
	if _, err := newick.ReadTranslation(strings.NewReader("key\tlabel\n1\tA\n1\tB\n")); err == nil {
		t.Errorf("repeated key: expecting error")
	}
}

func TestReadNames(t *testing.T) {
	in := "# names to add\nAcer campbellii\n\n  Acer platanoides  \n"
	names, err := newick.ReadNames(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Acer campbellii", "Acer platanoides"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]struct {
		in  string
		err error
	}{
		"open parenthesis":   {"((A,B),C;", newick.ErrUnbalanced},
		"close parenthesis":  {"(A,B));", newick.ErrUnbalanced},
		"top level comma":    {"A,B;", newick.ErrUnbalanced},
		"invalid length":     {"(A:x,B);", newick.ErrBranchLength},
		"missing length":     {"(A:,B);", newick.ErrBranchLength},
		"length at end":      {"(A,B:", newick.ErrBranchLength},
		"open comment":       {"(A[x,B);", newick.ErrComment},
		"open quote":         {"('A,B);", newick.ErrQuote},
		"two labels":         {"(A B,C);", newick.ErrUnexpected},
		"empty subtree":      {"(A,);", newick.ErrUnexpected},
		"empty parenthesis":  {"();", newick.ErrUnexpected},
		"repeated length":    {"(A:1:2,B);", newick.ErrUnexpected},
		"closing bracket":    {"(A],B);", newick.ErrUnexpected},
		"empty":              {"  ", newick.ErrEmpty},
		"subtree after tree": {"(A,B)(C,D);", newick.ErrUnexpected},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := newick.Parse(test.in)
			if !errors.Is(err, test.err) {
				t.Errorf("got error %v, want %v", err, test.err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	trees := []string{
		"(a:3,(b:1e-05,c:1.3)int_|_and_33.5:5)root;",
		"((A:0.1,B:0.2)0.95:0.3,(C:0.4,(D:0.5,E:0.6):0.7):0.8,F:0.9);",
		"(('Homo sapiens':6.4,'Pan troglodytes':6.4):2.2,Gorilla:8.6);",
	}

	for _, s := range trees {
		r1, err := newick.Parse(s)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}
		r2, err := newick.Parse(newick.String(r1))
		if err != nil {
			t.Fatalf("%q: unexpected error on second parse: %v", s, err)
		}

		if got, want := tipLengths(r2), tipLengths(r1); !reflect.DeepEqual(got, want) {
			t.Errorf("%q: tips: got %v, want %v", s, got, want)
		}
		if got, want := clades(r2), clades(r1); !reflect.DeepEqual(got, want) {
			t.Errorf("%q: clades: got %v, want %v", s, got, want)
		}
	}
}

func tipLengths(r *tree.Node) map[string]float64 {
	m := make(map[string]float64)
	for _, l := range r.Leaves() {
		m[l.Label] = l.Length()
	}
	return m
}

func clades(r *tree.Node) []string {
	var cs []string
	for n := range r.Nodes(tree.PreOrder) {
		if n.IsTip() {
			continue
		}
		ls := n.Labels()
		slices.Sort(ls)
		cs = append(cs, strings.Join(ls, ","))
	}
	slices.Sort(cs)
	return cs
}

func TestReader(t *testing.T) {
	in := `((A:1,B:1):1,C:2);

(A,(B,C));
	((A,C),B);
`
	ts, err := newick.ReadAll(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ts) != 3 {
		t.Fatalf("trees: got %d, want %d", len(ts), 3)
	}
	want := []string{"((A:1,B:1):1,C:2);", "(A,(B,C));", "((A,C),B);"}
	for i, r := range ts {
		if got := newick.String(r); got != want[i] {
			t.Errorf("tree %d: got %q, want %q", i, got, want[i])
		}
	}

	r := newick.NewReader(strings.NewReader("(A,B);\n\n(A,(B,C);\n"))
	if _, err := r.Read(); err != nil {
		t.Fatalf("first tree: unexpected error: %v", err)
	}
	_, err = r.Read()
	if !errors.Is(err, newick.ErrUnbalanced) {
		t.Errorf("second tree: got error %v, want %v", err, newick.ErrUnbalanced)
	}
	if err != nil && !strings.Contains(err.Error(), "line 3") {
		t.Errorf("second tree: error %q without line number", err)
	}
}

func TestGotreeCompatibility(t *testing.T) {
	trees := []string{
		"((A:1,B:1):1,(C:1,(D:1,E:1):1):1);",
		"(a:3,(b:0.5,c:1.3)int:5)root;",
		"(A,B,(C,D,E),((F,G),H));",
	}

	for _, s := range trees {
		r, err := newick.Parse(s)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}

		gt, err := gonewick.NewParser(strings.NewReader(newick.String(r))).Parse()
		if err != nil {
			t.Fatalf("%q: gotree: unexpected error: %v", s, err)
		}
		if err := gt.UpdateTipIndex(); err != nil {
			t.Fatalf("%q: gotree: unexpected error: %v", s, err)
		}
		n, err := gt.NbTips()
		if err != nil {
			t.Fatalf("%q: gotree: unexpected error: %v", s, err)
		}
		if lv := len(r.Leaves()); n != lv {
			t.Errorf("%q: tips: got %d, want %d", s, lv, n)
		}

		got := r.Labels()
		slices.Sort(got)
		want := gt.AllTipNames()
		slices.Sort(want)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%q: tip names: got %v, want %v", s, got, want)
		}
	}
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

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

func labels(nodes []*tree.Node) []string {
	ls := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ls = append(ls, n.Label)
	}
	return ls
}

func TestAddChild(t *testing.T) {
	p := tree.New("p")
	a := tree.New("a")
	if !p.IsTip() {
		t.Errorf("node without children: got tip %v, want %v", p.IsTip(), true)
	}

	if err := p.AddChild(a); err != nil {
		t.Fatalf("add child: unexpected error: %v", err)
	}
	if p.IsTip() {
		t.Errorf("node with children: got tip %v, want %v", p.IsTip(), false)
	}
	if a.Parent() != p {
		t.Errorf("parent: got %v, want %v", a.Parent(), p)
	}
	if err := p.AddChild(a); !errors.Is(err, tree.ErrChildPresent) {
		t.Errorf("repeated child: got error %v, want %v", err, tree.ErrChildPresent)
	}

	// moving a child to another parent
	q := tree.New("q")
	if err := q.AddChild(a); err != nil {
		t.Fatalf("add child: unexpected error: %v", err)
	}
	if p.NumChildren() != 0 {
		t.Errorf("old parent: got %d children, want %d", p.NumChildren(), 0)
	}
	if a.Parent() != q {
		t.Errorf("parent: got %v, want %v", a.Parent(), q)
	}

	if err := p.RemoveChild(a); !errors.Is(err, tree.ErrNotChild) {
		t.Errorf("remove non child: got error %v, want %v", err, tree.ErrNotChild)
	}
	if err := q.RemoveChild(a); err != nil {
		t.Fatalf("remove child: unexpected error: %v", err)
	}
	if !a.IsRoot() {
		t.Errorf("removed child: got root %v, want %v", a.IsRoot(), true)
	}
	if !q.IsTip() {
		t.Errorf("node without children: got tip %v, want %v", q.IsTip(), true)
	}
}

func TestLength(t *testing.T) {
	n := tree.New("a")
	if n.HasLength() {
		t.Errorf("new node: got length %v, want %v", n.HasLength(), false)
	}
	n.SetLength(0)
	if !n.HasLength() {
		t.Errorf("zero length: got length %v, want %v", n.HasLength(), true)
	}
	n.ClearLength()
	if n.HasLength() {
		t.Errorf("cleared length: got length %v, want %v", n.HasLength(), false)
	}
}

func TestNodes(t *testing.T) {
	r := mustParse(t, "((A,B)X,(C,D)Y)R;")

	tests := map[string]struct {
		order tree.Order
		want  []string
	}{
		"preorder":  {tree.PreOrder, []string{"R", "X", "A", "B", "Y", "C", "D"}},
		"postorder": {tree.PostOrder, []string{"A", "B", "X", "C", "D", "Y", "R"}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := labels(slices.Collect(r.Nodes(test.order)))
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("got %v, want %v", got, test.want)
			}

			// traversal is restartable
			again := labels(slices.Collect(r.Nodes(test.order)))
			if !reflect.DeepEqual(again, test.want) {
				t.Errorf("second traversal: got %v, want %v", again, test.want)
			}
		})
	}

	if got, want := labels(slices.Collect(r.Descendants(tree.PreOrder))), []string{"X", "A", "B", "Y", "C", "D"}; !reflect.DeepEqual(got, want) {
		t.Errorf("descendants: got %v, want %v", got, want)
	}
	if got, want := labels(r.Leaves()), []string{"A", "B", "C", "D"}; !reflect.DeepEqual(got, want) {
		t.Errorf("leaves: got %v, want %v", got, want)
	}

	var first []string
	for n := range r.Nodes(tree.PreOrder) {
		first = append(first, n.Label)
		if len(first) == 3 {
			break
		}
	}
	if want := []string{"R", "X", "A"}; !reflect.DeepEqual(first, want) {
		t.Errorf("early stop: got %v, want %v", first, want)
	}

	if n := r.Find("Y"); n == nil || n.NumChildren() != 2 {
		t.Errorf("find %q: got %v", "Y", n)
	}
	if n := r.Find("Z"); n != nil {
		t.Errorf("find %q: got %v, want nil", "Z", n)
	}
}

func TestDepth(t *testing.T) {
	r := mustParse(t, "((A:1,B:2):1,C:1);")
	if d := r.Depth(); d != 3 {
		t.Errorf("root depth: got %.3f, want %.3f", d, 3.0)
	}
	if d := r.Find("A").Depth(); d != 0 {
		t.Errorf("tip depth: got %.3f, want %.3f", d, 0.0)
	}
	if d := r.Find("B").Parent().Depth(); d != 2 {
		t.Errorf("internal depth: got %.3f, want %.3f", d, 2.0)
	}
}

func TestPathToRoot(t *testing.T) {
	r := mustParse(t, "(((A,B)X,C)Y,D)R;")
	a := r.Find("A")
	if got, want := labels(a.PathToRoot()), []string{"X", "Y", "R"}; !reflect.DeepEqual(got, want) {
		t.Errorf("path: got %v, want %v", got, want)
	}
	if p := r.PathToRoot(); len(p) != 0 {
		t.Errorf("root path: got %v, want empty", labels(p))
	}
	if a.Root() != r {
		t.Errorf("root: got %v, want %v", a.Root(), r)
	}
}

func TestCopy(t *testing.T) {
	s := "((A:1,B:2)X:3[c],C:4)R;"
	r := mustParse(t, s)
	c := tree.Copy(r.Find("X"))
	if !c.IsRoot() {
		t.Errorf("copy: got root %v, want %v", c.IsRoot(), true)
	}
	f := newick.Format{NodeLabels: true, BranchLengths: true, Comments: true}
	if got, want := f.String(c), "(A:1,B:2)X[c]:3;"; got != want {
		t.Errorf("copy: got %q, want %q", got, want)
	}
	c.Find("A").Label = "Z"
	if r.Find("A") == nil {
		t.Errorf("copy: source tree modified")
	}
}

func TestGraft(t *testing.T) {
	r := mustParse(t, "((A,B),C);")
	in := r.Find("C").Graft(tree.New("D"))
	if in.Parent() != r {
		t.Errorf("graft: new node is not a child of the root")
	}
	if got, want := newick.String(r), "((A,B),(C,D));"; got != want {
		t.Errorf("graft: got %q, want %q", got, want)
	}
}

func TestOrderBySize(t *testing.T) {
	r := mustParse(t, "(((A,B),C),D);")
	r.OrderBySize(true, false)
	if got, want := newick.String(r), "(D,(C,(A,B)));"; got != want {
		t.Errorf("order: got %q, want %q", got, want)
	}
	r.OrderBySize(true, true)
	if got, want := newick.String(r), "(((B,A),C),D);"; got != want {
		t.Errorf("reverse order: got %q, want %q", got, want)
	}

	sz := tree.Sizes(r)
	if sz[r] != 4 {
		t.Errorf("size: got %d, want %d", sz[r], 4)
	}
}

func TestMeasures(t *testing.T) {
	r := mustParse(t, "((A:1,B:1):2,C:3);")

	want := map[string]float64{"A": 3, "B": 3, "C": 3}
	if got := tree.LeafDistances(r, false); !reflect.DeepEqual(got, want) {
		t.Errorf("distances: got %v, want %v", got, want)
	}
	want = map[string]float64{"A": 2, "B": 2, "C": 1}
	if got := tree.LeafDistances(r, true); !reflect.DeepEqual(got, want) {
		t.Errorf("internodes: got %v, want %v", got, want)
	}
	if l := tree.TotalLength(r); l != 7 {
		t.Errorf("total length: got %.3f, want %.3f", l, 7.0)
	}
	if !tree.IsUltrametric(r, 1e-9) {
		t.Errorf("ultrametric: got %v, want %v", false, true)
	}
	r.Find("C").SetLength(2)
	if tree.IsUltrametric(r, 1e-9) {
		t.Errorf("ultrametric: got %v, want %v", true, false)
	}
}

func TestStrip(t *testing.T) {
	r := mustParse(t, "((A:1,B:1)90:2,C:3)100;")
	tree.Strip(r, true, false)
	if got, want := newick.String(r), "((A:1,B:1):2,C:3);"; got != want {
		t.Errorf("strip labels: got %q, want %q", got, want)
	}
	tree.Strip(r, false, true)
	if got, want := newick.String(r), "((A,B),C);"; got != want {
		t.Errorf("strip lengths: got %q, want %q", got, want)
	}
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package cli_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phytools/internal/cli"
	"github.com/js-arias/phytools/newick"
	"github.com/js-arias/phytools/tree"
)

func TestNewLogger(t *testing.T) {
	tests := map[string]struct {
		verbose bool
		want    bool
	}{
		"quiet":   {false, false},
		"verbose": {true, true},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			l := cli.NewLogger(&buf, test.verbose)
			l.Debug("debug message")
			if got := buf.Len() > 0; got != test.want {
				t.Errorf("debug output: got %v, want %v", got, test.want)
			}

			buf.Reset()
			cli.NewProgress(l).Done("finished", "trees", 3)
			out := buf.String()
			for _, s := range []string{"finished", "trees=3", "elapsed="} {
				if !strings.Contains(out, s) {
					t.Errorf("progress: %q not found in %q", s, out)
				}
			}
		})
	}
}

func TestReadTrees(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "one.tre")
	if err := os.WriteFile(f1, []byte("((1,2),3);\n\n(1,(2,3));\n"), 0o644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}
	tf := filepath.Join(dir, "names.tab")
	if err := os.WriteFile(tf, []byte("key\tlabel\n1\tA\n2\tB\n3\tC\n"), 0o644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	table, err := cli.ReadTranslation(tf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stdin := strings.NewReader("(2,(1,3));\n")
	ts, err := cli.ReadAllTrees(stdin, []string{f1, "-"}, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, tr := range ts {
		got = append(got, newick.String(tr))
	}
	want := []string{"((A,B),C);", "(A,(B,C));", "(B,(A,C));"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if table, err := cli.ReadTranslation(""); err != nil || table != nil {
		t.Errorf("empty translation: got %v, %v", table, err)
	}
	if _, err := cli.ReadTrees(strings.NewReader(""), "", nil); err == nil {
		t.Errorf("empty input: expecting error")
	}
	if _, err := cli.ReadTrees(nil, filepath.Join(dir, "none.tre"), nil); err == nil {
		t.Errorf("missing file: expecting error")
	}
}

func TestLabels(t *testing.T) {
	nf := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(nf, []byte("# names\nC\n\nD\n"), 0o644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}
	ls, err := cli.Labels(" A, B ,", nf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(ls, want) {
		t.Errorf("got %v, want %v", ls, want)
	}
}

func TestOutput(t *testing.T) {
	r, err := newick.Parse("((A:1,B:1):1,C:2);")
	if err != nil {
		t.Fatalf("unable to parse tree: %v", err)
	}
	write := func(w io.Writer) error {
		return cli.WriteTrees(w, newick.Default, []*tree.Node{r, r})
	}
	want := "((A:1,B:1):1,C:2);\n((A:1,B:1):1,C:2);\n"

	var buf bytes.Buffer
	if err := cli.Output(&buf, "", write); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("writer: got %q, want %q", got, want)
	}

	name := filepath.Join(t.TempDir(), "out.tre")
	if err := cli.Output(nil, name, write); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("unable to read output: %v", err)
	}
	if got := string(b); got != want {
		t.Errorf("file: got %q, want %q", got, want)
	}
}

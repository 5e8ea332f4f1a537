package mcnp

import (
	"errors"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mcnp-tools/go-mcnp/card"
	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/inp"
)

const deckSrc = `Query deck
1 1 -2.7 -1 imp:n=1
2 0 1 -2 imp:n=1
3 0 2 imp:n=0

1 so 1
2 so 5

m1 13027 1
nps 1000
`

func mustParse(t *testing.T, src string) *inp.Deck {
	t.Helper()
	d, err := ParseDeck([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func keys(cs []card.Card) []string {
	res := []string{}
	for _, c := range cs {
		res = append(res, c.Family().String()+" "+c.Key().String())
	}
	return res
}

func TestQuery(t *testing.T) {
	d := mustParse(t, deckSrc)
	tests := []struct {
		q    string
		want []string
	}{
		{`family == "cell" && material == 1`, []string{"cell cell1"}},
		{`family == "cell" && options["imp:n"] == "0"`, []string{"cell cell3"}},
		{`2 in surfaces`, []string{"cell cell2", "cell cell3"}},
		{`family == "surface" && params[0] > 2`, []string{"surface surface2"}},
		{`mnemonic == "m"`, []string{"data m1"}},
		{`key == "nps"`, []string{"data nps"}},
		{`density < 0`, []string{"cell cell1"}},
		{`false`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			got, err := Query(d, tt.q)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, keys(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestQueryErrors(t *testing.T) {
	d := mustParse(t, deckSrc)
	for _, q := range []string{`material +`, `number`, `nosuch == 1`} {
		if _, err := Query(d, q); !errors.Is(err, ErrQuery) {
			t.Errorf("%s: got %v, want ErrQuery", q, err)
		}
	}
}

func TestPatch(t *testing.T) {
	d := mustParse(t, deckSrc)
	p := `[
		{"op": "replace", "path": "/title", "value": "Patched"},
		{"op": "replace", "path": "/cells/0/material", "value": 2},
		{"op": "add", "path": "/data/-", "value": {"keyword": "mode", "values": "n"}}
	]`
	got, err := Patch(d, []byte(p))
	if err != nil {
		t.Fatal(err)
	}
	want := `Patched
1 2 -2.7 -1 imp:n=1
2 0 1 -2 imp:n=1
3 0 2 imp:n=0

1 so 1
2 so 5

m1 13027 1
nps 1000
mode n
`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if d.Title != "Query deck" {
		t.Errorf("input deck changed: %q", d.Title)
	}
}

func TestPatchErrors(t *testing.T) {
	d := mustParse(t, deckSrc)
	tests := []struct {
		name  string
		patch string
		code  diag.Code
	}{
		{"not json", `{`, ""},
		{"missing path", `[{"op": "remove", "path": "/cells/9"}]`, ""},
		{"duplicate", `[{"op": "add", "path": "/surfaces/-", "value": {"number": 1, "mnemonic": "px", "parameters": [0]}}]`, diag.SemanticsDuplicate},
		{"void with density", `[{"op": "add", "path": "/cells/2/density", "value": 1}]`, diag.SemanticsDensity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Patch(d, []byte(tt.patch))
			if err == nil {
				t.Fatal("no error")
			}
			if tt.code == "" {
				if !errors.Is(err, ErrPatch) {
					t.Errorf("got %v, want ErrPatch", err)
				}
				return
			}
			if c := diag.CodeOf(err); c != tt.code {
				t.Errorf("got %s (%v), want %s", c, err, tt.code)
			}
		})
	}
}

func TestDiff(t *testing.T) {
	a := mustParse(t, deckSrc)
	if got := Diff(a, a); got != "" {
		t.Errorf("self diff %q", got)
	}
	b, err := Patch(a, []byte(`[{"op": "remove", "path": "/cells/1"}]`))
	if err != nil {
		t.Fatal(err)
	}
	want := `  Query deck
  1 1 -2.7 -1 imp:n=1
- 2 0 1 -2 imp:n=1
  3 0 2 imp:n=0
  
  1 so 1
  2 so 5
  
  m1 13027 1
  nps 1000
`
	if diff := cmp.Diff(want, Diff(a, b)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffText(t *testing.T) {
	got := DiffText("a\nb\n", "a\nc")
	want := "  a\n- b\n+ c\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Only the command reads the environment; library packages must not pull
// in the env-reading debug package.
func TestLibraryImports(t *testing.T) {
	banned := []string{"github.com/mcnp-tools/go-mcnp/debug", "github.com/caarlos0/env/v11"}
	fset := token.NewFileSet()
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch path {
			case "cmd", "debug", "_examples":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, imp := range f.Imports {
			p, _ := strconv.Unquote(imp.Path.Value)
			for _, b := range banned {
				if p == b {
					t.Errorf("%s imports %s", path, p)
				}
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

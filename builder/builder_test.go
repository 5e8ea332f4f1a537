package builder

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mcnp-tools/go-mcnp/card"
	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/inp"
)

func TestGeometryOperators(t *testing.T) {
	a, b, c := Surf(-1), Surf(2), Surf(3)
	tests := []struct {
		g    Geometry
		want string
	}{
		{a.Amp(b), "-1:2"},
		{a.Pipe(b), "-1 2"},
		{a.Tilde(), "#-1"},
		{a.Amp(b).Tilde(), "#(-1:2)"},
		{a.Pipe(b).Tilde(), "#(-1 2)"},
		{a.Amp(b).Pipe(c), "(-1:2) 3"},
		{a.Pipe(b.Amp(c)), "-1 (2:3)"},
		{a.Amp(b.Pipe(c)), "-1:2 3"},
		{a.Pipe(b.Tilde()), "-1 #2"},
		{Facet(-4, 2).Pipe(c), "-4.2 3"},
	}
	for _, tst := range tests {
		if got := tst.g.String(); got != tst.want {
			t.Errorf("got %q, want %q", got, tst.want)
		}
		again, err := ParseGeometry(tst.g.String())
		if err != nil {
			t.Errorf("%q: %v", tst.g.String(), err)
			continue
		}
		if again.String() != tst.want {
			t.Errorf("reparse of %q gave %q", tst.want, again.String())
		}
	}
}

func TestGeometryJSON(t *testing.T) {
	c := Cell{Number: 1, Region: Surf(-1).Amp(Surf(2))}
	d, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"number":1,"material":0,"region":"-1:2"}` {
		t.Errorf("got %s", d)
	}
	var back Cell
	if err := json.Unmarshal(d, &back); err != nil {
		t.Fatal(err)
	}
	if back.Region.String() != "-1:2" {
		t.Errorf("got %q", back.Region.String())
	}
	if err := json.Unmarshal([]byte(`{"region":"(1"}`), &back); diag.CodeOf(err) != diag.SyntaxGeometry {
		t.Errorf("bad region: %v", err)
	}
}

func density(f float64) *float64 { return &f }

func TestCellBuild(t *testing.T) {
	b := Cell{Number: 1, Material: 0, Region: Surf(-1)}
	c, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != "1 0 -1" {
		t.Errorf("got %q", c.String())
	}
	b.Density = density(-1)
	if _, err := b.Build(); diag.CodeOf(err) != diag.SemanticsDensity {
		t.Errorf("void with density: %v", err)
	}
	b = Cell{Number: 2, Material: 1, Region: Surf(-1)}
	if _, err := b.Build(); diag.CodeOf(err) != diag.SemanticsDensity {
		t.Errorf("no density: %v", err)
	}
	b.Density = density(-2.7)
	b.Options = []string{"imp:n=1", "bogus=1"}
	if _, err := b.Build(); diag.CodeOf(err) != diag.SyntaxOption {
		t.Errorf("bad option: %v", err)
	}
}

func TestUnbuild(t *testing.T) {
	for _, s := range []string{"1 0 -1", "2 1 -2.7 -1 2 imp:n=1 u=3", "3 0 #(1:-2) #4 imp:n,p=0"} {
		c, err := card.ParseCell(s)
		if err != nil {
			t.Fatal(err)
		}
		b, err := UnbuildCell(c).Build()
		if err != nil {
			t.Fatal(err)
		}
		if b.String() != c.String() {
			t.Errorf("got %q, want %q", b.String(), c.String())
		}
	}
	for _, s := range []string{"1 px 5", "*2 7 so 1.5", "+3 -1 rpp -1 1 -2 2 -3 3"} {
		c, err := card.ParseSurface(s)
		if err != nil {
			t.Fatal(err)
		}
		b, err := UnbuildSurface(c).Build()
		if err != nil {
			t.Fatal(err)
		}
		if b.String() != c.String() {
			t.Errorf("got %q, want %q", b.String(), c.String())
		}
	}
	for _, s := range []string{"mode n p", "m1 1001.80c 2 8016.80c 1", "imp:n 1 2r 0", "sdef", "f4:n 1 2"} {
		c, err := card.ParseData(s)
		if err != nil {
			t.Fatal(err)
		}
		b, err := UnbuildData(c).Build()
		if err != nil {
			t.Fatal(err)
		}
		if b.String() != c.String() {
			t.Errorf("got %q, want %q", b.String(), c.String())
		}
	}
}

const deckText = `Builder test
c first
1 0 -1 imp:n=1 $ inside
2 0 1 imp:n=0

1 so 10

mode n
nps 100

trailing text
`

func TestDeckRoundTrip(t *testing.T) {
	d, err := inp.Parse(deckText)
	if err != nil {
		t.Fatal(err)
	}
	b := UnbuildDeck(d)
	back, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != d.String() {
		t.Errorf("got\n%s\nwant\n%s", back.String(), d.String())
	}
	js, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	var fromJSON Deck
	if err := json.Unmarshal(js, &fromJSON); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(b, &fromJSON, cmp.Comparer(func(a, b Geometry) bool { return a.String() == b.String() })); diff != "" {
		t.Errorf("json (-want +got):\n%s", diff)
	}
}

func TestAppendReplace(t *testing.T) {
	d, err := inp.Parse(deckText)
	if err != nil {
		t.Fatal(err)
	}
	b := UnbuildDeck(d)

	dup, _ := card.ParseSurface("1 px 3")
	if err := b.Append(dup); diag.CodeOf(err) != diag.SemanticsDuplicate {
		t.Fatalf("append duplicate: %v", err)
	}
	if len(b.Surfaces) != 1 || b.Surfaces[0].Mnemonic != "so" {
		t.Fatalf("append changed the deck: %v", b.Surfaces)
	}
	if err := b.Replace(dup); err != nil {
		t.Fatal(err)
	}
	if len(b.Surfaces) != 1 || b.Surfaces[0].Mnemonic != "px" {
		t.Errorf("replace: %v", b.Surfaces)
	}

	nps, _ := card.ParseData("nps 5000")
	if err := b.Append(nps); diag.CodeOf(err) != diag.SemanticsDuplicate {
		t.Errorf("append duplicate data: %v", err)
	}
	if err := b.Replace(nps); err != nil {
		t.Fatal(err)
	}
	ctme, _ := card.ParseData("ctme 10")
	if err := b.Append(ctme); err != nil {
		t.Fatal(err)
	}
	c3, _ := card.ParseCell("3 0 -1 1")
	if err := b.Replace(c3); err != nil {
		t.Fatal(err)
	}
	com, _ := card.ParseComment("c x")
	if err := b.Append(com); diag.CodeOf(err) != diag.SemanticsRange {
		t.Errorf("append comment: %v", err)
	}

	out, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	want := `Builder test
c first
1 0 -1 imp:n=1 $ inside
2 0 1 imp:n=0
3 0 -1 1

1 px 3

mode n
nps 5000
ctme 10

trailing text
`
	if out.String() != want {
		t.Errorf("got\n%s\nwant\n%s", out.String(), want)
	}

	if !b.Remove(card.DataFamily, card.Key{Mnemonic: "ctme", Suffix: card.NoSuffix}) {
		t.Error("ctme not removed")
	}
	if b.Remove(card.DataFamily, card.Key{Mnemonic: "ctme", Suffix: card.NoSuffix}) {
		t.Error("ctme removed twice")
	}
}

func TestBuildDuplicate(t *testing.T) {
	b := &Deck{
		Title:    "t",
		Surfaces: []Surface{{Number: 1, Mnemonic: "px", Parameters: []float64{1}}, {Number: 1, Mnemonic: "py", Parameters: []float64{2}}},
	}
	if _, err := b.Build(); diag.CodeOf(err) != diag.SemanticsDuplicate {
		t.Errorf("got %v", err)
	}
	b.Surfaces = b.Surfaces[:1]
	b.Title = string(make([]byte, 80))
	if _, err := b.Build(); diag.CodeOf(err) != diag.SemanticsLength {
		t.Errorf("got %v", err)
	}
}

func TestBuildComment(t *testing.T) {
	b := &Deck{
		Title:    "t",
		Cells:    []Cell{{Number: 1, Region: Surf(-1)}},
		Surfaces: []Surface{{Number: 1, Mnemonic: "px", Parameters: []float64{1}}},
		Comments: Comments{Surfaces: []Comment{{Index: 0, Text: "two\nlines"}}},
	}
	if _, err := b.Build(); diag.CodeOf(err) != diag.SyntaxCard {
		t.Errorf("got %v", err)
	}
	b.Comments.Surfaces[0].Text = "one line  "
	d, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Surfaces.Comments[0].Text; got != "one line" {
		t.Errorf("got %q", got)
	}
}

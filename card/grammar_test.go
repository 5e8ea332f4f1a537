package card

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/value"
)

func TestEveryKindHasGrammar(t *testing.T) {
	for _, k := range Kinds() {
		g := k.Grammar()
		if g == nil || g.Keyword == "" || g.pattern == nil {
			t.Errorf("kind %d has no grammar", k)
			continue
		}
		if g.Kind != k {
			t.Errorf("row %d holds kind %d", k, g.Kind)
		}
		if k.String() != g.Keyword {
			t.Errorf("kind %d: String %q, keyword %q", k, k.String(), g.Keyword)
		}
	}
}

func TestCandidatesLongestFirst(t *testing.T) {
	for _, f := range []Family{CellFamily, SurfaceFamily, DataFamily} {
		cs := Default.Candidates(f)
		if len(cs) == 0 {
			t.Fatalf("%s: no candidates", f)
		}
		for i := 1; i < len(cs); i++ {
			if len(cs[i].Keyword) > len(cs[i-1].Keyword) {
				t.Errorf("%s: %q sorted after %q", f, cs[i].Keyword, cs[i-1].Keyword)
			}
		}
	}
	pos := map[string]int{}
	for i, g := range Default.Candidates(DataFamily) {
		pos[g.Keyword] = i
	}
	if pos["fmesh"] > pos["fm"] {
		t.Errorf("fmesh at %d, after fm at %d", pos["fmesh"], pos["fm"])
	}
}

func TestLongestKeywordWins(t *testing.T) {
	fm := Grammar{Kind: 0, Family: DataFamily, Keyword: "fm", Suffix: Optional,
		Attrs: []Attr{{Name: "text", Type: value.StringType{Rest: true}}}}
	fmesh := Grammar{Kind: 1, Family: DataFamily, Keyword: "fmesh", Suffix: Optional,
		Attrs: []Attr{{Name: "text", Type: value.StringType{Rest: true}}}}
	for _, order := range [][]Grammar{{fm, fmesh}, {fmesh, fm}} {
		r, err := NewRegistry(order...)
		if err != nil {
			t.Fatal(err)
		}
		o, err := r.ParseOption(DataFamily, "fmesh4 x y")
		if err != nil {
			t.Fatal(err)
		}
		if o.Mnemonic() != "fmesh" {
			t.Errorf("got %q, want fmesh", o.Mnemonic())
		}
		o, err = r.ParseOption(DataFamily, "fm4 1 2")
		if err != nil {
			t.Fatal(err)
		}
		if o.Mnemonic() != "fm" {
			t.Errorf("got %q, want fm", o.Mnemonic())
		}
	}
}

func TestNewRegistryDuplicate(t *testing.T) {
	g := Grammar{Kind: 3, Family: DataFamily, Keyword: "a"}
	if _, err := NewRegistry(g, g); err == nil {
		t.Error("expected duplicate kind error")
	}
}

type optionTest struct {
	family Family
	in     string
	out    string
	kind   Kind
}

func TestParseOption(t *testing.T) {
	tests := []optionTest{
		{CellFamily, "imp:n=1", "imp:n=1", CellImp},
		{CellFamily, "IMP:N,P = 1", "imp:n,p=1", CellImp},
		{CellFamily, "u=-3", "u=-3", CellU},
		{CellFamily, "vol=2.5", "vol=2.5", CellVol},
		{CellFamily, "tmp1=2.53e-8", "tmp1=2.53e-08", CellTmp},
		{CellFamily, "fill=1", "fill=1", CellFill},
		{CellFamily, "trcl=2", "trcl=2", CellTrcl},
		{CellFamily, "lat=1", "lat=1", CellLat},
		{SurfaceFamily, "px 5", "px 5", SurfPx},
		{SurfaceFamily, "so 1", "so 1", SurfSo},
		{SurfaceFamily, "c/z 0 0 2", "c/z 0 0 2", SurfCZ},
		{SurfaceFamily, "cz 2", "cz 2", SurfCz},
		{SurfaceFamily, "rpp -1 1 -1 1 -1 1", "rpp -1 1 -1 1 -1 1", SurfRpp},
		{SurfaceFamily, "rcc 0 0 0 0 0 10 1.5+0", "rcc 0 0 0 0 0 10 1.5", SurfRcc},
		{SurfaceFamily, "p 1 1 0 3", "p 1 1 0 3", SurfP},
		{DataFamily, "mode n p", "mode n p", DataMode},
		{DataFamily, "nps 1e6", "nps 1000000", DataNps},
		{DataFamily, "m1 1001.80c 2 8016.80c 1", "m1 1001.80c 2 8016.80c 1", DataM},
		{DataFamily, "m2 6000 -1 nlib=80c", "m2 6000 -1 nlib=80c", DataM},
		{DataFamily, "f4:n 1 2", "f4:n 1 2", DataF},
		{DataFamily, "*f8:p 3", "*f8:p 3", DataFStar},
		{DataFamily, "fmesh14:n geom=xyz origin=0 0 0", "fmesh14:n geom=xyz origin=0 0 0", DataFmesh},
		{DataFamily, "fm4 1 2", "fm4 1 2", DataFm},
		{DataFamily, "sdef pos = 0 0 0 erg=14", "sdef pos=0 0 0 erg=14", DataSdef},
		{DataFamily, "sdef", "sdef", DataSdef},
		{DataFamily, "tr1 0 0 0", "tr1 0 0 0", DataTr},
		{DataFamily, "*tr2 0 0 1", "*tr2 0 0 1", DataTrStar},
		{DataFamily, "e0 1 2 3", "e0 1 2 3", DataE},
		{DataFamily, "imp:n 1 2r 0", "imp:n 1 2r 0", DataImp},
		{DataFamily, "kcode 1000 1 15 115", "kcode 1000 1 15 115", DataKcode},
		{DataFamily, "si1 l 1001 8016", "si1 l 1001 8016", DataSi},
		{DataFamily, "si2 0 3i 10", "si2 0 3i 10", DataSi},
		{DataFamily, "sp1 -21 1", "sp1 -21 1", DataSp},
		{DataFamily, "de4 log 1 2", "de4 log 1 2", DataDe},
		{DataFamily, "df4 1 2", "df4 1 2", DataDf},
		{DataFamily, "ctme 30", "ctme 30", DataCtme},
		{DataFamily, "print", "print", DataPrint},
		{DataFamily, "phys:p 100 j 1", "phys:p 100 j 1", DataPhys},
		{DataFamily, "rand seed=7", "rand seed=7", DataRand},
		{DataFamily, "totnu no", "totnu no", DataTotnu},
	}
	for _, tst := range tests {
		t.Run(tst.in, func(t *testing.T) {
			o, err := ParseOption(tst.family, tst.in)
			if err != nil {
				t.Fatal(err)
			}
			if o.Kind() != tst.kind {
				t.Errorf("kind %s, want %s", o.Kind(), tst.kind)
			}
			if got := o.String(); got != tst.out {
				t.Errorf("got %q, want %q", got, tst.out)
			}
			again, err := ParseOption(tst.family, o.String())
			if err != nil {
				t.Fatal(err)
			}
			if again.String() != o.String() || again.Key() != o.Key() {
				t.Errorf("reparse gave %q", again.String())
			}
		})
	}
}

type optionErrTest struct {
	family Family
	in     string
	code   diag.Code
	cause  error
}

func TestParseOptionErrors(t *testing.T) {
	tests := []optionErrTest{
		{SurfaceFamily, "zz 1 2 3", diag.SyntaxOption, diag.ErrNoMatch},
		{SurfaceFamily, "so 1 2", diag.SyntaxOption, diag.ErrArity},
		{SurfaceFamily, "s 1 2 3", diag.SyntaxOption, diag.ErrArity},
		{SurfaceFamily, "s 1 2 3 4 5", diag.SyntaxOption, diag.ErrArity},
		{SurfaceFamily, "px", diag.SemanticsMissingField, nil},
		{SurfaceFamily, "so -1", diag.SemanticsRange, diag.ErrRange},
		{SurfaceFamily, "rpp 1 -1 0 1 0 1", diag.SemanticsRange, diag.ErrRange},
		{CellFamily, "foo=1", diag.SyntaxOption, diag.ErrNoMatch},
		{CellFamily, "imp:n=-1", diag.SemanticsRange, diag.ErrRange},
		{CellFamily, "imp=1", diag.SyntaxOption, nil},
		{CellFamily, "lat=3", diag.SemanticsRange, diag.ErrRange},
		{DataFamily, "m1", diag.SemanticsMissingField, nil},
		{DataFamily, "m1 1001.80c", diag.SyntaxOption, diag.ErrArity},
		{DataFamily, "m1 1001 1 8016 -1", diag.SemanticsRange, diag.ErrRange},
		{DataFamily, "f3:n 1", diag.SemanticsRange, diag.ErrRange},
		{DataFamily, "fmesh4:n geom=xyz geom=cyl", diag.SemanticsDuplicate, nil},
		{DataFamily, "tr1000 0 0 0", diag.SemanticsRange, diag.ErrRange},
		{DataFamily, "tr1 0 0", diag.SyntaxOption, diag.ErrArity},
		{DataFamily, "mode n n", diag.SemanticsDuplicate, nil},
		{DataFamily, "mode", diag.SemanticsMissingField, nil},
	}
	for _, tst := range tests {
		t.Run(tst.in, func(t *testing.T) {
			_, err := ParseOption(tst.family, tst.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := diag.CodeOf(err); got != tst.code {
				t.Errorf("code %s, want %s: %v", got, tst.code, err)
			}
			if tst.cause != nil && !errors.Is(err, tst.cause) {
				t.Errorf("%v does not wrap %v", err, tst.cause)
			}
		})
	}
}

func TestNewOption(t *testing.T) {
	o, err := NewOption(SurfPx, NoSuffix, nil, value.Tuple{value.Real(5)})
	if err != nil {
		t.Fatal(err)
	}
	if o.String() != "px 5" {
		t.Errorf("got %q", o.String())
	}
	if _, err := NewOption(SurfPx, 2, nil, value.Tuple{value.Real(5)}); diag.CodeOf(err) != diag.SemanticsRange {
		t.Errorf("suffix on px: %v", err)
	}
	if _, err := NewOption(DataM, NoSuffix, nil, nil, nil); diag.CodeOf(err) != diag.SemanticsMissingField {
		t.Errorf("m without suffix: %v", err)
	}
	if _, err := NewOption(CellImp, NoSuffix, nil, value.Real(1)); diag.CodeOf(err) != diag.SemanticsMissingField {
		t.Errorf("imp without designator: %v", err)
	}
	if _, err := NewOption(SurfPx, NoSuffix, nil, value.Integer(5)); diag.CodeOf(err) != diag.SemanticsRange {
		t.Errorf("wrong value kind: %v", err)
	}
	d, _ := value.ParseDesignator(":n")
	imp, err := NewOption(CellImp, NoSuffix, d, value.Real(1))
	if err != nil {
		t.Fatal(err)
	}
	zero, err := imp.With("importance", value.Real(0))
	if err != nil {
		t.Fatal(err)
	}
	if zero.String() != "imp:n=0" || imp.String() != "imp:n=1" {
		t.Errorf("With: %q, original %q", zero.String(), imp.String())
	}
	if _, err := imp.With("importance", value.Real(-2)); diag.CodeOf(err) != diag.SemanticsRange {
		t.Errorf("With negative importance: %v", err)
	}
}

// Values that do not print as their attribute's syntax are rejected, so a
// built option always reads back.
func TestNewOptionReadsBack(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		vals  []value.Value
		code  diag.Code
		cause error
	}{
		{"px arity", SurfPx, []value.Value{value.Tuple{value.Real(1), value.Real(2)}}, diag.SyntaxValue, diag.ErrArity},
		{"so element kind", SurfSo, []value.Value{value.Tuple{value.String("abc")}}, diag.SyntaxValue, diag.ErrLexeme},
		{"nonu bounds", CellNonu, []value.Value{value.Integer(7)}, diag.SemanticsRange, diag.ErrRange},
		{"px nan", SurfPx, []value.Value{value.Tuple{value.Real(math.NaN())}}, diag.SyntaxValue, diag.ErrLexeme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewOption(tt.kind, NoSuffix, nil, tt.vals...)
			if got := diag.CodeOf(err); got != tt.code {
				t.Fatalf("got %q (%v), want %s", o.String(), err, tt.code)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("%v does not wrap %v", err, tt.cause)
			}
		})
	}
	o, err := NewOption(CellNonu, NoSuffix, nil, value.Integer(2))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.With("setting", value.Integer(3)); diag.CodeOf(err) != diag.SemanticsRange {
		t.Errorf("With out of range: %v", err)
	}
	back, err := ParseOption(CellFamily, o.String())
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != o.String() {
		t.Errorf("got %q, want %q", back.String(), o.String())
	}
}

func TestOptionWrap(t *testing.T) {
	in := "imp:n" + strings.Repeat(" 1", 60)
	d, err := ParseData(in)
	if err != nil {
		t.Fatal(err)
	}
	s := d.String()
	for _, ln := range strings.Split(s, "\n") {
		if len(ln) > 80 {
			t.Errorf("line too long: %q", ln)
		}
	}
	if !strings.Contains(s, " &\n     ") {
		t.Errorf("not wrapped: %q", s)
	}
	again, err := ParseData(s)
	if err != nil {
		t.Fatal(err)
	}
	if again.Line() != d.Line() {
		t.Errorf("got %q, want %q", again.Line(), d.Line())
	}
}

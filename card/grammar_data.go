package card

import "github.com/mcnp-tools/go-mcnp/value"

type dataRow struct {
	kind       Kind
	keyword    string
	suffix     Rule
	designator Rule
	attrs      []Attr
	zero       bool
	check      func(Option) error
}

func data(rows ...dataRow) []Grammar {
	res := make([]Grammar, len(rows))
	for i, r := range rows {
		res[i] = Grammar{
			Kind:        r.kind,
			Family:      DataFamily,
			Keyword:     r.keyword,
			Suffix:      r.suffix,
			Designator:  r.designator,
			Attrs:       r.attrs,
			ZeroDefault: r.zero,
			Check:       r.check,
		}
	}
	return res
}

func req(name string, t value.Type) Attr { return Attr{Name: name, Type: t} }
func opt(name string, t value.Type) Attr { return Attr{Name: name, Type: t, Optional: true} }

func series(min int) value.SeriesType { return value.SeriesType{Min: min} }

var (
	rest    = value.StringType{Rest: true}
	words   = value.TupleType{Elem: value.StringType{}, Min: 1}
	ints    = value.TupleType{Elem: value.Int(), Min: 1}
	anyKeys = value.AssignmentsType{}
)

var materialKeys = value.AssignmentsType{Keys: []string{
	"gas", "estep", "hstep", "nlib", "plib", "pnlib", "elib", "hlib", "alib", "slib", "tlib", "dlib", "cond", "refi", "refc", "refs",
}}

var sdefKeys = value.AssignmentsType{Keys: []string{
	"cel", "sur", "erg", "tme", "dir", "vec", "nrm", "pos", "rad", "ext", "axs", "x", "y", "z",
	"ccc", "ara", "wgt", "eff", "par", "tr", "bem", "bap", "loc",
}}

var dataGrammars = data(
	dataRow{kind: DataMode, keyword: "mode", attrs: []Attr{req("particles", value.ParticlesType{})}},
	dataRow{kind: DataNps, keyword: "nps",
		attrs: []Attr{req("histories", value.IntRange(1, 1<<53)), opt("npp", value.Int()), opt("npsmg", value.Int())}},
	dataRow{kind: DataCtme, keyword: "ctme", attrs: []Attr{req("minutes", value.RealT())}, check: nonNegative("minutes")},
	dataRow{kind: DataPrdmp, keyword: "prdmp", attrs: []Attr{req("entries", series(1))}, check: maxLen("entries", 5)},
	dataRow{kind: DataPrint, keyword: "print", attrs: []Attr{opt("tables", ints)}},
	dataRow{kind: DataTalnp, keyword: "talnp", attrs: []Attr{opt("tallies", ints)}},
	dataRow{kind: DataM, keyword: "m", suffix: Required,
		attrs: []Attr{
			req("components", value.TupleType{Elem: value.RecordOf(value.ZaidType{}, value.RealT()), Min: 1}),
			opt("keywords", materialKeys),
		},
		check: all(suffixIn(0, MaxNumber), fractions)},
	dataRow{kind: DataMt, keyword: "mt", suffix: Required, attrs: []Attr{req("tables", words)}, check: suffixIn(0, MaxNumber)},
	dataRow{kind: DataMx, keyword: "mx", suffix: Required, designator: Required, attrs: []Attr{req("zaids", words)}, check: suffixIn(0, MaxNumber)},
	dataRow{kind: DataTr, keyword: "tr", suffix: Optional,
		attrs: []Attr{req("entries", value.SeriesType{Arity: []int{3, 5, 6, 7, 8, 9, 10, 12, 13}})},
		check: suffixIn(1, MaxTransform)},
	dataRow{kind: DataTrStar, keyword: "*tr", suffix: Optional,
		attrs: []Attr{req("entries", value.SeriesType{Arity: []int{3, 5, 6, 7, 8, 9, 10, 12, 13}})},
		check: suffixIn(1, MaxTransform)},
	dataRow{kind: DataImp, keyword: "imp", designator: Required, attrs: []Attr{req("values", series(1))}, check: nonNegative("values")},
	dataRow{kind: DataVol, keyword: "vol", attrs: []Attr{opt("mode", value.Enum("no")), req("values", series(1))}, check: nonNegative("values")},
	dataRow{kind: DataArea, keyword: "area", attrs: []Attr{req("values", series(1))}, check: nonNegative("values")},
	dataRow{kind: DataPwt, keyword: "pwt", attrs: []Attr{req("values", series(1))}},
	dataRow{kind: DataExt, keyword: "ext", designator: Required, attrs: []Attr{req("values", words)}},
	dataRow{kind: DataFcl, keyword: "fcl", designator: Required, attrs: []Attr{req("values", series(1))}, check: within("values", -1, 1)},
	dataRow{kind: DataElpt, keyword: "elpt", designator: Required, attrs: []Attr{req("values", series(1))}},
	dataRow{kind: DataDxt, keyword: "dxt", designator: Required, attrs: []Attr{req("spheres", series(3))}},
	dataRow{kind: DataF, keyword: "f", suffix: Required, designator: Optional, attrs: []Attr{opt("bins", rest)},
		check: all(suffixIn(1, MaxNumber), tallyNumber)},
	dataRow{kind: DataFStar, keyword: "*f", suffix: Required, designator: Optional, attrs: []Attr{opt("bins", rest)},
		check: all(suffixIn(1, MaxNumber), tallyNumber)},
	dataRow{kind: DataFc, keyword: "fc", suffix: Required, attrs: []Attr{opt("text", rest)}, check: tallyNumber},
	dataRow{kind: DataE, keyword: "e", suffix: Optional, zero: true, attrs: []Attr{req("bounds", series(1))}, check: tallyOrDefault},
	dataRow{kind: DataT, keyword: "t", suffix: Optional, zero: true, attrs: []Attr{req("bounds", series(1))}, check: tallyOrDefault},
	dataRow{kind: DataC, keyword: "c", suffix: Required, attrs: []Attr{req("bounds", series(1))},
		check: all(tallyOrDefault, within("bounds", -1, 1))},
	dataRow{kind: DataFm, keyword: "fm", suffix: Optional, zero: true, attrs: []Attr{req("multipliers", rest)}, check: tallyOrDefault},
	dataRow{kind: DataFs, keyword: "fs", suffix: Required, attrs: []Attr{req("segments", rest)}, check: tallyNumber},
	dataRow{kind: DataSd, keyword: "sd", suffix: Required, attrs: []Attr{req("divisors", series(1))}, check: tallyNumber},
	dataRow{kind: DataFq, keyword: "fq", suffix: Optional, zero: true,
		attrs: []Attr{req("order", value.TupleType{Elem: value.Enum("f", "d", "u", "s", "m", "c", "e", "t"), Min: 2})},
		check: tallyOrDefault},
	dataRow{kind: DataFt, keyword: "ft", suffix: Required, attrs: []Attr{req("treatments", rest)}, check: tallyNumber},
	dataRow{kind: DataFu, keyword: "fu", suffix: Required, attrs: []Attr{opt("bins", series(1))}, check: tallyNumber},
	dataRow{kind: DataTf, keyword: "tf", suffix: Required, attrs: []Attr{req("bins", series(1))}, check: all(tallyNumber, maxLen("bins", 8))},
	dataRow{kind: DataDd, keyword: "dd", suffix: Optional, attrs: []Attr{req("values", series(1))}},
	dataRow{kind: DataEm, keyword: "em", suffix: Optional, zero: true, attrs: []Attr{req("multipliers", series(1))}, check: tallyOrDefault},
	dataRow{kind: DataTm, keyword: "tm", suffix: Optional, zero: true, attrs: []Attr{req("multipliers", series(1))}, check: tallyOrDefault},
	dataRow{kind: DataCm, keyword: "cm", suffix: Optional, zero: true, attrs: []Attr{req("multipliers", series(1))}, check: tallyOrDefault},
	dataRow{kind: DataDe, keyword: "de", suffix: Required,
		attrs: []Attr{opt("method", value.Enum("log", "lin")), req("values", series(1))}, check: suffixIn(0, MaxNumber)},
	dataRow{kind: DataDf, keyword: "df", suffix: Required,
		attrs: []Attr{opt("method", value.Enum("log", "lin")), req("values", series(1))}, check: suffixIn(0, MaxNumber)},
	dataRow{kind: DataFmesh, keyword: "fmesh", suffix: Required, designator: Optional,
		attrs: []Attr{req("keywords", anyKeys)}, check: meshTally},
	dataRow{kind: DataKcode, keyword: "kcode", attrs: []Attr{req("params", series(1))}, check: maxLen("params", 8)},
	dataRow{kind: DataKsrc, keyword: "ksrc", attrs: []Attr{req("points", value.TupleType{Elem: value.RealT(), Min: 3})},
		check: multipleOf("points", 3)},
	dataRow{kind: DataKopts, keyword: "kopts", attrs: []Attr{req("keywords", anyKeys)}},
	dataRow{kind: DataSdef, keyword: "sdef", attrs: []Attr{opt("keywords", sdefKeys)}},
	dataRow{kind: DataSi, keyword: "si", suffix: Required,
		attrs: []Attr{opt("option", value.Enum("h", "l", "a", "s", "f")), req("values", words)}, check: suffixIn(1, 999)},
	dataRow{kind: DataSp, keyword: "sp", suffix: Required,
		attrs: []Attr{opt("option", value.Enum("d", "c", "v", "w")), req("values", series(1))}, check: suffixIn(1, 999)},
	dataRow{kind: DataSb, keyword: "sb", suffix: Required,
		attrs: []Attr{opt("option", value.Enum("d", "c", "v", "w")), req("values", series(1))}, check: suffixIn(1, 999)},
	dataRow{kind: DataPhys, keyword: "phys", designator: Required, attrs: []Attr{opt("values", series(1))}},
	dataRow{kind: DataCut, keyword: "cut", designator: Required, attrs: []Attr{req("values", series(1))}, check: maxLen("values", 7)},
	dataRow{kind: DataRand, keyword: "rand", attrs: []Attr{req("keywords", value.AssignmentsType{Keys: []string{"gen", "seed", "stride", "hist"}})}},
	dataRow{kind: DataDbcn, keyword: "dbcn", attrs: []Attr{opt("values", series(1))}},
	dataRow{kind: DataLost, keyword: "lost", attrs: []Attr{opt("limits", series(1))}, check: maxLen("limits", 2)},
	dataRow{kind: DataVoid, keyword: "void", attrs: []Attr{opt("cells", ints)}},
	dataRow{kind: DataNonu, keyword: "nonu", attrs: []Attr{opt("values", series(1))}},
	dataRow{kind: DataTotnu, keyword: "totnu", attrs: []Attr{opt("setting", value.Enum("no"))}},
	dataRow{kind: DataWwp, keyword: "wwp", designator: Required, attrs: []Attr{opt("values", series(1))}},
	dataRow{kind: DataWwe, keyword: "wwe", designator: Required, attrs: []Attr{req("bounds", series(1))}},
	dataRow{kind: DataPtrac, keyword: "ptrac", attrs: []Attr{opt("keywords", anyKeys)}},
	dataRow{kind: DataTmp, keyword: "tmp", suffix: Required, attrs: []Attr{req("temperatures", series(1))}, check: nonNegative("temperatures")},
	dataRow{kind: DataThtme, keyword: "thtme", attrs: []Attr{req("times", series(1))}, check: nonNegative("times")},
	dataRow{kind: DataAct, keyword: "act", attrs: []Attr{opt("keywords", anyKeys)}},
)

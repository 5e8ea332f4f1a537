package card

import "github.com/mcnp-tools/go-mcnp/value"

func cellOpt(k Kind, kw string, a Attr, check func(Option) error) Grammar {
	return Grammar{Kind: k, Family: CellFamily, Keyword: kw, Attrs: []Attr{a}, Check: check}
}

func particleOpt(g Grammar) Grammar {
	g.Designator = Required
	return g
}

func suffixed(g Grammar, r Rule) Grammar {
	g.Suffix = r
	return g
}

var cellGrammars = []Grammar{
	particleOpt(cellOpt(CellImp, "imp", Attr{Name: "importance", Type: value.RealT()}, nonNegative("importance"))),
	cellOpt(CellVol, "vol", Attr{Name: "volume", Type: value.RealT()}, nonNegative("volume")),
	cellOpt(CellPwt, "pwt", Attr{Name: "weight", Type: value.RealT()}, nil),
	particleOpt(cellOpt(CellExt, "ext", Attr{Name: "stretch", Type: value.StringType{}}, nil)),
	particleOpt(cellOpt(CellFcl, "fcl", Attr{Name: "control", Type: value.RealT()}, within("control", -1, 1))),
	particleOpt(suffixed(cellOpt(CellWwn, "wwn", Attr{Name: "bound", Type: value.RealT()}, nil), Required)),
	particleOpt(suffixed(cellOpt(CellDxc, "dxc", Attr{Name: "probability", Type: value.RealT()}, within("probability", 0, 1)), Optional)),
	cellOpt(CellNonu, "nonu", Attr{Name: "setting", Type: value.IntRange(0, 2)}, nil),
	suffixed(cellOpt(CellPd, "pd", Attr{Name: "probability", Type: value.RealT()}, all(tallyNumber, within("probability", 0, 1))), Required),
	suffixed(cellOpt(CellTmp, "tmp", Attr{Name: "temperature", Type: value.RealT()}, nonNegative("temperature")), Optional),
	cellOpt(CellU, "u", Attr{Name: "universe", Type: value.IntRange(-MaxNumber, MaxNumber)}, nil),
	cellOpt(CellTrcl, "trcl", Attr{Name: "transform", Type: value.TupleOf(value.RealT(), 1, 3, 9, 12, 13)}, transformRef("transform")),
	cellOpt(CellLat, "lat", Attr{Name: "type", Type: value.IntRange(1, 2)}, nil),
	cellOpt(CellFill, "fill", Attr{Name: "universes", Type: value.StringType{Rest: true}}, nil),
	particleOpt(cellOpt(CellElpt, "elpt", Attr{Name: "cutoff", Type: value.RealT()}, nil)),
	cellOpt(CellCosy, "cosy", Attr{Name: "system", Type: value.IntRange(1, MaxTransform)}, nil),
	cellOpt(CellBflcl, "bflcl", Attr{Name: "field", Type: value.IntRange(0, MaxNumber)}, nil),
	particleOpt(cellOpt(CellUnc, "unc", Attr{Name: "setting", Type: value.IntRange(0, 1)}, nil)),
}

// transformRef checks that a single-entry transform is a transformation
// number.
func transformRef(attr string) func(Option) error {
	return func(o Option) error {
		fs := reals(o.Value(attr))
		if len(fs) != 1 {
			return nil
		}
		if n := fs[0]; n != float64(int64(n)) || n < 0 || n > MaxTransform {
			return rangeErr(o, "transformation %g not in [0, %d]", n, MaxTransform)
		}
		return nil
	}
}

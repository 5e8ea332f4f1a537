package card

import "github.com/mcnp-tools/go-mcnp/value"

func surf(k Kind, kw string, counts []int, checks ...func(Option) error) Grammar {
	return Grammar{
		Kind:    k,
		Family:  SurfaceFamily,
		Keyword: kw,
		Attrs:   []Attr{{Name: "parameters", Type: value.TupleOf(value.RealT(), counts...)}},
		Check:   all(checks...),
	}
}

func arity(ns ...int) []int { return ns }

// radius checks the parameter at i (negative counts from the end) is
// positive.
func radius(i int) func(Option) error { return positiveAt("parameters", i) }

var surfaceGrammars = []Grammar{
	surf(SurfP, "p", arity(4, 9)),
	surf(SurfPx, "px", arity(1)),
	surf(SurfPy, "py", arity(1)),
	surf(SurfPz, "pz", arity(1)),
	surf(SurfSo, "so", arity(1), radius(0)),
	surf(SurfS, "s", arity(4), radius(3)),
	surf(SurfSx, "sx", arity(2), radius(1)),
	surf(SurfSy, "sy", arity(2), radius(1)),
	surf(SurfSz, "sz", arity(2), radius(1)),
	surf(SurfCX, "c/x", arity(3), radius(2)),
	surf(SurfCY, "c/y", arity(3), radius(2)),
	surf(SurfCZ, "c/z", arity(3), radius(2)),
	surf(SurfCx, "cx", arity(1), radius(0)),
	surf(SurfCy, "cy", arity(1), radius(0)),
	surf(SurfCz, "cz", arity(1), radius(0)),
	surf(SurfKX, "k/x", arity(4, 5), radius(3)),
	surf(SurfKY, "k/y", arity(4, 5), radius(3)),
	surf(SurfKZ, "k/z", arity(4, 5), radius(3)),
	surf(SurfKx, "kx", arity(2, 3), radius(1)),
	surf(SurfKy, "ky", arity(2, 3), radius(1)),
	surf(SurfKz, "kz", arity(2, 3), radius(1)),
	surf(SurfSq, "sq", arity(10)),
	surf(SurfGq, "gq", arity(10)),
	surf(SurfTx, "tx", arity(6), radius(4), radius(5)),
	surf(SurfTy, "ty", arity(6), radius(4), radius(5)),
	surf(SurfTz, "tz", arity(6), radius(4), radius(5)),
	surf(SurfX, "x", arity(2, 4, 6)),
	surf(SurfY, "y", arity(2, 4, 6)),
	surf(SurfZ, "z", arity(2, 4, 6)),
	surf(SurfBox, "box", arity(9, 12)),
	surf(SurfRpp, "rpp", arity(6), ordered),
	surf(SurfSph, "sph", arity(4), radius(3)),
	surf(SurfRcc, "rcc", arity(7), radius(6)),
	surf(SurfRhp, "rhp", arity(9, 15)),
	surf(SurfHex, "hex", arity(9, 15)),
	surf(SurfRec, "rec", arity(10, 12)),
	surf(SurfTrc, "trc", arity(8), radius(6), nonNegativeAt(7)),
	surf(SurfEll, "ell", arity(7)),
	surf(SurfWed, "wed", arity(12)),
	surf(SurfArb, "arb", arity(30)),
}

// ordered checks min < max for each of the pairs of a box given by bounds.
func ordered(o Option) error {
	fs := reals(o.Value("parameters"))
	for i := 0; i+1 < len(fs); i += 2 {
		if fs[i] >= fs[i+1] {
			return rangeErr(o, "bound %g not below %g", fs[i], fs[i+1])
		}
	}
	return nil
}

func nonNegativeAt(i int) func(Option) error {
	return func(o Option) error {
		fs := reals(o.Value("parameters"))
		if i < len(fs) && fs[i] < 0 {
			return rangeErr(o, "parameter %d must not be negative", i+1)
		}
		return nil
	}
}

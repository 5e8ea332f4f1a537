package card

import (
	"fmt"
	"slices"

	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/value"
)

const (
	MaxNumber    = 99_999_999
	MaxTransform = 999
)

func all(checks ...func(Option) error) func(Option) error {
	return func(o Option) error {
		for _, c := range checks {
			if err := c(o); err != nil {
				return err
			}
		}
		return nil
	}
}

func rangeErr(o Option, format string, args ...any) error {
	return diag.New(diag.SemanticsRange, o.String(), fmt.Errorf("%w: "+format, append([]any{diag.ErrRange}, args...)...))
}

func suffixIn(min, max int) func(Option) error {
	return func(o Option) error {
		n, ok := o.Suffix()
		if ok && (n < min || n > max) {
			return rangeErr(o, "%s suffix %d not in [%d, %d]", o.Mnemonic(), n, min, max)
		}
		return nil
	}
}

// tallyNumber checks the tally type encoded in the last digit of a tally
// number.
func tallyNumber(o Option) error {
	n, ok := o.Suffix()
	if !ok {
		return nil
	}
	if !slices.Contains([]int{1, 2, 4, 5, 6, 7, 8}, n%10) {
		return rangeErr(o, "tally %d is not of type 1, 2, 4, 5, 6, 7 or 8", n)
	}
	return nil
}

func reals(v value.Value) []float64 {
	switch x := v.(type) {
	case value.Real:
		return []float64{float64(x)}
	case value.Integer:
		return []float64{float64(x)}
	case value.Tuple:
		var res []float64
		for _, e := range x {
			res = append(res, reals(e)...)
		}
		return res
	case value.Series:
		var res []float64
		for _, e := range x {
			if e.Shortcut == value.Number {
				res = append(res, e.X)
			}
		}
		return res
	}
	return nil
}

func nonNegative(attr string) func(Option) error {
	return func(o Option) error {
		for _, f := range reals(o.Value(attr)) {
			if f < 0 {
				return rangeErr(o, "%s must not be negative", attr)
			}
		}
		return nil
	}
}

func within(attr string, min, max float64) func(Option) error {
	return func(o Option) error {
		for _, f := range reals(o.Value(attr)) {
			if f < min || f > max {
				return rangeErr(o, "%s %g not in [%g, %g]", attr, f, min, max)
			}
		}
		return nil
	}
}

// positiveAt checks the i-th parameter (negative i counts from the end).
func positiveAt(attr string, i int) func(Option) error {
	return func(o Option) error {
		fs := reals(o.Value(attr))
		j := i
		if j < 0 {
			j += len(fs)
		}
		if j < 0 || j >= len(fs) {
			return nil
		}
		if fs[j] <= 0 {
			return rangeErr(o, "%s %d must be positive", attr, j+1)
		}
		return nil
	}
}

// maxLen checks the number of entries of a list attribute.
func maxLen(attr string, n int) func(Option) error {
	return func(o Option) error {
		var l int
		switch x := o.Value(attr).(type) {
		case value.Tuple:
			l = len(x)
		case value.Series:
			l = len(x)
		}
		if l > n {
			return rangeErr(o, "%s has %d entries, at most %d allowed", attr, l, n)
		}
		return nil
	}
}

func multipleOf(attr string, n int) func(Option) error {
	return func(o Option) error {
		if l := len(reals(o.Value(attr))); l%n != 0 {
			return rangeErr(o, "%s has %d entries, want a multiple of %d", attr, l, n)
		}
		return nil
	}
}

// tallyOrDefault accepts a missing or zero suffix (the default for all
// tallies) and otherwise a tally number.
func tallyOrDefault(o Option) error {
	if n, ok := o.Suffix(); !ok || n == 0 {
		return nil
	}
	return tallyNumber(o)
}

func meshTally(o Option) error {
	if n, ok := o.Suffix(); ok && n%10 != 4 {
		return rangeErr(o, "mesh tally %d is not of type 4", n)
	}
	return nil
}

// fractions checks that material fractions are all atomic (positive) or all
// by weight (negative).
func fractions(o Option) error {
	comps, _ := o.Value("components").(value.Tuple)
	var pos, neg bool
	for _, c := range comps {
		rec, _ := c.(value.Tuple)
		if len(rec) != 2 {
			continue
		}
		f, _ := rec[1].(value.Real)
		switch {
		case f > 0:
			pos = true
		case f < 0:
			neg = true
		default:
			return rangeErr(o, "zero fraction for %s", rec[0])
		}
	}
	if pos && neg {
		return rangeErr(o, "atomic and weight fractions mixed")
	}
	return nil
}

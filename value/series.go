package value

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mcnp-tools/go-mcnp/diag"
)

type Shortcut int

const (
	// Number is a plain entry, not a shortcut.
	Number Shortcut = iota
	// Repeat repeats the previous entry N times (nR).
	Repeat
	// Interp inserts N linear interpolates between its neighbours (nI).
	Interp
	// Mult multiplies the previous entry by X (xM).
	Mult
	// Jump leaves N entries at their defaults (nJ).
	Jump
	// LogInterp inserts N logarithmic interpolates (nILOG).
	LogInterp
)

var shortcutRe = regexp.MustCompile(`^(\d*)(r|i|j|ilog|log)$`)

func isShortcut(s string) bool {
	if shortcutRe.MatchString(s) {
		return true
	}
	if x, ok := strings.CutSuffix(s, "m"); ok && x != "" {
		_, err := ParseReal(x)
		return err == nil
	}
	return false
}

// Entry is one element of a Series.
type Entry struct {
	Shortcut Shortcut
	// N is the count of Repeat, Interp, Jump and LogInterp.
	N int
	// X is the value of a Number and the factor of a Mult.
	X float64
}

func ParseEntry(s string) (Entry, error) {
	if m := shortcutRe.FindStringSubmatch(s); m != nil {
		n := 1
		if m[1] != "" {
			v, err := strconv.Atoi(m[1])
			if err != nil {
				return Entry{}, lexErr(s, "repeat count")
			}
			n = v
		}
		if n < 1 {
			return Entry{}, rangeErr(s, "repeat count %d", n)
		}
		sc := map[string]Shortcut{"r": Repeat, "i": Interp, "j": Jump, "ilog": LogInterp, "log": LogInterp}[m[2]]
		return Entry{Shortcut: sc, N: n}, nil
	}
	if x, ok := strings.CutSuffix(s, "m"); ok && x != "" {
		f, err := ParseReal(x)
		if err != nil {
			return Entry{}, lexErr(s, "multiplier")
		}
		return Entry{Shortcut: Mult, X: f}, nil
	}
	f, err := ParseReal(s)
	if err != nil {
		return Entry{}, err
	}
	return Entry{X: f}, nil
}

func (e Entry) String() string {
	count := func(suffix string) string {
		if e.N <= 1 {
			return suffix
		}
		return strconv.Itoa(e.N) + suffix
	}
	switch e.Shortcut {
	case Repeat:
		return count("r")
	case Interp:
		return count("i")
	case Jump:
		return count("j")
	case LogInterp:
		return count("ilog")
	case Mult:
		return FormatReal(e.X) + "m"
	default:
		return FormatReal(e.X)
	}
}

// Series is a list of reals that may use repeat shortcuts. It keeps the
// entries as written; Expand computes the values they stand for.
type Series []Entry

func (s Series) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Reals returns a Series of plain entries.
func Reals(fs ...float64) Series {
	res := make(Series, len(fs))
	for i, f := range fs {
		res[i] = Entry{X: f}
	}
	return res
}

var (
	ErrNoPrevious = errors.New("shortcut has no previous entry")
	ErrNoNext     = errors.New("interpolation has no following number")
	ErrLogDomain  = errors.New("logarithmic interpolation needs positive bounds")
)

// Expand returns the values the series stands for. Jumped entries are NaN.
func (s Series) Expand() ([]float64, error) {
	var res []float64
	for i, e := range s {
		switch e.Shortcut {
		case Number:
			res = append(res, e.X)
			continue
		case Jump:
			for range e.N {
				res = append(res, math.NaN())
			}
			continue
		}
		if len(res) == 0 || math.IsNaN(res[len(res)-1]) {
			return nil, diag.New(diag.SemanticsRange, e.String(), ErrNoPrevious)
		}
		prev := res[len(res)-1]
		switch e.Shortcut {
		case Repeat:
			for range e.N {
				res = append(res, prev)
			}
		case Mult:
			res = append(res, prev*e.X)
		case Interp, LogInterp:
			if i+1 >= len(s) || s[i+1].Shortcut != Number {
				return nil, diag.New(diag.SemanticsRange, e.String(), ErrNoNext)
			}
			next := s[i+1].X
			if e.Shortcut == LogInterp {
				if prev <= 0 || next <= 0 {
					return nil, diag.New(diag.SemanticsRange, e.String(), ErrLogDomain)
				}
				step := (math.Log(next) - math.Log(prev)) / float64(e.N+1)
				for k := 1; k <= e.N; k++ {
					res = append(res, math.Exp(math.Log(prev)+float64(k)*step))
				}
				continue
			}
			step := (next - prev) / float64(e.N+1)
			for k := 1; k <= e.N; k++ {
				res = append(res, prev+float64(k)*step)
			}
		}
	}
	return res, nil
}

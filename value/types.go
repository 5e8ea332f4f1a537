package value

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/geom"
)

// Type parses values of one kind from the front of a token list.
type Type interface {
	Kind() Kind
	// Consume parses one value from the front of toks and returns it along
	// with the number of tokens it used.
	Consume(toks []string) (Value, int, error)
}

// Parse parses s, which must hold exactly one value of type t.
func Parse(t Type, s string) (Value, error) {
	toks := strings.Fields(s)
	v, n, err := t.Consume(toks)
	if err != nil {
		return nil, err
	}
	if n != len(toks) {
		return nil, arityErr(s, "%d extra tokens", len(toks)-n)
	}
	return v, nil
}

func arityErr(s string, format string, args ...any) error {
	return diag.New(diag.SyntaxValue, s, fmt.Errorf("%w: "+format, append([]any{diag.ErrArity}, args...)...))
}

func isAssign(tok string) bool {
	return strings.Contains(tok, "=")
}

func first(toks []string, what string) (string, error) {
	if len(toks) == 0 {
		return "", arityErr("", "missing %s", what)
	}
	return toks[0], nil
}

// IntegerType parses an Integer, checking [Min, Max] when Bounded.
type IntegerType struct {
	Min, Max int64
	Bounded  bool
}

func Int() IntegerType { return IntegerType{} }

func IntRange(min, max int64) IntegerType {
	return IntegerType{Min: min, Max: max, Bounded: true}
}

func (IntegerType) Kind() Kind { return KindInteger }

func (t IntegerType) Consume(toks []string) (Value, int, error) {
	s, err := first(toks, "integer")
	if err != nil {
		return nil, 0, err
	}
	i, err := ParseInteger(s)
	if err != nil {
		return nil, 0, err
	}
	if t.Bounded && (i < t.Min || i > t.Max) {
		return nil, 0, rangeErr(s, "%d not in [%d, %d]", i, t.Min, t.Max)
	}
	return Integer(i), 1, nil
}

type RealType struct{}

func RealT() RealType { return RealType{} }

func (RealType) Kind() Kind { return KindReal }

func (RealType) Consume(toks []string) (Value, int, error) {
	s, err := first(toks, "real")
	if err != nil {
		return nil, 0, err
	}
	f, err := ParseReal(s)
	if err != nil {
		return nil, 0, err
	}
	return Real(f), 1, nil
}

// StringType parses a String of at most MaxLen bytes (0 means no bound).
// With Rest it takes every remaining token, joined by single blanks.
type StringType struct {
	MaxLen int
	Rest   bool
}

func (StringType) Kind() Kind { return KindString }

func (t StringType) Consume(toks []string) (Value, int, error) {
	s, err := first(toks, "string")
	if err != nil {
		return nil, 0, err
	}
	n := 1
	if t.Rest {
		s, n = strings.Join(toks, " "), len(toks)
	}
	if t.MaxLen > 0 && len(s) > t.MaxLen {
		return nil, 0, diag.Errorf(diag.SemanticsLength, s, "%w: longer than %d", diag.ErrRange, t.MaxLen)
	}
	return String(s), n, nil
}

type DesignatorType struct{}

func (DesignatorType) Kind() Kind { return KindDesignator }

func (DesignatorType) Consume(toks []string) (Value, int, error) {
	s, err := first(toks, "designator")
	if err != nil {
		return nil, 0, err
	}
	d, err := ParseDesignator(s)
	if err != nil {
		return nil, 0, err
	}
	return d, 1, nil
}

// ParticlesType takes particle codes up to the first assignment.
type ParticlesType struct{}

func (ParticlesType) Kind() Kind { return KindParticles }

func (ParticlesType) Consume(toks []string) (Value, int, error) {
	var res Particles
	i := 0
	for ; i < len(toks) && !isAssign(toks[i]); i++ {
		p := Particle(toks[i])
		if !p.Valid() {
			return nil, 0, diag.Errorf(diag.SyntaxValue, toks[i], "%w: unknown particle", diag.ErrLexeme)
		}
		if slices.Contains(res, p) {
			return nil, 0, diag.Errorf(diag.SemanticsDuplicate, toks[i], "particle listed twice")
		}
		res = append(res, p)
	}
	if len(res) == 0 {
		return nil, 0, arityErr("", "missing particles")
	}
	return res, i, nil
}

var zaidRe = regexp.MustCompile(`^(\d{1,6})(?:\.(\d{2,3}[a-z]))?$`)

const MaxZ = 118

func ParseZaid(s string) (Zaid, error) {
	m := zaidRe.FindStringSubmatch(s)
	if m == nil {
		return Zaid{}, lexErr(s, "zaid")
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Zaid{}, lexErr(s, "zaid")
	}
	z := Zaid{Z: n / 1000, A: n % 1000, Library: m[2]}
	if z.Z < 1 || z.Z > MaxZ {
		return Zaid{}, rangeErr(s, "atomic number %d", z.Z)
	}
	return z, nil
}

type ZaidType struct{}

func (ZaidType) Kind() Kind { return KindZaid }

func (ZaidType) Consume(toks []string) (Value, int, error) {
	s, err := first(toks, "zaid")
	if err != nil {
		return nil, 0, err
	}
	z, err := ParseZaid(s)
	if err != nil {
		return nil, 0, err
	}
	return z, 1, nil
}

// GeometryType takes every remaining token as one region.
type GeometryType struct{}

func (GeometryType) Kind() Kind { return KindGeometry }

func (GeometryType) Consume(toks []string) (Value, int, error) {
	if len(toks) == 0 {
		return nil, 0, arityErr("", "missing region")
	}
	e, err := geom.Parse(strings.Join(toks, " "))
	if err != nil {
		return nil, 0, err
	}
	return Geometry{Expr: e}, len(toks), nil
}

// TupleType parses elements of one type up to the first assignment. When
// Arity is set the element count must be one of its entries; otherwise it
// must be at least Min.
type TupleType struct {
	Elem  Type
	Arity []int
	Min   int
}

func TupleOf(elem Type, arity ...int) TupleType {
	return TupleType{Elem: elem, Arity: arity}
}

func (TupleType) Kind() Kind { return KindTuple }

func (t TupleType) Consume(toks []string) (Value, int, error) {
	var res Tuple
	i := 0
	for i < len(toks) && !isAssign(toks[i]) {
		v, n, err := t.Elem.Consume(toks[i:])
		if err != nil {
			return nil, 0, err
		}
		res = append(res, v)
		i += n
	}
	if err := t.checkArity(len(res), toks[:i]); err != nil {
		return nil, 0, err
	}
	return res, i, nil
}

func (t TupleType) checkArity(n int, toks []string) error {
	s := strings.Join(toks, " ")
	if len(t.Arity) > 0 && !slices.Contains(t.Arity, n) {
		return arityErr(s, "got %d values, want %s", n, arityString(t.Arity))
	}
	if n < t.Min {
		return arityErr(s, "got %d values, want at least %d", n, t.Min)
	}
	return nil
}

func arityString(a []int) string {
	parts := make([]string, len(a))
	for i, n := range a {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " or ")
}

// RecordType is a fixed sequence of fields parsed as one Tuple, used as the
// element of a TupleType (a material's "zaid fraction" pairs).
type RecordType struct {
	Fields []Type
}

func RecordOf(fields ...Type) RecordType {
	return RecordType{Fields: fields}
}

func (RecordType) Kind() Kind { return KindTuple }

func (t RecordType) Consume(toks []string) (Value, int, error) {
	res := make(Tuple, 0, len(t.Fields))
	i := 0
	for _, f := range t.Fields {
		if i >= len(toks) || isAssign(toks[i]) {
			return nil, 0, arityErr(strings.Join(toks[:i], " "), "incomplete record of %d fields", len(t.Fields))
		}
		v, n, err := f.Consume(toks[i:])
		if err != nil {
			return nil, 0, err
		}
		res = append(res, v)
		i += n
	}
	return res, i, nil
}

// SeriesType parses a Series up to the first assignment.
type SeriesType struct {
	Arity []int
	Min   int
}

func (SeriesType) Kind() Kind { return KindSeries }

func (t SeriesType) Consume(toks []string) (Value, int, error) {
	var res Series
	i := 0
	for ; i < len(toks) && !isAssign(toks[i]); i++ {
		e, err := ParseEntry(toks[i])
		if err != nil {
			return nil, 0, err
		}
		res = append(res, e)
	}
	if err := (TupleType{Arity: t.Arity, Min: t.Min}).checkArity(len(res), toks[:i]); err != nil {
		return nil, 0, err
	}
	return res, i, nil
}

// AssignmentsType parses key=value pairs. A value runs until the next token
// holding an '=', so "pos=0 0 1" is one assignment. When Keys is set only
// those keys are accepted.
type AssignmentsType struct {
	Keys []string
}

func (AssignmentsType) Kind() Kind { return KindAssignments }

func (t AssignmentsType) Consume(toks []string) (Value, int, error) {
	var res Assignments
	i := 0
	for i < len(toks) {
		k, v, ok := strings.Cut(toks[i], "=")
		if !ok || k == "" {
			return nil, 0, diag.Errorf(diag.SyntaxValue, toks[i], "%w: expected key=value", diag.ErrLexeme)
		}
		if len(t.Keys) > 0 && !slices.Contains(t.Keys, k) {
			return nil, 0, diag.Errorf(diag.SyntaxValue, toks[i], "%w: unknown keyword %q", diag.ErrLexeme, k)
		}
		if _, dup := res.Get(k); dup {
			return nil, 0, diag.Errorf(diag.SemanticsDuplicate, toks[i], "keyword %q given twice", k)
		}
		i++
		vals := []string{}
		if v != "" {
			vals = append(vals, v)
		}
		for i < len(toks) && !isAssign(toks[i]) {
			vals = append(vals, toks[i])
			i++
		}
		if len(vals) == 0 {
			return nil, 0, diag.Errorf(diag.SemanticsMissingField, k, "keyword %q has no value", k)
		}
		res = append(res, Assignment{Key: k, Value: strings.Join(vals, " ")})
	}
	if len(res) == 0 {
		return nil, 0, arityErr("", "missing assignments")
	}
	return res, i, nil
}

// EnumType accepts one token from a fixed set of words.
type EnumType struct {
	Values []string
}

func Enum(vs ...string) EnumType {
	return EnumType{Values: vs}
}

func (EnumType) Kind() Kind { return KindString }

func (t EnumType) Consume(toks []string) (Value, int, error) {
	s, err := first(toks, "keyword")
	if err != nil {
		return nil, 0, err
	}
	if !slices.Contains(t.Values, s) {
		return nil, 0, diag.Errorf(diag.SyntaxValue, s, "%w: want one of %s", diag.ErrLexeme, strings.Join(t.Values, ", "))
	}
	return String(s), 1, nil
}

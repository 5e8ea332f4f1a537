package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcnp-tools/go-mcnp/geom"
)

type Kind int

const (
	KindInteger Kind = iota
	KindReal
	KindString
	KindDesignator
	KindZaid
	KindGeometry
	KindTuple
	KindSeries
	KindParticles
	KindAssignments
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindDesignator:
		return "designator"
	case KindZaid:
		return "zaid"
	case KindGeometry:
		return "geometry"
	case KindTuple:
		return "tuple"
	case KindSeries:
		return "series"
	case KindParticles:
		return "particles"
	case KindAssignments:
		return "assignments"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

type Value interface {
	Kind() Kind
	String() string
	value()
}

type Integer int64

type Real float64

type String string

// Zaid identifies a nuclide (or element when A is 0) and an optional
// cross-section library suffix such as "80c".
type Zaid struct {
	Z, A    int
	Library string
}

type Geometry struct {
	Expr geom.Expr
}

type Tuple []Value

type Assignment struct {
	Key, Value string
}

type Assignments []Assignment

func (Integer) value()     {}
func (Real) value()        {}
func (String) value()      {}
func (Designator) value()  {}
func (Zaid) value()        {}
func (Geometry) value()    {}
func (Tuple) value()       {}
func (Series) value()      {}
func (Particles) value()   {}
func (Assignments) value() {}

func (Integer) Kind() Kind     { return KindInteger }
func (Real) Kind() Kind        { return KindReal }
func (String) Kind() Kind      { return KindString }
func (Designator) Kind() Kind  { return KindDesignator }
func (Zaid) Kind() Kind        { return KindZaid }
func (Geometry) Kind() Kind    { return KindGeometry }
func (Tuple) Kind() Kind       { return KindTuple }
func (Series) Kind() Kind      { return KindSeries }
func (Particles) Kind() Kind   { return KindParticles }
func (Assignments) Kind() Kind { return KindAssignments }

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }
func (r Real) String() string    { return FormatReal(float64(r)) }
func (s String) String() string  { return string(s) }
func (g Geometry) String() string {
	return geom.Format(g.Expr)
}

func (z Zaid) String() string {
	s := strconv.Itoa(z.Z*1000 + z.A)
	if z.Library != "" {
		s += "." + z.Library
	}
	return s
}

func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

func (a Assignments) String() string {
	parts := make([]string, len(a))
	for i, kv := range a {
		parts[i] = kv.Key + "=" + kv.Value
	}
	return strings.Join(parts, " ")
}

// Get returns the value assigned to key.
func (a Assignments) Get(key string) (string, bool) {
	for _, kv := range a {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// FormatReal prints f in the shortest form that parses back to f.
func FormatReal(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

package value

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mcnp-tools/go-mcnp/diag"
)

type Particle string

// Alphabet lists the particle codes in table order.
var Alphabet = []Particle{
	"n", "p", "e", "|", "q", "u", "v", "f", "h", "l", "+", "-", "x", "y", "o",
	"!", "<", ">", "g", "/", "z", "k", "%", "^", "b", "_", "~", "c", "w", "@",
	"d", "t", "s", "a", "*", "?", "#",
}

var particleIndex = func() map[Particle]int {
	m := make(map[Particle]int, len(Alphabet))
	for i, p := range Alphabet {
		m[p] = i
	}
	return m
}()

func (p Particle) Valid() bool {
	_, ok := particleIndex[p]
	return ok
}

// Designator is a non-empty set of particles, kept in alphabet order.
type Designator []Particle

// NewDesignator validates ps and returns them deduplicated in alphabet
// order.
func NewDesignator(ps ...Particle) (Designator, error) {
	if len(ps) == 0 {
		return nil, diag.New(diag.SyntaxValue, "", fmt.Errorf("%w designator", diag.ErrEmpty))
	}
	res := make(Designator, 0, len(ps))
	for _, p := range ps {
		if !p.Valid() {
			return nil, diag.Errorf(diag.SyntaxValue, string(p), "%w: unknown particle", diag.ErrLexeme)
		}
		if !slices.Contains(res, p) {
			res = append(res, p)
		}
	}
	slices.SortFunc(res, func(a, b Particle) int {
		return particleIndex[a] - particleIndex[b]
	})
	return res, nil
}

// ParseDesignator parses ":n,p" or "n,p".
func ParseDesignator(s string) (Designator, error) {
	s = strings.TrimPrefix(s, ":")
	if s == "" {
		return NewDesignator()
	}
	parts := strings.Split(s, ",")
	ps := make([]Particle, len(parts))
	for i, p := range parts {
		ps[i] = Particle(p)
	}
	return NewDesignator(ps...)
}

// String prints the ':' prefixed, comma joined form, or "" for an empty
// designator.
func (d Designator) String() string {
	if len(d) == 0 {
		return ""
	}
	parts := make([]string, len(d))
	for i, p := range d {
		parts[i] = string(p)
	}
	return ":" + strings.Join(parts, ",")
}

func (d Designator) Has(p Particle) bool {
	return slices.Contains(d, p)
}

// Particles is a blank separated particle list, as on the mode card.
type Particles []Particle

func (ps Particles) String() string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = string(p)
	}
	return strings.Join(parts, " ")
}

package card

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/value"
)

// NoSuffix marks an option without a numeric suffix.
const NoSuffix = -1

// Key is the identity of an option, and of a card within a block.
type Key struct {
	Mnemonic   string
	Suffix     int
	Designator string
}

func (k Key) String() string {
	s := k.Mnemonic
	if k.Suffix != NoSuffix {
		s += strconv.Itoa(k.Suffix)
	}
	return s + k.Designator
}

// KeySet collects keys and reports overlaps among them.
type KeySet map[Key][]Key

// Add adds k unless it overlaps a key already in the set, in which case
// that key is returned with false.
func (ks KeySet) Add(k Key) (Key, bool) {
	base := Key{Mnemonic: k.Mnemonic, Suffix: k.Suffix}
	for _, prev := range ks[base] {
		if prev.Overlaps(k) {
			return prev, false
		}
	}
	ks[base] = append(ks[base], k)
	return k, true
}

// Overlaps reports whether k and o can name the same card: equal keys, or
// the same mnemonic and suffix with designators that share a particle, as
// imp:n and imp:n,p do.
func (k Key) Overlaps(o Key) bool {
	if k.Mnemonic != o.Mnemonic || k.Suffix != o.Suffix {
		return false
	}
	if k.Designator == o.Designator {
		return true
	}
	a, err := value.ParseDesignator(k.Designator)
	if err != nil || k.Designator == "" {
		return false
	}
	b, err := value.ParseDesignator(o.Designator)
	if err != nil || o.Designator == "" {
		return false
	}
	return slices.ContainsFunc(a, b.Has)
}

// Option is one typed keyword payload: the keyword, an optional numeric
// suffix, an optional designator and one value per grammar attribute (nil for
// an absent optional attribute).
type Option struct {
	g          *Grammar
	suffix     int
	designator value.Designator
	values     []value.Value
}

// NewOption builds and validates an option of kind k. Pass NoSuffix for
// keywords used without a suffix and a nil designator when there is none.
func NewOption(k Kind, suffix int, d value.Designator, vals ...value.Value) (Option, error) {
	g := k.Grammar()
	if g == nil {
		return Option{}, diag.Errorf(diag.SemanticsRange, k.String(), "%w: unknown kind %d", diag.ErrRange, int(k))
	}
	return newOption(g, suffix, d, vals)
}

func newOption(g *Grammar, suffix int, d value.Designator, vals []value.Value) (Option, error) {
	o := Option{g: g, suffix: suffix, designator: slices.Clone(d), values: slices.Clone(vals)}
	text := o.String()
	switch {
	case suffix < NoSuffix:
		return Option{}, diag.Errorf(diag.SemanticsRange, text, "%w: negative suffix", diag.ErrRange)
	case g.Suffix == Never && suffix != NoSuffix:
		return Option{}, diag.Errorf(diag.SemanticsRange, text, "%w: %s takes no suffix", diag.ErrRange, g.Keyword)
	case g.Suffix == Required && suffix == NoSuffix:
		return Option{}, diag.Errorf(diag.SemanticsMissingField, text, "%s needs a numeric suffix", g.Keyword)
	case g.Designator == Never && len(d) != 0:
		return Option{}, diag.Errorf(diag.SemanticsRange, text, "%w: %s takes no designator", diag.ErrRange, g.Keyword)
	case g.Designator == Required && len(d) == 0:
		return Option{}, diag.Errorf(diag.SemanticsMissingField, text, "%s needs a particle designator", g.Keyword)
	case len(vals) != len(g.Attrs):
		return Option{}, diag.Errorf(diag.SemanticsRange, text, "%w: %s has %d attributes, got %d values",
			diag.ErrArity, g.Keyword, len(g.Attrs), len(vals))
	}
	for i, a := range g.Attrs {
		v := vals[i]
		if v == nil {
			if !a.Optional {
				return Option{}, diag.Errorf(diag.SemanticsMissingField, text, "%s: %s is required", g.Keyword, a.Name)
			}
			continue
		}
		if v.Kind() != a.Type.Kind() {
			return Option{}, diag.Errorf(diag.SemanticsRange, text, "%w: %s: %s must be %s, got %s",
				diag.ErrRange, g.Keyword, a.Name, a.Type.Kind(), v.Kind())
		}
		// the value must read back as itself under the attribute's type
		if _, err := value.Parse(a.Type, v.String()); err != nil {
			return Option{}, err
		}
	}
	if g.Check != nil {
		if err := g.Check(o); err != nil {
			return Option{}, err
		}
	}
	return o, nil
}

func (o Option) Kind() Kind {
	if o.g == nil {
		return -1
	}
	return o.g.Kind
}

func (o Option) Family() Family {
	if o.g == nil {
		return -1
	}
	return o.g.Family
}

func (o Option) Grammar() *Grammar {
	return o.g
}

func (o Option) Mnemonic() string {
	if o.g == nil {
		return ""
	}
	return o.g.Keyword
}

// Suffix returns the numeric suffix and whether there is one.
func (o Option) Suffix() (int, bool) {
	return o.suffix, o.suffix != NoSuffix
}

func (o Option) Designator() value.Designator {
	return slices.Clone(o.designator)
}

func (o Option) Values() []value.Value {
	return slices.Clone(o.values)
}

// Value returns the value of the named attribute, or nil.
func (o Option) Value(name string) value.Value {
	if o.g == nil {
		return nil
	}
	for i, a := range o.g.Attrs {
		if a.Name == name {
			return o.values[i]
		}
	}
	return nil
}

// Key returns the identity of o. A bare keyword whose grammar reads it as
// suffix 0 gets suffix 0, so e and e0 have one key.
func (o Option) Key() Key {
	k := o.head()
	if k.Suffix == NoSuffix && o.g != nil && o.g.ZeroDefault {
		k.Suffix = 0
	}
	return k
}

// Head returns the keyword as written: mnemonic, suffix and designator.
func (o Option) Head() string { return o.head().String() }

func (o Option) head() Key {
	return Key{Mnemonic: o.Mnemonic(), Suffix: o.suffix, Designator: o.designator.String()}
}

func (o Option) String() string {
	if o.g == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(o.Head())
	first := true
	for _, v := range o.values {
		if v == nil {
			continue
		}
		if first {
			sb.WriteString(o.g.Sep())
			first = false
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.String())
	}
	return sb.String()
}

// With returns a copy of o with the named attribute set to v, validated as
// a new option.
func (o Option) With(name string, v value.Value) (Option, error) {
	if o.g == nil {
		return Option{}, fmt.Errorf("zero option")
	}
	vals := slices.Clone(o.values)
	for i, a := range o.g.Attrs {
		if a.Name == name {
			vals[i] = v
			return newOption(o.g, o.suffix, o.designator, vals)
		}
	}
	return Option{}, diag.Errorf(diag.SemanticsRange, o.String(), "%w: %s has no attribute %q", diag.ErrRange, o.g.Keyword, name)
}

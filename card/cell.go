package card

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/geom"
	"github.com/mcnp-tools/go-mcnp/value"
)

// Cell is a cell card: number, material, density, region and options.
type Cell struct {
	number   int64
	material int64
	density  float64
	region   geom.Expr
	options  []Option
}

// NewCell builds a cell. density must be nil exactly when material is 0
// (a void cell); a negative density is in g/cm3, a positive one in atoms/b-cm.
func NewCell(number, material int64, density *float64, region geom.Expr, opts ...Option) (*Cell, error) {
	c := &Cell{number: number, material: material, region: region, options: slices.Clone(opts)}
	if density != nil {
		c.density = *density
	}
	text := c.Line()
	switch {
	case number < 1 || number > MaxNumber:
		return nil, diag.Errorf(diag.SemanticsRange, text, "%w: cell number %d not in [1, %d]", diag.ErrRange, number, MaxNumber)
	case material < 0 || material > MaxNumber:
		return nil, diag.Errorf(diag.SemanticsRange, text, "%w: material %d not in [0, %d]", diag.ErrRange, material, MaxNumber)
	case material == 0 && density != nil:
		return nil, diag.Errorf(diag.SemanticsDensity, text, "void cell %d has a density", number)
	case material != 0 && density == nil:
		return nil, diag.Errorf(diag.SemanticsDensity, text, "cell %d of material %d has no density", number, material)
	case density != nil && (*density == 0 || math.IsNaN(*density) || math.IsInf(*density, 0)):
		return nil, diag.Errorf(diag.SemanticsDensity, text, "cell %d has density %g", number, *density)
	case region == nil:
		return nil, diag.Errorf(diag.SemanticsMissingField, text, "cell %d has no region", number)
	}
	if err := geom.Check(region); err != nil {
		return nil, err
	}
	seen := KeySet{}
	for _, o := range opts {
		if o.Grammar() == nil || o.Family() != CellFamily {
			return nil, diag.Errorf(diag.SemanticsRange, text, "%w: %q is not a cell option", diag.ErrRange, o.String())
		}
		if prev, ok := seen.Add(o.Key()); !ok {
			return nil, diag.Errorf(diag.SemanticsDuplicate, o.String(), "cell %d: option %s overlaps %s", number, o.Key(), prev)
		}
	}
	return c, nil
}

func ParseCell(text string) (*Cell, error) {
	return Default.ParseCell(text)
}

func (r *Registry) ParseCell(text string) (*Cell, error) {
	s := logical(text)
	toks := strings.Fields(assignSpace.ReplaceAllString(s, "="))
	if len(toks) < 2 {
		return nil, diag.Errorf(diag.SyntaxCard, s, "%w: want number, material and region", diag.ErrArity)
	}
	number, err := value.ParseInteger(toks[0])
	if err != nil {
		return nil, diag.New(diag.SyntaxCard, s, err)
	}
	if toks[1] == "like" {
		return nil, diag.Errorf(diag.SyntaxCard, s, "%w: like-but cells are not supported", diag.ErrNoMatch)
	}
	material, err := value.ParseInteger(toks[1])
	if err != nil {
		return nil, diag.New(diag.SyntaxCard, s, err)
	}
	toks = toks[2:]
	var density *float64
	if material != 0 {
		if len(toks) == 0 {
			return nil, diag.Errorf(diag.SemanticsDensity, s, "cell %d of material %d has no density", number, material)
		}
		d, err := value.ParseReal(toks[0])
		if err != nil {
			return nil, diag.New(diag.SyntaxCard, s, err)
		}
		density = &d
		toks = toks[1:]
	}
	i := slices.IndexFunc(toks, startsOption)
	if i < 0 {
		i = len(toks)
	}
	if i == 0 {
		return nil, diag.Errorf(diag.SemanticsMissingField, s, "cell %d has no region", number)
	}
	region, err := geom.Parse(strings.Join(toks[:i], " "))
	if err != nil {
		return nil, err
	}
	var opts []Option
	for _, chunk := range chunkOptions(toks[i:]) {
		o, err := r.ParseOption(CellFamily, chunk)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return NewCell(number, material, density, region, opts...)
}

func startsOption(tok string) bool {
	r := []rune(tok)
	return len(r) > 0 && (unicode.IsLetter(r[0]) || r[0] == '*')
}

// chunkOptions splits the option part of a cell card into one text per
// option. An option starts at each token beginning with a letter.
func chunkOptions(toks []string) []string {
	var res []string
	for _, t := range toks {
		if startsOption(t) || len(res) == 0 {
			res = append(res, t)
			continue
		}
		res[len(res)-1] += " " + t
	}
	return res
}

func (c *Cell) Family() Family { return CellFamily }

func (c *Cell) Key() Key {
	return Key{Mnemonic: "cell", Suffix: int(c.number)}
}

func (c *Cell) Number() int64   { return c.number }
func (c *Cell) Material() int64 { return c.material }

// Density returns the density and whether the cell has one.
func (c *Cell) Density() (float64, bool) {
	return c.density, c.material != 0
}

func (c *Cell) Region() geom.Expr { return c.region }

func (c *Cell) Options() []Option { return slices.Clone(c.options) }

// Option returns the option with key k.
func (c *Cell) Option(k Key) (Option, bool) {
	for _, o := range c.options {
		if o.Key() == k {
			return o, true
		}
	}
	return Option{}, false
}

func (c *Cell) Line() string {
	parts := []string{strconv.FormatInt(c.number, 10), strconv.FormatInt(c.material, 10)}
	if c.material != 0 {
		parts = append(parts, value.FormatReal(c.density))
	}
	if c.region != nil {
		parts = append(parts, geom.Format(c.region))
	}
	for _, o := range c.options {
		parts = append(parts, o.String())
	}
	return strings.Join(parts, " ")
}

func (c *Cell) String() string { return wrap(c.Line()) }

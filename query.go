package mcnp

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mcnp-tools/go-mcnp/card"
	"github.com/mcnp-tools/go-mcnp/geom"
	"github.com/mcnp-tools/go-mcnp/inp"
)

// Record is what a query expression sees for one card. Fields are
// available under their lower case names ("family", "number", ...).
//
//	family    "cell", "surface" or "data"
//	key       the card identity as printed, "m1" or "imp:n"
//	mnemonic  surface mnemonic or data keyword without suffix
//	number    cell or surface number, 0 for data
//	material  cell material, 0 for void
//	density   cell density as written, 0 for void
//	surfaces  unsigned surface numbers a cell region uses
//	params    surface parameters
//	options   cell option values by key, {"imp:n": "1"}
//	text      the logical card line
type Record struct {
	Family   string
	Key      string
	Mnemonic string
	Number   int
	Material int
	Density  float64
	Surfaces []int
	Params   []float64
	Options  map[string]string
	Text     string
}

func (r *Record) env() map[string]any {
	return map[string]any{
		"family":   r.Family,
		"key":      r.Key,
		"mnemonic": r.Mnemonic,
		"number":   r.Number,
		"material": r.Material,
		"density":  r.Density,
		"surfaces": r.Surfaces,
		"params":   r.Params,
		"options":  r.Options,
		"text":     r.Text,
	}
}

// NewRecord describes c for queries.
func NewRecord(c card.Card) *Record {
	r := &Record{
		Family:   c.Family().String(),
		Key:      c.Key().String(),
		Surfaces: []int{},
		Params:   []float64{},
		Options:  map[string]string{},
		Text:     c.Line(),
	}
	switch x := c.(type) {
	case *card.Cell:
		r.Number = int(x.Number())
		r.Material = int(x.Material())
		r.Density, _ = x.Density()
		for _, l := range geom.Surfaces(x.Region()) {
			n := int(l.Surface)
			if n < 0 {
				n = -n
			}
			r.Surfaces = append(r.Surfaces, n)
		}
		for _, o := range x.Options() {
			r.Options[o.Key().String()] = optionText(o)
		}
	case *card.Surface:
		r.Number = int(x.Number())
		r.Mnemonic = x.Mnemonic()
		r.Params = x.Parameters()
	case *card.Data:
		r.Mnemonic = x.Mnemonic()
	}
	return r
}

func optionText(o card.Option) string {
	var parts []string
	for _, v := range o.Values() {
		if v != nil {
			parts = append(parts, v.String())
		}
	}
	return strings.Join(parts, " ")
}

// Compile checks a query expression. It must evaluate to a bool.
func Compile(q string) (*vm.Program, error) {
	prg, err := expr.Compile(q, expr.Env((&Record{}).env()), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return prg, nil
}

// Query returns the cards of d, in deck order, for which q is true.
func Query(d *inp.Deck, q string) ([]card.Card, error) {
	prg, err := Compile(q)
	if err != nil {
		return nil, err
	}
	return Select(d, prg)
}

// Select runs a compiled query over the cards of d.
func Select(d *inp.Deck, prg *vm.Program) ([]card.Card, error) {
	var res []card.Card
	for _, b := range d.Blocks() {
		for _, c := range b.Cards {
			out, err := expr.Run(prg, NewRecord(c).env())
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrQuery, c.Key(), err)
			}
			if ok, _ := out.(bool); ok {
				res = append(res, c)
			}
		}
	}
	return res, nil
}

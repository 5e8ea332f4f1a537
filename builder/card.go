package builder

import (
	"strings"

	"github.com/mcnp-tools/go-mcnp/card"
	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/value"
)

type Cell struct {
	Number   int64    `json:"number"`
	Material int64    `json:"material"`
	Density  *float64 `json:"density,omitempty"`
	Region   Geometry `json:"region"`
	// Options holds one option per entry in deck syntax, as "imp:n=1".
	Options []string `json:"options,omitempty"`
}

func (b *Cell) Build() (*card.Cell, error) {
	opts := make([]card.Option, 0, len(b.Options))
	for _, s := range b.Options {
		o, err := card.ParseOption(card.CellFamily, s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return card.NewCell(b.Number, b.Material, b.Density, b.Region.Expr, opts...)
}

func UnbuildCell(c *card.Cell) *Cell {
	b := &Cell{
		Number:   c.Number(),
		Material: c.Material(),
		Region:   Geometry{Expr: c.Region()},
	}
	if d, ok := c.Density(); ok {
		b.Density = &d
	}
	for _, o := range c.Options() {
		b.Options = append(b.Options, o.String())
	}
	return b
}

type Surface struct {
	Number int64 `json:"number"`
	// Boundary is "" or one of "*" (reflecting) and "+" (white).
	Boundary   string    `json:"boundary,omitempty"`
	Transform  int64     `json:"transform,omitempty"`
	Periodic   int64     `json:"periodic,omitempty"`
	Mnemonic   string    `json:"mnemonic"`
	Parameters []float64 `json:"parameters"`
}

func (b *Surface) Build() (*card.Surface, error) {
	var bc card.Boundary
	switch b.Boundary {
	case "":
	case "*":
		bc = card.Reflecting
	case "+":
		bc = card.White
	default:
		return nil, diag.Errorf(diag.SemanticsRange, b.Boundary, "%w: boundary must be \"*\" or \"+\"", diag.ErrRange)
	}
	text := b.Mnemonic
	for _, p := range b.Parameters {
		text += " " + value.FormatReal(p)
	}
	o, err := card.ParseOption(card.SurfaceFamily, text)
	if err != nil {
		return nil, err
	}
	return card.NewSurface(b.Number, bc, b.Transform, b.Periodic, o)
}

func UnbuildSurface(s *card.Surface) *Surface {
	return &Surface{
		Number:     s.Number(),
		Boundary:   s.Boundary().String(),
		Transform:  s.Transform(),
		Periodic:   s.Periodic(),
		Mnemonic:   s.Mnemonic(),
		Parameters: s.Parameters(),
	}
}

// Data is a data card as its keyword ("m1", "imp:n", "f4:p") and the text
// of its values.
type Data struct {
	Keyword string `json:"keyword"`
	Values  string `json:"values,omitempty"`
}

func (b *Data) Build() (*card.Data, error) {
	return card.ParseData(strings.TrimSpace(b.Keyword + " " + b.Values))
}

func UnbuildData(d *card.Data) *Data {
	k := d.Option().Head()
	return &Data{
		Keyword: k,
		Values:  strings.TrimSpace(strings.TrimPrefix(d.Line(), k)),
	}
}

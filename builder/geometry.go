package builder

import (
	"github.com/mcnp-tools/go-mcnp/geom"
)

// Geometry is a region. It marshals as its deck text.
type Geometry struct {
	geom.Expr
}

// Surf is the half-space of signed surface n.
func Surf(n int64) Geometry {
	return Geometry{Expr: geom.Leaf{Surface: n}}
}

// Facet is the half-space of one facet of macrobody n.
func Facet(n int64, facet int) Geometry {
	return Geometry{Expr: geom.Leaf{Surface: n, Facet: facet}}
}

func ParseGeometry(s string) (Geometry, error) {
	e, err := geom.Parse(s)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{Expr: e}, nil
}

// Amp is the union of g and h, printed "g:h".
func (g Geometry) Amp(h Geometry) Geometry {
	return Geometry{Expr: geom.Union(g.Expr, h.Expr)}
}

// Pipe is the intersection of g and h, printed "g h".
func (g Geometry) Pipe(h Geometry) Geometry {
	return Geometry{Expr: geom.Intersect(g.Expr, h.Expr)}
}

// Tilde is the complement of g, printed "#g" or "#(g)".
func (g Geometry) Tilde() Geometry {
	return Geometry{Expr: geom.Complement(g.Expr)}
}

func (g Geometry) String() string {
	return geom.Format(g.Expr)
}

func (g Geometry) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Geometry) UnmarshalText(d []byte) error {
	if len(d) == 0 {
		g.Expr = nil
		return nil
	}
	e, err := geom.Parse(string(d))
	if err != nil {
		return err
	}
	g.Expr = e
	return nil
}

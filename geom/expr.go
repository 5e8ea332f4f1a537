package geom

import (
	"strconv"
	"strings"
)

type Expr interface {
	expr()
}

// Leaf is a signed surface reference. Facet selects one facet of a macrobody
// (-1.2) and is zero otherwise.
type Leaf struct {
	Surface int64
	Facet   int
}

// And is an intersection.
type And struct {
	L, R Expr
}

// Or is a union.
type Or struct {
	L, R Expr
}

// Not is a complement.
type Not struct {
	X Expr
}

// Group is a parenthesized sub-region as written in the source.
type Group struct {
	X Expr
}

func (Leaf) expr()  {}
func (And) expr()   {}
func (Or) expr()    {}
func (Not) expr()   {}
func (Group) expr() {}

func Intersect(a, b Expr) Expr {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return And{L: a, R: b}
}

func Union(a, b Expr) Expr {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return Or{L: a, R: b}
}

func Complement(a Expr) Expr {
	return Not{X: a}
}

// Walk calls f on e and its descendants in prefix order, skipping the
// children of nodes for which f returns false.
func Walk(e Expr, f func(Expr) bool) {
	if e == nil || !f(e) {
		return
	}
	switch x := e.(type) {
	case And:
		Walk(x.L, f)
		Walk(x.R, f)
	case Or:
		Walk(x.L, f)
		Walk(x.R, f)
	case Not:
		Walk(x.X, f)
	case Group:
		Walk(x.X, f)
	}
}

// Surfaces returns the surface leaves of e in order of appearance. Leaves
// directly under a complement are cell references and are not included.
func Surfaces(e Expr) []Leaf {
	var res []Leaf
	Walk(e, func(x Expr) bool {
		switch y := x.(type) {
		case Leaf:
			res = append(res, y)
		case Not:
			if _, ok := y.X.(Leaf); ok {
				return false
			}
		}
		return true
	})
	return res
}

// Cells returns the cell numbers referenced with '#n'.
func Cells(e Expr) []int64 {
	var res []int64
	Walk(e, func(x Expr) bool {
		if n, ok := x.(Not); ok {
			if l, ok := n.X.(Leaf); ok {
				res = append(res, l.Surface)
			}
		}
		return true
	})
	return res
}

func Format(e Expr) string {
	var sb strings.Builder
	format(&sb, e)
	return sb.String()
}

func format(sb *strings.Builder, e Expr) {
	switch x := e.(type) {
	case nil:
	case Leaf:
		sb.WriteString(strconv.FormatInt(x.Surface, 10))
		if x.Facet != 0 {
			sb.WriteByte('.')
			sb.WriteString(strconv.Itoa(x.Facet))
		}
	case Group:
		sb.WriteByte('(')
		format(sb, x.X)
		sb.WriteByte(')')
	case Not:
		sb.WriteByte('#')
		formatParen(sb, x.X, !isPrimary(x.X))
	case And:
		_, lOr := x.L.(Or)
		formatParen(sb, x.L, lOr)
		sb.WriteByte(' ')
		formatParen(sb, x.R, !isUnary(x.R))
	case Or:
		format(sb, x.L)
		sb.WriteByte(':')
		_, rOr := x.R.(Or)
		formatParen(sb, x.R, rOr)
	}
}

func formatParen(sb *strings.Builder, e Expr, paren bool) {
	if !paren {
		format(sb, e)
		return
	}
	sb.WriteByte('(')
	format(sb, e)
	sb.WriteByte(')')
}

func isPrimary(e Expr) bool {
	switch e.(type) {
	case Leaf, Group:
		return true
	}
	return false
}

func isUnary(e Expr) bool {
	if _, ok := e.(Not); ok {
		return true
	}
	return isPrimary(e)
}

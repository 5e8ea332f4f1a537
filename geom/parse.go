package geom

import (
	"fmt"
	"strconv"

	"github.com/mcnp-tools/go-mcnp/diag"
)

type tokType int

const (
	tNumber tokType = iota
	tLParen
	tRParen
	tColon
	tHash
)

type tok struct {
	typ  tokType
	text string
	off  int
}

func tokenize(s string) ([]tok, error) {
	var res []tok
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			i++
		case c == '(':
			res = append(res, tok{tLParen, "(", i})
			i++
		case c == ')':
			res = append(res, tok{tRParen, ")", i})
			i++
		case c == ':':
			res = append(res, tok{tColon, ":", i})
			i++
		case c == '#':
			res = append(res, tok{tHash, "#", i})
			i++
		case c == '-' || c == '+' || isDigit(c):
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			if j < len(s) && s[j] == '.' {
				j++
				k := j
				for j < len(s) && isDigit(s[j]) {
					j++
				}
				if k == j {
					return nil, fmt.Errorf("%w: facet at offset %d", diag.ErrLexeme, i)
				}
			}
			if j == i+1 && !isDigit(c) {
				return nil, fmt.Errorf("%w: sign without number at offset %d", diag.ErrLexeme, i)
			}
			res = append(res, tok{tNumber, s[i:j], i})
			i = j
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", diag.ErrLexeme, c, i)
		}
	}
	return res, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

type parser struct {
	toks []tok
	i    int
}

// Parse parses a region. Errors are *diag.Error with code SYNTAX_GEOMETRY,
// or SEMANTICS_RANGE for a zero surface number.
func Parse(s string) (Expr, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, diag.New(diag.SyntaxGeometry, s, err)
	}
	if len(toks) == 0 {
		return nil, diag.New(diag.SyntaxGeometry, s, diag.ErrEmpty)
	}
	p := &parser{toks: toks}
	e, err := p.union()
	if err != nil {
		return nil, wrapErr(s, err)
	}
	if p.i != len(p.toks) {
		return nil, diag.Errorf(diag.SyntaxGeometry, s, "unexpected %q at offset %d", p.toks[p.i].text, p.toks[p.i].off)
	}
	return e, nil
}

func wrapErr(s string, err error) error {
	if _, ok := err.(*diag.Error); ok {
		return err
	}
	return diag.New(diag.SyntaxGeometry, s, err)
}

// Normalize returns the whitespace-normalized form of a region.
func Normalize(s string) (string, error) {
	e, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(e), nil
}

func (p *parser) peek() (tok, bool) {
	if p.i >= len(p.toks) {
		return tok{}, false
	}
	return p.toks[p.i], true
}

func (p *parser) union() (Expr, error) {
	l, err := p.inter()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.typ != tColon {
			return l, nil
		}
		p.i++
		r, err := p.inter()
		if err != nil {
			return nil, err
		}
		l = Or{L: l, R: r}
	}
}

func (p *parser) inter() (Expr, error) {
	l, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || (t.typ != tNumber && t.typ != tLParen && t.typ != tHash) {
			return l, nil
		}
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		l = And{L: l, R: r}
	}
}

func (p *parser) unary() (Expr, error) {
	t, ok := p.peek()
	if ok && t.typ == tHash {
		p.i++
		x, err := p.primary()
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of region")
	}
	switch t.typ {
	case tNumber:
		p.i++
		return leaf(t.text)
	case tLParen:
		p.i++
		x, err := p.union()
		if err != nil {
			return nil, err
		}
		t, ok := p.peek()
		if !ok || t.typ != tRParen {
			return nil, fmt.Errorf("unbalanced '(' at offset %d", t.off)
		}
		p.i++
		return Group{X: x}, nil
	default:
		return nil, fmt.Errorf("unexpected %q at offset %d", t.text, t.off)
	}
}

func leaf(s string) (Expr, error) {
	num, facet := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			num, facet = s[:i], s[i+1:]
			break
		}
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", diag.ErrLexeme, err)
	}
	l := Leaf{Surface: n}
	if facet != "" {
		f, err := strconv.Atoi(facet)
		if err != nil || f == 0 {
			return nil, diag.New(diag.SemanticsRange, s, fmt.Errorf("%w: facet %q", diag.ErrRange, facet))
		}
		l.Facet = f
	}
	if err := checkLeaf(l); err != nil {
		return nil, err
	}
	return l, nil
}

// MaxFacet is the highest macrobody facet number.
const MaxFacet = 9

func checkLeaf(l Leaf) error {
	switch {
	case l.Surface == 0:
		return diag.New(diag.SemanticsRange, Format(l), fmt.Errorf("%w: surface 0", diag.ErrRange))
	case l.Facet < 0 || l.Facet > MaxFacet:
		return diag.New(diag.SemanticsRange, Format(l), fmt.Errorf("%w: facet %d not in [1, %d]", diag.ErrRange, l.Facet, MaxFacet))
	}
	return nil
}

// Check reports the first part of e that Parse would not give back: a zero
// surface, a facet out of range or a missing operand.
func Check(e Expr) error {
	switch x := e.(type) {
	case nil:
		return diag.New(diag.SyntaxGeometry, "", fmt.Errorf("%w: missing operand", diag.ErrEmpty))
	case Leaf:
		return checkLeaf(x)
	case And:
		return checkPair(x.L, x.R)
	case Or:
		return checkPair(x.L, x.R)
	case Not:
		return Check(x.X)
	case Group:
		return Check(x.X)
	}
	return diag.Errorf(diag.SyntaxGeometry, "", "unknown region node %T", e)
}

func checkPair(l, r Expr) error {
	if err := Check(l); err != nil {
		return err
	}
	return Check(r)
}

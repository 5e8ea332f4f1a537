package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/value"
)

// Boundary is the boundary condition marked by a prefix on the surface
// number.
type Boundary int

const (
	NoBoundary Boundary = iota
	Reflecting          // *
	White               // +
)

func (b Boundary) String() string {
	switch b {
	case Reflecting:
		return "*"
	case White:
		return "+"
	}
	return ""
}

// Surface is a surface card. At most one of transform and periodic is set;
// zero means unset.
type Surface struct {
	number    int64
	boundary  Boundary
	transform int64
	periodic  int64
	option    Option
}

func NewSurface(number int64, b Boundary, transform, periodic int64, opt Option) (*Surface, error) {
	s := &Surface{number: number, boundary: b, transform: transform, periodic: periodic, option: opt}
	text := s.Line()
	switch {
	case number < 1 || number > MaxNumber:
		return nil, diag.Errorf(diag.SemanticsRange, text, "%w: surface number %d not in [1, %d]", diag.ErrRange, number, MaxNumber)
	case b < NoBoundary || b > White:
		return nil, diag.Errorf(diag.SemanticsRange, text, "%w: boundary %d", diag.ErrRange, int(b))
	case transform != 0 && periodic != 0:
		return nil, diag.Errorf(diag.SemanticsExclusive, text, "surface %d has both a transformation and a periodic surface", number)
	case transform < 0 || transform > MaxTransform:
		return nil, diag.Errorf(diag.SemanticsRange, text, "%w: transformation %d not in [1, %d]", diag.ErrRange, transform, MaxTransform)
	case periodic < 0 || periodic > MaxNumber:
		return nil, diag.Errorf(diag.SemanticsRange, text, "%w: periodic surface %d not in [1, %d]", diag.ErrRange, periodic, MaxNumber)
	case periodic == number:
		return nil, diag.Errorf(diag.SemanticsRange, text, "%w: surface %d is periodic with itself", diag.ErrRange, number)
	case opt.Grammar() == nil:
		return nil, diag.Errorf(diag.SemanticsMissingField, text, "surface %d has no type", number)
	case opt.Family() != SurfaceFamily:
		return nil, diag.Errorf(diag.SemanticsRange, text, "%w: %q is not a surface type", diag.ErrRange, opt.String())
	}
	return s, nil
}

func ParseSurface(text string) (*Surface, error) {
	return Default.ParseSurface(text)
}

func (r *Registry) ParseSurface(text string) (*Surface, error) {
	s := logical(text)
	toks := strings.Fields(s)
	if len(toks) == 0 {
		return nil, diag.Errorf(diag.SyntaxCard, s, "%w: empty surface card", diag.ErrArity)
	}
	b, num := NoBoundary, toks[0]
	switch num[0] {
	case '*':
		b, num = Reflecting, num[1:]
	case '+':
		b, num = White, num[1:]
	}
	number, err := value.ParseInteger(num)
	if err != nil {
		// Not a surface number: report what the rest would have been.
		if _, oerr := r.ParseOption(SurfaceFamily, s); oerr != nil {
			return nil, oerr
		}
		return nil, diag.Errorf(diag.SemanticsMissingField, s, "surface has no number")
	}
	toks = toks[1:]
	var transform, periodic int64
	if len(toks) > 0 && isNumber(toks[0]) {
		n, err := value.ParseInteger(toks[0])
		if err != nil {
			return nil, diag.New(diag.SyntaxCard, s, err)
		}
		if n < 0 {
			periodic = -n
		} else {
			transform = n
		}
		toks = toks[1:]
	}
	opt, err := r.ParseOption(SurfaceFamily, strings.Join(toks, " "))
	if err != nil {
		return nil, err
	}
	return NewSurface(number, b, transform, periodic, opt)
}

func isNumber(tok string) bool {
	_, err := value.ParseReal(tok)
	return err == nil
}

func (s *Surface) Family() Family { return SurfaceFamily }

func (s *Surface) Key() Key {
	return Key{Mnemonic: "surface", Suffix: int(s.number)}
}

func (s *Surface) Number() int64      { return s.number }
func (s *Surface) Boundary() Boundary { return s.boundary }

// Transform returns the transformation number, or 0.
func (s *Surface) Transform() int64 { return s.transform }

// Periodic returns the number of the periodic partner surface, or 0.
func (s *Surface) Periodic() int64 { return s.periodic }

func (s *Surface) Option() Option { return s.option }

// Mnemonic is the surface type, such as "px".
func (s *Surface) Mnemonic() string { return s.option.Mnemonic() }

// Parameters returns the numeric parameters of the surface.
func (s *Surface) Parameters() []float64 {
	return reals(s.option.Value("parameters"))
}

func (s *Surface) Line() string {
	var sb strings.Builder
	sb.WriteString(s.boundary.String())
	sb.WriteString(strconv.FormatInt(s.number, 10))
	switch {
	case s.transform != 0:
		fmt.Fprintf(&sb, " %d", s.transform)
	case s.periodic != 0:
		fmt.Fprintf(&sb, " -%d", s.periodic)
	}
	if o := s.option.String(); o != "" {
		sb.WriteByte(' ')
		sb.WriteString(o)
	}
	return sb.String()
}

func (s *Surface) String() string { return wrap(s.Line()) }

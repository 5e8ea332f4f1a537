package card

import (
	"strings"

	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/token"
)

// Card is one card of a deck block.
type Card interface {
	Family() Family
	// Key is the identity of the card within its block.
	Key() Key
	// Line is the card as one logical line, without continuations.
	Line() string
	// String is Line wrapped at token.DefaultWidth.
	String() string
	card()
}

func (*Cell) card()    {}
func (*Surface) card() {}
func (*Data) card()    {}
func (*Comment) card() {}

// Parse parses text as a card of family f using the Default registry.
func Parse(f Family, text string) (Card, error) {
	return Default.Parse(f, text)
}

func (r *Registry) Parse(f Family, text string) (Card, error) {
	switch f {
	case CellFamily:
		return r.ParseCell(text)
	case SurfaceFamily:
		return r.ParseSurface(text)
	case DataFamily:
		return r.ParseData(text)
	case CommentFamily:
		return ParseComment(text)
	}
	return nil, diag.Errorf(diag.SyntaxCard, text, "%w: no family %d", diag.ErrNoMatch, int(f))
}

// logical preprocesses the text of a single card into one line.
func logical(text string) string {
	s, _ := token.Preprocess(text)
	return strings.Join(strings.Fields(s), " ")
}

func wrap(s string) string {
	return token.Wrap(s, token.DefaultWidth)
}

package inp

import (
	"github.com/mcnp-tools/go-mcnp/card"
)

// MaxTitle is the length a title must stay below.
const MaxTitle = 80

type Deck struct {
	// Message is the text of the message block after "message:", or "".
	Message  string
	Title    string
	Cells    Block
	Surfaces Block
	Data     Block
	// Trailing is the free text after the data block, kept verbatim.
	Trailing string
}

type Block struct {
	Cards    []card.Card
	Comments []Comment
}

// Comment is a block comment placed after the first Index cards of its
// block. An Inline comment goes on the end of card Index-1.
type Comment struct {
	Index  int
	Text   string
	Inline bool
}

// Lookup returns the card with key k.
func (b *Block) Lookup(k card.Key) (card.Card, bool) {
	for _, c := range b.Cards {
		if c.Key() == k {
			return c, true
		}
	}
	return nil, false
}

// Blocks returns the card blocks in deck order.
func (d *Deck) Blocks() []*Block {
	return []*Block{&d.Cells, &d.Surfaces, &d.Data}
}

var blockFamilies = [...]card.Family{card.CellFamily, card.SurfaceFamily, card.DataFamily}

var blockNames = [...]string{"cells", "surfaces", "data"}

// Cell returns the cell numbered n.
func (d *Deck) Cell(n int64) (*card.Cell, bool) {
	c, ok := d.Cells.Lookup(card.Key{Mnemonic: "cell", Suffix: int(n)})
	if !ok {
		return nil, false
	}
	return c.(*card.Cell), true
}

// Surface returns the surface numbered n.
func (d *Deck) Surface(n int64) (*card.Surface, bool) {
	c, ok := d.Surfaces.Lookup(card.Key{Mnemonic: "surface", Suffix: int(n)})
	if !ok {
		return nil, false
	}
	return c.(*card.Surface), true
}

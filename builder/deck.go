package builder

import (
	"fmt"

	"github.com/mcnp-tools/go-mcnp/card"
	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/inp"
)

type Comment struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Inline bool   `json:"inline,omitempty"`
}

type Comments struct {
	Cells    []Comment `json:"cells,omitempty"`
	Surfaces []Comment `json:"surfaces,omitempty"`
	Data     []Comment `json:"data,omitempty"`
}

type Deck struct {
	Message  string    `json:"message,omitempty"`
	Title    string    `json:"title"`
	Cells    []Cell    `json:"cells"`
	Surfaces []Surface `json:"surfaces"`
	Data     []Data    `json:"data"`
	Comments Comments  `json:"comments"`
	Trailing string    `json:"trailing,omitempty"`
}

// Build lowers d to a deck, checking each card and the deck constraints.
// The first error is returned.
func (d *Deck) Build() (*inp.Deck, error) {
	res := &inp.Deck{Message: d.Message, Title: d.Title, Trailing: d.Trailing}
	if len(d.Title) >= inp.MaxTitle {
		return nil, diag.Errorf(diag.SemanticsLength, d.Title, "%w: title is %d characters, must be under %d", diag.ErrRange, len(d.Title), inp.MaxTitle)
	}
	for i := range d.Cells {
		c, err := d.Cells[i].Build()
		if err != nil {
			return nil, fmt.Errorf("cells[%d]: %w", i, err)
		}
		res.Cells.Cards = append(res.Cells.Cards, c)
	}
	for i := range d.Surfaces {
		s, err := d.Surfaces[i].Build()
		if err != nil {
			return nil, fmt.Errorf("surfaces[%d]: %w", i, err)
		}
		res.Surfaces.Cards = append(res.Surfaces.Cards, s)
	}
	for i := range d.Data {
		x, err := d.Data[i].Build()
		if err != nil {
			return nil, fmt.Errorf("data[%d]: %w", i, err)
		}
		res.Data.Cards = append(res.Data.Cards, x)
	}
	for _, b := range res.Blocks() {
		if err := unique(b.Cards); err != nil {
			return nil, err
		}
	}
	var err error
	if res.Cells.Comments, err = buildComments(d.Comments.Cells); err != nil {
		return nil, fmt.Errorf("cells comments: %w", err)
	}
	if res.Surfaces.Comments, err = buildComments(d.Comments.Surfaces); err != nil {
		return nil, fmt.Errorf("surfaces comments: %w", err)
	}
	if res.Data.Comments, err = buildComments(d.Comments.Data); err != nil {
		return nil, fmt.Errorf("data comments: %w", err)
	}
	return res, nil
}

func unique(cards []card.Card) error {
	seen := card.KeySet{}
	for _, c := range cards {
		if _, ok := seen.Add(c.Key()); !ok {
			return duplicate(c)
		}
	}
	return nil
}

func duplicate(c card.Card) error {
	return diag.Errorf(diag.SemanticsDuplicate, c.Line(), "%s %s is already defined", c.Family(), c.Key())
}

func buildComments(cs []Comment) ([]inp.Comment, error) {
	var res []inp.Comment
	for i, c := range cs {
		cm, err := card.NewComment(c.Text)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		res = append(res, inp.Comment{Index: c.Index, Text: cm.Text(), Inline: c.Inline})
	}
	return res, nil
}

func unbuildComments(cs []inp.Comment) []Comment {
	var res []Comment
	for _, c := range cs {
		res = append(res, Comment{Index: c.Index, Text: c.Text, Inline: c.Inline})
	}
	return res
}

func UnbuildDeck(d *inp.Deck) *Deck {
	res := &Deck{
		Message:  d.Message,
		Title:    d.Title,
		Trailing: d.Trailing,
		Cells:    []Cell{},
		Surfaces: []Surface{},
		Data:     []Data{},
		Comments: Comments{
			Cells:    unbuildComments(d.Cells.Comments),
			Surfaces: unbuildComments(d.Surfaces.Comments),
			Data:     unbuildComments(d.Data.Comments),
		},
	}
	for _, c := range d.Cells.Cards {
		res.Cells = append(res.Cells, *UnbuildCell(c.(*card.Cell)))
	}
	for _, c := range d.Surfaces.Cards {
		res.Surfaces = append(res.Surfaces, *UnbuildSurface(c.(*card.Surface)))
	}
	for _, c := range d.Data.Cards {
		res.Data = append(res.Data, *UnbuildData(c.(*card.Data)))
	}
	return res
}

// Append adds c to the end of its block. A card with the same identity
// already in the block is an error.
func (d *Deck) Append(c card.Card) error {
	i, err := d.find(c)
	if err != nil {
		return err
	}
	if i >= 0 {
		return duplicate(c)
	}
	d.put(c, -1)
	return nil
}

// Replace overwrites the card with c's identity, or appends c if there is
// none.
func (d *Deck) Replace(c card.Card) error {
	i, err := d.find(c)
	if err != nil {
		return err
	}
	d.put(c, i)
	return nil
}

// Remove deletes the card of family f with key k and reports whether there
// was one. Comments are left in place.
func (d *Deck) Remove(f card.Family, k card.Key) bool {
	i := d.index(f, k)
	if i < 0 {
		return false
	}
	switch f {
	case card.CellFamily:
		d.Cells = append(d.Cells[:i], d.Cells[i+1:]...)
	case card.SurfaceFamily:
		d.Surfaces = append(d.Surfaces[:i], d.Surfaces[i+1:]...)
	case card.DataFamily:
		d.Data = append(d.Data[:i], d.Data[i+1:]...)
	}
	return true
}

func (d *Deck) find(c card.Card) (int, error) {
	switch c.(type) {
	case *card.Cell, *card.Surface, *card.Data:
		return d.index(c.Family(), c.Key()), nil
	}
	return -1, diag.Errorf(diag.SemanticsRange, c.Line(), "%w: %s cards are kept as comments", diag.ErrRange, c.Family())
}

// index returns the position of the card with key k, or -1. Entries that
// do not build have no identity and never match.
func (d *Deck) index(f card.Family, k card.Key) int {
	switch f {
	case card.CellFamily:
		for i := range d.Cells {
			if c, err := d.Cells[i].Build(); err == nil && c.Key() == k {
				return i
			}
		}
	case card.SurfaceFamily:
		for i := range d.Surfaces {
			if s, err := d.Surfaces[i].Build(); err == nil && s.Key() == k {
				return i
			}
		}
	case card.DataFamily:
		for i := range d.Data {
			if x, err := d.Data[i].Build(); err == nil && x.Key() == k {
				return i
			}
		}
	}
	return -1
}

// put stores c at i, or appends it when i is negative.
func (d *Deck) put(c card.Card, i int) {
	switch x := c.(type) {
	case *card.Cell:
		b := *UnbuildCell(x)
		if i < 0 {
			d.Cells = append(d.Cells, b)
		} else {
			d.Cells[i] = b
		}
	case *card.Surface:
		b := *UnbuildSurface(x)
		if i < 0 {
			d.Surfaces = append(d.Surfaces, b)
		} else {
			d.Surfaces[i] = b
		}
	case *card.Data:
		b := *UnbuildData(x)
		if i < 0 {
			d.Data = append(d.Data, b)
		} else {
			d.Data[i] = b
		}
	}
}

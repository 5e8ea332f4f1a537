package mcnp

import (
	"github.com/mcnp-tools/go-mcnp/inp"
)

// ParseDeck parses an INP deck. Pass inp.WithLogger to trace card
// dispatch.
func ParseDeck(src []byte, opts ...inp.ParseOption) (*inp.Deck, error) {
	return inp.Parse(string(src), opts...)
}

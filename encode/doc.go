// Package encode writes decks in any of the formats of package format.
//
// INP output is the deck text of inp.Deck.Encode, optionally colored for a
// terminal with Colors. JSON and YAML output is the builder form of the
// deck (see package builder), which Decode reads back.
//
//	err := encode.Encode(deck, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
package encode

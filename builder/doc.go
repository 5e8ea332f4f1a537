// Package builder is the mutable side of the deck model.
//
// The card and inp packages build immutable, validated values. The types
// here are plain structs with exported fields and JSON tags that can be
// filled in by hand, decoded from JSON or YAML, patched, and then lowered
// with Build, which runs every check the parsers run and stops at the first
// error. Unbuild goes the other way, so that
//
//	b := builder.UnbuildDeck(d)
//	b.Title = "new title"
//	d2, err := b.Build()
//
// changes one field and nothing else: Build(Unbuild(x)) prints exactly as
// x does.
//
// A deck holds at most one card per identity in each block. Append rejects
// a card whose identity is already present with SEMANTICS_DUPLICATE;
// Replace overwrites it in place, or appends when it is absent.
//
// Geometry wraps a region with operator methods named after the deck
// syntax they produce:
//
//	a.Amp(b)    a:b     union
//	a.Pipe(b)   a b     intersection
//	a.Tilde()   #a      complement
package builder

// Package mcnp reads, edits and compares MCNP input decks.
//
// The deck model lives in package inp and the card model in package card.
// This package adds the operations that work on whole decks:
//
//	d, err := mcnp.ParseDeck(src)
//	cells, err := mcnp.Query(d, `family == "cell" && material == 1`)
//	d2, err := mcnp.Patch(d, []byte(`[{"op":"replace","path":"/title","value":"t2"}]`))
//	fmt.Print(mcnp.Diff(d, d2))
//
// Query expressions are evaluated with expr-lang/expr against one record
// per card; see Record for the names they can use. Patches are RFC 6902
// JSON patches applied to the JSON form of the deck written by package
// encode.
package mcnp

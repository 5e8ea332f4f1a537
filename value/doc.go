// Package value implements the typed lexemes that card payloads are made of.
//
// Every Value prints itself with String, and every Type parses values back
// from whitespace separated tokens with Consume. A Type is declared once per
// attribute of a card grammar and drives both directions, so a new card is a
// table row rather than a new parser.
//
// Scalars are Integer, Real, String, Designator, Zaid and Geometry. Composites
// are Tuple (homogeneous, optionally of Record elements), Series (reals with
// the deck's repeat shortcuts), Particles and Assignments.
//
// Real accepts the deck's exponent-less notation (1.5+3 is 1500) but rejects
// the repeat shortcuts 2r, 3i, 2m, j and ilog; those are only meaningful in a
// list and are handled by Series, which keeps them as written and expands them
// on request.
package value

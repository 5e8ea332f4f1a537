// Package geom implements the boolean region algebra of cell cards.
//
// A region is a tree of signed surface references combined with three
// operators. The deck syntax for them is:
//
//	intersection   adjacency      -1 2 -3
//	union          ':'            -1 : 2
//	complement     prefix '#'     #(-1 2)   #5
//
// Complement binds tightest, then intersection, then union. Parentheses in
// the source are kept as Group nodes so that printing a parsed region gives
// back its whitespace-normalized text:
//
//	e, _ := geom.Parse("-1  2 : ( 3 -4 )")
//	geom.Format(e) // "-1 2:(3 -4)"
//
// Regions built with Intersect, Union and Complement are parenthesized by
// Format only where the tree shape requires it.
//
// A complemented bare number (#5) is how decks refer to the complement of
// another cell; the leaf under such a Not is a cell number, not a surface.
package geom

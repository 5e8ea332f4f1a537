// Package diag defines the error taxonomy shared by every parsing and
// construction path.
//
// Errors fall in two categories. A Syntax error means no registered grammar
// accepted the shape of the text. A Semantics error means a grammar accepted
// the shape but an extracted value violates a domain constraint (a cell number
// out of range, a density given for a void cell, a duplicate card identity).
//
//	_, err := card.ParseSurface("zz 1 2 3")
//	if diag.CodeOf(err) == diag.SyntaxOption {
//	    ...
//	}
//
// Both categories are *Error values carrying the Code and the offending text.
// Use errors.As or the helpers CodeOf, IsSyntax and IsSemantics to inspect them.
package diag

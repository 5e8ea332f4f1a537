// Package token implements the lexical layer of the INP deck format.
//
// Preprocess normalizes one card or one block of text into the form the
// grammar matcher expects: case folded, tabs expanded, continuation lines
// joined, comments removed, whitespace collapsed. It is idempotent and never
// reorders the tokens that remain.
//
// Group splits the physical lines of a block into logical cards and comment
// lines while keeping comment text untouched, which is what the document
// assembler needs to re-emit comments in place.
//
// Wrap is the inverse of continuation joining: it breaks a logical line into
// physical lines of at most a given width using the " &\n     " form.
package token

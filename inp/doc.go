// Package inp assembles whole decks.
//
// A deck is an optional message block, a title line, then three blocks of
// cards (cells, surfaces and data), each ended by a blank line, and any
// free text after the data block. Parse partitions the source into these
// parts, then reads each block line by line: comment lines are kept as
// block comments, every other logical line is parsed as a card of the
// block's family.
//
// Comments belong to their block and are placed by card index: a comment
// with Index i comes after the first i cards of the block. Inline '$'
// comments are kept with Inline set and go back onto the end of the card
// they followed.
//
// Printing a deck and parsing the result gives a deck equal to the
// original, though the text itself is canonicalized (case, spacing,
// continuation lines).
package inp

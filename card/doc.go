// Package card implements the grammar dispatch engine and the card families
// built on it.
//
// Every option a card can carry is one row of a declarative grammar table: a
// keyword, whether it takes a numeric suffix and a particle designator, and
// an ordered list of typed attributes. Parse resolves free text to exactly
// one row of a family:
//
//  1. the text is preprocessed (see token.Preprocess);
//  2. the family's grammars are tried in order of descending keyword length,
//     so that "fmesh4" is never read as "fm";
//  3. the first grammar whose keyword pattern matches and whose attributes
//     all parse wins;
//  4. if none wins the error code is SYNTAX_OPTION;
//  5. a required attribute with nothing to parse is SEMANTICS_MISSING_FIELD;
//  6. the winner is built with NewOption, which checks domain constraints
//     independently of the match and reports SEMANTICS_* codes.
//
// Option.String is the inverse: keyword, suffix, designator and values.
//
// Cell, Surface, Data and Comment are the card families. Their constructors
// validate the same constraints their parsers do, so a Cell obtained either
// way satisfies the density rule (density present exactly when the material
// is not void) and carries no two options with the same identity.
//
// The grammar table is complete at package initialization and read-only
// afterwards; Default may be used from any number of goroutines.
package card

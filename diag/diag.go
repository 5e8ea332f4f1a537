package diag

import (
	"errors"
	"fmt"
	"strings"
)

type Code string

const (
	SyntaxOption   Code = "SYNTAX_OPTION"
	SyntaxInp      Code = "SYNTAX_INP"
	SyntaxCard     Code = "SYNTAX_CARD"
	SyntaxValue    Code = "SYNTAX_VALUE"
	SyntaxGeometry Code = "SYNTAX_GEOMETRY"

	SemanticsRange        Code = "SEMANTICS_RANGE"
	SemanticsMissingField Code = "SEMANTICS_MISSING_FIELD"
	SemanticsDuplicate    Code = "SEMANTICS_DUPLICATE"
	SemanticsDensity      Code = "SEMANTICS_DENSITY"
	SemanticsLength       Code = "SEMANTICS_LENGTH"
	SemanticsExclusive    Code = "SEMANTICS_EXCLUSIVE"
)

type Category int

const (
	Syntax Category = iota
	Semantics
)

func (c Category) String() string {
	switch c {
	case Syntax:
		return "syntax"
	case Semantics:
		return "semantics"
	default:
		return fmt.Sprintf("<category %d>", int(c))
	}
}

func (c Code) Category() Category {
	if strings.HasPrefix(string(c), "SEMANTICS_") {
		return Semantics
	}
	return Syntax
}

// Error is the one error type returned by parsing and construction.
type Error struct {
	Code Code
	// Text is the offending raw text or value.
	Text string
	Err  error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Code))
	if e.Text != "" {
		fmt.Fprintf(&sb, " %q", e.Text)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, text string, err error) *Error {
	return &Error{Code: code, Text: text, Err: err}
}

func Errorf(code Code, text string, format string, args ...any) *Error {
	return &Error{Code: code, Text: text, Err: fmt.Errorf(format, args...)}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if
// there is none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

func IsSyntax(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Code.Category() == Syntax
}

func IsSemantics(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Code.Category() == Semantics
}

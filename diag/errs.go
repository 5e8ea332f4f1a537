package diag

import "errors"

var (
	ErrNoMatch  = errors.New("no grammar matches")
	ErrArity    = errors.New("wrong number of values")
	ErrRange    = errors.New("value out of range")
	ErrLexeme   = errors.New("malformed lexeme")
	ErrShortcut = errors.New("repeat shortcut not allowed here")
	ErrEmpty    = errors.New("empty")
)

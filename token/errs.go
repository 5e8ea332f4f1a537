package token

import (
	"errors"
	"fmt"
)

var (
	ErrDanglingContinuation = errors.New("continuation with no card to continue")
)

type LineErr struct {
	Err error
	Pos Pos
}

func (e *LineErr) Unwrap() error {
	return e.Err
}

func (e *LineErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func NewLineErr(e error, p Pos) *LineErr {
	return &LineErr{Err: e, Pos: p}
}

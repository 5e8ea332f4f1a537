package inp

import "errors"

var (
	ErrNoTitle      = errors.New("deck has no title")
	ErrUnterminated = errors.New("block not ended by a blank line")
)

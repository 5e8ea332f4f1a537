package inp

import (
	"log/slog"

	"github.com/mcnp-tools/go-mcnp/card"
)

type ParseOption func(*parseOpts)

type parseOpts struct {
	log      *slog.Logger
	reg      *card.Registry
	comments bool
}

// WithLogger logs block and card dispatch decisions at debug level.
func WithLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.log = l }
}

// KeepComments controls whether comments are kept in the parsed deck. The
// default is true.
func KeepComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// WithRegistry parses cards with r instead of card.Default.
func WithRegistry(r *card.Registry) ParseOption {
	return func(o *parseOpts) { o.reg = r }
}

type EncodeOption func(*encState)

type encState struct {
	width    int
	comments bool
	paint    func(Class, string) string
}

// Width sets the column at which cards are wrapped.
func Width(n int) EncodeOption {
	return func(es *encState) { es.width = n }
}

// EncodeComments controls whether comments are written. The default is
// true.
func EncodeComments(v bool) EncodeOption {
	return func(es *encState) { es.comments = v }
}

// Paint sets a function applied to every piece of output text according
// to its class, such as a terminal colorizer.
func Paint(f func(Class, string) string) EncodeOption {
	return func(es *encState) { es.paint = f }
}

// Class is the role of a piece of printed text.
type Class int

const (
	MessageClass Class = iota
	TitleClass
	KeywordClass
	NumberClass
	OperatorClass
	CommentClass
	TrailingClass
)

package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/mcnp-tools/go-mcnp/builder"
	"github.com/mcnp-tools/go-mcnp/format"
	"github.com/mcnp-tools/go-mcnp/inp"
	"github.com/mcnp-tools/go-mcnp/token"
)

func Encode(d *inp.Deck, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{width: token.DefaultWidth, comments: true}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.INPFormat:
		iopts := []inp.EncodeOption{inp.Width(es.width), inp.EncodeComments(es.comments)}
		if es.Color != nil {
			iopts = append(iopts, inp.Paint(es.Color))
		}
		return d.Encode(w, iopts...)
	case format.JSONFormat:
		b := view(d, es.comments)
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case format.YAMLFormat:
		data, err := yaml.Marshal(view(d, es.comments))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, int(es.format))
	}
}

func view(d *inp.Deck, comments bool) *builder.Deck {
	b := builder.UnbuildDeck(d)
	if !comments {
		b.Comments = builder.Comments{}
	}
	return b
}

// Decode reads a deck in format f. JSON and YAML input is the builder form
// written by Encode.
func Decode(data []byte, f format.Format, opts ...inp.ParseOption) (*inp.Deck, error) {
	switch f {
	case format.INPFormat:
		return inp.Parse(string(data), opts...)
	case format.JSONFormat, format.YAMLFormat:
		b := &builder.Deck{}
		if err := yaml.Unmarshal(data, b); err != nil {
			return nil, fmt.Errorf("could not decode %s deck: %w", f, err)
		}
		return b.Build()
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, int(f))
	}
}

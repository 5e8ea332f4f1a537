package encode

import (
	"github.com/mcnp-tools/go-mcnp/format"
	"github.com/mcnp-tools/go-mcnp/inp"
)

type EncodeOption func(*EncState)

type EncState struct {
	format   format.Format
	width    int
	comments bool
	Color    func(inp.Class, string) string
}

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Width sets the INP wrapping column.
func Width(n int) EncodeOption {
	return func(es *EncState) { es.width = n }
}

func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

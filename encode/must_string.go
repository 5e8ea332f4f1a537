package encode

import (
	"bytes"

	"github.com/mcnp-tools/go-mcnp/inp"
)

// MustString encodes d, panicking on error.
func MustString(d *inp.Deck, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(d, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

package mcnp

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/mcnp-tools/go-mcnp/builder"
	"github.com/mcnp-tools/go-mcnp/inp"
)

// Patch applies an RFC 6902 JSON patch to the JSON form of d and builds the
// result. d is not modified. Paths address the builder form, so
// "/cells/0/material" or "/data/-".
func Patch(d *inp.Deck, patch []byte) (*inp.Deck, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	doc, err := json.Marshal(builder.UnbuildDeck(d))
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	b := &builder.Deck{}
	if err := json.Unmarshal(out, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return b.Build()
}

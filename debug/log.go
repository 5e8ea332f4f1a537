package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mcnp-tools/go-mcnp/builder"
	"github.com/mcnp-tools/go-mcnp/inp"
)

var out io.Writer = os.Stderr

// Logf writes to stderr, rendering decks and JSON-like values in args as
// indented JSON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		switch x := a.(type) {
		case *inp.Deck:
			args[i] = indent(builder.UnbuildDeck(x))
		case map[string]any, []any, json.Number:
			args[i] = indent(a)
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func indent(v any) string {
	d, err := json.MarshalIndent(v, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}

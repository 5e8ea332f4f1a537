package debug

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
)

type debug struct {
	Dispatch bool `env:"MCNP_DEBUG_DISPATCH"`
	Deck     bool `env:"MCNP_DEBUG_DECK"`
}

var d *debug

func init() {
	d = &debug{}
	if err := env.Parse(d); err != nil {
		fmt.Fprintf(os.Stderr, "debug: %v\n", err)
	}
}

// Dispatch reports whether card dispatch decisions should be logged.
func Dispatch() bool {
	return d.Dispatch
}

// Deck reports whether parsed decks should be dumped.
func Deck() bool {
	return d.Deck
}

// Logger returns a debug level logger writing to stderr.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

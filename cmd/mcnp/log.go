package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mcnp-tools/go-mcnp/debug"
)

var theLog = newLogger(os.Stderr)

// newLogger returns the logger for deck diagnostics. Lines carry no time
// so that runs over the same decks log the same text.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug.Dispatch() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logAttr,
	}))
}

func logAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		return slog.Attr{}
	case "code":
		// errors outside the deck taxonomy have no code
		if a.Value.String() == "" {
			return slog.Attr{}
		}
	}
	return a
}

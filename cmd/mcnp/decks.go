package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mcnp-tools/go-mcnp/debug"
	"github.com/mcnp-tools/go-mcnp/encode"
	"github.com/mcnp-tools/go-mcnp/inp"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getDeck reads and decodes the deck at path, "-" being stdin.
func getDeck(cfg *MainConfig, cc *cli.Context, path string) (*inp.Deck, error) {
	data, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	opts := cfg.parseOpts()
	if debug.Dispatch() {
		opts = append(opts, inp.WithLogger(debug.Logger()))
	}
	d, err := encode.Decode(data, cfg.inFormat(path), opts...)
	if err != nil {
		return nil, err
	}
	if debug.Deck() {
		debug.Logf("%s: %s\n", path, d)
	}
	return d, nil
}

func files(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/mcnp-tools/go-mcnp/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	paths := files(args)
	for i, path := range paths {
		d, err := getDeck(cfg.MainConfig, cc, path)
		if err != nil {
			return fail(path, err)
		}
		if err := encode.Encode(d, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fail(path, fmt.Errorf("error encoding: %w", err))
		}
		if i < len(paths)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	mcnp "github.com/mcnp-tools/go-mcnp"
	"github.com/mcnp-tools/go-mcnp/encode"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a JSON patch and a deck to which to apply it", cli.ErrUsage)
	}
	p := []byte(args[0])
	if !cfg.String {
		p, err = readFile(cc, args[0])
		if err != nil {
			return fail(args[0], err)
		}
	}
	target, err := getDeck(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fail(args[1], err)
	}
	res, err := mcnp.Patch(target, p)
	if err != nil {
		return fail(args[1], fmt.Errorf("error patching: %w", err))
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fail(args[1], fmt.Errorf("error encoding result: %w", err))
	}
	return nil
}

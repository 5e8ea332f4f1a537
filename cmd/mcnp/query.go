package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	mcnp "github.com/mcnp-tools/go-mcnp"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	prg, err := mcnp.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, path := range files(args[1:]) {
		d, err := getDeck(cfg.MainConfig, cc, path)
		if err != nil {
			return fail(path, err)
		}
		res, err := mcnp.Select(d, prg)
		if err != nil {
			return fail(path, err)
		}
		if cfg.Count {
			fmt.Fprintf(cc.Out, "%s: %d\n", path, len(res))
			continue
		}
		for _, c := range res {
			fmt.Fprintln(cc.Out, c.String())
		}
	}
	return nil
}

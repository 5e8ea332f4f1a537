package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

// check parses every file and exits with the code of the worst error.
// Syntax errors rank below semantic errors, which rank below I/O errors.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	worst := 0
	for _, path := range files(args) {
		d, err := getDeck(cfg.MainConfig, cc, path)
		if err != nil {
			if !cfg.Quiet {
				theLog.Error(err.Error(), "file", path)
			}
			worst = max(worst, exitCode(err))
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok, %d cells, %d surfaces, %d data cards\n",
				path, len(d.Cells.Cards), len(d.Surfaces.Cards), len(d.Data.Cards))
		}
	}
	if worst != 0 {
		return cli.ExitCodeErr(worst)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	mcnp "github.com/mcnp-tools/go-mcnp"
)

// diff exits 1 when the decks differ.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDeck(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fail(args[0], err)
	}
	b, err := getDeck(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fail(args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	d := mcnp.Diff(a, b)
	if d == "" {
		return nil
	}
	writeDiff(cc.Out, d, cfg.useColor(cc.Out))
	return cli.ExitCodeErr(1)
}

func writeDiff(w io.Writer, d string, colored bool) {
	del := color.New(color.FgRed).SprintFunc()
	ins := color.New(color.FgGreen).SprintFunc()
	for _, ln := range strings.SplitAfter(d, "\n") {
		switch {
		case !colored || ln == "":
		case strings.HasPrefix(ln, "- "):
			ln = del(strings.TrimSuffix(ln, "\n")) + "\n"
		case strings.HasPrefix(ln, "+ "):
			ln = ins(strings.TrimSuffix(ln, "\n")) + "\n"
		}
		io.WriteString(w, ln)
	}
}

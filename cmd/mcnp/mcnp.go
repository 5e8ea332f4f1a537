package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mcnp-tools/go-mcnp/diag"
)

func mcnpMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if !atMostOne(cfg.I, cfg.J, cfg.Y) {
		return fmt.Errorf("%w: must specify at most one of -i[np] -j[son] -y[aml]", cli.ErrUsage)
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -nocolor are exclusive", cli.ErrUsage)
	}
	cfg.Env, err = loadEnv()
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// atMostOne reports whether no more than one of flags is set.
func atMostOne(flags ...bool) bool {
	set := false
	for _, f := range flags {
		if f && set {
			return false
		}
		set = set || f
	}
	return true
}

// outOpt sends command output to the file named by -o; "-" keeps stdout.
func (cfg *MainConfig) outOpt(cc *cli.Context, path string) (any, error) {
	cfg.Out = path
	if path == "-" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: output: %w", cli.ErrUsage, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// Exit codes for deck errors. 1 is left to usage errors and to diff.
const (
	exitSyntax    = 2
	exitSemantics = 3
	exitIO        = 4
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case diag.IsSyntax(err):
		return exitSyntax
	case diag.IsSemantics(err):
		return exitSemantics
	default:
		return exitIO
	}
}

// fail logs err against file and turns it into an exit code.
func fail(file string, err error) error {
	theLog.Error(err.Error(), "file", file, "code", string(diag.CodeOf(err)))
	return cli.ExitCodeErr(exitCode(err))
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/mcnp-tools/go-mcnp/encode"
	"github.com/mcnp-tools/go-mcnp/format"
	"github.com/mcnp-tools/go-mcnp/inp"
	"github.com/mcnp-tools/go-mcnp/token"
)

// EnvConfig holds the settings taken from the environment. Flags override
// them.
type EnvConfig struct {
	Width int   `env:"MCNP_WIDTH" envDefault:"80"`
	Color *bool `env:"MCNP_COLOR"`
}

func loadEnv() (*EnvConfig, error) {
	cfg := &EnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.Width < token.ContinuationIndent+10 {
		return nil, fmt.Errorf("MCNP_WIDTH %d is too narrow", cfg.Width)
	}
	return cfg, nil
}

type MainConfig struct {
	Color      bool `cli:"name=color desc='encode with color'"`
	NoColor    bool `cli:"name=nocolor desc='never encode with color'"`
	Width      int  `cli:"name=w aliases=width desc='wrap cards at this many columns'"`
	NoComments bool `cli:"name=nc aliases=nocomments desc='drop comments'"`

	I bool `cli:"name=i aliases=inp desc='do i/o in inp'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Env *EnvConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.I:
		return format.INPFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.INPFormat, false
}

// inFormat is the format to read path in: -I, then -i/-j/-y, then the
// file suffix.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) parseOpts() []inp.ParseOption {
	return []inp.ParseOption{inp.KeepComments(!cfg.NoComments)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f, _ := cfg.flagFormat()
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	width := cfg.Width
	if width == 0 {
		width = cfg.Env.Width
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.Width(width),
		encode.EncodeComments(!cfg.NoComments),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	case cfg.Env.Color != nil:
		return *cfg.Env.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q aliases=quiet desc='only set the exit code'"`
	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=write desc='write result to the source file instead of stdout'"`
	List  bool `cli:"name=l aliases=list desc='list files whose formatting differs'"`
	Fmt   *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Count bool `cli:"name=c aliases=count desc='print the number of matching cards'"`
	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	Patch  *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

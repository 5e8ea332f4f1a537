package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mcnp-tools/go-mcnp/encode"
	"github.com/mcnp-tools/go-mcnp/format"
)

func fmtDecks(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -write requires file arguments", cli.ErrUsage)
	}
	for _, path := range files(args) {
		if err := fmtDeck(cfg, cc, path); err != nil {
			return fail(path, err)
		}
	}
	return nil
}

func fmtDeck(cfg *FmtConfig, cc *cli.Context, path string) error {
	src, err := readFile(cc, path)
	if err != nil {
		return err
	}
	d, err := encode.Decode(src, cfg.inFormat(path), cfg.parseOpts()...)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	opts := append(cfg.encOpts(&buf), encode.EncodeFormat(format.INPFormat), encode.EncodeColors(nil))
	if err := encode.Encode(d, &buf, opts...); err != nil {
		return err
	}
	switch {
	case cfg.List:
		if !bytes.Equal(src, buf.Bytes()) {
			fmt.Fprintln(cc.Out, path)
		}
		return nil
	case cfg.Write:
		if bytes.Equal(src, buf.Bytes()) {
			return nil
		}
		return os.WriteFile(path, buf.Bytes(), 0644)
	}
	_, err = cc.Out.Write(buf.Bytes())
	return err
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"

	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/format"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{diag.Errorf(diag.SyntaxCard, "x", "bad"), exitSyntax},
		{fmt.Errorf("cells block: %w", diag.Errorf(diag.SemanticsDensity, "x", "bad")), exitSemantics},
		{errors.New("open x: no such file"), exitIO},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MCNP_WIDTH", "100")
	t.Setenv("MCNP_COLOR", "false")
	cfg, err := loadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 100 || cfg.Color == nil || *cfg.Color {
		t.Errorf("got width %d color %v", cfg.Width, cfg.Color)
	}
	t.Setenv("MCNP_WIDTH", "3")
	if _, err := loadEnv(); err == nil {
		t.Error("narrow width accepted")
	}
}

func TestInFormat(t *testing.T) {
	cfg := &MainConfig{}
	if f := cfg.inFormat("deck.json"); f != format.JSONFormat {
		t.Errorf("suffix: got %s", f)
	}
	cfg.Y = true
	if f := cfg.inFormat("deck.json"); f != format.YAMLFormat {
		t.Errorf("flag: got %s", f)
	}
	i := format.INPFormat
	cfg.InFormat = &i
	if f := cfg.inFormat("deck.json"); f != format.INPFormat {
		t.Errorf("-I: got %s", f)
	}
}

func TestUseColor(t *testing.T) {
	on := true
	cfg := &MainConfig{Env: &EnvConfig{Color: &on}}
	if !cfg.useColor(&bytes.Buffer{}) {
		t.Error("MCNP_COLOR ignored")
	}
	cfg.NoColor = true
	if cfg.useColor(&bytes.Buffer{}) {
		t.Error("-nocolor ignored")
	}
	cfg = &MainConfig{Env: &EnvConfig{}}
	if cfg.useColor(&bytes.Buffer{}) {
		t.Error("color on a buffer")
	}
}

func TestWriteDiff(t *testing.T) {
	var buf bytes.Buffer
	writeDiff(&buf, "  a\n- b\n+ c\n", false)
	if buf.String() != "  a\n- b\n+ c\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf)
	log.Error("bad card", "file", "a.inp", "code", string(diag.SyntaxCard))
	log.Error("no such file", "file", "b.inp", "code", "")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		`level=ERROR msg="bad card" file=a.inp code=SYNTAX_CARD`,
		`level=ERROR msg="no such file" file=b.inp`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %q", buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("got %q, want %q", lines[i], want[i])
		}
	}
}

func TestAtMostOne(t *testing.T) {
	tests := []struct {
		flags []bool
		want  bool
	}{
		{nil, true},
		{[]bool{false, false, false}, true},
		{[]bool{false, true, false}, true},
		{[]bool{true, false, true}, false},
		{[]bool{true, true, true}, false},
	}
	for _, tt := range tests {
		if got := atMostOne(tt.flags...); got != tt.want {
			t.Errorf("atMostOne(%v) = %v", tt.flags, got)
		}
	}
}

func TestOutOpt(t *testing.T) {
	cfg := &MainConfig{}
	cc := &cli.Context{}
	if _, err := cfg.outOpt(cc, "-"); err != nil || cc.Out != nil {
		t.Fatalf("stdout: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.inp")
	if _, err := cfg.outOpt(cc, path); err != nil {
		t.Fatal(err)
	}
	if _, err := cc.Out.Write([]byte("t\n")); err != nil {
		t.Fatal(err)
	}
	if err := cfg.CloseOut(); err != nil {
		t.Fatal(err)
	}
	if d, _ := os.ReadFile(path); string(d) != "t\n" {
		t.Errorf("got %q", d)
	}
	_, err := cfg.outOpt(cc, filepath.Join(t.TempDir(), "missing", "out.inp"))
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}

package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"

	"github.com/mcnp-tools/go-mcnp/inp"
)

func TestEnv(t *testing.T) {
	t.Setenv("MCNP_DEBUG_DISPATCH", "true")
	t.Setenv("MCNP_DEBUG_DECK", "0")
	x := &debug{}
	if err := env.Parse(x); err != nil {
		t.Fatal(err)
	}
	if !x.Dispatch || x.Deck {
		t.Errorf("got %+v", x)
	}
	t.Setenv("MCNP_DEBUG_DECK", "maybe")
	if err := env.Parse(&debug{}); err == nil {
		t.Error("bad bool accepted")
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	old := out
	out = &buf
	defer func() { out = old }()

	d, err := inp.Parse("Logged deck\n1 0 -1\n\n1 px 0\n\n")
	if err != nil {
		t.Fatal(err)
	}
	Logf("deck %s, n=%d, m=%s\n", d, 3, map[string]any{"k": 1})
	got := buf.String()
	for _, want := range []string{`"title": "Logged deck"`, `"region": "-1"`, "n=3", `"k": 1`} {
		if !strings.Contains(got, want) {
			t.Errorf("%q not in\n%s", want, got)
		}
	}
}

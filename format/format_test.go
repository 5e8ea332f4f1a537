package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		g, err := ParseFormat(f.String())
		if err != nil || g != f {
			t.Errorf("%s: got %v, %v", f, g, err)
		}
		var u Format
		if err := u.UnmarshalText([]byte(f.String()[:1])); err != nil || u != f {
			t.Errorf("%s: short name gave %v, %v", f, u, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"deck.inp":   INPFormat,
		"deck":       INPFormat,
		"inp":        INPFormat,
		"deck.json":  JSONFormat,
		"deck.yaml":  YAMLFormat,
		"a/deck.yml": YAMLFormat,
	}
	for p, want := range tests {
		if got := FromPath(p); got != want {
			t.Errorf("%s: got %s, want %s", p, got, want)
		}
	}
}

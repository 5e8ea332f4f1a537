package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	INPFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"i":    INPFormat,
		"inp":  INPFormat,
		"y":    YAMLFormat,
		"yml":  YAMLFormat,
		"yaml": YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case INPFormat:
		return []byte("inp"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case INPFormat:
		return ".inp"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// FromPath guesses the format of a file from its extension, defaulting to
// INP.
func FromPath(p string) Format {
	for _, f := range AllFormats() {
		if n := len(f.Suffix()); len(p) > n && p[len(p)-n:] == f.Suffix() {
			return f
		}
	}
	if n := len(".yml"); len(p) > n && p[len(p)-n:] == ".yml" {
		return YAMLFormat
	}
	return INPFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{INPFormat, YAMLFormat, JSONFormat}
}

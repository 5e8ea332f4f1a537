package value

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mcnp-tools/go-mcnp/diag"
)

var (
	// 1.5+3, -2-4, .5+2: a mantissa followed directly by a signed exponent.
	bareExp = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+))([+-]\d+)$`)
	// a leading character that can start a number.
	numStart = regexp.MustCompile(`^[+-]?[.\d]`)
)

// ParseReal parses a real in any of the deck's notations. It does not
// accept repeat shortcuts.
func ParseReal(s string) (float64, error) {
	if !numStart.MatchString(s) {
		return 0, lexErr(s, "real")
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	t := strings.Replace(s, "d", "e", 1)
	if m := bareExp.FindStringSubmatch(t); m != nil {
		t = m[1] + "e" + m[2]
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		if isShortcut(s) {
			return 0, diag.New(diag.SyntaxValue, s, diag.ErrShortcut)
		}
		return 0, lexErr(s, "real")
	}
	return f, nil
}

// ParseInteger parses an integer, also accepting reals with an integral
// value such as 1e6.
func ParseInteger(s string) (int64, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := ParseReal(s)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, lexErr(s, "integer")
	}
	return int64(f), nil
}

func lexErr(s, what string) error {
	return diag.New(diag.SyntaxValue, s, fmt.Errorf("%w: not a %s", diag.ErrLexeme, what))
}

func rangeErr(s string, format string, args ...any) error {
	return diag.New(diag.SemanticsRange, s, fmt.Errorf("%w: "+format, append([]any{diag.ErrRange}, args...)...))
}

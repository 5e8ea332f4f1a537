package card

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/value"
)

var assignSpace = regexp.MustCompile(`\s*=\s*`)

// ParseOption resolves text to one option of family f using the Default
// registry.
func ParseOption(f Family, text string) (Option, error) {
	return Default.ParseOption(f, text)
}

func (r *Registry) ParseOption(f Family, text string) (Option, error) {
	s := logical(text)
	var last error
	for _, g := range r.byFamily[f] {
		m := g.pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		o, err := g.match(m)
		if err == nil {
			r.debug("dispatch", slog.String("family", f.String()), slog.String("keyword", g.Keyword), slog.String("text", s))
			return o, nil
		}
		if diag.IsSemantics(err) {
			r.debug("dispatch rejected", slog.String("keyword", g.Keyword), slog.String("text", s), slog.Any("err", err))
			return Option{}, err
		}
		r.debug("dispatch candidate failed", slog.String("keyword", g.Keyword), slog.Any("err", err))
		last = err
	}
	if last == nil {
		last = diag.ErrNoMatch
	}
	return Option{}, diag.New(diag.SyntaxOption, s, fmt.Errorf("no %s grammar: %w", f, last))
}

// match builds an option from a pattern match: m[1] is the suffix, m[2] the
// designator and m[3] the values.
func (g *Grammar) match(m []string) (Option, error) {
	suffix := NoSuffix
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Option{}, diag.New(diag.SyntaxValue, m[1], err)
		}
		suffix = n
	}
	var d value.Designator
	if m[2] != "" {
		var err error
		if d, err = value.ParseDesignator(m[2]); err != nil {
			return Option{}, err
		}
	}
	toks := strings.Fields(assignSpace.ReplaceAllString(m[3], "="))
	vals := make([]value.Value, len(g.Attrs))
	for i, a := range g.Attrs {
		_, wantsAssign := a.Type.(value.AssignmentsType)
		if len(toks) == 0 || (!wantsAssign && strings.Contains(toks[0], "=")) {
			if a.Optional {
				continue
			}
			return Option{}, diag.Errorf(diag.SemanticsMissingField, g.Keyword+m[1]+m[2], "%s: %s is required", g.Keyword, a.Name)
		}
		v, n, err := a.Type.Consume(toks)
		if err != nil {
			if a.Optional && diag.IsSyntax(err) {
				continue
			}
			return Option{}, err
		}
		vals[i] = v
		toks = toks[n:]
	}
	if len(toks) > 0 {
		return Option{}, diag.New(diag.SyntaxValue, strings.Join(toks, " "),
			fmt.Errorf("%w: %d unexpected trailing values for %s", diag.ErrArity, len(toks), g.Keyword))
	}
	return newOption(g, suffix, d, vals)
}

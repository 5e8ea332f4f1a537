package card

import (
	"cmp"
	"fmt"
	"log/slog"
	"regexp"
	"slices"

	"github.com/mcnp-tools/go-mcnp/value"
)

type Family int

const (
	CellFamily Family = iota
	SurfaceFamily
	DataFamily
	CommentFamily
)

func (f Family) String() string {
	switch f {
	case CellFamily:
		return "cell"
	case SurfaceFamily:
		return "surface"
	case DataFamily:
		return "data"
	case CommentFamily:
		return "comment"
	default:
		return fmt.Sprintf("<family %d>", int(f))
	}
}

// Rule says whether a keyword takes a numeric suffix or a designator.
type Rule int

const (
	Never Rule = iota
	Optional
	Required
)

type Attr struct {
	Name     string
	Type     value.Type
	Optional bool
}

type Grammar struct {
	Kind       Kind
	Family     Family
	Keyword    string
	Suffix     Rule
	Designator Rule
	Attrs      []Attr
	// ZeroDefault is set when the bare keyword is the suffix 0 card.
	ZeroDefault bool
	// Check validates domain constraints of a built option.
	Check func(Option) error

	pattern *regexp.Regexp
}

// Sep is what separates the keyword from the values: '=' on cell cards and
// a blank elsewhere.
func (g *Grammar) Sep() string {
	if g.Family == CellFamily {
		return "="
	}
	return " "
}

func (g *Grammar) compile() error {
	if g.Keyword == "" {
		return fmt.Errorf("grammar %d has no keyword", g.Kind)
	}
	pat := "^" + regexp.QuoteMeta(g.Keyword)
	switch g.Suffix {
	case Never:
		pat += `()`
	case Optional:
		pat += `(\d*)`
	case Required:
		pat += `(\d+)`
	}
	switch g.Designator {
	case Never:
		pat += `()`
	case Optional:
		pat += `((?::[^\s=]+)?)`
	case Required:
		pat += `(:[^\s=]+)`
	}
	if g.Family == CellFamily {
		pat += `(?:\s*=\s*|\s+|$)`
	} else {
		pat += `(?:\s+|$)`
	}
	pat += `(.*)$`
	re, err := regexp.Compile(pat)
	if err != nil {
		return fmt.Errorf("grammar %q: %w", g.Keyword, err)
	}
	g.pattern = re
	return nil
}

var table [numKinds]Grammar

func init() {
	seen := make([]bool, numKinds)
	for _, rows := range [][]Grammar{cellGrammars, surfaceGrammars, dataGrammars} {
		for _, g := range rows {
			if g.Kind < 0 || g.Kind >= numKinds {
				panic(fmt.Sprintf("grammar %q has invalid kind %d", g.Keyword, g.Kind))
			}
			if seen[g.Kind] {
				panic(fmt.Sprintf("kind %d (%q) registered twice", g.Kind, g.Keyword))
			}
			seen[g.Kind] = true
			if err := g.compile(); err != nil {
				panic(err)
			}
			table[g.Kind] = g
		}
	}
	for k, ok := range seen {
		if !ok {
			panic(fmt.Sprintf("kind %d has no grammar", k))
		}
	}
	Default = newRegistry(table[:])
}

// Registry holds the grammars of each family sorted for matching.
type Registry struct {
	byFamily map[Family][]*Grammar
	log      *slog.Logger
}

// Default is the registry of every grammar in the table.
var Default *Registry

// NewRegistry builds a registry from gs. Grammars are compiled on a copy; the
// Kind of each is taken as given and must be unique within gs.
func NewRegistry(gs ...Grammar) (*Registry, error) {
	cp := make([]Grammar, len(gs))
	kinds := map[Kind]bool{}
	for i, g := range gs {
		if kinds[g.Kind] {
			return nil, fmt.Errorf("kind %d registered twice", g.Kind)
		}
		kinds[g.Kind] = true
		if err := g.compile(); err != nil {
			return nil, err
		}
		cp[i] = g
	}
	return newRegistry(cp), nil
}

func newRegistry(gs []Grammar) *Registry {
	r := &Registry{byFamily: map[Family][]*Grammar{}}
	for i := range gs {
		g := &gs[i]
		r.byFamily[g.Family] = append(r.byFamily[g.Family], g)
	}
	for _, list := range r.byFamily {
		slices.SortFunc(list, func(a, b *Grammar) int {
			if c := cmp.Compare(len(b.Keyword), len(a.Keyword)); c != 0 {
				return c
			}
			return cmp.Compare(a.Keyword, b.Keyword)
		})
	}
	return r
}

// WithLogger returns a registry sharing r's grammars that logs dispatch
// decisions to l at debug level.
func (r *Registry) WithLogger(l *slog.Logger) *Registry {
	if l != nil {
		l = l.With(slog.String("component", "card"))
	}
	return &Registry{byFamily: r.byFamily, log: l}
}

// Candidates returns the grammars of f in matching order.
func (r *Registry) Candidates(f Family) []*Grammar {
	return slices.Clone(r.byFamily[f])
}

func (r *Registry) debug(msg string, args ...any) {
	if r.log != nil {
		r.log.Debug(msg, args...)
	}
}

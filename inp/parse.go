package inp

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcnp-tools/go-mcnp/card"
	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/token"
)

type parser struct {
	parseOpts
	doc   *token.PosDoc
	lines []string
}

// Parse reads a whole deck. It fails on the first card that does not parse;
// nothing is skipped.
func Parse(src string, opts ...ParseOption) (*Deck, error) {
	p := &parser{parseOpts: parseOpts{comments: true}}
	for _, o := range opts {
		o(&p.parseOpts)
	}
	if p.reg == nil {
		p.reg = card.Default
	}
	if p.log != nil {
		p.log = p.log.With(slog.String("component", "inp"))
		p.reg = p.reg.WithLogger(p.log)
	}
	src = strings.ReplaceAll(src, "\r\n", "\n")
	p.doc = token.NewPosDoc(src)
	p.lines = token.SplitLines(src)
	return p.deck()
}

func (p *parser) debug(msg string, args ...any) {
	if p.log != nil {
		p.log.Debug(msg, args...)
	}
}

func isMessage(ln string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimLeft(ln, " ")), "message:")
}

// upTo returns the index of the first blank line at or after i, or
// len(p.lines).
func (p *parser) upTo(i int) int {
	for ; i < len(p.lines); i++ {
		if token.IsBlank(p.lines[i]) {
			return i
		}
	}
	return i
}

func (p *parser) deck() (*Deck, error) {
	d := &Deck{}
	i := 0
	if len(p.lines) > 0 && isMessage(p.lines[0]) {
		j := p.upTo(0)
		if j == len(p.lines) {
			return nil, diag.New(diag.SyntaxInp, p.lines[0], fmt.Errorf("message: %w", ErrUnterminated))
		}
		msg := strings.Join(p.lines[:j], " ")
		msg = msg[strings.Index(strings.ToLower(msg), "message:")+len("message:"):]
		d.Message = strings.Join(strings.Fields(msg), " ")
		i = j + 1
	}
	if i >= len(p.lines) {
		return nil, diag.New(diag.SyntaxInp, "", ErrNoTitle)
	}
	d.Title = strings.TrimRight(p.lines[i], " ")
	if len(d.Title) >= MaxTitle {
		return nil, diag.Errorf(diag.SemanticsLength, d.Title, "%w: title is %d characters, must be under %d", diag.ErrRange, len(d.Title), MaxTitle)
	}
	i++
	for b, blk := range d.Blocks() {
		j := p.upTo(i)
		if j == len(p.lines) && b < 2 {
			return nil, diag.New(diag.SyntaxInp, blockNames[b], fmt.Errorf("%s: %w", blockNames[b], ErrUnterminated))
		}
		var err error
		if *blk, err = p.block(b, i, j); err != nil {
			return nil, err
		}
		i = j + 1
	}
	if i < len(p.lines) {
		d.Trailing = strings.Trim(strings.Join(p.lines[i:], "\n"), "\n")
		if token.IsBlank(d.Trailing) {
			d.Trailing = ""
		}
	}
	return d, nil
}

// block parses p.lines[start:end] as block b.
func (p *parser) block(b, start, end int) (Block, error) {
	var (
		blk     Block
		f       = blockFamilies[b]
		name    = blockNames[b]
		seen    = card.KeySet{}
		defined = map[card.Key]int{}
	)
	for _, ln := range token.Group(p.lines[start:end]) {
		pos := p.doc.Pos(p.doc.LineOffset(start + ln.Index))
		if ln.Comment {
			cm, err := card.ParseComment(p.lines[start+ln.Index])
			if err != nil {
				return Block{}, blockErr(name, pos, err)
			}
			p.comment(&blk, cm.Text(), false)
			continue
		}
		if ln.Text == "" {
			// a line holding only a '$' comment
			for _, c := range ln.Inline {
				p.comment(&blk, c, false)
			}
			continue
		}
		if ln.Dangling {
			err := diag.New(diag.SyntaxCard, ln.Text, token.ErrDanglingContinuation)
			return Block{}, blockErr(name, pos, err)
		}
		c, err := p.reg.Parse(f, ln.Text)
		if err != nil {
			return Block{}, blockErr(name, pos, err)
		}
		k := c.Key()
		if prev, ok := seen.Add(k); !ok {
			err := diag.Errorf(diag.SemanticsDuplicate, ln.Text, "%s %s already defined as %s on line %d", name, k, prev, defined[prev])
			return Block{}, blockErr(name, pos, err)
		}
		defined[k] = pos.Line() + 1
		blk.Cards = append(blk.Cards, c)
		if len(ln.Inline) > 0 {
			p.comment(&blk, strings.Join(ln.Inline, " $ "), true)
		}
	}
	p.debug("block", slog.String("block", name), slog.Int("cards", len(blk.Cards)), slog.Int("comments", len(blk.Comments)))
	return blk, nil
}

func (p *parser) comment(blk *Block, text string, inline bool) {
	if !p.comments {
		return
	}
	blk.Comments = append(blk.Comments, Comment{Index: len(blk.Cards), Text: text, Inline: inline})
}

func blockErr(name string, pos token.Pos, err error) error {
	return fmt.Errorf("%s block: %w", name, token.NewLineErr(err, pos))
}

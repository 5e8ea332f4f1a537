package inp

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/mcnp-tools/go-mcnp/card"
	"github.com/mcnp-tools/go-mcnp/token"
)

func (d *Deck) String() string {
	var sb strings.Builder
	d.Encode(&sb)
	return sb.String()
}

// Encode writes d as deck text. Blocks are ended by a blank line and cards
// are wrapped with continuation lines.
func (d *Deck) Encode(w io.Writer, opts ...EncodeOption) error {
	es := &encState{width: token.DefaultWidth, comments: true}
	for _, o := range opts {
		o(es)
	}
	if es.paint == nil {
		es.paint = func(_ Class, s string) string { return s }
	}
	for _, blk := range d.Blocks() {
		for _, c := range blk.Comments {
			if _, err := card.NewComment(c.Text); err != nil {
				return err
			}
		}
	}
	bw := bufio.NewWriter(w)
	if d.Message != "" {
		bw.WriteString(es.paint(MessageClass, "message: "+d.Message))
		bw.WriteString("\n\n")
	}
	bw.WriteString(es.paint(TitleClass, d.Title))
	bw.WriteByte('\n')
	for b, blk := range d.Blocks() {
		es.block(bw, blk)
		if b < 2 || d.Trailing != "" {
			bw.WriteByte('\n')
		}
	}
	if d.Trailing != "" {
		bw.WriteString(es.paint(TrailingClass, d.Trailing))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (es *encState) block(w *bufio.Writer, blk *Block) {
	full := map[int][]string{}
	inline := map[int][]string{}
	if es.comments {
		for _, c := range blk.Comments {
			i := max(0, min(c.Index, len(blk.Cards)))
			if c.Inline && i > 0 {
				inline[i] = append(inline[i], c.Text)
			} else {
				full[i] = append(full[i], c.Text)
			}
		}
	}
	comments := func(i int) {
		for _, t := range full[i] {
			cm, _ := card.NewComment(t)
			w.WriteString(es.paint(CommentClass, cm.Line()))
			w.WriteByte('\n')
		}
	}
	for i, c := range blk.Cards {
		comments(i)
		wrapped := token.Wrap(c.Line(), es.width)
		w.WriteString(es.card(wrapped))
		if in := inline[i+1]; len(in) > 0 {
			es.inline(w, wrapped, "$ "+strings.Join(in, " $ "))
		}
		w.WriteByte('\n')
	}
	comments(len(blk.Cards))
}

// inline writes a '$' comment after the card's last line, or on a
// continuation line of its own when it does not fit in the width. A comment
// wider than a whole continuation line is written there anyway.
func (es *encState) inline(w *bufio.Writer, wrapped, text string) {
	last := wrapped[strings.LastIndexByte(wrapped, '\n')+1:]
	if len(last)+1+len(text) <= es.width {
		w.WriteByte(' ')
	} else {
		w.WriteByte('\n')
		w.WriteString(strings.Repeat(" ", token.ContinuationIndent))
	}
	w.WriteString(es.paint(CommentClass, text))
}

// card paints the tokens of a wrapped card.
func (es *encState) card(text string) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		toks := strings.Split(ln, " ")
		for j, t := range toks {
			if t != "" {
				toks[j] = es.token(t)
			}
		}
		lines[i] = strings.Join(toks, " ")
	}
	return strings.Join(lines, "\n")
}

func (es *encState) token(t string) string {
	r := []rune(t)[0]
	switch {
	case unicode.IsLetter(r) || r == '*' && len(t) > 1 && unicode.IsLetter([]rune(t)[1]):
		if k, v, ok := strings.Cut(t, "="); ok {
			return es.paint(KeywordClass, k) + es.paint(OperatorClass, "=") + es.paint(NumberClass, v)
		}
		return es.paint(KeywordClass, t)
	case unicode.IsDigit(r) || r == '-' || r == '+' || r == '.' || r == '*':
		return es.paint(NumberClass, t)
	default:
		return es.paint(OperatorClass, t)
	}
}

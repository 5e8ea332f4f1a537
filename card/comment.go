package card

import (
	"strings"

	"github.com/mcnp-tools/go-mcnp/diag"
	"github.com/mcnp-tools/go-mcnp/token"
)

// Comment is a full-line comment card. Its text is kept as written.
type Comment struct {
	text string
}

func NewComment(text string) (*Comment, error) {
	if strings.ContainsAny(text, "\r\n") {
		return nil, diag.Errorf(diag.SyntaxCard, text, "comment spans lines")
	}
	return &Comment{text: strings.TrimRight(text, " ")}, nil
}

// ParseComment parses one comment line: a 'c' in the first five columns
// followed by a blank or the end of the line.
func ParseComment(line string) (*Comment, error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.Contains(line, "\n") || !token.IsComment(line) {
		return nil, diag.Errorf(diag.SyntaxCard, line, "%w: not a comment line", diag.ErrNoMatch)
	}
	return NewComment(token.CommentText(line))
}

func (c *Comment) Family() Family { return CommentFamily }
func (c *Comment) Key() Key       { return Key{Mnemonic: "c", Suffix: NoSuffix} }
func (c *Comment) Text() string   { return c.text }

func (c *Comment) Line() string {
	if c.text == "" {
		return "c"
	}
	return "c " + c.text
}

func (c *Comment) String() string { return c.Line() }

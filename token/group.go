package token

import "strings"

// Line is one logical line of a block: either a comment line or a card whose
// continuation lines have been joined.
type Line struct {
	// Text is the comment text for comment lines and the joined card text,
	// with continuation markers and '$' comments removed, for cards.
	Text    string
	Comment bool
	// Inline holds the '$' comments found on the card's physical lines.
	Inline []string
	// Index is the 0 based index of the card's first physical line within the
	// lines passed to Group.
	Index int
	// Dangling is set on a card whose first line is indented like a
	// continuation but has no card to continue.
	Dangling bool
}

// Group joins physical lines into logical cards. A card continues onto the
// next line when it ends in '&' or when the next line starts with at least
// ContinuationIndent blanks. Comment lines never continue a card and are
// returned in place.
func Group(lines []string) []Line {
	var (
		res     []Line
		cur     = -1
		pending bool
	)
	for i, ln := range lines {
		if IsComment(ln) {
			res = append(res, Line{Text: CommentText(ln), Comment: true, Index: i})
			continue
		}
		body, inline, hasInline := splitInline(ln)
		body = strings.TrimRight(body, " ")
		amp := strings.HasSuffix(body, "&")
		if amp {
			body = strings.TrimRight(strings.TrimSuffix(body, "&"), " ")
		}
		if cur >= 0 && (pending || isContinued(ln)) {
			c := &res[cur]
			if t := strings.TrimSpace(body); t != "" {
				c.Text += " " + t
			}
			if hasInline {
				c.Inline = append(c.Inline, inline)
			}
			pending = amp
			continue
		}
		if strings.TrimSpace(body) == "" && !hasInline {
			cur, pending = -1, false
			continue
		}
		res = append(res, Line{Text: strings.TrimSpace(body), Index: i, Dangling: isContinued(ln)})
		cur = len(res) - 1
		if hasInline {
			res[cur].Inline = append(res[cur].Inline, inline)
		}
		pending = amp
	}
	return res
}

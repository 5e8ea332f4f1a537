package token

import (
	"strings"

	"golang.org/x/text/cases"
)

const (
	// ContinuationIndent is the number of leading blanks that make a
	// physical line continue the previous card.
	ContinuationIndent = 5
	tabStop            = 8
)

// Preprocess normalizes src and returns the normalized text along with the
// text of every comment that was removed, in source order. Logical cards in
// the result are separated by a single newline. A continuation with no card
// to continue is kept indented, after a blank line unless it comes first.
func Preprocess(src string) (string, []string) {
	lines := Group(SplitLines(src))
	var (
		out      []string
		comments []string
	)
	for i := range lines {
		ln := &lines[i]
		if ln.Comment {
			comments = append(comments, ln.Text)
			continue
		}
		comments = append(comments, ln.Inline...)
		norm := Normalize(ln.Text)
		if norm == "" {
			continue
		}
		if ln.Dangling {
			// keep it indented after a blank so it stays dangling and
			// "c ..." text is not read back as a comment
			if len(out) > 0 {
				out = append(out, "")
			}
			norm = strings.Repeat(" ", ContinuationIndent) + norm
		}
		out = append(out, norm)
	}
	return strings.Join(out, "\n"), comments
}

// Normalize case folds and collapses the whitespace of one logical card.
// It does not look for comments or continuations.
func Normalize(s string) string {
	return strings.Join(strings.Fields(Fold(s)), " ")
}

// Fold case folds s. Decks are case insensitive outside of comments and the
// title.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// SplitLines splits src into physical lines with line endings removed and
// tabs expanded.
func SplitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.TrimSuffix(src, "\n")
	if src == "" {
		return nil
	}
	lines := strings.Split(src, "\n")
	for i, ln := range lines {
		lines[i] = ExpandTabs(ln)
	}
	return lines
}

func ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabStop - col%tabStop
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}

// IsBlank reports whether a physical line is a block delimiter.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsComment reports whether a physical line is a comment line: a 'c' in
// columns 1-5 followed by a blank or the end of the line.
func IsComment(s string) bool {
	i := 0
	for i < len(s) && i < ContinuationIndent && s[i] == ' ' {
		i++
	}
	if i >= len(s) || i >= ContinuationIndent {
		return false
	}
	if s[i] != 'c' && s[i] != 'C' {
		return false
	}
	return i+1 == len(s) || s[i+1] == ' '
}

// CommentText returns the text of a comment line after its 'c' marker and
// one separating blank.
func CommentText(s string) string {
	s = strings.TrimLeft(s, " ")
	s = s[1:]
	s = strings.TrimPrefix(s, " ")
	return strings.TrimRight(s, " ")
}

func isContinued(s string) bool {
	return len(s) >= ContinuationIndent && strings.TrimLeft(s[:ContinuationIndent], " ") == ""
}

// splitInline splits off a '$' comment.
func splitInline(s string) (string, string, bool) {
	i := strings.IndexByte(s, '$')
	if i < 0 {
		return s, "", false
	}
	return s[:i], strings.TrimSpace(s[i+1:]), true
}

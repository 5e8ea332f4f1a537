package token

import "strings"

const (
	DefaultWidth = 80
	Continuation = " &\n     "
)

// Wrap breaks a logical line so that no physical line is wider than width,
// ending each broken line with " &" and indenting the next by
// ContinuationIndent blanks. Tokens are never split; a token wider than a line
// gets a line of its own.
func Wrap(s string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if len(s) <= width {
		return s
	}
	fields := strings.Fields(s)
	var (
		sb   strings.Builder
		col  int
		room = width - len(" &")
	)
	for i, f := range fields {
		switch {
		case i == 0:
		case col+1+len(f) <= room || (i == len(fields)-1 && col+1+len(f) <= width):
			sb.WriteByte(' ')
			col++
		default:
			sb.WriteString(Continuation)
			col = ContinuationIndent
		}
		sb.WriteString(f)
		col += len(f)
	}
	return sb.String()
}

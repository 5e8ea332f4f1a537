package mcnp

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mcnp-tools/go-mcnp/inp"
)

// Diff compares the canonical text of two decks line by line. Each line of
// the result is prefixed with "- " (only in a), "+ " (only in b) or "  ".
// Decks that print the same give "".
func Diff(a, b *inp.Deck) string {
	return DiffText(a.String(), b.String())
}

// DiffText is Diff on already printed decks.
func DiffText(a, b string) string {
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)
	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

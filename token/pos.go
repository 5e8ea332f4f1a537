package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets of a source document to lines and columns.
type PosDoc struct {
	d string
	n []int
}

func NewPosDoc(d string) *PosDoc {
	p := &PosDoc{d: d}
	for i := 0; i < len(d); i++ {
		if d[i] == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the 0 based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

// LineOffset returns the offset of the first byte of 0 based line ln.
func (p *PosDoc) LineOffset(ln int) int {
	switch {
	case ln <= 0:
		return 0
	case ln > len(p.n):
		return len(p.d)
	default:
		return p.n[ln-1] + 1
	}
}

func (p *PosDoc) Pos(i int) Pos {
	return Pos{I: i, D: p}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		sample = p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))]
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	ln, col := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, ln+1, col+1)
}

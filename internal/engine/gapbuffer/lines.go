package gapbuffer

import (
	"github.com/juanjux/editorexperiment/internal/engine/grapheme"
)

const lineTerminator = '\n'

// NumLines returns the number of lines in the buffer. An empty buffer has
// one (empty) line; every line terminator starts another.
func (b *GapBuffer) NumLines() int {
	n := 1
	for _, r := range b.buf[:b.gapStart] {
		if r == lineTerminator {
			n++
		}
	}
	for _, r := range b.buf[b.gapEnd:] {
		if r == lineTerminator {
			n++
		}
	}
	return n
}

// LineNumAtPos returns the 1-based line ordinal of the code-point
// position cp, computed from the line terminators before it.
func (b *GapBuffer) LineNumAtPos(cp CPPos) (LineNumber, error) {
	if cp < 0 || int(cp) > b.contentLen() {
		return 0, ErrOutOfBounds
	}
	n := LineNumber(1)
	for i := CPPos(0); i < cp; i++ {
		if b.runeAt(i) == lineTerminator {
			n++
		}
	}
	return n, nil
}

// LineBounds returns the grapheme range [start, end) covering the content
// of the given line, terminator excluded. For an empty line start equals
// end.
func (b *GapBuffer) LineBounds(line LineNumber) (start, end GrpmIdx, err error) {
	if line < 1 || int(line) > b.NumLines() {
		return 0, 0, ErrOutOfBounds
	}
	cpStart := CPPos(0)
	cur := LineNumber(1)
	total := CPPos(b.contentLen())
	for i := CPPos(0); i < total && cur < line; i++ {
		if b.runeAt(i) == lineTerminator {
			cur++
			cpStart = i + 1
		}
	}
	cpEnd := cpStart
	for cpEnd < total && b.runeAt(cpEnd) != lineTerminator {
		cpEnd++
	}
	return b.CPToGrpm(cpStart), b.CPToGrpm(cpEnd), nil
}

// GrpmToCP converts a 0-based grapheme position to its code-point
// position, clamping into [0, content length]. Fast path: identity.
func (b *GapBuffer) GrpmToCP(g GrpmIdx) CPPos {
	if g < 0 {
		return 0
	}
	if b.fastPath() {
		if int(g) > b.contentLen() {
			return CPPos(b.contentLen())
		}
		return CPPos(g)
	}
	units, _ := grapheme.Next(b.Content(), int(g))
	return CPPos(units)
}

// CPToGrpm converts a code-point position to the 0-based index of the
// grapheme containing it, clamping into [0, Len]. Fast path: identity.
func (b *GapBuffer) CPToGrpm(cp CPPos) GrpmIdx {
	if cp < 0 {
		return 0
	}
	if b.fastPath() {
		if int(cp) > b.contentLen() {
			return GrpmIdx(b.contentLen())
		}
		return GrpmIdx(cp)
	}
	content := b.Content()
	if int(cp) > len(content) {
		cp = CPPos(len(content))
	}
	idx, off := 0, 0
	for _, cl := range grapheme.Clusters(content) {
		if off+len(cl) > int(cp) {
			break
		}
		off += len(cl)
		idx++
	}
	return GrpmIdx(idx)
}

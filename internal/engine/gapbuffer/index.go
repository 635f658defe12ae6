package gapbuffer

import (
	"github.com/juanjux/editorexperiment/internal/engine/grapheme"
)

// GraphemeAt returns an owned copy of the scalars forming the grapheme at
// the 0-based content index i. Fast path: direct lookup through the gap.
// Slow path: grapheme stride from the start of the logical content.
func (b *GapBuffer) GraphemeAt(i GrpmIdx) ([]rune, error) {
	if i < 0 || int(i) >= b.Len() {
		return nil, ErrOutOfBounds
	}
	if b.fastPath() {
		return []rune{b.runeAt(CPPos(i))}, nil
	}
	content := b.Content()
	lo, hi, ok := grapheme.At(content, int(i))
	if !ok {
		return nil, ErrOutOfBounds
	}
	out := make([]rune, hi-lo)
	copy(out, content[lo:hi])
	return out, nil
}

// Slice returns an owned copy of the scalars covering graphemes a
// (inclusive) through end (exclusive).
func (b *GapBuffer) Slice(a, end GrpmIdx) ([]rune, error) {
	if a < 0 || end < a || int(end) > b.Len() {
		return nil, ErrOutOfBounds
	}
	if a == end {
		return []rune{}, nil
	}
	if b.fastPath() {
		return b.contentRange(CPPos(a), CPPos(end)), nil
	}
	content := b.Content()
	lo, hi, ok := grapheme.Bounds(content, int(a), int(end))
	if !ok {
		return nil, ErrOutOfBounds
	}
	out := make([]rune, hi-lo)
	copy(out, content[lo:hi])
	return out, nil
}

// ContentIdxToBufferIdx converts a logical code-point position (gap
// absent) to a raw offset into the backing array.
func (b *GapBuffer) ContentIdxToBufferIdx(i CPPos) BufIdx {
	if BufIdx(i) >= b.gapStart {
		return BufIdx(int(i) + b.currentGapSize())
	}
	return BufIdx(i)
}

// runeAt returns the scalar at the logical code-point position cp.
func (b *GapBuffer) runeAt(cp CPPos) rune {
	return b.buf[b.ContentIdxToBufferIdx(cp)]
}

// contentRange copies logical code points [a, end) out of the two sides
// of the gap without materializing the whole content.
func (b *GapBuffer) contentRange(a, end CPPos) []rune {
	out := make([]rune, 0, int(end-a))
	split := CPPos(b.gapStart)
	if a < split {
		hi := end
		if hi > split {
			hi = split
		}
		out = append(out, b.buf[BufIdx(a):BufIdx(hi)]...)
		a = hi
	}
	if a < end {
		gap := BufIdx(b.currentGapSize())
		out = append(out, b.buf[BufIdx(a)+gap:BufIdx(end)+gap]...)
	}
	return out
}

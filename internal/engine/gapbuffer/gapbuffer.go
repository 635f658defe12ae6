package gapbuffer

import (
	"github.com/juanjux/editorexperiment/internal/engine/grapheme"
)

// GapBuffer holds the text as a contiguous []rune with a movable gap
// delimited by [gapStart, gapEnd). The logical content is the
// concatenation of the two sides of the gap; whatever sits inside the gap
// is meaningless. Grapheme counts for both sides are cached and updated
// incrementally on every mutation, so Len and CursorPos are O(1) on both
// the fast and the slow path.
type GapBuffer struct {
	buf      []rune
	gapStart BufIdx
	gapEnd   BufIdx
	gapSize  int

	beforeGrpms int
	afterGrpms  int

	// combining is monotone under deletions: it may stay true after the
	// last multi-scalar cluster was deleted, and heals at the next
	// reallocation or explicit recheck.
	combining bool
	forceFast bool

	cursorAtEnd bool

	reallocs      uint64
	gapExtensions uint64
}

// New creates a buffer laid out as [gap | text] with the cursor at
// position 1 (or [text | gap] under WithCursorAtEnd). It fails with
// ErrInvalidConfiguration when the configured gap size is 1 or less.
func New(text string, opts ...Option) (*GapBuffer, error) {
	b := &GapBuffer{gapSize: DefaultGapSize}
	for _, opt := range opts {
		opt(b)
	}
	if b.gapSize <= 1 {
		return nil, ErrInvalidConfiguration
	}
	b.init([]rune(text), b.cursorAtEnd)
	return b, nil
}

// init lays out the backing array, scans for combining graphemes and
// populates both grapheme caches. Counters are left untouched.
func (b *GapBuffer) init(text []rune, cursorAtEnd bool) {
	buf := make([]rune, len(text)+b.gapSize)
	if cursorAtEnd {
		copy(buf, text)
		b.gapStart = BufIdx(len(text))
		b.gapEnd = BufIdx(len(buf))
	} else {
		copy(buf[b.gapSize:], text)
		b.gapStart = 0
		b.gapEnd = BufIdx(b.gapSize)
	}
	b.buf = buf
	b.combining = grapheme.HasCombining(text)
	b.refreshCaches()
}

// fastPath reports whether grapheme count can be treated as scalar count.
func (b *GapBuffer) fastPath() bool {
	return b.forceFast || !b.combining
}

// currentGapSize returns the number of unused elements inside the gap.
func (b *GapBuffer) currentGapSize() int {
	return int(b.gapEnd - b.gapStart)
}

// contentLen returns the logical content length in code points.
func (b *GapBuffer) contentLen() int {
	return len(b.buf) - b.currentGapSize()
}

// countGraphemes counts the graphemes of rs honoring the effective path.
func (b *GapBuffer) countGraphemes(rs []rune) int {
	if b.fastPath() {
		return len(rs)
	}
	return grapheme.Count(rs)
}

// refreshCaches recomputes both per-side grapheme caches from scratch.
func (b *GapBuffer) refreshCaches() {
	b.beforeGrpms = b.countGraphemes(b.buf[:b.gapStart])
	b.afterGrpms = b.countGraphemes(b.buf[b.gapEnd:])
}

// recheck rescans the whole content for combining graphemes and refreshes
// the caches. This is what heals a conservatively-true combining flag.
func (b *GapBuffer) recheck() {
	b.combining = grapheme.HasCombining(b.Content())
	b.refreshCaches()
}

// ContentBeforeGap returns a borrowed view of the content before the gap.
// The view is invalidated by any mutation.
func (b *GapBuffer) ContentBeforeGap() []rune {
	return b.buf[:b.gapStart]
}

// ContentAfterGap returns a borrowed view of the content after the gap.
// The view is invalidated by any mutation.
func (b *GapBuffer) ContentAfterGap() []rune {
	return b.buf[b.gapEnd:]
}

// Content returns a newly allocated copy of the logical content. Callers
// that can work with the two sides separately should prefer
// ContentBeforeGap and ContentAfterGap, which do not copy.
func (b *GapBuffer) Content() []rune {
	out := make([]rune, 0, b.contentLen())
	out = append(out, b.buf[:b.gapStart]...)
	out = append(out, b.buf[b.gapEnd:]...)
	return out
}

// String returns the logical content as a string.
func (b *GapBuffer) String() string {
	return string(b.Content())
}

// Len returns the grapheme count of the logical content. O(1).
func (b *GapBuffer) Len() int {
	return b.beforeGrpms + b.afterGrpms
}

// CursorPos returns the 1-based grapheme position of the cursor, which is
// always the position at the start of the gap. O(1).
func (b *GapBuffer) CursorPos() GrpmIdx {
	return GrpmIdx(b.beforeGrpms + 1)
}

// HasCombiningGraphemes reports whether the content is known to contain a
// grapheme spanning more than one scalar. The flag is conservative after
// deletions: it may stay true until the next reallocation or recheck.
func (b *GapBuffer) HasCombiningGraphemes() bool {
	return b.combining
}

// ForceFastMode reports whether grapheme-aware paths are bypassed.
func (b *GapBuffer) ForceFastMode() bool {
	return b.forceFast
}

// SetForceFastMode toggles the fast-path override. Turning it off
// triggers a full recheck so the effective path matches the content.
func (b *GapBuffer) SetForceFastMode(v bool) {
	b.forceFast = v
	if !v {
		b.recheck()
	} else {
		b.refreshCaches()
	}
}

// GapSize returns the configured gap size.
func (b *GapBuffer) GapSize() int {
	return b.gapSize
}

// SetGapSize updates the configured gap size and reallocates so the
// current gap honors it. Sizes of 1 or less fail with
// ErrInvalidConfiguration and leave the buffer untouched.
func (b *GapBuffer) SetGapSize(size int) error {
	if size <= 1 {
		return ErrInvalidConfiguration
	}
	b.gapSize = size
	b.reallocate(nil)
	return nil
}

// ReallocCount returns the number of reallocations performed.
func (b *GapBuffer) ReallocCount() uint64 {
	return b.reallocs
}

// GapExtensionCount returns the number of times the gap had to be grown
// back to the configured size during a reallocation.
func (b *GapBuffer) GapExtensionCount() uint64 {
	return b.gapExtensions
}

// AddText inserts text at the cursor and returns the new cursor position.
// When the text fits in the gap it is copied in place; otherwise the
// buffer reallocates.
func (b *GapBuffer) AddText(text string) GrpmIdx {
	return b.AddRunes([]rune(text))
}

// AddRunes inserts scalars at the cursor and returns the new cursor
// position. The combining flag is monotone: a fast-path buffer receiving
// combining text moves to the slow path.
func (b *GapBuffer) AddRunes(text []rune) GrpmIdx {
	if len(text) == 0 {
		return b.CursorPos()
	}
	if !b.combining && grapheme.HasCombining(text) {
		b.combining = true
	}
	if len(text) < b.currentGapSize() {
		copy(b.buf[b.gapStart:], text)
		b.gapStart += BufIdx(len(text))
		b.beforeGrpms += b.countGraphemes(text)
		return b.CursorPos()
	}
	b.reallocate(text)
	return b.CursorPos()
}

// Reallocate grows the gap back to at least the configured size, keeping
// content and cursor intact, and returns the cursor position.
func (b *GapBuffer) Reallocate() GrpmIdx {
	b.reallocate(nil)
	return b.CursorPos()
}

// reallocate rebuilds the backing array with textToAdd spliced just
// before the gap and the gap grown to at least the configured size. The
// whole content is rescanned for combining graphemes afterwards.
func (b *GapBuffer) reallocate(textToAdd []rune) {
	afterLen := len(b.buf) - int(b.gapEnd)
	filler := 0
	if gap := b.currentGapSize(); gap < b.gapSize {
		filler = b.gapSize - gap
		b.gapExtensions++
	}

	newBuf := make([]rune, len(b.buf)+len(textToAdd)+filler)
	n := copy(newBuf, b.buf[:b.gapStart])
	n += copy(newBuf[n:], textToAdd)
	copy(newBuf[len(newBuf)-afterLen:], b.buf[b.gapEnd:])

	b.buf = newBuf
	b.gapStart += BufIdx(len(textToAdd))
	b.gapEnd = BufIdx(len(newBuf) - afterLen)
	b.reallocs++
	b.recheck()
}

// DeleteLeft removes up to n graphemes before the cursor by extending the
// gap leftward. No data moves and the combining flag is not rechecked, so
// deletion stays O(1) on the fast path.
func (b *GapBuffer) DeleteLeft(n int) (GrpmIdx, error) {
	if n < 0 {
		return b.CursorPos(), ErrInvalidArgument
	}
	units, clusters := b.strideBack(n)
	b.gapStart -= BufIdx(units)
	b.beforeGrpms -= clusters
	return b.CursorPos(), nil
}

// DeleteRight removes up to n graphemes after the cursor by extending the
// gap rightward.
func (b *GapBuffer) DeleteRight(n int) (GrpmIdx, error) {
	if n < 0 {
		return b.CursorPos(), ErrInvalidArgument
	}
	units, clusters := b.strideForward(n)
	b.gapEnd += BufIdx(units)
	b.afterGrpms -= clusters
	return b.CursorPos(), nil
}

// Clear discards the text and reinitializes the buffer with the given
// content. With moveCursorToEnd the layout is [text | gap] and the cursor
// lands after the last grapheme; otherwise [gap | text] with the cursor
// at 1. The observability counters keep running.
func (b *GapBuffer) Clear(text string, moveCursorToEnd bool) GrpmIdx {
	b.init([]rune(text), moveCursorToEnd)
	return b.CursorPos()
}

// Save returns an independently owned deep copy of the buffer, suitable
// for snapshotting.
func (b *GapBuffer) Save() *GapBuffer {
	clone := *b
	clone.buf = make([]rune, len(b.buf))
	copy(clone.buf, b.buf)
	return &clone
}

// strideForward computes how many scalars and clusters up to n graphemes
// cover at the start of the after-gap side.
func (b *GapBuffer) strideForward(n int) (units, clusters int) {
	after := b.buf[b.gapEnd:]
	if b.fastPath() {
		if n > len(after) {
			n = len(after)
		}
		return n, n
	}
	return grapheme.Next(after, n)
}

// strideBack computes how many scalars and clusters up to n graphemes
// cover at the end of the before-gap side.
func (b *GapBuffer) strideBack(n int) (units, clusters int) {
	before := b.buf[:b.gapStart]
	if b.fastPath() {
		if n > len(before) {
			n = len(before)
		}
		return n, n
	}
	return grapheme.Prev(before, n)
}

package gapbuffer

import (
	"fmt"
	"strings"
)

// DebugContent returns a human-readable dump of the buffer state,
// development aid only. The gap is rendered as an underscore run between
// the two content sides.
func (b *GapBuffer) DebugContent() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "GapBuffer{len=%d cursor=%d gap=[%d,%d) cap=%d combining=%t fast=%t reallocs=%d extensions=%d}\n",
		b.Len(), b.CursorPos(), b.gapStart, b.gapEnd, len(b.buf),
		b.combining, b.forceFast, b.reallocs, b.gapExtensions)
	fmt.Fprintf(&sb, "%q%s%q",
		string(b.buf[:b.gapStart]),
		strings.Repeat("_", b.currentGapSize()),
		string(b.buf[b.gapEnd:]))
	return sb.String()
}

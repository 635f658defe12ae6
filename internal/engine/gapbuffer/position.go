package gapbuffer

import "fmt"

// BufIdx is a raw offset into the backing array, gap included.
// Valid values are 0 through the backing array length.
type BufIdx int

// CPPos is a code-point position in the logical content, as if the gap
// were absent. The store holds one scalar per element, so code-point
// positions and code-unit offsets coincide.
type CPPos int

// GrpmIdx is a grapheme (user-visible character) position. Content
// indexing is 0-based; the cursor surface is 1-based, with CursorPos()
// equal to the grapheme count before the gap plus one.
type GrpmIdx int

// LineNumber is a 1-based line ordinal within the buffer.
type LineNumber int

// String returns a human-readable representation of the position.
func (g GrpmIdx) String() string {
	return fmt.Sprintf("grpm(%d)", int(g))
}

// String returns a human-readable representation of the position.
func (p CPPos) String() string {
	return fmt.Sprintf("cp(%d)", int(p))
}

// String returns a human-readable representation of the offset.
func (i BufIdx) String() string {
	return fmt.Sprintf("buf(%d)", int(i))
}

// String returns a human-readable representation of the line number.
func (n LineNumber) String() string {
	return fmt.Sprintf("line(%d)", int(n))
}

// Package gapbuffer implements the text storage engine of the editor: a
// contiguous []rune store with a movable gap kept at the cursor, so the
// local edits typical of interactive editing (insert, delete, move one
// position) complete without shifting the bulk of the text.
//
// The package provides:
//
//   - O(1) insertion at the cursor; on the fast path O(1) deletion and
//     O(k) cursor movement by k graphemes (the slow path also segments
//     the side of the gap being crossed); O(n) reallocation when the gap
//     is exhausted
//   - Distinct nominal index types (GrpmIdx, CPPos, BufIdx, LineNumber)
//     so grapheme, code-point and raw-array positions cannot be mixed
//   - A fast path for content without combining graphemes, where grapheme
//     count equals scalar count, and a grapheme-aware slow path otherwise
//   - Grapheme indexing and slicing, line queries, a deep-copy Save, and
//     observability counters for reallocations and gap extensions
//
// Position types:
//
//   - BufIdx: raw offset into the backing array, including the gap
//   - CPPos: code-point position in the logical content (gap absent);
//     the store is UTF-32 internally, so one scalar is one code point
//   - GrpmIdx: user-visible character position; the cursor surface is
//     1-based (CursorPos() >= 1), content indexing is 0-based
//   - LineNumber: 1-based line ordinal
//
// Basic usage:
//
//	buf, err := gapbuffer.New("Hello, World!", gapbuffer.WithGapSize(100))
//	if err != nil { ... }
//	buf.CursorForward(5)
//	buf.AddText(" there")
//	text := buf.Content()
//
// A GapBuffer is single-threaded and not reentrant. It is exclusively
// owned by one logical editor session; serializing concurrent access is
// the caller's concern (see internal/session). Borrowed views returned by
// ContentBeforeGap/ContentAfterGap must not be held across any mutation,
// because mutation may reallocate the backing store.
package gapbuffer

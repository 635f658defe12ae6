package extract

import (
	"fmt"

	"github.com/juanjux/editorexperiment/internal/engine/gapbuffer"
)

// Direction selects the direction of travel for an extraction.
type Direction int

const (
	// Front walks toward the end of the buffer.
	Front Direction = iota
	// Back walks toward the start of the buffer.
	Back
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

// Subject is a value emitted by an extractor: an inclusive grapheme range
// paired with an owned copy of its scalar payload. An empty subject (an
// empty line) has End == Start-1.
type Subject struct {
	Start gapbuffer.GrpmIdx
	End   gapbuffer.GrpmIdx
	Text  []rune
}

// String renders the subject for debugging.
func (s Subject) String() string {
	return fmt.Sprintf("[%d..%d]%q", int(s.Start), int(s.End), string(s.Text))
}

// IsEmpty reports whether the subject carries no graphemes.
func (s Subject) IsEmpty() bool {
	return s.End < s.Start
}

// Predicate is a pure boolean filter over Subjects. Subjects it rejects
// are skipped without counting toward the extraction bound.
type Predicate func(Subject) bool

// AcceptAll is the default predicate.
func AcceptAll(Subject) bool { return true }

// Buffer is the read-side surface of the storage engine that the
// extractors consume.
type Buffer interface {
	Len() int
	NumLines() int
	LineNumAtPos(cp gapbuffer.CPPos) (gapbuffer.LineNumber, error)
	LineBounds(line gapbuffer.LineNumber) (start, end gapbuffer.GrpmIdx, err error)
	GrpmToCP(g gapbuffer.GrpmIdx) gapbuffer.CPPos
	Slice(a, end gapbuffer.GrpmIdx) ([]rune, error)
}

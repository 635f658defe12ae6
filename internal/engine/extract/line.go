package extract

import (
	"github.com/juanjux/editorexperiment/internal/engine/gapbuffer"
)

// Lines returns up to count line subjects starting at the line containing
// the grapheme position start, walking in the given direction. The line
// terminator is not part of the payload. Subjects rejected by pred are
// skipped without counting. A nil pred accepts everything.
func Lines(buf Buffer, start gapbuffer.GrpmIdx, dir Direction, count int, pred Predicate) ([]Subject, error) {
	if count < 0 {
		return nil, gapbuffer.ErrInvalidArgument
	}
	if count == 0 {
		return nil, nil
	}
	if pred == nil {
		pred = AcceptAll
	}

	line, err := buf.LineNumAtPos(buf.GrpmToCP(clampGrpm(start, buf.Len())))
	if err != nil {
		return nil, err
	}

	step := gapbuffer.LineNumber(1)
	if dir == Back {
		step = -1
	}

	var out []Subject
	last := gapbuffer.LineNumber(buf.NumLines())
	for line >= 1 && line <= last && len(out) < count {
		a, b, err := buf.LineBounds(line)
		if err != nil {
			return nil, err
		}
		payload, err := buf.Slice(a, b)
		if err != nil {
			return nil, err
		}
		subj := Subject{Start: a, End: b - 1, Text: payload}
		if pred(subj) {
			out = append(out, subj)
		}
		line += step
	}
	return out, nil
}

// clampGrpm clamps a 0-based grapheme position into the content.
func clampGrpm(g gapbuffer.GrpmIdx, length int) gapbuffer.GrpmIdx {
	if g < 0 {
		return 0
	}
	if int(g) > length {
		return gapbuffer.GrpmIdx(length)
	}
	return g
}

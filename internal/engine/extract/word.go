package extract

import (
	"github.com/juanjux/editorexperiment/internal/engine/gapbuffer"
	"github.com/juanjux/editorexperiment/internal/engine/grapheme"
)

// Separators is the set of code points that delimit words. A grapheme is
// a separator when any of its component code points is in the set, so a
// combining mark attached to a separator keeps it a separator.
type Separators map[rune]struct{}

// NewSeparators builds a separator set from the given code points.
func NewSeparators(rs ...rune) Separators {
	s := make(Separators, len(rs))
	for _, r := range rs {
		s[r] = struct{}{}
	}
	return s
}

// SeparatorsFromString builds a separator set from the code points of s.
func SeparatorsFromString(str string) Separators {
	return NewSeparators([]rune(str)...)
}

// Contains reports whether r is in the set.
func (s Separators) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// isSeparator reports whether the cluster contains any separator scalar.
func (s Separators) isSeparator(cluster []rune) bool {
	for _, r := range cluster {
		if s.Contains(r) {
			return true
		}
	}
	return false
}

// Words returns up to count word subjects reachable from the grapheme
// position start walking in the given direction. Words are maximal runs
// of non-separator graphemes; separators act purely as boundaries and
// are never part of a payload. Payloads always read left-to-right
// regardless of travel direction. Subjects rejected by pred are skipped
// without counting.
func Words(buf Buffer, start gapbuffer.GrpmIdx, dir Direction, count int, seps Separators, pred Predicate) ([]Subject, error) {
	if count < 0 {
		return nil, gapbuffer.ErrInvalidArgument
	}
	if count == 0 || buf.Len() == 0 {
		return nil, nil
	}
	if pred == nil {
		pred = AcceptAll
	}

	content, err := buf.Slice(0, gapbuffer.GrpmIdx(buf.Len()))
	if err != nil {
		return nil, err
	}
	clusters := grapheme.Clusters(content)

	start = clampGrpm(start, len(clusters)-1)
	step := 1
	if dir == Back {
		step = -1
	}

	var (
		out      []Subject
		word     []rune
		runStart gapbuffer.GrpmIdx
		inWord   bool
	)

	// finalize closes the running word at the grapheme index last (the
	// final word grapheme in travel order) and emits it if accepted.
	finalize := func(last gapbuffer.GrpmIdx) {
		lo, hi := runStart, last
		if dir == Back {
			lo, hi = last, runStart
		}
		payload := make([]rune, len(word))
		copy(payload, word)
		subj := Subject{Start: lo, End: hi, Text: payload}
		if pred(subj) {
			out = append(out, subj)
		}
		word = word[:0]
		inWord = false
	}

	for i := int(start); i >= 0 && i < len(clusters) && len(out) < count; i += step {
		cl := clusters[i]
		if seps.isSeparator(cl) {
			if inWord {
				finalize(gapbuffer.GrpmIdx(i - step))
			}
			continue
		}
		if !inWord {
			inWord = true
			runStart = gapbuffer.GrpmIdx(i)
			word = word[:0]
		}
		if dir == Front {
			word = append(word, cl...)
		} else {
			word = append(append(make([]rune, 0, len(cl)+len(word)), cl...), word...)
		}
	}

	if inWord && len(out) < count {
		last := len(clusters) - 1
		if dir == Back {
			last = 0
		}
		finalize(gapbuffer.GrpmIdx(last))
	}
	return out, nil
}

package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/juanjux/editorexperiment/internal/engine/gapbuffer"
)

func mustBuffer(t *testing.T, text string) *gapbuffer.GapBuffer {
	t.Helper()
	b, err := gapbuffer.New(text)
	if err != nil {
		t.Fatalf("buffer construction failed: %v", err)
	}
	return b
}

func TestLinesForward(t *testing.T) {
	b := mustBuffer(t, "first\nsecond\nthird")

	subjects, err := Lines(b, 0, Front, 10, nil)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	if len(subjects) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(subjects))
	}

	want := []string{"first", "second", "third"}
	for i, subj := range subjects {
		if string(subj.Text) != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], string(subj.Text))
		}
	}
	if subjects[1].Start != 6 || subjects[1].End != 11 {
		t.Errorf("expected second line at [6..11], got [%d..%d]",
			subjects[1].Start, subjects[1].End)
	}
}

func TestLinesBackward(t *testing.T) {
	b := mustBuffer(t, "first\nsecond\nthird")

	// start inside the last line, walk back
	subjects, err := Lines(b, 15, Back, 10, nil)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	if len(subjects) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(subjects))
	}

	want := []string{"third", "second", "first"}
	for i, subj := range subjects {
		if string(subj.Text) != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], string(subj.Text))
		}
	}
}

func TestLinesBounded(t *testing.T) {
	b := mustBuffer(t, "a\nb\nc\nd\ne")

	subjects, err := Lines(b, 0, Front, 2, nil)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	if len(subjects) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(subjects))
	}
	if string(subjects[0].Text) != "a" || string(subjects[1].Text) != "b" {
		t.Errorf("unexpected lines %v", subjects)
	}
}

func TestLinesPredicateSkipsWithoutCounting(t *testing.T) {
	b := mustBuffer(t, "keep one\ndrop\nkeep two\ndrop\nkeep three")

	keep := func(s Subject) bool {
		return strings.HasPrefix(string(s.Text), "keep")
	}
	subjects, err := Lines(b, 0, Front, 3, keep)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	if len(subjects) != 3 {
		t.Fatalf("expected 3 kept lines, got %d", len(subjects))
	}
	want := []string{"keep one", "keep two", "keep three"}
	for i, subj := range subjects {
		if string(subj.Text) != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], string(subj.Text))
		}
	}
}

func TestLinesEmptyLineSubject(t *testing.T) {
	b := mustBuffer(t, "one\n\ntwo")

	subjects, err := Lines(b, 0, Front, 10, nil)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	if len(subjects) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(subjects))
	}
	if !subjects[1].IsEmpty() {
		t.Errorf("expected empty middle line, got %q", string(subjects[1].Text))
	}
}

func TestLinesCombiningContent(t *testing.T) {
	b := mustBuffer(t, "r̈a⃑⊥\nplain")

	subjects, err := Lines(b, 0, Front, 10, nil)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	if len(subjects) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(subjects))
	}
	if string(subjects[0].Text) != "r̈a⃑⊥" {
		t.Errorf("unexpected first line %q", string(subjects[0].Text))
	}
	if subjects[0].Start != 0 || subjects[0].End != 2 {
		t.Errorf("expected grapheme range [0..2], got [%d..%d]",
			subjects[0].Start, subjects[0].End)
	}
	if subjects[1].Start != 4 || subjects[1].End != 8 {
		t.Errorf("expected grapheme range [4..8], got [%d..%d]",
			subjects[1].Start, subjects[1].End)
	}
}

func TestLinesZeroCount(t *testing.T) {
	b := mustBuffer(t, "one\ntwo")
	subjects, err := Lines(b, 0, Front, 0, nil)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	if len(subjects) != 0 {
		t.Errorf("expected no subjects, got %d", len(subjects))
	}
}

func TestLinesNegativeCount(t *testing.T) {
	b := mustBuffer(t, "one")
	if _, err := Lines(b, 0, Front, -1, nil); !errors.Is(err, gapbuffer.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestLinesDoesNotMutateBuffer(t *testing.T) {
	b := mustBuffer(t, "one\ntwo\nthree")
	b.CursorForward(5)
	want := b.String()
	wantPos := b.CursorPos()

	if _, err := Lines(b, 0, Front, 10, nil); err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	if b.String() != want || b.CursorPos() != wantPos {
		t.Error("extraction must not mutate the buffer")
	}
}

func TestLinesSubjectOwnsPayload(t *testing.T) {
	b := mustBuffer(t, "alpha\nbeta")
	subjects, _ := Lines(b, 0, Front, 1, nil)
	subjects[0].Text[0] = 'X'
	if b.String() != "alpha\nbeta" {
		t.Error("subject payload must not alias the buffer")
	}
}

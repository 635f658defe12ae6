package gapbuffer

import (
	"errors"
	"testing"
)

func TestCursorForwardBackwardRoundTrip(t *testing.T) {
	texts := []string{
		"Lorem ipsum blabla",
		"¡Hola mundo en España!",
		combined,
		"one\ntwo\nthree",
	}
	for _, text := range texts {
		b, _ := New(text, WithGapSize(16))
		want := b.String()

		for _, k := range []int{0, 1, 3, 100} {
			start := b.CursorPos()
			b.CursorForward(k)
			b.CursorBackward(k)
			if b.CursorPos() != start {
				t.Errorf("%q: forward(%d)+backward(%d) moved cursor %d -> %d",
					text, k, k, start, b.CursorPos())
			}
			if got := b.String(); got != want {
				t.Errorf("%q: content corrupted to %q after round trip of %d", text, got, k)
			}
			checkInvariants(t, b)
		}
	}
}

func TestCursorForwardClampsAtEnd(t *testing.T) {
	b, _ := New("abc")
	pos, err := b.CursorForward(50)
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if pos != 4 {
		t.Errorf("expected cursor 4, got %d", pos)
	}

	// already at the end: no-op
	pos, _ = b.CursorForward(1)
	if pos != 4 {
		t.Errorf("expected cursor to stay at 4, got %d", pos)
	}
	checkInvariants(t, b)
}

func TestCursorBackwardAtStartIsNoop(t *testing.T) {
	b, _ := New("abc")
	pos, err := b.CursorBackward(5)
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if pos != 1 {
		t.Errorf("expected cursor 1, got %d", pos)
	}
	checkInvariants(t, b)
}

func TestCursorMoveEmptyBuffer(t *testing.T) {
	b, _ := New("")
	if pos, _ := b.CursorForward(3); pos != 1 {
		t.Errorf("expected cursor 1, got %d", pos)
	}
	if pos, _ := b.CursorBackward(3); pos != 1 {
		t.Errorf("expected cursor 1, got %d", pos)
	}
	checkInvariants(t, b)
}

func TestCursorNegativeCount(t *testing.T) {
	b, _ := New("abc")
	if _, err := b.CursorForward(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := b.CursorBackward(-2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCursorMovesByGrapheme(t *testing.T) {
	b, _ := New(combined)

	b.CursorForward(1) // r + combining diaeresis: one grapheme, two scalars
	if got := string(b.ContentBeforeGap()); got != "r̈" {
		t.Errorf("expected the full cluster before the gap, got %q", got)
	}

	b.CursorBackward(1)
	if got := string(b.ContentBeforeGap()); got != "" {
		t.Errorf("expected empty before-gap side, got %q", got)
	}
	checkInvariants(t, b)
}

func TestSetCursor(t *testing.T) {
	b, _ := New("0123456789")

	if pos := b.SetCursor(7); pos != 7 {
		t.Errorf("expected cursor 7, got %d", pos)
	}
	if pos := b.SetCursor(2); pos != 2 {
		t.Errorf("expected cursor 2, got %d", pos)
	}

	// clamped on both sides
	if pos := b.SetCursor(-5); pos != 1 {
		t.Errorf("expected clamp to 1, got %d", pos)
	}
	if pos := b.SetCursor(100); pos != 11 {
		t.Errorf("expected clamp to 11, got %d", pos)
	}
	checkInvariants(t, b)
}

func TestCursorLargeMoveOverlap(t *testing.T) {
	// a move larger than the gap makes source and destination overlap
	b, _ := New("abcdefghijklmnopqrstuvwxyz", WithGapSize(4))
	want := b.String()

	b.CursorForward(20)
	if got := b.String(); got != want {
		t.Errorf("forward overlap corrupted content: %q", got)
	}
	b.CursorBackward(15)
	if got := b.String(); got != want {
		t.Errorf("backward overlap corrupted content: %q", got)
	}
	checkInvariants(t, b)
}

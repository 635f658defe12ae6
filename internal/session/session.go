// Package session wraps a gap buffer in the single-owner coordinator the
// core requires: the buffer itself is single-threaded and not reentrant,
// so the session serializes every access through one mutex and gives the
// editor a stable identity for the buffer it owns.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/juanjux/editorexperiment/internal/config"
	"github.com/juanjux/editorexperiment/internal/engine/extract"
	"github.com/juanjux/editorexperiment/internal/engine/gapbuffer"
)

// Session exclusively owns one GapBuffer. All methods are safe for
// concurrent use; the underlying buffer never sees overlapping calls.
type Session struct {
	id       uuid.UUID
	mu       sync.Mutex
	buf      *gapbuffer.GapBuffer
	settings *config.Settings
}

// New creates a session owning a fresh buffer with the given text,
// configured from settings (nil means defaults).
func New(text string, settings *config.Settings) (*Session, error) {
	if settings == nil {
		settings = config.Default()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	opts := []gapbuffer.Option{gapbuffer.WithGapSize(settings.Buffer.GapSize)}
	if settings.Buffer.ForceFastMode {
		opts = append(opts, gapbuffer.WithForceFastMode())
	}
	buf, err := gapbuffer.New(text, opts...)
	if err != nil {
		return nil, err
	}

	return &Session{
		id:       uuid.New(),
		buf:      buf,
		settings: settings,
	}, nil
}

// ID returns the session identity.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Content returns the buffer content as a string.
func (s *Session) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// Len returns the grapheme count of the content.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Len()
}

// CursorPos returns the 1-based cursor position.
func (s *Session) CursorPos() gapbuffer.GrpmIdx {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.CursorPos()
}

// SetCursor moves the cursor, clamped into the content.
func (s *Session) SetCursor(pos gapbuffer.GrpmIdx) gapbuffer.GrpmIdx {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.SetCursor(pos)
}

// MoveForward advances the cursor up to n graphemes.
func (s *Session) MoveForward(n int) (gapbuffer.GrpmIdx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.CursorForward(n)
}

// MoveBackward retreats the cursor up to n graphemes.
func (s *Session) MoveBackward(n int) (gapbuffer.GrpmIdx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.CursorBackward(n)
}

// Insert adds text at the cursor.
func (s *Session) Insert(text string) gapbuffer.GrpmIdx {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.AddText(text)
}

// DeleteLeft removes up to n graphemes before the cursor.
func (s *Session) DeleteLeft(n int) (gapbuffer.GrpmIdx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.DeleteLeft(n)
}

// DeleteRight removes up to n graphemes after the cursor.
func (s *Session) DeleteRight(n int) (gapbuffer.GrpmIdx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.DeleteRight(n)
}

// Clear replaces the whole content.
func (s *Session) Clear(text string, moveCursorToEnd bool) gapbuffer.GrpmIdx {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Clear(text, moveCursorToEnd)
}

// Lines extracts up to count line subjects from the cursor line in the
// given direction.
func (s *Session) Lines(dir extract.Direction, count int, pred extract.Predicate) ([]extract.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return extract.Lines(s.buf, s.buf.CursorPos()-1, dir, count, pred)
}

// Words extracts up to count word subjects from the cursor position in
// the given direction, using the session's separator settings.
func (s *Session) Words(dir extract.Direction, count int, pred extract.Predicate) ([]extract.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return extract.Words(s.buf, s.buf.CursorPos()-1, dir, count, s.settings.SeparatorSet(), pred)
}

// ApplySettings swaps the session settings: the separator set takes
// effect on the next extraction and the gap size on the buffer now.
func (s *Session) ApplySettings(settings *config.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	if settings.Buffer.GapSize != s.buf.GapSize() {
		if err := s.buf.SetGapSize(settings.Buffer.GapSize); err != nil {
			return err
		}
	}
	s.buf.SetForceFastMode(settings.Buffer.ForceFastMode)
	return nil
}

// Snapshot returns an independently owned deep copy of the buffer.
func (s *Session) Snapshot() *gapbuffer.GapBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Save()
}

// Debug returns the buffer state dump.
func (s *Session) Debug() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.DebugContent()
}

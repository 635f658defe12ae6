package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Buffer.GapSize != DefaultGapSize {
		t.Errorf("expected gap size %d, got %d", DefaultGapSize, s.Buffer.GapSize)
	}
	if s.Buffer.ForceFastMode {
		t.Error("fast mode should default to off")
	}
	if s.Words.Separators != DefaultWordSeparators {
		t.Errorf("unexpected default separators %q", s.Words.Separators)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestNewWithOptions(t *testing.T) {
	s := New(WithGapSize(64), WithForceFastMode(), WithWordSeparators(" -"))
	if s.Buffer.GapSize != 64 {
		t.Errorf("expected gap size 64, got %d", s.Buffer.GapSize)
	}
	if !s.Buffer.ForceFastMode {
		t.Error("expected fast mode on")
	}
	if s.Words.Separators != " -" {
		t.Errorf("unexpected separators %q", s.Words.Separators)
	}
}

func TestValidate(t *testing.T) {
	s := New(WithGapSize(1))
	if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("expected ErrInvalidSettings, got %v", err)
	}
}

func TestSeparatorSet(t *testing.T) {
	s := New(WithWordSeparators(" ,"))
	set := s.SeparatorSet()
	if !set.Contains(' ') || !set.Contains(',') {
		t.Error("expected configured separators in the set")
	}
	if set.Contains('x') {
		t.Error("unexpected member in the set")
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte("[buffer]\ngap_size = 256\nforce_fast_mode = true\n\n[words]\nseparators = \" .\"\n")
	s, err := Parse("settings.toml", data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Buffer.GapSize != 256 || !s.Buffer.ForceFastMode {
		t.Errorf("unexpected buffer settings %+v", s.Buffer)
	}
	if s.Words.Separators != " ." {
		t.Errorf("unexpected separators %q", s.Words.Separators)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte("buffer:\n  gap_size: 32\nwords:\n  separators: \" ;\"\n")
	s, err := Parse("settings.yaml", data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Buffer.GapSize != 32 {
		t.Errorf("expected gap size 32, got %d", s.Buffer.GapSize)
	}
	if s.Words.Separators != " ;" {
		t.Errorf("unexpected separators %q", s.Words.Separators)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	s, err := Parse("settings.toml", []byte("[buffer]\ngap_size = 50\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Buffer.GapSize != 50 {
		t.Errorf("expected gap size 50, got %d", s.Buffer.GapSize)
	}
	if s.Words.Separators != DefaultWordSeparators {
		t.Error("absent sections should keep their defaults")
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	if _, err := Parse("settings.json", []byte("{}")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseRejectsInvalidGapSize(t *testing.T) {
	if _, err := Parse("settings.toml", []byte("[buffer]\ngap_size = 1\n")); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("expected ErrInvalidSettings, got %v", err)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse("settings.toml", []byte("not toml ][")); err == nil {
		t.Error("expected a parse error")
	}
	if _, err := Parse("settings.yaml", []byte("buffer: [unterminated")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if s.Buffer.GapSize != DefaultGapSize {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := os.WriteFile(path, []byte("[buffer]\ngap_size = 77\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if s.Buffer.GapSize != 77 {
		t.Errorf("expected gap size 77, got %d", s.Buffer.GapSize)
	}
}

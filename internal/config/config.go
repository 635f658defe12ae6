// Package config supplies editor settings to the text core: the word
// separator set consumed by the word extractor and the gap buffer tuning
// knobs. Settings come from defaults, functional options, or a TOML/YAML
// file chosen by extension.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/juanjux/editorexperiment/internal/engine/extract"
)

// DefaultWordSeparators is the separator set used when no configuration
// overrides it: whitespace plus the ASCII punctuation the word motions of
// the editor treat as boundaries.
const DefaultWordSeparators = " \t\n.,;:!?'\"()[]{}<>-+*/=&|^%$#@~`\\"

// DefaultGapSize mirrors the buffer default so a zero config round-trips.
const DefaultGapSize = 128

// Errors returned by configuration loading.
var (
	// ErrUnsupportedFormat indicates a settings file with an extension
	// other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("unsupported settings format")

	// ErrInvalidSettings indicates settings that violate the buffer
	// contract (gap size of 1 or less).
	ErrInvalidSettings = errors.New("invalid settings")
)

// Settings holds everything the core takes from the outside world.
type Settings struct {
	Buffer BufferSettings `toml:"buffer" yaml:"buffer"`
	Words  WordSettings   `toml:"words" yaml:"words"`
}

// BufferSettings tunes the gap buffer.
type BufferSettings struct {
	GapSize       int  `toml:"gap_size" yaml:"gap_size"`
	ForceFastMode bool `toml:"force_fast_mode" yaml:"force_fast_mode"`
}

// WordSettings configures the word extractor.
type WordSettings struct {
	// Separators lists the separator code points as a plain string.
	Separators string `toml:"separators" yaml:"separators"`
}

// Default returns the settings used when no file or option overrides them.
func Default() *Settings {
	return &Settings{
		Buffer: BufferSettings{GapSize: DefaultGapSize},
		Words:  WordSettings{Separators: DefaultWordSeparators},
	}
}

// Option is a functional option applied on top of the defaults.
type Option func(*Settings)

// WithGapSize overrides the configured gap size.
func WithGapSize(size int) Option {
	return func(s *Settings) {
		s.Buffer.GapSize = size
	}
}

// WithForceFastMode bypasses the grapheme-aware paths.
func WithForceFastMode() Option {
	return func(s *Settings) {
		s.Buffer.ForceFastMode = true
	}
}

// WithWordSeparators overrides the separator code points.
func WithWordSeparators(seps string) Option {
	return func(s *Settings) {
		s.Words.Separators = seps
	}
}

// New builds settings from the defaults plus the given options.
func New(opts ...Option) *Settings {
	s := Default()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate checks the settings against the buffer contract.
func (s *Settings) Validate() error {
	if s.Buffer.GapSize <= 1 {
		return fmt.Errorf("%w: gap size %d must be greater than 1", ErrInvalidSettings, s.Buffer.GapSize)
	}
	return nil
}

// SeparatorSet converts the configured separators into the set the word
// extractor consumes.
func (s *Settings) SeparatorSet() extract.Separators {
	return extract.SeparatorsFromString(s.Words.Separators)
}

// Load reads settings from path, dispatching on the file extension. A
// missing file is not an error: the defaults are returned, matching the
// behavior of an editor started before any configuration exists.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes settings data, dispatching on the extension of name.
// Fields absent from the file keep their defaults.
func Parse(name string, data []byte) (*Settings, error) {
	s := Default()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if err := toml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

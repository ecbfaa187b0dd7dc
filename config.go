package flint

import (
	"fmt"
	"strings"

	"github.com/coregx/flint/fold"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Comparison selects character-equality semantics. See package fold.
type Comparison = fold.Comparison

// Comparison modes.
const (
	CurrentCulture             = fold.CurrentCulture
	CurrentCultureIgnoreCase   = fold.CurrentCultureIgnoreCase
	InvariantCulture           = fold.InvariantCulture
	InvariantCultureIgnoreCase = fold.InvariantCultureIgnoreCase
	Ordinal                    = fold.Ordinal
	OrdinalIgnoreCase          = fold.OrdinalIgnoreCase
)

// ParseComparison parses a comparison name such as "ordinal-ignore-case".
func ParseComparison(s string) (Comparison, error) {
	return fold.ParseComparison(s)
}

// MatchMode selects which occurrences count as matches.
type MatchMode uint8

const (
	// Fuzzy reports every occurrence, including ones inside larger words.
	Fuzzy MatchMode = iota

	// ExactMatch only reports occurrences that are not adjacent to letters,
	// digits or underscores and whose text is spelled exactly like the
	// pattern, whatever the comparison.
	ExactMatch
)

// String returns the name accepted by ParseMatchMode.
func (m MatchMode) String() string {
	switch m {
	case Fuzzy:
		return "fuzzy"
	case ExactMatch:
		return "exact"
	default:
		return fmt.Sprintf("MatchMode(%d)", m)
	}
}

// ParseMatchMode parses "fuzzy" or "exact" (also "exact-match").
// The empty string yields Fuzzy.
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "", "fuzzy":
		return Fuzzy, nil
	case "exact", "exact-match", "exactmatch":
		return ExactMatch, nil
	default:
		return 0, &ConfigError{Field: "MatchMode", Message: fmt.Sprintf("unknown match mode %q", s)}
	}
}

// Config controls how a Matcher compares text.
//
// The zero value is valid and equal to DefaultConfig().
//
// Example:
//
//	config := flint.DefaultConfig()
//	config.Comparison = flint.OrdinalIgnoreCase
//	m, err := flint.NewWithConfig([]string{"jedi"}, config)
type Config struct {
	// Comparison selects case folding.
	// Default: CurrentCulture
	Comparison Comparison

	// MatchMode selects Fuzzy or ExactMatch reporting.
	// Default: Fuzzy
	MatchMode MatchMode

	// Culture is the language used by CurrentCultureIgnoreCase.
	// Default: language.Und
	Culture language.Tag

	// DisablePrefilter turns off byte-level rejection of texts without any
	// occurrence. The prefilter is only ever used for case-sensitive
	// comparisons.
	// Default: false
	DisablePrefilter bool
}

// DefaultConfig returns the default configuration: case-sensitive
// culture comparison, Fuzzy matching, prefilter enabled.
func DefaultConfig() Config {
	return Config{
		Comparison: CurrentCulture,
		MatchMode:  Fuzzy,
		Culture:    language.Und,
	}
}

// Validate checks that every field holds a defined value.
func (c Config) Validate() error {
	if !c.Comparison.Valid() {
		return &ConfigError{
			Field:   "Comparison",
			Message: fmt.Sprintf("value %d out of range", c.Comparison),
			Cause:   fold.ErrUnknownComparison,
		}
	}
	if c.MatchMode != Fuzzy && c.MatchMode != ExactMatch {
		return &ConfigError{
			Field:   "MatchMode",
			Message: fmt.Sprintf("value %d out of range", c.MatchMode),
		}
	}
	return nil
}

// Option configures a Matcher.
type Option func(*options)

type options struct {
	config Config
	logger *zap.Logger
}

// WithComparison sets the comparison mode.
func WithComparison(c Comparison) Option {
	return func(o *options) {
		o.config.Comparison = c
	}
}

// WithMatchMode sets the match mode.
func WithMatchMode(m MatchMode) Option {
	return func(o *options) {
		o.config.MatchMode = m
	}
}

// WithCulture sets the language used by CurrentCultureIgnoreCase.
func WithCulture(tag language.Tag) Option {
	return func(o *options) {
		o.config.Culture = tag
	}
}

// WithPrefilter enables or disables the byte-level prefilter.
func WithPrefilter(enabled bool) Option {
	return func(o *options) {
		o.config.DisablePrefilter = !enabled
	}
}

// WithLogger sets the logger used for build diagnostics.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

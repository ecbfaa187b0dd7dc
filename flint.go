// Package flint provides multi-pattern literal search and replace for Go.
//
// A Matcher is compiled once from a set of literal patterns into an
// Aho-Corasick automaton and then finds every occurrence of every pattern in
// a single linear pass over the text, no matter how many patterns there are.
// Overlapping and nested occurrences are all reported.
//
// Basic usage:
//
//	m, err := flint.New([]string{"he", "she", "his", "hers"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for match := range m.Find("ushers") {
//	    fmt.Println(match.Start, match.End, match.Value)
//	}
//	// 1 3 she
//	// 2 3 he
//	// 2 5 hers
//
//	out := m.Replace("she sells", "*") // "* sells"
//
// Case-insensitive and whole-word matching:
//
//	m := flint.MustNew([]string{"jedi"}, flint.WithComparison(flint.OrdinalIgnoreCase))
//	m.IsMatch("Return of the Jedi") // true
//
//	w := flint.MustNew([]string{"Jedi"}, flint.WithMatchMode(flint.ExactMatch))
//	w.IsMatch("Return of the Jedi") // true
//	w.IsMatch("Jedis")              // false
//
// Matching works on Unicode code points decoded from UTF-8; bytes of
// invalid UTF-8 only match identical bytes. Match offsets are byte offsets
// into the original text.
//
// A Matcher is immutable and safe for concurrent use by multiple goroutines.
package flint

import (
	"fmt"
	"slices"
	"sync"

	"github.com/coregx/flint/automaton"
	"github.com/coregx/flint/fold"
	"github.com/coregx/flint/internal/conv"
	"github.com/coregx/flint/internal/sparse"
	"github.com/coregx/flint/prefilter"
	"go.uber.org/zap"
)

// Matcher finds occurrences of a fixed set of literal patterns.
//
// A Matcher is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	m := flint.MustNew([]string{"a", "aa"})
//	for match := range m.Find("aa") {
//	    fmt.Println(match)
//	}
//	// [0,0]"a"
//	// [0,1]"aa"
//	// [1,1]"a"
type Matcher struct {
	patterns []string
	auto     *automaton.Automaton
	norm     *fold.Normalizer
	config   Config
	pf       prefilter.Prefilter // nil when not applicable

	// seen pools the id sets used by MatchedPatterns.
	seen sync.Pool
}

// New compiles patterns into a Matcher.
//
// Pattern ids are positions in the slice. Empty patterns are allowed and
// match after every code point; duplicates are kept and reported once per
// copy. A nil slice is rejected with an *ArgumentError; an empty slice gives
// a Matcher that never matches.
//
// Example:
//
//	m, err := flint.New([]string{"foo", "bar"}, flint.WithComparison(flint.OrdinalIgnoreCase))
//	if err != nil {
//	    log.Fatal(err)
//	}
func New(patterns []string, opts ...Option) (*Matcher, error) {
	return NewWithConfig(patterns, DefaultConfig(), opts...)
}

// NewWithConfig compiles patterns with an explicit configuration.
// Options are applied on top of config.
//
// Example:
//
//	config := flint.DefaultConfig()
//	config.MatchMode = flint.ExactMatch
//	m, err := flint.NewWithConfig([]string{"go"}, config)
func NewWithConfig(patterns []string, config Config, opts ...Option) (*Matcher, error) {
	if patterns == nil {
		return nil, argError("patterns", "must not be nil")
	}

	o := options{config: config, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	norm, err := fold.New(o.config.Comparison, o.config.Culture)
	if err != nil {
		return nil, &ConfigError{Field: "Comparison", Message: "cannot build normalizer", Cause: err}
	}

	m := &Matcher{
		patterns: slices.Clone(patterns),
		norm:     norm,
		config:   o.config,
	}

	builder := automaton.NewBuilderWithCapacity(totalLen(patterns) + 1)
	for _, p := range m.patterns {
		builder.AddPattern(norm.Fold(p))
	}
	m.auto = builder.Build()

	universe := conv.IntToUint32(len(m.patterns))
	m.seen.New = func() any {
		return sparse.New(universe)
	}

	if norm.IsIdentity() && !o.config.DisablePrefilter {
		if pf := prefilter.New(m.patterns); pf != nil {
			m.pf = pf
		}
	}

	o.logger.Debug("flint matcher built",
		zap.Int("patterns", len(m.patterns)),
		zap.Int("states", m.auto.NumStates()),
		zap.Int("max_pattern_len", m.auto.MaxPatternLen()),
		zap.Stringer("comparison", o.config.Comparison),
		zap.Stringer("mode", o.config.MatchMode),
		zap.Bool("prefilter", m.pf != nil),
	)
	return m, nil
}

// MustNew is like New but panics if the matcher cannot be built.
//
// Example:
//
//	var swearWords = flint.MustNew([]string{"darn", "heck"})
func MustNew(patterns []string, opts ...Option) *Matcher {
	m, err := New(patterns, opts...)
	if err != nil {
		panic("flint: New: " + err.Error())
	}
	return m
}

func totalLen(patterns []string) int {
	n := 0
	for _, p := range patterns {
		n += len(p)
	}
	return n
}

// Patterns returns a copy of the pattern set, indexed by pattern id.
func (m *Matcher) Patterns() []string {
	return slices.Clone(m.patterns)
}

// NumPatterns returns the number of patterns.
func (m *Matcher) NumPatterns() int {
	return len(m.patterns)
}

// Comparison returns the comparison mode.
func (m *Matcher) Comparison() Comparison {
	return m.config.Comparison
}

// MatchMode returns the match mode.
func (m *Matcher) MatchMode() MatchMode {
	return m.config.MatchMode
}

// Config returns the configuration the matcher was built with.
func (m *Matcher) Config() Config {
	return m.config
}

// String returns a short description of the matcher.
func (m *Matcher) String() string {
	return fmt.Sprintf("flint.Matcher(%d patterns, %v, %v)", len(m.patterns), m.config.Comparison, m.config.MatchMode)
}

// Package prefilter provides fast rejection of texts that cannot contain any
// pattern.
//
// The matcher scans symbol by symbol, decoding UTF-8 and folding case as it
// goes. When folding is the identity, a plain byte-level multi-literal search
// answers "does anything match at all" much faster, so texts without a single
// occurrence never reach the symbol scanner.
//
// Example usage:
//
//	pf := prefilter.New([]string{"hello", "world"})
//	if pf != nil && !pf.IsMatch([]byte("foo bar")) {
//	    // no pattern occurs, skip the full scan
//	}
package prefilter

import (
	"unicode/utf8"
	"unsafe"

	"github.com/coregx/ahocorasick"
)

// Prefilter reports whether a haystack may contain a pattern occurrence.
//
// A prefilter built by New is complete: IsMatch returning true means at
// least one pattern occurs, and false means none does.
type Prefilter interface {
	// IsMatch reports whether any pattern occurs in haystack.
	IsMatch(haystack []byte) bool

	// IsMatchString is IsMatch for a string haystack, without copying it.
	IsMatchString(haystack string) bool

	// NumPatterns returns the number of literals the prefilter searches for.
	NumPatterns() int
}

// Literal is a byte-level Aho-Corasick prefilter.
type Literal struct {
	auto     *ahocorasick.Automaton
	patterns int
}

// New builds a literal prefilter for patterns compared byte for byte.
//
// It returns nil when a byte-level search cannot stand in for the symbol
// scanner:
//   - there are no patterns;
//   - a pattern is empty (it matches every non-empty text anyway);
//   - a pattern is not valid UTF-8 (its bytes could match inside a code point);
//   - the automaton fails to build.
func New(patterns []string) *Literal {
	if len(patterns) == 0 {
		return nil
	}
	for _, p := range patterns {
		if p == "" || !utf8.ValidString(p) {
			return nil
		}
	}

	builder := ahocorasick.NewBuilder()
	for _, p := range patterns {
		builder.AddPattern([]byte(p))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Literal{auto: auto, patterns: len(patterns)}
}

// IsMatch reports whether any pattern occurs in haystack.
func (l *Literal) IsMatch(haystack []byte) bool {
	return l.auto.IsMatch(haystack)
}

// IsMatchString reports whether any pattern occurs in haystack.
func (l *Literal) IsMatchString(haystack string) bool {
	return l.auto.IsMatch(bytesOf(haystack))
}

// bytesOf views s as a byte slice. The automaton only reads its input, so
// the string's immutability is preserved.
func bytesOf(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// NumPatterns returns the number of literals searched for.
func (l *Literal) NumPatterns() int {
	return l.patterns
}

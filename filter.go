package flint

import (
	"unicode"
	"unicode/utf8"
)

// exact reports whether a candidate survives ExactMatch filtering: it must
// not touch word characters on either side, and its original text must equal
// its pattern byte for byte. Under an ignore-case comparison the scan finds
// every casing; only the one spelled like the pattern is kept.
func (m *Matcher) exact(text string, match Match) bool {
	if match.Start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:match.Start])
		if isWordChar(r) {
			return false
		}
	}
	if next := match.End + 1; next < len(text) {
		r, _ := utf8.DecodeRuneInString(text[next:])
		if isWordChar(r) {
			return false
		}
	}
	return match.Value == m.patterns[match.Pattern]
}

// isWordChar reports whether r is a letter, digit or underscore.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

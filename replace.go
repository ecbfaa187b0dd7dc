package flint

import (
	"cmp"
	"iter"
	"slices"
	"strings"
)

// Replace returns a copy of text with every match replaced by repl.
//
// Overlapping matches are resolved leftmost first: matches are taken in
// order of Start (ties in the order Find reports them) and a match starting
// inside an already replaced span is skipped.
//
// Example:
//
//	m := flint.MustNew([]string{"a"})
//	m.Replace("banana", "x") // "bxnxnx"
func (m *Matcher) Replace(text, repl string) string {
	return m.replace(text, m.Find(text), func(Match) string {
		return repl
	})
}

// ReplaceFunc returns a copy of text with every match replaced by the return
// value of provider, called once per applied match. A nil provider is
// rejected with an *ArgumentError.
//
// Example:
//
//	m := flint.MustNew([]string{"Jedi"})
//	out, _ := m.ReplaceFunc("the Jedi", func(match flint.Match) string {
//	    return "[" + match.Value + "]"
//	})
//	// out = "the [Jedi]"
func (m *Matcher) ReplaceFunc(text string, provider func(Match) string) (string, error) {
	if provider == nil {
		return "", argError("provider", "must not be nil")
	}
	return m.replace(text, m.Find(text), provider), nil
}

// ReplaceEach returns a copy of text with every occurrence of pattern i
// replaced by replacements[i]. len(replacements) must equal NumPatterns().
//
// ReplaceEach ignores the match mode: it works on every occurrence, as in
// Fuzzy mode, with the same leftmost-first overlap resolution as Replace.
//
// Example:
//
//	m := flint.MustNew([]string{"cat", "dog"})
//	out, _ := m.ReplaceEach("cat and dog", []string{"dog", "cat"})
//	// out = "dog and cat"
func (m *Matcher) ReplaceEach(text string, replacements []string) (string, error) {
	if replacements == nil {
		return "", argError("replacements", "must not be nil")
	}
	if len(replacements) != len(m.patterns) {
		return "", argError("replacements", "length must equal the number of patterns")
	}
	return m.replace(text, m.candidates(text), func(match Match) string {
		return replacements[match.Pattern]
	}), nil
}

// replace applies subst to matches, skipping any match that starts before
// the end of the previously applied one.
func (m *Matcher) replace(text string, matches iter.Seq[Match], subst func(Match) string) string {
	if len(m.patterns) == 0 {
		return text
	}
	ms := slices.Collect(matches)
	if len(ms) == 0 {
		return text
	}
	slices.SortStableFunc(ms, func(a, b Match) int {
		return cmp.Compare(a.Start, b.Start)
	})

	var sb strings.Builder
	sb.Grow(len(text))
	cursor := 0
	for _, match := range ms {
		if match.Start < cursor {
			continue
		}
		sb.WriteString(text[cursor:match.Start])
		sb.WriteString(subst(match))
		cursor = match.End + 1
	}
	sb.WriteString(text[cursor:])
	return sb.String()
}

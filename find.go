package flint

import (
	"context"
	"iter"
	"slices"

	"github.com/coregx/flint/fold"
	"github.com/coregx/flint/internal/conv"
	"github.com/coregx/flint/internal/sparse"
	"golang.org/x/sync/errgroup"
)

// candidates yields every occurrence of every pattern in text, unfiltered:
// the raw scan shared by Find and ReplaceEach.
//
// The automaton sees folded symbols and reports (position, id) pairs; the
// byte offsets of the last MaxPatternLen symbols are kept in a ring so each
// pair can be mapped back onto the original text.
func (m *Matcher) candidates(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if len(m.patterns) == 0 || text == "" {
			return
		}
		if m.pf != nil && !m.pf.IsMatchString(text) {
			return
		}

		folder := m.norm.Folder()
		ring := make([]int, max(m.auto.MaxPatternLen(), 1))
		var off, width int
		pos := -1

		symbols := func(yield func(rune) bool) {
			for i := 0; i < len(text); {
				r, w := fold.Decode(text, i)
				pos++
				ring[pos%len(ring)] = i
				off, width = i, w
				if !yield(folder.Rune(r)) {
					return
				}
				i += w
			}
		}

		for p, id := range m.auto.Scan(symbols) {
			end := off + width
			start := end
			if n := m.auto.PatternLen(id); n > 0 {
				start = ring[(p-n+1)%len(ring)]
			}
			if !yield(Match{Start: start, End: end - 1, Value: text[start:end], Pattern: id}) {
				return
			}
		}
	}
}

// Find returns every match in text, in order of increasing End; matches
// ending at the same offset come longest pattern first. In ExactMatch mode
// only whole-word matches are included.
//
// The sequence is lazy and may be iterated any number of times.
//
// Example:
//
//	m := flint.MustNew([]string{"a", "aa"})
//	for match := range m.Find("aa") {
//	    fmt.Println(match.Start, match.End, match.Value)
//	}
//	// 0 0 a
//	// 0 1 aa
//	// 1 1 a
func (m *Matcher) Find(text string) iter.Seq[Match] {
	if m.config.MatchMode != ExactMatch {
		return m.candidates(text)
	}
	return func(yield func(Match) bool) {
		for match := range m.candidates(text) {
			if !m.exact(text, match) {
				continue
			}
			if !yield(match) {
				return
			}
		}
	}
}

// FindFunc calls onMatch for every match in text, in the order Find
// produces them. A nil onMatch is rejected with an *ArgumentError.
func (m *Matcher) FindFunc(text string, onMatch func(Match)) error {
	if onMatch == nil {
		return argError("onMatch", "must not be nil")
	}
	for match := range m.Find(text) {
		onMatch(match)
	}
	return nil
}

// Matches returns the matches of Find as a slice, or nil if there are none.
func (m *Matcher) Matches(text string) []Match {
	return slices.Collect(m.Find(text))
}

// Count returns the number of matches in text.
func (m *Matcher) Count(text string) int {
	n := 0
	for range m.Find(text) {
		n++
	}
	return n
}

// IsMatch reports whether text contains at least one match.
//
// Example:
//
//	m := flint.MustNew([]string{"foo", "bar"})
//	m.IsMatch("a bar b") // true
func (m *Matcher) IsMatch(text string) bool {
	if m.pf != nil && m.config.MatchMode == Fuzzy {
		return m.pf.IsMatchString(text)
	}
	for range m.Find(text) {
		return true
	}
	return false
}

// MatchedPatterns returns the ids of the patterns that occur in text, in the
// order they are first found.
func (m *Matcher) MatchedPatterns(text string) []int {
	if len(m.patterns) == 0 {
		return nil
	}
	seen := m.seen.Get().(*sparse.Set)
	seen.Clear()
	defer m.seen.Put(seen)

	for match := range m.Find(text) {
		seen.Insert(conv.IntToUint32(match.Pattern))
	}
	if seen.Len() == 0 {
		return nil
	}
	ids := make([]int, 0, seen.Len())
	for _, id := range seen.Values() {
		ids = append(ids, conv.Uint32ToInt(id))
	}
	return ids
}

// FindAll runs Find over every text and returns the matches keyed by text.
// Duplicate texts collapse into one entry. A nil slice is rejected with an
// *ArgumentError.
func (m *Matcher) FindAll(texts []string) (map[string][]Match, error) {
	if texts == nil {
		return nil, argError("texts", "must not be nil")
	}
	results := make(map[string][]Match, len(texts))
	for _, text := range texts {
		results[text] = m.Matches(text)
	}
	return results, nil
}

// FindAllContext is FindAll spread over at most workers goroutines.
// workers <= 0 means one goroutine per text. It stops early and returns the
// context's error if ctx is cancelled.
func (m *Matcher) FindAllContext(ctx context.Context, texts []string, workers int) (map[string][]Match, error) {
	if texts == nil {
		return nil, argError("texts", "must not be nil")
	}

	found := make([][]Match, len(texts))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, text := range texts {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found[i] = m.Matches(text)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	results := make(map[string][]Match, len(texts))
	for i, text := range texts {
		results[text] = found[i]
	}
	return results, nil
}

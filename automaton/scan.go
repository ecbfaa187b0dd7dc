package automaton

import (
	"iter"

	"github.com/coregx/flint/internal/conv"
)

// Scan runs the automaton over symbols and yields a (position, pattern id)
// pair for every pattern occurrence. position is the index of the symbol on
// which the occurrence ends.
//
// Pairs come out in non-decreasing position order; pairs sharing a position
// come out most specific pattern first. Overlapping and nested occurrences
// are all reported. The returned sequence can be iterated any number of times
// as long as symbols can.
func (a *Automaton) Scan(symbols iter.Seq[rune]) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		s := Root
		pos := 0
		for r := range symbols {
			s = a.Next(s, r)
			for _, id := range a.nodes[s].out {
				if !yield(pos, conv.Uint32ToInt(id)) {
					return
				}
			}
			pos++
		}
	}
}

// ScanRunes is Scan over a slice of symbols.
func (a *Automaton) ScanRunes(symbols []rune) iter.Seq2[int, int] {
	return a.Scan(func(yield func(rune) bool) {
		for _, r := range symbols {
			if !yield(r) {
				return
			}
		}
	})
}

// Package automaton implements the Aho-Corasick automaton behind flint.
//
// The automaton is built in two phases. A Builder inserts every pattern into
// a prefix trie stored in a flat node arena, then Build computes failure links
// with a breadth-first pass and closes each node's output list over its
// failure chain. The resulting Automaton is immutable: scanning never walks a
// failure chain to collect outputs, so a scan is linear in the input length.
//
// The automaton works on symbols (runes). Callers decide how text maps to
// symbols; see package fold.
package automaton

import (
	"github.com/coregx/flint/internal/conv"
)

// StateID identifies a node in the automaton's arena.
type StateID uint32

// Root is the start state. Its failure link points to itself.
const Root StateID = 0

// node is one trie node.
//
// children owns the tree edges; fail is a cross edge into the same arena.
// out lists the patterns ending here: own terminals first, then those
// inherited from fail, so deeper (more specific) patterns come first.
type node struct {
	children map[rune]StateID
	fail     StateID
	depth    uint32
	out      []uint32
}

// Automaton is a compiled Aho-Corasick automaton.
// It is safe for concurrent use.
type Automaton struct {
	nodes   []node
	lengths []uint32 // symbol length per pattern id
	maxLen  int
}

// NumStates returns the number of trie nodes, including the root.
func (a *Automaton) NumStates() int {
	return len(a.nodes)
}

// NumPatterns returns the number of patterns compiled into a.
func (a *Automaton) NumPatterns() int {
	return len(a.lengths)
}

// PatternLen returns the length in symbols of pattern id.
func (a *Automaton) PatternLen(id int) int {
	return conv.Uint32ToInt(a.lengths[id])
}

// MaxPatternLen returns the length in symbols of the longest pattern.
func (a *Automaton) MaxPatternLen() int {
	return a.maxLen
}

// Fail returns the failure link of s.
func (a *Automaton) Fail(s StateID) StateID {
	return a.nodes[s].fail
}

// Depth returns the length of the path from the root to s.
func (a *Automaton) Depth(s StateID) int {
	return conv.Uint32ToInt(a.nodes[s].depth)
}

// Outputs returns the ids of every pattern that ends when the automaton is
// in state s, most specific first. The slice must not be modified.
func (a *Automaton) Outputs(s StateID) []uint32 {
	return a.nodes[s].out
}

// Next returns the state reached from s on symbol r, following failure
// links as needed.
func (a *Automaton) Next(s StateID, r rune) StateID {
	for {
		if next, ok := a.nodes[s].children[r]; ok {
			return next
		}
		if s == Root {
			return Root
		}
		s = a.nodes[s].fail
	}
}

package automaton

import (
	"github.com/coregx/flint/internal/conv"
)

// Builder inserts patterns into a trie and compiles the automaton.
type Builder struct {
	nodes   []node
	lengths []uint32
	maxLen  int
}

// NewBuilder creates a builder holding only the root node.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity creates a builder with room for capacity nodes.
func NewBuilderWithCapacity(capacity int) *Builder {
	if capacity < 1 {
		capacity = 1
	}
	b := &Builder{nodes: make([]node, 0, capacity)}
	b.nodes = append(b.nodes, node{fail: Root})
	return b
}

// AddPattern inserts the symbols of one pattern and returns its id.
// Ids are assigned in insertion order starting at 0. Duplicate and empty
// patterns are kept; an empty pattern terminates at the root.
func (b *Builder) AddPattern(symbols []rune) int {
	id := len(b.lengths)
	s := Root
	for _, r := range symbols {
		next, ok := b.nodes[s].children[r]
		if !ok {
			next = b.addNode(s)
			if b.nodes[s].children == nil {
				b.nodes[s].children = make(map[rune]StateID, 1)
			}
			b.nodes[s].children[r] = next
		}
		s = next
	}
	b.nodes[s].out = append(b.nodes[s].out, conv.IntToUint32(id))
	b.lengths = append(b.lengths, conv.IntToUint32(len(symbols)))
	if len(symbols) > b.maxLen {
		b.maxLen = len(symbols)
	}
	return id
}

func (b *Builder) addNode(parent StateID) StateID {
	id := StateID(conv.IntToUint32(len(b.nodes)))
	b.nodes = append(b.nodes, node{
		fail:  Root,
		depth: b.nodes[parent].depth + 1,
	})
	return id
}

// Build compiles failure links and returns the automaton.
// The builder is reset and may be reused afterwards.
func (b *Builder) Build() *Automaton {
	a := &Automaton{
		nodes:   b.nodes,
		lengths: b.lengths,
		maxLen:  b.maxLen,
	}
	compile(a)
	*b = *NewBuilder()
	return a
}

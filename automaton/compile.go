package automaton

import (
	"slices"
)

// compile sets every failure link and closes output lists over failure
// chains.
//
// Nodes are visited breadth-first, so a node's failure target is always
// shallower and already final (its own outputs included) when the node is
// reached. Children are expanded in symbol order to keep the result
// independent of map iteration order.
func compile(a *Automaton) {
	nodes := a.nodes
	nodes[Root].fail = Root

	queue := make([]StateID, 0, len(nodes))
	for _, r := range sortedSymbols(nodes[Root].children) {
		child := nodes[Root].children[r]
		nodes[child].fail = Root
		inherit(nodes, child)
		queue = append(queue, child)
	}

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, r := range sortedSymbols(nodes[u].children) {
			v := nodes[u].children[r]
			queue = append(queue, v)

			f := nodes[u].fail
			for f != Root {
				if _, ok := nodes[f].children[r]; ok {
					break
				}
				f = nodes[f].fail
			}
			if next, ok := nodes[f].children[r]; ok {
				nodes[v].fail = next
			} else {
				nodes[v].fail = Root
			}
			inherit(nodes, v)
		}
	}
}

// inherit appends the outputs of v's failure target to v's own outputs.
func inherit(nodes []node, v StateID) {
	inherited := nodes[nodes[v].fail].out
	if len(inherited) == 0 {
		return
	}
	out := make([]uint32, 0, len(nodes[v].out)+len(inherited))
	out = append(out, nodes[v].out...)
	nodes[v].out = append(out, inherited...)
}

func sortedSymbols(children map[rune]StateID) []rune {
	if len(children) == 0 {
		return nil
	}
	keys := make([]rune, 0, len(children))
	for r := range children {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	return keys
}

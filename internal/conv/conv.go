// Package conv provides checked integer narrowing for automaton identifiers.
//
// Trie states and pattern identifiers are stored as uint32 to keep the node
// arena compact. Overflow means the pattern set is larger than the automaton
// can address, which is a programming error, so these helpers panic.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// compare as uint so 32-bit platforms do not overflow the constant
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// Uint32ToInt widens an identifier back to int for slice indexing.
// Panics on 32-bit platforms where the value does not fit.
//
//go:inline
func Uint32ToInt(n uint32) int {
	if uint64(n) > uint64(math.MaxInt) {
		panic("integer overflow: uint32 value out of int range")
	}
	return int(n)
}

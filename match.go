package flint

import "fmt"

// Match is one occurrence of a pattern in a text.
//
// Start and End are inclusive byte offsets into the original text, so
// Value == text[Start:End+1]. Value is the original text, not its folded
// form. A match of the empty pattern has End == Start-1 and an empty Value.
type Match struct {
	Start   int
	End     int
	Value   string
	Pattern int // index of the matched pattern
}

// Len returns the length of the match in bytes.
func (m Match) Len() int {
	return m.End - m.Start + 1
}

// String formats the match as "[start,end]value".
func (m Match) String() string {
	return fmt.Sprintf("[%d,%d]%q", m.Start, m.End, m.Value)
}

package fold

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownComparison is returned for comparison values or names outside
// the supported set.
var ErrUnknownComparison = errors.New("unknown comparison")

// Comparison selects the character-equality semantics used when building
// and scanning an automaton.
//
// The zero value is CurrentCulture, a case-sensitive comparison.
type Comparison uint8

const (
	// CurrentCulture compares code points exactly, using the configured culture.
	CurrentCulture Comparison = iota

	// CurrentCultureIgnoreCase upper-cases with the configured culture's rules
	// (for example the Turkish dotted capital I).
	CurrentCultureIgnoreCase

	// InvariantCulture compares code points exactly.
	InvariantCulture

	// InvariantCultureIgnoreCase upper-cases with language-neutral rules.
	InvariantCultureIgnoreCase

	// Ordinal compares code points exactly.
	Ordinal

	// OrdinalIgnoreCase upper-cases with the simple Unicode mapping.
	OrdinalIgnoreCase
)

var comparisonNames = [...]string{
	CurrentCulture:             "culture",
	CurrentCultureIgnoreCase:   "culture-ignore-case",
	InvariantCulture:           "invariant",
	InvariantCultureIgnoreCase: "invariant-ignore-case",
	Ordinal:                    "ordinal",
	OrdinalIgnoreCase:          "ordinal-ignore-case",
}

// String returns the name accepted by ParseComparison.
func (c Comparison) String() string {
	if int(c) < len(comparisonNames) {
		return comparisonNames[c]
	}
	return fmt.Sprintf("Comparison(%d)", c)
}

// Valid reports whether c is one of the defined comparisons.
func (c Comparison) Valid() bool {
	return int(c) < len(comparisonNames)
}

// IgnoreCase reports whether c folds case.
func (c Comparison) IgnoreCase() bool {
	switch c {
	case CurrentCultureIgnoreCase, InvariantCultureIgnoreCase, OrdinalIgnoreCase:
		return true
	default:
		return false
	}
}

// ParseComparison parses a comparison name such as "ordinal-ignore-case".
// Matching is case-insensitive and accepts underscores in place of dashes.
func ParseComparison(s string) (Comparison, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if name == "" {
		return CurrentCulture, nil
	}
	for i, n := range comparisonNames {
		if n == name {
			return Comparison(i), nil //nolint:gosec // G115: i < len(comparisonNames)
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownComparison, s)
}

// Package fold implements the text normalization shared by pattern
// compilation and scanning.
//
// Matching operates on symbols: one symbol per UTF-8 encoded code point, plus
// one symbol per byte that is not part of a valid UTF-8 sequence. A Normalizer
// maps every symbol to exactly one folded symbol, so folded text always lines
// up position-for-position with the original.
package fold

import (
	"iter"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// invalidBase is the first symbol used for bytes of invalid UTF-8.
// Byte b maps to invalidBase+b, outside the Unicode range, so an invalid
// byte only ever matches the same invalid byte.
const invalidBase = unicode.MaxRune + 1

// Decode returns the symbol starting at s[i] and its width in bytes.
func Decode(s string, i int) (rune, int) {
	c := s[i]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError && size == 1 {
		return invalidBase + rune(c), 1
	}
	return r, size
}

// Symbols yields the byte offset and symbol of every position in s.
func Symbols(s string) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i := 0; i < len(s); {
			r, size := Decode(s, i)
			if !yield(i, r) {
				return
			}
			i += size
		}
	}
}

// Normalizer folds symbols according to a Comparison.
// A Normalizer is immutable and safe for concurrent use; per-goroutine
// folding state lives in a Folder.
type Normalizer struct {
	cmp   Comparison
	tag   language.Tag
	ascii [utf8.RuneSelf]rune
}

// New creates a Normalizer for cmp. The tag only matters for
// CurrentCultureIgnoreCase; language.Und gives language-neutral rules.
func New(cmp Comparison, tag language.Tag) (*Normalizer, error) {
	if !cmp.Valid() {
		return nil, ErrUnknownComparison
	}
	n := &Normalizer{cmp: cmp, tag: tag}
	f := n.newFolder()
	for r := rune(0); r < utf8.RuneSelf; r++ {
		n.ascii[r] = f.slow(r)
	}
	return n, nil
}

// IsIdentity reports whether folding leaves every symbol unchanged.
func (n *Normalizer) IsIdentity() bool {
	return !n.cmp.IgnoreCase()
}

// Folder returns a fresh Folder. Folders are not safe for concurrent use.
func (n *Normalizer) Folder() *Folder {
	return n.newFolder()
}

func (n *Normalizer) newFolder() *Folder {
	f := &Folder{n: n}
	switch n.cmp {
	case CurrentCultureIgnoreCase:
		c := cases.Upper(n.tag)
		f.caser = &c
	case InvariantCultureIgnoreCase:
		c := cases.Upper(language.Und)
		f.caser = &c
	}
	return f
}

// Fold returns the folded symbols of s.
func (n *Normalizer) Fold(s string) []rune {
	f := n.Folder()
	out := make([]rune, 0, len(s))
	for _, r := range Symbols(s) {
		out = append(out, f.Rune(r))
	}
	return out
}

// Folder applies a Normalizer's fold to single symbols.
type Folder struct {
	n     *Normalizer
	caser *cases.Caser
	seen  map[rune]rune // caser results for non-ASCII runes
}

// Rune folds one symbol.
func (f *Folder) Rune(r rune) rune {
	if r >= 0 && r < utf8.RuneSelf {
		return f.n.ascii[r]
	}
	return f.slow(r)
}

func (f *Folder) slow(r rune) rune {
	if r > unicode.MaxRune {
		return r
	}
	switch f.n.cmp {
	case OrdinalIgnoreCase:
		return unicode.ToUpper(r)
	case CurrentCultureIgnoreCase, InvariantCultureIgnoreCase:
		return f.upper(r)
	default:
		return r
	}
}

// upper maps r through the culture caser. Mappings that expand to more than
// one code point (ß -> SS) fall back to the simple Unicode mapping.
func (f *Folder) upper(r rune) rune {
	if u, ok := f.seen[r]; ok {
		return u
	}
	u := f.transform(r)
	if f.seen == nil {
		f.seen = make(map[rune]rune)
	}
	f.seen[r] = u
	return u
}

func (f *Folder) transform(r rune) rune {
	var src [utf8.UTFMax]byte
	var dst [4 * utf8.UTFMax]byte
	n := utf8.EncodeRune(src[:], r)
	f.caser.Reset()
	nDst, _, err := f.caser.Transform(dst[:], src[:n], true)
	if err == nil {
		u, size := utf8.DecodeRune(dst[:nDst])
		if size == nDst && u != utf8.RuneError {
			return u
		}
	}
	return unicode.ToUpper(r)
}

package automaton

import (
	"math/rand"
	"reflect"
	"slices"
	"sync"
	"testing"
)

type hit struct {
	pos, id int
}

func build(patterns ...string) *Automaton {
	b := NewBuilder()
	for _, p := range patterns {
		b.AddPattern([]rune(p))
	}
	return b.Build()
}

func scanAll(a *Automaton, text string) []hit {
	var hits []hit
	for pos, id := range a.ScanRunes([]rune(text)) {
		hits = append(hits, hit{pos, id})
	}
	return hits
}

// naive lists every occurrence by brute force, ordered by end position and
// then by decreasing pattern length (most specific first).
func naive(patterns []string, text string) []hit {
	t := []rune(text)
	var hits []hit
	for end := 0; end < len(t); end++ {
		var here []int
		for id, p := range patterns {
			r := []rune(p)
			start := end - len(r) + 1
			if start < 0 {
				continue
			}
			if slices.Equal(t[start:end+1], r) {
				here = append(here, id)
			}
		}
		slices.SortStableFunc(here, func(x, y int) int {
			return len([]rune(patterns[y])) - len([]rune(patterns[x]))
		})
		for _, id := range here {
			hits = append(hits, hit{end, id})
		}
	}
	return hits
}

func TestScanOverlapping(t *testing.T) {
	a := build("a", "aa")
	got := scanAll(a, "aa")
	want := []hit{{0, 0}, {1, 1}, {1, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan(\"aa\") = %v, want %v", got, want)
	}
}

func TestScanClassic(t *testing.T) {
	patterns := []string{"he", "she", "his", "hers"}
	a := build(patterns...)
	got := scanAll(a, "ushers")
	want := []hit{{3, 1}, {3, 0}, {5, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan(\"ushers\") = %v, want %v", got, want)
	}
}

func TestScanEmptyPattern(t *testing.T) {
	a := build("", "b")
	got := scanAll(a, "ab")
	want := []hit{{0, 0}, {1, 1}, {1, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan(\"ab\") = %v, want %v", got, want)
	}
	if len(scanAll(a, "")) != 0 {
		t.Error("empty text must produce no hits")
	}
}

func TestScanDuplicatePatterns(t *testing.T) {
	a := build("ab", "ab")
	got := scanAll(a, "xab")
	want := []hit{{2, 0}, {2, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %v, want %v", got, want)
	}
}

func TestScanNoPatterns(t *testing.T) {
	a := build()
	if a.NumStates() != 1 {
		t.Errorf("NumStates() = %d, want 1", a.NumStates())
	}
	if hits := scanAll(a, "anything"); len(hits) != 0 {
		t.Errorf("Scan = %v, want none", hits)
	}
}

func TestScanStopsEarly(t *testing.T) {
	a := build("a")
	n := 0
	for range a.ScanRunes([]rune("aaaa")) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d times, want 2", n)
	}
}

func TestFailureLinks(t *testing.T) {
	a := build("abcd", "bc", "c")
	if a.Fail(Root) != Root {
		t.Error("root must fail to itself")
	}
	// walk to "abc"
	s := Root
	for _, r := range "abc" {
		s = a.Next(s, r)
	}
	if a.Depth(s) != 3 {
		t.Fatalf("Depth(abc) = %d, want 3", a.Depth(s))
	}
	f := a.Fail(s)
	if a.Depth(f) != 2 {
		t.Errorf("Fail(abc) depth = %d, want 2 (bc)", a.Depth(f))
	}
	if got, want := a.Outputs(s), []uint32{1, 2}; !slices.Equal(got, want) {
		t.Errorf("Outputs(abc) = %v, want %v", got, want)
	}
}

func TestOutputsMostSpecificFirst(t *testing.T) {
	a := build("c", "abc", "bc")
	s := Root
	for _, r := range "abc" {
		s = a.Next(s, r)
	}
	if got, want := a.Outputs(s), []uint32{1, 2, 0}; !slices.Equal(got, want) {
		t.Errorf("Outputs(abc) = %v, want %v", got, want)
	}
}

func TestPatternLengths(t *testing.T) {
	a := build("", "日本", "abc")
	if a.NumPatterns() != 3 {
		t.Fatalf("NumPatterns() = %d", a.NumPatterns())
	}
	for id, want := range []int{0, 2, 3} {
		if got := a.PatternLen(id); got != want {
			t.Errorf("PatternLen(%d) = %d, want %d", id, got, want)
		}
	}
	if a.MaxPatternLen() != 3 {
		t.Errorf("MaxPatternLen() = %d, want 3", a.MaxPatternLen())
	}
}

func TestBuilderReuse(t *testing.T) {
	b := NewBuilder()
	b.AddPattern([]rune("x"))
	first := b.Build()
	b.AddPattern([]rune("y"))
	second := b.Build()
	if first.NumPatterns() != 1 || second.NumPatterns() != 1 {
		t.Fatalf("patterns = %d, %d; want 1, 1", first.NumPatterns(), second.NumPatterns())
	}
	if len(scanAll(second, "x")) != 0 {
		t.Error("second automaton must not know the first builder's patterns")
	}
}

func TestScanMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []rune("abcé")
	randString := func(max int) string {
		n := rng.Intn(max + 1)
		r := make([]rune, n)
		for i := range r {
			r[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(r)
	}

	for iter := 0; iter < 300; iter++ {
		patterns := make([]string, 1+rng.Intn(6))
		for i := range patterns {
			patterns[i] = randString(4)
		}
		text := randString(30)

		got := scanAll(build(patterns...), text)
		want := naive(patterns, text)
		// outputs at one position are ordered by depth; equal-length
		// patterns are duplicates of each other, so compare as multisets
		// per position when lengths tie.
		if !sameHits(got, want, patterns) {
			t.Fatalf("patterns %q text %q:\n got %v\nwant %v", patterns, text, got, want)
		}
	}
}

func sameHits(got, want []hit, patterns []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i].pos != want[i].pos {
			return false
		}
		if patterns[got[i].id] != patterns[want[i].id] {
			return false
		}
	}
	return true
}

func TestConcurrentScan(t *testing.T) {
	a := build("he", "she", "his", "hers")
	want := scanAll(a, "ushers and his hers")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := scanAll(a, "ushers and his hers"); !reflect.DeepEqual(got, want) {
					t.Errorf("concurrent scan = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkScan(b *testing.B) {
	a := build("he", "she", "his", "hers", "lorem", "ipsum", "dolor")
	text := []rune("the quick brown fox jumps over the lazy dog; ushers his hers lorem ipsum dolor sit amet ")
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range a.ScanRunes(text) {
		}
	}
}

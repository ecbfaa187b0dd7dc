package sparse

import (
	"testing"
)

func TestSet_Basic(t *testing.T) {
	s := New(100)

	if s.Len() != 0 {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	if !s.Insert(5) {
		t.Error("first insert should return true")
	}
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	if s.Insert(5) {
		t.Error("duplicate insert should return false")
	}

	s.Insert(10)
	s.Insert(3)
	if s.Len() != 3 {
		t.Errorf("len should be 3, got %d", s.Len())
	}

	want := []uint32{5, 10, 3}
	got := s.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}

	s.Clear()
	if s.Len() != 0 || s.Contains(5) {
		t.Error("set should be empty after Clear")
	}
	if !s.Insert(5) {
		t.Error("insert after Clear should return true")
	}
}

func TestSet_OutOfUniverse(t *testing.T) {
	s := New(4)
	if s.Contains(4) || s.Contains(1000) {
		t.Error("values outside the universe must not be members")
	}
}

func TestSet_StaleSparseEntry(t *testing.T) {
	s := New(8)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	s.Insert(2)
	// sparse[1] still points at index 0, which now holds 2
	if s.Contains(1) {
		t.Error("stale sparse entry reported as member")
	}
}

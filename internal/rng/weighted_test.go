package rng

import "testing"

func TestWeightedErrors(t *testing.T) {
	if _, err := NewWeighted(nil); err == nil {
		t.Error("expected error for empty weights")
	}
	if _, err := NewWeighted([]uint64{0, 0, 0}); err == nil {
		t.Error("expected error for all-zero weights")
	}
}

func TestWeightedZeroNeverSelected(t *testing.T) {
	w, err := NewWeighted([]uint64{0, 1, 0, 3})
	if err != nil {
		t.Fatal(err)
	}
	s := New(testSeed(9))
	for i := 0; i < 5000; i++ {
		got := w.Sample(s)
		if got == 0 || got == 2 {
			t.Fatalf("zero-weight index %d selected", got)
		}
	}
}

func TestWeightedSingle(t *testing.T) {
	w, err := NewWeighted([]uint64{42})
	if err != nil {
		t.Fatal(err)
	}
	s := New(testSeed(1))
	for i := 0; i < 100; i++ {
		if got := w.Sample(s); got != 0 {
			t.Fatalf("got index %d from single-entry weights", got)
		}
	}
}

func TestWeightedProportions(t *testing.T) {
	// The decorator's glyph weights.
	w, err := NewWeighted([]uint64{15, 3, 1})
	if err != nil {
		t.Fatal(err)
	}
	s := New(testSeed(10))
	counts := [3]int{}
	const n = 19000 // 1000 per weight unit
	for i := 0; i < n; i++ {
		counts[w.Sample(s)]++
	}
	if counts[0] < counts[1] || counts[1] < counts[2] {
		t.Errorf("counts not ordered by weight: %v", counts)
	}
	if counts[0] < 14000 || counts[0] > 16000 {
		t.Errorf("weight-15 entry drawn %d times of %d", counts[0], n)
	}
	if counts[2] < 600 || counts[2] > 1400 {
		t.Errorf("weight-1 entry drawn %d times of %d", counts[2], n)
	}
}

func TestWeightedDeterministic(t *testing.T) {
	w, err := NewWeighted([]uint64{5, 5, 5})
	if err != nil {
		t.Fatal(err)
	}
	a := New(testSeed(11))
	b := New(testSeed(11))
	for i := 0; i < 200; i++ {
		if w.Sample(a) != w.Sample(b) {
			t.Fatal("weighted sampling not deterministic per stream seed")
		}
	}
}

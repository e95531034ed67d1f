package rng

import "testing"

func TestNextPinnedSequence(t *testing.T) {
	// Reference sequence for seed 42 under the LCG constants
	// (1664525, 1013904223, mod 2^32). State values are exactly
	// representable as float64, so exact comparison is safe.
	want := []float64{
		1083814273.0 / 4294967296.0,
		378494188.0 / 4294967296.0,
		2479403867.0 / 4294967296.0,
	}

	r := New(42)
	for i, w := range want {
		if got := r.Next(); got != w {
			t.Errorf("Next() call %d = %v, want %v", i+1, got, w)
		}
	}
}

func TestNextRange(t *testing.T) {
	r := New(123)
	for i := 0; i < 1000; i++ {
		v := r.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next() = %v, want value in [0,1)", v)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := New(777)
	b := New(777)
	for i := 0; i < 100; i++ {
		if av, bv := a.Next(), b.Next(); av != bv {
			t.Fatalf("draw %d diverged: %v != %v", i, av, bv)
		}
	}
}

func TestHashSeed(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"dungeon123", 838700744},
		{"a", 97},
		{"", 0},
	}

	for _, tc := range tests {
		if got := HashSeed(tc.in); got != tc.want {
			t.Errorf("HashSeed(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"42", 42},
		{"0", 0},
		{"4294967295", 4294967295},
		{"4294967296", HashSeed("4294967296")}, // overflows, falls back to hash
		{"dungeon123", 838700744},
	}

	for _, tc := range tests {
		if got := ParseSeed(tc.in); got != tc.want {
			t.Errorf("ParseSeed(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRangeInclusive(t *testing.T) {
	r := New(9)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Range(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("Range(3, 6) = %d, out of bounds", v)
		}
		seen[v] = true
	}
	for v := 3; v <= 6; v++ {
		if !seen[v] {
			t.Errorf("Range(3, 6) never produced %d in 1000 draws", v)
		}
	}
}

func TestRangeSingleValue(t *testing.T) {
	r := New(1)
	for i := 0; i < 10; i++ {
		if v := r.Range(5, 5); v != 5 {
			t.Errorf("Range(5, 5) = %d, want 5", v)
		}
	}
}

func TestPick(t *testing.T) {
	r := New(31)
	items := []string{"sword", "shield", "potion"}
	for i := 0; i < 100; i++ {
		got := Pick(r, items)
		if got != "sword" && got != "shield" && got != "potion" {
			t.Fatalf("Pick returned %q, not a member of the input", got)
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	r := New(55)
	in := []int{1, 2, 3, 4, 5}
	out := Shuffle(r, in)

	for i, v := range []int{1, 2, 3, 4, 5} {
		if in[i] != v {
			t.Fatalf("input slice was mutated: %v", in)
		}
	}

	if len(out) != len(in) {
		t.Fatalf("Shuffle output length = %d, want %d", len(out), len(in))
	}

	// Output must be a permutation of the input.
	counts := make(map[int]int)
	for _, v := range out {
		counts[v]++
	}
	for _, v := range in {
		if counts[v] != 1 {
			t.Errorf("Shuffle output is not a permutation: %v", out)
			break
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	in := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	a := Shuffle(New(2024), in)
	b := Shuffle(New(2024), in)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffles with the same seed diverged at %d: %v vs %v", i, a, b)
		}
	}
}

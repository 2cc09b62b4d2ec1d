package rng

import "testing"

// TestNextPrime16 checks P9 for a spread of boundary and arbitrary values.
func TestNextPrime16(t *testing.T) {
	cases := []struct{ n, want uint32 }{
		{0, 2}, {1, 2}, {2, 2}, {3, 3}, {4, 5},
		{8, 11}, {100, 101}, {7919, 7919}, {65521, 65521},
	}
	for _, tc := range cases {
		if got := NextPrime16(tc.n); got != tc.want {
			t.Errorf("NextPrime16(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestDeriveRowParamsDeterministic(t *testing.T) {
	a := DeriveRowParams(42, 7, 1000, 60)
	b := DeriveRowParams(42, 7, 1000, 60)
	if len(a.PeelColumns) != len(b.PeelColumns) {
		t.Fatalf("peel column count differs across calls: %d vs %d", len(a.PeelColumns), len(b.PeelColumns))
	}
	for i := range a.PeelColumns {
		if a.PeelColumns[i] != b.PeelColumns[i] {
			t.Fatalf("peel column %d differs: %d vs %d", i, a.PeelColumns[i], b.PeelColumns[i])
		}
	}
	if a.MixColumns != b.MixColumns {
		t.Fatalf("mix columns differ: %v vs %v", a.MixColumns, b.MixColumns)
	}
}

func TestDeriveRowParamsDistinctColumns(t *testing.T) {
	rp := DeriveRowParams(1, 99, 500, 40)
	seen := make(map[uint32]bool)
	for _, c := range rp.PeelColumns {
		if seen[c] {
			t.Fatalf("duplicate peel column %d", c)
		}
		seen[c] = true
		if c >= 500 {
			t.Fatalf("peel column %d out of range [0,500)", c)
		}
	}
	mixSeen := make(map[uint32]bool)
	for _, c := range rp.MixColumns {
		if mixSeen[c] {
			t.Fatalf("duplicate mix column %d", c)
		}
		mixSeen[c] = true
		if c >= 40 {
			t.Fatalf("mix column %d out of range [0,40)", c)
		}
	}
}

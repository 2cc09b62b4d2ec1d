package bitmatrix

import "testing"

func TestSetGetClear(t *testing.T) {
	m := New(4, 130) // spans more than two words per row
	if m.Pitch() != 3 {
		t.Fatalf("Pitch() = %d, want 3", m.Pitch())
	}
	m.Set(0, 0)
	m.Set(0, 63)
	m.Set(0, 64)
	m.Set(0, 129)
	for _, col := range []int{0, 63, 64, 129} {
		if !m.Get(0, col) {
			t.Fatalf("Get(0,%d) = false, want true", col)
		}
	}
	if m.Get(0, 1) || m.Get(0, 65) {
		t.Fatalf("unset bit reported as set")
	}
	m.Clear(0, 64)
	if m.Get(0, 64) {
		t.Fatalf("Clear(0,64) did not clear")
	}
}

func TestXorRows(t *testing.T) {
	m := New(2, 70)
	m.Set(0, 3)
	m.Set(0, 68)
	m.Set(1, 3)
	m.Set(1, 5)
	m.XorRows(0, 1)
	if m.Get(0, 3) {
		t.Fatalf("XorRows: bit shared by both rows should cancel")
	}
	if !m.Get(0, 5) || !m.Get(0, 68) {
		t.Fatalf("XorRows: bits unique to either row should remain set")
	}
	// src row must be untouched.
	if !m.Get(1, 3) || !m.Get(1, 5) {
		t.Fatalf("XorRows mutated the source row")
	}
}

func TestForEachSetBit(t *testing.T) {
	m := New(1, 200)
	want := map[int]bool{0: true, 1: true, 63: true, 64: true, 127: true, 199: true}
	for col := range want {
		m.Set(0, col)
	}
	got := map[int]bool{}
	m.ForEachSetBit(0, func(col int) { got[col] = true })
	if len(got) != len(want) {
		t.Fatalf("ForEachSetBit found %d bits, want %d", len(got), len(want))
	}
	for col := range want {
		if !got[col] {
			t.Fatalf("ForEachSetBit missed column %d", col)
		}
	}
}

func TestFirstSetBitFrom(t *testing.T) {
	m := New(1, 150)
	m.Set(0, 10)
	m.Set(0, 90)
	if got := m.FirstSetBitFrom(0, 0); got != 10 {
		t.Fatalf("FirstSetBitFrom(0,0) = %d, want 10", got)
	}
	if got := m.FirstSetBitFrom(0, 11); got != 90 {
		t.Fatalf("FirstSetBitFrom(0,11) = %d, want 90", got)
	}
	if got := m.FirstSetBitFrom(0, 91); got != -1 {
		t.Fatalf("FirstSetBitFrom(0,91) = %d, want -1", got)
	}
}

func TestCopyRowFromAndZeroRow(t *testing.T) {
	m := New(2, 70)
	m.Set(1, 3)
	m.Set(1, 68)
	m.CopyRowFrom(0, m.Row(1))
	if !m.Get(0, 3) || !m.Get(0, 68) {
		t.Fatalf("CopyRowFrom did not copy bits")
	}
	m.ZeroRow(0)
	if m.Get(0, 3) || m.Get(0, 68) {
		t.Fatalf("ZeroRow left bits set")
	}
}

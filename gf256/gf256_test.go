package gf256

import "testing"

func TestMain2(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

// TestAlgebra verifies P6: div(mul(x,y),y) == x, mul(x,1) == x, mul(x,0) == 0.
func TestAlgebra(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for x := 0; x < 256; x++ {
		if got := Mul(byte(x), 1); got != byte(x) {
			t.Fatalf("Mul(%d,1) = %d, want %d", x, got, x)
		}
		if got := Mul(byte(x), 0); got != 0 {
			t.Fatalf("Mul(%d,0) = %d, want 0", x, got)
		}
		for y := 1; y < 256; y++ {
			p := Mul(byte(x), byte(y))
			if got := Div(p, byte(y)); got != byte(x) {
				t.Fatalf("Div(Mul(%d,%d),%d) = %d, want %d", x, y, y, got, x)
			}
		}
	}
}

func TestBulkOpsAgreeAcrossBackends(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	x := make([]byte, 257)
	for i := range x {
		x[i] = byte(i * 37)
	}
	for _, y := range []byte{0, 1, 2, 200} {
		for _, kind := range []backendKind{backendScalar, backendLane128, backendLane256} {
			selectedBackend = kind
			got := make([]byte, len(x))
			MulMem(got, x, y)
			selectedBackend = backendScalar
			want := make([]byte, len(x))
			MulMem(want, x, y)
			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("backend %v mismatch at y=%d i=%d: got %d want %d", kind, y, i, got[i], want[i])
				}
			}
		}
	}
}

func TestAddMem(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	x := []byte{1, 2, 3}
	y := []byte{4, 5, 6}
	AddMem(x, y)
	want := []byte{5, 7, 5}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("AddMem[%d] = %d, want %d", i, x[i], want[i])
		}
	}
}

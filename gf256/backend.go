package gf256

import "golang.org/x/sys/cpu"

// backend is the selected bulk-op implementation. All three produce
// identical output for identical input. None of them use target-specific
// intrinsics: the scalar backend reads the full multiplication table, and
// the "128-bit" and "256-bit" backends share one byte-at-a-time Go loop
// over the nibble lane tables built in buildLaneTables (the shape a
// PSHUFB-style lookup takes in assembly); they do not process 16 or 32
// bytes per iteration and run the same code.
type backendKind int

const (
	backendScalar backendKind = iota
	backendLane128
	backendLane256
)

var selectedBackend = backendScalar

// selectBackend picks a backend based on the host's reported vector width.
// It never touches a public API contract: callers cannot observe which
// backend is active except through timing.
func selectBackend() {
	switch {
	case cpu.X86.HasAVX2, cpu.ARM64.HasASIMD:
		selectedBackend = backendLane256
	case cpu.X86.HasSSSE3:
		selectedBackend = backendLane128
	default:
		selectedBackend = backendScalar
	}
}

// AddMem computes x[i] ^= y[i] for i in [0,n).
func AddMem(x, y []byte) {
	mustBeReady()
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		x[i] ^= y[i]
	}
}

// Add2Mem computes z[i] ^= x[i] ^ y[i] for i in [0,n).
func Add2Mem(z, x, y []byte) {
	mustBeReady()
	n := minLen(z, x, y)
	for i := 0; i < n; i++ {
		z[i] ^= x[i] ^ y[i]
	}
}

// AddSetMem computes z[i] = x[i] ^ y[i] for i in [0,n).
func AddSetMem(z, x, y []byte) {
	mustBeReady()
	n := minLen(z, x, y)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
}

// MulMem computes z[i] = x[i]*y for i in [0,n), with fast paths for y==0
// (memset) and y==1 (copy).
func MulMem(z, x []byte, y byte) {
	mustBeReady()
	n := minLen(z, x)
	switch y {
	case 0:
		zero := z[:n]
		for i := range zero {
			zero[i] = 0
		}
	case 1:
		copy(z[:n], x[:n])
	default:
		mulMemBackend(z[:n], x[:n], y)
	}
}

// MulAddMem computes z[i] ^= x[i]*y for i in [0,n), with fast paths for
// y==0 (no-op) and y==1 (plain XOR).
func MulAddMem(z []byte, y byte, x []byte) {
	mustBeReady()
	n := minLen(z, x)
	switch y {
	case 0:
		return
	case 1:
		AddMem(z[:n], x[:n])
	default:
		mulAddMemBackend(z[:n], x[:n], y)
	}
}

// DivMem computes z[i] = x[i]/y for i in [0,n). y must be non-zero.
func DivMem(z, x []byte, y byte) {
	MulMem(z, x, invTable[y])
}

// MemSwap exchanges the contents of x and y, which must have equal length.
func MemSwap(x, y []byte) {
	mustBeReady()
	n := minLen(x, y)
	for i := 0; i < n; i++ {
		x[i], y[i] = y[i], x[i]
	}
}

func mulMemBackend(z, x []byte, y byte) {
	switch selectedBackend {
	case backendLane256, backendLane128:
		lo, hi := &lowLUT[y], &highLUT[y]
		for i, v := range x {
			z[i] = lo[v&0x0F] ^ hi[v>>4]
		}
	default:
		row := &mulTable[y]
		for i, v := range x {
			z[i] = row[v]
		}
	}
}

func mulAddMemBackend(z, x []byte, y byte) {
	switch selectedBackend {
	case backendLane256, backendLane128:
		lo, hi := &lowLUT[y], &highLUT[y]
		for i, v := range x {
			z[i] ^= lo[v&0x0F] ^ hi[v>>4]
		}
	default:
		row := &mulTable[y]
		for i, v := range x {
			z[i] ^= row[v]
		}
	}
}

func minLen(slices ...[]byte) int {
	n := -1
	for _, s := range slices {
		if n < 0 || len(s) < n {
			n = len(s)
		}
	}
	if n < 0 {
		return 0
	}
	return n
}

// Package rng derives the deterministic per-row parameters the codec needs
// from a 64-bit LCG-style generator: peel weight and column enumeration,
// mixing-column enumeration, and the next-prime-above-N helper those
// enumerations are built on.
package rng

import (
	"github.com/icza/bitio"
	"io"
)

// lcgMul/lcgInc are the PCG-style multiplier/increment for the 64-bit LCG
// that seeds every row's parameter derivation. Any row with the same
// (id, peelSeed, N, mixCount) tuple must reproduce the same parameters, so
// these constants are fixed for the lifetime of the wire format.
const (
	lcgMul = 0x5851f42d4c957f2d
	lcgInc = 0x14057b7ef767814f
)

// Gen is a per-row PRNG instance, seeded from the row's identity.
type Gen struct {
	state uint64
}

// NewRowGen seeds a generator from a block id and the codec's 16-bit peel
// seed. The combination is mixed through one LCG step so that ids differing
// only in their low bits still diverge immediately.
func NewRowGen(id uint32, peelSeed uint16) *Gen {
	g := &Gen{state: uint64(id)<<32 ^ uint64(peelSeed)<<16 ^ uint64(peelSeed)}
	g.next()
	return g
}

func (g *Gen) next() uint64 {
	g.state = g.state*lcgMul + lcgInc
	return g.state
}

// Uint32 returns the next 32 bits of the stream (the high bits of the LCG
// state, which mix better than the low bits for an LCG of this form).
func (g *Gen) Uint32() uint32 {
	return uint32(g.next() >> 32)
}

// bitWindow extracts the next n (<=32) bits of randomness through a small
// bitio-backed window. Routing it through bitio (rather than hand-rolled
// shifts) keeps the bit-windowing for variable-width fields in one place,
// the way the teacher routes every bit-packed field through one reader.
func (g *Gen) bitWindow(n byte) uint64 {
	var buf [4]byte
	v := g.Uint32()
	buf[0] = byte(v >> 24)
	buf[1] = byte(v >> 16)
	buf[2] = byte(v >> 8)
	buf[3] = byte(v)
	r := bitio.NewReader(byteReader{buf[:]})
	x, err := r.ReadBits(n)
	if err != nil && err != io.EOF {
		panic(err)
	}
	return x
}

type byteReader struct{ b []byte }

func (br byteReader) Read(p []byte) (int, error) {
	n := copy(p, br.b)
	return n, nil
}

// RowParams are the parameters derived for one row: its sparse peel columns
// and its three mixing columns.
type RowParams struct {
	PeelColumns []uint32
	MixColumns  [3]uint32
}

// DeriveRowParams computes the peel and mixing columns for block id, given
// the codec's peel seed, the message block count N, and the mixing column
// count. It never returns duplicate columns within either set.
func DeriveRowParams(id uint32, peelSeed uint16, n uint32, mixCount uint32) RowParams {
	g := NewRowGen(id, peelSeed)

	peelCount := peelDegree(g, n)
	peelFirst, peelAdd := weylParams(g, n)
	mixFirst, mixAdd := weylParams(g, mixCount)

	rp := RowParams{PeelColumns: weylSequence(peelFirst, peelAdd, n, int(peelCount))}
	mixCols := weylSequence(mixFirst, mixAdd, mixCount, 3)
	copy(rp.MixColumns[:], mixCols)
	return rp
}

// weylParams draws a (first, add) pair for a Weyl generator enumerating
// distinct values in [0, limit) modulo the smallest prime >= limit.
func weylParams(g *Gen, limit uint32) (first, add uint32) {
	if limit == 0 {
		return 0, 1
	}
	p := NextPrime16(limit)
	first = g.Uint32() % limit
	add = (g.Uint32() % (p - 1)) + 1
	return first, add
}

// weylSequence enumerates `count` distinct values in [0, limit) using the
// Weyl generator (first, add) modulo the smallest prime >= limit. Values
// produced by the step that land outside [0, limit) are skipped by an inner
// loop that keeps stepping until it lands inside (the prime is close to
// limit, so few values are skipped per step). Repeats are then dropped by
// dedupInOrder, so fewer than `count` values can come back.
func weylSequence(first, add, limit uint32, count int) []uint32 {
	if limit == 0 || count <= 0 {
		return nil
	}
	p := NextPrime16(limit)
	out := make([]uint32, 0, count)
	cur := first % limit
	for len(out) < count {
		out = append(out, cur)
		next := (cur + add) % p
		for next >= limit {
			next = (next + add) % p
		}
		cur = next
	}
	return dedupInOrder(out, limit)
}

// dedupInOrder keeps the first occurrence of each value in seq, in order,
// and stops once it holds min(len(seq), limit) values. It does not generate
// replacements for dropped repeats, so a short Weyl cycle yields fewer
// distinct columns than len(seq).
func dedupInOrder(seq []uint32, limit uint32) []uint32 {
	want := len(seq)
	if uint32(want) > limit {
		want = int(limit)
	}
	seen := make(map[uint32]bool, want)
	out := make([]uint32, 0, want)
	for _, v := range seq {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == want {
			break
		}
	}
	return out
}

// PeelDegreeDistribution is the cumulative Ideal-Soliton-like distribution
// used by peelDegree. params.PeelCountDistribution is built from its own
// copy of the same computation, since params does not import this package.
var PeelDegreeDistribution [64]uint32

func init() {
	// Ideal Soliton: P(1) = 1/d_max, P(k) = 1/(k*(k-1)) for k>1. We bucket
	// the distribution into 64 cumulative thresholds against a uint32
	// sample space, matching PeelCountDistribution's documented size.
	const buckets = 64
	const space = 1 << 24
	remaining := float64(space)
	cum := 0.0
	probs := make([]float64, buckets)
	probs[0] = 1.0 / buckets
	sum := probs[0]
	for k := 2; k <= buckets; k++ {
		probs[k-1] = 1.0 / (float64(k) * float64(k-1))
		sum += probs[k-1]
	}
	for i := range probs {
		probs[i] /= sum
	}
	for i, p := range probs {
		cum += p * remaining
		PeelDegreeDistribution[i] = uint32(cum)
	}
	PeelDegreeDistribution[buckets-1] = space - 1
}

// peelDegree samples a peel row's Hamming weight from the tabulated
// distribution, clamped to [1, min(64, n/2)], with a small extra chance of
// weight 1 when n is small (spec: "small configured probability of weight 1
// when N <= 2048").
func peelDegree(g *Gen, n uint32) uint32 {
	maxDeg := n / 2
	if maxDeg > 64 {
		maxDeg = 64
	}
	if maxDeg < 1 {
		maxDeg = 1
	}

	if n <= 2048 {
		// 6-bit window drawn through bitio: a 1-in-64 chance of forcing
		// weight 1, independent of the main degree sample below.
		if g.bitWindow(6) == 0 {
			return 1
		}
	}

	sample := g.Uint32() & (1<<24 - 1)
	deg := uint32(1)
	for i, threshold := range PeelDegreeDistribution {
		if sample <= threshold {
			deg = uint32(i + 1)
			break
		}
	}
	if deg > maxDeg {
		deg = maxDeg
	}
	if deg < 1 {
		deg = 1
	}
	return deg
}

// Package codec implements the rateless erasure codec: a hybrid sparse
// peeling / dense Gaussian-elimination / GF(256) heavy-row solver that
// turns N source blocks into an unbounded stream of equal-size encoded
// blocks, any N (plus a small, usually single-digit overhead) of which
// reconstruct the original message.
package codec

import (
	"fmt"

	"github.com/wirehair-go/wirehair/gf256"
	"github.com/wirehair-go/wirehair/internal/rng"
	"github.com/wirehair-go/wirehair/params"
)

const sentinel = 0xFFFFFFFF

// state is the decoder's position in its lifecycle (spec §4.1 state
// machine). Encoders are always Solved.
type state int

const (
	stateAccumulating state = iota
	stateSolving
	stateSolved
	stateEncoderMode
)

// Codec is a handle for either an encoder or a decoder. Exactly one of
// NewEncoder / NewDecoder produces a ready-to-use Codec; all further
// operations are methods on it. A Codec is not safe for concurrent use,
// but distinct Codec values may be driven from different goroutines
// without synchronization.
type Codec struct {
	n          uint32 // source block count
	blockSize  uint32 // B
	finalBytes uint32 // length of the last original block
	peelSeed   uint16
	denseSeed  uint16
	denseCount uint32 // D
	mixCount   uint32 // D + 6

	st state

	// rows holds every accepted row (original or recovery), indexed by
	// row slot. rows[0:n] are reserved for original ids 0..N-1 during
	// encoding, or filled in arrival order during decoding.
	rows []*rowInfo

	// idToSlot maps an accepted id to its row slot, to reject duplicates.
	idToSlot map[uint32]int

	// columns[0:n] track each message column's peeling state.
	columns []columnInfo

	peelOrder     []int32 // columns in the order they were solved by a row
	deferredCols  []int32 // message columns resolved by GE instead of peeling
	colToGECol    map[int32]int
	deferredRows  []int32 // row slots deferred into the GE matrix

	// compRow[c] is, for a peeled column c, its equation reduced to pure
	// GE-column terms: geCols (which GE columns it depends on) and geVal
	// (the row-data contribution XORed in along the way).
	compRow map[int32]*reducedRow

	ge       *geMatrix
	recovery [][]byte // N + mixCount + 1 slots of size blockSize
	copied   []bool   // recovery[0:n] "is_copied" bookkeeping

	solved    bool
	rowCount  int // accepted rows so far
	extraUsed int

	original  [][]byte // encoder only: the N source blocks, by column
	isEncoder bool
}

type rowInfo struct {
	id        uint32
	peelCols  []int32
	mixCols   [3]int32
	data      []byte // nil for recovery rows until computed
	isOrig    bool
	unmarked  int32
	solvesCol int32 // -1 until this row solves a column
	deferred  bool
}

type columnInfo struct {
	refs     []int32 // row slots referencing this column, bounded MaxColumnRefs
	marked   bool    // peeled or deferred
	solvedBy int32   // row slot that peels this column, or -1 if deferred
	overflow bool    // ref list hit MaxColumnRefs; column is forced into GE
}

type reducedRow struct {
	geCols map[int]bool
	geVal  []byte
}

// deriveParams picks (D, dense_seed, peel_seed, mix_count) for N, following
// the tables in package params.
func deriveParams(n uint32) (denseCount uint32, denseSeed, peelSeed uint16, mixCount uint32) {
	d, ds := params.DenseCountAndSeed(n)
	ps := params.PeelSeedFor(n)
	return uint32(d), ds, ps, uint32(d) + 6
}

func validateN(n uint32) error {
	if n < 2 {
		return ErrSmallN
	}
	if n > 64000 {
		return ErrLargeN
	}
	return nil
}

func newCodec(n, blockSize uint32) (*Codec, error) {
	if err := validateN(n); err != nil {
		return nil, err
	}
	if blockSize < 1 {
		return nil, ErrInvalidInput
	}
	if !gf256.Ready() {
		if err := gf256.Init(); err != nil {
			return nil, fmt.Errorf("codec.newCodec: %w: %w", ErrNotReady, err)
		}
	}

	d, ds, ps, mixCount := deriveParams(n)
	c := &Codec{
		n:          n,
		blockSize:  blockSize,
		denseCount: d,
		denseSeed:  ds,
		peelSeed:   ps,
		mixCount:   mixCount,
		rows:       make([]*rowInfo, 0, n+params.ExtraRows),
		idToSlot:   make(map[uint32]int, n+params.ExtraRows),
		columns:    make([]columnInfo, n),
		colToGECol: make(map[int32]int),
		compRow:    make(map[int32]*reducedRow),
		recovery:   make([][]byte, n+mixCount+1),
		copied:     make([]bool, n),
	}
	for i := range c.recovery {
		c.recovery[i] = make([]byte, blockSize)
	}
	return c, nil
}

// rowParamsFor derives the peel/mix columns for a block id, independent of
// whether id is original (<N) or a recovery id (>=N): ids are the only
// state the codec needs to reproduce a row's structure.
func (c *Codec) rowParamsFor(id uint32) rng.RowParams {
	return rng.DeriveRowParams(id, c.peelSeed, c.n, c.mixCount)
}

package codec

import "github.com/wirehair-go/wirehair/params"

// Stage 2: compression. Every column that peeling solved is walked, in the
// order it was solved, reducing its defining row down to an equation over
// pure GE unknowns (deferred message columns and mixing columns) — the
// "peel diagonal" walk, named for the staircase the solved columns form
// against the rows that solved them. Once every peeled column has such a
// reduced form, every deferred row's own equation is reduced the same way,
// and those reduced rows become the light part of the dense GE matrix that
// stage 3 triangularizes.

// geColumnForMessageCol and geColumnForMixCol return the GE-space column
// index for a column key: deferred message columns occupy
// [0, len(deferredCols)), assigned lazily in first-seen order, and mixing
// column m sits at the fixed index len(deferredCols)+m.
func (c *Codec) geColumnForMessageCol(col int32) int {
	if idx, ok := c.colToGECol[col]; ok {
		return idx
	}
	idx := len(c.colToGECol)
	c.colToGECol[col] = idx
	return idx
}

func (c *Codec) geColumnForMixCol(m int32) int {
	return len(c.deferredCols) + int(m)
}

func (c *Codec) geWidth() int {
	return len(c.deferredCols) + int(c.mixCount)
}

// reduceRow builds the GE-space reduction of an arbitrary row's equation:
// value[col] (if col >= 0) or the row's own data (if col < 0, i.e. this is
// a deferred row rather than a peeled column) equals geVal XORed with the
// value of every column in geCols.
func (c *Codec) reduceRow(peelCols []int32, mixCols [3]int32, data []byte, skip int32) (geCols map[int]bool, geVal []byte) {
	geCols = make(map[int]bool)
	geVal = make([]byte, len(data))
	copy(geVal, data)

	toggle := func(idx int) {
		if geCols[idx] {
			delete(geCols, idx)
		} else {
			geCols[idx] = true
		}
	}
	xorInto := func(src []byte) {
		for i := range geVal {
			if i < len(src) {
				geVal[i] ^= src[i]
			}
		}
	}

	for _, p := range peelCols {
		if p == skip {
			continue
		}
		ci := &c.columns[p]
		if ci.solvedBy >= 0 {
			rr, ok := c.compRow[p]
			if !ok {
				// Not yet reduced (shouldn't happen in peel order, but
				// guards against a malformed cascade).
				continue
			}
			for g := range rr.geCols {
				toggle(g)
			}
			xorInto(rr.geVal)
		} else {
			toggle(c.geColumnForMessageCol(p))
		}
	}
	for _, m := range mixCols {
		toggle(c.geColumnForMixCol(m))
	}
	return geCols, geVal
}

// buildCompRows reduces every peeled column, in the order it was solved,
// to an equation purely over GE columns.
func (c *Codec) buildCompRows() {
	for _, col := range c.peelOrder {
		ci := &c.columns[col]
		row := c.rows[ci.solvedBy]
		geCols, geVal := c.reduceRow(row.peelCols, row.mixCols, row.data, col)
		c.compRow[col] = &reducedRow{geCols: geCols, geVal: geVal}
	}
}

// buildGEMatrix assembles the dense system stage 3 triangularizes: one
// light (GF(2)) row per deferred message row, denseCount synthetic
// shuffle2 rows tying the mix columns together, and HeavyRows GF(256)
// weighted rows covering the last HeavyColumns mix columns.
func (c *Codec) buildGEMatrix() *geMatrix {
	// Columns not referenced by any deferred row are still part of the
	// unknown space once geColumnForMessageCol has been called on them;
	// calling it here for every deferred column guarantees that even a
	// column with zero deferred-row references still gets a GE slot, so
	// dense/heavy rows can pin it down.
	for _, col := range c.deferredCols {
		c.geColumnForMessageCol(col)
	}
	for m := uint32(0); m < c.mixCount; m++ {
		c.geColumnForMixCol(int32(m))
	}

	n := c.geWidth()
	lightRowCount := len(c.deferredRows) + int(c.denseCount)
	gm := newGEMatrix(n, lightRowCount, int(params.HeavyRows), c.blockSize)

	row := 0
	for _, slot := range c.deferredRows {
		r := c.rows[slot]
		geCols, geVal := c.reduceRow(r.peelCols, r.mixCols, r.data, -1)
		gm.setLightRow(row, geCols, geVal)
		row++
	}
	for i := uint32(0); i < c.denseCount; i++ {
		cols := c.shuffle2(i)
		geCols := make(map[int]bool, len(cols))
		for _, m := range cols {
			geCols[c.geColumnForMixCol(m)] = true
		}
		gm.setLightRow(row, geCols, make([]byte, c.blockSize))
		row++
	}

	heavyBase := int(c.mixCount) - int(params.HeavyColumns)
	if heavyBase < 0 {
		heavyBase = 0
	}
	for i := 0; i < int(params.HeavyRows); i++ {
		coeffs := make([]byte, n)
		for j := 0; j < int(params.HeavyColumns); j++ {
			mixIdx := heavyBase + j
			if mixIdx >= int(c.mixCount) {
				continue
			}
			col := c.geColumnForMixCol(int32(mixIdx))
			coeffs[col] = params.HeavyMatrix[i][j]
		}
		gm.setHeavyRow(i, coeffs, make([]byte, c.blockSize))
	}

	return gm
}

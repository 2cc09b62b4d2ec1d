package codec

// Stage 4: substitution. Stage 3 leaves the GE matrix in full reduced row
// echelon form (every elimination step reduces every other row, not just
// the ones below it), so each pivot row's accumulator already equals the
// value of the single GE column it pivots — there is no separate
// back-substitution sweep to run. What remains is walking the columns
// solved directly by peeling, in the reverse of the order stage 2 reduced
// them, undoing that reduction to recover each peeled column's actual
// value from the now-known GE column values.
//
// This trades the spec's windowed, sub-quadratic substitution pass for a
// direct one: correct, but without the cache-blocking optimization a
// fully tuned implementation would apply at this step.

// solveGE reads the solved value for every GE column out of the
// triangularized matrix's row accumulators.
func (gm *geMatrix) solveGE() [][]byte {
	solved := make([][]byte, gm.n)
	for col := 0; col < gm.n; col++ {
		row := gm.pivotRowOfCol[col]
		if row < 0 {
			solved[col] = make([]byte, gm.blockSize)
			continue
		}
		if int(row) < gm.lightRowCount() {
			solved[col] = gm.lightRHS[row]
		} else {
			solved[col] = gm.heavyRHS[int(row)-gm.lightRowCount()]
		}
	}
	return solved
}

// substitute finishes the solve: it fills c.recovery[0:n] with the
// original message blocks, using the GE solution for deferred columns and
// undoing the stage-2 peel-diagonal reduction for peeled columns.
func (c *Codec) substitute(gm *geMatrix) {
	geSolved := gm.solveGE()

	for _, col := range c.deferredCols {
		idx := c.colToGECol[col]
		c.setColumnValue(col, geSolved[idx])
	}
	for m := uint32(0); m < c.mixCount; m++ {
		idx := c.geColumnForMixCol(int32(m))
		val := make([]byte, c.blockSize)
		copy(val, geSolved[idx])
		c.recovery[int(c.n)+int(m)] = val
	}

	for i := len(c.peelOrder) - 1; i >= 0; i-- {
		col := c.peelOrder[i]
		rr := c.compRow[col]
		val := make([]byte, c.blockSize)
		copy(val, rr.geVal)
		for g := range rr.geCols {
			xorIntoVal(val, geSolved[g])
		}
		c.setColumnValue(col, val)
	}
}

func xorIntoVal(dst, src []byte) {
	for i := range dst {
		if i < len(src) {
			dst[i] ^= src[i]
		}
	}
}

func (c *Codec) setColumnValue(col int32, val []byte) {
	dst := c.recovery[col]
	copy(dst, val)
	c.copied[col] = true
}

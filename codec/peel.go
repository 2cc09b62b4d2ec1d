package codec

import "github.com/wirehair-go/wirehair/params"

// Stage 1: sparse peeling. Every accepted row starts with an "unmarked"
// count equal to the number of its peel columns that are neither peeled
// nor deferred. When a row's unmarked count drops to 1, its last unmarked
// column can be solved directly from that row (XOR away everything else
// the row touches); solving a column cascades into every other row that
// references it, which is how one lucky row can "avalanche" through many
// columns in a chain. Columns peeling never reaches are deferred into the
// dense Gaussian-elimination matrix built in stage 2.

// addRow registers a newly accepted row (original or recovery) and runs it
// through avalanche peeling. It returns the row's slot index.
func (c *Codec) addRow(peelCols []int32, mixCols [3]int32, data []byte, isOrig bool, id uint32) int {
	slot := len(c.rows)
	row := &rowInfo{
		id:        id,
		peelCols:  peelCols,
		mixCols:   mixCols,
		data:      data,
		isOrig:    isOrig,
		solvesCol: -1,
	}
	c.rows = append(c.rows, row)

	unmarked := int32(0)
	for _, col := range peelCols {
		ci := &c.columns[col]
		if ci.marked {
			continue
		}
		if len(ci.refs) >= params.MaxColumnRefs {
			ci.overflow = true
			continue
		}
		ci.refs = append(ci.refs, int32(slot))
		unmarked++
	}
	row.unmarked = unmarked

	queue := []int32{int32(slot)}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		queue = c.tryPeelRow(s, queue)
	}
	return slot
}

// tryPeelRow peels row s's column if s is down to exactly one unmarked
// column, appending any rows the cascade newly makes peelable to queue.
func (c *Codec) tryPeelRow(s int32, queue []int32) []int32 {
	row := c.rows[s]
	if row.deferred || row.solvesCol != -1 || row.unmarked != 1 {
		return queue
	}
	var col int32 = -1
	for _, cand := range row.peelCols {
		ci := &c.columns[cand]
		if !ci.marked {
			col = cand
			break
		}
	}
	if col == -1 {
		// Every peel column already marked but unmarked count disagreed;
		// treat defensively as solved with no column to peel.
		row.unmarked = 0
		return queue
	}
	return c.peelColumn(col, s, queue)
}

// peelColumn marks col as solved by row s and decrements the unmarked
// count of every other row referencing col, enqueuing rows that become
// peelable (unmarked==1) or deferring rows that run dry (unmarked==0).
func (c *Codec) peelColumn(col int32, s int32, queue []int32) []int32 {
	ci := &c.columns[col]
	ci.marked = true
	ci.solvedBy = s

	row := c.rows[s]
	row.solvesCol = col
	c.peelOrder = append(c.peelOrder, col)

	for _, other := range ci.refs {
		if other == s {
			continue
		}
		orow := c.rows[other]
		if orow.deferred || orow.solvesCol != -1 {
			continue
		}
		orow.unmarked--
		switch {
		case orow.unmarked == 1:
			queue = append(queue, other)
		case orow.unmarked <= 0:
			c.deferRow(other)
		}
	}
	return queue
}

// deferRow marks a row as unsolvable by peeling; its remaining unmarked
// (and any forced-overflow) peel columns, plus its mix columns, become
// equations in the stage-2 GE matrix instead.
func (c *Codec) deferRow(slot int32) {
	row := c.rows[slot]
	if row.deferred {
		return
	}
	row.deferred = true
	c.deferredRows = append(c.deferredRows, slot)
}

// finishPeeling is called once the decoder believes it has enough rows (or
// by the encoder after adding all N original rows): every column that
// avalanche peeling never reached, and every row still holding one, is
// deferred into the GE matrix. Real wirehair-class decoders greedily
// choose which tied column to peel next to minimize the resulting GE
// matrix; we skip that tie-break and defer the remainder directly, which
// costs some extra GE overhead but leaves correctness unaffected, since
// every deferred column and row still contributes exactly one equation to
// the linear system solved in stages 2-4.
func (c *Codec) finishPeeling() {
	for col := range c.columns {
		ci := &c.columns[col]
		if ci.marked {
			continue
		}
		ci.marked = true
		ci.solvedBy = -1
		c.deferredCols = append(c.deferredCols, int32(col))
	}
	for slot, row := range c.rows {
		if row.deferred || row.solvesCol != -1 {
			continue
		}
		c.deferRow(int32(slot))
	}
}

package codec

import "github.com/wirehair-go/wirehair/internal/rng"

// shuffle2 derives the column set for one of the codec's synthetic dense
// rows: rows that carry no received data of their own, and exist purely to
// tie the mixing columns together tightly enough that stage 3's
// triangularization is guaranteed to find a pivot for every non-heavy
// column. They are called "dense" because, unlike a peel row's handful of
// columns, each touches roughly half of mixCount columns — keyed by the
// codec's dense_seed so encoder and decoder regenerate the identical set
// for row index i without exchanging it.
func (c *Codec) shuffle2(rowIndex uint32) []int32 {
	g := rng.NewRowGen(rowIndex, c.denseSeed)
	cols := make([]int32, 0, c.mixCount)
	for m := uint32(0); m < c.mixCount; m++ {
		if g.Uint32()&1 == 1 {
			cols = append(cols, int32(m))
		}
	}
	if len(cols) == 0 {
		cols = append(cols, int32(rowIndex%c.mixCount))
	}
	return cols
}

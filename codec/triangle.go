package codec

import (
	"github.com/wirehair-go/wirehair/bitmatrix"
	"github.com/wirehair-go/wirehair/gf256"
)

// Stage 3: triangularization. geMatrix holds the dense system built in
// stage 2: a binary (GF(2)) part for ordinary deferred and synthetic
// dense rows, stored as a bitmatrix.Matrix with the word-pitch row-major
// layout the design notes call for, and a GF(256)-weighted "heavy" part for
// the few rows that need the extra field strength to stay independent after
// every light row has been used as a pivot. Rows are never reordered in
// storage — each carries its own rhs accumulator, and triangularize tracks
// the column a row pivots on (or -1 if it hasn't been used as a pivot yet).
type geMatrix struct {
	n int // GE column count

	lightBits *bitmatrix.Matrix
	lightRHS  [][]byte

	heavyCoef [][]byte // heavy row -> n GF(256) coefficients
	heavyRHS  [][]byte

	blockSize uint32

	pivotColOfLightRow []int32 // -1 until pivoted
	pivotColOfHeavyRow []int32
	pivotRowOfCol      []int32 // -1, or (row index, light rows first then heavy rows offset by len(light)) of the row pivoting this column
}

func newGEMatrix(n, lightRows, heavyRows int, blockSize uint32) *geMatrix {
	gm := &geMatrix{
		n:                  n,
		lightBits:          bitmatrix.New(lightRows, n),
		lightRHS:           make([][]byte, lightRows),
		heavyCoef:          make([][]byte, heavyRows),
		heavyRHS:           make([][]byte, heavyRows),
		blockSize:          blockSize,
		pivotColOfLightRow: make([]int32, lightRows),
		pivotColOfHeavyRow: make([]int32, heavyRows),
		pivotRowOfCol:      make([]int32, n),
	}
	for i := range gm.pivotColOfLightRow {
		gm.pivotColOfLightRow[i] = -1
	}
	for i := range gm.pivotColOfHeavyRow {
		gm.pivotColOfHeavyRow[i] = -1
	}
	for i := range gm.pivotRowOfCol {
		gm.pivotRowOfCol[i] = -1
	}
	return gm
}

func (gm *geMatrix) setLightRow(row int, cols map[int]bool, rhs []byte) {
	for c := range cols {
		gm.lightBits.Set(row, c)
	}
	gm.lightRHS[row] = rhs
}

func (gm *geMatrix) setHeavyRow(row int, coeffs, rhs []byte) {
	gm.heavyCoef[row] = coeffs
	gm.heavyRHS[row] = rhs
}

func (gm *geMatrix) lightRowCount() int { return gm.lightBits.Rows() }
func (gm *geMatrix) heavyRowCount() int { return len(gm.heavyCoef) }

func (gm *geMatrix) xorLightRows(dst, src int) {
	gm.lightBits.XorRows(dst, src)
	for i := range gm.lightRHS[dst] {
		if i < len(gm.lightRHS[src]) {
			gm.lightRHS[dst][i] ^= gm.lightRHS[src][i]
		}
	}
}

// eliminateLightFromHeavy removes column col from heavy row h using the
// light pivot row (whose entries are all coefficient 1 in GF(256)): for
// every column the light row touches, XOR the heavy row's value there with
// coeff (heavy's own coefficient at col, since light*coeff == coeff).
func (gm *geMatrix) eliminateLightFromHeavy(h int, lightRow int, col int) {
	coeff := gm.heavyCoef[h][col]
	if coeff == 0 {
		return
	}
	gm.lightBits.ForEachSetBit(lightRow, func(c int) {
		gm.heavyCoef[h][c] = gf256.AddByte(gm.heavyCoef[h][c], coeff)
	})
	addScaled(gm.heavyRHS[h], gm.lightRHS[lightRow], coeff)
}

func addScaled(dst, src []byte, coeff byte) {
	if coeff == 1 {
		for i := range dst {
			if i < len(src) {
				dst[i] ^= src[i]
			}
		}
		return
	}
	for i := range dst {
		if i < len(src) {
			dst[i] = gf256.AddByte(dst[i], gf256.Mul(coeff, src[i]))
		}
	}
}

// triangularize finds a pivot for every non-heavy column using light rows,
// then solves the remaining heavy-column block with the GF(256) heavy
// rows. It returns ErrNeedMore if some column never finds a pivot, the
// signal that more rows (recovery blocks) are needed.
func (gm *geMatrix) triangularize(heavyBase int) error {
	usedLight := make([]bool, gm.lightRowCount())

	for col := 0; col < heavyBase; col++ {
		pivot := -1
		for r := 0; r < gm.lightRowCount(); r++ {
			if usedLight[r] {
				continue
			}
			if gm.lightBits.Get(r, col) {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return ErrNeedMore
		}
		usedLight[pivot] = true
		gm.pivotColOfLightRow[pivot] = int32(col)
		gm.pivotRowOfCol[col] = int32(pivot)

		for r := 0; r < gm.lightRowCount(); r++ {
			if r != pivot && gm.lightBits.Get(r, col) {
				gm.xorLightRows(r, pivot)
			}
		}
		for h := 0; h < gm.heavyRowCount(); h++ {
			if gm.heavyCoef[h][col] != 0 {
				gm.eliminateLightFromHeavy(h, pivot, col)
			}
		}
	}

	// Remaining columns [heavyBase, n) are solved from the heavy rows
	// plus any still-unused light rows that happen to touch only that
	// range (the common case once every earlier column has a pivot).
	for col := heavyBase; col < gm.n; col++ {
		pivot := -1
		pivotIsHeavy := false
		for r := 0; r < gm.lightRowCount(); r++ {
			if usedLight[r] {
				continue
			}
			if gm.lightBits.Get(r, col) {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			for h := 0; h < gm.heavyRowCount(); h++ {
				if gm.pivotColOfHeavyRow[h] != -1 {
					continue
				}
				if gm.heavyCoef[h][col] != 0 {
					pivot = h
					pivotIsHeavy = true
					break
				}
			}
		}
		if pivot == -1 {
			return ErrNeedMore
		}
		if pivotIsHeavy {
			gm.normalizeHeavyRow(pivot, col)
			gm.pivotColOfHeavyRow[pivot] = int32(col)
			gm.pivotRowOfCol[col] = int32(gm.lightRowCount() + pivot)
			for h := 0; h < gm.heavyRowCount(); h++ {
				if h == pivot {
					continue
				}
				if gm.heavyCoef[h][col] != 0 {
					gm.eliminateHeavyFromHeavy(h, pivot, col)
				}
			}
		} else {
			usedLight[pivot] = true
			gm.pivotColOfLightRow[pivot] = int32(col)
			gm.pivotRowOfCol[col] = int32(pivot)
			for r := 0; r < gm.lightRowCount(); r++ {
				if r != pivot && gm.lightBits.Get(r, col) {
					gm.xorLightRows(r, pivot)
				}
			}
			for h := 0; h < gm.heavyRowCount(); h++ {
				if gm.heavyCoef[h][col] != 0 {
					gm.eliminateLightFromHeavy(h, pivot, col)
				}
			}
		}
	}
	return nil
}

func (gm *geMatrix) normalizeHeavyRow(h, col int) {
	coeff := gm.heavyCoef[h][col]
	if coeff == 1 || coeff == 0 {
		return
	}
	inv := gf256.Inv(coeff)
	for c := range gm.heavyCoef[h] {
		gm.heavyCoef[h][c] = gf256.Mul(gm.heavyCoef[h][c], inv)
	}
	for i := range gm.heavyRHS[h] {
		gm.heavyRHS[h][i] = gf256.Mul(gm.heavyRHS[h][i], inv)
	}
}

func (gm *geMatrix) eliminateHeavyFromHeavy(h, pivot, col int) {
	coeff := gm.heavyCoef[h][col]
	if coeff == 0 {
		return
	}
	for c := range gm.heavyCoef[h] {
		gm.heavyCoef[h][c] = gf256.AddByte(gm.heavyCoef[h][c], gf256.Mul(coeff, gm.heavyCoef[pivot][c]))
	}
	addScaled(gm.heavyRHS[h], gm.heavyRHS[pivot], coeff)
}

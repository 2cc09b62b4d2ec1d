// Package params holds the compiled-in parameter tables the codec consults
// to turn a block count N into concrete matrix parameters: dense row
// counts, PRNG seeds, the heavy GF(256) submatrix, and the small
// number-theoretic tables row-parameter derivation needs.
//
// The dense/peel seed tables, the dense-count interpolation graph, and the
// heavy matrix below are ported verbatim from the Wirehair reference
// implementation's offline-tuned constant tables (WirehairTools.cpp's
// kTinyDenseCounts/kTinyDenseSeeds/kSmallDenseSeeds/kSmallPeelSeeds/
// kDensePoints/kDenseSeeds/kPeelSeeds, and WirehairCodec.cpp's
// kHeavyMatrix) rather than generated by a formula here: these are an
// external interface contract (spec: "compiled into the core"), not free
// parameters, so the values themselves are load-bearing and must match the
// reference exactly, seed-for-seed and byte-for-byte.
package params

const (
	// TinyTableCount is the boundary below which the hand-tuned tiny tables
	// apply (WirehairTools.h: kTinyTableCount, N in [0, 64]).
	TinyTableCount = 65
	// SmallTableCount is the size of the small-N dense-seed table, which
	// covers N in [TinyTableCount, TinyTableCount+SmallTableCount).
	SmallTableCount = 2048 - TinyTableCount
	// SmallRangeEnd is the first N for which the large-N (DensePoints /
	// DenseSeeds / PeelSeeds) tables take over.
	SmallRangeEnd = TinyTableCount + SmallTableCount

	// DenseSeedCount is the number of large-N dense seeds, indexed by D/4.
	DenseSeedCount = 100
	// PeelSeedSubdivisions is the modulus large-N peel seeds are looked up
	// under (N % PeelSeedSubdivisions).
	PeelSeedSubdivisions = 2048
	// MaxDenseCount bounds the interpolated dense row count D.
	MaxDenseCount = 400

	HeavyRows    = 6
	HeavyColumns = 18

	// MaxNForWeight1 is the N above which peel rows stop using the
	// dedicated weight-1 shortcut probability.
	MaxNForWeight1 = 2048
	MaxPeelWeight  = 64
	MaxColumnRefs  = 32
	ExtraRows      = 32

	MatrixSeedCount = 512
)

// TinyDenseCounts maps N -> dense row count D for N < TinyTableCount.
var TinyDenseCounts = [TinyTableCount]uint8{
	0, 0, 2, 3, 3, 5, 6, 6, 6, 7, 9, 10, 10, 10, 12, 14, 13, 14, 12, 12, 15, 16, 21, 14, 14, 13, 18, 21, 22, 21, 13, 22,
	13, 24, 14, 17, 16, 24, 30, 26, 24, 18, 15, 15, 24, 18, 21, 17, 14, 16, 21, 18, 17, 22, 25, 20, 17, 18, 21, 18, 23, 20, 19, 23,
	19,
}

// TinyDenseSeeds maps N -> dense PRNG seed for N < TinyTableCount.
var TinyDenseSeeds = [TinyTableCount]uint16{
	0, 0, 12678, 31247, 24246, 6830, 10311, 18975, 46844, 888, 38598, 63780, 12170, 24444, 55961, 13141, 53472, 55486, 28496, 27214, 49117, 60737, 62051, 59811, 3052, 33624, 35793, 8210, 32674, 36155, 10819, 52727,
	9692, 26215, 33106, 34092, 18779, 61056, 4502, 7786, 36397, 53163, 36617, 16009, 60476, 31637, 38086, 32027, 968, 59896, 27819, 10193, 64755, 41508, 44381, 41571, 52121, 23594, 313, 38382, 48549, 44868, 43789, 8396,
	1902,
}

// SmallDenseSeeds maps (N - TinyTableCount) -> dense PRNG seed, for
// TinyTableCount <= N < SmallRangeEnd.
var SmallDenseSeeds = [SmallTableCount]uint8{
	28, 34, 248, 36, 160, 229, 20, 209, 229, 27, 76, 188, 144, 26, 95, 176, 51, 20, 78, 4, 121, 26, 79, 158, 196, 93, 233, 4, 1, 1, 8, 214,
	150, 139, 93, 135, 224, 4, 62, 27, 89, 74, 150, 69, 3, 119, 126, 72, 145, 60, 110, 57, 18, 182, 140, 5, 110, 8, 158, 57, 196, 68, 39, 138,
	3, 17, 124, 119, 32, 53, 69, 47, 158, 39, 12, 131, 44, 68, 187, 168, 226, 173, 92, 46, 112, 89, 102, 114, 231, 84, 25, 237, 65, 36, 151, 93,
	119, 118, 147, 123, 155, 62, 120, 95, 161, 59, 137, 12, 91, 30, 119, 104, 111, 203, 11, 109, 207, 234, 97, 117, 31, 139, 207, 181, 73, 127, 169, 181,
	80, 246, 29, 100, 6, 32, 88, 2, 67, 133, 185, 236, 225, 16, 148, 36, 16, 115, 85, 108, 160, 101, 171, 213, 34, 107, 238, 85, 89, 13, 77, 14,
	133, 57, 136, 242, 208, 5, 225, 141, 176, 155, 64, 196, 142, 82, 79, 64, 99, 95, 74, 60, 180, 72, 27, 39, 13, 237, 26, 60, 125, 22, 188, 134,
	131, 6, 25, 43, 180, 61, 51, 4, 81, 250, 85, 123, 68, 107, 129, 42, 8, 160, 143, 107, 181, 24, 106, 126, 2, 199, 23, 160, 49, 109, 217, 108,
	170, 238, 123, 5, 4, 148, 48, 45, 153, 1, 121, 52, 105, 255, 114, 172, 115, 184, 66, 220, 75, 173, 133, 160, 77, 220, 209, 63, 248, 241, 64, 228,
	70, 77, 175, 29, 18, 166, 144, 89, 66, 131, 113, 226, 22, 223, 149, 125, 24, 175, 51, 99, 31, 145, 101, 19, 106, 15, 235, 118, 221, 175, 148, 116,
	18, 22, 156, 25, 87, 154, 22, 229, 7, 178, 201, 116, 44, 45, 9, 237, 115, 218, 86, 198, 107, 94, 31, 49, 224, 10, 43, 231, 87, 72, 48, 4,
	177, 213, 84, 54, 143, 238, 33, 155, 81, 29, 57, 188, 8, 240, 148, 25, 32, 34, 156, 199, 154, 128, 130, 24, 39, 182, 33, 75, 13, 143, 41, 137,
	15, 241, 21, 92, 177, 159, 73, 71, 36, 46, 103, 7, 106, 123, 12, 195, 114, 87, 255, 82, 110, 50, 89, 172, 158, 0, 176, 242, 127, 208, 110, 239,
	75, 141, 58, 168, 178, 150, 212, 160, 91, 24, 90, 184, 60, 56, 190, 171, 48, 26, 220, 86, 143, 153, 90, 60, 46, 90, 74, 63, 116, 245, 92, 176,
	160, 70, 116, 76, 61, 199, 220, 86, 21, 253, 77, 90, 18, 240, 16, 103, 72, 11, 66, 26, 210, 187, 54, 193, 95, 81, 209, 28, 51, 108, 72, 61,
	6, 73, 12, 54, 154, 123, 140, 45, 46, 108, 152, 84, 244, 11, 28, 205, 64, 38, 18, 135, 102, 1, 52, 36, 73, 27, 102, 42, 0, 86, 28, 28,
	197, 176, 160, 182, 166, 31, 156, 156, 156, 1, 244, 168, 235, 103, 43, 152, 55, 82, 153, 217, 35, 185, 152, 123, 228, 106, 184, 121, 39, 226, 32, 182,
	64, 157, 205, 91, 139, 139, 42, 10, 84, 52, 66, 188, 197, 161, 60, 224, 83, 19, 205, 40, 48, 30, 47, 233, 152, 162, 4, 236, 230, 39, 190, 240,
	85, 98, 217, 93, 12, 27, 150, 62, 53, 7, 142, 96, 192, 27, 252, 166, 4, 16, 78, 8, 16, 248, 59, 170, 26, 193, 48, 1, 70, 52, 18, 146,
	24, 133, 123, 235, 171, 205, 45, 130, 107, 250, 73, 173, 85, 47, 1, 95, 64, 188, 25, 118, 40, 30, 47, 132, 4, 51, 125, 155, 70, 166, 210, 189,
	204, 143, 226, 185, 63, 254, 248, 93, 100, 202, 167, 155, 47, 28, 196, 190, 5, 242, 55, 51, 152, 88, 248, 48, 68, 24, 169, 254, 33, 65, 191, 1,
	245, 243, 12, 48, 41, 180, 189, 171, 51, 14, 61, 142, 14, 134, 209, 123, 157, 192, 149, 200, 137, 204, 158, 196, 114, 83, 39, 58, 237, 54, 134, 195,
	20, 143, 184, 156, 16, 40, 17, 208, 101, 95, 23, 99, 26, 108, 211, 215, 14, 218, 115, 180, 132, 4, 190, 117, 116, 15, 161, 139, 40, 215, 124, 148,
	206, 12, 169, 48, 90, 28, 22, 8, 144, 249, 39, 15, 251, 80, 128, 151, 91, 132, 17, 112, 167, 121, 33, 111, 0, 153, 228, 20, 196, 93, 113, 43,
	139, 14, 193, 140, 72, 58, 201, 157, 176, 131, 10, 39, 18, 37, 157, 6, 45, 8, 36, 144, 236, 79, 52, 181, 11, 125, 86, 219, 96, 3, 15, 21,
	42, 16, 160, 156, 196, 65, 210, 172, 10, 2, 0, 127, 41, 84, 107, 215, 17, 94, 115, 168, 95, 163, 40, 144, 203, 102, 173, 26, 102, 72, 76, 10,
	193, 48, 225, 192, 194, 209, 13, 88, 224, 253, 34, 128, 197, 129, 146, 9, 168, 87, 36, 183, 2, 171, 117, 6, 122, 118, 5, 38, 87, 61, 96, 95,
	217, 188, 233, 203, 101, 252, 180, 27, 9, 210, 157, 200, 57, 7, 41, 92, 119, 37, 125, 42, 138, 208, 68, 223, 36, 30, 59, 139, 61, 59, 252, 161,
	31, 114, 7, 168, 59, 210, 23, 83, 114, 63, 29, 24, 128, 93, 180, 107, 132, 84, 178, 60, 100, 181, 98, 65, 28, 81, 155, 2, 228, 226, 138, 143,
	31, 219, 180, 90, 59, 228, 159, 207, 50, 24, 58, 215, 91, 89, 77, 67, 114, 237, 45, 10, 150, 8, 230, 180, 1, 253, 104, 22, 3, 7, 112, 83,
	93, 98, 96, 71, 6, 144, 106, 168, 239, 89, 72, 29, 102, 182, 144, 19, 11, 223, 65, 47, 144, 26, 58, 144, 152, 15, 29, 140, 53, 119, 166, 102,
	165, 145, 30, 30, 137, 183, 24, 23, 40, 232, 151, 108, 43, 243, 61, 89, 233, 66, 219, 72, 208, 42, 247, 8, 144, 15, 0, 71, 53, 11, 234, 58,
	197, 12, 140, 57, 32, 61, 149, 95, 99, 73, 115, 79, 163, 79, 102, 57, 248, 105, 32, 59, 235, 28, 211, 78, 220, 93, 3, 7, 44, 231, 204, 124,
	224, 250, 131, 232, 173, 99, 111, 118, 180, 108, 178, 44, 205, 241, 169, 29, 5, 18, 139, 192, 54, 28, 69, 193, 41, 113, 179, 62, 131, 25, 1, 125,
	62, 11, 237, 135, 73, 105, 242, 100, 175, 90, 236, 197, 156, 85, 39, 96, 63, 60, 100, 69, 243, 88, 243, 158, 114, 13, 139, 169, 125, 52, 44, 23,
	234, 41, 120, 226, 236, 80, 84, 26, 204, 188, 39, 16, 126, 202, 103, 64, 174, 68, 115, 152, 69, 163, 225, 181, 39, 189, 38, 2, 95, 120, 164, 49,
	253, 208, 60, 13, 35, 108, 77, 140, 55, 87, 219, 76, 36, 98, 161, 70, 45, 167, 50, 139, 153, 122, 216, 229, 19, 218, 117, 13, 155, 175, 53, 252,
	138, 160, 52, 74, 67, 46, 205, 116, 100, 105, 118, 33, 22, 181, 105, 151, 176, 112, 74, 168, 179, 50, 13, 28, 27, 229, 203, 139, 253, 204, 57, 8,
	23, 216, 99, 209, 3, 1, 167, 120, 89, 81, 43, 20, 135, 142, 233, 109, 216, 198, 10, 128, 162, 213, 174, 57, 37, 26, 82, 16, 220, 122, 27, 2,
	139, 160, 179, 71, 62, 177, 90, 0, 243, 93, 24, 39, 48, 93, 174, 129, 222, 63, 60, 19, 154, 65, 35, 226, 90, 43, 189, 28, 83, 207, 239, 244,
	11, 166, 74, 184, 207, 12, 85, 109, 58, 30, 9, 163, 217, 230, 149, 178, 248, 22, 147, 6, 206, 88, 178, 7, 50, 158, 18, 173, 251, 6, 68, 234,
	11, 69, 245, 10, 123, 189, 78, 183, 14, 6, 23, 15, 44, 145, 162, 45, 19, 39, 121, 101, 156, 25, 181, 14, 148, 32, 184, 49, 91, 60, 15, 101,
	93, 143, 29, 220, 145, 117, 26, 94, 26, 92, 133, 67, 101, 121, 25, 8, 35, 74, 232, 137, 35, 138, 206, 78, 137, 160, 145, 183, 217, 149, 37, 3,
	7, 226, 30, 164, 228, 32, 126, 115, 66, 223, 45, 16, 254, 144, 226, 40, 20, 126, 4, 162, 89, 171, 13, 223, 162, 104, 226, 1, 47, 238, 232, 199,
	109, 86, 100, 44, 126, 226, 105, 246, 62, 21, 65, 130, 32, 210, 58, 168, 236, 233, 166, 35, 229, 113, 127, 76, 153, 123, 240, 97, 13, 140, 31, 230,
	175, 37, 80, 48, 197, 108, 169, 183, 35, 118, 48, 16, 176, 97, 77, 26, 186, 63, 150, 183, 146, 31, 25, 120, 4, 39, 7, 60, 23, 242, 62, 141,
	39, 115, 103, 111, 114, 130, 198, 10, 39, 184, 106, 129, 59, 76, 111, 159, 69, 116, 58, 59, 85, 29, 88, 155, 112, 2, 250, 26, 33, 224, 136, 66,
	218, 137, 36, 44, 150, 135, 117, 106, 74, 155, 64, 201, 178, 86, 127, 3, 141, 49, 11, 173, 79, 114, 83, 156, 16, 20, 205, 179, 70, 157, 97, 138,
	50, 125, 71, 75, 43, 87, 180, 198, 161, 27, 221, 119, 49, 159, 142, 221, 200, 127, 120, 130, 195, 31, 22, 153, 78, 184, 137, 57, 79, 116, 58, 21,
	70, 68, 121, 83, 111, 63, 85, 28, 34, 27, 200, 150, 89, 147, 160, 129, 75, 59, 140, 84, 29, 132, 101, 142, 83, 175, 50, 96, 142, 56, 1, 222,
	104, 128, 241, 195, 70, 151, 10, 0, 103, 16, 56, 237, 191, 127, 35, 4, 30, 157, 96, 79, 224, 12, 153, 210, 95, 29, 191, 62, 132, 216, 166, 73,
	28, 222, 150, 109, 59, 165, 12, 103, 90, 214, 7, 10, 64, 58, 229, 35, 1, 60, 172, 63, 162, 178, 186, 83, 63, 108, 103, 207, 221, 119, 50, 8,
	138, 192, 17, 162, 36, 64, 3, 156, 206, 5, 174, 65, 31, 165, 116, 90, 89, 155, 28, 108, 44, 192, 195, 5, 52, 25, 27, 157, 117, 82, 181, 121,
	78, 224, 39, 40, 84, 15, 1, 107, 122, 103, 240, 105, 71, 207, 218, 24, 89, 50, 199, 207, 159, 37, 3, 182, 32, 242, 134, 147, 20, 5, 194, 129,
	162, 226, 57, 50, 65, 53, 172, 242, 16, 28, 107, 169, 139, 179, 53, 72, 192, 182, 186, 85, 112, 234, 65, 35, 17, 79, 156, 185, 12, 83, 29, 41,
	183, 3, 91, 71, 245, 45, 240, 121, 72, 54, 20, 211, 233, 205, 126, 13, 94, 181, 107, 33, 84, 85, 197, 115, 58, 29, 83, 165, 32, 151, 29, 72,
	218, 233, 164, 230, 149, 27, 207, 164, 130, 148, 75, 183, 31, 152, 87, 30, 5, 191, 5, 53, 136, 63, 225, 204, 40, 149, 124, 108, 240, 255, 13, 24,
	189, 127, 154, 142, 247, 11, 116, 47, 114, 130, 87, 35, 141, 216, 90, 79, 19, 72, 237, 240, 18, 102, 24, 35, 122, 65, 111, 117, 141, 155, 119, 12,
	4, 157, 100, 107, 8, 55, 102, 249, 142, 99, 152, 204, 35, 176, 214, 236, 125, 17, 41, 226, 228, 48, 76, 141, 16, 252, 238, 57, 64, 64, 118, 196,
	163, 26, 246, 86, 197, 100, 40, 0, 185, 78, 21, 177, 179, 50, 178, 57, 8, 30, 160, 52, 158, 38, 33, 82, 121, 225, 189, 185, 22, 172, 90, 49,
	9, 4, 49, 19, 114, 168, 117, 53, 243, 63, 33, 76, 231, 105, 238, 16, 187, 11, 20, 23, 166, 77, 243, 86, 34, 249, 253, 3, 7, 52, 57, 177,
	177, 23, 233, 60, 127, 113, 200, 13, 56, 40, 197, 71, 149, 242, 81, 87, 167, 254, 171, 115, 53, 10, 12, 77, 8, 66, 207, 123, 141, 2, 46, 95,
	83, 140, 20, 22, 179, 245, 165, 160, 238, 20, 22, 57, 112, 48, 95, 220, 15, 187, 42, 7, 99, 58, 31, 45, 36, 43, 94, 76, 54, 217, 200,
}

// SmallPeelSeeds maps N -> peel PRNG seed directly, for N < SmallRangeEnd
// (it covers the tiny range too, unlike the dense tables).
var SmallPeelSeeds = [SmallRangeEnd]uint8{
	0, 0, 0, 11, 1, 0, 0, 0, 1, 0, 0, 0, 5, 1, 0, 0, 4, 11, 0, 0, 0, 3, 0, 1, 7, 2, 3, 12, 11, 9, 2, 3,
	0, 3, 1, 9, 21, 46, 5, 8, 27, 4, 37, 37, 69, 5, 180, 8, 30, 201, 21, 23, 12, 59, 151, 77, 214, 216, 221, 46, 23, 89, 39, 11,
	46, 228, 189, 11, 18, 24, 41, 229, 31, 123, 11, 39, 119, 19, 10, 102, 178, 23, 131, 210, 2, 116, 219, 34, 43, 105, 22, 128, 87, 187, 179, 89,
	70, 54, 65, 173, 190, 85, 98, 98, 238, 16, 57, 80, 67, 115, 135, 178, 80, 195, 135, 183, 113, 116, 199, 137, 4, 152, 33, 146, 185, 46, 153, 141,
	1, 0, 4, 3, 0, 7, 0, 3, 6, 13, 5, 2, 1, 0, 2, 3, 1, 3, 2, 1, 1, 4, 2, 2, 3, 0, 3, 7, 1, 0, 5, 0,
	0, 4, 0, 4, 1, 5, 0, 2, 4, 130, 5, 6, 10, 6, 0, 4, 3, 0, 16, 2, 4, 0, 19, 0, 7, 0, 7, 5, 0, 4, 1, 4,
	5, 1, 4, 2, 8, 7, 15, 7, 3, 1, 1, 2, 2, 0, 2, 2, 14, 3, 6, 6, 5, 3, 2, 12, 14, 12, 22, 16, 3, 2, 3, 6,
	5, 10, 2, 1, 1, 0, 1, 6, 2, 0, 7, 9, 10, 5, 1, 10, 4, 2, 2, 2, 9, 3, 1, 1, 33, 5, 11, 4, 4, 7, 8, 0,
	0, 3, 0, 10, 3, 1, 5, 7, 5, 37, 9, 0, 10, 12, 2, 13, 2, 3, 12, 5, 20, 0, 5, 0, 0, 20, 9, 2, 23, 12, 31, 2,
	14, 3, 3, 2, 23, 4, 0, 14, 1, 3, 10, 4, 22, 5, 28, 0, 23, 19, 4, 13, 14, 4, 29, 12, 19, 21, 5, 1, 5, 1, 22, 2,
	7, 3, 5, 30, 11, 18, 2, 15, 60, 9, 6, 0, 8, 7, 1, 9, 4, 13, 0, 37, 42, 23, 29, 8, 5, 5, 9, 17, 8, 5, 8, 51,
	17, 2, 3, 21, 11, 27, 30, 51, 10, 7, 45, 7, 13, 12, 5, 30, 12, 24, 50, 47, 60, 98, 31, 47, 23, 4, 16, 45, 10, 2, 27, 45,
	42, 11, 44, 81, 34, 26, 3, 7, 22, 2, 5, 19, 16, 8, 63, 9, 39, 71, 41, 6, 51, 2, 88, 4, 13, 6, 19, 7, 35, 23, 6, 42,
	4, 2, 26, 35, 37, 49, 45, 19, 40, 63, 78, 37, 30, 1, 19, 2, 8, 1, 15, 31, 0, 6, 12, 0, 16, 4, 10, 86, 25, 9, 18, 21,
	13, 0, 50, 62, 0, 43, 107, 8, 29, 19, 60, 35, 81, 11, 118, 10, 39, 53, 4, 11, 37, 78, 33, 32, 61, 7, 19, 21, 26, 7, 6, 11,
	81, 44, 72, 37, 3, 17, 98, 28, 15, 11, 113, 42, 163, 98, 15, 122, 13, 119, 12, 50, 45, 4, 85, 37, 124, 40, 0, 45, 113, 39, 52, 112,
	19, 88, 32, 48, 36, 90, 18, 39, 15, 20, 43, 71, 74, 183, 57, 79, 79, 0, 110, 8, 12, 100, 16, 47, 78, 93, 0, 41, 20, 1, 10, 36,
	21, 162, 2, 39, 203, 16, 79, 25, 2, 1, 158, 122, 134, 15, 36, 73, 42, 157, 91, 0, 8, 34, 242, 18, 39, 98, 211, 49, 41, 69, 5, 56,
	71, 25, 110, 87, 48, 51, 5, 69, 64, 135, 42, 122, 10, 65, 20, 126, 181, 108, 112, 124, 200, 10, 135, 14, 135, 0, 136, 11, 70, 29, 7, 199,
	226, 225, 171, 130, 50, 44, 80, 31, 89, 41, 80, 18, 65, 43, 21, 53, 70, 37, 162, 165, 91, 91, 33, 87, 105, 87, 110, 215, 13, 32, 122, 19,
	69, 18, 178, 8, 30, 28, 2, 206, 128, 61, 5, 38, 43, 9, 6, 122, 51, 17, 85, 180, 60, 16, 23, 63, 83, 112, 80, 115, 36, 63, 18, 146,
	22, 59, 83, 24, 71, 34, 10, 237, 51, 126, 2, 168, 64, 18, 37, 28, 135, 146, 5, 80, 4, 17, 44, 105, 47, 68, 219, 26, 119, 13, 0, 138,
	60, 26, 93, 24, 75, 20, 39, 21, 242, 42, 62, 17, 18, 0, 83, 1, 36, 76, 152, 107, 138, 2, 246, 15, 65, 26, 16, 49, 203, 59, 216, 127,
	64, 255, 28, 198, 137, 22, 14, 42, 20, 198, 47, 67, 8, 48, 67, 40, 10, 244, 159, 217, 27, 208, 6, 54, 143, 3, 21, 80, 119, 82, 133, 117,
	152, 107, 42, 38, 153, 213, 45, 29, 20, 10, 140, 107, 14, 11, 33, 26, 41, 32, 123, 139, 104, 42, 213, 2, 3, 12, 79, 44, 156, 40, 65, 237,
	41, 5, 63, 52, 149, 251, 37, 10, 143, 1, 162, 90, 138, 43, 12, 97, 46, 4, 105, 43, 81, 39, 222, 107, 35, 28, 10, 62, 48, 21, 27, 186,
	105, 0, 171, 248, 6, 20, 145, 10, 52, 3, 215, 151, 13, 24, 165, 131, 170, 42, 46, 139, 114, 43, 22, 28, 73, 48, 231, 70, 142, 77, 224, 133,
	153, 46, 35, 251, 153, 108, 2, 197, 175, 37, 56, 45, 28, 6, 77, 1, 182, 112, 43, 4, 137, 169, 19, 203, 154, 129, 13, 6, 215, 16, 47, 89,
	1, 3, 53, 63, 245, 175, 45, 164, 158, 85, 236, 16, 15, 13, 185, 171, 18, 95, 25, 19, 12, 106, 12, 254, 24, 68, 50, 107, 53, 155, 44, 5,
	231, 15, 4, 103, 38, 24, 66, 38, 166, 38, 61, 20, 129, 212, 49, 2, 3, 101, 100, 148, 106, 87, 37, 3, 2, 210, 157, 2, 68, 109, 34, 96,
	26, 176, 76, 173, 172, 46, 47, 102, 255, 233, 122, 224, 38, 27, 27, 54, 54, 47, 32, 7, 85, 148, 158, 136, 113, 145, 211, 241, 128, 17, 88, 34,
	69, 224, 246, 52, 27, 43, 30, 90, 239, 52, 82, 248, 231, 26, 81, 146, 0, 2, 216, 209, 80, 39, 14, 46, 10, 93, 255, 170, 31, 203, 89, 242,
	79, 81, 174, 225, 16, 6, 52, 244, 236, 149, 28, 74, 57, 63, 135, 25, 86, 17, 28, 124, 18, 168, 158, 140, 125, 168, 84, 221, 245, 49, 163, 150,
	100, 89, 20, 18, 8, 11, 184, 31, 30, 77, 196, 39, 149, 200, 170, 52, 120, 29, 136, 7, 28, 45, 211, 190, 83, 34, 27, 1, 197, 163, 93, 36,
	53, 177, 97, 233, 226, 80, 238, 41, 186, 226, 45, 43, 226, 107, 20, 93, 215, 59, 125, 175, 77, 86, 123, 23, 171, 14, 28, 36, 1, 99, 9, 54,
	38, 213, 27, 38, 99, 61, 155, 186, 199, 203, 143, 112, 0, 68, 215, 177, 111, 178, 124, 21, 173, 205, 103, 47, 77, 27, 111, 68, 252, 251, 249, 175,
	97, 144, 7, 5, 43, 170, 112, 30, 18, 186, 109, 150, 129, 253, 53, 28, 42, 41, 31, 51, 144, 0, 68, 6, 175, 71, 141, 3, 29, 114, 70, 225,
	5, 34, 121, 23, 151, 240, 119, 38, 238, 8, 51, 179, 201, 7, 206, 244, 98, 15, 53, 195, 239, 27, 200, 72, 112, 198, 23, 64, 6, 66, 153, 201,
	46, 26, 78, 5, 160, 59, 209, 18, 25, 168, 215, 128, 73, 77, 195, 26, 98, 28, 71, 73, 84, 228, 227, 67, 189, 125, 39, 60, 108, 140, 29, 86,
	71, 185, 63, 65, 98, 72, 74, 18, 58, 76, 28, 44, 36, 192, 113, 249, 55, 214, 220, 19, 177, 29, 252, 94, 129, 218, 117, 223, 17, 14, 160, 232,
	17, 25, 49, 14, 57, 93, 250, 194, 193, 37, 184, 18, 93, 28, 74, 20, 31, 1, 139, 117, 1, 25, 52, 231, 52, 21, 53, 61, 145, 26, 73, 5,
	36, 92, 66, 180, 19, 214, 8, 200, 210, 204, 21, 177, 12, 241, 154, 58, 75, 192, 17, 72, 229, 106, 37, 179, 59, 18, 46, 166, 103, 189, 100, 88,
	223, 5, 40, 118, 80, 44, 71, 60, 137, 56, 2, 235, 40, 191, 12, 139, 129, 191, 73, 110, 11, 71, 6, 11, 60, 232, 180, 117, 63, 1, 117, 89,
	47, 87, 90, 136, 229, 137, 245, 3, 19, 249, 146, 27, 237, 225, 20, 81, 173, 119, 4, 38, 113, 82, 42, 240, 5, 10, 173, 213, 175, 17, 97, 63,
	0, 13, 38, 20, 230, 225, 120, 152, 7, 64, 94, 11, 131, 92, 112, 90, 21, 2, 62, 75, 13, 104, 138, 26, 119, 161, 42, 183, 15, 36, 63, 121,
	48, 2, 36, 71, 130, 134, 154, 127, 245, 213, 17, 155, 153, 134, 81, 29, 50, 48, 107, 77, 9, 182, 57, 16, 179, 115, 85, 49, 77, 60, 121, 149,
	134, 68, 197, 100, 114, 1, 13, 88, 3, 7, 182, 38, 46, 180, 214, 45, 30, 221, 54, 129, 22, 52, 114, 17, 150, 110, 66, 134, 158, 242, 231, 38,
	77, 216, 23, 104, 235, 132, 196, 65, 34, 43, 131, 60, 111, 13, 32, 135, 171, 60, 135, 13, 254, 228, 91, 237, 19, 72, 51, 249, 104, 72, 145, 193,
	14, 45, 81, 80, 69, 45, 193, 30, 200, 55, 63, 121, 52, 41, 21, 41, 17, 190, 104, 67, 30, 1, 26, 88, 47, 43, 42, 26, 105, 185, 25, 88,
	25, 13, 72, 40, 18, 40, 34, 78, 80, 94, 185, 40, 33, 77, 227, 179, 118, 113, 14, 129, 126, 134, 115, 151, 137, 214, 193, 77, 156, 249, 219, 3,
	17, 109, 208, 119, 186, 65, 226, 4, 117, 102, 173, 113, 214, 4, 241, 156, 89, 228, 97, 210, 164, 62, 183, 232, 127, 61, 20, 153, 57, 96, 166, 189,
	180, 251, 23, 147, 94, 125, 133, 20, 121, 150, 80, 254, 100, 225, 35, 160, 93, 214, 23, 25, 9, 8, 123, 238, 1, 129, 214, 5, 6, 194, 154, 24,
	37, 54, 10, 252, 40, 85, 196, 165, 207, 6, 37, 15, 197, 88, 95, 41, 129, 113, 180, 81, 84, 52, 204, 83, 171, 200, 24, 238, 70, 28, 145, 158,
	117, 135, 195, 252, 144, 183, 89, 181, 32, 12, 33, 153, 27, 19, 222, 74, 83, 139, 190, 84, 39, 48, 110, 124, 129, 3, 28, 56, 248, 237, 147, 15,
	62, 40, 71, 78, 201, 192, 8, 65, 118, 220, 31, 225, 50, 181, 80, 216, 131, 192, 48, 154, 128, 155, 107, 203, 41, 67, 25, 185, 82, 232, 119, 13,
	150, 139, 90, 248, 49, 28, 157, 244, 88, 90, 3, 151, 217, 74, 213, 17, 86, 38, 55, 222, 163, 160, 118, 126, 206, 64, 208, 142, 132, 96, 204, 216,
	35, 211, 84, 33, 194, 100, 244, 206, 132, 74, 66, 160, 128, 177, 121, 0, 143, 8, 104, 83, 208, 184, 71, 33, 115, 50, 73, 2, 47, 171, 152, 95,
	212, 5, 152, 122, 113, 156, 111, 216, 88, 68, 210, 24, 159, 170, 231, 69, 14, 170, 254, 209, 147, 99, 138, 137, 127, 61, 203, 73, 49, 200, 53, 75,
	128, 9, 145, 32, 171, 147, 49, 203, 143, 66, 207, 56, 150, 15, 76, 91, 50, 89, 64, 209, 75, 224, 191, 206, 136, 129, 84, 194, 4, 11, 76, 131,
	160, 254, 44, 208, 117, 235, 49, 64, 71, 102, 1, 61, 215, 77, 10, 228, 167, 82, 34, 32, 29, 75, 191, 218, 29, 165, 242, 30, 152, 190, 9, 195,
	141, 134, 26, 18, 112, 93, 70, 232, 25, 67, 253, 36, 25, 240, 133, 93, 120, 104, 246, 211, 5, 86, 184, 71, 41, 33, 158, 183, 98, 134, 6, 68,
	168, 217, 204, 205, 84, 169, 98, 93, 16, 62, 93, 80, 101, 248, 122, 156, 56, 18, 102, 171, 223, 72, 43, 4, 43, 59, 24, 200, 211, 120, 132, 54,
	112, 107, 255, 111, 66, 72, 93, 135, 215, 123, 136, 57, 217, 66, 36, 169, 185, 46, 176, 68, 190, 92, 62, 252, 12, 11, 6, 30, 80, 157, 18, 243,
	72, 4, 5, 57, 44, 66, 13, 23, 94, 237, 24, 197, 91, 127, 103, 157, 249, 78, 72, 210, 139, 14, 77, 43, 21, 16, 12, 54, 166, 49, 32, 140,
}

// DensePoints is the dense-count interpolation graph for N >= SmallRangeEnd
// (WirehairTools.cpp: kDensePoints, "maximum value over 5 runs").
var DensePoints = [64]struct {
	N uint16
	D uint16
}{
	{2048, 52}, {2618, 54}, {2826, 60}, {3725, 62}, {3962, 67}, {4277, 65}, {4547, 60}, {5065, 64},
	{5224, 76}, {5642, 66}, {5909, 71}, {6285, 76}, {6583, 66}, {6895, 72}, {7448, 69}, {7682, 76},
	{8046, 78}, {8558, 76}, {8963, 73}, {9389, 81}, {10143, 86}, {11129, 94}, {12593, 99}, {12988, 105},
	{14032, 108}, {14473, 114}, {15397, 110}, {16636, 113}, {17698, 118}, {18828, 123}, {19420, 127}, {20343, 136},
	{21979, 139}, {23024, 150}, {24119, 156}, {25659, 162}, {27298, 173}, {29042, 176}, {30898, 183}, {31870, 190},
	{33906, 200}, {35519, 211}, {37208, 220}, {38978, 234}, {40205, 253}, {42776, 297}, {44122, 320}, {45511, 336},
	{46944, 357}, {48421, 373}, {49177, 376}, {50725, 380}, {52321, 391}, {53968, 388}, {54811, 382}, {54811, 382},
	{55667, 372}, {57419, 362}, {58316, 356}, {60152, 347}, {61091, 337}, {62045, 334}, {63014, 340}, {64000, 345},
}

// DenseSeeds maps D/4 -> dense PRNG seed for N >= SmallRangeEnd.
var DenseSeeds = [DenseSeedCount]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 214, 53, 190, 233, 221, 24, 33, 241, 138, 159, 32, 131, 17, 199, 245, 235, 87, 241, 116,
	148, 16, 105, 141, 119, 181, 133, 156, 85, 38, 152, 36, 219, 58, 160, 81, 50, 93, 27, 15, 60, 116, 117, 130, 106, 13, 138, 81, 7, 31, 34, 188,
	157, 4, 145, 150, 19, 140, 115, 255, 165, 243, 186, 249, 178, 13, 174, 242, 41, 128, 127, 177, 119, 142, 96, 39, 28, 78, 226, 42, 38, 108, 82, 1,
	84, 112, 152, 0,
}

// PeelSeeds maps N % PeelSeedSubdivisions -> peel PRNG seed for N >=
// SmallRangeEnd.
var PeelSeeds = [PeelSeedSubdivisions]uint8{
	0, 13, 4, 7, 6, 13, 1, 6, 13, 7, 15, 13, 11, 1, 6, 7, 13, 5, 12, 11, 7, 14, 2, 10, 13, 3, 3, 3, 1, 9, 13, 7,
	2, 9, 10, 0, 2, 14, 14, 0, 13, 11, 5, 0, 15, 14, 7, 3, 15, 2, 1, 3, 7, 2, 15, 12, 9, 10, 14, 12, 5, 13, 1, 7,
	2, 4, 3, 15, 17, 11, 9, 10, 11, 4, 7, 15, 0, 14, 1, 2, 10, 7, 11, 3, 14, 1, 3, 14, 0, 1, 7, 2, 3, 2, 17, 10,
	3, 12, 0, 6, 4, 5, 9, 15, 11, 9, 18, 11, 8, 3, 6, 4, 5, 27, 9, 13, 5, 13, 5, 12, 4, 13, 2, 7, 16, 0, 4, 5,
	7, 4, 11, 12, 0, 8, 11, 9, 13, 5, 3, 4, 4, 7, 4, 7, 1, 0, 6, 14, 0, 6, 5, 11, 9, 1, 14, 7, 1, 19, 1, 6,
	12, 7, 0, 6, 17, 7, 15, 2, 11, 2, 1, 7, 13, 11, 14, 3, 4, 3, 2, 4, 22, 1, 17, 0, 13, 4, 8, 19, 9, 12, 1, 1,
	20, 15, 9, 14, 8, 2, 9, 5, 15, 3, 7, 3, 1, 4, 8, 12, 4, 2, 15, 9, 15, 22, 7, 7, 7, 9, 9, 0, 5, 4, 1, 6,
	12, 13, 9, 7, 12, 14, 3, 8, 0, 9, 16, 3, 7, 3, 0, 15, 7, 7, 6, 7, 3, 3, 12, 0, 12, 13, 5, 6, 0, 10, 14, 9,
	7, 1, 15, 2, 2, 11, 12, 11, 3, 6, 18, 11, 7, 13, 12, 0, 7, 4, 11, 2, 9, 14, 15, 11, 10, 9, 1, 7, 0, 10, 7, 6,
	5, 18, 0, 9, 4, 1, 6, 3, 0, 7, 21, 1, 2, 7, 3, 15, 5, 0, 3, 10, 9, 0, 18, 10, 1, 1, 17, 0, 4, 18, 2, 12,
	4, 2, 2, 2, 9, 8, 9, 2, 9, 3, 5, 11, 9, 3, 9, 3, 15, 2, 1, 5, 9, 15, 9, 4, 10, 12, 2, 2, 6, 5, 11, 2,
	9, 5, 6, 6, 14, 10, 10, 22, 9, 4, 6, 10, 0, 12, 6, 18, 11, 3, 4, 15, 3, 5, 10, 3, 7, 0, 24, 20, 10, 2, 7, 3,
	5, 8, 6, 0, 10, 2, 16, 10, 5, 9, 9, 3, 0, 13, 2, 14, 2, 0, 4, 0, 3, 4, 4, 12, 12, 2, 3, 0, 1, 3, 7, 2,
	2, 5, 14, 7, 5, 0, 8, 9, 13, 4, 13, 5, 4, 9, 19, 2, 13, 0, 11, 1, 3, 4, 0, 3, 3, 4, 3, 4, 15, 0, 6, 5,
	9, 15, 0, 22, 3, 2, 7, 5, 10, 9, 2, 3, 17, 3, 9, 6, 2, 2, 4, 15, 11, 10, 2, 1, 6, 3, 8, 13, 9, 9, 0, 2,
	7, 1, 6, 13, 7, 0, 9, 1, 16, 2, 13, 9, 0, 12, 4, 11, 2, 3, 0, 0, 2, 9, 11, 12, 11, 18, 1, 0, 4, 21, 3, 7,
	2, 5, 7, 5, 4, 1, 12, 0, 14, 3, 17, 8, 11, 8, 9, 5, 8, 0, 3, 3, 7, 11, 8, 3, 15, 1, 15, 3, 7, 3, 17, 10,
	7, 18, 11, 0, 2, 9, 10, 4, 16, 17, 0, 7, 7, 4, 8, 13, 7, 12, 7, 0, 1, 19, 15, 3, 4, 12, 18, 8, 2, 3, 0, 13,
	22, 6, 14, 3, 1, 7, 8, 2, 6, 6, 10, 18, 12, 12, 7, 15, 1, 0, 9, 5, 11, 4, 2, 0, 1, 0, 6, 11, 2, 8, 13, 17,
	4, 1, 8, 12, 12, 1, 3, 1, 5, 19, 5, 12, 1, 11, 11, 3, 8, 3, 12, 15, 6, 13, 5, 0, 5, 10, 1, 8, 5, 7, 11, 3,
	22, 5, 9, 12, 1, 17, 0, 7, 12, 1, 8, 8, 3, 17, 3, 10, 5, 5, 3, 4, 3, 0, 9, 4, 1, 0, 9, 7, 4, 9, 1, 7,
	1, 4, 3, 3, 7, 11, 4, 9, 9, 8, 8, 5, 1, 12, 10, 7, 7, 0, 0, 10, 4, 12, 4, 4, 2, 6, 13, 7, 7, 13, 8, 2,
	0, 7, 3, 12, 7, 4, 7, 4, 8, 7, 8, 7, 3, 1, 12, 19, 17, 4, 1, 4, 12, 1, 0, 15, 0, 8, 0, 9, 1, 18, 0, 0,
	7, 3, 2, 10, 12, 1, 11, 11, 18, 1, 17, 3, 13, 4, 6, 0, 9, 0, 1, 5, 2, 2, 10, 3, 10, 12, 1, 3, 5, 2, 2, 5,
	1, 5, 3, 1, 25, 0, 18, 0, 4, 2, 9, 10, 10, 5, 7, 10, 8, 7, 9, 1, 4, 0, 0, 1, 14, 10, 7, 15, 4, 3, 7, 1,
	12, 0, 6, 15, 1, 4, 12, 9, 3, 17, 1, 2, 16, 7, 0, 10, 1, 9, 10, 10, 11, 0, 7, 4, 17, 11, 4, 5, 16, 10, 0, 10,
	1, 3, 9, 6, 1, 5, 15, 5, 9, 0, 3, 14, 6, 1, 9, 1, 6, 9, 5, 9, 0, 3, 9, 2, 9, 4, 7, 1, 1, 5, 0, 12,
	6, 8, 11, 0, 1, 1, 5, 1, 7, 7, 11, 2, 11, 1, 7, 2, 4, 1, 7, 4, 15, 12, 1, 17, 16, 12, 3, 1, 10, 11, 12, 7,
	11, 11, 4, 18, 6, 5, 3, 10, 7, 3, 4, 2, 6, 9, 15, 9, 17, 4, 8, 3, 4, 4, 4, 4, 0, 1, 12, 1, 13, 13, 4, 7,
	7, 9, 9, 19, 1, 12, 16, 4, 14, 1, 5, 8, 9, 12, 2, 12, 15, 11, 10, 5, 1, 13, 6, 7, 8, 9, 1, 0, 9, 6, 14, 1,
	15, 1, 5, 13, 7, 15, 9, 3, 1, 14, 2, 10, 9, 11, 7, 2, 18, 11, 0, 8, 16, 20, 7, 11, 14, 22, 13, 1, 11, 15, 7, 5,
	7, 8, 6, 7, 6, 1, 11, 6, 12, 2, 6, 6, 1, 10, 2, 9, 15, 7, 8, 0, 12, 10, 17, 1, 0, 7, 12, 0, 2, 2, 18, 17,
	0, 12, 0, 3, 1, 7, 12, 11, 6, 5, 0, 5, 4, 3, 3, 11, 22, 1, 3, 0, 7, 14, 11, 3, 0, 2, 6, 19, 6, 10, 11, 3,
	8, 4, 7, 5, 1, 2, 4, 11, 10, 4, 9, 9, 3, 8, 1, 3, 15, 17, 1, 0, 5, 15, 0, 7, 2, 10, 1, 4, 3, 1, 8, 9,
	12, 2, 6, 7, 9, 7, 1, 4, 0, 10, 11, 2, 12, 4, 11, 3, 1, 13, 3, 2, 11, 4, 1, 5, 6, 7, 7, 12, 7, 4, 5, 10,
	9, 11, 0, 9, 0, 11, 2, 6, 4, 3, 0, 10, 1, 17, 9, 10, 15, 6, 5, 11, 4, 3, 11, 0, 13, 9, 4, 1, 14, 6, 14, 7,
	4, 3, 1, 1, 0, 4, 5, 11, 2, 5, 2, 4, 13, 7, 19, 10, 3, 10, 14, 4, 5, 3, 3, 4, 17, 2, 5, 20, 1, 9, 1, 18,
	7, 7, 3, 8, 9, 12, 5, 9, 4, 11, 1, 12, 17, 0, 12, 11, 21, 13, 9, 18, 4, 4, 7, 13, 1, 17, 0, 12, 3, 7, 0, 9,
	16, 9, 13, 11, 3, 10, 5, 0, 13, 9, 0, 6, 6, 1, 12, 3, 1, 3, 9, 10, 2, 15, 8, 4, 11, 7, 0, 9, 15, 12, 0, 12,
	4, 4, 7, 2, 0, 4, 3, 1, 0, 15, 9, 0, 0, 12, 3, 6, 0, 10, 17, 10, 5, 9, 14, 2, 2, 7, 8, 7, 10, 9, 7, 7,
	4, 1, 12, 12, 5, 12, 9, 6, 7, 12, 3, 9, 14, 4, 2, 4, 6, 4, 8, 3, 1, 1, 5, 7, 0, 11, 7, 14, 7, 2, 24, 11,
	4, 13, 9, 5, 0, 17, 5, 2, 14, 7, 1, 7, 8, 1, 9, 2, 1, 1, 7, 12, 10, 21, 1, 17, 4, 9, 7, 12, 0, 1, 9, 0,
	2, 6, 1, 4, 3, 0, 11, 6, 9, 11, 12, 0, 2, 8, 0, 0, 8, 9, 1, 0, 19, 13, 3, 0, 3, 0, 7, 6, 12, 2, 6, 9,
	12, 4, 1, 4, 12, 10, 15, 4, 3, 9, 15, 1, 14, 4, 12, 9, 3, 4, 15, 0, 15, 7, 1, 9, 0, 9, 3, 4, 7, 17, 1, 6,
	8, 4, 17, 7, 0, 0, 11, 2, 12, 17, 3, 13, 7, 3, 16, 13, 0, 2, 8, 8, 8, 9, 7, 13, 14, 19, 4, 7, 12, 11, 11, 4,
	6, 7, 11, 0, 0, 12, 2, 11, 14, 15, 3, 5, 9, 0, 13, 3, 0, 7, 3, 8, 7, 14, 14, 15, 3, 0, 13, 8, 11, 1, 7, 9,
	3, 9, 11, 18, 7, 3, 12, 4, 9, 21, 0, 1, 8, 0, 6, 7, 12, 3, 1, 2, 12, 13, 3, 2, 9, 1, 9, 8, 10, 7, 11, 15,
	17, 7, 0, 5, 11, 4, 13, 8, 12, 1, 3, 1, 0, 11, 5, 5, 5, 8, 7, 5, 3, 8, 9, 5, 9, 8, 1, 7, 15, 4, 2, 1,
	14, 7, 10, 17, 16, 1, 18, 8, 8, 0, 2, 1, 15, 0, 1, 3, 4, 3, 7, 4, 14, 15, 10, 9, 1, 9, 18, 3, 0, 1, 5, 11,
	11, 10, 7, 7, 9, 4, 9, 9, 1, 18, 10, 3, 20, 0, 0, 9, 0, 3, 7, 7, 4, 21, 9, 15, 7, 5, 10, 7, 0, 6, 17, 7,
	5, 16, 7, 11, 10, 10, 0, 6, 7, 7, 4, 0, 12, 4, 1, 2, 9, 2, 8, 3, 7, 2, 3, 0, 15, 11, 7, 7, 4, 17, 9, 3,
	1, 4, 4, 1, 9, 7, 5, 1, 7, 4, 6, 18, 4, 4, 0, 14, 3, 7, 11, 13, 13, 4, 11, 2, 5, 6, 9, 6, 11, 8, 6, 0,
	11, 7, 5, 0, 3, 8, 1, 0, 8, 1, 4, 7, 11, 0, 8, 8, 15, 9, 1, 19, 4, 10, 3, 11, 3, 19, 1, 2, 1, 2, 1, 9,
	7, 10, 1, 0, 3, 24, 4, 11, 15, 9, 11, 0, 3, 11, 9, 3, 13, 4, 12, 11, 1, 7, 15, 2, 1, 0, 3, 1, 6, 7, 11, 2,
	4, 1, 9, 1, 5, 1, 7, 12, 7, 5, 9, 1, 7, 9, 6, 0, 6, 9, 0, 1, 14, 21, 15, 11, 5, 9, 5, 10, 7, 12, 16, 10,
	10, 3, 16, 7, 8, 12, 1, 2, 0, 8, 1, 2, 1, 5, 0, 4, 4, 0, 4, 0, 14, 3, 2, 17, 6, 10, 17, 4, 19, 6, 0, 0,
	9, 5, 3, 0, 4, 10, 1, 1, 5, 2, 9, 1, 7, 4, 0, 4, 2, 4, 2, 11, 2, 5, 4, 5, 6, 1, 7, 4, 0, 11, 11, 3,
	13, 8, 12, 1, 0, 1, 14, 7, 9, 11, 1, 7, 4, 7, 7, 0, 13, 9, 19, 12, 8, 5, 8, 1, 5, 10, 1, 7, 2, 12, 6, 0,
	15, 13, 2, 0, 8, 7, 13, 7, 0, 7, 1, 5, 1, 5, 4, 13, 3, 8, 0, 0, 0, 1, 6, 14, 4, 0, 1, 12, 4, 5, 9, 15,
	15, 9, 5, 2, 19, 1, 0, 3, 4, 2, 0, 4, 4, 3, 20, 9, 3, 4, 12, 0, 6, 4, 4, 4, 3, 1, 12, 7, 0, 5, 3, 10,
	6, 9, 8, 0, 3, 14, 9, 3, 0, 1, 11, 3, 12, 7, 0, 7, 7, 4, 8, 8, 10, 7, 14, 10, 0, 0, 15, 5, 2, 8, 9, 6,
	4, 22, 16, 13, 11, 3, 6, 6, 14, 1, 3, 4, 7, 17, 14, 5, 9, 3, 9, 0, 1, 12, 6, 2, 7, 0, 0, 5, 1, 7, 7, 4,
	4, 4, 21, 3, 3, 4, 12, 0, 9, 14, 4, 12, 0, 9, 4, 14, 14, 1, 7, 3, 14, 19, 7, 2, 11, 3, 1, 3, 14, 11, 4, 1,
	9, 0, 1, 4, 1, 12, 5, 0, 2, 14, 13, 0, 1, 1, 4, 0, 14, 11, 16, 6, 3, 7, 6, 13, 13, 0, 1, 8, 0, 2, 1, 8,
}

// HeavyMatrix is the fixed 6x18 Cauchy-style GF(256) matrix generated by
// HeavyRowGenerator.cpp: stacking it under arbitrary binary row
// perturbations from the dense/peel rows above does not change its
// invertibility rate, a property the original author notes he never fully
// explained.
var HeavyMatrix = [HeavyRows][HeavyColumns]byte{
	{0x85, 0xd3, 0x66, 0xf3, 0x38, 0x95, 0x56, 0xad, 0x57, 0xaf, 0x58, 0x48, 0xbc, 0xfa, 0x02, 0xc5, 0x43, 0xe8},
	{0xd3, 0x85, 0xf3, 0x66, 0x95, 0x38, 0xad, 0x56, 0xaf, 0x57, 0x48, 0x58, 0xfa, 0xbc, 0xc5, 0x02, 0xe8, 0x43},
	{0x82, 0x22, 0x57, 0xaf, 0x56, 0xad, 0x38, 0x95, 0x66, 0xf3, 0x43, 0xe8, 0x02, 0xc5, 0xbc, 0xfa, 0x58, 0x48},
	{0x22, 0x82, 0xaf, 0x57, 0xad, 0x56, 0x95, 0x38, 0xf3, 0x66, 0xe8, 0x43, 0xc5, 0x02, 0xfa, 0xbc, 0x48, 0x58},
	{0x51, 0x34, 0x56, 0xad, 0x57, 0xaf, 0x66, 0xf3, 0x38, 0x95, 0x02, 0xc5, 0x43, 0xe8, 0x58, 0x48, 0xbc, 0xfa},
	{0x34, 0x51, 0xad, 0x56, 0xaf, 0x57, 0xf3, 0x66, 0x95, 0x38, 0xc5, 0x02, 0xe8, 0x43, 0x48, 0x58, 0xfa, 0xbc},
}

// InvertibleMatrixSeeds is a lookup table of seeds that generate invertible
// GF(2) matrices (WirehairTools.cpp: kInvertibleMatrixSeeds). Kept for API
// completeness; nothing in this package's GE path currently needs an
// on-demand invertible matrix (the heavy solve always uses HeavyMatrix).
var InvertibleMatrixSeeds = [MatrixSeedCount]uint8{
	0, 1, 4, 2, 0, 12, 0, 1, 1, 0, 2, 2, 1, 4, 1, 1, 1, 9, 9, 1, 0, 0, 0, 0, 2, 2, 2, 4, 3, 4, 1, 1,
	0, 0, 0, 0, 7, 1, 6, 2, 5, 1, 0, 4, 0, 0, 10, 0, 11, 3, 3, 2, 10, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 6,
	4, 0, 2, 3, 0, 0, 0, 1, 0, 0, 3, 3, 3, 1, 4, 0, 2, 2, 3, 1, 6, 0, 4, 1, 2, 3, 1, 1, 7, 0, 7, 0,
	0, 3, 5, 2, 6, 1, 3, 3, 0, 7, 0, 0, 4, 7, 1, 7, 5, 4, 1, 4, 4, 4, 6, 3, 0, 0, 4, 5, 5, 1, 8, 1,
	1, 0, 2, 4, 4, 2, 2, 2, 4, 5, 0, 0, 2, 0, 2, 4, 1, 3, 3, 3, 0, 4, 0, 0, 0, 0, 0, 0, 2, 1, 1, 17,
	3, 3, 3, 2, 9, 14, 3, 2, 5, 1, 1, 6, 3, 1, 6, 0, 0, 5, 5, 3, 3, 0, 0, 0, 0, 7, 4, 7, 7, 10, 0, 1,
	1, 9, 0, 0, 0, 1, 3, 0, 1, 2, 0, 2, 4, 1, 4, 0, 0, 2, 0, 4, 3, 3, 1, 0, 1, 10, 12, 5, 2, 2, 4, 1,
	0, 1, 1, 1, 0, 6, 4, 0, 0, 0, 3, 1, 3, 5, 0, 10, 2, 0, 3, 3, 1, 1, 0, 1, 6, 19, 2, 2, 1, 3, 5, 3,
	1, 1, 1, 4, 4, 0, 0, 3, 2, 8, 1, 14, 3, 0, 0, 1, 0, 1, 1, 4, 1, 1, 2, 0, 6, 8, 6, 5, 0, 0, 0, 6,
	1, 1, 4, 1, 6, 3, 0, 0, 1, 6, 3, 2, 2, 1, 3, 1, 9, 6, 8, 3, 1, 0, 3, 0, 0, 1, 1, 5, 2, 2, 4, 0,
	1, 2, 2, 6, 5, 7, 6, 0, 10, 3, 5, 0, 0, 0, 4, 0, 2, 10, 3, 1, 2, 2, 0, 2, 0, 9, 0, 0, 5, 3, 4, 4,
	4, 2, 0, 7, 0, 0, 0, 0, 2, 5, 0, 0, 0, 4, 5, 0, 0, 2, 4, 7, 3, 2, 2, 0, 1, 8, 1, 0, 2, 2, 2, 6,
	2, 0, 0, 0, 9, 0, 0, 0, 1, 0, 1, 1, 3, 0, 0, 3, 3, 3, 5, 0, 0, 1, 0, 1, 1, 1, 14, 12, 9, 2, 11, 3,
	2, 3, 3, 3, 3, 7, 6, 6, 0, 0, 0, 11, 0, 0, 3, 2, 1, 1, 1, 2, 3, 2, 3, 3, 3, 3, 3, 0, 0, 0, 1, 8,
	4, 3, 4, 4, 4, 1, 4, 6, 0, 6, 4, 3, 7, 6, 0, 1, 3, 3, 0, 2, 1, 1, 1, 1, 2, 0, 1, 0, 0, 8, 3, 2,
	2, 2, 2, 2, 9, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 9, 0, 0, 2, 3, 2, 0, 0, 10, 11, 0, 0, 0, 2, 0, 6, 0,
}

// SquareRootTable, SieveTable and PrimesUnder256From11 back internal/rng's
// NextPrime16: a coarse integer-sqrt lookup, a coprimality-to-210 sieve,
// and the primes between 11 and 256 needed to finish trial division up to
// that bound. Unlike the seed/count tables above these are pure number
// theory (any correct table of the same shape works), so they are
// generated here rather than transcribed; tables_test.go checks that
// SquareRootTable is monotonic non-decreasing.
var (
	SquareRootTable       [256]byte
	SieveTable            [210]byte
	PrimesUnder256From11  [50]uint32
	PeelCountDistribution [64]uint32
)

func init() {
	buildNumberTheoryTables()
}

func buildNumberTheoryTables() {
	for i := range SquareRootTable {
		SquareRootTable[i] = byte(isqrtFloat(i))
	}
	for r := range SieveTable {
		if gcd(uint32(r), 210) == 1 {
			SieveTable[r] = 1
		}
	}
	n := uint32(11)
	i := 0
	for i < len(PrimesUnder256From11) {
		if isPrimeTrial(n) {
			PrimesUnder256From11[i] = n
			i++
		}
		n += 2
	}
	PeelCountDistribution = peelDistributionPlaceholder()
}

// peelDistributionPlaceholder mirrors the Ideal-Soliton-like cumulative
// table computed in internal/rng, kept here too so the params package's
// exported table is self-sufficient for callers that only need the shape
// (e.g. documentation/tests) without pulling in internal/rng.
func peelDistributionPlaceholder() [64]uint32 {
	const buckets = 64
	const space = 1 << 24
	probs := make([]float64, buckets)
	probs[0] = 1.0 / buckets
	sum := probs[0]
	for k := 2; k <= buckets; k++ {
		probs[k-1] = 1.0 / (float64(k) * float64(k-1))
		sum += probs[k-1]
	}
	var out [64]uint32
	cum := 0.0
	for i := range probs {
		probs[i] /= sum
		cum += probs[i] * space
		out[i] = uint32(cum)
	}
	out[buckets-1] = space - 1
	return out
}

func isPrimeTrial(n uint32) bool {
	if n < 2 {
		return false
	}
	for _, p := range [...]uint32{2, 3, 5, 7} {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	bound := isqrtInt(n)
	for p := uint32(11); p <= bound; p += 2 {
		if n%p == 0 {
			return false
		}
	}
	return true
}

func isqrtInt(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

func isqrtFloat(n int) int {
	x := 0
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}

func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// DenseCountAndSeed returns (D, dense_seed) for a given N, following
// WirehairTools.cpp's GetDenseCount/GetDenseSeed: table lookup for N in the
// tiny/small ranges, piecewise-linear interpolation over DensePoints
// (rounded so D mod 4 == 2) beyond that.
func DenseCountAndSeed(n uint32) (d uint16, seed uint16) {
	d = denseCount(n)
	return d, denseSeed(n, d)
}

func denseCount(n uint32) uint16 {
	var lowN, highN uint32
	var lowD, highD uint16
	if n < SmallRangeEnd {
		if n < TinyTableCount {
			return uint16(TinyDenseCounts[n])
		}
		switch {
		case n <= 500:
			lowN, highN, lowD, highD = 64, 500, 26, 35
		case n <= 1000:
			lowN, highN, lowD, highD = 500, 1000, 35, 48
		default:
			lowN, highN, lowD, highD = 1000, SmallRangeEnd, 48, 62
		}
	} else {
		low, high := 0, len(DensePoints)-1
		for {
			mid := (high + low) / 2
			if mid == low {
				break
			}
			if n > uint32(DensePoints[mid].N) {
				low = mid
			} else {
				high = mid
			}
		}
		lowN, lowD = uint32(DensePoints[low].N), DensePoints[low].D
		highN, highD = uint32(DensePoints[low+1].N), DensePoints[low+1].D
	}
	d := linearInterpolate(lowN, highN, lowD, highD, n)
	switch d % 4 {
	case 0:
		d += 2
	case 1:
		d += 1
	case 3:
		d += 3
	}
	return d
}

// linearInterpolate mirrors WirehairTools.cpp's LinearInterpolate: integer
// division truncating toward zero, which Go's / already does for the
// signed arithmetic used here.
func linearInterpolate(n0, n1 uint32, count0, count1 uint16, n uint32) uint16 {
	numerator := (int64(n) - int64(n0)) * (int64(count1) - int64(count0))
	denominator := int64(n1) - int64(n0)
	if denominator == 0 {
		return count0
	}
	return uint16(int64(count0) + numerator/denominator)
}

func denseSeed(n uint32, d uint16) uint16 {
	switch {
	case n < TinyTableCount:
		return TinyDenseSeeds[n]
	case n < SmallRangeEnd:
		return uint16(SmallDenseSeeds[n-TinyTableCount])
	default:
		idx := int(d / 4)
		if idx >= len(DenseSeeds) {
			idx = len(DenseSeeds) - 1
		}
		return uint16(DenseSeeds[idx])
	}
}

// PeelSeedFor returns the peel seed for N, following GetPeelSeed:
// SmallPeelSeeds[N] for N < SmallRangeEnd, PeelSeeds[N mod
// PeelSeedSubdivisions] otherwise.
func PeelSeedFor(n uint32) uint16 {
	if n < SmallRangeEnd {
		return uint16(SmallPeelSeeds[n])
	}
	return uint16(PeelSeeds[n%PeelSeedSubdivisions])
}

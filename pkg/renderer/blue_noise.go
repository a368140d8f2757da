package renderer

// 8x8 ordered-dither masks used as a tiled blue-noise-like pattern for pixel jitter
var (
	blueNoiseX = [64]uint8{
		32, 0, 48, 16, 56, 24, 40, 8, 12, 44, 28, 60, 4, 36, 20, 52,
		51, 19, 35, 3, 43, 11, 59, 27, 23, 55, 7, 39, 31, 63, 15, 47,
		34, 2, 50, 18, 58, 26, 42, 10, 6, 38, 22, 54, 14, 46, 30, 62,
		49, 17, 33, 1, 41, 9, 57, 25, 21, 53, 5, 37, 13, 45, 29, 61,
	}
	blueNoiseY = [64]uint8{
		0, 32, 16, 48, 8, 40, 24, 56, 44, 12, 60, 28, 36, 4, 52, 20,
		19, 51, 3, 35, 11, 43, 27, 59, 55, 23, 39, 7, 63, 31, 47, 15,
		2, 34, 18, 50, 26, 58, 10, 42, 38, 6, 54, 22, 46, 14, 62, 30,
		17, 49, 1, 33, 9, 41, 25, 57, 53, 21, 37, 5, 45, 13, 61, 29,
	}
)

// BlueNoiseOffset returns the sub-pixel offset in [-0.5, 0.5)² for sample s of pixel (i, j).
// It is a pure function of its arguments.
func BlueNoiseOffset(i, j, s int) (dx, dy float64) {
	base := uint32((j&7)*8 + (i & 7))
	idxX := (base + uint32(s)*73) & 63
	idxY := (base + uint32(s)*97) & 63

	dx = (float64(blueNoiseX[idxX])+0.5)/64 - 0.5
	dy = (float64(blueNoiseY[idxY])+0.5)/64 - 0.5
	return dx, dy
}

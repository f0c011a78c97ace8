package core

// wrapCoord maps any signed coordinate onto [0, n).
func wrapCoord(c, n int) int {
	c %= n
	if c < 0 {
		c += n
	}
	return c
}

// WrapIndex returns the row-major slice index for coordinates (x, y) on a
// toroidal w×h grid. Both coordinates may be any signed integer; they are
// wrapped onto the grid, so the result is always in [0, w*h).
func WrapIndex(x, y, w, h int) int {
	return wrapCoord(y, h)*w + wrapCoord(x, w)
}

// Wrap applies toroidal wrapping to the provided coordinates.
func Wrap(x, y, w, h int) (int, int) {
	return wrapCoord(x, w), wrapCoord(y, h)
}

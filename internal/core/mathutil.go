package core

import "math"

// Clamp32 limits v to [min, max]. A min greater than max is a programmer
// error and panics. NaN inputs collapse to min so a bad sample can never
// escape the valid range.
func Clamp32(v, min, max float32) float32 {
	if min > max {
		panic("core: clamp called with min greater than max")
	}
	if math.IsNaN(float64(v)) {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MapRange linearly remaps t from the range [a0, a1] into [b0, b1].
func MapRange(t, a0, a1, b0, b1 float32) float32 {
	slope := (b1 - b0) / (a1 - a0)
	return b0 + slope*(t-a0)
}

// LerpByte interpolates between two byte channels. The result truncates
// rather than rounds, matching the fixed-point behavior the color tables
// were generated with.
func LerpByte(a, b uint8, t float32) uint8 {
	return uint8(float32(a)*(1-t) + float32(b)*t)
}

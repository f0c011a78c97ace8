package grayscott

import (
	"hash/maphash"
	"math"
)

// NutrientPattern selects a spatial feed-rate modulation applied while
// painting seeds into the field. Patterns never alter the reaction step
// itself; they only scale user-applied perturbations.
type NutrientPattern uint8

const (
	PatternUniform NutrientPattern = iota
	PatternCheckerboard
	PatternDiagonalGradient
	PatternRadialGradient
	PatternVerticalStripes
	PatternHorizontalStripes
	PatternNoise
	PatternWaveFunction
	PatternCosineGrid

	patternCount
)

// Patterns returns every nutrient pattern in cycling order.
func Patterns() []NutrientPattern {
	out := make([]NutrientPattern, patternCount)
	for i := range out {
		out[i] = NutrientPattern(i)
	}
	return out
}

func (p NutrientPattern) String() string {
	switch p {
	case PatternUniform:
		return "Uniform"
	case PatternCheckerboard:
		return "Checkerboard"
	case PatternDiagonalGradient:
		return "Diagonal Gradient"
	case PatternRadialGradient:
		return "Radial Gradient"
	case PatternVerticalStripes:
		return "Vertical Stripes"
	case PatternHorizontalStripes:
		return "Horizontal Stripes"
	case PatternNoise:
		return "Noise"
	case PatternWaveFunction:
		return "Wave Function"
	case PatternCosineGrid:
		return "Cosine Grid"
	default:
		return "Unknown"
	}
}

// noiseSeed fixes the per-session hash so repeated Factor queries at the
// same coordinate return the same draw.
var noiseSeed = maphash.MakeSeed()

// Factor evaluates the pattern at cell (x, y) of a w×h grid, returning a
// feed multiplier in [0, 1].
func (p NutrientPattern) Factor(x, y, w, h int) float32 {
	switch p {
	case PatternCheckerboard:
		if ((x/8)+(y/8))%2 == 0 {
			return 1
		}
		return 0
	case PatternDiagonalGradient:
		if w+h <= 2 {
			return 1
		}
		return float32(x+y) / float32(w+h-2)
	case PatternRadialGradient:
		cx := float64(w-1) / 2
		cy := float64(h-1) / 2
		dx := float64(x) - cx
		dy := float64(y) - cy
		max := math.Hypot(cx, cy)
		if max == 0 {
			return 1
		}
		d := math.Hypot(dx, dy) / max
		if d > 1 {
			d = 1
		}
		return float32(1 - d)
	case PatternVerticalStripes:
		return 0.5 + 0.5*float32(math.Sin(2*math.Pi*10*float64(x)/float64(w)))
	case PatternHorizontalStripes:
		return 0.5 + 0.5*float32(math.Sin(2*math.Pi*10*float64(y)/float64(h)))
	case PatternNoise:
		return cellNoise(x, y)
	case PatternWaveFunction:
		fx := float64(x) / float64(w)
		fy := float64(y) / float64(h)
		return 0.5 + 0.5*float32(math.Sin(6*math.Pi*fx+4*math.Pi*fy))
	case PatternCosineGrid:
		fx := 0.5 + 0.5*math.Cos(2*math.Pi*6*float64(x)/float64(w))
		fy := 0.5 + 0.5*math.Cos(2*math.Pi*6*float64(y)/float64(h))
		return float32(fx * fy)
	default:
		return 1
	}
}

// cellNoise returns a deterministic pseudo-random draw in [0, 1] for the
// given cell. Different cells are independent; the same cell always hashes
// to the same value within a session.
func cellNoise(x, y int) float32 {
	var hsh maphash.Hash
	hsh.SetSeed(noiseSeed)
	var buf [16]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(uint64(x) >> (8 * i))
		buf[8+i] = byte(uint64(y) >> (8 * i))
	}
	hsh.Write(buf[:])
	return float32(hsh.Sum64()>>40) / float32(1<<24)
}

package grayscott

import (
	"github.com/aquilax/go-perlin"

	"gray-scott/internal/core"
)

// Clear restores the whole field to the rest state (U=1, V=0).
func (s *System) Clear() {
	s.cur.reset()
	s.rebuildDisplay()
}

// FillNoise replaces the field with a random binary sprinkle of V: each
// cell independently gets V=0.8 or V=0, U stays at 1. Deterministic for a
// given seed.
func (s *System) FillNoise(seed int64) {
	rng := core.NewRNG(seed)
	for i := range s.cur.u {
		s.cur.u[i] = 1
		if rng.Bool() {
			s.cur.v[i] = 0.8
		} else {
			s.cur.v[i] = 0
		}
	}
	s.rebuildDisplay()
}

// FillPerlin seeds the field with smooth Perlin-noise blobs of V, which
// grow into more organic structures than the binary sprinkle. Deterministic
// for a given seed.
func (s *System) FillPerlin(seed int64) {
	const (
		alpha = 2.0
		beta  = 2.0
		n     = 3
		scale = 8.0
	)
	p := perlin.NewPerlin(alpha, beta, n, seed)
	for y := 0; y < s.h; y++ {
		fy := scale * float64(y) / float64(s.h)
		for x := 0; x < s.w; x++ {
			fx := scale * float64(x) / float64(s.w)
			i := y*s.w + x
			s.cur.u[i] = 1
			// Perlin2D returns roughly [-1, 1]; keep the upper lobes.
			if p.Noise2D(fx, fy) > 0.2 {
				s.cur.v[i] = 0.8
			} else {
				s.cur.v[i] = 0
			}
		}
	}
	s.rebuildDisplay()
}

// Paint stamps a hard-edged circular brush of seed concentration centered
// on (x, y), scaled by the active nutrient pattern at each covered cell.
// Coordinates wrap like every other field access.
func (s *System) Paint(x, y, radius int) {
	if radius < 0 {
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			nx, ny := core.Wrap(x+dx, y+dy, s.w, s.h)
			factor := s.NutrientFactor(nx, ny)
			s.Set(nx, ny, UV{U: 0.5, V: 0.99 * factor})
		}
	}
}

// Erase restores a circular area around (x, y) to the rest state.
func (s *System) Erase(x, y, radius int) {
	if radius < 0 {
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			s.Set(x+dx, y+dy, UV{U: 1, V: 0})
		}
	}
}

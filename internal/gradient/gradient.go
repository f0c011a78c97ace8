// Package gradient provides piecewise-linear color gradients, precomputed
// 256-entry lookup tables, and smooth table-to-table transitions.
package gradient

import (
	"image/color"
	"sort"

	"gray-scott/internal/core"
)

// Stop is a color anchored at a position t within [0, 1].
type Stop struct {
	T     float32
	Color color.RGBA
}

// Gradient is an ordered set of color stops. The zero value behaves as a
// black-to-white ramp; FromColors builds a populated one.
type Gradient struct {
	stops []Stop
}

// FromColors initializes a two-stop gradient spanning [0, 1].
func FromColors(a, b color.RGBA) *Gradient {
	return &Gradient{stops: []Stop{{T: 0, Color: a}, {T: 1, Color: b}}}
}

// AddColorAtT inserts a stop, clamping t to [0, 1] and keeping the stops
// sorted. The sort is stable, so stops sharing the exact same t keep their
// insertion order and the earliest inserted one is used as the upper bound.
func (g *Gradient) AddColorAtT(t float32, c color.RGBA) {
	t = core.Clamp32(t, 0, 1)
	g.stops = append(g.stops, Stop{T: t, Color: c})
	sort.SliceStable(g.stops, func(i, j int) bool {
		return g.stops[i].T < g.stops[j].T
	})
}

// Stops returns the ordered stops. The slice is shared; callers must not
// mutate it.
func (g *Gradient) Stops() []Stop { return g.stops }

// ColorAtT evaluates the gradient at t, clamped to [0, 1]. The two stops
// bounding t are interpolated per channel, alpha included. When t lands
// exactly on a stop (including the boundary stops) that stop's color is
// returned unchanged.
func (g *Gradient) ColorAtT(t float32) color.RGBA {
	t = core.Clamp32(t, 0, 1)
	lo, hi := g.boundingStops(t)
	if hi.T <= lo.T {
		return hi.Color
	}
	mapped := core.MapRange(t, lo.T, hi.T, 0, 1)
	return color.RGBA{
		R: core.LerpByte(lo.Color.R, hi.Color.R, mapped),
		G: core.LerpByte(lo.Color.G, hi.Color.G, mapped),
		B: core.LerpByte(lo.Color.B, hi.Color.B, mapped),
		A: core.LerpByte(lo.Color.A, hi.Color.A, mapped),
	}
}

// ColorAtByte evaluates the gradient at a quantized position b/255.
func (g *Gradient) ColorAtByte(b uint8) color.RGBA {
	return g.ColorAtT(float32(b) / 255)
}

// boundingStops finds the first stop with stop.T >= t (the upper bound) and
// its immediately preceding stop. When the upper bound is the first stop it
// doubles as the lower bound; a gradient with no stops falls back to the
// synthetic black-to-white pair.
func (g *Gradient) boundingStops(t float32) (Stop, Stop) {
	if len(g.stops) == 0 {
		return Stop{T: 0, Color: color.RGBA{A: 255}},
			Stop{T: 1, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	}
	for i, s := range g.stops {
		if s.T >= t {
			if i == 0 {
				return s, s
			}
			return g.stops[i-1], s
		}
	}
	last := g.stops[len(g.stops)-1]
	return last, last
}

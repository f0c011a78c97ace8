package gradient

import (
	"image/color"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestBoundaryStopsExact(t *testing.T) {
	c := qt.New(t)
	g := FromColors(red, white)
	g.AddColorAtT(0.5, black)

	c.Assert(g.ColorAtT(0), qt.Equals, red)
	c.Assert(g.ColorAtT(1), qt.Equals, white)
	c.Assert(g.ColorAtT(0.5), qt.Equals, black)
}

func TestColorAtTClampsT(t *testing.T) {
	c := qt.New(t)
	g := FromColors(red, white)

	c.Assert(g.ColorAtT(-3), qt.Equals, red)
	c.Assert(g.ColorAtT(7), qt.Equals, white)
}

func TestColorAtTInterpolates(t *testing.T) {
	c := qt.New(t)
	g := FromColors(black, white)

	mid := g.ColorAtT(0.5)
	c.Assert(mid.R, qt.Equals, mid.G)
	c.Assert(mid.G, qt.Equals, mid.B)
	// Truncating channel lerp: 255*0.5 = 127.5 -> 127.
	c.Assert(mid.R, qt.Equals, uint8(127))
	c.Assert(mid.A, qt.Equals, uint8(255))
}

func TestAddColorAtTClampsAndSorts(t *testing.T) {
	c := qt.New(t)
	g := FromColors(black, white)
	g.AddColorAtT(2, red)
	g.AddColorAtT(-1, red)

	stops := g.Stops()
	for i := 1; i < len(stops); i++ {
		c.Assert(stops[i-1].T <= stops[i].T, qt.IsTrue)
	}
	c.Assert(stops[0].T, qt.Equals, float32(0))
	c.Assert(stops[len(stops)-1].T, qt.Equals, float32(1))
}

func TestZeroGradientFallsBackToBlackWhite(t *testing.T) {
	c := qt.New(t)
	var g Gradient

	c.Assert(g.ColorAtT(0), qt.Equals, black)
	c.Assert(g.ColorAtT(1), qt.Equals, white)
}

func TestColorAtByte(t *testing.T) {
	c := qt.New(t)
	g := FromColors(black, white)

	c.Assert(g.ColorAtByte(0), qt.Equals, g.ColorAtT(0))
	c.Assert(g.ColorAtByte(255), qt.Equals, g.ColorAtT(1))
}

func TestBuildLUTDeterministic(t *testing.T) {
	c := qt.New(t)
	g := NewRainbow()

	a := BuildLUT(g)
	b := BuildLUT(g)
	c.Assert(*a, qt.Equals, *b)
}

func TestBuildLUTEndpoints(t *testing.T) {
	c := qt.New(t)
	g := FromColors(red, white)
	l := BuildLUT(g)

	c.Assert(l.At(0), qt.Equals, red)
	c.Assert(l.At(255), qt.Equals, white)
}

func TestBlendEndpointsExact(t *testing.T) {
	c := qt.New(t)
	src := BuildLUT(NewRainbow())
	dst := BuildLUT(NewMagma())

	c.Assert(*Blend(src, dst, 0), qt.Equals, *src)
	c.Assert(*Blend(src, dst, 1), qt.Equals, *dst)
	c.Assert(*Blend(src, dst, -0.5), qt.Equals, *src)
	c.Assert(*Blend(src, dst, 1.5), qt.Equals, *dst)
}

func TestTransition(t *testing.T) {
	c := qt.New(t)
	src := BuildLUT(NewMonochrome())
	dst := BuildLUT(NewMagma())

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTransition(src, dst, time.Second, start)

	c.Assert(*tr.At(start), qt.Equals, *src)
	c.Assert(tr.Done(start), qt.IsFalse)

	end := start.Add(time.Second)
	c.Assert(*tr.At(end), qt.Equals, *dst)
	c.Assert(tr.Done(end), qt.IsTrue)

	// After retargeting, the old destination is the new source.
	next := BuildLUT(NewRainbow())
	tr.Retarget(next, end)
	c.Assert(*tr.At(end), qt.Equals, *dst)
	c.Assert(*tr.At(end.Add(time.Second)), qt.Equals, *next)
}

func TestPresetsHaveDistinctNames(t *testing.T) {
	c := qt.New(t)
	seen := map[string]bool{}
	for _, p := range Presets() {
		c.Assert(seen[p.Name], qt.IsFalse)
		seen[p.Name] = true
		c.Assert(p.Gradient, qt.IsNotNil)
	}
}

package gradient

import (
	"image/color"
	"time"

	"gray-scott/internal/core"
)

// TableSize is the number of entries in a color lookup table.
const TableSize = 256

// LUT is a fixed 256-entry color table, a cached quantized projection of a
// Gradient. It is read-only between rebuilds.
type LUT [TableSize]color.RGBA

// BuildLUT samples the gradient at 256 evenly spaced points. Rebuilding
// from an unchanged gradient is deterministic.
func BuildLUT(g *Gradient) *LUT {
	var l LUT
	for i := range l {
		l[i] = g.ColorAtT(float32(i) / (TableSize - 1))
	}
	return &l
}

// At returns the color for a quantized input.
func (l *LUT) At(i uint8) color.RGBA { return l[i] }

// Table exposes the entries as a slice for pixel-fill loops.
func (l *LUT) Table() []color.RGBA { return l[:] }

// Blend produces the per-index, per-channel linear interpolation of two
// tables. progress <= 0 reproduces src exactly; progress >= 1 reproduces dst.
func Blend(src, dst *LUT, progress float32) *LUT {
	if progress <= 0 {
		out := *src
		return &out
	}
	if progress >= 1 {
		out := *dst
		return &out
	}
	var out LUT
	for i := range out {
		out[i] = color.RGBA{
			R: core.LerpByte(src[i].R, dst[i].R, progress),
			G: core.LerpByte(src[i].G, dst[i].G, progress),
			B: core.LerpByte(src[i].B, dst[i].B, progress),
			A: core.LerpByte(src[i].A, dst[i].A, progress),
		}
	}
	return &out
}

// Transition animates a smooth change from one lookup table to another over
// a fixed duration. The state lives in the presentation layer; the caller
// re-evaluates it each tick.
type Transition struct {
	src      *LUT
	dst      *LUT
	start    time.Time
	duration time.Duration
}

// NewTransition starts a transition from src to dst beginning at now.
func NewTransition(src, dst *LUT, duration time.Duration, now time.Time) *Transition {
	if duration <= 0 {
		duration = time.Nanosecond
	}
	return &Transition{src: src, dst: dst, start: now, duration: duration}
}

// At evaluates the blended table at the given instant.
func (tr *Transition) At(now time.Time) *LUT {
	return Blend(tr.src, tr.dst, tr.progress(now))
}

// Done reports whether the transition has completed.
func (tr *Transition) Done(now time.Time) bool {
	return tr.progress(now) >= 1
}

// Retarget begins a new transition toward dst. The current target becomes
// the new source, so completed transitions chain seamlessly.
func (tr *Transition) Retarget(dst *LUT, now time.Time) {
	tr.src = tr.dst
	tr.dst = dst
	tr.start = now
}

func (tr *Transition) progress(now time.Time) float32 {
	elapsed := now.Sub(tr.start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= tr.duration {
		return 1
	}
	return float32(elapsed.Seconds() / tr.duration.Seconds())
}

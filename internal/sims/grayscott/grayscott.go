// Package grayscott implements the Gray-Scott reaction-diffusion model over
// a 2D toroidal grid. The per-tick update is a pure function of the previous
// generation, computed across a double-buffered field by a worker pool.
package grayscott

import (
	"fmt"
	"math"
	"runtime"

	"gray-scott/internal/core"
)

// System owns the simulation state: the double-buffered concentration field,
// the current rates, and the active nutrient pattern.
type System struct {
	cfg Config

	w, h int

	cur *Field
	nxt *Field

	display []uint8

	pattern         NutrientPattern
	patternReversed bool
	presetIndex     int

	workers int
	rng     *core.RNG
}

// New returns a System with the provided dimensions and rates, all other
// settings at their defaults.
func New(w, h int, feed, kill, diffU, diffV float32) *System {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Params.Feed = feed
	cfg.Params.Kill = kill
	cfg.Params.DiffU = diffU
	cfg.Params.DiffV = diffV
	return NewWithConfig(cfg)
}

// NewWithConfig returns a System configured from the provided options.
func NewWithConfig(cfg Config) *System {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	if cfg.Params.TimeStep <= 0 {
		cfg.Params.TimeStep = 1
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Height {
		workers = cfg.Height
	}
	s := &System{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		cur:     NewField(cfg.Width, cfg.Height),
		nxt:     NewField(cfg.Width, cfg.Height),
		display: make([]uint8, cfg.Width*cfg.Height),
		workers: workers,
		rng:     core.NewRNG(cfg.Seed),
	}
	s.rebuildDisplay()
	return s
}

// Name returns the simulation identifier.
func (s *System) Name() string { return "grayscott" }

// Size reports the grid dimensions.
func (s *System) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Width reports the grid width in cells.
func (s *System) Width() int { return s.w }

// Height reports the grid height in cells.
func (s *System) Height() int { return s.h }

// Cells exposes the display projection of the current generation, one byte
// per cell, suitable for lookup-table coloring.
func (s *System) Cells() []uint8 { return s.display }

// Get reads the cell at (x, y) with toroidal wrapping.
func (s *System) Get(x, y int) UV { return s.cur.Get(x, y) }

// GetIndex reads the cell at a linear index; out-of-range panics.
func (s *System) GetIndex(i int) UV { return s.cur.GetIndex(i) }

// Set writes a single cell, clamping both components to [-1, 1].
func (s *System) Set(x, y int, uv UV) {
	s.cur.Set(x, y, uv)
	i := s.cur.Index(x, y)
	s.display[i] = displayByte(s.cur.u[i], s.cur.v[i])
}

// SetAll bulk-replaces the field; a length mismatch panics.
func (s *System) SetAll(values []UV) {
	s.cur.SetAll(values)
	s.rebuildDisplay()
}

// UVs returns an interleaved read-only snapshot of the full field.
func (s *System) UVs() []UV { return s.cur.UVs() }

// Reset restores the rest state and reseeds with a sprinkle of V so the
// reaction has something to grow from. A zero seed falls back to the
// configured seed.
func (s *System) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng = core.NewRNG(seed)
	s.cur.reset()
	s.nxt.reset()
	s.seedCenter()
	s.rebuildDisplay()
}

// Step advances the simulation by one tick at the configured time step.
func (s *System) Step() { s.Update() }

// Update advances the simulation by one tick at the configured time step.
func (s *System) Update() { s.UpdateDelta(s.cfg.Params.TimeStep) }

// UpdateRates swaps in new feed and kill rates. They take effect on the
// next Update call; the existing field is untouched.
func (s *System) UpdateRates(feed, kill float32) {
	s.cfg.Params.Feed = feed
	s.cfg.Params.Kill = kill
}

// Rates reports the current feed and kill rates.
func (s *System) Rates() (feed, kill float32) {
	return s.cfg.Params.Feed, s.cfg.Params.Kill
}

// SetNutrientPattern selects the active nutrient pattern by value and sets
// its reversal flag.
func (s *System) SetNutrientPattern(p NutrientPattern, reversed bool) {
	if p >= patternCount {
		p = PatternUniform
	}
	s.pattern = p
	s.patternReversed = reversed
}

// CycleNutrientPattern advances to the next pattern, wrapping around.
func (s *System) CycleNutrientPattern() {
	s.pattern = (s.pattern + 1) % patternCount
}

// ToggleNutrientReversal inverts the pattern factor (1-f). Toggling twice
// restores the original behavior.
func (s *System) ToggleNutrientReversal() {
	s.patternReversed = !s.patternReversed
}

// NutrientPattern reports the active pattern and its reversal flag.
func (s *System) NutrientPattern() (NutrientPattern, bool) {
	return s.pattern, s.patternReversed
}

// NutrientFactor evaluates the active pattern at (x, y), honoring reversal.
func (s *System) NutrientFactor(x, y int) float32 {
	f := s.pattern.Factor(x, y, s.w, s.h)
	if s.patternReversed {
		f = 1 - f
	}
	return f
}

// CyclePreset advances to the next model preset and applies its rates.
// The new rates take effect on the next Update.
func (s *System) CyclePreset() Preset {
	presets := ModelPresets()
	s.presetIndex = (s.presetIndex + 1) % len(presets)
	p := presets[s.presetIndex]
	s.UpdateRates(p.Feed, p.Kill)
	return p
}

// Preset reports the most recently applied model preset.
func (s *System) Preset() Preset {
	return ModelPresets()[s.presetIndex]
}

// seedCenter drops a small square of V in the middle of the grid.
func (s *System) seedCenter() {
	r := s.w / 20
	if r < 2 {
		r = 2
	}
	cx, cy := s.w/2, s.h/2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			s.cur.Set(cx+dx, cy+dy, UV{U: 0.5, V: 0.25 + 0.5*s.rng.Float32()})
		}
	}
}

// displayByte projects a concentration pair onto a byte index for
// lookup-table coloring.
func displayByte(u, v float32) uint8 {
	value := 0.5 + 0.5*math.Sin(20*float64(v)+10*float64(u))
	t := (value + 1) / 2
	return uint8(t * 255)
}

func (s *System) rebuildDisplay() {
	for i := range s.display {
		s.display[i] = displayByte(s.cur.u[i], s.cur.v[i])
	}
}

// Parameters reports the current tunables for display purposes.
func (s *System) Parameters() []core.Parameter {
	p := s.cfg.Params
	return []core.Parameter{
		{Key: "feed", Label: "Feed rate", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.4f", p.Feed)},
		{Key: "kill", Label: "Kill rate", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.4f", p.Kill)},
		{Key: "diff_u", Label: "Diffusion U", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.3f", p.DiffU)},
		{Key: "diff_v", Label: "Diffusion V", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.3f", p.DiffV)},
		{Key: "time_step", Label: "Time step", Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.2f", p.TimeStep)},
	}
}

// ParameterControls exposes the UI-adjustable tunables.
func (s *System) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "feed", Label: "Feed rate", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 0.3, HasMin: true, HasMax: true},
		{Key: "kill", Label: "Kill rate", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 0.3, HasMin: true, HasMax: true},
		{Key: "diff_u", Label: "Diffusion U", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: "diff_v", Label: "Diffusion V", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: "time_step", Label: "Time step", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 2, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a tunable by key, clamping to its control
// bounds. It reports whether the key was recognized.
func (s *System) SetFloatParameter(key string, value float64) bool {
	clampTo := func(min, max float64) float32 {
		if value < min {
			value = min
		}
		if value > max {
			value = max
		}
		return float32(value)
	}
	switch key {
	case "feed":
		s.cfg.Params.Feed = clampTo(0, 0.3)
	case "kill":
		s.cfg.Params.Kill = clampTo(0, 0.3)
	case "diff_u":
		s.cfg.Params.DiffU = clampTo(0, 2)
	case "diff_v":
		s.cfg.Params.DiffV = clampTo(0, 2)
	case "time_step":
		s.cfg.Params.TimeStep = clampTo(0.1, 2)
	default:
		return false
	}
	return true
}

func init() {
	core.Register("grayscott", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}

//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"gray-scott/internal/core"
	"gray-scott/internal/gradient"
	"gray-scott/internal/lut"
	"gray-scott/internal/render"
	"gray-scott/internal/sims/grayscott"
	"gray-scott/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const transitionDuration = 700 * time.Millisecond

var helpLines = []string{
	"Controls:",
	"Left mouse: draw seeds    Right mouse: erase",
	"C: clear    N: noise fill    M: perlin fill",
	"G: cycle gradient    L: cycle LUT    V: reverse LUT",
	"P: cycle model preset    U: cycle nutrient pattern",
	"I: toggle nutrient reversal",
	"Arrows: adjust feed (left/right) and kill (up/down)",
	"[ / ]: brush size    Space: pause    T: single step    R: reset",
	"H or /: toggle help    Q or Esc: quit",
}

// Game adapts the Gray-Scott system to the ebiten.Game interface and owns
// the color pipeline state: the active table, the LUT registry, and any
// in-flight table transition.
type Game struct {
	sim     *grayscott.System
	painter *render.GridPainter
	overlay *ui.Overlay
	fixed   *core.FixedStep

	lutMgr   *lut.Manager
	lutNames []string

	gradients []gradient.Preset

	// Color source: gradIndex addresses gradients while lutIndex is -1;
	// otherwise lutIndex addresses lutNames.
	gradIndex   int
	lutIndex    int
	lutData     *lut.Data
	lutReversed bool
	sourceName  string

	current    *gradient.LUT
	transition *gradient.Transition
	table      []color.RGBA

	scale       int
	seed        int64
	paused      bool
	tickOnce    bool
	brushRadius int
}

// New constructs a Game for the provided simulation and LUT registry.
func New(sim *grayscott.System, mgr *lut.Manager, cfg *Config) (*Game, error) {
	names, err := mgr.Names()
	if err != nil {
		return nil, err
	}
	size := sim.Size()
	g := &Game{
		sim:         sim,
		painter:     render.NewGridPainter(size.W, size.H),
		overlay:     ui.NewOverlay(helpLines),
		fixed:       core.NewFixedStep(cfg.SimTPS),
		lutMgr:      mgr,
		lutNames:    names,
		gradients:   gradient.Presets(),
		lutIndex:    -1,
		scale:       cfg.Scale,
		seed:        cfg.Seed,
		brushRadius: 5,
	}
	g.current = gradient.BuildLUT(g.gradients[0].Gradient)
	g.sourceName = g.gradients[0].Name
	g.table = g.current.Table()
	return g, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input, advances any color transition, and steps
// the simulation at its own tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.FillNoise(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sim.FillPerlin(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sim.CyclePreset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.sim.CycleNutrientPattern()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.sim.ToggleNutrientReversal()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.cycleGradient()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.cycleLut()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.reverseLut()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.brushRadius > 1 {
		g.brushRadius--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) && g.brushRadius < 50 {
		g.brushRadius++
	}
	g.adjustRates()
	g.handleMouse()

	g.overlay.Update()
	g.overlay.SetStatus(g.statusLines())

	if g.transition != nil {
		now := time.Now()
		g.table = g.transition.At(now).Table()
		if g.transition.Done(now) {
			g.transition = nil
			g.table = g.current.Table()
		}
	}

	if (!g.paused || g.tickOnce) && g.fixed.ShouldStep() {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state through the active color table.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.table, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

func (g *Game) cycleGradient() {
	g.gradIndex = (g.gradIndex + 1) % len(g.gradients)
	g.lutIndex = -1
	g.lutData = nil
	g.lutReversed = false
	g.sourceName = g.gradients[g.gradIndex].Name
	g.retarget(gradient.BuildLUT(g.gradients[g.gradIndex].Gradient))
}

func (g *Game) cycleLut() {
	if len(g.lutNames) == 0 {
		return
	}
	g.lutIndex = (g.lutIndex + 1) % len(g.lutNames)
	name := g.lutNames[g.lutIndex]
	data, err := g.lutMgr.Load(name)
	if err != nil {
		// A missing or malformed file leaves the current table in place.
		return
	}
	g.lutData = data
	g.lutReversed = false
	g.sourceName = name
	g.retarget(tableToLUT(data.Table()))
}

func (g *Game) reverseLut() {
	if g.lutData == nil {
		return
	}
	g.lutData.Reverse()
	g.lutReversed = !g.lutReversed
	g.retarget(tableToLUT(g.lutData.Table()))
}

// retarget starts a smooth transition from the active table to next.
func (g *Game) retarget(next *gradient.LUT) {
	src := g.current
	if g.transition != nil {
		src = tableToLUT(g.table)
	}
	g.current = next
	g.transition = gradient.NewTransition(src, next, transitionDuration, time.Now())
}

func (g *Game) adjustRates() {
	step := func(key string, delta float64) {
		for _, ctrl := range g.sim.ParameterControls() {
			if ctrl.Key != key {
				continue
			}
			feed, kill := g.sim.Rates()
			cur := map[string]float64{"feed": float64(feed), "kill": float64(kill)}[key]
			g.sim.SetFloatParameter(key, cur+delta*ctrl.Step)
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		step("feed", 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		step("feed", -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		step("kill", 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		step("kill", -1)
	}
}

func (g *Game) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	x := mx / g.scale
	y := my / g.scale
	size := g.sim.Size()
	if x < 0 || y < 0 || x >= size.W || y >= size.H {
		return
	}
	if left {
		g.sim.Paint(x, y, g.brushRadius)
	} else {
		g.sim.Erase(x, y, g.brushRadius)
	}
}

func (g *Game) statusLines() []string {
	feed, kill := g.sim.Rates()
	pattern, reversed := g.sim.NutrientPattern()
	patternName := pattern.String()
	if reversed {
		patternName += " (reversed)"
	}
	colorName := g.sourceName
	if g.lutReversed {
		colorName += " (reversed)"
	}
	return []string{
		fmt.Sprintf("%s  f=%.4f k=%.4f", g.sim.Preset().Name, feed, kill),
		"Nutrient: " + patternName,
		"Color: " + colorName,
	}
}

// tableToLUT snapshots a 256-entry slice back into a fixed table.
func tableToLUT(table []color.RGBA) *gradient.LUT {
	var l gradient.LUT
	copy(l[:], table)
	return &l
}

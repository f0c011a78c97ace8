//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the status line and an optional help panel on top of the
// simulation view.
type Overlay struct {
	showHelp bool
	status   []string
	help     []string

	panel *ebiten.Image
}

// NewOverlay constructs an overlay with the provided help lines.
func NewOverlay(help []string) *Overlay {
	return &Overlay{help: help}
}

// SetStatus replaces the status lines shown in the corner of the screen.
func (o *Overlay) SetStatus(lines []string) {
	o.status = lines
}

// Update toggles help visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) || inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	lineHeight := face.Height + 3

	y := lineHeight + 2
	for _, line := range o.status {
		text.Draw(screen, line, face, 6, y, color.White)
		y += lineHeight
	}

	if !o.showHelp {
		return
	}

	width := 0
	for _, line := range o.help {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	pad := 8
	panelW := width + 2*pad
	panelH := len(o.help)*lineHeight + 2*pad
	if o.panel == nil || o.panel.Bounds().Dx() != panelW || o.panel.Bounds().Dy() != panelH {
		o.panel = ebiten.NewImage(panelW, panelH)
	}
	o.panel.Fill(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	hy := pad + face.Ascent
	for _, line := range o.help {
		text.Draw(o.panel, line, face, pad, hy, color.White)
		hy += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op.GeoM.Translate(float64(sw-panelW)/2, float64(sh-panelH)/2)
	screen.DrawImage(o.panel, op)
}

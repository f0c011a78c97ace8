//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter blits cell values, colored through a lookup table, onto an
// ebiten screen at an integer scale factor.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w×h cell grid.
func NewGridPainter(w, h int) *GridPainter {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

// Blit colors the cells through the table and draws them scaled onto screen.
func (p *GridPainter) Blit(screen *ebiten.Image, cells []uint8, table []color.RGBA, scale int) {
	if len(cells) != p.w*p.h {
		return
	}
	FillTableRGBA(p.buf, cells, table)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}

package gradient

import "image/color"

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// NewRainbow returns a black-to-white gradient passing through the rainbow.
func NewRainbow() *Gradient {
	g := FromColors(rgba(0, 0, 0), rgba(255, 255, 255))
	g.AddColorAtT(0.45, rgba(131, 58, 180))
	g.AddColorAtT(0.50, rgba(243, 31, 42))
	g.AddColorAtT(0.55, rgba(253, 252, 29))
	g.AddColorAtT(0.60, rgba(29, 253, 49))
	g.AddColorAtT(0.85, rgba(29, 220, 253))
	g.AddColorAtT(0.95, rgba(30, 29, 253))
	return g
}

// NewPinkAndBlue returns a high-contrast pink/blue gradient.
func NewPinkAndBlue() *Gradient {
	g := FromColors(rgba(0, 0, 0), rgba(255, 255, 255))
	g.AddColorAtT(0.80, rgba(0, 20, 230))
	g.AddColorAtT(0.63, rgba(200, 0, 255))
	g.AddColorAtT(0.60, rgba(255, 0, 0))
	g.AddColorAtT(0.53, rgba(0, 255, 255))
	g.AddColorAtT(0.40, rgba(0, 0, 0))
	return g
}

// NewProtanopiaFriendly returns a gradient built from colors that remain
// distinguishable with protanopia.
func NewProtanopiaFriendly() *Gradient {
	g := FromColors(rgba(0, 0, 0), rgba(255, 255, 255))
	g.AddColorAtT(0.20, rgba(0, 0, 0))
	g.AddColorAtT(0.40, rgba(0, 0, 255))
	g.AddColorAtT(0.60, rgba(255, 255, 0))
	g.AddColorAtT(0.80, rgba(255, 0, 255))
	g.AddColorAtT(0.90, rgba(255, 255, 255))
	return g
}

// NewMagma returns a dark-purple-to-yellow heat gradient.
func NewMagma() *Gradient {
	g := FromColors(rgba(0, 0, 4), rgba(252, 253, 191))
	g.AddColorAtT(0.25, rgba(81, 18, 124))
	g.AddColorAtT(0.50, rgba(183, 55, 121))
	g.AddColorAtT(0.75, rgba(252, 137, 97))
	return g
}

// NewMonochrome returns a plain black-to-white ramp.
func NewMonochrome() *Gradient {
	return FromColors(rgba(0, 0, 0), rgba(255, 255, 255))
}

// Preset pairs a built-in gradient with its display name.
type Preset struct {
	Name     string
	Gradient *Gradient
}

// Presets returns the built-in gradients in cycling order.
func Presets() []Preset {
	return []Preset{
		{Name: "Rainbow", Gradient: NewRainbow()},
		{Name: "Pink and Blue", Gradient: NewPinkAndBlue()},
		{Name: "Protanopia Friendly", Gradient: NewProtanopiaFriendly()},
		{Name: "Magma", Gradient: NewMagma()},
		{Name: "Monochrome", Gradient: NewMonochrome()},
	}
}

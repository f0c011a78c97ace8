// Package lut loads fixed-size binary color lookup tables. A .lut file is
// exactly 768 bytes: three consecutive 256-byte channel blocks in red,
// green, blue order.
package lut

import (
	"image/color"

	"gopkg.in/errgo.v1"
)

// ChannelSize is the number of entries per color channel.
const ChannelSize = 256

// FileSize is the exact size of a .lut file in bytes.
const FileSize = 3 * ChannelSize

// ErrInvalidData is the cause of errors returned for malformed .lut files.
var ErrInvalidData = errgo.New("invalid lut data")

// Data is a named color lookup table with one 256-entry array per channel.
type Data struct {
	Name  string
	Red   [ChannelSize]uint8
	Green [ChannelSize]uint8
	Blue  [ChannelSize]uint8
}

// Parse decodes a .lut payload. Any payload that is not exactly 768 bytes
// is rejected with an ErrInvalidData cause.
func Parse(name string, buf []byte) (*Data, error) {
	if len(buf) != FileSize {
		return nil, errgo.WithCausef(nil, ErrInvalidData, "lut %q has %d bytes, want %d", name, len(buf), FileSize)
	}
	d := &Data{Name: name}
	copy(d.Red[:], buf[0:ChannelSize])
	copy(d.Green[:], buf[ChannelSize:2*ChannelSize])
	copy(d.Blue[:], buf[2*ChannelSize:FileSize])
	return d, nil
}

// Reverse reverses all three channel arrays in place. This is a content
// reversal (the table plays backwards), not a color inversion.
func (d *Data) Reverse() {
	for i, j := 0, ChannelSize-1; i < j; i, j = i+1, j-1 {
		d.Red[i], d.Red[j] = d.Red[j], d.Red[i]
		d.Green[i], d.Green[j] = d.Green[j], d.Green[i]
		d.Blue[i], d.Blue[j] = d.Blue[j], d.Blue[i]
	}
}

// At returns the color for a quantized input. Entries are fully opaque.
func (d *Data) At(i uint8) color.RGBA {
	return color.RGBA{R: d.Red[i], G: d.Green[i], B: d.Blue[i], A: 255}
}

// Table projects the data onto a 256-entry RGBA slice for pixel-fill loops,
// interchangeable with a gradient-built table.
func (d *Data) Table() []color.RGBA {
	out := make([]color.RGBA, ChannelSize)
	for i := range out {
		out[i] = d.At(uint8(i))
	}
	return out
}

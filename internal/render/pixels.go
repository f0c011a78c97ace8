package render

import "image/color"

// FillTableRGBA converts cell values into RGBA pixels using a 256-entry
// lookup table. When the table is shorter than 256 entries, out-of-range
// cells clamp to the last entry; an empty table clears the buffer to
// transparent black.
func FillTableRGBA(buf []byte, cells []uint8, table []color.RGBA) {
	if len(table) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(table) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := table[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

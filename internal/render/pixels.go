package render

import "image/color"

// Palette maps rockfall view cells (empty, settled, falling) to colors.
var Palette = []color.RGBA{
	{R: 0x10, G: 0x10, B: 0x14, A: 0xff},
	{R: 0xb0, G: 0xa8, B: 0x98, A: 0xff},
	{R: 0xe8, G: 0x6a, B: 0x3a, A: 0xff},
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

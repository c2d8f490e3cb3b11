package bootgraph

import "image/color"

// StdPal1Bit is the monochrome palette: zero is black, one is white.
var StdPal1Bit = []color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0xff, 0xff, 0xff, 0xff},
}

// StdPalMac1Bit is the Macintosh monochrome palette: zero is white, one is
// black, the reverse of [StdPal1Bit].
var StdPalMac1Bit = []color.RGBA{
	{0xff, 0xff, 0xff, 0xff},
	{0x00, 0x00, 0x00, 0xff},
}

// StdPalMac3Bit is an early Macintosh 3-bit color palette, indices arranged
// in RGB bit-field order with the most significant bit red and the least
// significant bit blue.
var StdPalMac3Bit = []color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0x00, 0x00, 0xff, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0xff, 0x00, 0xff, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0xff, 0xff, 0xff, 0xff},
}

// StdPalVGA4Bit is the 16-color VGA/Windows palette.
var StdPalVGA4Bit = []color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0x80, 0x00, 0x00, 0xff},
	{0x00, 0x80, 0x00, 0xff},
	{0x80, 0x80, 0x00, 0xff},
	{0x00, 0x00, 0x80, 0xff},
	{0x80, 0x00, 0x80, 0xff},
	{0x00, 0x80, 0x80, 0xff},
	{0x80, 0x80, 0x80, 0xff},
	{0xc0, 0xc0, 0xc0, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0x00, 0x00, 0xff, 0xff},
	{0xff, 0x00, 0xff, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0xff, 0xff, 0xff, 0xff},
}

// Palette is a color.Palette built from one of the standard tables above,
// for use as an ImageBuffer's ColorModel when BPP <= 4.
func Palette(entries []color.RGBA) color.Palette {
	pal := make(color.Palette, len(entries))
	for i, c := range entries {
		pal[i] = c
	}
	return pal
}

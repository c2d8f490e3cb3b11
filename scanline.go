package bootgraph

import "image"

// ScanlineFill64 fills len pixels starting at the current position with
// val, advancing one pixel to the right after each write. The final
// position is one pixel past the last one filled. Unclipped.
func (p *PixelIterator) ScanlineFill64(length int, val uint64) {
	for i := 0; i < length; i++ {
		p.WritePix64(val)
		p.IncX()
	}
}

// ScanlineFill8 is ScanlineFill64 truncated to an 8-bit value.
func (p *PixelIterator) ScanlineFill8(length int, val uint8) { p.ScanlineFill64(length, uint64(val)) }

// ScanlineFill16 is ScanlineFill64 truncated to a 16-bit value.
func (p *PixelIterator) ScanlineFill16(length int, val uint16) {
	p.ScanlineFill64(length, uint64(val))
}

// ScanlineFill32 is ScanlineFill64 truncated to a 32-bit value.
func (p *PixelIterator) ScanlineFill32(length int, val uint32) {
	p.ScanlineFill64(length, uint64(val))
}

// ScanlineRFill64 fills len pixels backwards from the current position
// with val: each iteration steps left one pixel first, then writes. The
// pixel at the starting position is never itself filled, but one more
// pixel to the left is filled than a naive reading might suggest; the
// final position is the last pixel filled. Unclipped.
func (p *PixelIterator) ScanlineRFill64(length int, val uint64) {
	for i := 0; i < length; i++ {
		p.DecX()
		p.WritePix64(val)
	}
}

// ScanlineRFill8 is ScanlineRFill64 truncated to an 8-bit value.
func (p *PixelIterator) ScanlineRFill8(length int, val uint8) {
	p.ScanlineRFill64(length, uint64(val))
}

// ScanlineRFill16 is ScanlineRFill64 truncated to a 16-bit value.
func (p *PixelIterator) ScanlineRFill16(length int, val uint16) {
	p.ScanlineRFill64(length, uint64(val))
}

// ScanlineRFill32 is ScanlineRFill64 truncated to a 32-bit value.
func (p *PixelIterator) ScanlineRFill32(length int, val uint32) {
	p.ScanlineRFill64(length, uint64(val))
}

// ScanlineArFill64 fills len pixels with val, stepping left after each
// write rather than before: the starting pixel is filled, and the final
// position is one pixel past the last one filled (to the left).
// Unclipped.
func (p *PixelIterator) ScanlineArFill64(length int, val uint64) {
	for i := 0; i < length; i++ {
		p.WritePix64(val)
		p.DecX()
	}
}

// ScanlineArFill8 is ScanlineArFill64 truncated to an 8-bit value.
func (p *PixelIterator) ScanlineArFill8(length int, val uint8) {
	p.ScanlineArFill64(length, uint64(val))
}

// ScanlineArFill16 is ScanlineArFill64 truncated to a 16-bit value.
func (p *PixelIterator) ScanlineArFill16(length int, val uint16) {
	p.ScanlineArFill64(length, uint64(val))
}

// ScanlineArFill32 is ScanlineArFill64 truncated to a 32-bit value.
func (p *PixelIterator) ScanlineArFill32(length int, val uint32) {
	p.ScanlineArFill64(length, uint64(val))
}

// Col is a position-independent foreground/background color context,
// generalizing the width-specific color contexts a pixel format needs
// (8/16/32/64-bit) into one entry point. Drawing helpers that only need to
// distinguish a foreground from a background color take a *Col rather than
// separate bg/fg parameters.
type Col struct {
	Pit *PixelIterator
	BG  uint64
	FG  uint64
}

// ClearImage fills the entire bound image with the context's background
// color.
func (c *Col) ClearImage() {
	pit := c.Pit
	width := pit.width
	height := pit.height

	pit.MoveTo(image.Pt(0, 0))
	for i := 0; i < height; i++ {
		pit.ScanlineFill64(width, c.BG)
		pit.NextScanln()
	}
}

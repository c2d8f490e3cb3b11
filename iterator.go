package bootgraph

import (
	"encoding/binary"
	"image"

	"github.com/tinycore/bootgraph/internal/assert"
	"github.com/tinycore/bootgraph/internal/bitio"
)

// PixelIterator is a cursor bound to one ImageBuffer, maintaining a small
// byte cache so pixel formats narrower than, equal to, or wider than a
// machine word can still be read and written with aligned accesses.
//
// A PixelIterator snapshots the buffer's width, height, bpp, and pitch at
// Bind time; if the underlying ImageBuffer's Header or Pitch subsequently
// changes, the iterator must be re-bound. Exactly one PixelIterator should
// be active on a given ImageBuffer at a time — the cache is not
// synchronized with direct buffer access or with any other iterator.
type PixelIterator struct {
	buf *ImageBuffer

	width, height int
	bpp           int
	pitch         int
	pitchBits     int

	cache [8]byte
	pos   image.Point

	// cblkAddr is the byte offset from the buffer base to the cached
	// block(s).
	cblkAddr int

	pitchCblks    int
	pitchPadCblks int
	pitchCbits    int
	pitchPadCbits int
	bppCblks      int
	bppCbits      int

	// bitAddr is the bit offset from the cached block to the current
	// pixel.
	bitAddr int

	cacheSz      int
	cacheSz8     int
	cacheBsz     int
	cacheBsz8    int
	cacheBszLog2 int

	uncached bool
	twoblk   bool
	valid0   bool
	dirty0   bool
	valid1   bool
	dirty1   bool
}

// Bind associates a PixelIterator with buf, sizing its pixel cache to
// 1<<cacheSzLog2 bytes (clamped to 8, the maximum). If twoblk is set, the
// cache is split into two independently managed halves so that pixels
// straddling the alignment boundary can still be read and written with
// aligned accesses; this roughly doubles the cache's effective bit-address
// span at the cost of needing one extra cache block of padding past the
// end of the image (see AllocPixels).
func Bind(buf *ImageBuffer, cacheSzLog2 uint8, twoblk bool) *PixelIterator {
	if cacheSzLog2 > 3 {
		cacheSzLog2 = 3
	}
	bpp := int(buf.BPP)

	p := &PixelIterator{
		buf:       buf,
		width:     int(buf.Width),
		height:    int(buf.Height),
		bpp:       bpp,
		pitch:     int(buf.Pitch),
		pitchBits: int(buf.PitchBits),
	}

	p.cacheSz = 1 << cacheSzLog2
	if twoblk {
		p.cacheBszLog2 = int(cacheSzLog2) - 1
	} else {
		p.cacheBszLog2 = int(cacheSzLog2)
	}
	p.cacheBsz = 1 << uint(p.cacheBszLog2)
	p.cacheSz8 = p.cacheSz << 3
	p.cacheBsz8 = p.cacheBsz << 3

	p.pitchCblks = p.pitch &^ (p.cacheBsz - 1)
	p.pitchCbits = ((p.pitch << 3) + p.pitchBits) & ((p.cacheBsz << 3) - 1)
	p.bppCblks = (bpp >> 3) &^ (p.cacheBsz - 1)
	p.bppCbits = bpp & ((p.cacheBsz << 3) - 1)

	rowPadBits := (p.pitch << 3) + p.pitchBits - bpp*p.width
	p.pitchPadCblks = (rowPadBits >> 3) &^ (p.cacheBsz - 1)
	p.pitchPadCbits = rowPadBits & ((p.cacheBsz << 3) - 1)

	// Uncached mode: 8-bit divisible, cache-block divisible bit depths
	// can be accessed directly without going through the cache.
	if bpp&7 == 0 && (bpp>>3)&(p.cacheBsz-1) == 0 {
		p.uncached = true
	}
	p.twoblk = twoblk

	return p
}

func hostByteOrderImpl() binary.ByteOrder {
	if hostOrder == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func cacheWindow() bitio.CacheWindow {
	return bitio.CacheWindow{Order: hostByteOrderImpl()}
}

// Flush writes back dirty cache blocks to the backing buffer. blk selects
// which blocks: 1 for block 0, 2 for block 1 (ignored outside two-block
// mode), 3 for both.
func (p *PixelIterator) Flush(blk int) {
	if p.uncached {
		return
	}
	cbsz := p.cacheBsz
	if blk&1 != 0 && p.dirty0 {
		copy(p.buf.Data[p.cblkAddr:p.cblkAddr+cbsz], p.cache[:cbsz])
		p.dirty0 = false
	}
	if p.twoblk && blk&2 != 0 && p.dirty1 {
		copy(p.buf.Data[p.cblkAddr+cbsz:p.cblkAddr+2*cbsz], p.cache[cbsz:2*cbsz])
		p.dirty1 = false
	}
}

// FlushAll writes back both cache blocks.
func (p *PixelIterator) FlushAll() { p.Flush(3) }

// Cload loads cache blocks from the backing buffer in preparation for
// reading or writing, skipping blocks already marked valid. blk selects
// blocks as in Flush.
func (p *PixelIterator) Cload(blk int) {
	if p.uncached {
		return
	}
	cbsz := p.cacheBsz
	if blk&1 != 0 && !p.valid0 {
		copy(p.cache[:cbsz], p.buf.Data[p.cblkAddr:p.cblkAddr+cbsz])
		p.dirty0 = false
		p.valid0 = true
	}
	if p.twoblk && blk&2 != 0 && !p.valid1 {
		copy(p.cache[cbsz:2*cbsz], p.buf.Data[p.cblkAddr+cbsz:p.cblkAddr+2*cbsz])
		p.dirty1 = false
		p.valid1 = true
	}
}

// CloadAll loads both cache blocks.
func (p *PixelIterator) CloadAll() { p.Cload(3) }

func (p *PixelIterator) twoblkInc(cblkInc int) {
	if !p.twoblk {
		return
	}
	cbsz := p.cacheBsz
	p.Flush(1)
	p.cblkAddr += cblkInc
	copy(p.cache[:cbsz], p.cache[cbsz:2*cbsz])
	p.valid0 = p.valid1
	p.dirty0 = p.dirty1
	p.valid1 = false
	p.dirty1 = false
}

func (p *PixelIterator) twoblkDec(cblkDec int) {
	if !p.twoblk {
		return
	}
	cbsz := p.cacheBsz
	p.Flush(2)
	p.cblkAddr -= cblkDec
	copy(p.cache[cbsz:2*cbsz], p.cache[:cbsz])
	p.valid1 = p.valid0
	p.dirty1 = p.dirty0
	p.valid0 = false
	p.dirty0 = false
}

func (p *PixelIterator) cblkInc(n int) {
	if p.twoblk {
		p.twoblkInc(n)
		return
	}
	p.Flush(1)
	p.valid0 = false
	p.cblkAddr += n
}

func (p *PixelIterator) cblkDec(n int) {
	if p.twoblk {
		p.twoblkDec(n)
		return
	}
	p.Flush(1)
	p.valid0 = false
	p.cblkAddr -= n
}

// MoveTo repositions the iterator to pt. Unclipped: pt must lie within the
// image, or the resulting address is undefined behaviour.
func (p *PixelIterator) MoveTo(pt image.Point) {
	assert.That(pt.X >= 0 && pt.X < p.width && pt.Y >= 0 && pt.Y < p.height,
		"MoveTo(%v) out of bounds for %dx%d image", pt, p.width, p.height)
	p.FlushAll()
	p.valid0 = false
	p.valid1 = false
	p.pos = pt

	if p.uncached {
		p.cblkAddr = pt.Y*p.pitchCblks + pt.X*p.bppCblks
		return
	}

	cblkOffset := pt.Y*p.pitchCblks + pt.X*p.bppCblks
	bitOffset := pt.X * p.bppCbits
	if p.pitchCbits > 0 {
		bitOffset += pt.Y * p.pitchCbits
	}
	cacheBsz8Log2 := 3 + p.cacheBszLog2
	cblkOffset += (bitOffset >> 3) &^ (p.cacheBsz - 1)
	bitOffset &= (1 << uint(cacheBsz8Log2)) - 1

	p.cblkAddr = cblkOffset
	p.bitAddr = bitOffset
}

// MoveToCl repositions the iterator to pt if pt lies within the bound
// image, the clipped counterpart to MoveTo.
func (p *PixelIterator) MoveToCl(pt image.Point) {
	if pt.X < 0 || pt.Y < 0 || pt.X >= p.width || pt.Y >= p.height {
		return
	}
	p.MoveTo(pt)
}

// NextScanln advances to the start of the next scanline. Unclipped: calling
// this at the last scanline is undefined behaviour.
func (p *PixelIterator) NextScanln() {
	p.pos.X = 0
	p.pos.Y++

	if p.uncached {
		p.cblkAddr += p.pitchPadCblks
		return
	}

	p.FlushAll()
	p.valid0 = false
	p.valid1 = false

	bitOffset := p.bitAddr + p.pitchPadCbits
	p.cblkAddr += p.pitchPadCblks
	if bitOffset >= p.cacheBsz8 {
		p.cblkAddr += p.cacheBsz
		bitOffset -= p.cacheBsz8
	}
	p.bitAddr = bitOffset
}

// NextScanlnCl advances to the start of the next scanline only if the
// iterator is at the end of the current one and a next scanline exists.
func (p *PixelIterator) NextScanlnCl() {
	if p.pos.X != p.width-1 || p.pos.Y == p.height-1 {
		return
	}
	p.NextScanln()
}

// PrevScanln retreats to the end of the previous scanline. Unclipped.
func (p *PixelIterator) PrevScanln() {
	p.pos.X = p.width - 1
	p.pos.Y--

	if p.uncached {
		p.cblkAddr -= p.pitchPadCblks
		return
	}

	p.FlushAll()
	p.valid0 = false
	p.valid1 = false

	bitOffset := p.bitAddr - p.pitchPadCbits
	p.cblkAddr -= p.pitchPadCblks
	if bitOffset < 0 {
		p.cblkAddr -= p.cacheBsz
		bitOffset += p.cacheBsz8
	}
	p.bitAddr = bitOffset
}

// PrevScanlnCl retreats to the end of the previous scanline only if the
// iterator is at the start of the current one and a previous scanline
// exists.
func (p *PixelIterator) PrevScanlnCl() {
	if p.pos.X != 0 || p.pos.Y == 0 {
		return
	}
	p.PrevScanln()
}

// IncX moves right by one pixel. Unclipped.
func (p *PixelIterator) IncX() {
	p.pos.X++

	if p.uncached {
		p.cblkAddr += p.bppCblks
		return
	}

	bitOffset := p.bitAddr + p.bpp
	if bitOffset >= p.cacheBsz8 {
		bitOffset -= p.cacheBsz8
		p.cblkInc(p.cacheBsz)
	}
	p.bitAddr = bitOffset
}

// IncXCl moves right by one pixel if not already at the right edge.
func (p *PixelIterator) IncXCl() {
	if p.pos.X == p.width-1 {
		return
	}
	p.IncX()
}

// DecX moves left by one pixel. Unclipped.
func (p *PixelIterator) DecX() {
	p.pos.X--

	if p.uncached {
		p.cblkAddr -= p.bppCblks
		return
	}

	bitOffset := p.bitAddr - p.bpp
	if bitOffset < 0 {
		bitOffset += p.cacheBsz8
		p.cblkDec(p.cacheBsz)
	}
	p.bitAddr = bitOffset
}

// DecXCl moves left by one pixel if not already at the left edge.
func (p *PixelIterator) DecXCl() {
	if p.pos.X == 0 {
		return
	}
	p.DecX()
}

// IncY moves down by one pixel. Unclipped.
func (p *PixelIterator) IncY() {
	p.pos.Y++

	if p.uncached {
		p.cblkAddr += p.pitchCblks
		return
	}

	p.FlushAll()
	p.valid0 = false
	p.valid1 = false
	p.cblkAddr += p.pitchCblks
	if p.pitchCbits > 0 {
		bitOffset := p.bitAddr + p.pitchCbits
		if bitOffset >= p.cacheBsz8 {
			p.cblkAddr += p.cacheBsz
			bitOffset -= p.cacheBsz8
		}
		p.bitAddr = bitOffset
	}
}

// IncYCl moves down by one pixel if not already at the bottom edge.
func (p *PixelIterator) IncYCl() {
	if p.pos.Y == p.height-1 {
		return
	}
	p.IncY()
}

// DecY moves up by one pixel. Unclipped.
func (p *PixelIterator) DecY() {
	p.pos.Y--

	if p.uncached {
		p.cblkAddr -= p.pitchCblks
		return
	}

	p.FlushAll()
	p.valid0 = false
	p.valid1 = false
	p.cblkAddr -= p.pitchCblks
	if p.pitchCbits > 0 {
		bitOffset := p.bitAddr - p.pitchCbits
		if bitOffset < 0 {
			p.cblkAddr -= p.cacheBsz
			bitOffset += p.cacheBsz8
		}
		p.bitAddr = bitOffset
	}
}

// DecYCl moves up by one pixel if not already at the top edge.
func (p *PixelIterator) DecYCl() {
	if p.pos.Y == 0 {
		return
	}
	p.DecY()
}

// Pos returns the iterator's current pixel coordinate.
func (p *PixelIterator) Pos() image.Point { return p.pos }

// ReadSlice64 reads a bit-width-wide slice starting at the current pixel,
// up to 64 bits. Most callers want ReadPix64 instead, which reads exactly
// one pixel.
func (p *PixelIterator) ReadSlice64(bitWidth uint8) uint64 {
	assert.That(bitWidth <= 64, "bit_width %d exceeds 64", bitWidth)
	cw := cacheWindow()

	if p.uncached {
		v := cw.Load(p.buf.Data[p.cblkAddr:], int(bitWidth)>>3)
		return v & bitio.Mask(bitWidth)
	}

	p.CloadAll()

	cacheBitOfs := p.bitAddr
	if hostOrder == BigEndian {
		cacheBitOfs = p.cacheSz8 - cacheBitOfs - int(bitWidth)
	}
	return cw.Extract(p.cache[:p.cacheSz], p.cacheSz, cacheBitOfs, bitWidth)
}

// ReadPix64 reads the color value of the current pixel, up to 64 bits.
func (p *PixelIterator) ReadPix64() uint64 { return p.ReadSlice64(uint8(p.bpp)) }

// ReadPix8 reads the current pixel truncated to 8 bits.
func (p *PixelIterator) ReadPix8() uint8 { return uint8(p.ReadPix64()) }

// ReadPix16 reads the current pixel truncated to 16 bits.
func (p *PixelIterator) ReadPix16() uint16 { return uint16(p.ReadPix64()) }

// ReadPix32 reads the current pixel truncated to 32 bits.
func (p *PixelIterator) ReadPix32() uint32 { return uint32(p.ReadPix64()) }

// ReadPixel is a convenience alias for ReadPix64.
func (p *PixelIterator) ReadPixel() uint64 { return p.ReadPix64() }

// WriteSlice64 writes a bit-width-wide slice starting at the current
// pixel, up to 64 bits. Most callers want WritePix64 instead.
func (p *PixelIterator) WriteSlice64(val uint64, bitWidth uint8) {
	assert.That(bitWidth <= 64, "bit_width %d exceeds 64", bitWidth)
	cw := cacheWindow()
	val &= bitio.Mask(bitWidth)

	if p.uncached {
		cw.Store(p.buf.Data[p.cblkAddr:], int(bitWidth)>>3, val)
		return
	}

	p.CloadAll()

	cacheBitOfs := p.bitAddr
	if hostOrder == BigEndian {
		cacheBitOfs = p.cacheSz8 - cacheBitOfs - int(bitWidth)
	}
	cw.Insert(p.cache[:p.cacheSz], p.cacheSz, cacheBitOfs, bitWidth, val)

	p.dirty0 = true
	p.dirty1 = true
}

// WritePix64 writes the color value of the current pixel, up to 64 bits.
func (p *PixelIterator) WritePix64(val uint64) { p.WriteSlice64(val, uint8(p.bpp)) }

// WritePix8 writes an 8-bit color value to the current pixel.
func (p *PixelIterator) WritePix8(val uint8) { p.WritePix64(uint64(val)) }

// WritePix16 writes a 16-bit color value to the current pixel.
func (p *PixelIterator) WritePix16(val uint16) { p.WritePix64(uint64(val)) }

// WritePix32 writes a 32-bit color value to the current pixel.
func (p *PixelIterator) WritePix32(val uint32) { p.WritePix64(uint64(val)) }

// WritePixel is a convenience alias for WritePix64.
func (p *PixelIterator) WritePixel(val uint64) { p.WritePix64(val) }

// GetPix64 moves to pt and reads its color value. Provided for ease of
// programming; prefer MoveTo+ReadPix64 or a scanline primitive in hot
// loops, since this always pays the cost of a full reposition.
func (p *PixelIterator) GetPix64(pt image.Point) uint64 {
	p.MoveTo(pt)
	return p.ReadPix64()
}

// GetPix is a convenience alias for GetPix64.
func (p *PixelIterator) GetPix(pt image.Point) uint64 { return p.GetPix64(pt) }

// GetPix8 moves to pt and reads its value truncated to 8 bits.
func (p *PixelIterator) GetPix8(pt image.Point) uint8 { return uint8(p.GetPix64(pt)) }

// GetPix16 moves to pt and reads its value truncated to 16 bits.
func (p *PixelIterator) GetPix16(pt image.Point) uint16 { return uint16(p.GetPix64(pt)) }

// GetPix32 moves to pt and reads its value truncated to 32 bits.
func (p *PixelIterator) GetPix32(pt image.Point) uint32 { return uint32(p.GetPix64(pt)) }

// PutPix64 moves to pt and writes val. Provided for ease of programming;
// see the note on GetPix64.
func (p *PixelIterator) PutPix64(pt image.Point, val uint64) {
	p.MoveTo(pt)
	p.WritePix64(val)
}

// PutPix8 moves to pt and writes an 8-bit value.
func (p *PixelIterator) PutPix8(pt image.Point, val uint8) { p.PutPix64(pt, uint64(val)) }

// PutPix16 moves to pt and writes a 16-bit value.
func (p *PixelIterator) PutPix16(pt image.Point, val uint16) { p.PutPix64(pt, uint64(val)) }

// PutPix32 moves to pt and writes a 32-bit value.
func (p *PixelIterator) PutPix32(pt image.Point, val uint32) { p.PutPix64(pt, uint64(val)) }

package bootgraph

import (
	"fmt"
	"image"
	"image/color"
)

// Orientation describes which corner of the pixel data is the first pixel,
// packed into the high nibble of a TGA-subset image descriptor byte: bit 4
// is left/right, bit 5 is top/bottom.
type Orientation uint8

const (
	BottomLeft  Orientation = 0x00
	BottomRight Orientation = 0x10
	TopLeft     Orientation = 0x20
	TopRight    Orientation = 0x30
)

func (o Orientation) String() string {
	switch o & 0x30 {
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	default:
		return "unknown"
	}
}

// Header is the fixed descriptor carried at the front of an image: width
// and height in pixels, bits per pixel, and orientation. It is also the
// wire layout of the TGA-subset format read and written by ReadHeader and
// WriteHeader.
type Header struct {
	Width       uint16
	Height      uint16
	BPP         uint8
	Orientation Orientation
}

// ErrZeroDimension is returned when a Header names a zero width or height.
var ErrZeroDimension = fmt.Errorf("bootgraph: width and height must be nonzero")

// ErrBPPTooWide is returned when a Header names zero bits per pixel, or
// more bits per pixel than a pixel iterator can address in one slice.
var ErrBPPTooWide = fmt.Errorf("bootgraph: bpp must be between 1 and 64")

func (h Header) validate() error {
	if h.Width == 0 || h.Height == 0 {
		return ErrZeroDimension
	}
	if h.BPP == 0 || h.BPP > 64 {
		return ErrBPPTooWide
	}
	return nil
}

// AlignPitch returns width rounded up to the next multiple of align, which
// must be a power of two no greater than 128.
func AlignPitch(width uint16, align uint8) uint16 {
	padding := (align - uint8(width)) & (align - 1)
	return width + uint16(padding)
}

// ImageBuffer is a runtime image: a byte slice plus the descriptor needed
// to interpret it. Pitch is the size in bytes of one scanline; PitchBits
// is the additional size in bits of a scanline that is not byte-aligned.
// A buffer must carry one whole cache block of padding after its last
// scanline (see Bind's cacheSzLog2 parameter) so that a two-block
// iterator positioned at the last pixel of the image may still load its
// second block without reading out of bounds.
type ImageBuffer struct {
	Data      []byte
	Pitch     uint16
	PitchBits uint8
	Header
}

// AllocPixels allocates a backing buffer for an image with the given
// header, aligning each scanline's pitch to align bytes (0 or 1 means no
// padding beyond the pixel data itself) and reserving one extra cache
// block of tail padding sized 1<<cacheSzLog2 bytes, per the two-block
// iterator's requirement that it may load one block past the last pixel.
func AllocPixels(hdr Header, align uint8, cacheSzLog2 uint8) (*ImageBuffer, error) {
	if err := hdr.validate(); err != nil {
		return nil, err
	}
	bitsPerRow := uint32(hdr.BPP) * uint32(hdr.Width)
	pitch := uint16((bitsPerRow + 7) / 8)
	pitchBits := uint8(0)
	if align > 1 {
		pitch = AlignPitch(pitch, align)
	}

	if cacheSzLog2 > 3 {
		cacheSzLog2 = 3
	}
	cacheBsz := 1 << cacheSzLog2

	size := int(pitch)*int(hdr.Height) + cacheBsz
	data := make([]byte, size)

	return &ImageBuffer{
		Data:      data,
		Pitch:     pitch,
		PitchBits: pitchBits,
		Header:    hdr,
	}, nil
}

// Release discards the buffer's backing array. The ImageBuffer must not
// be used, and no PixelIterator may remain bound to it, after Release is
// called.
func (b *ImageBuffer) Release() {
	b.Data = nil
}

// ColorModel implements image.Image.
func (b *ImageBuffer) ColorModel() color.Model {
	switch {
	case b.BPP <= 1:
		return Palette(StdPal1Bit)
	case b.BPP <= 3:
		return Palette(StdPalMac3Bit)
	case b.BPP <= 4:
		return Palette(StdPalVGA4Bit)
	case b.BPP == 8:
		return color.GrayModel
	case b.BPP == 16:
		return color.RGBAModel
	case b.BPP == 24, b.BPP == 32:
		return color.RGBAModel
	default:
		return color.RGBAModel
	}
}

// Bounds implements image.Image. Coordinates follow storage order: (0, 0)
// is the first stored pixel whatever the buffer's declared Orientation.
// ReadHeader and LoadImage do not reorder pixel data, so for an
// Orientation other than TopLeft the image is presented mirrored or
// flipped relative to its declared corner.
func (b *ImageBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(b.Width), int(b.Height))
}

// At implements image.Image using a throwaway PixelIterator. It is
// provided for interop with the stdlib image package (image/png,
// image/draw) and is not the fast path for bulk pixel access; use a bound
// PixelIterator directly for that.
func (b *ImageBuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= int(b.Width) || y >= int(b.Height) {
		return color.RGBA{}
	}
	pit := Bind(b, 0, false)
	v := pit.GetPix(image.Pt(x, y))
	switch m := b.ColorModel().(type) {
	case color.Palette:
		if int(v) < len(m) {
			return m[v]
		}
		return color.RGBA{}
	default:
		return grayOrRGBAFromSlice(v, b.BPP)
	}
}

func grayOrRGBAFromSlice(v uint64, bpp uint8) color.Color {
	switch bpp {
	case 8:
		return color.Gray{Y: uint8(v)}
	case 16:
		return color.RGBA{
			R: uint8((v >> 11) << 3),
			G: uint8((v >> 5) << 2),
			B: uint8(v << 3),
			A: 0xff,
		}
	case 24:
		return color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xff,
		}
	case 32:
		return color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: uint8(v >> 24),
		}
	default:
		return color.Gray{Y: uint8(v)}
	}
}

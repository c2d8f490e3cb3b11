package bootgraph

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// headerSize is the wire size in bytes of the TGA-subset header: width
// (u16), height (u16), bpp (u8), image descriptor (u8).
const headerSize = 6

// ErrShortHeader is returned by ReadHeader when fewer than headerSize
// bytes are available.
var ErrShortHeader = errors.New("bootgraph: short TGA-subset header")

// ErrShortPixelData is returned by LoadImage when the stream ends before
// a complete image's worth of pixel data has been read.
var ErrShortPixelData = errors.New("bootgraph: truncated TGA-subset pixel data")

// ReadHeader reads a TGA-subset header: this is a compatible subset of a
// full Truevision TGA header carrying only width, height, bits per pixel,
// and the orientation bits of the image descriptor byte — no color-map
// section, no extension area, no run-length encoding.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, errors.Wrap(ErrShortHeader, err.Error())
		}
		return Header{}, errors.Wrap(err, "bootgraph: reading TGA-subset header")
	}

	h := Header{
		Width:       binary.LittleEndian.Uint16(buf[0:2]),
		Height:      binary.LittleEndian.Uint16(buf[2:4]),
		BPP:         buf[4],
		Orientation: Orientation(buf[5] & 0x30),
	}
	if err := h.validate(); err != nil {
		return Header{}, errors.Wrap(err, "bootgraph: invalid TGA-subset header")
	}
	return h, nil
}

// WriteHeader writes h in the TGA-subset wire format.
func WriteHeader(w io.Writer, h Header) error {
	var buf [headerSize]byte
	binary.LittleEndian.PutUint16(buf[0:2], h.Width)
	binary.LittleEndian.PutUint16(buf[2:4], h.Height)
	buf[4] = h.BPP
	buf[5] = byte(h.Orientation) & 0x30
	if _, err := w.Write(buf[:]); err != nil {
		return errors.Wrap(err, "bootgraph: writing TGA-subset header")
	}
	return nil
}

// LoadImage reads a TGA-subset header followed by tightly packed pixel
// data (no scanline padding, no color map, no RLE) and returns the
// resulting buffer, allocated with one cache block of tail padding sized
// 1<<cacheSzLog2 bytes for use with a two-block PixelIterator.
func LoadImage(r io.Reader, cacheSzLog2 uint8) (*ImageBuffer, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	buf, err := AllocPixels(hdr, 0, cacheSzLog2)
	if err != nil {
		return nil, errors.Wrap(err, "bootgraph: allocating image for TGA-subset load")
	}

	pixelBytes := int(buf.Pitch) * int(hdr.Height)
	if _, err := io.ReadFull(r, buf.Data[:pixelBytes]); err != nil {
		buf.Release()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrap(ErrShortPixelData, err.Error())
		}
		return nil, errors.Wrap(err, "bootgraph: reading TGA-subset pixel data")
	}

	return buf, nil
}

// SaveImage writes buf as a TGA-subset header followed by its tightly
// packed pixel data.
func SaveImage(w io.Writer, buf *ImageBuffer) error {
	if err := WriteHeader(w, buf.Header); err != nil {
		return err
	}
	pixelBytes := int(buf.Pitch) * int(buf.Height)
	if _, err := w.Write(buf.Data[:pixelBytes]); err != nil {
		return errors.Wrap(err, "bootgraph: writing TGA-subset pixel data")
	}
	return nil
}

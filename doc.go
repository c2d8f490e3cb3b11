// Package bootgraph implements a pixel-accurate 2-D framebuffer engine for
// boot-time and other pre-windowing-system graphics: random-access pixel
// reads and writes, scanline fills, and Bresenham line/triangle
// rasterization over images whose pixel format may be narrower than, equal
// to, or wider than a machine word, and whose scanlines may be packed to
// arbitrary bit boundaries.
//
// The core type is [PixelIterator], a cursor bound to one [ImageBuffer] that
// maintains a small one- or two-block byte cache so that sub-byte and
// cross-word pixel formats can still be read and written with aligned
// memory accesses. Scanline fills and the rasterizers in this package all
// drive a PixelIterator rather than touching image bytes directly.
//
// The package supports:
//   - 1 to 64 bits per pixel, any scanline pitch and padding
//   - Host-endian-aware bit and byte swapping for cross-endian image data
//   - Forward, reverse, and alternate-reverse scanline fills
//   - Bresenham major-Y line drawing and zig-zag-scanned triangle fills
//   - The fixed 1/3/4-bit standard palettes used by early bitmap formats
//
// Basic usage:
//
//	buf, _ := bootgraph.AllocPixels(bootgraph.Header{Width: 8, Height: 8, BPP: 1}, 0, 0)
//	pit := bootgraph.Bind(buf, 0, false)
//	pit.WritePixel(1)
//	pit.FlushAll()
//
// There is no file I/O, network I/O, or scheduling in the core; callers
// supply buffers and the host byte order. A companion TGA-subset codec
// ([ReadHeader], [LoadImage], [SaveImage]) and a small CLI
// (cmd/bootgraph-demo) sit at the edges for exercising the core end to end.
package bootgraph

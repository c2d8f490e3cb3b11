package bootgraph

import (
	"image"
	"testing"
)

func allocBound(t *testing.T, hdr Header, cacheSzLog2 uint8, twoblk bool) (*ImageBuffer, *PixelIterator) {
	t.Helper()
	buf, err := AllocPixels(hdr, 0, cacheSzLog2)
	if err != nil {
		t.Fatalf("AllocPixels: %v", err)
	}
	t.Cleanup(buf.Release)
	return buf, Bind(buf, cacheSzLog2, twoblk)
}

func TestPixelIteratorReadWriteRoundTrip8bpp(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 8, Height: 8, BPP: 8}, 1, true)
	pit.MoveTo(image.Pt(3, 4))
	pit.WritePix64(0xab)
	pit.FlushAll()

	pit.MoveTo(image.Pt(3, 4))
	if got := pit.ReadPix64(); got != 0xab {
		t.Errorf("ReadPix64() = %#x, want 0xab", got)
	}
}

func TestPixelIteratorReadWriteRoundTrip1bpp(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 16, Height: 4, BPP: 1}, 1, true)

	pit.MoveTo(image.Pt(0, 0))
	for x := 0; x < 16; x++ {
		pit.WritePixel(uint64(x % 2))
		pit.IncXCl()
	}
	pit.FlushAll()

	pit.MoveTo(image.Pt(0, 0))
	for x := 0; x < 16; x++ {
		want := uint64(x % 2)
		if got := pit.ReadPixel(); got != want {
			t.Fatalf("pixel (%d,0) = %d, want %d", x, got, want)
		}
		pit.IncXCl()
	}
}

func TestPixelIteratorReadWriteRoundTrip3bpp(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 8, Height: 2, BPP: 3}, 1, true)

	pit.MoveTo(image.Pt(0, 0))
	vals := []uint64{0, 1, 2, 3, 4, 5, 6, 7}
	for _, v := range vals {
		pit.WritePixel(v)
		pit.IncXCl()
	}
	pit.FlushAll()

	pit.MoveTo(image.Pt(0, 0))
	for _, want := range vals {
		if got := pit.ReadPixel(); got != want {
			t.Fatalf("pixel mismatch: got %d, want %d", got, want)
		}
		pit.IncXCl()
	}
}

func TestPixelIteratorUncachedFastPath(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 4, Height: 4, BPP: 16}, 1, false)
	if !pit.uncached {
		t.Fatal("16bpp with 2-byte cache block should select the uncached fast path")
	}
}

func TestPixelIteratorCachedPath(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 4, Height: 4, BPP: 3}, 1, true)
	if pit.uncached {
		t.Fatal("3bpp should not select the uncached fast path")
	}
}

func TestNextScanlnResetsX(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 4, Height: 4, BPP: 8}, 1, true)
	pit.MoveTo(image.Pt(3, 0))
	pit.NextScanln()
	if pit.Pos() != (image.Point{X: 0, Y: 1}) {
		t.Errorf("Pos() = %v, want (0,1)", pit.Pos())
	}
}

func TestNextScanlnClStopsAtLastRow(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 2, Height: 2, BPP: 8}, 1, true)
	pit.MoveTo(image.Pt(1, 1))
	pit.NextScanlnCl()
	if pit.Pos() != (image.Point{X: 1, Y: 1}) {
		t.Errorf("NextScanlnCl at last row moved: Pos() = %v, want (1,1)", pit.Pos())
	}
}

func TestPrevScanlnClStopsAtFirstRow(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 2, Height: 2, BPP: 8}, 1, true)
	pit.MoveTo(image.Pt(0, 0))
	pit.PrevScanlnCl()
	if pit.Pos() != (image.Point{X: 0, Y: 0}) {
		t.Errorf("PrevScanlnCl at first row moved: Pos() = %v, want (0,0)", pit.Pos())
	}
}

func TestScanlnForwardBackwardSymmetric(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 4, Height: 4, BPP: 3}, 1, true)
	pit.MoveTo(image.Pt(3, 1))
	pit.NextScanln()
	pit.PrevScanln()
	if pit.Pos() != (image.Point{X: 3, Y: 1}) {
		t.Errorf("NextScanln then PrevScanln: Pos() = %v, want (3,1)", pit.Pos())
	}
}

func TestIncXDecXSymmetric(t *testing.T) {
	for _, bpp := range []uint8{1, 3, 4, 8, 16} {
		_, pit := allocBound(t, Header{Width: 8, Height: 2, BPP: bpp}, 1, true)
		pit.MoveTo(image.Pt(4, 0))
		pit.IncX()
		pit.DecX()
		if pit.Pos() != (image.Point{X: 4, Y: 0}) {
			t.Errorf("bpp=%d: IncX then DecX: Pos() = %v, want (4,0)", bpp, pit.Pos())
		}
	}
}

func TestGetPixPutPixRoundTrip(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 10, Height: 10, BPP: 16}, 1, true)
	pit.PutPix16(image.Pt(5, 5), 0x1234)
	if got := pit.GetPix16(image.Pt(5, 5)); got != 0x1234 {
		t.Errorf("GetPix16(5,5) = %#x, want 0x1234", got)
	}
}

func TestWriteSlice64MasksToBitWidth(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 4, Height: 4, BPP: 4}, 1, true)
	pit.MoveTo(image.Pt(0, 0))
	pit.WriteSlice64(0xff, 4)
	if got := pit.ReadSlice64(4); got != 0x0f {
		t.Errorf("ReadSlice64(4) = %#x, want 0xf (value should be masked to bit width on write)", got)
	}
}

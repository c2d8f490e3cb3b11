package bootgraph

import (
	"image"
	"testing"
)

func TestScanlineFill64(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 8, Height: 1, BPP: 8}, 1, true)
	pit.MoveTo(image.Pt(0, 0))
	pit.ScanlineFill64(5, 0x42)
	end := pit.Pos()
	pit.FlushAll()

	pit.MoveTo(image.Pt(0, 0))
	for x := 0; x < 5; x++ {
		if got := pit.GetPix64(image.Pt(x, 0)); got != 0x42 {
			t.Errorf("pixel %d = %#x, want 0x42", x, got)
		}
	}
	for x := 5; x < 8; x++ {
		if got := pit.GetPix64(image.Pt(x, 0)); got != 0 {
			t.Errorf("pixel %d = %#x, want 0 (untouched)", x, got)
		}
	}
	if end != (image.Point{X: 5, Y: 0}) {
		t.Errorf("final Pos() = %v, want (5,0)", end)
	}
}

func TestScanlineRFill64(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 8, Height: 1, BPP: 8}, 1, true)
	pit.MoveTo(image.Pt(5, 0))
	pit.ScanlineRFill64(3, 0x7)
	end := pit.Pos()
	pit.FlushAll()

	for _, x := range []int{2, 3, 4} {
		if got := pit.GetPix64(image.Pt(x, 0)); got != 0x7 {
			t.Errorf("pixel %d = %#x, want 0x7", x, got)
		}
	}
	if got := pit.GetPix64(image.Pt(5, 0)); got != 0 {
		t.Errorf("starting pixel 5 = %#x, want 0 (not itself filled)", got)
	}
	if end != (image.Point{X: 2, Y: 0}) {
		t.Errorf("final Pos() = %v, want (2,0)", end)
	}
}

func TestScanlineArFill64(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 8, Height: 1, BPP: 8}, 1, true)
	pit.MoveTo(image.Pt(5, 0))
	pit.ScanlineArFill64(3, 0x9)
	end := pit.Pos()
	pit.FlushAll()

	for _, x := range []int{3, 4, 5} {
		if got := pit.GetPix64(image.Pt(x, 0)); got != 0x9 {
			t.Errorf("pixel %d = %#x, want 0x9", x, got)
		}
	}
	if end != (image.Point{X: 2, Y: 0}) {
		t.Errorf("final Pos() = %v, want (2,0)", end)
	}
}

func TestColClearImage(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 4, Height: 4, BPP: 8}, 1, true)
	col := &Col{Pit: pit, BG: 0x11, FG: 0xee}
	col.ClearImage()
	pit.FlushAll()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := pit.GetPix64(image.Pt(x, y)); got != 0x11 {
				t.Fatalf("pixel (%d,%d) = %#x, want 0x11", x, y, got)
			}
		}
	}
}

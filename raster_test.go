package bootgraph

import (
	"image"
	"testing"
)

func TestSignAndAbsInt(t *testing.T) {
	if sign(5) != 1 || sign(-5) != -1 || sign(0) != 0 {
		t.Fatal("sign() returned unexpected value")
	}
	if absInt(-7) != 7 || absInt(7) != 7 || absInt(0) != 0 {
		t.Fatal("absInt() returned unexpected value")
	}
}

func TestLineIteratorReachesEndpoint(t *testing.T) {
	lit := NewLineIterator(image.Pt(0, 0), image.Pt(3, 5))
	for lit.Step() {
	}
	if lit.Cur() != (image.Point{X: 3, Y: 5}) {
		t.Fatalf("LineIterator ended at %v, want (3,5)", lit.Cur())
	}
}

func TestLineIteratorDegenerateVertical(t *testing.T) {
	lit := NewLineIterator(image.Pt(2, 2), image.Pt(2, 2))
	if lit.Step() {
		t.Fatal("Step() on a zero-length line should immediately report done")
	}
}

func TestLineToHorizontal(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 10, Height: 4, BPP: 8}, 1, true)
	pit.MoveTo(image.Pt(0, 1))
	pit.LineTo(image.Pt(5, 1), 0x55)
	pit.FlushAll()

	for x := 0; x < 5; x++ {
		if got := pit.GetPix64(image.Pt(x, 1)); got != 0x55 {
			t.Errorf("pixel (%d,1) = %#x, want 0x55", x, got)
		}
	}
}

func TestLineToVertical(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 4, Height: 10, BPP: 8}, 1, true)
	pit.MoveTo(image.Pt(2, 0))
	pit.LineTo(image.Pt(2, 5), 0x33)
	pit.FlushAll()

	for y := 0; y < 5; y++ {
		if got := pit.GetPix64(image.Pt(2, y)); got != 0x33 {
			t.Errorf("pixel (2,%d) = %#x, want 0x33", y, got)
		}
	}
}

func TestTriFillStaysWithinBounds(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 16, Height: 16, BPP: 8}, 1, true)
	pit.TriFill(image.Pt(8, 0), image.Pt(0, 15), image.Pt(15, 15), 0xff)
	pit.FlushAll()

	if got := pit.GetPix64(image.Pt(8, 0)); got != 0xff {
		t.Errorf("apex pixel (8,0) = %#x, want 0xff", got)
	}
	if got := pit.GetPix64(image.Pt(0, 15)); got == 0xff {
		t.Errorf("bottom-row pixel (0,15) = %#x, want 0 (fill rule excludes the bottommost scanline)", got)
	}
}

func TestTriFillSharedEdgeBothTrianglesDrawn(t *testing.T) {
	// Two triangles sharing the edge (8,0)-(0,8) are filled with different
	// values; both values must then be present in the square, so the
	// second fill has not painted over all of the first.
	_, pit := allocBound(t, Header{Width: 8, Height: 8, BPP: 8}, 1, true)
	pit.TriFill(image.Pt(0, 0), image.Pt(8, 0), image.Pt(0, 8), 0x01)
	pit.TriFill(image.Pt(8, 0), image.Pt(0, 8), image.Pt(8, 8), 0x02)
	pit.FlushAll()

	counts := map[uint64]int{}
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			counts[pit.GetPix64(image.Pt(x, y))]++
		}
	}
	if counts[0x01] == 0 || counts[0x02] == 0 {
		t.Fatalf("expected both fill values present, got counts %v", counts)
	}
}

func TestTriLineDrawsClosedOutline(t *testing.T) {
	_, pit := allocBound(t, Header{Width: 10, Height: 10, BPP: 8}, 1, true)
	pit.TriLine(image.Pt(1, 1), image.Pt(8, 1), image.Pt(1, 8), 0x77)
	pit.FlushAll()

	if got := pit.GetPix64(image.Pt(1, 1)); got != 0x77 {
		t.Errorf("vertex (1,1) = %#x, want 0x77", got)
	}
	if got := pit.GetPix64(image.Pt(4, 1)); got != 0x77 {
		t.Errorf("top edge midpoint (4,1) = %#x, want 0x77", got)
	}
}

package bootgraph

import (
	"bytes"
	"image"
	"testing"
)

func TestWriteHeaderReadHeaderRoundTrip(t *testing.T) {
	h := Header{Width: 640, Height: 480, BPP: 8, Orientation: TopLeft}

	var buf bytes.Buffer
	if err := WriteHeader(&buf, h); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	got, err := ReadHeader(&buf)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if got != h {
		t.Errorf("ReadHeader round-trip = %+v, want %+v", got, h)
	}
}

func TestReadHeaderShort(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader([]byte{1, 2, 3}))
	if err == nil {
		t.Fatal("ReadHeader on a truncated buffer should fail")
	}
}

func TestReadHeaderRejectsZeroDimension(t *testing.T) {
	var buf bytes.Buffer
	WriteHeader(&buf, Header{Width: 0, Height: 4, BPP: 8})
	_, err := ReadHeader(&buf)
	if err == nil {
		t.Fatal("ReadHeader should reject a header with zero width")
	}
}

func TestSaveImageLoadImageRoundTrip(t *testing.T) {
	hdr := Header{Width: 4, Height: 4, BPP: 8, Orientation: TopLeft}
	buf, err := AllocPixels(hdr, 0, 1)
	if err != nil {
		t.Fatalf("AllocPixels: %v", err)
	}
	defer buf.Release()

	pit := Bind(buf, 1, true)
	col := &Col{Pit: pit, BG: 0x42}
	col.ClearImage()
	pit.FlushAll()

	var wire bytes.Buffer
	if err := SaveImage(&wire, buf); err != nil {
		t.Fatalf("SaveImage: %v", err)
	}

	loaded, err := LoadImage(&wire, 1)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	defer loaded.Release()

	if loaded.Header != hdr {
		t.Errorf("loaded header = %+v, want %+v", loaded.Header, hdr)
	}
	lpit := Bind(loaded, 1, true)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := lpit.GetPix64(image.Pt(x, y)); got != 0x42 {
				t.Fatalf("pixel (%d,%d) = %#x, want 0x42", x, y, got)
			}
		}
	}
}

func TestLoadImageShortPixelData(t *testing.T) {
	hdr := Header{Width: 4, Height: 4, BPP: 8}
	var wire bytes.Buffer
	if err := WriteHeader(&wire, hdr); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	wire.Write([]byte{1, 2, 3}) // far short of the 16 pixel bytes needed

	_, err := LoadImage(&wire, 1)
	if err == nil {
		t.Fatal("LoadImage on truncated pixel data should fail")
	}
}

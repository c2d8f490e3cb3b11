package bootgraph

import "image"

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// LineIterator steps a Bresenham major-Y line from p1 to p2: each Step
// advances vertically by one scanline and horizontally however far the
// line travels within that scanline, landing on the first pixel of the
// next scanline. It is a general stepping primitive, not tied to 2-D pixel
// drawing, which is why line drawing and triangle-fill scan conversion can
// share it.
type LineIterator struct {
	p1, p2 image.Point
	adelta image.Point
	signs  image.Point
	cur    image.Point
	rem    int
}

// NewLineIterator creates a LineIterator stepping from p1 to p2.
func NewLineIterator(p1, p2 image.Point) *LineIterator {
	delta := image.Pt(p2.X-p1.X, p2.Y-p1.Y)
	return &LineIterator{
		p1:     p1,
		p2:     p2,
		adelta: image.Pt(absInt(delta.X), absInt(delta.Y)),
		signs:  image.Pt(sign(delta.X), sign(delta.Y)),
		cur:    p1,
	}
}

// Cur returns the iterator's current point.
func (lit *LineIterator) Cur() image.Point { return lit.cur }

// Signs returns the sign of the line's x and y travel direction, each -1,
// 0, or 1.
func (lit *LineIterator) Signs() image.Point { return lit.signs }

// Step advances to the first pixel of the next scanline and reports
// whether it moved; it returns false once Cur has reached p2.
func (lit *LineIterator) Step() bool {
	if lit.cur == lit.p2 {
		return false
	}

	rem := lit.rem
	rem += lit.adelta.X
	lit.cur.Y += lit.signs.Y
	for rem >= lit.adelta.Y && lit.cur.X != lit.p2.X {
		lit.cur.X += lit.signs.X
		rem -= lit.adelta.Y
	}
	lit.rem = rem
	return true
}

// LineTo draws a line from the iterator's current position up to, but not
// including, p2. Unclipped.
func (p *PixelIterator) LineTo(p2 image.Point, val uint64) {
	lastPt := p.pos
	lit := NewLineIterator(lastPt, p2)
	for lit.Step() {
		length := lit.cur.X - lastPt.X
		switch {
		case length == 0:
			p.WritePix64(val)
		case length > 0:
			p.ScanlineFill64(length, val)
		default:
			p.ScanlineArFill64(-length, val)
		}
		switch lit.signs.Y {
		case 1:
			p.IncY()
		case -1:
			p.DecY()
		}
		lastPt = lit.cur
	}
}

// TriLine draws the outline of the triangle p1-p2-p3. Unclipped.
func (p *PixelIterator) TriLine(p1, p2, p3 image.Point, val uint64) {
	p.MoveTo(p1)
	p.LineTo(p2, val)
	p.LineTo(p3, val)
	p.LineTo(p1, val)
}

// QuadLine draws the outline of the quadrilateral p1-p2-p3-p4. Unclipped.
func (p *PixelIterator) QuadLine(p1, p2, p3, p4 image.Point, val uint64) {
	p.MoveTo(p1)
	p.LineTo(p2, val)
	p.LineTo(p3, val)
	p.LineTo(p4, val)
	p.LineTo(p1, val)
}

// TriFill fills the triangle p1-p2-p3 with val using a zig-zag scanline
// scan conversion, driven by two LineIterators walking the triangle's two
// edge chains simultaneously. Fill rule: the topmost scanline is filled
// but the bottommost is not, and likewise the leftmost column of a
// scanline run is filled but the rightmost is not — so two triangles
// sharing an edge never double-draw the shared pixels. Unclipped.
func (p *PixelIterator) TriFill(p1, p2, p3 image.Point, val uint64) {
	if p2.Y < p1.Y {
		p1, p2 = p2, p1
	}
	if p3.Y < p2.Y {
		p2, p3 = p3, p2
	}
	if p2.Y < p1.Y {
		p1, p2 = p2, p1
	}

	p.MoveTo(p1)
	lastPt1 := p1
	lastPt2 := p1
	lit2 := NewLineIterator(p1, p3)
	zigzagLeft := false

	for i := 0; i < 2; i++ {
		var lit1 *LineIterator
		var xReverse bool
		if i == 0 {
			lit1 = NewLineIterator(p1, p2)
			xReverse = (p2.X == p3.X && p2.Y > p3.Y) || p2.X > p3.X
		} else {
			lit1 = NewLineIterator(p2, p3)
			xReverse = (p2.X == lastPt2.X && p2.Y > lastPt2.Y) || p2.X > lastPt2.X
		}

		for lit1.Step() {
			lit2.Step()
			if p.pos.Y == p3.Y {
				continue
			}

			var beginX, endX int
			if xReverse {
				if lit2.signs.X > 0 {
					beginX = lastPt2.X
				} else {
					beginX = lit2.cur.X
				}
				if lit1.signs.X > 0 {
					endX = lastPt1.X
				} else {
					endX = lit1.cur.X
				}
			} else {
				if lit1.signs.X > 0 {
					beginX = lastPt1.X
				} else {
					beginX = lit1.cur.X
				}
				if lit2.signs.X > 0 {
					endX = lastPt2.X
				} else {
					endX = lit2.cur.X
				}
			}
			length := endX - beginX
			if length < 0 {
				// Can happen in tight corners.
				length = 0
			}

			if zigzagLeft {
				shift := endX - p.pos.X
				for shift < 0 {
					shift++
					p.DecX()
				}
				for shift > 0 {
					shift--
					p.IncX()
				}
				p.ScanlineRFill64(length, val)
			} else {
				shift := beginX - p.pos.X
				for shift < 0 {
					shift++
					p.DecX()
				}
				for shift > 0 {
					shift--
					p.IncX()
				}
				p.ScanlineFill64(length, val)
			}
			zigzagLeft = !zigzagLeft

			p.IncY()
			lastPt1 = lit1.cur
			lastPt2 = lit2.cur
		}
	}
}

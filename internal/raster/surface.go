// Package raster implements the span writers every shape is built from.
//
// A Surface is a borrowed framebuffer in one of two layouts: one byte per
// pixel (the byte is the packed color) or one bit per pixel, least
// significant bit first, where a set bit is white. On 1-bit surfaces the
// fill byte is an ordered dither mask: pixel (x, y) takes bit x%8 of the
// mask, and the mask is rotated right by one on odd rows, so 0x55 renders
// as a checkerboard.
package raster

// Surface is a pixel buffer the writers draw into. It does not own Pix.
type Surface struct {
	Pix    []byte
	Stride int
	Mono   bool
}

// Bounds is a half-open clip box [MinX,MaxX) × [MinY,MaxY).
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// Empty reports whether the bounds contain no pixel.
func (b Bounds) Empty() bool {
	return b.MaxX <= b.MinX || b.MaxY <= b.MinY
}

// Contains reports whether (x, y) lies inside the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x < b.MaxX && y >= b.MinY && y < b.MaxY
}

// Clamp limits v to [lo, hi].
func Clamp(lo, v, hi int) int {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}

// DitherBit returns the bit a 1-bit surface stores at (x, y) for fill.
func DitherBit(fill byte, x, y int) byte {
	if y&1 == 1 {
		fill = rotate(fill)
	}
	return fill >> (x & 7) & 1
}

func rotate(fill byte) byte {
	return fill>>1 | fill<<7
}

func setBit(b *byte, pos int, v byte) {
	if v != 0 {
		*b |= 1 << pos
	} else {
		*b &^= 1 << pos
	}
}

// SetPixel writes one pixel if it lies inside b.
func (s Surface) SetPixel(x, y int, b Bounds, fill byte) {
	if !b.Contains(x, y) {
		return
	}
	if s.Mono {
		setBit(&s.Pix[y*s.Stride+x/8], x&7, DitherBit(fill, x, y))
		return
	}
	s.Pix[y*s.Stride+x] = fill
}

// At reads back the stored value at (x, y): the packed color on 8-bit
// surfaces and 0 or 1 on 1-bit surfaces.
func (s Surface) At(x, y int) byte {
	if s.Mono {
		return s.Pix[y*s.Stride+x/8] >> (x & 7) & 1
	}
	return s.Pix[y*s.Stride+x]
}

// Row fills the horizontal span [left, right] on row y. Spans are clamped
// to b; a span entirely outside b is ignored.
func (s Surface) Row(y, left, right int, b Bounds, fill byte) {
	if y < b.MinY || y >= b.MaxY || right < b.MinX || left >= b.MaxX || right < left {
		return
	}
	begin := Clamp(b.MinX, left, b.MaxX-1)
	end := Clamp(b.MinX, right, b.MaxX-1)
	row := s.Pix[y*s.Stride:]

	if !s.Mono {
		for i := begin; i <= end; i++ {
			row[i] = fill
		}
		return
	}

	if y&1 == 1 {
		fill = rotate(fill)
	}
	beginByte, endByte := begin/8, end/8
	if beginByte == endByte {
		for i := begin; i <= end; i++ {
			setBit(&row[beginByte], i&7, fill>>(i&7)&1)
		}
		return
	}
	// Unaligned head and tail bit by bit, whole bytes in between.
	for i := begin; i < (beginByte+1)*8; i++ {
		setBit(&row[beginByte], i&7, fill>>(i&7)&1)
	}
	for i := beginByte + 1; i < endByte; i++ {
		row[i] = fill
	}
	for i := endByte * 8; i <= end; i++ {
		setBit(&row[endByte], i&7, fill>>(i&7)&1)
	}
}

// Col fills the vertical span [top, bottom] in column x, clamped like Row.
func (s Surface) Col(x, top, bottom int, b Bounds, fill byte) {
	if x < b.MinX || x >= b.MaxX || top >= b.MaxY || bottom < b.MinY || bottom < top {
		return
	}
	begin := Clamp(b.MinY, top, b.MaxY-1)
	end := Clamp(b.MinY, bottom, b.MaxY-1)
	if s.Mono {
		for y := begin; y <= end; y++ {
			setBit(&s.Pix[y*s.Stride+x/8], x&7, DitherBit(fill, x, y))
		}
		return
	}
	for y := begin; y <= end; y++ {
		s.Pix[y*s.Stride+x] = fill
	}
}

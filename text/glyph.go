package text

import "github.com/gogpu/ngfx"

// glyphHeaderSize is the size of the fixed part of a stored glyph.
const glyphHeaderSize = 5

// Glyph is a decoded bitmap glyph.
//
// Bitmap holds Width×Height bits, row-major, most significant bit first
// within each byte, with no padding between rows.
type Glyph struct {
	Width  uint8
	Height uint8
	// Left and Top offset the bitmap from the pen position; Top is
	// measured down from the top of the line.
	Left int8
	Top  int8
	// Advance moves the pen to the next glyph.
	Advance int8
	Bitmap  []byte
}

// NewGlyph returns a glyph with an all-clear bitmap of the given size.
func NewGlyph(width, height uint8, left, top, advance int8) *Glyph {
	return &Glyph{
		Width:   width,
		Height:  height,
		Left:    left,
		Top:     top,
		Advance: advance,
		Bitmap:  make([]byte, bitmapLen(width, height)),
	}
}

func bitmapLen(w, h uint8) int {
	return (int(w)*int(h) + 7) / 8
}

// Bit reports whether pixel (x, y) of the bitmap is set. Coordinates
// outside the glyph report false.
func (g *Glyph) Bit(x, y int) bool {
	if x < 0 || y < 0 || x >= int(g.Width) || y >= int(g.Height) {
		return false
	}
	i := y*int(g.Width) + x
	if i/8 >= len(g.Bitmap) {
		return false
	}
	return g.Bitmap[i/8]&(0x80>>(i%8)) != 0
}

// SetBit sets or clears pixel (x, y). Coordinates outside the glyph are
// ignored.
func (g *Glyph) SetBit(x, y int, on bool) {
	if x < 0 || y < 0 || x >= int(g.Width) || y >= int(g.Height) {
		return
	}
	if n := bitmapLen(g.Width, g.Height); len(g.Bitmap) < n {
		g.Bitmap = append(g.Bitmap, make([]byte, n-len(g.Bitmap))...)
	}
	i := y*int(g.Width) + x
	if on {
		g.Bitmap[i/8] |= 0x80 >> (i % 8)
	} else {
		g.Bitmap[i/8] &^= 0x80 >> (i % 8)
	}
}

// Bounds returns the rectangle the glyph covers when drawn at pen.
func (g *Glyph) Bounds(pen ngfx.Point) ngfx.Rect {
	return ngfx.R(int(pen.X)+int(g.Left), int(pen.Y)+int(g.Top), int(g.Width), int(g.Height))
}

// appendGlyph appends the stored form of g to b.
func appendGlyph(b []byte, g *Glyph) []byte {
	b = append(b, g.Width, g.Height, byte(g.Left), byte(g.Top), byte(g.Advance))
	n := bitmapLen(g.Width, g.Height)
	bm := g.Bitmap
	if len(bm) > n {
		bm = bm[:n]
	}
	b = append(b, bm...)
	for i := len(bm); i < n; i++ {
		b = append(b, 0)
	}
	return b
}

// decodeGlyphHeader builds a glyph from its 5-byte header, leaving the
// bitmap to be read by the caller.
func decodeGlyphHeader(h []byte) *Glyph {
	return &Glyph{
		Width:   h[0],
		Height:  h[1],
		Left:    int8(h[2]),
		Top:     int8(h[3]),
		Advance: int8(h[4]),
	}
}

package ngfx

import (
	"github.com/gogpu/ngfx/internal/raster"
)

// DrawThinRect strokes a rect with a 1px outline in the stroke color,
// ignoring the stroke width.
func (c *Context) DrawThinRect(r Rect) {
	if !c.strokeColor.Opaque() {
		return
	}
	x, y, w, h := c.rectPixels(r)
	if w <= 0 || h <= 0 {
		return
	}
	c.thinRect(x, y, w, h, c.bounds(), c.fillByte(c.strokeColor))
}

// DrawRect strokes a rect with the current stroke width. Corners in mask
// are rounded with radius, clamped to half the shorter side.
func (c *Context) DrawRect(r Rect, radius uint16, mask CornerMask) {
	if c.strokeWidth == 0 || !c.strokeColor.Opaque() {
		return
	}
	x, y, w, h := c.rectPixels(r)
	if w <= 0 || h <= 0 {
		return
	}
	b, stroke := c.bounds(), c.fillByte(c.strokeColor)
	if c.strokeWidth == 1 && (radius == 0 || mask == CornerNone) {
		c.thinRect(x, y, w, h, b, stroke)
		return
	}

	rad := min(int(radius), w/2, h/2)
	width := int(c.strokeWidth)
	left, top, right, bottom := x, y, x+w-1, y+h-1

	indent := func(corner CornerMask) int {
		if mask.Has(corner) {
			return rad
		}
		return 0
	}
	if mask.Has(CornerTopLeft) {
		c.quarterCircle(left+rad, top+rad, rad, width, quarterTopLeft, b, stroke)
	}
	if mask.Has(CornerTopRight) {
		c.quarterCircle(right-rad, top+rad, rad, width, quarterTopRight, b, stroke)
	}
	if mask.Has(CornerBottomRight) {
		c.quarterCircle(right-rad, bottom-rad, rad, width, quarterBottomRight, b, stroke)
	}
	if mask.Has(CornerBottomLeft) {
		c.quarterCircle(left+rad, bottom-rad, rad, width, quarterBottomLeft, b, stroke)
	}

	// Edges run clockwise from the top left corner.
	c.line(left+indent(CornerTopLeft), top, right-indent(CornerTopRight), top, b)
	c.line(right, top+indent(CornerTopRight), right, bottom-indent(CornerBottomRight), b)
	c.line(right-indent(CornerBottomRight), bottom, left+indent(CornerBottomLeft), bottom, b)
	c.line(left, bottom-indent(CornerBottomLeft), left, top+indent(CornerTopLeft), b)
}

// FillRect fills a rect with the fill color. Corners in mask are rounded
// with radius, clamped to half the shorter side.
func (c *Context) FillRect(r Rect, radius uint16, mask CornerMask) {
	if !c.fillColor.Opaque() {
		return
	}
	x, y, w, h := c.rectPixels(r)
	if w <= 0 || h <= 0 {
		return
	}
	s, b, fill := c.surface(), c.bounds(), c.fillByte(c.fillColor)
	rad := min(int(radius), w/2, h/2)
	if rad == 0 || mask == CornerNone {
		for row := y; row < y+h; row++ {
			s.Row(row, x, x+w-1, b, fill)
		}
		return
	}

	left, top, right, bottom := x, y, x+w-1, y+h-1
	inset := func(corner CornerMask) int {
		if mask.Has(corner) {
			return rad
		}
		return 0
	}
	if mask.Has(CornerTopLeft) {
		c.fillQuarterCircle(left+rad, top+rad, rad, quarterTopLeft, b, fill)
	}
	if mask.Has(CornerTopRight) {
		c.fillQuarterCircle(right-rad, top+rad, rad, quarterTopRight, b, fill)
	}
	if mask.Has(CornerBottomLeft) {
		c.fillQuarterCircle(left+rad, bottom-rad, rad, quarterBottomLeft, b, fill)
	}
	if mask.Has(CornerBottomRight) {
		c.fillQuarterCircle(right-rad, bottom-rad, rad, quarterBottomRight, b, fill)
	}

	// Bands between the corner discs, then the body.
	for i := 0; i < rad; i++ {
		s.Row(top+i, left+inset(CornerTopLeft), right-inset(CornerTopRight), b, fill)
		s.Row(bottom-i, left+inset(CornerBottomLeft), right-inset(CornerBottomRight), b, fill)
	}
	for row := top + rad; row <= bottom-rad; row++ {
		s.Row(row, left, right, b, fill)
	}
}

func (c *Context) thinRect(x, y, w, h int, b raster.Bounds, fill byte) {
	s := c.surface()
	right, bottom := x+w-1, y+h-1
	s.Row(y, x, right, b, fill)
	s.Row(bottom, x, right, b, fill)
	s.Col(x, y, bottom, b, fill)
	s.Col(right, y, bottom, b, fill)
}

// rectPixels standardizes r and maps it to framebuffer coordinates.
func (c *Context) rectPixels(r Rect) (x, y, w, h int) {
	r = r.Standardize()
	x, y = c.translate(r.Origin)
	return x, y, int(r.Size.W), int(r.Size.H)
}

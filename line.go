package ngfx

import (
	"github.com/gogpu/ngfx/internal/raster"
)

// DrawLine draws a line from one point to another with the current stroke
// color, width and caps.
func (c *Context) DrawLine(from, to Point) {
	if c.strokeWidth == 0 || !c.strokeColor.Opaque() {
		return
	}
	x0, y0 := c.translate(from)
	x1, y1 := c.translate(to)
	c.line(x0, y0, x1, y1, c.bounds())
}

// line draws in framebuffer coordinates; the stroke color is assumed
// opaque.
func (c *Context) line(x0, y0, x1, y1 int, b raster.Bounds) {
	if c.strokeWidth <= 1 {
		c.line1px(x0, y0, x1, y1, b, c.fillByte(c.strokeColor))
		return
	}
	c.thickLine(x0, y0, x1, y1, int(c.strokeWidth), b)
}

// line1px walks the major axis in the positive direction and places one
// pixel per step. Axis-aligned lines become spans.
func (c *Context) line1px(x0, y0, x1, y1 int, b raster.Bounds, fill byte) {
	s := c.surface()
	dx, dy := x1-x0, y1-y0
	overY := abs(dy) > abs(dx)
	if (overY && dy < 0) || (!overY && dx < 0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dx, dy = -dx, -dy
	}

	if overY {
		e := sign(dx)
		if e == 0 {
			s.Col(x0, y0, y1, b, fill)
			return
		}
		if y1 < b.MinY || y0 >= b.MaxY {
			return
		}
		begin := raster.Clamp(b.MinY, y0, b.MaxY-1)
		end := raster.Clamp(b.MinY, y1, b.MaxY-1)
		for y := begin; y <= end; y++ {
			x := (dx*(y-y0)*2+e*dy)/(dy*2) + x0
			s.SetPixel(x, y, b, fill)
		}
		return
	}

	e := sign(dy)
	if e == 0 {
		s.Row(y0, x0, x1, b, fill)
		return
	}
	if x1 < b.MinX || x0 >= b.MaxX {
		return
	}
	begin := raster.Clamp(b.MinX, x0, b.MaxX-1)
	end := raster.Clamp(b.MinX, x1, b.MaxX-1)
	for x := begin; x <= end; x++ {
		y := (dy*(x-x0)*2+e*dx)/(dx*2) + y0
		s.SetPixel(x, y, b, fill)
	}
}

// thickLine draws a line of the given odd width as two 1px lines offset
// perpendicular to the centerline, sweeping one toward the other to fill
// the body. Round caps are filled circles at both ends.
func (c *Context) thickLine(fx, fy, tx, ty, width int, b raster.Bounds) {
	stroke := c.fillByte(c.strokeColor)
	if c.strokeCaps {
		radius := (width - 1) / 2
		c.fillCircle(fx, fy, radius, b, stroke)
		c.fillCircle(tx, ty, radius, b, stroke)
	}

	dx, dy := tx-fx, ty-fy
	if dx > 100 {
		dy = dy * 100 / dx
		dx = 100
	} else if dy > 100 {
		dx = dx * 100 / dy
		dy = 100
	}

	half := width / 2
	var sepX, sepY int
	switch {
	case dx == 0:
		sepX, sepY = 0, half
	case dy == 0:
		sepX, sepY = half, 0
	default:
		sepX, sepY = separation(dx, dy, half)
	}

	ax0, ay0, ax1, ay1 := fx-sepY, fy+sepX, tx-sepY, ty+sepX
	bx0, by0, bx1, by1 := fx+sepY, fy-sepX, tx+sepY, ty-sepX

	xdir, ydir := 1, 1
	if ax0 > bx0 {
		xdir = -1
	}
	if ay0 > by0 {
		ydir = -1
	}

	c.line1px(ax0, ay0, ax1, ay1, b, stroke)
	c.line1px(bx0, by0, bx1, by1, b, stroke)
	if !c.strokeCaps {
		c.line1px(ax0, ay0, bx0, by0, b, stroke)
		c.line1px(ax1, ay1, bx1, by1, b, stroke)
	}

	for ax0 != bx0 || ay0 != by0 {
		var stepX bool
		if c.strokeCaps || sepX == 0 || sepY == 0 {
			stepX = abs(bx0-ax0) > abs(by0-ay0)
		} else {
			// Keep the sweep parallel to the separation vector so flat
			// ends stay square.
			stepX = ay0 == by0 ||
				(ax0 != bx0 && abs(((ax0-bx0)<<3)/sepY) > abs(((ay0-by0)<<3)/sepX))
		}
		if stepX {
			ax0 += xdir
			ax1 += xdir
		} else {
			ay0 += ydir
			ay1 += ydir
		}
		c.line1px(ax0, ay0, ax1, ay1, b, stroke)
		c.line1px(bx0, by0, bx1, by1, b, stroke)
	}
}

// separation finds the vector along (dx, dy) whose length is about half,
// without floating point: the multiplier advances in steps of 10 until
// the length first exceeds half, then backs off one at a time. The result
// approximates the width; it is not exact.
func separation(dx, dy, half int) (int, int) {
	m := 1
	for ; m < 40000; m += 10 {
		sx, sy := dx*m/100, dy*m/100
		if isqrt(sx*sx+sy*sy) > half {
			break
		}
	}
	for {
		m--
		sx, sy := dx*m/100, dy*m/100
		if m <= 1 || isqrt(sx*sx+sy*sy) <= half {
			return sx, sy
		}
	}
}

// isqrt is a Babylonian integer square root that stops once successive
// estimates are within one of each other.
func isqrt(n int) int {
	a, b := 1, n
	for i := 0; abs(a-b) > 1 && i < 64; i++ {
		b = n / a
		a = (a + b) / 2
	}
	return a
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

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

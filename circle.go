package ngfx

import (
	"github.com/gogpu/ngfx/internal/raster"
)

// midpoint walks one octant of a circle with integer error terms. a is
// the coordinate along the starting axis, b the one along the other axis;
// the walk ends once b passes a.
type midpoint struct {
	a, b       int
	err        int
	errA, errB int
}

func newMidpoint(radius int) midpoint {
	return midpoint{a: radius, err: 1 - radius, errA: -2 * radius, errB: 1}
}

// step advances b by one, moving a inward when the error says so. It
// reports whether a moved.
func (m *midpoint) step() bool {
	if m.err >= 0 {
		m.a--
		m.b++
		m.errA += 2
		m.errB += 2
		m.err += m.errA + m.errB
		return true
	}
	m.b++
	m.errB += 2
	m.err += m.errB
	return false
}

func (m *midpoint) done() bool { return m.b > m.a }

// DrawCircle strokes a circle centered on p with the current stroke color
// and width. A radius of 0 draws nothing.
func (c *Context) DrawCircle(p Point, radius uint16) {
	if radius == 0 || c.strokeWidth == 0 || !c.strokeColor.Opaque() {
		return
	}
	x, y := c.translate(p)
	b, stroke := c.bounds(), c.fillByte(c.strokeColor)
	if c.strokeWidth == 1 {
		c.thinCircle(x, y, int(radius), b, stroke)
		return
	}
	c.thickCircle(x, y, int(radius), int(c.strokeWidth), b, stroke)
}

// FillCircle fills a disc centered on p with the current fill color.
func (c *Context) FillCircle(p Point, radius uint16) {
	if !c.fillColor.Opaque() {
		return
	}
	x, y := c.translate(p)
	c.fillCircle(x, y, int(radius), c.bounds(), c.fillByte(c.fillColor))
}

// thinCircle plots the eight symmetric points of each octant step.
func (c *Context) thinCircle(px, py, radius int, b raster.Bounds, fill byte) {
	s := c.surface()
	for m := newMidpoint(radius); !m.done(); m.step() {
		s.SetPixel(px+m.a, py+m.b, b, fill)
		s.SetPixel(px-m.a, py+m.b, b, fill)
		s.SetPixel(px+m.a, py-m.b, b, fill)
		s.SetPixel(px-m.a, py-m.b, b, fill)
		s.SetPixel(px+m.b, py+m.a, b, fill)
		s.SetPixel(px-m.b, py+m.a, b, fill)
		s.SetPixel(px+m.b, py-m.a, b, fill)
		s.SetPixel(px-m.b, py-m.a, b, fill)
	}
}

// fillCircle covers the disc with horizontal spans. The rows at ±a are
// written only when a is about to move, so no row is painted twice per
// octant.
func (c *Context) fillCircle(px, py, radius int, b raster.Bounds, fill byte) {
	s := c.surface()
	if radius == 0 {
		s.SetPixel(px, py, b, fill)
		return
	}
	for m := newMidpoint(radius); !m.done(); {
		s.Row(py+m.b, px-m.a, px+m.a, b, fill)
		if m.b != 0 {
			s.Row(py-m.b, px-m.a, px+m.a, b, fill)
		}
		if m.err >= 0 && m.a != m.b {
			s.Row(py+m.a, px-m.b, px+m.b, b, fill)
			s.Row(py-m.a, px-m.b, px+m.b, b, fill)
		}
		m.step()
	}
}

// thickCircle fills the annulus between two concentric walks whose radii
// differ by the stroke width, one octant span at a time.
func (c *Context) thickCircle(px, py, radius, width int, b raster.Bounds, fill byte) {
	s := c.surface()
	half := (width - 1) / 2
	inner := newMidpoint(raster.Clamp(0, radius-half, radius))
	outer := newMidpoint(radius + half)

	spans := func() {
		a1, a2, o := inner.a, outer.a, outer.b
		s.Col(px+o, py-a2, py-a1, b, fill)
		s.Col(px+o, py+a1, py+a2, b, fill)
		s.Col(px-o, py-a2, py-a1, b, fill)
		s.Col(px-o, py+a1, py+a2, b, fill)
		s.Row(py+o, px-a2, px-a1, b, fill)
		s.Row(py+o, px+a1, px+a2, b, fill)
		s.Row(py-o, px-a2, px-a1, b, fill)
		s.Row(py-o, px+a1, px+a2, b, fill)
	}

	spans()
	for !outer.done() && outer.a != 0 {
		outer.step()
		if !inner.done() && inner.a != 0 {
			inner.step()
		}
		spans()
	}
}

// quarter selects one quadrant of a circle by the sign of each axis.
type quarter struct{ dx, dy int }

var (
	quarterTopLeft     = quarter{-1, -1}
	quarterTopRight    = quarter{1, -1}
	quarterBottomLeft  = quarter{-1, 1}
	quarterBottomRight = quarter{1, 1}
)

// span orders two offsets from an origin along one quadrant direction.
func (q quarter) span(origin, near, far, dir int) (int, int) {
	if dir > 0 {
		return origin + near, origin + far
	}
	return origin - far, origin - near
}

// quarterCircle strokes one quadrant of a circle, thin or thick.
func (c *Context) quarterCircle(px, py, radius, width int, q quarter, b raster.Bounds, fill byte) {
	s := c.surface()
	if width <= 1 {
		if radius == 0 {
			s.SetPixel(px, py, b, fill)
			return
		}
		for m := newMidpoint(radius); !m.done(); m.step() {
			s.SetPixel(px+q.dx*m.a, py+q.dy*m.b, b, fill)
			s.SetPixel(px+q.dx*m.b, py+q.dy*m.a, b, fill)
		}
		return
	}

	half := (width - 1) / 2
	inner := newMidpoint(raster.Clamp(0, radius-half, radius))
	outer := newMidpoint(radius + half)
	spans := func() {
		o := outer.b
		y0, y1 := q.span(py, inner.a, outer.a, q.dy)
		s.Col(px+q.dx*o, y0, y1, b, fill)
		x0, x1 := q.span(px, inner.a, outer.a, q.dx)
		s.Row(py+q.dy*o, x0, x1, b, fill)
	}
	spans()
	for !outer.done() && outer.a != 0 {
		outer.step()
		if !inner.done() && inner.a != 0 {
			inner.step()
		}
		spans()
	}
}

// fillQuarterCircle fills one quadrant of a disc, including the center
// row and column.
func (c *Context) fillQuarterCircle(px, py, radius int, q quarter, b raster.Bounds, fill byte) {
	s := c.surface()
	if radius == 0 {
		s.SetPixel(px, py, b, fill)
		return
	}
	for m := newMidpoint(radius); !m.done(); {
		x0, x1 := q.span(px, 0, m.a, q.dx)
		s.Row(py+q.dy*m.b, x0, x1, b, fill)
		if m.err >= 0 && m.a != m.b {
			x0, x1 = q.span(px, 0, m.b, q.dx)
			s.Row(py+q.dy*m.a, x0, x1, b, fill)
		}
		m.step()
	}
}

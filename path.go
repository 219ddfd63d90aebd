package ngfx

import (
	"slices"

	"github.com/gogpu/ngfx/internal/raster"
)

// Path is a polygon in local coordinates with a rotation and offset that
// are applied when it is drawn. Points are not modified by RotateTo or
// MoveTo.
type Path struct {
	Points []Point
	Angle  int32
	Offset Point
	Open   bool
}

// NewPath creates a closed path over points. The slice is shared, not
// copied.
func NewPath(points []Point) *Path {
	return &Path{Points: points}
}

// RotateTo sets the rotation, in fixed-point angle units, applied around
// the path origin.
func (p *Path) RotateTo(angle int32) { p.Angle = angle }

// MoveTo sets the offset applied after rotation.
func (p *Path) MoveTo(offset Point) { p.Offset = offset }

// SetOpen selects whether DrawPath joins the last point to the first.
func (p *Path) SetOpen(open bool) { p.Open = open }

// Transformed returns the path points after rotation and offset.
func (p *Path) Transformed() []Point {
	out := make([]Point, len(p.Points))
	sin, cos := int64(SinLookup(p.Angle)), int64(CosLookup(p.Angle))
	for i, pt := range p.Points {
		x, y := int64(pt.X), int64(pt.Y)
		out[i] = Point{
			X: int16((x*cos-y*sin)/TrigMaxRatio) + p.Offset.X,
			Y: int16((x*sin+y*cos)/TrigMaxRatio) + p.Offset.Y,
		}
	}
	return out
}

// DrawPath strokes the transformed path.
func (c *Context) DrawPath(p *Path) {
	if p == nil {
		return
	}
	c.DrawPolyline(p.Transformed(), p.Open)
}

// FillPath fills the transformed path.
func (c *Context) FillPath(p *Path) {
	if p == nil {
		return
	}
	c.FillPolygon(p.Transformed())
}

// DrawPolyline strokes consecutive points with the current stroke. Unless
// open, the last point is joined back to the first.
func (c *Context) DrawPolyline(points []Point, open bool) {
	if len(points) == 0 || c.strokeWidth == 0 || !c.strokeColor.Opaque() {
		return
	}
	b := c.bounds()
	for i := 0; i+1 < len(points); i++ {
		x0, y0 := c.translate(points[i])
		x1, y1 := c.translate(points[i+1])
		c.line(x0, y0, x1, y1, b)
	}
	if !open && len(points) > 1 {
		x0, y0 := c.translate(points[len(points)-1])
		x1, y1 := c.translate(points[0])
		c.line(x0, y0, x1, y1, b)
	}
}

// FillPolygon fills the interior of a closed polygon with the fill color.
// Pixels where an edge crosses a row are left to DrawPolyline; horizontal
// edges are not crossings, so their rows may fill across them.
func (c *Context) FillPolygon(points []Point) {
	if len(points) < 3 || !c.fillColor.Opaque() {
		return
	}
	pts := make([]ipoint, len(points))
	for i, p := range points {
		pts[i].x, pts[i].y = c.translate(p)
	}
	fillPolygon(c.surface(), pts, c.bounds(), c.fillByte(c.fillColor))
}

// DrawPrecisePolyline strokes points given in 1/8 pixel units.
func (c *Context) DrawPrecisePolyline(points []PrecisePoint, open bool) {
	c.DrawPolyline(precisePoints(points), open)
}

// FillPrecisePolygon fills a polygon given in 1/8 pixel units.
func (c *Context) FillPrecisePolygon(points []PrecisePoint) {
	c.FillPolygon(precisePoints(points))
}

type ipoint struct{ x, y int }

// fillPolygon scans each row of the polygon's vertical extent, collects
// the x positions where edges cross it, sorts them and fills strictly
// between each pair, leaving the crossing pixels to the stroke.
//
// An edge crosses row y when one endpoint is on or above it and the other
// strictly below, or the mirror, so horizontal edges never count. A vertex
// on the row whose two neighbors are both strictly on the same side is a
// corner and its position is recorded twice.
func fillPolygon(s raster.Surface, pts []ipoint, b raster.Bounds, fill byte) {
	n := len(pts)
	minY, maxY := pts[0].y, pts[0].y
	for _, p := range pts[1:] {
		minY = min(minY, p.y)
		maxY = max(maxY, p.y)
	}
	if maxY < b.MinY || minY >= b.MaxY {
		return
	}
	minY = max(minY, b.MinY)
	maxY = min(maxY, b.MaxY-1)

	xs := make([]int, 0, 2*n)
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for i, cur := range pts {
			prev, next := pts[(i+n-1)%n], pts[(i+1)%n]
			if !(cur.y <= y && next.y > y) && !(cur.y >= y && next.y < y) {
				continue
			}
			dx, dy := next.x-cur.x, next.y-cur.y
			x := cur.x + (dx*(y-cur.y)*2+sign(dx)*dy)/(dy*2)
			xs = append(xs, x)
			if cur.y == y && ((prev.y < y && next.y < y) || (prev.y > y && next.y > y)) {
				xs = append(xs, x)
			}
		}

		slices.Sort(xs)
		for p := 0; p+1 < len(xs); p += 2 {
			if xs[p] <= xs[p+1]-2 {
				s.Row(y, xs[p]+1, xs[p+1]-1, b, fill)
			}
		}
	}
}

package ngfx

import "fmt"

// Rect is an origin plus a size. With a non-negative size a rect covers
// the pixels [Origin.X, Origin.X+W) × [Origin.Y, Origin.Y+H). A negative
// extent counts back from the origin and keeps both ends: width -w covers
// columns Origin.X-w-1 through Origin.X. Standardize converts the second
// form into the first.
type Rect struct {
	Origin Point
	Size   Size
}

// R is a convenience function to create a Rect.
func R(x, y, w, h int) Rect {
	return Rect{Origin: Pt(x, y), Size: Sz(w, h)}
}

// Standardize returns an equivalent rect with non-negative size.
//
// A negative extent is flipped around its origin: the origin moves by
// size-1 and the size becomes -size+2, so the standardized rect still
// covers the origin row or column and the one at origin+size-1.
func (r Rect) Standardize() Rect {
	if r.Size.W < 0 {
		r.Origin.X += r.Size.W - 1
		r.Size.W = -r.Size.W + 2
	}
	if r.Size.H < 0 {
		r.Origin.Y += r.Size.H - 1
		r.Size.H = -r.Size.H + 2
	}
	return r
}

// MaxX returns the first column right of the rect.
func (r Rect) MaxX() int { return int(r.Origin.X) + int(r.Size.W) }

// MaxY returns the first row below the rect.
func (r Rect) MaxY() int { return int(r.Origin.Y) + int(r.Size.H) }

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && int(p.X) < r.MaxX() &&
		p.Y >= r.Origin.Y && int(p.Y) < r.MaxY()
}

// Intersect returns the largest rect contained in both r and s. The result
// is empty when they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	r, s = r.Standardize(), s.Standardize()
	x0 := max(int(r.Origin.X), int(s.Origin.X))
	y0 := max(int(r.Origin.Y), int(s.Origin.Y))
	x1 := min(r.MaxX(), s.MaxX())
	y1 := min(r.MaxY(), s.MaxY())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return R(x0, y0, x1-x0, y1-y0)
}

// String returns a string representation of the rect.
func (r Rect) String() string {
	return fmt.Sprintf("%v+%dx%d", r.Origin, r.Size.W, r.Size.H)
}

// CornerMask selects which corners of a rect are rounded.
type CornerMask uint8

// Corner masks.
const (
	CornerNone        CornerMask = 0
	CornerTopLeft     CornerMask = 0b0001
	CornerTopRight    CornerMask = 0b0010
	CornerBottomLeft  CornerMask = 0b0100
	CornerBottomRight CornerMask = 0b1000
	CornersTop        CornerMask = CornerTopLeft | CornerTopRight
	CornersBottom     CornerMask = CornerBottomLeft | CornerBottomRight
	CornersLeft       CornerMask = CornerTopLeft | CornerBottomLeft
	CornersRight      CornerMask = CornerTopRight | CornerBottomRight
	CornersAll        CornerMask = 0b1111
)

// Has reports whether every corner in c is set in m.
func (m CornerMask) Has(c CornerMask) bool {
	return m&c == c
}

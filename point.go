package ngfx

import "fmt"

// Point is an integer pixel position. Signed 16-bit components cover every
// panel this package targets and match the on-disk draw-command format.
type Point struct {
	X, Y int16
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: int16(x), Y: int16(y)}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Eq reports whether two points are identical.
func (p Point) Eq(q Point) bool {
	return p == q
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width/height pair. Negative components are allowed and are
// normalized by Rect.Standardize.
type Size struct {
	W, H int16
}

// Sz is a convenience function to create a Size.
func Sz(w, h int) Size {
	return Size{W: int16(w), H: int16(h)}
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

package ngfx

// PrecisePoint is a point in 1/8 pixel units, the 13.3 fixed point format
// used by precise paths.
type PrecisePoint struct {
	X, Y int16
}

// PrecisePt returns a precise point from 1/8 pixel coordinates.
func PrecisePt(x, y int) PrecisePoint {
	return PrecisePoint{X: int16(x), Y: int16(y)}
}

// PreciseFromPoint converts a whole-pixel point to 1/8 pixel units.
func PreciseFromPoint(p Point) PrecisePoint {
	return PrecisePoint{X: p.X << 3, Y: p.Y << 3}
}

// Point rounds the precise point to the nearest pixel, halves rounding up.
func (p PrecisePoint) Point() Point {
	return Point{X: preciseToPixel(p.X), Y: preciseToPixel(p.Y)}
}

func preciseToPixel(v int16) int16 {
	return int16((int(v) + 4) >> 3)
}

func precisePoints(pts []PrecisePoint) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = p.Point()
	}
	return out
}

package ngfx

import "math"

// Angles are fixed point: a full turn is TrigMaxAngle. Sine and cosine
// results are scaled by TrigMaxRatio.
const (
	TrigMaxAngle = 0x10000
	TrigMaxRatio = 0xFFFF
)

// DegToTrigAngle converts whole degrees to a fixed-point angle.
func DegToTrigAngle(deg int32) int32 {
	return deg * TrigMaxAngle / 360
}

const sinSteps = TrigMaxAngle / 4

// sinTable holds one quadrant of the sine wave, including both ends.
var sinTable = func() [sinSteps + 1]int32 {
	var t [sinSteps + 1]int32
	for i := range t {
		t[i] = int32(math.Round(math.Sin(float64(i)*math.Pi/2/sinSteps) * TrigMaxRatio))
	}
	return t
}()

// SinLookup returns the sine of a fixed-point angle scaled by TrigMaxRatio.
func SinLookup(angle int32) int32 {
	a := int(angle) & (TrigMaxAngle - 1)
	switch {
	case a <= sinSteps:
		return sinTable[a]
	case a <= 2*sinSteps:
		return sinTable[2*sinSteps-a]
	case a <= 3*sinSteps:
		return -sinTable[a-2*sinSteps]
	default:
		return -sinTable[TrigMaxAngle-a]
	}
}

// CosLookup returns the cosine of a fixed-point angle scaled by
// TrigMaxRatio.
func CosLookup(angle int32) int32 {
	return SinLookup(angle + TrigMaxAngle/4)
}

package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed returns the point in 26.6 fixed-point format, rounded to the nearest
// representable value. Coordinates outside the range of [fixed.Int26_6],
// including infinities, saturate to its minimum or maximum. NaN becomes 0.
func (pt Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: toFixed(math.Round(pt.X * 64)),
		Y: toFixed(math.Round(pt.Y * 64)),
	}
}

// Fixed returns the box in 26.6 fixed-point format, rounded outwards so that
// the result encloses b. Coordinates saturate like those of [Point.Fixed].
// An empty box, including [EmptyBox] and any box with a NaN coordinate,
// becomes the zero rectangle.
func (b Box) Fixed() fixed.Rectangle26_6 {
	if b.IsEmpty() {
		return fixed.Rectangle26_6{}
	}
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{
			X: toFixed(math.Floor(b.X0 * 64)),
			Y: toFixed(math.Floor(b.Y0 * 64)),
		},
		Max: fixed.Point26_6{
			X: toFixed(math.Ceil(b.X1 * 64)),
			Y: toFixed(math.Ceil(b.Y1 * 64)),
		},
	}
}

// toFixed converts an integral number of 1/64ths, saturating at the bounds
// of int32.
func toFixed(v float64) fixed.Int26_6 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	default:
		return fixed.Int26_6(v)
	}
}

package geom

import (
	"math"
	"slices"
)

// maxExtrema is the largest number of interior extrema a curve in this
// package reports. Cubic Béziers have up to two per axis.
const maxExtrema = 4

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, the root of the linear equation is
// returned and the other root, which might be out of representable range, is
// dropped. In the degenerate case where all coefficients are zero, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			return [2]float64{0}, 1
		}
		return [2]float64{}, 0
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1 * sc1 overflowed. Find one root using sc1 x + x² = 0, the
		// other as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) || math.IsNaN(root2) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}

// SolveCubic finds real roots of cubic equations, falling back to
// [SolveQuadratic] when c3 is zero or nearly so.
//
// See: https://momentsingraphics.de/CubicRoots.html, which is in turn based
// on Jim Blinn's "How to Solve a Cubic Equation".
//
// Returns values of x for which c0 + c1 x + c2 x² + c3 x³ = 0.0
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	c3Recip := 1.0 / c3
	scaledC2 := c2 * (1.0 / 3.0 * c3Recip)
	scaledC1 := c1 * (1.0 / 3.0 * c3Recip)
	scaledC0 := c0 * c3Recip
	if math.IsInf(scaledC0, 0) || math.IsInf(scaledC1, 0) || math.IsInf(scaledC2, 0) ||
		math.IsNaN(scaledC0) || math.IsNaN(scaledC1) || math.IsNaN(scaledC2) {
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}
	c0, c1, c2 = scaledC0, scaledC1, scaledC2
	// (d0, d1, d2) is called "Delta" in the article.
	d0 := math.FMA(-c2, c2, c1)
	d1 := math.FMA(-c1, c2, c0)
	d2 := c2*c0 - c1*c1
	d := 4.0*d0*d2 - d1*d1
	de := math.FMA(-2.0*c2, d0, d1)
	switch {
	case d < 0.0:
		sq := math.Sqrt(-0.25 * d)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t1 - c2}, 1
	case d == 0.0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return [3]float64{t1 - c2, -2.0*t1 - c2}, 2
	default:
		th := math.Atan2(math.Sqrt(d), -de) * (1.0 / 3.0)
		thSin, thCos := math.Sincos(th)
		r0 := thCos
		ss3 := thSin * math.Sqrt(3.0)
		r1 := 0.5 * (-thCos + ss3)
		r2 := 0.5 * (-thCos - ss3)
		t := 2.0 * math.Sqrt(-d0)
		return [3]float64{
			math.FMA(t, r0, -c2),
			math.FMA(t, r1, -c2),
			math.FMA(t, r2, -c2),
		}, 3
	}
}

// monotonicRanges splits [0, 1] at the sorted interior extrema ex into
// ranges within which a curve is monotonic in both x and y.
func monotonicRanges(ex []float64) ([maxExtrema + 1][2]float64, int) {
	var ret [maxExtrema + 1][2]float64
	var n int
	var t0 float64
	for _, t := range ex {
		ret[n] = [2]float64{t0, t}
		n++
		t0 = t
	}
	ret[n] = [2]float64{t0, 1}
	n++
	return ret, n
}

// windingMonotonic returns the winding number contribution for pt of a curve
// piece that is monotonic in y, by casting a ray to the left. eval evaluates
// the piece over [0, 1], ys holds the y coordinates of its control points
// from start to end and xs those of its x coordinates.
func windingMonotonic(pt Point, xs, ys []float64, eval func(t float64) Point) int {
	start := Point{xs[0], ys[0]}
	end := Point{xs[len(xs)-1], ys[len(ys)-1]}
	var sign int
	switch {
	case end.Y > start.Y:
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	case end.Y < start.Y:
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	default:
		return 0
	}
	if pt.X < slices.Min(xs) {
		return 0
	}
	if pt.X >= slices.Max(xs) {
		return sign
	}

	var roots [3]float64
	var n int
	switch len(ys) {
	case 2:
		// line equation ax + by = c
		a := end.Y - start.Y
		b := start.X - end.X
		c := a*start.X + b*start.Y
		if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
			return sign
		}
		return 0
	case 3:
		a := ys[2] - 2.0*ys[1] + ys[0]
		b := 2.0 * (ys[1] - ys[0])
		c := ys[0] - pt.Y
		var r [2]float64
		r, n = SolveQuadratic(c, b, a)
		copy(roots[:], r[:])
	case 4:
		a := ys[3] - 3.0*ys[2] + 3.0*ys[1] - ys[0]
		b := 3.0 * (ys[2] - 2.0*ys[1] + ys[0])
		c := 3.0 * (ys[1] - ys[0])
		d := ys[0] - pt.Y
		roots, n = SolveCubic(d, c, b, a)
	}
	for _, t := range roots[:n] {
		if t >= 0.0 && t <= 1.0 {
			if pt.X >= eval(t).X {
				return sign
			}
			return 0
		}
	}
	return 0
}

// windingLine returns the winding number contribution of the line from p0 to
// p1 for pt.
func windingLine(p0, p1, pt Point) int {
	return windingMonotonic(pt, []float64{p0.X, p1.X}, []float64{p0.Y, p1.Y}, nil)
}

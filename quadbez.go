package geom

import (
	"math"
)

// QuadBez is a quadratic Bézier curve.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Interpolate evaluates the curve at u using de Casteljau's algorithm.
func (q QuadBez) Interpolate(u float64) Point {
	a := q.P0.Lerp(q.P1, u)
	b := q.P1.Lerp(q.P2, u)
	return a.Lerp(b, u)
}

// Split splits the curve at u with one step of de Casteljau's algorithm. Both
// halves share the point Interpolate(u).
func (q QuadBez) Split(u float64) (QuadBez, QuadBez) {
	a := q.P0.Lerp(q.P1, u)
	b := q.P1.Lerp(q.P2, u)
	pm := a.Lerp(b, u)
	return QuadBez{q.P0, a, pm}, QuadBez{pm, b, q.P2}
}

func (q QuadBez) SplitCurve(u float64) (Curve, Curve) {
	return q.Split(u)
}

// Subsegment returns the part of the curve between t0 and t1.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Interpolate(t0)
	p2 := q.Interpolate(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Reverse() QuadBez {
	return QuadBez{q.P2, q.P1, q.P0}
}

func (q QuadBez) ReverseCurve() Curve {
	return q.Reverse()
}

// Raise the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Extrema returns the parameters, in increasing order, at which the curve
// reaches an extremum in x or y. Only extrema in the open interval (0, 1)
// are reported.
func (q QuadBez) Extrema() ([maxExtrema]float64, int) {
	// The derivative of a quadratic is a line, with at most one root per
	// axis.
	var out [maxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

// BoundingBox returns the tight bounding box of the curve.
func (q QuadBez) BoundingBox() Box {
	b := BoxFromPoints(q.P0, q.P2)
	ex, n := q.Extrema()
	for _, t := range ex[:n] {
		b = b.UnionPoint(q.Interpolate(t))
	}
	return b
}

func (q QuadBez) XMin() float64 { return q.BoundingBox().X0 }
func (q QuadBez) YMin() float64 { return q.BoundingBox().Y0 }
func (q QuadBez) XMax() float64 { return q.BoundingBox().X1 }
func (q QuadBez) YMax() float64 { return q.BoundingBox().Y1 }

func (q QuadBez) isShape() {}

func (q QuadBez) Contains(s Shape) bool   { return contains(q, s) }
func (q QuadBez) Intersects(s Shape) bool { return intersects(q, s) }

func (q QuadBez) Transform(f Transformer) Shape {
	return QuadBez{
		P0: f.TransformPoint(q.P0),
		P1: f.TransformPoint(q.P1),
		P2: f.TransformPoint(q.P2),
	}
}

// Nearest finds the point on the curve nearest to pt, returning the squared
// distance and its parameter. It solves for the roots of the derivative of
// the squared distance, a cubic.
func (q QuadBez) Nearest(pt Point) (distSq, t float64) {
	best := math.Inf(1)
	try := func(u float64, p Point) {
		if r := p.DistanceSquared(pt); r < best {
			best = r
			t = u
		}
	}
	d0 := q.P1.Sub(q.P0)
	d1 := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2.0))
	d := q.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2.0*d0.Hypot2() + d.Dot(d1)
	c2 := 3.0 * d1.Dot(d0)
	c3 := d1.Hypot2()
	roots, n := SolveCubic(c0, c1, c2, c3)
	needEnds := n == 0
	for _, u := range roots[:n] {
		if !(u >= 0.0 && u <= 1.0) {
			needEnds = true
			continue
		}
		try(u, q.Interpolate(u))
	}
	if needEnds {
		try(0, q.P0)
		try(1, q.P2)
	}
	return best, t
}

// LineIntersection is an intersection of a curve with a [Segment].
type LineIntersection struct {
	// SegmentT is the parameter of the intersection on the segment.
	SegmentT float64
	// CurveT is the parameter of the intersection on the curve. It may
	// slightly exceed [0, 1].
	CurveT float64
}

// IntersectSegment returns the points at which the curve crosses s.
//
// The curve's coordinates are expressed as polynomials in t and substituted
// into the equation of the line through s, giving a signed distance from
// that line whose roots are the crossings.
func (q QuadBez) IntersectSegment(s Segment) ([3]LineIntersection, int) {
	const epsilon = 1e-9
	p0 := s.P0
	dx := s.P1.X - p0.X
	dy := s.P1.Y - p0.Y
	var ret [3]LineIntersection
	var retN int
	if dx == 0 && dy == 0 {
		if distSq, t := q.Nearest(p0); distSq <= onSegmentEpsilon*onSegmentEpsilon {
			ret[0] = LineIntersection{0, t}
			retN++
		}
		return ret, retN
	}

	px0, px1, px2 := quadBezCoefficients(q.P0.X, q.P1.X, q.P2.X)
	py0, py1, py2 := quadBezCoefficients(q.P0.Y, q.P1.Y, q.P2.Y)
	c0 := dy*(px0-p0.X) - dx*(py0-p0.Y)
	c1 := dy*px1 - dx*py1
	c2 := dy*px2 - dx*py2
	invlen2 := 1.0 / (dx*dx + dy*dy)
	ts, n := SolveQuadratic(c0, c1, c2)
	for _, t := range ts[:n] {
		if t >= -epsilon && t <= 1+epsilon {
			x := px0 + t*px1 + t*t*px2
			y := py0 + t*py1 + t*t*py2
			u := ((x-p0.X)*dx + (y-p0.Y)*dy) * invlen2
			if u >= 0.0 && u <= 1.0 {
				ret[retN] = LineIntersection{u, t}
				retN++
			}
		}
	}
	return ret, retN
}

// quadBezCoefficients returns polynomial coefficients given quadratic Bézier
// coordinates.
func quadBezCoefficients(x0, x1, x2 float64) (_, _, _ float64) {
	p0 := x0
	p1 := 2.0*x1 - 2.0*x0
	p2 := x2 - 2.0*x1 + x0
	return p0, p1, p2
}

func (q QuadBez) SignedArea() float64 {
	v := q.P0.X*(2.0*q.P1.Y+q.P2.Y) +
		2.0*(q.P1.X*(q.P2.Y-q.P0.Y)) -
		q.P2.X*(q.P0.Y+2.0*q.P1.Y)
	return v * (1.0 / 6.0)
}

func (q QuadBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := q.P1.Sub(q.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d0 = q.P2.Sub(q.P0)
	}
	d12 := q.P2.Sub(q.P1)
	if d12.Hypot2() > epsilon {
		d1 = d12
	} else {
		d1 = q.P2.Sub(q.P0)
	}
	return d0, d1
}

// Arclen returns the arclength of the curve.
//
// This computation is based on an analytical formula. Since that formula suffers
// from numerical instability when the curve is very close to a straight line, we
// detect that case and fall back to Legendre-Gauss quadrature.
func (q QuadBez) Arclen() float64 {
	d2 := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2))
	a := d2.Hypot2()
	d1 := q.P1.Sub(q.P0)
	c := d1.Hypot2()
	if a < 5e-4*c {
		// Nearly straight. Formula from Behdad in
		// https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec2(q.P0).Mul(-0.492943519233745).
			Add(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec2(q.P0).Mul(-0.0626120363218102).
			Sub(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// Sharp kink.
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
}

// An approximation to $\int (1 + 4x^2) ^ -0.25 dx$, used for flattening.
func approxParabolaIntegral(x float64) float64 {
	const d = 0.67
	return x / (1.0 - d + math.Sqrt(math.Sqrt(math.Pow(d, 4)+0.25*x*x)))
}

// An approximation to the inverse parabola integral.
func approxParabolaInvIntegral(x float64) float64 {
	const b = 0.39
	return x * (1.0 - b + math.Sqrt(b*b+0.25*x*x))
}

type flattenParams struct {
	a0     float64
	a2     float64
	u0     float64
	uscale float64
	// The number of subdivisions * 2 * sqrtTol.
	val float64
}

// determineSubdivT maps a value from 0..1 to a curve parameter such that
// evenly spaced inputs yield evenly spread flattening error.
func (q QuadBez) determineSubdivT(params *flattenParams, x float64) float64 {
	a := params.a0 + (params.a2-params.a0)*x
	u := approxParabolaInvIntegral(a)
	return (u - params.u0) * params.uscale
}

// estimateSubdiv estimates the number of subdivisions for flattening, by
// mapping the curve onto the parabola y = x².
func (q QuadBez) estimateSubdiv(sqrtTol float64) flattenParams {
	d01 := q.P1.Sub(q.P0)
	d12 := q.P2.Sub(q.P1)
	dd := d01.Sub(d12)
	cross := q.P2.Sub(q.P0).Cross(dd)
	x0 := d01.Dot(dd) * (1.0 / cross)
	x2 := d12.Dot(dd) * (1.0 / cross)
	scale := math.Abs(cross / (dd.Hypot() * (x2 - x0)))

	a0 := approxParabolaIntegral(x0)
	a2 := approxParabolaIntegral(x2)
	var val float64
	if !math.IsInf(scale, 0) && !math.IsNaN(scale) {
		da := math.Abs(a2 - a0)
		sqrtScale := math.Sqrt(scale)
		if math.Signbit(x0) == math.Signbit(x2) {
			val = da * sqrtScale
		} else {
			// The curve contains its curvature maximum.
			xmin := sqrtTol / sqrtScale
			val = sqrtTol * da / approxParabolaIntegral(xmin)
		}
	}
	u0 := approxParabolaInvIntegral(a0)
	u2 := approxParabolaInvIntegral(a2)
	uscale := 1.0 / (u2 - u0)
	return flattenParams{a0, a2, u0, uscale, val}
}

// flatten subdivides the curve so that no point of it is farther than tol
// from the resulting polyline. See
// https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
func (q QuadBez) flatten(tol float64, yield func(Point) bool) bool {
	sqrtTol := math.Sqrt(tol)
	params := q.estimateSubdiv(sqrtTol)
	n := max(int(math.Ceil(0.5*params.val/sqrtTol)), 1)
	if math.IsNaN(params.val) || math.IsNaN(params.uscale) || math.IsInf(params.uscale, 0) {
		// Degenerate curves, such as those whose control points are
		// collinear, are straight lines.
		n = 1
	}
	step := 1.0 / float64(n)
	for i := 1; i < n; i++ {
		t := q.determineSubdivT(&params, float64(i)*step)
		if !yield(q.Interpolate(t)) {
			return false
		}
	}
	return yield(q.P2)
}

func (q QuadBez) winding(pt Point) int {
	ex, n := q.Extrema()
	ranges, rn := monotonicRanges(ex[:n])
	var w int
	for _, r := range ranges[:rn] {
		s := q.Subsegment(r[0], r[1])
		w += windingMonotonic(pt,
			[]float64{s.P0.X, s.P1.X, s.P2.X},
			[]float64{s.P0.Y, s.P1.Y, s.P2.Y},
			s.Interpolate)
	}
	return w
}

func (q QuadBez) appendPath(b []byte) []byte {
	return appendCommand(b, 'Q', q.P1.X, q.P1.Y, q.P2.X, q.P2.Y)
}

func (q QuadBez) String() string {
	return curveString(q)
}

package geom

import (
	"math"
	"sort"
)

// CubicBez is a cubic Bézier curve.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Interpolate evaluates the curve at u using de Casteljau's algorithm.
func (c CubicBez) Interpolate(u float64) Point {
	a := c.P0.Lerp(c.P1, u)
	b := c.P1.Lerp(c.P2, u)
	d := c.P2.Lerp(c.P3, u)
	ab := a.Lerp(b, u)
	bd := b.Lerp(d, u)
	return ab.Lerp(bd, u)
}

// Split splits the curve at u with one step of de Casteljau's algorithm. Both
// halves share the point Interpolate(u), and the tangents at the split point
// are collinear.
func (c CubicBez) Split(u float64) (CubicBez, CubicBez) {
	a := c.P0.Lerp(c.P1, u)
	b := c.P1.Lerp(c.P2, u)
	d := c.P2.Lerp(c.P3, u)
	ab := a.Lerp(b, u)
	bd := b.Lerp(d, u)
	pm := ab.Lerp(bd, u)
	return CubicBez{c.P0, a, ab, pm}, CubicBez{pm, bd, d, c.P3}
}

func (c CubicBez) SplitCurve(u float64) (Curve, Curve) {
	return c.Split(u)
}

// Subsegment returns the part of the curve between t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Interpolate(t0)
	p3 := c.Interpolate(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Interpolate(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Interpolate(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Differentiate returns the derivative of the curve, a quadratic whose points
// are to be interpreted as vectors.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

func (c CubicBez) ReverseCurve() Curve {
	return c.Reverse()
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

// Extrema returns the parameters, in increasing order, at which the curve
// reaches an extremum in x or y. Only extrema in the open interval (0, 1)
// are reported.
func (c CubicBez) Extrema() ([maxExtrema]float64, int) {
	var out [maxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// BoundingBox returns the tight bounding box of the curve.
func (c CubicBez) BoundingBox() Box {
	b := BoxFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		b = b.UnionPoint(c.Interpolate(t))
	}
	return b
}

func (c CubicBez) XMin() float64 { return c.BoundingBox().X0 }
func (c CubicBez) YMin() float64 { return c.BoundingBox().Y0 }
func (c CubicBez) XMax() float64 { return c.BoundingBox().X1 }
func (c CubicBez) YMax() float64 { return c.BoundingBox().Y1 }

func (c CubicBez) isShape() {}

func (c CubicBez) Contains(s Shape) bool   { return contains(c, s) }
func (c CubicBez) Intersects(s Shape) bool { return intersects(c, s) }

func (c CubicBez) Transform(f Transformer) Shape {
	return CubicBez{
		P0: f.TransformPoint(c.P0),
		P1: f.TransformPoint(c.P1),
		P2: f.TransformPoint(c.P2),
		P3: f.TransformPoint(c.P3),
	}
}

// cubicToQuad is one quadratic of the approximation computed by
// [CubicBez.quadratics], covering the parameter range [t0, t1] of the cubic.
type cubicToQuad struct {
	t0, t1 float64
	q      QuadBez
}

// quadratics approximates the cubic with quadratic Béziers within accuracy.
// It always yields at least one quadratic. The quadratics aren't G1
// continuous in general.
func (c CubicBez) quadratics(accuracy float64, yield func(cubicToQuad) bool) bool {
	// The maximum error, as a vector from the cubic to the best approximating
	// quadratic, is proportional to the third derivative, which is constant
	// across the segment. Thus, the error scales down as the third power of
	// the number of subdivisions, and we subdivide t evenly.

	// This magic number is the square of 36 / sqrt(3).
	// See: https://web.archive.org/web/20210108052742/http://caffeineowl.com/graphics/2d/vectorial/cubic2quad01.html
	maxHypot2 := 432.0 * accuracy * accuracy
	p1x2 := Vec2(c.P1).Mul(3).Sub(Vec2(c.P0))
	p2x2 := Vec2(c.P2).Mul(3).Sub(Vec2(c.P3))
	err := p2x2.Sub(p1x2).Hypot2()
	n := 1
	if f := math.Ceil(math.Sqrt(math.Cbrt(err / maxHypot2))); f > 1 && f < maxQuadratics {
		n = int(f)
	} else if f >= maxQuadratics {
		n = maxQuadratics
	}

	for i := range n {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		seg := c.Subsegment(t0, t1)
		p1x2 := Vec2(seg.P1).Mul(3).Sub(Vec2(seg.P0))
		p2x2 := Vec2(seg.P2).Mul(3).Sub(Vec2(seg.P3))
		q := QuadBez{seg.P0, Point(p1x2.Add(p2x2).Mul(1.0 / 4.0)), seg.P3}
		if !yield(cubicToQuad{t0, t1, q}) {
			return false
		}
	}
	return true
}

// maxQuadratics bounds the number of quadratics a cubic is approximated
// with.
const maxQuadratics = 1000

// Nearest finds the point on the curve nearest to pt, returning the squared
// distance and its parameter. The cubic is approximated by quadratics within
// [DefaultAccuracy], whose nearest points are found analytically.
func (c CubicBez) Nearest(pt Point) (distSq, t float64) {
	best := math.Inf(1)
	c.quadratics(DefaultAccuracy, func(qq cubicToQuad) bool {
		qDistSq, qT := qq.q.Nearest(pt)
		if qDistSq < best {
			t = qq.t0 + qT*(qq.t1-qq.t0)
			best = qDistSq
		}
		return true
	})
	return best, t
}

// IntersectSegment returns the points at which the curve crosses s. See
// [QuadBez.IntersectSegment].
func (c CubicBez) IntersectSegment(s Segment) ([3]LineIntersection, int) {
	const epsilon = 1e-9
	p0 := s.P0
	dx := s.P1.X - p0.X
	dy := s.P1.Y - p0.Y
	var ret [3]LineIntersection
	var retN int
	if dx == 0 && dy == 0 {
		if distSq, t := c.Nearest(p0); distSq <= onSegmentEpsilon*onSegmentEpsilon {
			ret[0] = LineIntersection{0, t}
			retN++
		}
		return ret, retN
	}

	px0, px1, px2, px3 := cubicBezCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	py0, py1, py2, py3 := cubicBezCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	c0 := dy*(px0-p0.X) - dx*(py0-p0.Y)
	c1 := dy*px1 - dx*py1
	c2 := dy*px2 - dx*py2
	c3 := dy*px3 - dx*py3
	invlen2 := 1.0 / (dx*dx + dy*dy)
	ts, n := SolveCubic(c0, c1, c2, c3)
	for _, t := range ts[:n] {
		if t >= -epsilon && t <= 1+epsilon {
			x := px0 + t*px1 + t*t*px2 + t*t*t*px3
			y := py0 + t*py1 + t*t*py2 + t*t*t*py3
			u := ((x-p0.X)*dx + (y-p0.Y)*dy) * invlen2
			if u >= 0.0 && u <= 1.0 {
				ret[retN] = LineIntersection{u, t}
				retN++
			}
		}
	}
	return ret, retN
}

// cubicBezCoefficients returns polynomial coefficients given cubic Bézier
// coordinates.
func cubicBezCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3.0*x1 - 3.0*x0
	p2 := 3.0*x2 - 6.0*x1 + 3.0*x0
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}

// Inflections returns the parameters of the curve's inflection points within
// (0, 1).
func (c CubicBez) Inflections() ([2]float64, int) {
	a := c.P1.Sub(c.P0)
	b := c.P2.Sub(c.P1).Sub(a)
	d := c.P3.Sub(c.P0).Sub(c.P2.Sub(c.P1).Mul(3))
	nums, n := SolveQuadratic(a.Cross(b), a.Cross(d), b.Cross(d))
	var out [2]float64
	var outN int
	for _, t := range nums[:n] {
		if t > 0 && t < 1 {
			out[outN] = t
			outN++
		}
	}
	return out, outN
}

func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

func (c CubicBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := c.P1.Sub(c.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := c.P2.Sub(c.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = c.P3.Sub(c.P0)
		}
	}
	d23 := c.P3.Sub(c.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := c.P3.Sub(c.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = c.P3.Sub(c.P0)
		}
	}
	return d0, d1
}

// flatten approximates the cubic by quadratics, then flattens those,
// distributing subdivisions by the quadratics' estimated flattening cost.
func (c CubicBez) flatten(tol float64, yield func(Point) bool) bool {
	// Proportion of tolerance budget that goes to cubic to quadratic
	// conversion.
	const toQuadTol = 0.1

	type quadParams struct {
		q      QuadBez
		params flattenParams
	}
	sqrtRemainTol := math.Sqrt(tol) * math.Sqrt(1.0-toQuadTol)
	var quads []quadParams
	sum := 0.0
	c.quadratics(tol*toQuadTol, func(qq cubicToQuad) bool {
		params := qq.q.estimateSubdiv(sqrtRemainTol)
		if math.IsNaN(params.val) {
			params.val = 0
		}
		sum += params.val
		quads = append(quads, quadParams{qq.q, params})
		return true
	})
	n := max(int(math.Ceil(0.5*sum/sqrtRemainTol)), 1)

	// Output the points of subdivisions that fall within each quadratic.
	step := sum / float64(n)
	i := 1
	valSum := 0.0
	for _, qp := range quads {
		if i == n {
			break
		}
		target := float64(i) * step
		recipVal := 1.0 / qp.params.val
		for target < valSum+qp.params.val {
			u := (target - valSum) * recipVal
			t := qp.q.determineSubdivT(&qp.params, u)
			if !yield(qp.q.Interpolate(t)) {
				return false
			}
			i++
			if i == n {
				break
			}
			target = float64(i) * step
		}
		valSum += qp.params.val
	}
	return yield(c.P3)
}

func (c CubicBez) winding(pt Point) int {
	ex, n := c.Extrema()
	ranges, rn := monotonicRanges(ex[:n])
	var w int
	for _, r := range ranges[:rn] {
		s := c.Subsegment(r[0], r[1])
		w += windingMonotonic(pt,
			[]float64{s.P0.X, s.P1.X, s.P2.X, s.P3.X},
			[]float64{s.P0.Y, s.P1.Y, s.P2.Y, s.P3.Y},
			s.Interpolate)
	}
	return w
}

func (c CubicBez) appendPath(b []byte) []byte {
	return appendCommand(b, 'C', c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
}

func (c CubicBez) String() string {
	return curveString(c)
}

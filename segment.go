package geom

// Segment is a straight line segment from P0 to P1. It is both a [Shape] and
// a [Curve].
type Segment struct {
	P0 Point
	P1 Point
}

// onSegmentEpsilon is the distance within which a point counts as lying on
// a segment.
const onSegmentEpsilon = 1e-9

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Hypot()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (s Segment) CrossingPoint(o Segment) (Point, bool) {
	ab := s.P1.Sub(s.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(s.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// IntersectSegment returns a point that s and o have in common.
//
// Crossing segments are found with the parametric cross-product test.
// Collinear segments intersect if their projections onto s overlap, in which
// case the first shared point along s is returned. Parallel segments that
// aren't collinear never intersect.
func (s Segment) IntersectSegment(o Segment) (Point, bool) {
	t, ok := s.intersect(o)
	if !ok {
		return Point{}, false
	}
	return s.Interpolate(t), true
}

// intersect returns the parameter on s of the first point that s shares with
// o.
func (s Segment) intersect(o Segment) (float64, bool) {
	r := s.P1.Sub(s.P0)
	d := o.P1.Sub(o.P0)
	qp := o.P0.Sub(s.P0)
	rxd := r.Cross(d)
	qpxr := qp.Cross(r)
	if rxd == 0 {
		if qpxr != 0 {
			// Parallel.
			return 0, false
		}
		rr := r.Hypot2()
		if rr == 0 {
			// s is a single point.
			return 0, o.containsPoint(s.P0)
		}
		t0 := qp.Dot(r) / rr
		t1 := t0 + d.Dot(r)/rr
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t1 < 0 || t0 > 1 {
			return 0, false
		}
		return max(t0, 0), true
	}
	t := qp.Cross(d) / rxd
	u := qpxr / rxd
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

// Nearest returns the squared distance from pt to the nearest point on the
// segment, and that point's parameter.
func (s Segment) Nearest(pt Point) (distSq, t float64) {
	d := s.P1.Sub(s.P0)
	dotp := d.Dot(pt.Sub(s.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(s.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(s.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(s.Interpolate(t)).Hypot2()
		return dist, t
	}
}

func (s Segment) containsPoint(pt Point) bool {
	distSq, _ := s.Nearest(pt)
	return distSq <= onSegmentEpsilon*onSegmentEpsilon
}

func (s Segment) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf()
}

func (s Segment) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}

func (s Segment) XMin() float64 { return min(s.P0.X, s.P1.X) }
func (s Segment) YMin() float64 { return min(s.P0.Y, s.P1.Y) }
func (s Segment) XMax() float64 { return max(s.P0.X, s.P1.X) }
func (s Segment) YMax() float64 { return max(s.P0.Y, s.P1.Y) }

func (s Segment) BoundingBox() Box {
	return BoxFromPoints(s.P0, s.P1)
}

func (s Segment) isShape() {}

func (s Segment) Contains(o Shape) bool   { return contains(s, o) }
func (s Segment) Intersects(o Shape) bool { return intersects(s, o) }

func (s Segment) Transform(f Transformer) Shape {
	return Segment{
		P0: f.TransformPoint(s.P0),
		P1: f.TransformPoint(s.P1),
	}
}

func (s Segment) Start() Point { return s.P0 }
func (s Segment) End() Point   { return s.P1 }

func (s Segment) Interpolate(t float64) Point {
	return s.P0.Lerp(s.P1, t)
}

// Split splits the segment at t.
func (s Segment) Split(t float64) (Segment, Segment) {
	p := s.Interpolate(t)
	return Segment{s.P0, p}, Segment{p, s.P1}
}

func (s Segment) SplitCurve(t float64) (Curve, Curve) {
	return s.Split(t)
}

func (s Segment) Reverse() Segment {
	return Segment{s.P1, s.P0}
}

func (s Segment) ReverseCurve() Curve {
	return s.Reverse()
}

func (s Segment) Tangents() (Vec2, Vec2) {
	d := s.P1.Sub(s.P0)
	return d, d
}

// Raise returns a cubic Bézier that exactly represents the segment.
func (s Segment) Raise() CubicBez {
	return CubicBez{s.P0, s.P0.Lerp(s.P1, 1.0/3.0), s.P0.Lerp(s.P1, 2.0/3.0), s.P1}
}

func (s Segment) SignedArea() float64 {
	return Vec2(s.P0).Cross(Vec2(s.P1)) * 0.5
}

func (s Segment) flatten(tol float64, yield func(Point) bool) bool {
	return yield(s.P1)
}

func (s Segment) winding(pt Point) int {
	return windingLine(s.P0, s.P1, pt)
}

func (s Segment) appendPath(b []byte) []byte {
	return appendCommand(b, 'L', s.P1.X, s.P1.Y)
}

func (s Segment) String() string {
	return curveString(s)
}

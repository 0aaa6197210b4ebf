package geom

import (
	"fmt"
	"math"
)

// EllipticArc is an arc of an ellipse in center parameterization. The ellipse
// has its center at Center and radii Radii.X and Radii.Y along axes rotated
// by Phi radians. The arc starts at angle A0 and sweeps Da radians; a
// positive Da turns from the positive x axis towards the positive y axis.
//
// The point at angle a is
//
//	Center + rotate(Phi) * (Radii.X·cos a, Radii.Y·sin a)
type EllipticArc struct {
	Center Point
	Radii  Vec2
	Phi    float64
	A0     float64
	Da     float64
}

// ArcEndpoints is the endpoint parameterization of an elliptic arc, as used
// by the A command of SVG paths. Phi is in radians.
type ArcEndpoints struct {
	P0, P1 Point
	Rx, Ry float64
	Phi    float64
	Large  bool
	Sweep  bool
}

// EndpointToCenter converts the endpoint parameterization of an arc from p0
// to p1 to center parameterization.
//
// Radii too small to span the endpoints are scaled up uniformly until they
// do. The large flag selects the solution that sweeps more than π, the sweep
// flag the solution with a positive Da. The result is false if either radius
// is zero or the endpoints coincide; an SVG renderer draws a straight line,
// respectively nothing, in those cases.
//
// See https://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes.
func EndpointToCenter(p0 Point, rx, ry, phi float64, large, sweep bool, p1 Point) (EllipticArc, bool) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || p0 == p1 {
		return EllipticArc{}, false
	}
	sinPhi, cosPhi := math.Sincos(phi)

	// Step 1: the midpoint-relative start point in the ellipse's frame.
	hx := (p0.X - p1.X) / 2
	hy := (p0.Y - p1.Y) / 2
	x1p := cosPhi*hx + sinPhi*hy
	y1p := -sinPhi*hx + cosPhi*hy

	// Correct out-of-range radii.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 2: the center in the ellipse's frame.
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	// Step 3: the center in user space.
	center := Point{
		X: cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2,
		Y: sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2,
	}

	// Step 4: the angles.
	u := Vec2{(x1p - cxp) / rx, (y1p - cyp) / ry}
	v := Vec2{(-x1p - cxp) / rx, (-y1p - cyp) / ry}
	a0 := u.Angle()
	da := math.Atan2(u.Cross(v), u.Dot(v))
	if !sweep && da > 0 {
		da -= 2 * math.Pi
	} else if sweep && da < 0 {
		da += 2 * math.Pi
	}

	return EllipticArc{
		Center: center,
		Radii:  Vec2{rx, ry},
		Phi:    phi,
		A0:     a0,
		Da:     da,
	}, true
}

// semicircleTolerance is how far the sweep of an arc may exceed π while still
// being treated as half a turn.
const semicircleTolerance = 1e-9

// ToEndpoint converts the arc to endpoint parameterization. It is the inverse
// of [EndpointToCenter] for arcs sweeping less than a full turn.
//
// Both arcs between the endpoints of a half turn are half turns, so either
// large-arc flag describes them. ToEndpoint clears the flag for arcs within
// semicircleTolerance of a half turn, no matter which flag the arc was built
// from.
func (a EllipticArc) ToEndpoint() ArcEndpoints {
	return ArcEndpoints{
		P0:    a.Start(),
		P1:    a.End(),
		Rx:    a.Radii.X,
		Ry:    a.Radii.Y,
		Phi:   a.Phi,
		Large: math.Abs(a.Da) > math.Pi+semicircleTolerance,
		Sweep: a.Da > 0,
	}
}

// point returns the point of the ellipse at angle th.
func (a EllipticArc) point(th float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.Phi, th))
}

// sampleEllipse returns the offset from an ellipse's center of the point at
// angle th.
func sampleEllipse(radii Vec2, phi, th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return rotateVec(Vec2{radii.X * cos, radii.Y * sin}, phi)
}

// rotateVec rotates v about the origin by th radians.
func rotateVec(v Vec2, th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// angle returns the angle of the arc at parameter u.
func (a EllipticArc) angle(u float64) float64 {
	return a.A0 + a.Da*u
}

func (a EllipticArc) Start() Point { return a.point(a.angle(0)) }
func (a EllipticArc) End() Point   { return a.point(a.angle(1)) }

// Interpolate returns the point at angle A0 + u·Da.
func (a EllipticArc) Interpolate(u float64) Point {
	return a.point(a.angle(u))
}

// Split splits the arc at u into two arcs of the same ellipse.
func (a EllipticArc) Split(u float64) (EllipticArc, EllipticArc) {
	l, r := a, a
	l.Da = a.Da * u
	r.A0 = a.angle(u)
	r.Da = a.Da - l.Da
	return l, r
}

func (a EllipticArc) SplitCurve(u float64) (Curve, Curve) {
	return a.Split(u)
}

func (a EllipticArc) Reverse() EllipticArc {
	a.A0, a.Da = a.A0+a.Da, -a.Da
	return a
}

func (a EllipticArc) ReverseCurve() Curve {
	return a.Reverse()
}

// Tangents returns the derivatives of the arc with respect to its parameter
// at the start and end.
func (a EllipticArc) Tangents() (Vec2, Vec2) {
	return a.derivative(a.angle(0)), a.derivative(a.angle(1))
}

func (a EllipticArc) derivative(th float64) Vec2 {
	return sampleEllipse(a.Radii, a.Phi, th+math.Pi/2).Mul(a.Da)
}

func (a EllipticArc) IsInf() bool {
	return a.Center.IsInf() || a.Radii.IsInf() ||
		math.IsInf(a.Phi, 0) || math.IsInf(a.A0, 0) || math.IsInf(a.Da, 0)
}

func (a EllipticArc) IsNaN() bool {
	return a.Center.IsNaN() || a.Radii.IsNaN() ||
		math.IsNaN(a.Phi) || math.IsNaN(a.A0) || math.IsNaN(a.Da)
}

// Extrema returns the parameters, in increasing order, at which the arc
// reaches an extremum in x or y. Only extrema in the open interval (0, 1)
// are reported; arcs sweeping more than a full turn report those of the
// first turn.
func (a EllipticArc) Extrema() ([maxExtrema]float64, int) {
	var out [maxExtrema]float64
	var outN int
	if a.Da == 0 {
		return out, 0
	}
	sinPhi, cosPhi := math.Sincos(a.Phi)
	// dx/dθ = 0 and dy/dθ = 0 each have one solution per half turn.
	bases := [2]float64{
		math.Atan2(-a.Radii.Y*sinPhi, a.Radii.X*cosPhi),
		math.Atan2(a.Radii.Y*cosPhi, a.Radii.X*sinPhi),
	}
	for _, base := range bases {
		// Normalize the base angle into [A0, A0+π) in the direction of the
		// sweep.
		k := math.Floor((a.A0 - base) / math.Pi)
		th := base + (k+1)*math.Pi
		if a.Da < 0 {
			th -= math.Pi
		}
		for range 2 {
			u := (th - a.A0) / a.Da
			if u > 0 && u < 1 && outN < maxExtrema {
				out[outN] = u
				outN++
			}
			th += math.Copysign(math.Pi, a.Da)
		}
	}
	s := out[:outN]
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
	return out, outN
}

// BoundingBox returns the tight bounding box of the arc, computed from the
// analytic extrema of the ellipse.
func (a EllipticArc) BoundingBox() Box {
	b := BoxFromPoints(a.Start(), a.End())
	if math.Abs(a.Da) >= 2*math.Pi {
		rx := math.Hypot(a.Radii.X*math.Cos(a.Phi), a.Radii.Y*math.Sin(a.Phi))
		ry := math.Hypot(a.Radii.X*math.Sin(a.Phi), a.Radii.Y*math.Cos(a.Phi))
		return Box{a.Center.X - rx, a.Center.Y - ry, a.Center.X + rx, a.Center.Y + ry}
	}
	ex, n := a.Extrema()
	for _, u := range ex[:n] {
		b = b.UnionPoint(a.Interpolate(u))
	}
	return b
}

func (a EllipticArc) XMin() float64 { return a.BoundingBox().X0 }
func (a EllipticArc) YMin() float64 { return a.BoundingBox().Y0 }
func (a EllipticArc) XMax() float64 { return a.BoundingBox().X1 }
func (a EllipticArc) YMax() float64 { return a.BoundingBox().Y1 }

func (a EllipticArc) isShape() {}

func (a EllipticArc) Contains(s Shape) bool   { return contains(a, s) }
func (a EllipticArc) Intersects(s Shape) bool { return intersects(a, s) }

// Transform implements [Shape]. The center is mapped through f and the
// ellipse's axis vectors are mapped through f's behavior at the center. A
// transform that flips orientation negates the arc's angles.
//
// The result is exact for affine transforms.
func (a EllipticArc) Transform(f Transformer) Shape {
	center := f.TransformPoint(a.Center)
	fx := f.TransformPoint(a.Center.Translate(rotateVec(Vec2{a.Radii.X, 0}, a.Phi))).Sub(center)
	fy := f.TransformPoint(a.Center.Translate(rotateVec(Vec2{0, a.Radii.Y}, a.Phi))).Sub(center)
	out := EllipticArc{Center: center}

	if dot := fx.Dot(fy); math.Abs(dot) <= 1e-12*fx.Hypot()*fy.Hypot() {
		// The mapped axes are still perpendicular, and remain the principal
		// axes.
		out.Radii = Vec2{fx.Hypot(), fy.Hypot()}
		out.Phi = fx.Angle()
		out.A0, out.Da = a.A0, a.Da
		if fx.Cross(fy) < 0 {
			out.A0, out.Da = -a.A0, -a.Da
		}
		return out
	}

	// Decompose M = [fx fy] as rotate(φ) · scale(sx, sy) · rotate(θ).
	m00, m01, m10, m11 := fx.X, fy.X, fx.Y, fy.Y
	e := (m00 + m11) / 2
	ff := (m00 - m11) / 2
	g := (m10 + m01) / 2
	h := (m10 - m01) / 2
	q := math.Hypot(e, h)
	r := math.Hypot(ff, g)
	sx, sy := q+r, q-r
	a1 := math.Atan2(g, ff)
	a2 := math.Atan2(h, e)
	theta := (a2 - a1) / 2
	out.Phi = (a2 + a1) / 2
	out.A0, out.Da = a.A0+theta, a.Da
	if sy < 0 {
		sy = -sy
		out.A0, out.Da = -out.A0, -out.Da
	}
	out.Radii = Vec2{sx, sy}
	return out
}

// Cubics approximates the arc with cubic Béziers, each spanning at most a
// quarter turn.
func (a EllipticArc) Cubics() []CubicBez {
	n := max(int(math.Ceil(math.Abs(a.Da)/(math.Pi/2)-1e-9)), 1)
	out := make([]CubicBez, 0, n)
	step := a.Da / float64(n)
	armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*step)), a.Da)
	th0 := a.angle(0)
	p0 := a.point(th0)
	for i := range n {
		th1 := a.angle(float64(i+1) / float64(n))
		p3 := a.point(th1)
		p1 := p0.Translate(sampleEllipse(a.Radii, a.Phi, th0+math.Pi/2).Mul(armLen))
		p2 := p3.Translate(sampleEllipse(a.Radii, a.Phi, th1+math.Pi/2).Mul(-armLen))
		out = append(out, CubicBez{p0, p1, p2, p3})
		th0, p0 = th1, p3
	}
	return out
}

// Nearest returns the squared distance from pt to the nearest point on the
// arc and an approximation of that point's parameter.
func (a EllipticArc) Nearest(pt Point) (distSq, t float64) {
	cubics := a.Cubics()
	distSq = math.Inf(1)
	for i, c := range cubics {
		d, ct := c.Nearest(pt)
		if d < distSq {
			distSq = d
			t = (float64(i) + ct) / float64(len(cubics))
		}
	}
	return distSq, t
}

func (a EllipticArc) flatten(tol float64, yield func(Point) bool) bool {
	for _, c := range a.Cubics() {
		if !c.flatten(tol, yield) {
			return false
		}
	}
	return true
}

func (a EllipticArc) winding(pt Point) int {
	var w int
	for _, c := range a.Cubics() {
		w += c.winding(pt)
	}
	return w
}

// appendPath emits one A command per part of the arc, splitting arcs of a
// full turn or more, whose endpoints would otherwise coincide.
func (a EllipticArc) appendPath(b []byte) []byte {
	if math.Abs(a.Da) >= 2*math.Pi {
		l, r := a.Split(0.5)
		return r.appendPath(l.appendPath(b))
	}
	e := a.ToEndpoint()
	return appendCommand(b, 'A',
		e.Rx, e.Ry, e.Phi*180/math.Pi,
		flagValue(e.Large), flagValue(e.Sweep),
		e.P1.X, e.P1.Y)
}

func flagValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (a EllipticArc) String() string {
	return fmt.Sprintf("EllipticArc(%g, %g, %g, %g, %g, %g, %g)",
		a.Center.X, a.Center.Y, a.Radii.X, a.Radii.Y, a.Phi, a.A0, a.Da)
}

package geom

import (
	"math"
	"slices"
)

// SplineBuilder builds splines from pen movements, in the manner of the
// HTML canvas path API.
//
// Every drawing operation continues from the current point, the pen. If
// there is no current point, drawing operations first move to their start.
// The zero value is ready to use.
type SplineBuilder struct {
	curves   []Curve
	start    Point
	pen      Point
	hasPen   bool
	finished []Spline
}

// Pen returns the current point, or [Undefined] if there is none.
func (b *SplineBuilder) Pen() Point {
	if !b.hasPen {
		return Undefined()
	}
	return b.pen
}

// SubpathStart returns the start of the current subpath, or [Undefined] if
// there is no current point.
func (b *SplineBuilder) SubpathStart() Point {
	if !b.hasPen {
		return Undefined()
	}
	return b.start
}

// flush ends the current subpath. Empty subpaths are discarded.
func (b *SplineBuilder) flush(closed bool) {
	if len(b.curves) > 0 {
		b.finished = append(b.finished, newSpline(b.curves, closed))
		b.curves = nil
	}
}

// lastCurve returns the last curve of the current subpath.
func (b *SplineBuilder) lastCurve() (Curve, bool) {
	if len(b.curves) == 0 {
		return nil, false
	}
	return b.curves[len(b.curves)-1], true
}

func (b *SplineBuilder) ensurePen(pt Point) {
	if !b.hasPen {
		b.MoveTo(pt)
	}
}

func (b *SplineBuilder) add(c Curve) {
	b.curves = append(b.curves, c)
	b.pen = c.End()
}

// MoveTo starts a new subpath at pt, ending the current one.
func (b *SplineBuilder) MoveTo(pt Point) {
	b.flush(false)
	b.start = pt
	b.pen = pt
	b.hasPen = true
}

// LineTo draws a straight segment to pt. Without a current point, it only
// moves to pt.
func (b *SplineBuilder) LineTo(pt Point) {
	if !b.hasPen {
		b.MoveTo(pt)
		return
	}
	b.add(Segment{b.pen, pt})
}

// QuadraticCurveTo draws a quadratic Bézier with control point c to pt.
func (b *SplineBuilder) QuadraticCurveTo(c, pt Point) {
	b.ensurePen(c)
	b.add(QuadBez{b.pen, c, pt})
}

// BezierCurveTo draws a cubic Bézier with control points c1 and c2 to pt.
func (b *SplineBuilder) BezierCurveTo(c1, c2, pt Point) {
	b.ensurePen(c1)
	b.add(CubicBez{b.pen, c1, c2, pt})
}

// SmoothQuadraticCurveTo draws a quadratic Bézier to pt whose control point
// is the reflection of the previous curve's control point about the pen. If
// the previous curve in the subpath isn't a quadratic Bézier, the control
// point is the pen itself.
func (b *SplineBuilder) SmoothQuadraticCurveTo(pt Point) {
	b.ensurePen(pt)
	c := b.pen
	if q, ok := b.lastCurve(); ok {
		if q, ok := q.(QuadBez); ok {
			c = b.pen.Translate(b.pen.Sub(q.P1))
		}
	}
	b.add(QuadBez{b.pen, c, pt})
}

// SmoothBezierCurveTo draws a cubic Bézier to pt whose first control point
// is the reflection of the previous curve's second control point about the
// pen. If the previous curve in the subpath isn't a cubic Bézier, the first
// control point is the pen itself.
func (b *SplineBuilder) SmoothBezierCurveTo(c2, pt Point) {
	b.ensurePen(c2)
	c1 := b.pen
	if c, ok := b.lastCurve(); ok {
		if c, ok := c.(CubicBez); ok {
			c1 = b.pen.Translate(b.pen.Sub(c.P2))
		}
	}
	b.add(CubicBez{b.pen, c1, c2, pt})
}

// EllipticArcTo draws an elliptic arc to pt, in the endpoint
// parameterization of [EndpointToCenter]. Arcs with a zero radius degrade to
// a straight segment; arcs ending at the pen draw nothing.
func (b *SplineBuilder) EllipticArcTo(rx, ry, phi float64, large, sweep bool, pt Point) {
	b.ensurePen(pt)
	if pt == b.pen {
		return
	}
	arc, ok := EndpointToCenter(b.pen, rx, ry, phi, large, sweep, pt)
	if !ok {
		b.LineTo(pt)
		return
	}
	b.add(arc)
}

// ArcTo draws a circular arc of radius r that is tangent to the line from
// the pen to p1 and to the line from p1 to p2, connected to the pen by a
// straight segment. If the points are collinear or r is zero, it draws a
// straight segment to p1.
func (b *SplineBuilder) ArcTo(p1, p2 Point, r float64) {
	b.ensurePen(p1)
	r = math.Abs(r)
	p0 := b.pen
	d1 := p1.Sub(p0)
	d2 := p2.Sub(p1)
	turn := d1.Cross(d2)
	if r == 0 || turn == 0 || d1.Hypot2() == 0 || d2.Hypot2() == 0 {
		b.LineTo(p1)
		return
	}

	// The center lies on both lines offset by r towards the inside of the
	// turn.
	side := math.Copysign(1, turn)
	n1 := d1.Normalize().Turn90().Mul(side * r)
	n2 := d2.Normalize().Turn90().Mul(side * r)
	l1 := Segment{p0.Translate(n1), p1.Translate(n1)}
	l2 := Segment{p1.Translate(n2), p2.Translate(n2)}
	center, ok := l1.CrossingPoint(l2)
	if !ok {
		b.LineTo(p1)
		return
	}
	t1 := center.Translate(n1.Negate())
	t2 := center.Translate(n2.Negate())
	if t1 != b.pen {
		b.LineTo(t1)
	}
	a0 := t1.Sub(center).Angle()
	da := normalizeAngle(t2.Sub(center).Angle() - a0)
	b.add(EllipticArc{
		Center: center,
		Radii:  Vec2{r, r},
		A0:     a0,
		Da:     da,
	})
}

// normalizeAngle maps th into (-π, π].
func normalizeAngle(th float64) float64 {
	th = math.Remainder(th, 2*math.Pi)
	if th <= -math.Pi {
		th += 2 * math.Pi
	}
	return th
}

// canvasSweep returns the signed sweep from a0 to a1, clockwise in a y-down
// coordinate system unless ccw is set, following the canvas arc rules: a
// sweep of a full turn or more draws the full ellipse.
func canvasSweep(a0, a1 float64, ccw bool) float64 {
	if !ccw {
		if a1-a0 >= 2*math.Pi {
			return 2 * math.Pi
		}
		da := math.Mod(a1-a0, 2*math.Pi)
		if da < 0 {
			da += 2 * math.Pi
		}
		return da
	}
	if a0-a1 >= 2*math.Pi {
		return -2 * math.Pi
	}
	da := math.Mod(a0-a1, 2*math.Pi)
	if da < 0 {
		da += 2 * math.Pi
	}
	return -da
}

// Arc draws a circular arc around center from angle a0 to angle a1,
// connected to the pen by a straight segment.
func (b *SplineBuilder) Arc(center Point, r, a0, a1 float64, ccw bool) {
	b.Ellipse(center, r, r, 0, a0, a1, ccw)
}

// Ellipse draws an elliptic arc with radii rx and ry, rotated by phi, from
// angle a0 to angle a1, connected to the pen by a straight segment.
func (b *SplineBuilder) Ellipse(center Point, rx, ry, phi, a0, a1 float64, ccw bool) {
	arc := EllipticArc{
		Center: center,
		Radii:  Vec2{math.Abs(rx), math.Abs(ry)},
		Phi:    phi,
		A0:     a0,
		Da:     canvasSweep(a0, a1, ccw),
	}
	start := arc.Start()
	if !b.hasPen {
		b.MoveTo(start)
	} else if b.pen != start {
		b.LineTo(start)
	}
	if arc.Da == 0 {
		return
	}
	b.add(arc)
}

// Rect adds a closed rectangular subpath with corner (x, y) and the given
// width and height.
func (b *SplineBuilder) Rect(x, y, w, h float64) {
	b.MoveTo(Pt(x, y))
	b.LineTo(Pt(x+w, y))
	b.LineTo(Pt(x+w, y+h))
	b.LineTo(Pt(x, y+h))
	b.ClosePath()
}

// ClosePath closes the current subpath, adding a segment back to its start
// if the pen is elsewhere. The pen moves to the start of the subpath, where
// the next subpath begins. Closing an empty subpath does nothing.
func (b *SplineBuilder) ClosePath() {
	if len(b.curves) == 0 {
		return
	}
	if b.pen != b.start {
		b.LineTo(b.start)
	}
	b.flush(true)
	b.pen = b.start
}

// Build returns the latest subpath: the one in progress if it has curves,
// otherwise the last completed one.
func (b *SplineBuilder) Build() Spline {
	if len(b.curves) > 0 {
		return newSpline(slices.Clone(b.curves), false)
	}
	if len(b.finished) > 0 {
		return b.finished[len(b.finished)-1]
	}
	return newSpline(nil, false)
}

// PathBuilder builds paths from pen movements. Each MoveTo starts a new
// spline. The zero value is ready to use.
type PathBuilder struct {
	SplineBuilder
}

// Build returns the path of all subpaths drawn so far.
func (b *PathBuilder) Build() Path {
	splines := slices.Clone(b.finished)
	if len(b.curves) > 0 {
		splines = append(splines, newSpline(slices.Clone(b.curves), false))
	}
	return newPath(splines)
}

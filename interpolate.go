package geom

import (
	"errors"
	"fmt"
)

// ErrNotInterpolatable is returned when interpolating between values that
// don't have the same structure, such as splines of different lengths.
var ErrNotInterpolatable = errors.New("geom: values are not interpolatable")

// The interpolation functions blend two values component-wise. For u = 0
// they return a and for u = 1 they return b, exactly; other values of u,
// including ones outside [0, 1], extrapolate linearly.

func InterpolateVec2(a, b Vec2, u float64) Vec2 { return a.Lerp(b, u) }

func InterpolatePoint(a, b Point, u float64) Point { return a.Lerp(b, u) }

func InterpolateBox(a, b Box, u float64) Box {
	return Box{
		X0: lerp(a.X0, b.X0, u),
		Y0: lerp(a.Y0, b.Y0, u),
		X1: lerp(a.X1, b.X1, u),
		Y1: lerp(a.Y1, b.Y1, u),
	}
}

func InterpolateCircle(a, b Circle, u float64) Circle {
	return Circle{
		Center: a.Center.Lerp(b.Center, u),
		Radius: lerp(a.Radius, b.Radius, u),
	}
}

func InterpolateSegment(a, b Segment, u float64) Segment {
	return Segment{a.P0.Lerp(b.P0, u), a.P1.Lerp(b.P1, u)}
}

func InterpolateQuadBez(a, b QuadBez, u float64) QuadBez {
	return QuadBez{a.P0.Lerp(b.P0, u), a.P1.Lerp(b.P1, u), a.P2.Lerp(b.P2, u)}
}

func InterpolateCubicBez(a, b CubicBez, u float64) CubicBez {
	return CubicBez{a.P0.Lerp(b.P0, u), a.P1.Lerp(b.P1, u), a.P2.Lerp(b.P2, u), a.P3.Lerp(b.P3, u)}
}

// InterpolateEllipticArc interpolates the center parameterization of two
// arcs.
func InterpolateEllipticArc(a, b EllipticArc, u float64) EllipticArc {
	return EllipticArc{
		Center: a.Center.Lerp(b.Center, u),
		Radii:  a.Radii.Lerp(b.Radii, u),
		Phi:    lerp(a.Phi, b.Phi, u),
		A0:     lerp(a.A0, b.A0, u),
		Da:     lerp(a.Da, b.Da, u),
	}
}

// InterpolateCurve interpolates two curves. Curves of the same kind
// interpolate directly. Segments and Béziers of different degrees are
// raised to cubics first. Arcs only interpolate with arcs.
func InterpolateCurve(a, b Curve, u float64) (Curve, error) {
	switch a := a.(type) {
	case Segment:
		if b, ok := b.(Segment); ok {
			return InterpolateSegment(a, b, u), nil
		}
	case QuadBez:
		if b, ok := b.(QuadBez); ok {
			return InterpolateQuadBez(a, b, u), nil
		}
	case CubicBez:
		if b, ok := b.(CubicBez); ok {
			return InterpolateCubicBez(a, b, u), nil
		}
	case EllipticArc:
		if b, ok := b.(EllipticArc); ok {
			return InterpolateEllipticArc(a, b, u), nil
		}
		return nil, fmt.Errorf("arc and %T: %w", b, ErrNotInterpolatable)
	}
	ca, ok1 := asCubic(a)
	cb, ok2 := asCubic(b)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("%T and %T: %w", a, b, ErrNotInterpolatable)
	}
	return InterpolateCubicBez(ca, cb, u), nil
}

func asCubic(c Curve) (CubicBez, bool) {
	switch c := c.(type) {
	case Segment:
		return c.Raise(), true
	case QuadBez:
		return c.Raise(), true
	case CubicBez:
		return c, true
	default:
		return CubicBez{}, false
	}
}

// InterpolateSpline interpolates two splines curve by curve. The splines must
// have the same number of curves and agree on being closed.
func InterpolateSpline(a, b Spline, u float64) (Spline, error) {
	if len(a.curves) != len(b.curves) {
		return Spline{}, fmt.Errorf("splines of %d and %d curves: %w", len(a.curves), len(b.curves), ErrNotInterpolatable)
	}
	if a.closed != b.closed {
		return Spline{}, fmt.Errorf("open and closed spline: %w", ErrNotInterpolatable)
	}
	switch u {
	case 0:
		return a, nil
	case 1:
		return b, nil
	}
	out := make([]Curve, len(a.curves))
	for i := range a.curves {
		c, err := InterpolateCurve(a.curves[i], b.curves[i], u)
		if err != nil {
			return Spline{}, fmt.Errorf("curve %d: %w", i, err)
		}
		out[i] = c
	}
	return newSpline(out, a.closed), nil
}

// InterpolatePath interpolates two paths spline by spline.
func InterpolatePath(a, b Path, u float64) (Path, error) {
	if len(a.splines) != len(b.splines) {
		return Path{}, fmt.Errorf("paths of %d and %d splines: %w", len(a.splines), len(b.splines), ErrNotInterpolatable)
	}
	switch u {
	case 0:
		return a, nil
	case 1:
		return b, nil
	}
	out := make([]Spline, len(a.splines))
	for i := range a.splines {
		s, err := InterpolateSpline(a.splines[i], b.splines[i], u)
		if err != nil {
			return Path{}, fmt.Errorf("spline %d: %w", i, err)
		}
		out[i] = s
	}
	return newPath(out), nil
}

package geom

import (
	"errors"
	"testing"
)

func TestInterpolateBoundaries(t *testing.T) {
	// Values chosen so that a + (b-a)*1 isn't b in floating point.
	a := Box{0.1, 0.2, 0.3, 0.7}
	b := Box{1e17, -0.3, 0.9, 1.1}
	diff(t, a, InterpolateBox(a, b, 0))
	diff(t, b, InterpolateBox(a, b, 1))

	c0 := Circle{Pt(0.1, 0.2), 0.3}
	c1 := Circle{Pt(1e17, 3), 0.7}
	diff(t, c0, InterpolateCircle(c0, c1, 0))
	diff(t, c1, InterpolateCircle(c0, c1, 1))

	q0 := QuadBez{Pt(0.1, 0), Pt(1, 1), Pt(2, 0.3)}
	q1 := QuadBez{Pt(1e17, 5), Pt(-1, 0.7), Pt(0.9, 0)}
	diff(t, q0, InterpolateQuadBez(q0, q1, 0))
	diff(t, q1, InterpolateQuadBez(q0, q1, 1))
}

func TestInterpolateMidpoint(t *testing.T) {
	diff(t, Pt(5, 10), InterpolatePoint(Pt(0, 0), Pt(10, 20), 0.5))
	diff(t, Vec(1, 1), InterpolateVec2(Vec(0, 0), Vec(2, 2), 0.5))
	diff(t, Circle{Pt(5, 5), 2}, InterpolateCircle(Circle{Pt(0, 0), 1}, Circle{Pt(10, 10), 3}, 0.5))
	diff(t, Segment{Pt(1, 1), Pt(3, 3)}, InterpolateSegment(Segment{Pt(0, 0), Pt(2, 2)}, Segment{Pt(2, 2), Pt(4, 4)}, 0.5))
	diff(t, Box{-1, -1, 1, 1}, InterpolateBox(Box{0, 0, 0, 0}, Box{-2, -2, 2, 2}, 0.5))

	arc := InterpolateEllipticArc(
		EllipticArc{Center: Pt(0, 0), Radii: Vec(1, 1), A0: 0, Da: 1},
		EllipticArc{Center: Pt(2, 0), Radii: Vec(3, 1), A0: 1, Da: 3},
		0.5)
	diff(t, EllipticArc{Center: Pt(1, 0), Radii: Vec(2, 1), A0: 0.5, Da: 2}, arc)
}

func TestInterpolateExtrapolates(t *testing.T) {
	diff(t, Pt(20, 0), InterpolatePoint(Pt(0, 0), Pt(10, 0), 2))
	diff(t, Pt(-10, 0), InterpolatePoint(Pt(0, 0), Pt(10, 0), -1))
}

func TestInterpolateCurve(t *testing.T) {
	seg := Segment{Pt(0, 0), Pt(3, 0)}
	quad := QuadBez{Pt(0, 0), Pt(1.5, 3), Pt(3, 0)}

	got, err := InterpolateCurve(seg, quad, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := got.(CubicBez)
	if !ok {
		t.Fatalf("got %T, want a CubicBez", got)
	}
	want := InterpolateCubicBez(seg.Raise(), quad.Raise(), 0.5)
	diff(t, want, c)

	got, err = InterpolateCurve(seg, Segment{Pt(1, 1), Pt(4, 1)}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Segment{Pt(0.5, 0.5), Pt(3.5, 0.5)}, got)

	arc := EllipticArc{Center: Pt(0, 0), Radii: Vec(1, 1), Da: 1}
	if _, err := InterpolateCurve(arc, seg, 0.5); !errors.Is(err, ErrNotInterpolatable) {
		t.Errorf("got error %v, want ErrNotInterpolatable", err)
	}
	if _, err := InterpolateCurve(seg, arc, 0.5); !errors.Is(err, ErrNotInterpolatable) {
		t.Errorf("got error %v, want ErrNotInterpolatable", err)
	}
}

func TestInterpolatePath(t *testing.T) {
	a := mustParsePath(t, "M0,0L10,0L10,10Z")
	b := mustParsePath(t, "M0,0L20,0L20,20Z")

	mid, err := InterpolatePath(a, b, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "M0,0L15,0L15,15Z", mid.PathString())

	for _, u := range []float64{0, 1} {
		got, err := InterpolatePath(a, b, u)
		if err != nil {
			t.Fatal(err)
		}
		want := a
		if u == 1 {
			want = b
		}
		if !got.Equal(want) {
			t.Errorf("InterpolatePath at %v = %s, want %s", u, got, want)
		}
	}
}

func TestInterpolatePathMixedCurves(t *testing.T) {
	a := mustParsePath(t, "M0,0L10,0")
	b := mustParsePath(t, "M0,0Q5,10,10,0")
	mid, err := InterpolatePath(a, b, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := mid.Spline(0).Curve(0).(CubicBez); !ok {
		t.Errorf("got %T, want a CubicBez", mid.Spline(0).Curve(0))
	}
	assertNear(t, mid.Spline(0).End(), Pt(10, 0), 1e-12)
}

func TestInterpolateNotInterpolatable(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"M0,0L10,0", "M0,0L10,0L10,10"},
		{"M0,0L10,0L10,10", "M0,0L10,0L10,10Z"},
		{"M0,0L10,0", "M0,0L10,0M5,5L6,6"},
		{"M0,0A5,5,0,0,1,10,0", "M0,0L10,0"},
	}
	for _, tt := range tests {
		_, err := InterpolatePath(mustParsePath(t, tt.a), mustParsePath(t, tt.b), 0.5)
		if !errors.Is(err, ErrNotInterpolatable) {
			t.Errorf("interpolating %q and %q: got error %v, want ErrNotInterpolatable", tt.a, tt.b, err)
		}
	}
}

package geom

import (
	"math"
	"testing"
)

func TestSplineBuilderLines(t *testing.T) {
	var b SplineBuilder
	if b.Pen().IsDefined() {
		t.Error("zero builder has a pen")
	}
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(10, 0))
	b.LineTo(Pt(10, 10))
	diff(t, Pt(10, 10), b.Pen())
	diff(t, Pt(0, 0), b.SubpathStart())

	s := b.Build()
	diff(t, "M0,0L10,0L10,10", s.PathString())
	if s.Closed() {
		t.Error("spline is closed")
	}
}

func TestSplineBuilderImplicitMove(t *testing.T) {
	var b SplineBuilder
	b.LineTo(Pt(5, 5))
	b.LineTo(Pt(10, 5))
	diff(t, "M5,5L10,5", b.Build().PathString())
}

func TestSplineBuilderClosePath(t *testing.T) {
	var b SplineBuilder
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(10, 0))
	b.LineTo(Pt(10, 10))
	b.ClosePath()
	diff(t, Pt(0, 0), b.Pen())

	s := b.Build()
	if !s.Closed() {
		t.Fatal("spline isn't closed")
	}
	if s.Len() != 3 {
		t.Errorf("got %d curves, want 3", s.Len())
	}
	diff(t, "M0,0L10,0L10,10Z", s.PathString())

	// Closing again doesn't add anything.
	b.ClosePath()
	diff(t, "M0,0L10,0L10,10Z", b.Build().PathString())
}

func TestSplineBuilderCurves(t *testing.T) {
	var b SplineBuilder
	b.MoveTo(Pt(0, 0))
	b.QuadraticCurveTo(Pt(5, 10), Pt(10, 0))
	b.SmoothQuadraticCurveTo(Pt(20, 0))
	b.BezierCurveTo(Pt(20, 10), Pt(30, 10), Pt(30, 0))
	b.SmoothBezierCurveTo(Pt(40, -10), Pt(40, 0))
	diff(t, "M0,0Q5,10,10,0Q15,-10,20,0C20,10,30,10,30,0C30,-10,40,-10,40,0", b.Build().PathString())
}

func TestSplineBuilderSmoothWithoutPredecessor(t *testing.T) {
	var b SplineBuilder
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(10, 0))
	b.SmoothBezierCurveTo(Pt(20, 10), Pt(20, 0))
	b.SmoothQuadraticCurveTo(Pt(30, 0))
	want := []Curve{
		Segment{Pt(0, 0), Pt(10, 0)},
		CubicBez{Pt(10, 0), Pt(10, 0), Pt(20, 10), Pt(20, 0)},
		QuadBez{Pt(20, 0), Pt(20, 0), Pt(30, 0)},
	}
	diff(t, want, b.Build().Curves())
}

func TestSplineBuilderRect(t *testing.T) {
	var b SplineBuilder
	b.Rect(1, 2, 3, 4)
	s := b.Build()
	diff(t, "M1,2L4,2L4,6L1,6Z", s.PathString())
	diff(t, Box{1, 2, 4, 6}, s.BoundingBox())
	if !s.ContainsPoint(Pt(2, 3)) {
		t.Error("rectangle doesn't contain its center")
	}
}

func TestSplineBuilderArc(t *testing.T) {
	var b SplineBuilder
	b.Arc(Pt(0, 0), 10, 0, math.Pi/2, false)
	s := b.Build()
	if s.Len() != 1 {
		t.Fatalf("got %d curves, want 1", s.Len())
	}
	arc := s.Curve(0).(EllipticArc)
	assertNear(t, arc.Start(), Pt(10, 0), 1e-12)
	assertNear(t, arc.End(), Pt(0, 10), 1e-12)
	if !approxEqual(arc.Da, math.Pi/2, 1e-12) {
		t.Errorf("got sweep %v, want π/2", arc.Da)
	}

	// Counterclockwise takes the long way around.
	b = SplineBuilder{}
	b.Arc(Pt(0, 0), 10, 0, math.Pi/2, true)
	arc = b.Build().Curve(0).(EllipticArc)
	if !approxEqual(arc.Da, -3*math.Pi/2, 1e-12) {
		t.Errorf("got sweep %v, want -3π/2", arc.Da)
	}
}

func TestSplineBuilderArcConnects(t *testing.T) {
	var b SplineBuilder
	b.MoveTo(Pt(0, 0))
	b.Arc(Pt(20, 0), 10, math.Pi, 2*math.Pi, false)
	s := b.Build()
	if s.Len() != 2 {
		t.Fatalf("got %d curves, want 2", s.Len())
	}
	diff(t, Segment{Pt(0, 0), Pt(10, 0)}, s.Curve(0), cmpApprox)
	assertNear(t, s.End(), Pt(30, 0), 1e-9)
}

func TestCanvasSweep(t *testing.T) {
	tests := []struct {
		a0, a1 float64
		ccw    bool
		want   float64
	}{
		{0, math.Pi, false, math.Pi},
		{0, math.Pi, true, -math.Pi},
		{0, 3 * math.Pi, false, 2 * math.Pi},
		{0, -3 * math.Pi, true, -2 * math.Pi},
		{math.Pi, 0, false, math.Pi},
		{0, 0, false, 0},
	}
	for _, tt := range tests {
		if got := canvasSweep(tt.a0, tt.a1, tt.ccw); !approxEqual(got, tt.want, 1e-12) {
			t.Errorf("canvasSweep(%v, %v, %t) = %v, want %v", tt.a0, tt.a1, tt.ccw, got, tt.want)
		}
	}
}

func TestSplineBuilderEllipse(t *testing.T) {
	var b SplineBuilder
	b.Ellipse(Pt(0, 0), 20, 10, 0, 0, 2*math.Pi, false)
	s := b.Build()
	diff(t, Box{-20, -10, 20, 10}, s.BoundingBox(), cmpApprox)
}

func TestSplineBuilderArcTo(t *testing.T) {
	var b SplineBuilder
	b.MoveTo(Pt(0, 0))
	b.ArcTo(Pt(10, 0), Pt(10, 10), 5)
	s := b.Build()
	if s.Len() != 2 {
		t.Fatalf("got %d curves, want 2", s.Len())
	}
	diff(t, Segment{Pt(0, 0), Pt(5, 0)}, s.Curve(0), cmpApprox)
	arc := s.Curve(1).(EllipticArc)
	assertNear(t, arc.Center, Pt(5, 5), 1e-9)
	assertNear(t, arc.End(), Pt(10, 5), 1e-9)
	if !approxEqual(arc.Da, math.Pi/2, 1e-9) {
		t.Errorf("got sweep %v, want π/2", arc.Da)
	}
}

func TestSplineBuilderArcToCollinear(t *testing.T) {
	var b SplineBuilder
	b.MoveTo(Pt(0, 0))
	b.ArcTo(Pt(10, 0), Pt(20, 0), 5)
	diff(t, "M0,0L10,0", b.Build().PathString())
}

func TestSplineBuilderEllipticArcTo(t *testing.T) {
	var b SplineBuilder
	b.MoveTo(Pt(0, 0))
	b.EllipticArcTo(5, 5, 0, false, true, Pt(0, 0))
	if s := b.Build(); !s.IsEmpty() {
		t.Errorf("arc to the pen drew %s", s)
	}
	b.EllipticArcTo(0, 5, 0, false, true, Pt(10, 0))
	diff(t, "M0,0L10,0", b.Build().PathString())
}

func TestSplineBuilderBuildLatest(t *testing.T) {
	var b SplineBuilder
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(1, 0))
	b.MoveTo(Pt(5, 5))
	b.LineTo(Pt(6, 5))
	diff(t, "M5,5L6,5", b.Build().PathString())

	b.MoveTo(Pt(9, 9))
	diff(t, "M5,5L6,5", b.Build().PathString())
}

func TestPathBuilder(t *testing.T) {
	var b PathBuilder
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(1, 0))
	b.MoveTo(Pt(5, 5))
	b.MoveTo(Pt(6, 6))
	b.LineTo(Pt(7, 7))
	b.ClosePath()
	b.LineTo(Pt(8, 6))

	p := b.Build()
	if p.Len() != 3 {
		t.Fatalf("got %d splines, want 3", p.Len())
	}
	diff(t, "M0,0L1,0M6,6L7,7ZM6,6L8,6", p.PathString())

	// Building doesn't end the subpath in progress.
	b.LineTo(Pt(9, 9))
	diff(t, "M0,0L1,0M6,6L7,7ZM6,6L8,6L9,9", b.Build().PathString())
	diff(t, "M0,0L1,0M6,6L7,7ZM6,6L8,6", p.PathString())
}

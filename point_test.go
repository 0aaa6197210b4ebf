package geom

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(4, 2)), Pt(2, 1))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointLerpEndpoints(t *testing.T) {
	a := Pt(0.1, 0.7)
	b := Pt(3.3, -1.9)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("got %v at 0, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("got %v at 1, want %v", got, b)
	}
}

func TestPointUndefined(t *testing.T) {
	if Undefined().IsDefined() {
		t.Error("undefined point reports as defined")
	}
	if !Pt(1, 2).IsDefined() {
		t.Error("finite point reports as undefined")
	}
	if Pt(math.Inf(1), 0).IsDefined() {
		t.Error("infinite point reports as defined")
	}
}

func TestPointShape(t *testing.T) {
	p := Pt(3, 4)
	diff(t, Box{3, 4, 3, 4}, p.BoundingBox())
	if !p.Contains(Pt(3, 4)) {
		t.Error("point doesn't contain itself")
	}
	if p.Contains(Pt(3, 5)) {
		t.Error("point contains another point")
	}
	if !p.Intersects(Box{0, 0, 10, 10}) {
		t.Error("point doesn't intersect enclosing box")
	}
	diff(t, Pt(5, 6), Map(p, Translate(Vec(2, 2))))
}

func TestPointFixed(t *testing.T) {
	diff(t, fixed.Point26_6{X: 64, Y: -96}, Pt(1, -1.5).Fixed())

	got := Box{0.01, 0.01, 1.99, 1.99}.Fixed()
	want := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 0, Y: 0},
		Max: fixed.Point26_6{X: 128, Y: 128},
	}
	diff(t, want, got)
}

func TestFixedSaturates(t *testing.T) {
	const (
		maxF = fixed.Int26_6(math.MaxInt32)
		minF = fixed.Int26_6(math.MinInt32)
	)
	tests := []struct {
		pt   Point
		want fixed.Point26_6
	}{
		{Pt(1e30, -1e30), fixed.Point26_6{X: maxF, Y: minF}},
		{Pt(math.Inf(1), math.Inf(-1)), fixed.Point26_6{X: maxF, Y: minF}},
		{Pt(math.NaN(), 2), fixed.Point26_6{X: 0, Y: 128}},
		{Pt(33554431.984375, -33554432), fixed.Point26_6{X: maxF, Y: minF}},
		{Pt(33554432, -33554433), fixed.Point26_6{X: maxF, Y: minF}},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.pt.Fixed())
	}

	for _, b := range []Box{
		EmptyBox(),
		{1, 1, 0, 0},
		{math.NaN(), 0, 1, 1},
	} {
		diff(t, fixed.Rectangle26_6{}, b.Fixed())
	}

	got := Box{math.Inf(-1), -1, math.Inf(1), 1e300}.Fixed()
	want := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: minF, Y: -64},
		Max: fixed.Point26_6{X: maxF, Y: maxF},
	}
	diff(t, want, got)

	// A degenerate box isn't empty.
	got = Box{1, 2, 1, 2}.Fixed()
	want = fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 64, Y: 128},
		Max: fixed.Point26_6{X: 64, Y: 128},
	}
	diff(t, want, got)
}

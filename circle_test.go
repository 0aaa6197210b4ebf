package geom

import (
	"math"
	"testing"
)

func TestCircleArea(t *testing.T) {
	center := Pt(5, 5)
	c := Circle{center, 5}
	if a := c.Area(); !approxEqual(a, 25*math.Pi, 1e-7) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
	if w := c.Arc().winding(center); w != 1 {
		t.Errorf("got winding number %d, expected 1", w)
	}

	cNegRadius := Circle{center, -5}
	if a := cNegRadius.Area(); !approxEqual(a, 25*math.Pi, 1e-7) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
	diff(t, c.BoundingBox(), cNegRadius.BoundingBox())
}

func TestCircleIntersectsBox(t *testing.T) {
	c := Circle{Pt(0, 0), 5}
	tests := []struct {
		b    Box
		want bool
	}{
		{Box{10, 10, 20, 20}, false},
		{Box{3, 3, 20, 20}, true},
		{Box{4, 4, 20, 20}, false},
		{Box{-1, -1, 1, 1}, true},
		{Box{-10, -10, 10, 10}, true},
		{Box{5, -1, 6, 1}, true},
		{EmptyBox(), false},
	}
	for _, tt := range tests {
		if got := c.IntersectsBox(tt.b); got != tt.want {
			t.Errorf("%v.IntersectsBox(%v) = %t, want %t", c, tt.b, got, tt.want)
		}
		if !tt.b.IsEmpty() {
			if got := c.Intersects(tt.b); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %t, want %t", c, tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(c); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %t, want %t", tt.b, c, got, tt.want)
			}
		}
	}
}

func TestCircleIntersectsSegment(t *testing.T) {
	c := Circle{Pt(0, 0), 5}
	tests := []struct {
		s    Segment
		want bool
	}{
		{Segment{Pt(-10, 0), Pt(10, 0)}, true},
		{Segment{Pt(-10, 5), Pt(10, 5)}, true},
		{Segment{Pt(-10, 6), Pt(10, 6)}, false},
		{Segment{Pt(1, 1), Pt(2, 2)}, true},
		{Segment{Pt(6, 0), Pt(10, 0)}, false},
		{Segment{Pt(6, 6), Pt(6, 6)}, false},
	}
	for _, tt := range tests {
		if got := c.IntersectsSegment(tt.s); got != tt.want {
			t.Errorf("%v.IntersectsSegment(%v) = %t, want %t", c, tt.s, got, tt.want)
		}
	}
}

func TestCircleIntersectsCircle(t *testing.T) {
	c := Circle{Pt(0, 0), 5}
	if !c.IntersectsCircle(Circle{Pt(8, 0), 3}) {
		t.Error("touching circles don't intersect")
	}
	if c.IntersectsCircle(Circle{Pt(8, 0), 2.9}) {
		t.Error("separate circles intersect")
	}
	if !c.IntersectsCircle(Circle{Pt(8, 0), -3}) {
		t.Error("negative radius isn't treated as its magnitude")
	}
}

func TestCircleContains(t *testing.T) {
	c := Circle{Pt(0, 0), 5}
	if !c.Contains(Pt(3, 4)) {
		t.Error("circle doesn't contain point on its boundary")
	}
	if !c.Contains(Circle{Pt(1, 0), 4}) {
		t.Error("circle doesn't contain inner tangent circle")
	}
	if c.Contains(Circle{Pt(1, 0), 4.5}) {
		t.Error("circle contains overlapping circle")
	}
	if !c.Contains(Box{-3, -3, 3, 3}) {
		t.Error("circle doesn't contain inscribed box")
	}
	if c.Contains(Box{-4, -4, 4, 4}) {
		t.Error("circle contains box with corners outside")
	}
}

func TestCircleTransform(t *testing.T) {
	c := Circle{Pt(1, 2), 3}
	got := Map(c, Translate(Vec(1, 1)).Then(Scale(2, 2)))
	if !approxEqual(got.Radius, 6, 1e-12) {
		t.Errorf("got radius %v, want 6", got.Radius)
	}
	assertNear(t, got.Center, Pt(4, 6), 1e-12)

	got = Map(c, Rotate(1))
	if !approxEqual(got.Radius, 3, 1e-12) {
		t.Errorf("got radius %v, want 3", got.Radius)
	}
}

package geom

import (
	"math"
	"testing"
)

func TestBoxUnion(t *testing.T) {
	a := Box{0, 0, 10, 10}
	b := Box{20, 20, 30, 30}
	u := a.Union(b)
	diff(t, Box{0, 0, 30, 30}, u)
	if !u.Contains(a) || !u.Contains(b) {
		t.Errorf("%v doesn't contain both %v and %v", u, a, b)
	}
	diff(t, u, Union(a, b))
}

func TestBoxEmptyIsUnionIdentity(t *testing.T) {
	shapes := []Shape{
		Pt(1, 2),
		Box{-1, -2, 3, 4},
		Circle{Pt(5, 5), 2},
		Segment{Pt(0, 0), Pt(-3, 7)},
		QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)},
	}
	for _, s := range shapes {
		if got, want := EmptyBox().Union(s.BoundingBox()), s.BoundingBox(); got != want {
			t.Errorf("empty ∪ %v = %v, want %v", s, got, want)
		}
	}
	if !EmptyBox().IsEmpty() {
		t.Error("empty box isn't empty")
	}
}

func TestBoxUnionPoint(t *testing.T) {
	b := EmptyBox()
	for _, p := range []Point{Pt(3, -1), Pt(-2, 4), Pt(0, 0)} {
		b = b.UnionPoint(p)
	}
	diff(t, Box{-2, -1, 3, 4}, b)
}

func TestBoxIntersection(t *testing.T) {
	a := Box{0, 0, 10, 10}
	diff(t, Box{5, 5, 10, 10}, a.Intersection(Box{5, 5, 15, 15}))
	if got := a.Intersection(Box{20, 20, 30, 30}); got != EmptyBox() {
		t.Errorf("got %v, want the empty box", got)
	}
	// Touching boxes share an edge.
	diff(t, Box{10, 0, 10, 10}, a.Intersection(Box{10, 0, 20, 10}))
}

func TestBoxContainsPoint(t *testing.T) {
	b := Box{0, 0, 10, 10}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 0), true},
		{Pt(10, 10), true},
		{Pt(10, 5), true},
		{Pt(10.001, 5), false},
		{Pt(-1, 5), false},
		{Undefined(), false},
	}
	for _, tt := range tests {
		if got := b.ContainsPoint(tt.pt); got != tt.want {
			t.Errorf("%v.ContainsPoint(%v) = %t, want %t", b, tt.pt, got, tt.want)
		}
	}
}

func TestBoxIntersectSegment(t *testing.T) {
	b := Box{0, 0, 10, 10}
	tests := []struct {
		s    Segment
		want Point
		ok   bool
	}{
		{Segment{Pt(5, 5), Pt(20, 20)}, Pt(5, 5), true},
		{Segment{Pt(20, 20), Pt(5, 5)}, Pt(5, 5), true},
		{Segment{Pt(-5, 5), Pt(15, 5)}, Pt(0, 5), true},
		{Segment{Pt(15, 5), Pt(-5, 5)}, Pt(10, 5), true},
		{Segment{Pt(-5, 20), Pt(20, -5)}, Pt(5, 10), true},
		{Segment{Pt(11, 0), Pt(11, 10)}, Point{}, false},
	}
	for _, tt := range tests {
		got, ok := b.IntersectSegment(tt.s)
		if ok != tt.ok {
			t.Errorf("%v.IntersectSegment(%v): got ok = %t, want %t", b, tt.s, ok, tt.ok)
			continue
		}
		if ok {
			assertNear(t, got, tt.want, 1e-12)
		}
	}
}

func TestBoxMisc(t *testing.T) {
	b := Box{1, 2, 5, 10}
	diff(t, 4.0, b.Width())
	diff(t, 8.0, b.Height())
	diff(t, Pt(3, 6), b.Center())
	diff(t, Box{0, 0, 6, 12}, b.Inflate(1, 2))
	diff(t, Box{2, 3, 6, 11}, b.Translate(Vec(1, 1)))
	diff(t, Box{1, 2, 5, 10}, Box{5, 10, 1, 2}.Abs())
	diff(t, "Box(1, 2, 5, 10)", b.String())
	if !(Box{0, 0, math.Inf(1), 1}).IsInf() {
		t.Error("infinite box isn't infinite")
	}
}

func TestBoxContainsShapes(t *testing.T) {
	b := Box{0, 0, 10, 10}
	if !b.Contains(Circle{Pt(5, 5), 5}) {
		t.Error("box doesn't contain inscribed circle")
	}
	if b.Contains(Circle{Pt(5, 5), 5.1}) {
		t.Error("box contains larger circle")
	}
	if !b.Contains(Segment{Pt(0, 0), Pt(10, 10)}) {
		t.Error("box doesn't contain its diagonal")
	}
	if !b.Contains(NewGroup()) {
		t.Error("box doesn't contain the empty group")
	}
}

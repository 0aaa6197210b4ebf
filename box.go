package geom

import (
	"fmt"
	"math"
)

// Box is an axis-aligned box. X0 and Y0 are the minimum coordinates, X1 and
// Y1 the maximum ones; boxes built from arbitrary corners may violate that
// ordering, see [BoxFromPoints] and [Box.Abs].
type Box struct {
	X0, Y0, X1, Y1 float64
}

// EmptyBox returns the box (+∞, +∞, −∞, −∞), which encloses nothing. It is the
// identity of [Box.Union].
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{inf, inf, -inf, -inf}
}

// BoxFromPoints returns the box spanned by two opposite corners.
func BoxFromPoints(p0, p1 Point) Box {
	return Box{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// Abs returns a box with the same corners and ordered coordinates. The empty
// box is returned unchanged.
func (b Box) Abs() Box {
	if b == EmptyBox() {
		return b
	}
	return BoxFromPoints(Pt(b.X0, b.Y0), Pt(b.X1, b.Y1))
}

func (b Box) XMin() float64 { return b.X0 }
func (b Box) YMin() float64 { return b.Y0 }
func (b Box) XMax() float64 { return b.X1 }
func (b Box) YMax() float64 { return b.Y1 }

// BoundingBox implements [Shape].
func (b Box) BoundingBox() Box { return b }

func (b Box) isShape() {}

// IsEmpty reports whether the box encloses no points.
func (b Box) IsEmpty() bool {
	return !(b.X0 <= b.X1 && b.Y0 <= b.Y1)
}

// Width returns the width of the box. It is negative for boxes whose
// coordinates are not ordered.
func (b Box) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the box.
func (b Box) Height() float64 {
	return b.Y1 - b.Y0
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{
		X: 0.5 * (b.X0 + b.X1),
		Y: 0.5 * (b.Y0 + b.Y1),
	}
}

// Corners returns the four corners of the box, counter-clockwise in a y-up
// coordinate system, starting at (X0, Y0).
func (b Box) Corners() [4]Point {
	return [4]Point{
		{b.X0, b.Y0},
		{b.X1, b.Y0},
		{b.X1, b.Y1},
		{b.X0, b.Y1},
	}
}

// Edges returns the four sides of the box, in the order of [Box.Corners].
func (b Box) Edges() [4]Segment {
	c := b.Corners()
	return [4]Segment{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}

// ContainsPoint reports whether pt lies within the box or on its boundary.
func (b Box) ContainsPoint(pt Point) bool {
	return pt.X >= b.X0 &&
		pt.X <= b.X1 &&
		pt.Y >= b.Y0 &&
		pt.Y <= b.Y1
}

// Contains implements [Shape]. A box contains a shape if it contains the
// shape's bounding box, boundaries included.
func (b Box) Contains(s Shape) bool {
	return contains(b, s)
}

// Intersects implements [Shape].
func (b Box) Intersects(s Shape) bool {
	return intersects(b, s)
}

// Overlaps reports whether b and o have at least one point in common.
func (b Box) Overlaps(o Box) bool {
	return b.X0 <= o.X1 && o.X0 <= b.X1 && b.Y0 <= o.Y1 && o.Y0 <= b.Y1
}

// Union returns the smallest box enclosing b and o.
//
// Results are valid only if width and height are non-negative.
func (b Box) Union(o Box) Box {
	return Box{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// Starting from [EmptyBox], a succession of UnionPoint operations on a series
// of points yields their enclosing box.
func (b Box) UnionPoint(pt Point) Box {
	return Box{
		X0: min(b.X0, pt.X),
		Y0: min(b.Y0, pt.Y),
		X1: max(b.X1, pt.X),
		Y1: max(b.Y1, pt.Y),
	}
}

// Intersection returns the intersection of two boxes, or the empty box if
// they don't overlap.
func (b Box) Intersection(o Box) Box {
	r := Box{
		X0: max(b.X0, o.X0),
		Y0: max(b.Y0, o.Y0),
		X1: min(b.X1, o.X1),
		Y1: min(b.Y1, o.Y1),
	}
	if r.IsEmpty() {
		return EmptyBox()
	}
	return r
}

// Inflate expands a box by a constant amount in both directions.
func (b Box) Inflate(width, height float64) Box {
	return Box{
		X0: b.X0 - width,
		Y0: b.Y0 - height,
		X1: b.X1 + width,
		Y1: b.Y1 + height,
	}
}

func (b Box) Translate(v Vec2) Box {
	return Box{
		X0: b.X0 + v.X,
		Y0: b.Y0 + v.Y,
		X1: b.X1 + v.X,
		Y1: b.Y1 + v.Y,
	}
}

func (b Box) IsInf() bool {
	return math.IsInf(b.X0, 0) || math.IsInf(b.Y0, 0) || math.IsInf(b.X1, 0) || math.IsInf(b.Y1, 0)
}

func (b Box) IsNaN() bool {
	return math.IsNaN(b.X0) || math.IsNaN(b.Y0) || math.IsNaN(b.X1) || math.IsNaN(b.Y1)
}

// Transform implements [Shape]. The result is the bounding box of the four
// transformed corners. The empty box maps to itself.
func (b Box) Transform(f Transformer) Shape {
	if b.IsEmpty() {
		return b
	}
	out := EmptyBox()
	for _, c := range b.Corners() {
		out = out.UnionPoint(f.TransformPoint(c))
	}
	return out
}

// IntersectSegment returns a point that s and the box have in common. If an
// endpoint of s lies within the box, that endpoint is returned; otherwise it
// is the crossing with the box's boundary nearest to s.P0.
func (b Box) IntersectSegment(s Segment) (Point, bool) {
	if b.ContainsPoint(s.P0) {
		return s.P0, true
	}
	if b.ContainsPoint(s.P1) {
		return s.P1, true
	}
	best := math.Inf(1)
	for _, e := range b.Edges() {
		if t, ok := s.intersect(e); ok && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return Point{}, false
	}
	return s.Interpolate(best), true
}

func (b Box) String() string {
	return fmt.Sprintf("Box(%g, %g, %g, %g)", b.X0, b.Y0, b.X1, b.Y1)
}

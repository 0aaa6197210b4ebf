package geom

import (
	"fmt"
	"math"
)

// Circle is a disk. Its radius isn't validated; predicates compare squared
// distances with Radius*Radius, so a negative radius behaves like its
// magnitude.
type Circle struct {
	Center Point
	Radius float64
}

// ContainsPoint reports whether pt lies within the circle or on its
// boundary.
func (c Circle) ContainsPoint(pt Point) bool {
	return pt.DistanceSquared(c.Center) <= c.Radius*c.Radius
}

// IntersectsSegment reports whether s has a point within the circle.
func (c Circle) IntersectsSegment(s Segment) bool {
	if c.ContainsPoint(s.P0) || c.ContainsPoint(s.P1) {
		return true
	}
	d := s.P1.Sub(s.P0)
	l2 := d.Hypot2()
	if l2 == 0 {
		return false
	}
	// Both endpoints are outside, so only the foot of the perpendicular can
	// be inside.
	t := c.Center.Sub(s.P0).Dot(d) / l2
	if t < 0 || t > 1 {
		return false
	}
	return c.ContainsPoint(s.Interpolate(t))
}

// IntersectsBox reports whether the circle and b overlap.
func (c Circle) IntersectsBox(b Box) bool {
	if b.IsEmpty() {
		return false
	}
	nearest := Point{
		X: min(max(c.Center.X, b.X0), b.X1),
		Y: min(max(c.Center.Y, b.Y0), b.Y1),
	}
	return c.ContainsPoint(nearest)
}

// IntersectsCircle reports whether the circles overlap.
func (c Circle) IntersectsCircle(o Circle) bool {
	r := math.Abs(c.Radius) + math.Abs(o.Radius)
	return c.Center.DistanceSquared(o.Center) <= r*r
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) XMin() float64 { return c.Center.X - math.Abs(c.Radius) }
func (c Circle) YMin() float64 { return c.Center.Y - math.Abs(c.Radius) }
func (c Circle) XMax() float64 { return c.Center.X + math.Abs(c.Radius) }
func (c Circle) YMax() float64 { return c.Center.Y + math.Abs(c.Radius) }

func (c Circle) BoundingBox() Box {
	return Box{c.XMin(), c.YMin(), c.XMax(), c.YMax()}
}

func (c Circle) isShape() {}

func (c Circle) Contains(s Shape) bool   { return contains(c, s) }
func (c Circle) Intersects(s Shape) bool { return intersects(c, s) }

// Transform implements [Shape]. The center is mapped through f and the radius
// becomes the length of the mapped radius vector along the x axis, so under
// non-uniform scales the result only approximates the transformed shape.
func (c Circle) Transform(f Transformer) Shape {
	center := f.TransformPoint(c.Center)
	edge := f.TransformPoint(c.Center.Translate(Vec2{c.Radius, 0}))
	return Circle{
		Center: center,
		Radius: edge.Distance(center),
	}
}

// Arc returns the full circle as an elliptic arc starting at angle 0.
func (c Circle) Arc() EllipticArc {
	return EllipticArc{
		Center: c.Center,
		Radii:  Vec2{c.Radius, c.Radius},
		Da:     2 * math.Pi,
	}
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(%g, %g, %g)", c.Center.X, c.Center.Y, c.Radius)
}

package geom

import (
	"math"
)

// Containment and intersection are implemented once for all pairs of shapes.
// Pairs with a closed-form test use it; everything else reduces to testing
// the segments of one shape's flattened outline against the other shape.

// nearester is implemented by the curves.
type nearester interface {
	Nearest(pt Point) (distSq, t float64)
}

// onCurve reports whether pt lies on c, within FlattenTolerance.
func onCurve(c Curve, pt Point) bool {
	if !c.BoundingBox().Inflate(FlattenTolerance, FlattenTolerance).ContainsPoint(pt) {
		return false
	}
	if s, ok := c.(Segment); ok {
		return s.containsPoint(pt)
	}
	distSq, _ := c.(nearester).Nearest(pt)
	return distSq <= FlattenTolerance*FlattenTolerance
}

// isFilled reports whether s has an interior, as opposed to consisting only
// of its outline.
func isFilled(s Shape) bool {
	switch s := s.(type) {
	case Box, Circle:
		return true
	case Spline:
		return s.closed
	case Path:
		for _, sp := range s.splines {
			if sp.closed {
				return true
			}
		}
	}
	return false
}

// containsPoint reports whether pt lies within s.
func containsPoint(s Shape, pt Point) bool {
	switch s := s.(type) {
	case Point:
		return s == pt
	case Segment:
		return s.containsPoint(pt)
	case Box:
		return s.ContainsPoint(pt)
	case Circle:
		return s.ContainsPoint(pt)
	case QuadBez:
		return onCurve(s, pt)
	case CubicBez:
		return onCurve(s, pt)
	case EllipticArc:
		return onCurve(s, pt)
	case Spline:
		return s.ContainsPoint(pt)
	case Path:
		return s.ContainsPoint(pt)
	case Group:
		for _, c := range s.shapes {
			if containsPoint(c, pt) {
				return true
			}
		}
	}
	return false
}

// intersectsSegment reports whether s and seg have a point in common.
func intersectsSegment(s Shape, seg Segment) bool {
	if !s.BoundingBox().Inflate(FlattenTolerance, FlattenTolerance).Overlaps(seg.BoundingBox()) {
		return false
	}
	switch s := s.(type) {
	case Point:
		return seg.containsPoint(s)
	case Segment:
		_, ok := s.intersect(seg)
		return ok
	case Box:
		_, ok := s.IntersectSegment(seg)
		return ok
	case Circle:
		return s.IntersectsSegment(seg)
	case QuadBez:
		_, n := s.IntersectSegment(seg)
		return n > 0
	case CubicBez:
		_, n := s.IntersectSegment(seg)
		return n > 0
	case EllipticArc:
		for _, c := range s.Cubics() {
			if _, n := c.IntersectSegment(seg); n > 0 {
				return true
			}
		}
		return false
	case Spline, Path:
		if isFilled(s) && containsPoint(s, seg.P0) {
			return true
		}
		return !eachEdge(s, func(e Segment) bool {
			_, ok := e.intersect(seg)
			return !ok
		})
	case Group:
		for _, c := range s.shapes {
			if intersectsSegment(c, seg) {
				return true
			}
		}
	}
	return false
}

// eachEdge calls yield with the segments of the flattened outline of s,
// stopping early if yield returns false. Closed splines include their
// closing segment.
func eachEdge(s Shape, yield func(Segment) bool) bool {
	switch s := s.(type) {
	case Point:
		return yield(Segment{s, s})
	case Segment:
		return yield(s)
	case Box:
		if s.IsEmpty() {
			return true
		}
		for _, e := range s.Edges() {
			if !yield(e) {
				return false
			}
		}
		return true
	case Circle:
		return eachCurveEdge(s.Arc(), yield)
	case Curve:
		return eachCurveEdge(s, yield)
	case Spline:
		for _, c := range s.curves {
			if !eachCurveEdge(c, yield) {
				return false
			}
		}
		if s.closed && len(s.curves) > 0 {
			if start, end := s.Start(), s.End(); start != end {
				return yield(Segment{end, start})
			}
		}
		return true
	case Path:
		for _, sp := range s.splines {
			if !eachEdge(sp, yield) {
				return false
			}
		}
		return true
	case Group:
		for _, c := range s.shapes {
			if !eachEdge(c, yield) {
				return false
			}
		}
		return true
	}
	return true
}

func eachCurveEdge(c Curve, yield func(Segment) bool) bool {
	prev := c.Start()
	return c.flatten(FlattenTolerance, func(p Point) bool {
		e := Segment{prev, p}
		prev = p
		return yield(e)
	})
}

// eachVertex calls yield with the vertices of the flattened outline of s.
func eachVertex(s Shape, yield func(Point) bool) bool {
	switch s := s.(type) {
	case Point:
		return yield(s)
	case Group:
		for _, c := range s.shapes {
			if !eachVertex(c, yield) {
				return false
			}
		}
		return true
	}
	first := true
	return eachEdge(s, func(e Segment) bool {
		if first {
			first = false
			if !yield(e.P0) {
				return false
			}
		}
		return yield(e.P1)
	})
}

// anyPoint returns a point of s, if s isn't empty.
func anyPoint(s Shape) (Point, bool) {
	var out Point
	found := false
	eachVertex(s, func(p Point) bool {
		out, found = p, true
		return false
	})
	return out, found
}

// rank orders shapes by the cost of their outlines. [intersects] flattens the
// higher-ranked shape and tests its edges against the other.
func rank(s Shape) int {
	switch s.(type) {
	case Point:
		return 0
	case Segment:
		return 1
	case Box:
		return 2
	case Circle:
		return 3
	case QuadBez, CubicBez, EllipticArc:
		return 4
	case Spline:
		return 5
	case Path:
		return 6
	default:
		return 7
	}
}

// intersects reports whether a and b have at least one point in common.
func intersects(a, b Shape) bool {
	if !a.BoundingBox().Inflate(FlattenTolerance, FlattenTolerance).Overlaps(b.BoundingBox()) {
		return false
	}
	if rank(a) < rank(b) {
		a, b = b, a
	}
	switch a := a.(type) {
	case Group:
		for _, c := range a.shapes {
			if intersects(c, b) {
				return true
			}
		}
		return false
	case Box:
		switch b := b.(type) {
		case Box:
			return a.Overlaps(b)
		case Segment:
			return intersectsSegment(a, b)
		case Point:
			return a.ContainsPoint(b)
		}
	case Circle:
		switch b := b.(type) {
		case Circle:
			return a.IntersectsCircle(b)
		case Box:
			return a.IntersectsBox(b)
		case Segment:
			return a.IntersectsSegment(b)
		case Point:
			return a.ContainsPoint(b)
		}
	}
	switch b := b.(type) {
	case Point:
		return containsPoint(a, b)
	case Segment:
		return intersectsSegment(a, b)
	}

	// An edge of a meeting b covers crossing outlines as well as a lying
	// within a filled b. That leaves b lying within a filled a.
	hit := !eachEdge(a, func(e Segment) bool {
		return !intersectsSegment(b, e)
	})
	if hit {
		return true
	}
	if isFilled(a) {
		if p, ok := anyPoint(b); ok && containsPoint(a, p) {
			return true
		}
	}
	return false
}

// contains reports whether every point of b lies within a.
func contains(a, b Shape) bool {
	bb := b.BoundingBox()
	if bb == EmptyBox() {
		// Only empty composites have this bounding box.
		return true
	}
	ab := a.BoundingBox()
	if _, ok := a.(Box); ok {
		return ab.X0 <= bb.X0 && ab.Y0 <= bb.Y0 && bb.X1 <= ab.X1 && bb.Y1 <= ab.Y1
	}
	if !ab.Inflate(FlattenTolerance, FlattenTolerance).Overlaps(bb) {
		return false
	}

	switch a := a.(type) {
	case Point:
		return bb == a.BoundingBox()
	case Circle:
		switch b := b.(type) {
		case Point:
			return a.ContainsPoint(b)
		case Circle:
			r := a.Center.Distance(b.Center) + math.Abs(b.Radius)
			return r <= math.Abs(a.Radius)
		case QuadBez:
			if a.ContainsPoint(b.P0) && a.ContainsPoint(b.P1) && a.ContainsPoint(b.P2) {
				return true
			}
		case CubicBez:
			if a.ContainsPoint(b.P0) && a.ContainsPoint(b.P1) && a.ContainsPoint(b.P2) && a.ContainsPoint(b.P3) {
				return true
			}
		}
		// A disk is convex, so it contains b if it contains the vertices
		// of b's outline.
		return eachVertex(b, a.ContainsPoint)
	case Group:
		if g, ok := b.(Group); ok {
			for _, c := range g.shapes {
				if !contains(a, c) {
					return false
				}
			}
			return true
		}
		for _, c := range a.shapes {
			if contains(c, b) {
				return true
			}
		}
		return false
	}

	if !isFilled(a) {
		// Outlines contain only the shapes lying on them, which excludes
		// shapes with an interior.
		if isFilled(b) && bb.Width() > 0 && bb.Height() > 0 {
			return false
		}
		return eachVertex(b, func(p Point) bool { return containsPoint(a, p) })
	}

	// a is a closed spline or a path with closed splines. b lies within it
	// if all of b's vertices do and b's outline doesn't cross a's.
	if !eachVertex(b, func(p Point) bool { return containsPoint(a, p) }) {
		return false
	}
	return eachEdge(b, func(e Segment) bool {
		return eachEdge(a, func(o Segment) bool {
			return !crossesProperly(e, o)
		})
	})
}

// crossesProperly reports whether s and o cross at a single point interior
// to both.
func crossesProperly(s, o Segment) bool {
	d1 := orientation(o.P0, o.P1, s.P0)
	d2 := orientation(o.P0, o.P1, s.P1)
	d3 := orientation(s.P0, s.P1, o.P0)
	d4 := orientation(s.P0, s.P1, o.P1)
	return d1*d2 < 0 && d3*d4 < 0
}

// orientation returns the sign of the turn from a to b to c.
func orientation(a, b, c Point) int {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

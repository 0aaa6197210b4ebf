package geom

import (
	"fmt"
	"slices"
	"sync"
)

// Spline is a sequence of endpoint-contiguous curves, optionally closed by
// an implicit segment from its end back to its start.
//
// Splines are immutable. Their bounding box and path text are computed once,
// on first use, and can be read concurrently. Splines are usually built with
// a [SplineBuilder] or parsed with [ParsePath].
type Spline struct {
	curves []Curve
	closed bool

	// Memoized values; nil for the zero Spline, which computes them
	// directly.
	bounds func() Box
	text   func() string
}

// DiscontinuityError is returned when constructing a spline from curves that
// don't connect.
type DiscontinuityError struct {
	// Index is the index of the curve whose start differs from the end of
	// its predecessor.
	Index int
	End   Point
	Start Point
}

func (e *DiscontinuityError) Error() string {
	return fmt.Sprintf("curve %d starts at %v, not at the previous end %v", e.Index, e.Start, e.End)
}

// NewSpline returns a spline made of curves, which must be contiguous.
func NewSpline(curves []Curve, closed bool) (Spline, error) {
	for i := 1; i < len(curves); i++ {
		if end, start := curves[i-1].End(), curves[i].Start(); end != start {
			return Spline{}, &DiscontinuityError{Index: i, End: end, Start: start}
		}
	}
	return newSpline(slices.Clone(curves), closed), nil
}

// newSpline returns a spline that takes ownership of curves.
func newSpline(curves []Curve, closed bool) Spline {
	s := Spline{curves: curves, closed: closed}
	s.bounds = sync.OnceValue(s.computeBounds)
	s.text = sync.OnceValue(s.computeText)
	return s
}

// Curves returns a copy of the spline's curves.
func (s Spline) Curves() []Curve { return slices.Clone(s.curves) }

// Len returns the number of curves in the spline.
func (s Spline) Len() int { return len(s.curves) }

// Curve returns the i'th curve.
func (s Spline) Curve(i int) Curve { return s.curves[i] }

// Closed reports whether the spline is closed.
func (s Spline) Closed() bool { return s.closed }

// IsEmpty reports whether the spline has no curves.
func (s Spline) IsEmpty() bool { return len(s.curves) == 0 }

// Start returns the start of the first curve, or [Undefined] for an empty
// spline.
func (s Spline) Start() Point {
	if len(s.curves) == 0 {
		return Undefined()
	}
	return s.curves[0].Start()
}

// End returns the end of the last curve, or [Undefined] for an empty spline.
func (s Spline) End() Point {
	if len(s.curves) == 0 {
		return Undefined()
	}
	return s.curves[len(s.curves)-1].End()
}

// Equal reports whether s and o consist of identical curves and agree on
// being closed.
func (s Spline) Equal(o Spline) bool {
	return s.closed == o.closed && slices.Equal(s.curves, o.curves)
}

// Reverse returns the spline traversed in the opposite direction.
func (s Spline) Reverse() Spline {
	out := make([]Curve, len(s.curves))
	for i, c := range s.curves {
		out[len(out)-1-i] = c.ReverseCurve()
	}
	return newSpline(out, s.closed)
}

func (s Spline) computeBounds() Box {
	b := EmptyBox()
	for _, c := range s.curves {
		b = b.Union(c.BoundingBox())
	}
	return b
}

func (s Spline) computeText() string {
	return string(appendCurves(nil, s.curves, s.closed))
}

// BoundingBox returns the union of the bounding boxes of the spline's curves.
func (s Spline) BoundingBox() Box {
	if s.bounds == nil {
		return s.computeBounds()
	}
	return s.bounds()
}

func (s Spline) XMin() float64 { return s.BoundingBox().X0 }
func (s Spline) YMin() float64 { return s.BoundingBox().Y0 }
func (s Spline) XMax() float64 { return s.BoundingBox().X1 }
func (s Spline) YMax() float64 { return s.BoundingBox().Y1 }

func (s Spline) isShape() {}

func (s Spline) Contains(o Shape) bool   { return contains(s, o) }
func (s Spline) Intersects(o Shape) bool { return intersects(s, o) }

// ContainsPoint reports whether pt lies on the spline or, for closed splines,
// within it according to the nonzero winding rule.
func (s Spline) ContainsPoint(pt Point) bool {
	if s.closed && s.winding(pt) != 0 {
		return true
	}
	return s.onSpline(pt)
}

func (s Spline) onSpline(pt Point) bool {
	for _, c := range s.curves {
		if onCurve(c, pt) {
			return true
		}
	}
	if s.closed && len(s.curves) > 0 {
		return Segment{s.End(), s.Start()}.containsPoint(pt)
	}
	return false
}

// winding returns the winding number of pt with respect to the spline,
// treated as closed.
func (s Spline) winding(pt Point) int {
	var w int
	for _, c := range s.curves {
		w += c.winding(pt)
	}
	if len(s.curves) > 0 {
		if start, end := s.Start(), s.End(); start != end {
			w += windingLine(end, start, pt)
		}
	}
	return w
}

// Transform implements [Shape] by transforming each curve.
func (s Spline) Transform(f Transformer) Shape {
	out := make([]Curve, len(s.curves))
	for i, c := range s.curves {
		out[i] = c.Transform(f).(Curve)
	}
	return newSpline(out, s.closed)
}

// PathString returns the spline in path syntax, such as "M0,0L10,0L10,10Z".
func (s Spline) PathString() string {
	if s.text == nil {
		return s.computeText()
	}
	return s.text()
}

func (s Spline) String() string {
	return s.PathString()
}

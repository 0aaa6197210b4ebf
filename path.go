package geom

import (
	"slices"
	"strings"
	"sync"
)

// Path is a sequence of splines, which need not be connected. Like [Spline],
// it is immutable and memoizes its bounding box and path text.
type Path struct {
	splines []Spline

	bounds func() Box
	text   func() string
}

// NewPath returns a path made of the non-empty splines among splines.
func NewPath(splines ...Spline) Path {
	out := make([]Spline, 0, len(splines))
	for _, s := range splines {
		if !s.IsEmpty() {
			out = append(out, s)
		}
	}
	return newPath(out)
}

func newPath(splines []Spline) Path {
	p := Path{splines: splines}
	p.bounds = sync.OnceValue(p.computeBounds)
	p.text = sync.OnceValue(p.computeText)
	return p
}

// Splines returns a copy of the path's splines.
func (p Path) Splines() []Spline { return slices.Clone(p.splines) }

// Len returns the number of splines in the path.
func (p Path) Len() int { return len(p.splines) }

// Spline returns the i'th spline.
func (p Path) Spline(i int) Spline { return p.splines[i] }

// IsEmpty reports whether the path has no splines.
func (p Path) IsEmpty() bool { return len(p.splines) == 0 }

// Equal reports whether p and o consist of equal splines.
func (p Path) Equal(o Path) bool {
	return slices.EqualFunc(p.splines, o.splines, Spline.Equal)
}

func (p Path) computeBounds() Box {
	b := EmptyBox()
	for _, s := range p.splines {
		b = b.Union(s.BoundingBox())
	}
	return b
}

func (p Path) computeText() string {
	var b []byte
	for _, s := range p.splines {
		b = appendCurves(b, s.curves, s.closed)
	}
	return string(b)
}

func (p Path) BoundingBox() Box {
	if p.bounds == nil {
		return p.computeBounds()
	}
	return p.bounds()
}

func (p Path) XMin() float64 { return p.BoundingBox().X0 }
func (p Path) YMin() float64 { return p.BoundingBox().Y0 }
func (p Path) XMax() float64 { return p.BoundingBox().X1 }
func (p Path) YMax() float64 { return p.BoundingBox().Y1 }

func (p Path) isShape() {}

func (p Path) Contains(s Shape) bool   { return contains(p, s) }
func (p Path) Intersects(s Shape) bool { return intersects(p, s) }

// ContainsPoint reports whether pt lies on one of the path's splines or
// within the area enclosed by its closed splines, according to the nonzero
// winding rule. Open splines don't enclose any area.
func (p Path) ContainsPoint(pt Point) bool {
	var w int
	for _, s := range p.splines {
		if s.closed {
			w += s.winding(pt)
		}
	}
	if w != 0 {
		return true
	}
	for _, s := range p.splines {
		if s.onSpline(pt) {
			return true
		}
	}
	return false
}

func (p Path) Transform(f Transformer) Shape {
	out := make([]Spline, len(p.splines))
	for i, s := range p.splines {
		out[i] = s.Transform(f).(Spline)
	}
	return newPath(out)
}

// PathString returns the path in path syntax. It is the empty string for the
// empty path.
func (p Path) PathString() string {
	if p.text == nil {
		return p.computeText()
	}
	return p.text()
}

func (p Path) String() string {
	return p.PathString()
}

// MarshalText implements [encoding.TextMarshaler].
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.PathString()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. p is left unchanged
// on error.
func (p *Path) UnmarshalText(text []byte) error {
	v, err := ParsePath(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Group is a collection of shapes. It is immutable and memoizes its bounding
// box.
type Group struct {
	shapes []Shape
	bounds func() Box
}

// NewGroup returns a group of shapes.
func NewGroup(shapes ...Shape) Group {
	g := Group{shapes: slices.Clone(shapes)}
	g.bounds = sync.OnceValue(g.computeBounds)
	return g
}

// Shapes returns a copy of the group's shapes.
func (g Group) Shapes() []Shape { return slices.Clone(g.shapes) }

// Len returns the number of shapes in the group.
func (g Group) Len() int { return len(g.shapes) }

func (g Group) computeBounds() Box {
	b := EmptyBox()
	for _, s := range g.shapes {
		b = b.Union(s.BoundingBox())
	}
	return b
}

// BoundingBox returns the union of the bounding boxes of the group's
// shapes.
func (g Group) BoundingBox() Box {
	if g.bounds == nil {
		return g.computeBounds()
	}
	return g.bounds()
}

func (g Group) XMin() float64 { return g.BoundingBox().X0 }
func (g Group) YMin() float64 { return g.BoundingBox().Y0 }
func (g Group) XMax() float64 { return g.BoundingBox().X1 }
func (g Group) YMax() float64 { return g.BoundingBox().Y1 }

func (g Group) isShape() {}

func (g Group) Contains(s Shape) bool   { return contains(g, s) }
func (g Group) Intersects(s Shape) bool { return intersects(g, s) }

func (g Group) Transform(f Transformer) Shape {
	out := make([]Shape, len(g.shapes))
	for i, s := range g.shapes {
		out[i] = s.Transform(f)
	}
	return NewGroup(out...)
}

func (g Group) String() string {
	var sb strings.Builder
	sb.WriteString("Group(")
	for i, s := range g.shapes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteString(")")
	return sb.String()
}

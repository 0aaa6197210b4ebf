package geom

// DefaultAccuracy is a default value for methods that take an accuracy
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultAccuracy = 1e-6

// FlattenTolerance is the maximum distance between a curve and the polyline
// that stands in for it when testing curves for containment and intersection.
const FlattenTolerance = 1e-3

// Shape is implemented by all shapes in this package: [Point], [Segment],
// [Box], [Circle], [QuadBez], [CubicBez], [EllipticArc], [Spline], [Path] and
// [Group]. The set of shapes is closed.
type Shape interface {
	XMin() float64
	YMin() float64
	XMax() float64
	YMax() float64

	// BoundingBox returns the smallest axis-aligned box that encloses the
	// shape.
	BoundingBox() Box

	// Contains reports whether every point of s lies within the shape.
	// Boxes, circles and closed splines contain their interior; all other
	// shapes only contain the points lying on them.
	Contains(s Shape) bool

	// Intersects reports whether the shape and s have at least one point in
	// common.
	Intersects(s Shape) bool

	// Transform maps the shape through f. The result has the same concrete
	// type as the shape; use [Map] to avoid the type assertion.
	Transform(f Transformer) Shape

	String() string

	isShape()
}

// Curve is a shape parametrized over [0, 1]. The curves in this package are
// [Segment], [QuadBez], [CubicBez] and [EllipticArc].
type Curve interface {
	Shape

	Start() Point
	End() Point

	// Interpolate evaluates the curve at parameter u.
	Interpolate(u float64) Point

	// SplitCurve splits the curve at u into two curves of the same kind. The
	// end of the first and the start of the second are both Interpolate(u).
	SplitCurve(u float64) (Curve, Curve)

	// Tangents returns the tangent vectors at the start and end of the
	// curve.
	Tangents() (Vec2, Vec2)

	// ReverseCurve returns the curve traversed in the opposite direction.
	ReverseCurve() Curve

	// appendPath appends the path command that draws the curve, assuming the
	// pen is at its start.
	appendPath(b []byte) []byte

	// flatten calls yield with points approximating the curve within tol,
	// excluding the start point and ending with the end point.
	flatten(tol float64, yield func(Point) bool) bool

	// winding returns the winding number contribution of the curve for pt.
	winding(pt Point) int
}

var (
	_ Curve = Segment{}
	_ Curve = QuadBez{}
	_ Curve = CubicBez{}
	_ Curve = EllipticArc{}
	_ Shape = Point{}
	_ Shape = Box{}
	_ Shape = Circle{}
	_ Shape = Spline{}
	_ Shape = Path{}
	_ Shape = Group{}
)

// Transformer maps points. [Affine] implements it, as do the transforms of
// the transform package that don't depend on a unit basis.
type Transformer interface {
	TransformPoint(pt Point) Point
}

// TransformerFunc adapts a function to the [Transformer] interface.
type TransformerFunc func(Point) Point

func (f TransformerFunc) TransformPoint(pt Point) Point { return f(pt) }

// Map transforms s by f, keeping its concrete type.
func Map[S Shape](s S, f Transformer) S {
	return s.Transform(f).(S)
}

// Union returns the bounding box that encloses both a and b.
func Union(a, b Shape) Box {
	return a.BoundingBox().Union(b.BoundingBox())
}

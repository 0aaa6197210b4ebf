// Package geom provides value types for 2D geometry: points and vectors,
// boxes, circles, segments, Bézier curves, elliptic arcs, and the splines,
// paths and groups built from them. It was designed to serve the needs of
// styling and animation code, which parses geometry from text, transforms it,
// tests it for containment and intersection, and interpolates between values.
//
// All values are immutable. Operations that "modify" a value return a new one.
//
// # Shapes and curves
//
// [Shape] is implemented by every geometric value in this package. Shapes
// have a bounding box, can be tested against each other with Contains and
// Intersects, and can be mapped through a [Transformer] such as [Affine].
// The set of shapes is closed:
//   - [Point]
//   - [Segment]
//   - [Box]
//   - [Circle]
//   - [QuadBez]
//   - [CubicBez]
//   - [EllipticArc]
//   - [Spline]
//   - [Path]
//   - [Group]
//
// [Curve] describes the shapes that are parametrized over [0, 1]: segments,
// quadratic and cubic Béziers, and elliptic arcs. Curves can be evaluated,
// split and reversed. Splitting a curve at u produces two curves of the same
// kind that meet at the point the curve evaluates to at u.
//
// Containment and intersection are exact for points, segments, boxes and
// circles. Curves take part by being flattened to polylines within
// [FlattenTolerance]. Boxes, circles and closed splines contain their
// interior, using the nonzero winding rule; all other shapes only contain the
// points lying on them.
//
// # Elliptic arcs
//
// [EllipticArc] stores arcs in center parameterization: a center, radii, the
// rotation of the x radius, a start angle and a signed sweep. Path text uses
// the endpoint parameterization of SVG instead. [EndpointToCenter] and
// [EllipticArc.ToEndpoint] convert between the two.
//
// # Splines and paths
//
// A [Spline] is a sequence of curves, each starting where the previous one
// ends, optionally closed by an implicit segment back to its start. A [Path]
// is a sequence of splines that need not be connected. Both are usually built
// with a [SplineBuilder] or [PathBuilder], which provide drawing operations
// in the manner of the HTML canvas API, or parsed from path text with
// [ParsePath].
//
// Path text follows the SVG path data syntax. The text produced by
// [Path.PathString] is canonical: absolute commands, numbers separated by
// commas, and Z in place of a final segment that returns to the start of a
// closed spline.
//
// # Interpolation
//
// The Interpolate functions, such as [InterpolateCircle] and [InterpolatePath],
// blend two values for animation. They return their first argument at u = 0
// and their second at u = 1, exactly. Splines and paths only interpolate with
// values of the same structure; other pairs result in [ErrNotInterpolatable].
//
// # Coordinate system
//
// The y axis points down, as is common in 2D graphics. Positive angles rotate
// from the positive x axis towards the positive y axis, which appears
// clockwise on screen.
package geom

package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"

	"honnef.co/go/geom/parse"
)

// Affine describes an affine transform via coefficients.
//
// The coefficients (a, b, c, d, tx, ty) represent this augmented matrix:
//
//	| a c tx |
//	| b d ty |
//	| 0 0  1 |
//
// so that a point (x, y) maps to (a·x + c·y + tx, b·x + d·y + ty). This is
// the order of CSS and SVG's matrix(a, b, c, d, e, f). The idea is that
// (A * B) * v == A * (B * v).
type Affine struct {
	A, B, C, D, Tx, Ty float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-down coordinate
// system (as is common for graphics), it is a clockwise rotation, and
// in Y-up (traditional for math), it is anti-clockwise.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th radians
// about center.
//
// See [Rotate] for more info.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c).Multiply(Rotate(th)).Multiply(Translate(c.Negate()))
}

// Skew creates an affine transformation representing a skew by the angles x
// and y, in radians, as CSS's skew(x, y) does.
func Skew(x, y float64) Affine {
	return Affine{1, math.Tan(y), math.Tan(x), 1, 0, 0}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [6]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.A, aff.B, aff.C, aff.D, aff.Tx, aff.Ty}
}

// Multiply returns the composition aff ∘ o, the transform that applies o
// first and aff second.
func (aff Affine) Multiply(o Affine) Affine {
	return Affine{
		aff.A*o.A + aff.C*o.B,
		aff.B*o.A + aff.D*o.B,
		aff.A*o.C + aff.C*o.D,
		aff.B*o.C + aff.D*o.D,
		aff.A*o.Tx + aff.C*o.Ty + aff.Tx,
		aff.B*o.Tx + aff.D*o.Ty + aff.Ty,
	}
}

// Then returns the transform that applies aff first and o second.
//
// Equivalent to "o * aff"
func (aff Affine) Then(o Affine) Affine {
	return o.Multiply(aff)
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.A*aff.D - aff.B*aff.C
}

// NonInvertibleError is returned when inverting a transform whose
// determinant is too close to zero.
type NonInvertibleError struct {
	Det float64
}

func (e *NonInvertibleError) Error() string {
	return fmt.Sprintf("transform is not invertible (determinant %g)", e.Det)
}

// Invert computes the inverse transform. It fails with a *NonInvertibleError
// if the magnitude of the determinant is below the smallest positive float64.
func (aff Affine) Invert() (Affine, error) {
	det := aff.Determinant()
	if !(math.Abs(det) >= math.SmallestNonzeroFloat64) {
		return Affine{}, &NonInvertibleError{Det: det}
	}
	invDet := 1 / det
	return Affine{
		+invDet * aff.D,
		-invDet * aff.B,
		-invDet * aff.C,
		+invDet * aff.A,
		+invDet * (aff.C*aff.Ty - aff.D*aff.Tx),
		+invDet * (aff.B*aff.Tx - aff.A*aff.Ty),
	}, nil
}

// TransformPoint implements [Transformer].
func (aff Affine) TransformPoint(pt Point) Point {
	return Point{
		X: aff.A*pt.X + aff.C*pt.Y + aff.Tx,
		Y: aff.B*pt.X + aff.D*pt.Y + aff.Ty,
	}
}

// TransformVec applies the linear part of the transform to v, ignoring the
// translation.
func (aff Affine) TransformVec(v Vec2) Vec2 {
	return Vec2{
		X: aff.A*v.X + aff.C*v.Y,
		Y: aff.B*v.X + aff.D*v.Y,
	}
}

// IsIdentity reports whether aff is exactly the identity transform.
func (aff Affine) IsIdentity() bool {
	return aff == Identity
}

// EquivalentTo reports whether all coefficients of aff and o are within eps of
// each other.
func (aff Affine) EquivalentTo(o Affine, eps float64) bool {
	a, b := aff.Coefficients(), o.Coefficients()
	for i := range a {
		if !(math.Abs(a[i]-b[i]) <= eps) {
			return false
		}
	}
	return true
}

func (aff Affine) IsInf() bool {
	return math.IsInf(aff.A, 0) ||
		math.IsInf(aff.B, 0) ||
		math.IsInf(aff.C, 0) ||
		math.IsInf(aff.D, 0) ||
		math.IsInf(aff.Tx, 0) ||
		math.IsInf(aff.Ty, 0)
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.A) ||
		math.IsNaN(aff.B) ||
		math.IsNaN(aff.C) ||
		math.IsNaN(aff.D) ||
		math.IsNaN(aff.Tx) ||
		math.IsNaN(aff.Ty)
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.Tx,
		Y: aff.Ty,
	}
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(v Vec2) Affine {
	aff.Tx = v.X
	aff.Ty = v.Y
	return aff
}

// TransformBox computes the bounding box of a transformed box.
//
// If the transform is axis-aligned, then this bounding box is "tight", in other
// words the returned box is the transformed box.
func (aff Affine) TransformBox(b Box) Box {
	return b.Transform(aff).(Box)
}

// Aff3 returns the transform in the row-major layout of
// golang.org/x/image/math/f64, as used by golang.org/x/image/draw.
func (aff Affine) Aff3() f64.Aff3 {
	return f64.Aff3{
		aff.A, aff.C, aff.Tx,
		aff.B, aff.D, aff.Ty,
	}
}

// AffineFromAff3 is the inverse of [Affine.Aff3].
func AffineFromAff3(m f64.Aff3) Affine {
	return Affine{
		A: m[0], C: m[1], Tx: m[2],
		B: m[3], D: m[4], Ty: m[5],
	}
}

// String returns the transform in the form "matrix(a,b,c,d,tx,ty)".
func (aff Affine) String() string {
	return string(aff.AppendText(nil))
}

// AppendText appends the transform in the form "matrix(a,b,c,d,tx,ty)" to b.
func (aff Affine) AppendText(b []byte) []byte {
	b = append(b, "matrix("...)
	for i, v := range aff.Coefficients() {
		if i > 0 {
			b = append(b, ',')
		}
		b = parse.AppendNumber(b, v)
	}
	return append(b, ')')
}

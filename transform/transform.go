// Package transform implements transforms as written in stylesheets: typed
// values such as translations by lengths and rotations by angles, and lists
// of them, which can be resolved to an affine matrix, inverted, interpolated
// and converted to and from the text of CSS transform functions.
//
// Transforms involving relative lengths can only be resolved against a
// [units.Basis]. Transforms that never need one implement
// [geom.Transformer] directly.
package transform

import (
	"fmt"
	"math"

	"honnef.co/go/geom"
	"honnef.co/go/geom/parse"
	"honnef.co/go/geom/units"
)

// Transform is implemented by [Identity], [Translate], [Scale], [Rotate],
// [Skew], [Affine] and [List].
type Transform interface {
	// Apply maps pt, resolving lengths against basis.
	Apply(pt geom.Point, basis *units.Basis) (geom.Point, error)
	// Resolve returns the transform as an affine matrix. Relative lengths
	// are resolved against basis, which may be nil.
	Resolve(basis *units.Basis) (geom.Affine, error)
	// Inverse returns the transform that undoes this one. It fails with a
	// *geom.NonInvertibleError for singular transforms.
	Inverse() (Transform, error)
	// Conforms reports whether the transform and o have the same structure,
	// so that they can be interpolated component-wise.
	Conforms(o Transform) bool
	// String returns the canonical text of the transform.
	String() string

	appendText(b []byte) []byte
}

var (
	_ Transform = Identity{}
	_ Transform = Translate{}
	_ Transform = Scale{}
	_ Transform = Rotate{}
	_ Transform = Skew{}
	_ Transform = Affine{}
	_ Transform = List{}

	_ geom.Transformer = Identity{}
	_ geom.Transformer = Scale{}
	_ geom.Transformer = Rotate{}
	_ geom.Transformer = Skew{}
	_ geom.Transformer = Affine{}
)

// ToAffine resolves t without a basis.
func ToAffine(t Transform) (geom.Affine, error) {
	return t.Resolve(nil)
}

// Identity is the transform that maps every point to itself. Its text is
// "none".
type Identity struct{}

func (Identity) TransformPoint(pt geom.Point) geom.Point { return pt }

func (Identity) Apply(pt geom.Point, _ *units.Basis) (geom.Point, error) { return pt, nil }
func (Identity) Resolve(*units.Basis) (geom.Affine, error)               { return geom.Identity, nil }
func (Identity) Inverse() (Transform, error)                             { return Identity{}, nil }

func (Identity) Conforms(o Transform) bool {
	_, ok := o.(Identity)
	return ok
}

func (Identity) String() string             { return "none" }
func (Identity) appendText(b []byte) []byte { return append(b, "none"...) }

// Translate moves points by X horizontally and Y vertically.
type Translate struct {
	X, Y units.Length
}

func (t Translate) offset(basis *units.Basis) (geom.Vec2, error) {
	x, err := t.X.PxValue(basis)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("resolving %s: %w", t, err)
	}
	y, err := t.Y.PxValue(basis)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("resolving %s: %w", t, err)
	}
	return geom.Vec(x, y), nil
}

func (t Translate) Apply(pt geom.Point, basis *units.Basis) (geom.Point, error) {
	v, err := t.offset(basis)
	if err != nil {
		return geom.Point{}, err
	}
	return pt.Translate(v), nil
}

func (t Translate) Resolve(basis *units.Basis) (geom.Affine, error) {
	v, err := t.offset(basis)
	if err != nil {
		return geom.Affine{}, err
	}
	return geom.Translate(v), nil
}

func (t Translate) Inverse() (Transform, error) {
	return Translate{t.X.Negate(), t.Y.Negate()}, nil
}

func (t Translate) Conforms(o Transform) bool {
	_, ok := o.(Translate)
	return ok
}

func (t Translate) String() string { return string(t.appendText(nil)) }

func (t Translate) appendText(b []byte) []byte {
	b = append(b, "translate("...)
	b = t.X.AppendText(b)
	b = append(b, ',')
	b = t.Y.AppendText(b)
	return append(b, ')')
}

// Scale scales points by X horizontally and Y vertically.
type Scale struct {
	X, Y float64
}

func (s Scale) TransformPoint(pt geom.Point) geom.Point {
	return geom.Pt(pt.X*s.X, pt.Y*s.Y)
}

func (s Scale) Apply(pt geom.Point, _ *units.Basis) (geom.Point, error) {
	return s.TransformPoint(pt), nil
}

func (s Scale) Resolve(*units.Basis) (geom.Affine, error) { return geom.Scale(s.X, s.Y), nil }

func (s Scale) Inverse() (Transform, error) {
	if s.X == 0 || s.Y == 0 {
		return nil, &geom.NonInvertibleError{Det: s.X * s.Y}
	}
	return Scale{1 / s.X, 1 / s.Y}, nil
}

func (s Scale) Conforms(o Transform) bool {
	_, ok := o.(Scale)
	return ok
}

func (s Scale) String() string { return string(s.appendText(nil)) }

func (s Scale) appendText(b []byte) []byte {
	return appendFunc(b, "scale", s.X, s.Y)
}

// Rotate rotates points about the origin. Positive angles rotate the
// positive x axis towards the positive y axis.
type Rotate struct {
	Angle units.Angle
}

func (r Rotate) TransformPoint(pt geom.Point) geom.Point {
	sin, cos := math.Sincos(r.Angle.RadValue())
	return geom.Pt(cos*pt.X-sin*pt.Y, sin*pt.X+cos*pt.Y)
}

func (r Rotate) Apply(pt geom.Point, _ *units.Basis) (geom.Point, error) {
	return r.TransformPoint(pt), nil
}

func (r Rotate) Resolve(*units.Basis) (geom.Affine, error) {
	return geom.Rotate(r.Angle.RadValue()), nil
}

func (r Rotate) Inverse() (Transform, error) {
	return Rotate{r.Angle.Negate()}, nil
}

func (r Rotate) Conforms(o Transform) bool {
	_, ok := o.(Rotate)
	return ok
}

func (r Rotate) String() string { return string(r.appendText(nil)) }

func (r Rotate) appendText(b []byte) []byte {
	b = append(b, "rotate("...)
	b = r.Angle.AppendText(b)
	return append(b, ')')
}

// Skew shears points by the angle X along the x axis and by the angle Y
// along the y axis.
type Skew struct {
	X, Y units.Angle
}

func (s Skew) TransformPoint(pt geom.Point) geom.Point {
	tx, ty := math.Tan(s.X.RadValue()), math.Tan(s.Y.RadValue())
	return geom.Pt(pt.X+tx*pt.Y, ty*pt.X+pt.Y)
}

func (s Skew) Apply(pt geom.Point, _ *units.Basis) (geom.Point, error) {
	return s.TransformPoint(pt), nil
}

func (s Skew) Resolve(*units.Basis) (geom.Affine, error) {
	return geom.Skew(s.X.RadValue(), s.Y.RadValue()), nil
}

// Inverse implements [Transform]. Skews along a single axis invert to a skew;
// others invert to an [Affine].
func (s Skew) Inverse() (Transform, error) {
	if s.X.IsZero() || s.Y.IsZero() {
		return Skew{s.X.Negate(), s.Y.Negate()}, nil
	}
	aff, _ := s.Resolve(nil)
	inv, err := aff.Invert()
	if err != nil {
		return nil, err
	}
	return Affine(inv), nil
}

func (s Skew) Conforms(o Transform) bool {
	_, ok := o.(Skew)
	return ok
}

func (s Skew) String() string { return string(s.appendText(nil)) }

func (s Skew) appendText(b []byte) []byte {
	b = append(b, "skew("...)
	b = s.X.AppendText(b)
	b = append(b, ',')
	b = s.Y.AppendText(b)
	return append(b, ')')
}

// Affine is a transform given by its matrix. Its text is that of CSS's
// matrix function.
type Affine geom.Affine

func (a Affine) TransformPoint(pt geom.Point) geom.Point {
	return geom.Affine(a).TransformPoint(pt)
}

func (a Affine) Apply(pt geom.Point, _ *units.Basis) (geom.Point, error) {
	return a.TransformPoint(pt), nil
}

func (a Affine) Resolve(*units.Basis) (geom.Affine, error) { return geom.Affine(a), nil }

func (a Affine) Inverse() (Transform, error) {
	inv, err := geom.Affine(a).Invert()
	if err != nil {
		return nil, err
	}
	return Affine(inv), nil
}

func (a Affine) Conforms(o Transform) bool {
	_, ok := o.(Affine)
	return ok
}

func (a Affine) String() string             { return geom.Affine(a).String() }
func (a Affine) appendText(b []byte) []byte { return geom.Affine(a).AppendText(b) }

// List is a sequence of transforms. The first element is applied first, as
// in the text "translate(10px) rotate(45deg)", which translates points
// before rotating them. The empty list is the identity.
type List []Transform

func (l List) Apply(pt geom.Point, basis *units.Basis) (geom.Point, error) {
	for i, t := range l {
		var err error
		pt, err = t.Apply(pt, basis)
		if err != nil {
			return geom.Point{}, fmt.Errorf("transform %d: %w", i, err)
		}
	}
	return pt, nil
}

// Resolve implements [Transform]. The result is the product Mₙ···M₂M₁ of the
// elements' matrices.
func (l List) Resolve(basis *units.Basis) (geom.Affine, error) {
	out := geom.Identity
	for i, t := range l {
		m, err := t.Resolve(basis)
		if err != nil {
			return geom.Affine{}, fmt.Errorf("transform %d: %w", i, err)
		}
		out = out.Then(m)
	}
	return out, nil
}

// Inverse implements [Transform]. It returns the inverses of the elements in
// reverse order.
func (l List) Inverse() (Transform, error) {
	out := make(List, len(l))
	for i, t := range l {
		inv, err := t.Inverse()
		if err != nil {
			return nil, fmt.Errorf("transform %d: %w", i, err)
		}
		out[len(l)-1-i] = inv
	}
	return out, nil
}

// Conforms implements [Transform]. Lists conform if they have the same length
// and their elements conform pairwise.
func (l List) Conforms(o Transform) bool {
	ol, ok := o.(List)
	if !ok || len(l) != len(ol) {
		return false
	}
	for i := range l {
		if !l[i].Conforms(ol[i]) {
			return false
		}
	}
	return true
}

func (l List) String() string { return string(l.appendText(nil)) }

// appendText writes the elements separated by spaces, leaving out
// identities.
func (l List) appendText(b []byte) []byte {
	start := len(b)
	for _, t := range l {
		if _, ok := t.(Identity); ok {
			continue
		}
		if len(b) > start {
			b = append(b, ' ')
		}
		b = t.appendText(b)
	}
	if len(b) == start {
		b = append(b, "none"...)
	}
	return b
}

// Then returns the list that applies ts in order. Nested lists are
// flattened and identities dropped.
func Then(ts ...Transform) List {
	var out List
	for _, t := range ts {
		switch t := t.(type) {
		case List:
			out = append(out, Then(t...)...)
		case Identity:
		default:
			out = append(out, t)
		}
	}
	return out
}

// Equal reports whether a and b are the same variant with identical
// components. Unlike comparing resolved matrices, translate(1px) and
// translate(1) aren't equal.
//
// Lists are compared the way [Then] would build them: nested lists are
// flattened and identities left out. A list of one transform equals that
// transform, and an empty list equals [Identity]. This matches the text of
// lists, so Parse(t.String()) equals t for every t.
func Equal(a, b Transform) bool {
	a, b = normalize(a), normalize(b)
	switch a := a.(type) {
	case Translate:
		b, ok := b.(Translate)
		return ok && a.X.Equal(b.X) && a.Y.Equal(b.Y)
	case Rotate:
		b, ok := b.(Rotate)
		return ok && a.Angle.Equal(b.Angle)
	case Skew:
		b, ok := b.(Skew)
		return ok && a.X.Equal(b.X) && a.Y.Equal(b.Y)
	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		return a == b
	}
}

// normalize returns the form of t that Equal compares.
func normalize(t Transform) Transform {
	l, ok := t.(List)
	if !ok {
		return t
	}
	l = Then(l...)
	switch len(l) {
	case 0:
		return Identity{}
	case 1:
		return l[0]
	default:
		return l
	}
}

func appendFunc(b []byte, name string, args ...float64) []byte {
	b = append(b, name...)
	b = append(b, '(')
	for i, v := range args {
		if i > 0 {
			b = append(b, ',')
		}
		b = parse.AppendNumber(b, v)
	}
	return append(b, ')')
}

package transform

import (
	"errors"
	"fmt"

	"honnef.co/go/geom"
	"honnef.co/go/geom/units"
)

// Interpolate blends a and b for animation, returning a for u = 0 and b for
// u = 1.
//
// Conforming transforms interpolate component-wise: translations by their
// lengths, rotations by their angles and lists element by element. An
// [Identity] interpolates with the neutral value of the other transform's
// variant, so that "none" animates to "rotate(90deg)" through rotations. All
// other pairs are resolved without a basis and their matrices are blended
// coefficient by coefficient. That is only an approximation of the
// intermediate transforms: blending a rotation with a scale, for instance,
// doesn't rotate through the intermediate angles.
func Interpolate(a, b Transform, u float64) (Transform, error) {
	switch u {
	case 0:
		return a, nil
	case 1:
		return b, nil
	}
	if _, ok := a.(Identity); ok {
		a = neutral(b)
	} else if _, ok := b.(Identity); ok {
		b = neutral(a)
	}

	switch a := a.(type) {
	case Identity:
		if _, ok := b.(Identity); ok {
			return Identity{}, nil
		}
	case Translate:
		if b, ok := b.(Translate); ok {
			x, err := units.InterpolateLength(a.X, b.X, u)
			if err != nil {
				break
			}
			y, err := units.InterpolateLength(a.Y, b.Y, u)
			if err != nil {
				break
			}
			return Translate{x, y}, nil
		}
	case Scale:
		if b, ok := b.(Scale); ok {
			return Scale{lerp(a.X, b.X, u), lerp(a.Y, b.Y, u)}, nil
		}
	case Rotate:
		if b, ok := b.(Rotate); ok {
			return Rotate{units.InterpolateAngle(a.Angle, b.Angle, u)}, nil
		}
	case Skew:
		if b, ok := b.(Skew); ok {
			return Skew{units.InterpolateAngle(a.X, b.X, u), units.InterpolateAngle(a.Y, b.Y, u)}, nil
		}
	case Affine:
		if b, ok := b.(Affine); ok {
			return blend(geom.Affine(a), geom.Affine(b), u), nil
		}
	case List:
		if a.Conforms(b) {
			b := b.(List)
			out := make(List, len(a))
			for i := range a {
				t, err := Interpolate(a[i], b[i], u)
				if err != nil {
					return nil, fmt.Errorf("transform %d: %w", i, err)
				}
				out[i] = t
			}
			return out, nil
		}
	}

	ma, err := ToAffine(a)
	if err != nil {
		return nil, fmt.Errorf("interpolating %s and %s: %w", a, b, err)
	}
	mb, err := ToAffine(b)
	if err != nil {
		return nil, fmt.Errorf("interpolating %s and %s: %w", a, b, err)
	}
	return blend(ma, mb, u), nil
}

// ErrNotInterpolatable is returned by [InterpolateStrict] for transforms that
// don't conform.
var ErrNotInterpolatable = errors.New("transform: transforms don't conform")

// InterpolateStrict is like [Interpolate] but fails instead of blending the
// matrices of transforms that don't conform.
func InterpolateStrict(a, b Transform, u float64) (Transform, error) {
	if !conformsLoosely(a, b) {
		return nil, fmt.Errorf("interpolating %s and %s: %w", a, b, ErrNotInterpolatable)
	}
	return Interpolate(a, b, u)
}

// conformsLoosely is like Conforms but lets identities stand in for any
// other variant.
func conformsLoosely(a, b Transform) bool {
	_, ai := a.(Identity)
	_, bi := b.(Identity)
	if ai || bi {
		return true
	}
	al, aok := a.(List)
	bl, bok := b.(List)
	if aok && bok {
		if len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !conformsLoosely(al[i], bl[i]) {
				return false
			}
		}
		return true
	}
	return a.Conforms(b)
}

// neutral returns the value of t's variant that doesn't move any point.
func neutral(t Transform) Transform {
	switch t := t.(type) {
	case Translate:
		return Translate{units.L(0, t.X.Units), units.L(0, t.Y.Units)}
	case Scale:
		return Scale{1, 1}
	case Rotate:
		return Rotate{units.Angle{Units: t.Angle.Units}}
	case Skew:
		return Skew{units.Angle{Units: t.X.Units}, units.Angle{Units: t.Y.Units}}
	case Affine:
		return Affine(geom.Identity)
	case List:
		out := make(List, len(t))
		for i, e := range t {
			out[i] = neutral(e)
		}
		return out
	default:
		return Identity{}
	}
}

func blend(a, b geom.Affine, u float64) Affine {
	ca, cb := a.Coefficients(), b.Coefficients()
	var out [6]float64
	for i := range out {
		out[i] = lerp(ca[i], cb[i], u)
	}
	return Affine(geom.NewAffine(out))
}

func lerp(a, b, u float64) float64 {
	return (1-u)*a + u*b
}

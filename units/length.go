// Package units implements lengths and angles tagged with their units.
//
// Angles convert freely between units. Lengths in relative units (em, rem and
// percentages) need a [Basis] to be converted to pixels.
package units

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strings"

	"honnef.co/go/geom/parse"
)

// LengthUnits is the unit of a [Length].
type LengthUnits uint8

const (
	// UnitNone is a unitless length, which converts to pixels one to one.
	UnitNone LengthUnits = iota
	UnitPx
	// UnitEm is relative to the font size.
	UnitEm
	// UnitRem is relative to the root font size.
	UnitRem
	// UnitPct is a percentage of the container size.
	UnitPct
)

var lengthSuffixes = [...]string{
	UnitNone: "",
	UnitPx:   "px",
	UnitEm:   "em",
	UnitRem:  "rem",
	UnitPct:  "%",
}

// String returns the suffix of the unit as written after a number.
func (u LengthUnits) String() string {
	if int(u) < len(lengthSuffixes) {
		return lengthSuffixes[u]
	}
	return fmt.Sprintf("LengthUnits(%d)", u)
}

// Relative reports whether converting u to pixels needs a basis.
func (u LengthUnits) Relative() bool {
	return u == UnitEm || u == UnitRem || u == UnitPct
}

// LengthUnitsByName returns the unit with the given suffix. Letters are
// matched case-insensitively.
func LengthUnitsByName(name string) (LengthUnits, bool) {
	for u, s := range lengthSuffixes {
		if strings.EqualFold(s, name) {
			return LengthUnits(u), true
		}
	}
	return 0, false
}

// Basis supplies the reference sizes that relative lengths are measured
// against. A zero field means the reference is absent.
type Basis struct {
	FontSize      float64
	RootFontSize  float64
	ContainerSize float64
}

// ErrMissingBasis is wrapped by errors from converting a relative length
// without the reference size it needs.
var ErrMissingBasis = errors.New("missing basis")

// MissingBasisError reports a conversion of a relative length that had no
// basis to resolve against.
type MissingBasisError struct {
	Units LengthUnits
}

func (e *MissingBasisError) Error() string {
	var what string
	switch e.Units {
	case UnitEm:
		what = "font size"
	case UnitRem:
		what = "root font size"
	default:
		what = "container size"
	}
	return fmt.Sprintf("units: converting %q lengths needs a %s: %s", e.Units.String(), what, ErrMissingBasis)
}

func (e *MissingBasisError) Unwrap() error { return ErrMissingBasis }

// pxPer returns the number of pixels in one u.
func (b *Basis) pxPer(u LengthUnits) (float64, error) {
	var v float64
	switch u {
	case UnitNone, UnitPx:
		return 1, nil
	case UnitEm:
		if b != nil {
			v = b.FontSize
		}
	case UnitRem:
		if b != nil {
			v = b.RootFontSize
		}
	case UnitPct:
		if b != nil {
			v = b.ContainerSize / 100
		}
	}
	if v == 0 {
		return 0, &MissingBasisError{Units: u}
	}
	return v, nil
}

// Length is a distance with units.
type Length struct {
	Value float64
	Units LengthUnits
}

// L returns the length v in units u.
func L(v float64, u LengthUnits) Length { return Length{Value: v, Units: u} }

func Px(v float64) Length       { return Length{v, UnitPx} }
func Em(v float64) Length       { return Length{v, UnitEm} }
func Rem(v float64) Length      { return Length{v, UnitRem} }
func Pct(v float64) Length      { return Length{v, UnitPct} }
func Unitless(v float64) Length { return Length{v, UnitNone} }

// To converts l to units u. Unitless lengths and pixels convert one to one
// without a basis; conversions involving relative units fail with an error
// wrapping [ErrMissingBasis] if basis lacks the reference they need.
func (l Length) To(u LengthUnits, basis *Basis) (Length, error) {
	if l.Units == u {
		return l, nil
	}
	from, err := basis.pxPer(l.Units)
	if err != nil {
		return Length{}, err
	}
	to, err := basis.pxPer(u)
	if err != nil {
		return Length{}, err
	}
	if from == to {
		return Length{l.Value, u}, nil
	}
	return Length{l.Value * from / to, u}, nil
}

// PxValue returns l in pixels.
func (l Length) PxValue(basis *Basis) (float64, error) {
	px, err := l.To(UnitPx, basis)
	return px.Value, err
}

// IsZero reports whether l is zero in any units.
func (l Length) IsZero() bool { return l.Value == 0 }

// Plus returns l + o in l's units.
func (l Length) Plus(o Length) (Length, error) {
	return l.Combine(o, 1)
}

// Minus returns l - o in l's units.
func (l Length) Minus(o Length) (Length, error) {
	return l.Combine(o, -1)
}

// Combine returns l + o*scalar in l's units. It fails if o can't be converted
// to l's units without a basis.
func (l Length) Combine(o Length, scalar float64) (Length, error) {
	c, err := o.To(l.Units, nil)
	if err != nil {
		return Length{}, fmt.Errorf("combining %s with %s: %w", l, o, err)
	}
	return Length{l.Value + c.Value*scalar, l.Units}, nil
}

func (l Length) Times(s float64) Length  { return Length{l.Value * s, l.Units} }
func (l Length) Divide(s float64) Length { return Length{l.Value / s, l.Units} }
func (l Length) Negate() Length          { return Length{-l.Value, l.Units} }

// Compare returns -1, 0 or +1 depending on whether l is less than, equal to
// or greater than o. NaN sorts after every other value and compares equal to
// itself. Lengths whose units can't be converted into each other without a
// basis are ordered by units first.
func (l Length) Compare(o Length) int {
	if c, err := o.To(l.Units, nil); err == nil {
		return compareFloat(l.Value, c.Value)
	}
	if c := cmp.Compare(l.Units, o.Units); c != 0 {
		return c
	}
	return compareFloat(l.Value, o.Value)
}

// EquivalentTo reports whether l and o are within eps of each other after
// converting o to l's units.
func (l Length) EquivalentTo(o Length, eps float64) bool {
	c, err := o.To(l.Units, nil)
	if err != nil {
		return false
	}
	return equivalent(l.Value, c.Value, eps)
}

// Equal reports whether l and o have the same units and bit-identical values.
func (l Length) Equal(o Length) bool {
	return l.Units == o.Units && math.Float64bits(l.Value) == math.Float64bits(o.Value)
}

// String returns the canonical text of l, such as "10px", "50%" or "3".
func (l Length) String() string {
	return string(l.AppendText(nil))
}

// AppendText appends the canonical text of l to b.
func (l Length) AppendText(b []byte) []byte {
	b = parse.AppendNumber(b, l.Value)
	return append(b, l.Units.String()...)
}

func (l Length) MarshalText() ([]byte, error) {
	return l.AppendText(nil), nil
}

// UnmarshalText parses text as a length. Numbers without units are unitless.
func (l *Length) UnmarshalText(text []byte) error {
	v, err := ParseLength(string(text), UnitNone)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// InterpolateLength returns the length u of the way from a to b, in a's units.
// It returns a for u == 0 and b for u == 1.
func InterpolateLength(a, b Length, u float64) (Length, error) {
	switch u {
	case 0:
		return a, nil
	case 1:
		return b, nil
	}
	c, err := b.To(a.Units, nil)
	if err != nil {
		return Length{}, fmt.Errorf("interpolating %s to %s: %w", a, b, err)
	}
	return Length{lerp(a.Value, c.Value, u), a.Units}, nil
}

func lerp(a, b, u float64) float64 {
	return (1-u)*a + u*b
}

func compareFloat(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	return cmp.Compare(a, b)
}

func equivalent(a, b, eps float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b || math.Abs(a-b) <= eps
}

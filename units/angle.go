package units

import (
	"fmt"
	"math"
	"strings"

	"honnef.co/go/geom/parse"
)

// AngleUnits is the unit of an [Angle].
type AngleUnits uint8

const (
	UnitDeg AngleUnits = iota
	UnitRad
	UnitGrad
	UnitTurn
)

var angleSuffixes = [...]string{
	UnitDeg:  "deg",
	UnitRad:  "rad",
	UnitGrad: "grad",
	UnitTurn: "turn",
}

var degreesPer = [...]float64{
	UnitDeg:  1,
	UnitRad:  180 / math.Pi,
	UnitGrad: 0.9,
	UnitTurn: 360,
}

func (u AngleUnits) String() string {
	if int(u) < len(angleSuffixes) {
		return angleSuffixes[u]
	}
	return fmt.Sprintf("AngleUnits(%d)", u)
}

// AngleUnitsByName returns the unit with the given suffix, matched
// case-insensitively.
func AngleUnitsByName(name string) (AngleUnits, bool) {
	for u, s := range angleSuffixes {
		if strings.EqualFold(s, name) {
			return AngleUnits(u), true
		}
	}
	return 0, false
}

// Angle is an angle with units. The zero value is zero degrees.
type Angle struct {
	Value float64
	Units AngleUnits
}

func Deg(v float64) Angle  { return Angle{v, UnitDeg} }
func Rad(v float64) Angle  { return Angle{v, UnitRad} }
func Grad(v float64) Angle { return Angle{v, UnitGrad} }
func Turn(v float64) Angle { return Angle{v, UnitTurn} }

// To converts a to units u.
func (a Angle) To(u AngleUnits) Angle {
	if a.Units == u {
		return a
	}
	switch {
	case a.Units == UnitDeg && u == UnitRad:
		return Angle{a.Value * math.Pi / 180, u}
	case a.Units == UnitRad && u == UnitDeg:
		return Angle{a.Value * 180 / math.Pi, u}
	}
	return Angle{a.Value * degreesPer[a.Units] / degreesPer[u], u}
}

func (a Angle) DegValue() float64  { return a.To(UnitDeg).Value }
func (a Angle) RadValue() float64  { return a.To(UnitRad).Value }
func (a Angle) GradValue() float64 { return a.To(UnitGrad).Value }
func (a Angle) TurnValue() float64 { return a.To(UnitTurn).Value }

func (a Angle) IsZero() bool { return a.Value == 0 }

// Plus returns a + o in a's units.
func (a Angle) Plus(o Angle) Angle { return a.Combine(o, 1) }

// Minus returns a - o in a's units.
func (a Angle) Minus(o Angle) Angle { return a.Combine(o, -1) }

// Combine returns a + o*scalar in a's units.
func (a Angle) Combine(o Angle, scalar float64) Angle {
	return Angle{a.Value + o.To(a.Units).Value*scalar, a.Units}
}

func (a Angle) Times(s float64) Angle  { return Angle{a.Value * s, a.Units} }
func (a Angle) Divide(s float64) Angle { return Angle{a.Value / s, a.Units} }
func (a Angle) Negate() Angle          { return Angle{-a.Value, a.Units} }

// Compare orders angles by magnitude after converting o to a's units. NaN
// sorts after every other value and compares equal to itself.
func (a Angle) Compare(o Angle) int {
	return compareFloat(a.Value, o.To(a.Units).Value)
}

// EquivalentTo reports whether a and o are within eps of each other, measured
// in a's units.
func (a Angle) EquivalentTo(o Angle, eps float64) bool {
	return equivalent(a.Value, o.To(a.Units).Value, eps)
}

// Equal reports whether a and o have the same units and bit-identical values.
func (a Angle) Equal(o Angle) bool {
	return a.Units == o.Units && math.Float64bits(a.Value) == math.Float64bits(o.Value)
}

// String returns the canonical text of a, such as "90deg" or "0.5turn".
func (a Angle) String() string {
	return string(a.AppendText(nil))
}

func (a Angle) AppendText(b []byte) []byte {
	b = parse.AppendNumber(b, a.Value)
	return append(b, a.Units.String()...)
}

func (a Angle) MarshalText() ([]byte, error) {
	return a.AppendText(nil), nil
}

// UnmarshalText parses text as an angle. Numbers without units are degrees.
func (a *Angle) UnmarshalText(text []byte) error {
	v, err := ParseAngle(string(text), UnitDeg)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// InterpolateAngle returns the angle u of the way from a to b, in a's units.
// It returns a for u == 0 and b for u == 1.
func InterpolateAngle(a, b Angle, u float64) Angle {
	switch u {
	case 0:
		return a
	case 1:
		return b
	}
	return Angle{lerp(a.Value, b.To(a.Units).Value, u), a.Units}
}

package units

import "honnef.co/go/geom/parse"

// LengthParser returns a resumable parser for a length such as "10px" or
// "1.5em". Numbers without a unit get units def.
func LengthParser(def LengthUnits) parse.Parser[Length] {
	return parse.Map(parse.Dimension(), func(d parse.Dim) (Length, error) {
		if d.Unit == "" {
			return Length{d.Value, def}, nil
		}
		u, ok := LengthUnitsByName(d.Unit)
		if !ok {
			return Length{}, parse.Unknown(d.UnitPos, "unit", d.Unit)
		}
		return Length{d.Value, u}, nil
	})
}

// AngleParser returns a resumable parser for an angle such as "90deg" or
// "0.25turn". Numbers without a unit get units def.
func AngleParser(def AngleUnits) parse.Parser[Angle] {
	return parse.Map(parse.Dimension(), func(d parse.Dim) (Angle, error) {
		if d.Unit == "" {
			return Angle{d.Value, def}, nil
		}
		u, ok := AngleUnitsByName(d.Unit)
		if !ok {
			return Angle{}, parse.Unknown(d.UnitPos, "unit", d.Unit)
		}
		return Angle{d.Value, u}, nil
	})
}

// ParseLength parses all of s as a length, allowing surrounding whitespace.
func ParseLength(s string, def LengthUnits) (Length, error) {
	return parse.Run(s, LengthParser(def))
}

// ParseAngle parses all of s as an angle, allowing surrounding whitespace.
func ParseAngle(s string, def AngleUnits) (Angle, error) {
	return parse.Run(s, AngleParser(def))
}

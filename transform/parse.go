package transform

import (
	"strings"

	"honnef.co/go/geom/parse"
	"honnef.co/go/geom/units"
)

// Parse parses a transform list such as "translate(10px, 5px) rotate(45deg)".
//
// The functions are those of CSS: matrix, translate, translateX, translateY,
// translate3d (whose z must be 0), scale, scaleX, scaleY, rotate, skew, skewX
// and skewY, or the keyword none for the identity. Function names are matched
// case-insensitively. Arguments are separated by commas or whitespace, and so
// are functions. Unitless lengths are unitless and unitless angles are
// degrees.
//
// A single function results in its variant; several result in a [List].
func Parse(s string) (Transform, error) {
	return parse.Run(s, Parser())
}

// Parser returns a resumable parser for transform lists. It stops at the
// first byte that can't continue the list.
func Parser() parse.Parser[Transform] {
	return parser{}
}

type argKind uint8

const (
	argNumber argKind = iota
	argLength
	argAngle
)

func (k argKind) String() string {
	switch k {
	case argLength:
		return "length"
	case argAngle:
		return "angle"
	default:
		return "number"
	}
}

type arg struct {
	pos parse.Position
	// The first byte of the argument's text.
	first  byte
	num    float64
	length units.Length
	angle  units.Angle
}

type function struct {
	kind     argKind
	min, max int
	build    func(args []arg) (Transform, error)
}

const maxArgs = 6

// functions is keyed by lower-case name.
var functions = map[string]function{
	"matrix": {argNumber, 6, 6, func(a []arg) (Transform, error) {
		return Affine{a[0].num, a[1].num, a[2].num, a[3].num, a[4].num, a[5].num}, nil
	}},
	"translate": {argLength, 1, 2, func(a []arg) (Transform, error) {
		t := Translate{X: a[0].length}
		if len(a) == 2 {
			t.Y = a[1].length
		}
		return t, nil
	}},
	"translatex": {argLength, 1, 1, func(a []arg) (Transform, error) {
		return Translate{X: a[0].length}, nil
	}},
	"translatey": {argLength, 1, 1, func(a []arg) (Transform, error) {
		return Translate{Y: a[0].length}, nil
	}},
	"translate3d": {argLength, 3, 3, func(a []arg) (Transform, error) {
		if !a[2].length.IsZero() {
			return nil, &parse.Error{
				Kind:     parse.ExpectedToken,
				Pos:      a[2].pos,
				Found:    a[2].first,
				Expected: "z translation of 0",
			}
		}
		return Translate{a[0].length, a[1].length}, nil
	}},
	"scale": {argNumber, 1, 2, func(a []arg) (Transform, error) {
		if len(a) == 1 {
			return Scale{a[0].num, a[0].num}, nil
		}
		return Scale{a[0].num, a[1].num}, nil
	}},
	"scalex": {argNumber, 1, 1, func(a []arg) (Transform, error) {
		return Scale{a[0].num, 1}, nil
	}},
	"scaley": {argNumber, 1, 1, func(a []arg) (Transform, error) {
		return Scale{1, a[0].num}, nil
	}},
	"rotate": {argAngle, 1, 1, func(a []arg) (Transform, error) {
		return Rotate{a[0].angle}, nil
	}},
	"skew": {argAngle, 1, 2, func(a []arg) (Transform, error) {
		s := Skew{X: a[0].angle}
		if len(a) == 2 {
			s.Y = a[1].angle
		}
		return s, nil
	}},
	"skewx": {argAngle, 1, 1, func(a []arg) (Transform, error) {
		return Skew{X: a[0].angle}, nil
	}},
	"skewy": {argAngle, 1, 1, func(a []arg) (Transform, error) {
		return Skew{Y: a[0].angle}, nil
	}},
}

type step uint8

const (
	// Expecting a function name, a separator or the end of the list.
	stepName step = iota
	stepIdent
	stepOpen
	stepArg
	stepValue
	// Expecting a separator or the closing parenthesis.
	stepSep
)

type parser struct {
	step step
	list List
	// Whether a comma separates the next function from the previous one.
	comma bool

	ident   parse.Parser[string]
	namePos parse.Position
	fn      function
	args    [maxArgs]arg
	n       int

	num    parse.Parser[float64]
	length parse.Parser[units.Length]
	angle  parse.Parser[units.Angle]
}

func (p parser) result() Transform {
	if len(p.list) == 1 {
		return p.list[0]
	}
	return p.list
}

func (p parser) Feed(in *parse.Input) parse.Parser[Transform] {
	for {
		switch p.step {
		case stepName:
			parse.SkipSpace(in)
			if in.IsEmpty() {
				return p
			}
			if in.IsCont() && parse.IsLetter(in.Head()) {
				p.comma = false
				p.namePos = in.Pos()
				p.ident = parse.Ident()
				p.step = stepIdent
				continue
			}
			if len(p.list) == 0 || p.comma {
				return parse.Fail[Transform](parse.Expected(in, "transform function"))
			}
			if in.IsCont() && in.Head() == ',' {
				in.Step()
				p.comma = true
				continue
			}
			return parse.Done(p.result())

		case stepIdent:
			p.ident = p.ident.Feed(in)
			if parse.IsCont(p.ident) {
				return p
			}
			name, err := parse.Value(p.ident)
			if err != nil {
				return parse.Fail[Transform](err)
			}
			p.ident = nil
			lower := strings.ToLower(name)
			if lower == "none" {
				if len(p.list) > 0 {
					return parse.Fail[Transform](&parse.Error{
						Kind:  parse.UnexpectedCharacter,
						Pos:   p.namePos,
						Found: name[0],
					})
				}
				return parse.Done[Transform](Identity{})
			}
			fn, ok := functions[lower]
			if !ok {
				return parse.Fail[Transform](parse.Unknown(p.namePos, "function", name))
			}
			p.fn = fn
			p.n = 0
			p.step = stepOpen

		case stepOpen:
			parse.SkipSpace(in)
			if in.IsEmpty() {
				return p
			}
			if !in.IsCont() || in.Head() != '(' {
				return parse.Fail[Transform](parse.Expected(in, "'('"))
			}
			in.Step()
			p.step = stepArg

		case stepArg:
			parse.SkipSpace(in)
			if in.IsEmpty() {
				return p
			}
			a := arg{pos: in.Pos()}
			if in.IsCont() {
				a.first = in.Head()
			}
			p.args[p.n] = a
			switch p.fn.kind {
			case argNumber:
				p.num = parse.Number()
			case argLength:
				p.length = units.LengthParser(units.UnitNone)
			case argAngle:
				p.angle = units.AngleParser(units.UnitDeg)
			}
			p.step = stepValue

		case stepValue:
			var err error
			a := &p.args[p.n]
			switch p.fn.kind {
			case argNumber:
				if p.num = p.num.Feed(in); parse.IsCont(p.num) {
					return p
				}
				a.num, err = parse.Value(p.num)
				p.num = nil
			case argLength:
				if p.length = p.length.Feed(in); parse.IsCont(p.length) {
					return p
				}
				a.length, err = parse.Value(p.length)
				p.length = nil
			case argAngle:
				if p.angle = p.angle.Feed(in); parse.IsCont(p.angle) {
					return p
				}
				a.angle, err = parse.Value(p.angle)
				p.angle = nil
			}
			if err != nil {
				return parse.Fail[Transform](err)
			}
			p.n++
			p.step = stepSep

		case stepSep:
			parse.SkipSpace(in)
			if in.IsEmpty() {
				return p
			}
			switch {
			case in.IsCont() && in.Head() == ')':
				if p.n < p.fn.min {
					return parse.Fail[Transform](parse.Expected(in, p.fn.kind.String()))
				}
				in.Step()
				t, err := p.fn.build(p.args[:p.n])
				if err != nil {
					return parse.Fail[Transform](err)
				}
				p.list = append(p.list, t)
				p.step = stepName
			case p.n == p.fn.max:
				return parse.Fail[Transform](parse.Expected(in, "')'"))
			case in.IsCont() && in.Head() == ',':
				in.Step()
				p.step = stepArg
			default:
				// Whitespace-separated arguments.
				p.step = stepArg
			}
		}
	}
}

// Text adapts a transform to [encoding.TextMarshaler] and
// [encoding.TextUnmarshaler]. A nil transform marshals as "none".
type Text struct {
	Transform
}

func (t Text) MarshalText() ([]byte, error) {
	if t.Transform == nil {
		return []byte("none"), nil
	}
	return t.appendText(nil), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. t is left unchanged on
// error.
func (t *Text) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	t.Transform = v
	return nil
}

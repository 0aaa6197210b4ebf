package geom

import (
	"math"

	"honnef.co/go/geom/parse"
)

// ParsePath parses path text such as "M0,0 L10,0 L10,10 Z" into a path.
//
// The syntax is that of the SVG path data attribute: the commands M, L, H, V,
// Q, T, C, S, A and Z, in upper case for absolute and lower case for relative
// coordinates. Arguments are separated by whitespace or a single comma, and a
// command letter may be omitted when it repeats; after a moveto, repeated
// pairs are linetos. Arc rotation angles are in degrees. The empty string is
// the empty path.
func ParsePath(s string) (Path, error) {
	return parse.Run(s, PathParser())
}

// PathParser returns a resumable parser for path text. It stops at the first
// byte that can't continue the path.
func PathParser() parse.Parser[Path] {
	return pathParser{}
}

type pathStep uint8

const (
	// Expecting a command letter or the first argument of a repeated
	// command.
	pathCommand pathStep = iota
	// Expecting an argument.
	pathArg
	// Scanning an argument with the sub-parser.
	pathNumber
	pathFlag
)

// maxPathArgs is the number of arguments of the arc command.
const maxPathArgs = 7

type pathParser struct {
	step pathStep
	b    PathBuilder
	cmd  byte
	args [maxPathArgs]float64
	n    int
	// Whether a comma may separate the next argument from the previous one.
	comma bool
	num   parse.Parser[float64]
	flag  parse.Parser[bool]
}

// pathArity returns the number of arguments taken by cmd, or -1 if cmd isn't
// a path command.
func pathArity(cmd byte) int {
	switch cmd | 0x20 {
	case 'z':
		return 0
	case 'h', 'v':
		return 1
	case 'm', 'l', 't':
		return 2
	case 'q', 's':
		return 4
	case 'c':
		return 6
	case 'a':
		return 7
	default:
		return -1
	}
}

func isNumberStart(c byte) bool {
	return parse.IsDigit(c) || c == '-' || c == '+' || c == '.'
}

func (p pathParser) Feed(in *parse.Input) parse.Parser[Path] {
	for {
		switch p.step {
		case pathCommand:
			parse.SkipSpace(in)
			if in.IsEmpty() {
				return p
			}
			if in.IsDone() {
				return parse.Done(p.b.Build())
			}
			c := in.Head()
			if pathArity(c) >= 0 {
				if p.cmd == 0 && c != 'M' && c != 'm' {
					return parse.Fail[Path](parse.Expected(in, "moveto command"))
				}
				in.Step()
				p.cmd = c
				p.n = 0
				p.comma = false
				if pathArity(c) == 0 {
					p.b.ClosePath()
					continue
				}
				p.step = pathArg
				continue
			}
			if p.cmd == 0 {
				return parse.Fail[Path](parse.Expected(in, "moveto command"))
			}
			if pathArity(p.cmd) == 0 {
				return parse.Done(p.b.Build())
			}
			switch {
			case c == ',' && p.comma:
				in.Step()
				p.comma = false
				p.n = 0
				p.step = pathArg
			case isNumberStart(c):
				p.n = 0
				p.comma = false
				p.step = pathArg
			default:
				return parse.Done(p.b.Build())
			}

		case pathArg:
			parse.SkipSpace(in)
			if p.comma && in.IsCont() && in.Head() == ',' {
				in.Step()
				p.comma = false
				continue
			}
			if in.IsEmpty() {
				return p
			}
			if p.cmd|0x20 == 'a' && (p.n == 3 || p.n == 4) {
				p.flag = parse.Flag()
				p.step = pathFlag
			} else {
				p.num = parse.Number()
				p.step = pathNumber
			}

		case pathNumber:
			p.num = p.num.Feed(in)
			if parse.IsCont(p.num) {
				return p
			}
			v, err := parse.Value(p.num)
			if err != nil {
				return parse.Fail[Path](err)
			}
			p.num = nil
			p.push(v)

		case pathFlag:
			p.flag = p.flag.Feed(in)
			if parse.IsCont(p.flag) {
				return p
			}
			v, err := parse.Value(p.flag)
			if err != nil {
				return parse.Fail[Path](err)
			}
			p.flag = nil
			if v {
				p.push(1)
			} else {
				p.push(0)
			}
		}
	}
}

// push records an argument, executing the command once all of its
// arguments are present.
func (p *pathParser) push(v float64) {
	p.args[p.n] = v
	p.n++
	p.comma = true
	if p.n < pathArity(p.cmd) {
		p.step = pathArg
		return
	}
	p.exec()
	p.step = pathCommand
}

// exec executes the current command with its arguments.
func (p *pathParser) exec() {
	var origin Point
	rel := p.cmd >= 'a'
	if rel && p.b.hasPen {
		origin = p.b.pen
	}
	pt := func(i int) Point {
		q := Pt(p.args[i], p.args[i+1])
		if rel {
			q = q.Translate(Vec2(origin))
		}
		return q
	}

	a := &p.args
	switch p.cmd | 0x20 {
	case 'm':
		p.b.MoveTo(pt(0))
		// Further pairs are linetos.
		if rel {
			p.cmd = 'l'
		} else {
			p.cmd = 'L'
		}
	case 'l':
		p.b.LineTo(pt(0))
	case 'h':
		x := a[0]
		if rel {
			x += origin.X
		}
		p.b.LineTo(Pt(x, p.b.pen.Y))
	case 'v':
		y := a[0]
		if rel {
			y += origin.Y
		}
		p.b.LineTo(Pt(p.b.pen.X, y))
	case 'q':
		p.b.QuadraticCurveTo(pt(0), pt(2))
	case 't':
		p.b.SmoothQuadraticCurveTo(pt(0))
	case 'c':
		p.b.BezierCurveTo(pt(0), pt(2), pt(4))
	case 's':
		p.b.SmoothBezierCurveTo(pt(0), pt(2))
	case 'a':
		phi := a[2] * math.Pi / 180
		p.b.EllipticArcTo(a[0], a[1], phi, a[3] != 0, a[4] != 0, pt(5))
	}
}

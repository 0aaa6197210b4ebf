package parse

import (
	"strconv"

	strconvx "github.com/tdewolff/parse/v2/strconv"
)

// IsSpace reports whether c is CSS/SVG whitespace.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// SkipSpace consumes whitespace at the head of in.
func SkipSpace(in *Input) {
	for in.IsCont() && IsSpace(in.Head()) {
		in.Step()
	}
}

type numStep uint8

const (
	numStart numStep = iota
	numSign
	numInt
	numLeadingDot
	numFrac
	numExp
	numExpSign
	numExpDigits
)

type numStatus uint8

const (
	// More input is needed.
	numMore numStatus = iota
	// A complete numeral was scanned.
	numEnd
	// A complete numeral was scanned, followed by a consumed 'e' or 'E' that
	// doesn't start an exponent.
	numEndE
)

// numeral scans the text of a number: an optional sign, digits with at most
// one decimal point (either side may be empty but not both) and an optional
// exponent.
type numeral struct {
	step numStep
	text []byte
}

func (n *numeral) scan(in *Input) (numStatus, error) {
	for in.IsCont() {
		c := in.Head()
		switch n.step {
		case numStart:
			switch {
			case c == '+' || c == '-':
				n.step = numSign
			case IsDigit(c):
				n.step = numInt
			case c == '.':
				n.step = numLeadingDot
			default:
				return 0, Expected(in, "number")
			}
		case numSign:
			switch {
			case IsDigit(c):
				n.step = numInt
			case c == '.':
				n.step = numLeadingDot
			default:
				return 0, Expected(in, "digit")
			}
		case numInt:
			switch {
			case IsDigit(c):
			case c == '.':
				n.step = numFrac
			case c == 'e' || c == 'E':
				n.step = numExp
			default:
				return numEnd, nil
			}
		case numLeadingDot:
			if !IsDigit(c) {
				return 0, Expected(in, "digit")
			}
			n.step = numFrac
		case numFrac:
			switch {
			case IsDigit(c):
			case c == 'e' || c == 'E':
				n.step = numExp
			default:
				return numEnd, nil
			}
		case numExp:
			switch {
			case c == '+' || c == '-':
				n.step = numExpSign
			case IsDigit(c):
				n.step = numExpDigits
			default:
				return numEndE, nil
			}
		case numExpSign:
			if !IsDigit(c) {
				return 0, Expected(in, "digit")
			}
			n.step = numExpDigits
		case numExpDigits:
			if !IsDigit(c) {
				return numEnd, nil
			}
		}
		n.text = append(n.text, c)
		in.Step()
	}
	if in.IsEmpty() {
		return numMore, nil
	}
	switch n.step {
	case numInt, numFrac, numExpDigits:
		return numEnd, nil
	case numExp:
		return numEndE, nil
	case numStart:
		return 0, Expected(in, "number")
	default:
		return 0, Expected(in, "digit")
	}
}

// mantissa returns the text of the numeral without a dangling exponent marker.
func (n *numeral) mantissa() []byte {
	if n.step == numExp {
		return n.text[:len(n.text)-1]
	}
	return n.text
}

// value returns the correctly rounded value of the numeral.
func (n *numeral) value() float64 {
	m := n.mantissa()
	if fastFloat(m) {
		f, _ := strconvx.ParseFloat(m)
		return f
	}
	f, _ := strconv.ParseFloat(string(m), 64)
	return f
}

// fastFloat reports whether the numeral text b has at most 15 significant
// digits and a decimal exponent within ±22. Such a value is an exact integer
// scaled by an exact power of ten, which the fast conversion rounds
// correctly.
func fastFloat(b []byte) bool {
	digits, frac, exp := 0, 0, 0
	leading, inFrac := true, false
	i := 0
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	for ; i < len(b) && b[i] != 'e' && b[i] != 'E'; i++ {
		if b[i] == '.' {
			inFrac = true
			continue
		}
		if inFrac {
			frac++
		}
		if leading && b[i] == '0' {
			continue
		}
		leading = false
		digits++
	}
	if i < len(b) {
		i++
		neg := false
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			neg = b[i] == '-'
			i++
		}
		for ; i < len(b); i++ {
			exp = exp*10 + int(b[i]-'0')
			if exp > 1000 {
				return false
			}
		}
		if neg {
			exp = -exp
		}
	}
	exp -= frac
	return digits <= 15 && exp >= -22 && exp <= 22
}

// Number returns a parser for a decimal number such as "12", "-3.5", ".5" or
// "1e-3".
func Number() Parser[float64] {
	return numberParser{}
}

type numberParser struct {
	num numeral
}

func (p numberParser) Feed(in *Input) Parser[float64] {
	st, err := p.num.scan(in)
	if err != nil {
		return Fail[float64](err)
	}
	switch st {
	case numEnd:
		return Done(p.num.value())
	case numEndE:
		return Fail[float64](Expected(in, "exponent"))
	default:
		return p
	}
}

// Dim is a number with an optional unit suffix.
type Dim struct {
	Value float64
	// Unit is the suffix as written: letters or "%". It is empty for bare
	// numbers.
	Unit string
	// UnitPos is the position of the first byte of the unit.
	UnitPos Position
}

// Dimension returns a parser for a number immediately followed by an optional
// unit, such as "10px", "50%", "1.5em" or "3".
//
// A unit starting with 'e' is distinguished from an exponent by the byte that
// follows it, so "1em" is one em and "1e2" is one hundred.
func Dimension() Parser[Dim] {
	return dimensionParser{}
}

type dimStep uint8

const (
	dimNumber dimStep = iota
	dimUnit
)

type dimensionParser struct {
	step    dimStep
	num     numeral
	unit    []byte
	unitPos Position
	value   float64
}

func (p dimensionParser) Feed(in *Input) Parser[Dim] {
	if p.step == dimNumber {
		pos := in.Pos()
		st, err := p.num.scan(in)
		if err != nil {
			return Fail[Dim](err)
		}
		switch st {
		case numMore:
			return p
		case numEndE:
			// The 'e' was consumed one byte before the current position.
			pos = in.Pos()
			pos.Offset--
			pos.Column--
			p.unit = append(p.unit, p.num.text[len(p.num.text)-1])
			p.unitPos = pos
			p.value = p.num.value()
			p.step = dimUnit
		case numEnd:
			p.value = p.num.value()
			if in.IsCont() && in.Head() == '%' {
				pos = in.Pos()
				in.Step()
				return Done(Dim{Value: p.value, Unit: "%", UnitPos: pos})
			}
			if !in.IsCont() || !IsLetter(in.Head()) {
				return Done(Dim{Value: p.value, UnitPos: in.Pos()})
			}
			p.unitPos = in.Pos()
			p.step = dimUnit
		}
	}
	for in.IsCont() && IsLetter(in.Head()) {
		p.unit = append(p.unit, in.Head())
		in.Step()
	}
	if in.IsEmpty() {
		return p
	}
	return Done(Dim{Value: p.value, Unit: string(p.unit), UnitPos: p.unitPos})
}

// Ident returns a parser for an identifier: a letter, '-' or '_' followed by
// letters, digits, '-' or '_'.
func Ident() Parser[string] {
	return identParser{}
}

type identParser struct {
	text []byte
}

func isIdentStart(c byte) bool { return IsLetter(c) || c == '-' || c == '_' }
func isIdentChar(c byte) bool  { return isIdentStart(c) || IsDigit(c) }

func (p identParser) Feed(in *Input) Parser[string] {
	if len(p.text) == 0 {
		if !in.IsCont() {
			if in.IsEmpty() {
				return p
			}
			return Fail[string](Expected(in, "identifier"))
		}
		if !isIdentStart(in.Head()) {
			return Fail[string](Expected(in, "identifier"))
		}
	}
	for in.IsCont() && isIdentChar(in.Head()) {
		p.text = append(p.text, in.Head())
		in.Step()
	}
	if in.IsEmpty() {
		return p
	}
	return Done(string(p.text))
}

// Flag returns a parser for a single '0' or '1', as used by the flags of
// elliptical arc commands.
func Flag() Parser[bool] {
	return flagParser{}
}

type flagParser struct{}

func (p flagParser) Feed(in *Input) Parser[bool] {
	if in.IsEmpty() {
		return p
	}
	if in.IsCont() {
		switch in.Head() {
		case '0':
			in.Step()
			return Done(false)
		case '1':
			in.Step()
			return Done(true)
		}
	}
	return Fail[bool](Expected(in, "flag"))
}

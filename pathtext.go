package geom

import (
	"honnef.co/go/geom/parse"
)

// appendCommand appends a path command with its comma-separated arguments.
func appendCommand(b []byte, cmd byte, nums ...float64) []byte {
	b = append(b, cmd)
	for i, n := range nums {
		if i > 0 {
			b = append(b, ',')
		}
		b = parse.AppendNumber(b, n)
	}
	return b
}

// appendCurves appends the path text of a subpath made of curves, starting
// with a move to the first curve's start. A closed subpath ends in Z, which
// replaces a final segment that returns to the start.
func appendCurves(b []byte, curves []Curve, closed bool) []byte {
	if len(curves) == 0 {
		return b
	}
	start := curves[0].Start()
	b = appendCommand(b, 'M', start.X, start.Y)
	for i, c := range curves {
		if closed && i == len(curves)-1 {
			if s, ok := c.(Segment); ok && s.P1 == start && len(curves) > 1 {
				break
			}
		}
		b = c.appendPath(b)
	}
	if closed {
		b = append(b, 'Z')
	}
	return b
}

// curveString returns the path text of a single curve.
func curveString(c Curve) string {
	return string(appendCurves(nil, []Curve{c}, false))
}

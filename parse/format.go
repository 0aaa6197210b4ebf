package parse

import (
	"math"
	"strconv"
)

// AppendNumber appends the canonical text of v to b. The text is the shortest
// representation that [Number] parses back to v, using plain decimal notation
// except for very large or very small magnitudes.
func AppendNumber(b []byte, v float64) []byte {
	if abs := math.Abs(v); abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return strconv.AppendFloat(b, v, 'g', -1, 64)
	}
	return strconv.AppendFloat(b, v, 'f', -1, 64)
}

// FormatNumber returns the canonical text of v.
func FormatNumber(v float64) string {
	return string(AppendNumber(nil, v))
}

package parse

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedBytes feeds text one byte at a time, checking that p never finishes
// before the input is closed unless it has seen a terminating byte.
func feedBytes[T any](t *testing.T, text string, p Parser[T]) (T, error) {
	t.Helper()
	in := NewInput()
	for i := range len(text) {
		in.Feed([]byte{text[i]})
		p = p.Feed(in)
		if !IsCont(p) {
			return Value(p)
		}
	}
	in.Close()
	return Value(p.Feed(in))
}

func TestNumber(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"0", 0},
		{"12", 12},
		{"-3.5", -3.5},
		{"+7", 7},
		{".5", 0.5},
		{"-.25", -0.25},
		{"1.", 1},
		{"1e3", 1000},
		{"2.5E-2", 0.025},
		{"1e+2", 100},
	}
	for _, tt := range tests {
		got, err := Run(tt.text, Number())
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, tt.text)

		got, err = feedBytes(t, tt.text, Complete(Number()))
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got, "chunked %q", tt.text)
	}
}

func TestNumberErrors(t *testing.T) {
	tests := []struct {
		text string
		kind ErrorKind
	}{
		{"", UnexpectedEnd},
		{"-", UnexpectedEnd},
		{".", UnexpectedEnd},
		{"x", ExpectedToken},
		{"-x", ExpectedToken},
		{"1e", UnexpectedEnd},
		{"1e+", UnexpectedEnd},
		{"1ex", ExpectedToken},
		{"1 2", UnexpectedCharacter},
		{"12px", UnexpectedCharacter},
	}
	for _, tt := range tests {
		_, err := Run(tt.text, Number())
		var perr *Error
		require.True(t, errors.As(err, &perr), "%q: got %v", tt.text, err)
		assert.Equal(t, tt.kind, perr.Kind, "%q: %v", tt.text, err)
	}
}

func TestNumberStopsAtSeparators(t *testing.T) {
	in := StringInput("1.5.5-2")
	var got []float64
	for !in.IsDone() {
		v, err := Value(Number().Feed(in))
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []float64{1.5, 0.5, -2}, got)
}

func TestDimension(t *testing.T) {
	tests := []struct {
		text string
		want Dim
	}{
		{"10px", Dim{Value: 10, Unit: "px"}},
		{"1em", Dim{Value: 1, Unit: "em"}},
		{"1e2", Dim{Value: 100}},
		{"1e2em", Dim{Value: 100, Unit: "em"}},
		{"50%", Dim{Value: 50, Unit: "%"}},
		{"3", Dim{Value: 3}},
		{"-0.5turn", Dim{Value: -0.5, Unit: "turn"}},
	}
	for _, tt := range tests {
		for _, chunked := range []bool{false, true} {
			var got Dim
			var err error
			if chunked {
				got, err = feedBytes(t, tt.text, Complete(Dimension()))
			} else {
				got, err = Run(tt.text, Dimension())
			}
			require.NoError(t, err, tt.text)
			assert.Equal(t, tt.want.Value, got.Value, tt.text)
			assert.Equal(t, tt.want.Unit, got.Unit, tt.text)
		}
	}
}

func TestDimensionUnitPosition(t *testing.T) {
	d, err := Run("  12em", Dimension())
	require.NoError(t, err)
	assert.Equal(t, Position{Offset: 4, Line: 1, Column: 5}, d.UnitPos)

	d, err = Run("1em", Dimension())
	require.NoError(t, err)
	assert.Equal(t, 2, d.UnitPos.Column)
}

func TestIdent(t *testing.T) {
	got, err := feedBytes(t, "translate3d", Complete(Ident()))
	require.NoError(t, err)
	assert.Equal(t, "translate3d", got)

	_, err = Run("3d", Ident())
	assert.Error(t, err)
}

func TestFlag(t *testing.T) {
	in := StringInput("10")
	a, err := Value(Flag().Feed(in))
	require.NoError(t, err)
	b, err := Value(Flag().Feed(in))
	require.NoError(t, err)
	assert.True(t, a)
	assert.False(t, b)

	_, err = Run("2", Flag())
	assert.Error(t, err)
}

func TestCompleteRejectsTrailingInput(t *testing.T) {
	_, err := Run(" 1 ; ", Number())
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, UnexpectedCharacter, perr.Kind)
	assert.Equal(t, byte(';'), perr.Found)
	assert.Equal(t, Position{Offset: 3, Line: 1, Column: 4}, perr.Pos)
}

func TestContinuationIsResumable(t *testing.T) {
	in := NewInput()
	p := Complete(Number())
	in.Feed([]byte("  12"))
	p = p.Feed(in)
	require.True(t, IsCont(p))
	_, err := Value(p)
	assert.ErrorIs(t, err, ErrIncomplete)

	in.Feed([]byte(".75e1 "))
	p = p.Feed(in)
	require.True(t, IsCont(p))
	in.Close()
	v, err := Value(p.Feed(in))
	require.NoError(t, err)
	assert.Equal(t, 127.5, v)
}

func TestMap(t *testing.T) {
	double := Map(Number(), func(v float64) (float64, error) { return 2 * v, nil })
	v, err := Run("21", double)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	boom := errors.New("boom")
	failing := Map(Number(), func(float64) (int, error) { return 0, boom })
	_, err = Run("1", failing)
	assert.ErrorIs(t, err, boom)
}

func TestErrorMessages(t *testing.T) {
	_, err := Run("1x", Number())
	assert.EqualError(t, err, `1:2: unexpected 'x'`)

	err = Unknown(Position{Line: 1, Column: 3}, "unit", "zz")
	assert.EqualError(t, err, `1:3: unknown unit "zz"`)

	perr := &Error{Kind: UnexpectedCharacter, Pos: Position{Line: 2, Column: 3}, Found: '!'}
	assert.Equal(t, "ab!d\n  ^", perr.Excerpt("first\nab!d"))
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		0:       "0",
		1:       "1",
		-2.5:    "-2.5",
		0.1:     "0.1",
		1e21:    "1e+21",
		1e-7:    "1e-07",
		1234567: "1234567",
	}
	for v, want := range tests {
		assert.Equal(t, want, FormatNumber(v))
		got, err := Run(want, Number())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestNumberRoundTrip(t *testing.T) {
	values := []float64{
		0.1 + 0.2,
		927298470.7640833,
		0.0016669071891829757,
		-7.312830161774791e-09,
		math.Sqrt(2),
		math.Pi * 1e10,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		1e21,
		1e-6,
		math.Copysign(0, -1),
	}
	r := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		values = append(values, r.NormFloat64()*math.Pow(10, float64(r.IntN(40)-20)))
	}
	for range 2000 {
		v := math.Float64frombits(r.Uint64())
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}
	for _, v := range values {
		text := FormatNumber(v)
		got, err := Run(text, Number())
		require.NoError(t, err, text)
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("%q parsed as %v, want %v", text, got, v)
		}
	}
}

func TestFastFloat(t *testing.T) {
	tests := map[string]bool{
		"0":                     true,
		"-2.5":                  true,
		"0.001":                 true,
		"123456789012345":       true,
		"1234567890123456":      false,
		"0.0016669071891829757": false,
		"1e22":                  true,
		"1e23":                  false,
		"1e-22":                 true,
		"0.1e-22":               false,
		"5e+3":                  true,
		"1e99999":               false,
	}
	for text, want := range tests {
		assert.Equal(t, want, fastFloat([]byte(text)), text)
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"honnef.co/go/geom"
	"honnef.co/go/geom/internal/config"
)

type result struct {
	status int
	stdout string
	stderr string
}

func runWith(t *testing.T, cfg config.Config, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	status := run(&cfg, args, strings.NewReader(stdin), &stdout, &stderr)
	return result{status, stdout.String(), stderr.String()}
}

func TestRunText(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"lengths", []string{"length", "1em", " 10px ", "3"}, "1em = 16px\n10px = 10px\n3 = 3px\n"},
		{"relative to container", []string{"length", "50%"}, "50%\n"},
		{"angle", []string{"angle", "0"}, "0deg = 0rad\n"},
		{"path", []string{"path", "M0,0 L10,0 l0,10 z"}, "M0,0L10,0L10,10Z in Box(0, 0, 10, 10)\n"},
		{"applied path", []string{"-apply", "translate(5, 5)", "path", "M0,0 H10 V10 Z"}, "M5,5L15,5L15,15Z in Box(5, 5, 15, 15)\n"},
		{"empty path", []string{"path", ""}, "\n"},
		{"scale", []string{"transform", "scale(2)"}, "scale(2,2) = matrix(2,0,0,2,0,0)\n"},
		{"matrix", []string{"transform", "matrix(1 0 0 1 5 5)"}, "matrix(1,0,0,1,5,5)\n"},
		{"relative translate", []string{"transform", "translate(1em)"}, "translate(1em,0) = matrix(1,0,0,1,16,0)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runWith(t, config.Default(), "", tt.args...)
			assert.Equal(t, 0, res.status, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
			assert.Empty(t, res.stderr)
		})
	}
}

func TestRunStdin(t *testing.T) {
	for _, size := range []int{1, 3, 4096} {
		cfg := config.Default()
		cfg.ChunkSize = size
		res := runWith(t, cfg, "  M0,0 L10,0\n L10,10 Z\n", "path")
		assert.Equal(t, 0, res.status, "chunk size %d: %s", size, res.stderr)
		assert.Equal(t, "M0,0L10,0L10,10Z in Box(0, 0, 10, 10)\n", res.stdout, "chunk size %d", size)
	}
}

func TestRunYAML(t *testing.T) {
	res := runWith(t, config.Default(), "", "-format", "yaml", "path", "M0,0 L4,2")
	require.Equal(t, 0, res.status, res.stderr)

	var reports []report
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "M0,0 L4,2", reports[0].Input)
	assert.Equal(t, "M0,0L4,2", reports[0].Canonical)
	assert.Equal(t, 1, reports[0].Splines)
	assert.Equal(t, &geom.Box{X0: 0, Y0: 0, X1: 4, Y1: 2}, reports[0].Bounds)

	cfg := config.Default()
	cfg.Format = config.FormatYAML
	res = runWith(t, cfg, "", "angle", "180deg")
	require.Equal(t, 0, res.status, res.stderr)
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &reports))
	require.Len(t, reports, 1)
	require.NotNil(t, reports[0].Radians)
	assert.InDelta(t, 3.141592653589793, *reports[0].Radians, 1e-12)
	assert.Nil(t, reports[0].Pixels)
}

func TestRunDiagnostics(t *testing.T) {
	res := runWith(t, config.Default(), "", "length", "10px", "10foo")
	assert.Equal(t, 1, res.status)
	assert.Equal(t, "10px = 10px\n", res.stdout)
	assert.Equal(t, "geomfmt: 1:3: unknown unit \"foo\"\n\t10foo\n\t  ^\n", res.stderr)

	res = runWith(t, config.Default(), "rotate(45deg)\nspin(1)", "transform")
	assert.Equal(t, 1, res.status)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "geomfmt: 2:1: unknown function \"spin\"\n\tspin(1)\n\t^\n")
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"no kind", nil, "usage: geomfmt"},
		{"unknown kind", []string{"circle", "1"}, `unknown kind "circle"`},
		{"unknown format", []string{"-format", "json", "length", "1"}, `unknown format "json"`},
		{"bad flag", []string{"-frobnicate", "length"}, "flag provided but not defined"},
		{"bad apply", []string{"-apply", "spin(1)", "path", "M0,0"}, `unknown function "spin"`},
		{"unresolvable apply", []string{"-apply", "translate(10%)", "path", "M0,0"}, "missing basis"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runWith(t, config.Default(), "", tt.args...)
			assert.Equal(t, 2, res.status)
			assert.Empty(t, res.stdout)
			assert.Contains(t, res.stderr, tt.stderr)
		})
	}
}

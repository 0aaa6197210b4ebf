package main

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"honnef.co/go/geom"
	"honnef.co/go/geom/internal/config"
	"honnef.co/go/geom/parse"
)

// report describes one processed value.
type report struct {
	Input     string `yaml:"input"`
	Canonical string `yaml:"canonical"`

	Pixels  *float64  `yaml:"px,omitempty"`
	Radians *float64  `yaml:"rad,omitempty"`
	Matrix  string    `yaml:"matrix,omitempty"`
	Splines int       `yaml:"splines,omitempty"`
	Bounds  *geom.Box `yaml:"bounds,omitempty,flow"`
}

func (r report) appendText(b []byte) []byte {
	b = append(b, r.Canonical...)
	if r.Pixels != nil {
		b = append(b, " = "...)
		b = parse.AppendNumber(b, *r.Pixels)
		b = append(b, "px"...)
	}
	if r.Radians != nil {
		b = append(b, " = "...)
		b = parse.AppendNumber(b, *r.Radians)
		b = append(b, "rad"...)
	}
	if r.Matrix != "" && r.Matrix != r.Canonical {
		b = append(b, " = "...)
		b = append(b, r.Matrix...)
	}
	if r.Bounds != nil {
		b = append(b, " in "...)
		b = append(b, r.Bounds.String()...)
	}
	return b
}

func writeReports(w io.Writer, format string, reports []report) error {
	if format == config.FormatYAML {
		if len(reports) == 0 {
			return nil
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}

	bw := bufio.NewWriter(w)
	var line []byte
	for _, r := range reports {
		line = r.appendText(line[:0])
		line = append(line, '\n')
		bw.Write(line)
	}
	return bw.Flush()
}

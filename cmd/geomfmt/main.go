// Command geomfmt parses lengths, angles, paths and transforms and prints
// them in canonical form.
//
// Usage:
//
//	geomfmt [flags] length|angle|path|transform [value...]
//
// Each value argument is processed on its own. Without value arguments, a
// single value is streamed from standard input.
//
// Configuration is read from the TOML file named by GEOMFMT_CONFIG and from
// GEOMFMT_* environment variables; see package config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"honnef.co/go/geom"
	"honnef.co/go/geom/internal/config"
	"honnef.co/go/geom/parse"
	"honnef.co/go/geom/transform"
	"honnef.co/go/geom/units"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "geomfmt: load config:", err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	os.Exit(run(cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type command struct {
	cfg    *config.Config
	stdout io.Writer
	stderr *termenv.Output

	// apply is mapped over parsed paths.
	apply geom.Affine
}

// run executes geomfmt and returns its exit status.
func run(cfg *config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("geomfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", cfg.Format, "report `format`: text or yaml")
	apply := fs.String("apply", "", "`transform` to apply to paths")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: geomfmt [flags] length|angle|path|transform [value...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}

	c := &command{
		cfg:    cfg,
		stdout: stdout,
		stderr: termenv.NewOutput(stderr),
		apply:  geom.Identity,
	}
	switch *format {
	case config.FormatText, config.FormatYAML:
	default:
		c.errorf("unknown format %q", *format)
		return 2
	}
	if *apply != "" {
		m, err := c.resolveApply(*apply)
		if err != nil {
			c.diagnose(*apply, err)
			return 2
		}
		c.apply = m
	}

	kind, values := fs.Arg(0), fs.Args()[1:]
	processKind, ok := c.kinds()[kind]
	if !ok {
		c.errorf("unknown kind %q", kind)
		return 2
	}

	var reports []report
	status := 0
	handle := func(r io.Reader, chunk int) {
		rep, text, err := processKind(r, chunk)
		if err != nil {
			c.diagnose(text, err)
			status = 1
			return
		}
		slog.Debug("processed value", "kind", kind, "input", rep.Input, "canonical", rep.Canonical)
		reports = append(reports, rep)
	}
	if len(values) == 0 {
		slog.Debug("reading standard input", "kind", kind, "chunk_size", cfg.ChunkSize)
		handle(stdin, cfg.ChunkSize)
	}
	for _, v := range values {
		handle(strings.NewReader(v), len(v))
	}

	if err := writeReports(stdout, *format, reports); err != nil {
		c.errorf("%s", err)
		return 1
	}
	return status
}

func (c *command) resolveApply(text string) (geom.Affine, error) {
	tr, err := transform.Parse(text)
	if err != nil {
		return geom.Affine{}, err
	}
	return tr.Resolve(c.cfg.Basis())
}

type processFunc func(r io.Reader, chunk int) (report, string, error)

func (c *command) kinds() map[string]processFunc {
	return map[string]processFunc{
		"length": func(r io.Reader, chunk int) (report, string, error) {
			return process(r, chunk, units.LengthParser(units.UnitNone), c.describeLength)
		},
		"angle": func(r io.Reader, chunk int) (report, string, error) {
			return process(r, chunk, units.AngleParser(units.UnitDeg), describeAngle)
		},
		"path": func(r io.Reader, chunk int) (report, string, error) {
			return process(r, chunk, geom.PathParser(), c.describePath)
		},
		"transform": func(r io.Reader, chunk int) (report, string, error) {
			return process(r, chunk, transform.Parser(), c.describeTransform)
		},
	}
}

// process feeds r to p in chunks of the given size and describes the parsed
// value. It also returns the text that was read.
func process[T any](r io.Reader, chunk int, p parse.Parser[T], describe func(T) report) (report, string, error) {
	v, text, err := feed(r, chunk, p)
	if err != nil {
		return report{}, text, err
	}
	rep := describe(v)
	rep.Input = strings.TrimSpace(text)
	return rep, text, nil
}

func feed[T any](r io.Reader, chunk int, p parse.Parser[T]) (T, string, error) {
	var text strings.Builder
	in := parse.NewInput()
	p = parse.Complete(p)
	buf := make([]byte, max(chunk, 1))
	for parse.IsCont(p) {
		n, err := r.Read(buf)
		if n > 0 {
			text.Write(buf[:n])
			in.Feed(buf[:n])
			p = p.Feed(in)
		}
		if errors.Is(err, io.EOF) {
			in.Close()
			p = p.Feed(in)
			break
		}
		if err != nil {
			var zero T
			return zero, text.String(), err
		}
	}
	v, err := parse.Value(p)
	return v, text.String(), err
}

func (c *command) describeLength(l units.Length) report {
	rep := report{Canonical: l.String()}
	if px, err := l.PxValue(c.cfg.Basis()); err == nil {
		rep.Pixels = &px
	} else {
		slog.Debug("length has no pixel value", "length", l, "error", err)
	}
	return rep
}

func describeAngle(a units.Angle) report {
	rad := a.RadValue()
	return report{Canonical: a.String(), Radians: &rad}
}

func (c *command) describePath(p geom.Path) report {
	if c.apply != geom.Identity {
		p = geom.Map(p, c.apply)
	}
	rep := report{Canonical: p.PathString(), Splines: p.Len()}
	if !p.IsEmpty() {
		b := p.BoundingBox()
		rep.Bounds = &b
	}
	return rep
}

func (c *command) describeTransform(t transform.Transform) report {
	rep := report{Canonical: t.String()}
	if m, err := t.Resolve(c.cfg.Basis()); err == nil {
		rep.Matrix = m.String()
	} else {
		slog.Debug("transform has no matrix", "transform", t, "error", err)
	}
	return rep
}

func (c *command) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.stderr, c.stderr.String("geomfmt:").Bold(), msg)
}

// diagnose reports err, pointing at the offending byte of text for parse
// errors.
func (c *command) diagnose(text string, err error) {
	c.errorf("%s", err)
	var perr *parse.Error
	if !errors.As(err, &perr) {
		return
	}
	excerpt := perr.Excerpt(text)
	if excerpt == "" {
		return
	}
	line, caret, _ := strings.Cut(excerpt, "\n")
	fmt.Fprintln(c.stderr, "\t"+line)
	fmt.Fprintln(c.stderr, "\t"+c.stderr.String(caret).Foreground(c.stderr.Color("1")).String())
}

// Package parse implements resumable parsers over chunked input.
//
// A [Parser] is a plain value describing how far a grammar has progressed.
// Feeding it an [Input] consumes as many bytes as are available and returns
// the next state: the same kind of parser with updated fields when more input
// is needed, a finished parser created by [Done], or a failed one created by
// [Fail]. Because a continuation holds no references into consumed input,
// parsing can be suspended at any byte boundary and resumed once the next
// chunk arrives.
package parse

import "errors"

// ErrIncomplete is returned by [Value] for parsers that still need input.
var ErrIncomplete = errors.New("parse: incomplete input")

// Parser is the state of a resumable parser producing a T.
type Parser[T any] interface {
	// Feed consumes bytes from in and returns the parser's next state.
	//
	// A parser that hasn't finished only returns once in is empty. When in is
	// done, Feed must return a finished or failed parser.
	Feed(in *Input) Parser[T]
}

type done[T any] struct{ value T }

func (p done[T]) Feed(*Input) Parser[T] { return p }

type failed[T any] struct{ err error }

func (p failed[T]) Feed(*Input) Parser[T] { return p }

// Done returns a finished parser holding v.
func Done[T any](v T) Parser[T] { return done[T]{v} }

// Fail returns a failed parser holding err.
func Fail[T any](err error) Parser[T] { return failed[T]{err} }

// IsDone reports whether p finished successfully.
func IsDone[T any](p Parser[T]) bool {
	_, ok := p.(done[T])
	return ok
}

// IsError reports whether p failed.
func IsError[T any](p Parser[T]) bool {
	_, ok := p.(failed[T])
	return ok
}

// IsCont reports whether p needs more input.
func IsCont[T any](p Parser[T]) bool {
	return !IsDone(p) && !IsError(p)
}

// Value returns the outcome of p. For a parser that needs more input, it
// returns ErrIncomplete.
func Value[T any](p Parser[T]) (T, error) {
	switch q := p.(type) {
	case done[T]:
		return q.value, nil
	case failed[T]:
		var zero T
		return zero, q.err
	default:
		var zero T
		return zero, ErrIncomplete
	}
}

// Map returns a parser that applies f to the value produced by p. If f returns
// an error, the parser fails with it.
func Map[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return mapped[T, U]{p, f}
}

type mapped[T, U any] struct {
	inner Parser[T]
	f     func(T) (U, error)
}

func (p mapped[T, U]) Feed(in *Input) Parser[U] {
	p.inner = p.inner.Feed(in)
	switch q := p.inner.(type) {
	case done[T]:
		v, err := p.f(q.value)
		if err != nil {
			return Fail[U](err)
		}
		return Done(v)
	case failed[T]:
		return Fail[U](q.err)
	default:
		return p
	}
}

type completeStep uint8

const (
	completeLeading completeStep = iota
	completeInner
	completeTrailing
)

// Complete wraps p so that it accepts surrounding whitespace and rejects any
// other input left over after p has finished.
func Complete[T any](p Parser[T]) Parser[T] {
	return complete[T]{inner: p}
}

type complete[T any] struct {
	step  completeStep
	inner Parser[T]
	value T
}

func (p complete[T]) Feed(in *Input) Parser[T] {
	if p.step == completeLeading {
		SkipSpace(in)
		if in.IsEmpty() {
			return p
		}
		p.step = completeInner
	}
	if p.step == completeInner {
		p.inner = p.inner.Feed(in)
		switch q := p.inner.(type) {
		case done[T]:
			p.value = q.value
			p.inner = nil
			p.step = completeTrailing
		case failed[T]:
			return q
		default:
			return p
		}
	}
	SkipSpace(in)
	if in.IsCont() {
		return Fail[T](Unexpected(in))
	}
	if in.IsEmpty() {
		return p
	}
	return Done(p.value)
}

// Run parses all of text with p. Leading and trailing whitespace is skipped;
// any other trailing input is an error.
func Run[T any](text string, p Parser[T]) (T, error) {
	return Value(Complete(p).Feed(StringInput(text)))
}

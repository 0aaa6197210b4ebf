package parse

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a parse [Error].
type ErrorKind int

const (
	// UnexpectedCharacter means a byte that no production accepts, including
	// trailing bytes after a complete value.
	UnexpectedCharacter ErrorKind = iota + 1
	// ExpectedToken means a specific token or production was required.
	ExpectedToken
	// UnknownName means an identifier that names no known function or unit.
	UnknownName
	// UnexpectedEnd means the input ended in the middle of a production.
	UnexpectedEnd
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case ExpectedToken:
		return "expected token"
	case UnknownName:
		return "unknown name"
	case UnexpectedEnd:
		return "unexpected end of input"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the diagnostic produced by a failed parse.
type Error struct {
	Kind ErrorKind
	Pos  Position
	// Found is the offending byte. It is unset for UnexpectedEnd and UnknownName.
	Found byte
	// Expected describes the token or production that was required. For
	// UnknownName it describes what the name was looked up as, such as "unit".
	Expected string
	// Name is the unknown identifier.
	Name string
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedCharacter:
		return fmt.Sprintf("%s: unexpected %s", e.Pos, quoteByte(e.Found))
	case ExpectedToken:
		return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, quoteByte(e.Found))
	case UnknownName:
		return fmt.Sprintf("%s: unknown %s %q", e.Pos, e.Expected, e.Name)
	case UnexpectedEnd:
		if e.Expected == "" {
			return fmt.Sprintf("%s: unexpected end of input", e.Pos)
		}
		return fmt.Sprintf("%s: unexpected end of input, expected %s", e.Pos, e.Expected)
	default:
		return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
	}
}

// Excerpt returns the line of text that contains the error, followed by a
// line with a caret under the offending column.
func (e *Error) Excerpt(text string) string {
	lines := strings.Split(text, "\n")
	if e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return ""
	}
	line := lines[e.Pos.Line-1]
	col := min(max(e.Pos.Column-1, 0), len(line))
	return line + "\n" + strings.Repeat(" ", col) + "^"
}

func quoteByte(c byte) string {
	if c < 0x20 || c >= 0x7f {
		return fmt.Sprintf("byte 0x%02x", c)
	}
	return fmt.Sprintf("%q", rune(c))
}

// Unexpected returns the error for the byte at the head of in, or for the end
// of input if in is exhausted.
func Unexpected(in *Input) error {
	if in.IsCont() {
		return &Error{Kind: UnexpectedCharacter, Pos: in.Pos(), Found: in.Head()}
	}
	return &Error{Kind: UnexpectedEnd, Pos: in.Pos()}
}

// Expected returns the error for a missing token described by what.
func Expected(in *Input, what string) error {
	if in.IsCont() {
		return &Error{Kind: ExpectedToken, Pos: in.Pos(), Found: in.Head(), Expected: what}
	}
	return &Error{Kind: UnexpectedEnd, Pos: in.Pos(), Expected: what}
}

// Unknown returns the error for an identifier that names no known entity of
// the given kind ("unit", "function", ...).
func Unknown(pos Position, kind, name string) error {
	return &Error{Kind: UnknownName, Pos: pos, Expected: kind, Name: name}
}

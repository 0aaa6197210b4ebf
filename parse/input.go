package parse

import "fmt"

// Position identifies a byte in a stream of input. Lines and columns are
// 1-based, the offset is 0-based.
type Position struct {
	Offset int64
	Line   int
	Column int
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Input is a byte source that is fed in chunks.
//
// Parsers consume bytes from the head of the input. When all bytes of the
// current chunk have been consumed and the input hasn't been closed, the input
// is empty and parsers return a continuation that resumes when the next chunk
// is fed. Consumed bytes are never revisited.
type Input struct {
	chunk  []byte
	index  int
	pos    Position
	closed bool
}

// NewInput returns an open input with no data.
func NewInput() *Input {
	return &Input{pos: Position{Line: 1, Column: 1}}
}

// StringInput returns a closed input holding s.
func StringInput(s string) *Input {
	in := NewInput()
	in.Feed([]byte(s))
	in.Close()
	return in
}

// Feed appends chunk to the input. The input keeps its own copy of the bytes,
// so callers may reuse chunk afterwards.
func (in *Input) Feed(chunk []byte) {
	rest := in.chunk[in.index:]
	buf := make([]byte, 0, len(rest)+len(chunk))
	buf = append(buf, rest...)
	in.chunk = append(buf, chunk...)
	in.index = 0
}

// Close marks the end of the input. No more chunks may be fed.
func (in *Input) Close() {
	in.closed = true
}

// IsCont reports whether a byte is available at the head of the input.
func (in *Input) IsCont() bool {
	return in.index < len(in.chunk)
}

// IsEmpty reports whether the input is exhausted but more chunks may follow.
func (in *Input) IsEmpty() bool {
	return !in.closed && in.index >= len(in.chunk)
}

// IsDone reports whether the input is closed and exhausted.
func (in *Input) IsDone() bool {
	return in.closed && in.index >= len(in.chunk)
}

// Head returns the byte at the head of the input. It must only be called when
// IsCont returns true.
func (in *Input) Head() byte {
	return in.chunk[in.index]
}

// Step consumes the byte at the head of the input.
func (in *Input) Step() {
	c := in.chunk[in.index]
	in.index++
	in.pos.Offset++
	if c == '\n' {
		in.pos.Line++
		in.pos.Column = 1
	} else {
		in.pos.Column++
	}
}

// Pos returns the position of the byte at the head of the input.
func (in *Input) Pos() Position {
	return in.pos
}

// Buffered returns the number of unconsumed bytes in the current chunk.
func (in *Input) Buffered() int {
	return len(in.chunk) - in.index
}

package scanner

import (
	"bufio"
	"io"
	"strings"

	"github.com/vippsas/charscan/scanner/internal/utils"
)

// DefaultCapacity is the lookahead capacity used when a Stream is created
// with a capacity below 1.
const DefaultCapacity = 4096

const initialBufferSize = 64

type char struct {
	r rune
	w int // encoded width in bytes
}

// Stream is a Cursor over an io.Reader that is consumed incrementally.
//
// Unread characters are kept in a lookahead buffer that starts small and
// doubles when more lookahead is requested, up to a fixed capacity. The
// underlying reader is only read when an operation needs a character that is
// not buffered yet, which is also the only place a Stream blocks. Looking
// further ahead than the capacity is a usage error and panics with
// ErrLookahead.
type Stream struct {
	input io.RuneReader

	buf      []char // ring of unread characters
	head     int    // position of the next unread character in buf
	buffered int    // number of unread characters in buf
	capacity int    // upper bound for len(buf)

	curIndex int   // bytes consumed so far
	eof      bool  // input has no more characters
	err      error // first non-EOF read error
}

var _ Cursor = (*Stream)(nil)

// NewStream creates a Stream reading from r with the given lookahead
// capacity. Readers that do not implement io.RuneReader are wrapped in a
// bufio.Reader.
func NewStream(r io.Reader, capacity int) *Stream {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	s := &Stream{capacity: capacity}
	s.Reset(r)
	return s
}

// Reset rebinds the stream to a new reader. The lookahead buffer is kept for
// reuse.
func (s *Stream) Reset(r io.Reader) {
	if rr, ok := r.(io.RuneReader); ok {
		s.input = rr
	} else {
		s.input = bufio.NewReader(r)
	}
	s.head = 0
	s.buffered = 0
	s.curIndex = 0
	s.eof = false
	s.err = nil
}

// Err returns the first error other than io.EOF met while reading. Such an
// error ends the stream just like the end of input does.
func (s *Stream) Err() error {
	return s.err
}

// Capacity returns the maximum number of characters the stream can look ahead.
func (s *Stream) Capacity() int {
	return s.capacity
}

// Buffered returns the number of characters read from the reader but not yet
// consumed.
func (s *Stream) Buffered() int {
	return s.buffered
}

// fill makes sure n characters are buffered, or as many as the input has left.
func (s *Stream) fill(n int) {
	if n > s.capacity {
		panic(ErrLookahead)
	}
	for s.buffered < n && !s.eof {
		if s.buffered == len(s.buf) {
			s.grow()
		}
		r, w, err := s.input.ReadRune()
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			utils.DPrint("stream exhausted after %d bytes (err=%v)\n", s.curIndex, err)
			s.eof = true
			return
		}
		s.buf[(s.head+s.buffered)%len(s.buf)] = char{r: r, w: w}
		s.buffered++
	}
}

func (s *Stream) grow() {
	size := len(s.buf) * 2
	if size == 0 {
		size = initialBufferSize
	}
	if size > s.capacity {
		size = s.capacity
	}
	utils.DPrint("growing lookahead buffer from %d to %d\n", len(s.buf), size)
	newBuf := make([]char, size)
	for i := 0; i < s.buffered; i++ {
		newBuf[i] = s.buf[(s.head+i)%len(s.buf)]
	}
	s.buf = newBuf
	s.head = 0
}

func (s *Stream) at(offset int) char {
	return s.buf[(s.head+offset)%len(s.buf)]
}

func (s *Stream) Index() int {
	return s.curIndex
}

func (s *Stream) HasNext() bool {
	s.fill(1)
	return s.buffered > 0
}

func (s *Stream) Next() rune {
	if !s.HasNext() {
		panic(ErrExhausted)
	}
	c := s.at(0)
	s.head = (s.head + 1) % len(s.buf)
	s.buffered--
	s.curIndex += c.w
	return c.r
}

func (s *Stream) Peek() rune {
	if !s.HasNext() {
		return NUL
	}
	return s.at(0).r
}

func (s *Stream) PeekAt(offset int) (rune, bool) {
	s.fill(offset + 1)
	if offset >= s.buffered {
		return NUL, false
	}
	return s.at(offset).r, true
}

func (s *Stream) ForceNext() rune {
	if !s.HasNext() {
		return NUL
	}
	return s.Next()
}

func (s *Stream) ForcePeek() rune {
	return s.Peek()
}

func (s *Stream) Read(count int) string {
	var b strings.Builder
	for ; count > 0 && s.HasNext(); count-- {
		b.WriteRune(s.Next())
	}
	return b.String()
}

package scanner

import (
	"unicode/utf8"
)

// Sequence is a Cursor over a string held completely in memory. Besides the
// Cursor primitives it allows random access: moving the cursor, cutting out
// substrings and replacing regions of the input.
type Sequence struct {
	input    string // the complete source being scanned
	curIndex int    // current byte position in input
}

var (
	_ Cursor      = (*Sequence)(nil)
	_ substringer = (*Sequence)(nil)
)

// NewSequence creates a Sequence positioned at the start of input.
func NewSequence(input string) *Sequence {
	return &Sequence{input: input}
}

// Reset rebinds the sequence to a new input and moves the cursor to its start.
func (s *Sequence) Reset(input string) {
	s.input = input
	s.curIndex = 0
}

func (s *Sequence) Index() int {
	return s.curIndex
}

// SetIndex moves the cursor. The index is clamped to [0, Len()].
func (s *Sequence) SetIndex(index int) {
	switch {
	case index < 0:
		s.curIndex = 0
	case index > len(s.input):
		s.curIndex = len(s.input)
	default:
		s.curIndex = index
	}
}

// Len returns the length of the input in bytes.
func (s *Sequence) Len() int {
	return len(s.input)
}

func (s *Sequence) HasNext() bool {
	return s.curIndex < len(s.input)
}

func (s *Sequence) Next() rune {
	r, w := utf8.DecodeRuneInString(s.input[s.curIndex:])
	if w == 0 {
		panic(ErrExhausted)
	}
	s.curIndex += w
	return r
}

func (s *Sequence) Peek() rune {
	r, w := utf8.DecodeRuneInString(s.input[s.curIndex:])
	if w == 0 {
		return NUL
	}
	return r
}

func (s *Sequence) PeekAt(offset int) (rune, bool) {
	i := s.curIndex
	for ; offset > 0; offset-- {
		_, w := utf8.DecodeRuneInString(s.input[i:])
		if w == 0 {
			return NUL, false
		}
		i += w
	}
	r, w := utf8.DecodeRuneInString(s.input[i:])
	if w == 0 {
		return NUL, false
	}
	return r, true
}

func (s *Sequence) ForceNext() rune {
	if !s.HasNext() {
		return NUL
	}
	return s.Next()
}

func (s *Sequence) ForcePeek() rune {
	return s.Peek()
}

func (s *Sequence) Read(count int) string {
	start := s.curIndex
	for ; count > 0 && s.curIndex < len(s.input); count-- {
		_, w := utf8.DecodeRuneInString(s.input[s.curIndex:])
		s.curIndex += w
	}
	return decoded(s.input[start:s.curIndex])
}

// decoded returns text the way Next reads it: each byte that is not part of
// valid UTF-8 becomes U+FFFD, as it does when decoding a Stream.
func decoded(text string) string {
	if utf8.ValidString(text) {
		return text
	}
	return string([]rune(text))
}

// Substring returns the input between two byte offsets. It does not move the
// cursor. Unlike Read it returns the raw bytes, invalid UTF-8 included.
func (s *Sequence) Substring(start, end int) string {
	return s.input[start:end]
}

// Consumed returns the part of the input that has already been read.
func (s *Sequence) Consumed() string {
	return s.input[:s.curIndex]
}

// Tail returns the part of the input that has not been read yet.
func (s *Sequence) Tail() string {
	return s.input[s.curIndex:]
}

// String returns the complete input.
func (s *Sequence) String() string {
	return s.input
}

// Replace substitutes the bytes in [start, end) with text. A cursor behind
// the region moves with the text following it; a cursor inside the region is
// moved to the end of the replacement.
func (s *Sequence) Replace(start, end int, text string) {
	s.input = s.input[:start] + text + s.input[end:]
	switch {
	case s.curIndex >= end:
		s.curIndex += len(text) - (end - start)
	case s.curIndex > start:
		s.curIndex = start + len(text)
	}
}

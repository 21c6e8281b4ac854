package scanner

import (
	"io"
	"strings"
	"unicode"
)

// Scanner provides the reading operations a hand-written parser needs on top
// of a Cursor: delimited reads honoring escapes, quotes and entities, exact
// pattern matching, and numeric and Java literal recognition.
//
// A Scanner is created once per input and mutated by every operation. It is
// not safe for concurrent use. Failed operations leave the cursor where the
// failing read stopped; only ExpectStrict and RequireString restore it.
type Scanner struct {
	Cursor
}

// New creates a Scanner reading from the given cursor.
func New(c Cursor) *Scanner {
	return &Scanner{Cursor: c}
}

// FromString creates a Scanner over a Sequence.
func FromString(input string) *Scanner {
	return New(NewSequence(input))
}

// FromReader creates a Scanner over a Stream with the given lookahead
// capacity.
func FromReader(r io.Reader, capacity int) *Scanner {
	return New(NewStream(r, capacity))
}

// PeekString returns up to n next characters without consuming them.
func (s *Scanner) PeekString(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		r, ok := s.PeekAt(i)
		if !ok {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

func equalRune(a, b rune, ignoreCase bool) bool {
	if a == b {
		return true
	}
	if !ignoreCase {
		return false
	}
	return unicode.ToLower(a) == unicode.ToLower(b) || unicode.ToUpper(a) == unicode.ToUpper(b)
}

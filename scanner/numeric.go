package scanner

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadDigit consumes a decimal digit and returns its value. If the next
// character is not a digit nothing is consumed and -1 is returned.
func (s *Scanner) ReadDigit() int {
	r := s.ForcePeek()
	if r < '0' || r > '9' {
		return -1
	}
	s.Next()
	return int(r - '0')
}

// ReadLong reads up to maxDigits decimal digits. It fails with a
// *NumberFormatError if there is no digit or the value does not fit in an
// int64.
func (s *Scanner) ReadLong(maxDigits int) (int64, error) {
	start := s.Index()
	var b strings.Builder
	for i := 0; i < maxDigits && s.HasNext(); i++ {
		r := s.Peek()
		if r < '0' || r > '9' {
			break
		}
		b.WriteRune(s.Next())
	}
	text := b.String()
	if text == "" {
		return 0, &NumberFormatError{Index: start, Err: errors.Wrap(strconv.ErrSyntax, "no digits")}
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &NumberFormatError{Index: start, Text: text, Err: errors.Wrapf(err, "parse %q", text)}
	}
	return v, nil
}

// ReadDouble reads a decimal floating point literal: an optional sign, digits,
// an optional fraction and an optional exponent. Reading stops right before
// the first character that cannot continue the literal, so an "e" that is not
// followed by exponent digits is left unread. Deciding that takes up to three
// characters of lookahead.
//
// A literal too large for the result type yields ±Inf and one too small
// yields zero, without an error.
func (s *Scanner) ReadDouble() (float64, error) {
	return s.readFloat(64)
}

// ReadFloat is ReadDouble with float32 precision.
func (s *Scanner) ReadFloat() (float32, error) {
	v, err := s.readFloat(32)
	return float32(v), err
}

func (s *Scanner) readFloat(bitSize int) (float64, error) {
	start := s.Index()
	text := s.scanFloatText()
	if text == "" {
		return 0, &NumberFormatError{Index: start, Err: errors.Wrap(strconv.ErrSyntax, "no number")}
	}
	v, err := strconv.ParseFloat(text, bitSize)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	if err != nil {
		return 0, &NumberFormatError{Index: start, Text: text, Err: errors.Wrapf(err, "parse %q", text)}
	}
	return v, nil
}

func (s *Scanner) scanFloatText() string {
	var b strings.Builder
	take := func(accept func(rune) bool) bool {
		if s.HasNext() && accept(s.Peek()) {
			b.WriteRune(s.Next())
			return true
		}
		return false
	}
	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	isSign := func(r rune) bool { return r == '+' || r == '-' }

	take(isSign)
	for take(isDigit) {
	}
	if take(func(r rune) bool { return r == '.' }) {
		for take(isDigit) {
		}
	}
	if s.exponentAhead() {
		b.WriteRune(s.Next())
		take(isSign)
		for take(isDigit) {
		}
	}
	return b.String()
}

// exponentAhead reports whether the input continues with an exponent marker,
// an optional sign and at least one digit.
func (s *Scanner) exponentAhead() bool {
	if r, ok := s.PeekAt(0); !ok || (r != 'e' && r != 'E') {
		return false
	}
	i := 1
	if r, ok := s.PeekAt(i); ok && (r == '+' || r == '-') {
		i++
	}
	r, ok := s.PeekAt(i)
	return ok && r >= '0' && r <= '9'
}

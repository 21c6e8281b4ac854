package scanner

import (
	"strings"
	"unicode"
	"unicode/utf16"
)

var javaEscapes = map[rune]rune{
	'b':  '\b',
	't':  '\t',
	'n':  '\n',
	'f':  '\f',
	'r':  '\r',
	's':  ' ',
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
}

// ReadJavaStringLiteral reads a double quoted Java string literal and returns
// its decoded value. Supported escapes are the single character escapes,
// octal escapes of up to three digits with a value of at most 0377, and
// unicode escapes, where any number of 'u' may follow the backslash.
func (s *Scanner) ReadJavaStringLiteral() (string, error) {
	start := s.Index()
	if err := s.Require('"'); err != nil {
		return "", err
	}
	var b strings.Builder
	for s.HasNext() {
		r := s.Next()
		switch r {
		case '"':
			return b.String(), nil
		case '\\':
			d, err := s.readJavaEscape()
			if err != nil {
				return "", err
			}
			if err := s.writeDecoded(&b, d); err != nil {
				return "", err
			}
		default:
			b.WriteRune(r)
		}
	}
	return "", &ParseError{Index: start, Expected: `"`, Unmatched: `"` + b.String()}
}

// ReadJavaCharLiteral reads a single quoted Java character literal.
func (s *Scanner) ReadJavaCharLiteral() (rune, error) {
	if err := s.Require('\''); err != nil {
		return NUL, err
	}
	if !s.HasNext() {
		return NUL, s.parseError("character", 1)
	}
	r := s.Next()
	switch r {
	case '\'':
		return NUL, &ParseError{Index: s.Index() - 1, Expected: "character", Unmatched: "'"}
	case '\\':
		var err error
		if r, err = s.readJavaEscape(); err != nil {
			return NUL, err
		}
	}
	if err := s.Require('\''); err != nil {
		return NUL, err
	}
	return r, nil
}

// readJavaEscape assumes the backslash has been consumed.
func (s *Scanner) readJavaEscape() (rune, error) {
	if !s.HasNext() {
		return NUL, s.parseError("escape sequence", 1)
	}
	r := s.Peek()
	if d, ok := javaEscapes[r]; ok {
		s.Next()
		return d, nil
	}
	switch {
	case r >= '0' && r <= '7':
		return s.readOctalEscape(), nil
	case r == 'u':
		return s.readUnicodeEscape()
	}
	return NUL, s.parseError("escape sequence", 1)
}

// readOctalEscape reads at most three octal digits, stopping early where
// another digit would push the value past 0377.
func (s *Scanner) readOctalEscape() rune {
	var v rune
	for i := 0; i < 3; i++ {
		r := s.ForcePeek()
		if r < '0' || r > '7' {
			break
		}
		next := v*8 + (r - '0')
		if next > 0xff {
			break
		}
		v = next
		s.Next()
	}
	return v
}

func (s *Scanner) readUnicodeEscape() (rune, error) {
	s.SkipWhileChar('u')
	start := s.Index()
	var v rune
	for i := 0; i < 4; i++ {
		d := hexValue(s.ForcePeek())
		if d < 0 {
			return NUL, &ParseError{Index: start, Expected: "4 hex digits", Unmatched: s.PeekString(4 - i)}
		}
		s.Next()
		v = v<<4 | d
	}
	return v, nil
}

// writeDecoded appends an escaped character. A high surrogate directly
// followed by a \\u escape holding the low surrogate is combined into one
// character; an unpaired surrogate is written as U+FFFD.
func (s *Scanner) writeDecoded(b *strings.Builder, r rune) error {
	if !utf16.IsSurrogate(r) || r >= 0xdc00 || !s.followsUnicodeEscape() {
		b.WriteRune(r)
		return nil
	}
	s.Next()
	low, err := s.readUnicodeEscape()
	if err != nil {
		return err
	}
	if c := utf16.DecodeRune(r, low); c != unicode.ReplacementChar {
		b.WriteRune(c)
		return nil
	}
	b.WriteRune(unicode.ReplacementChar)
	return s.writeDecoded(b, low)
}

func (s *Scanner) followsUnicodeEscape() bool {
	r0, ok0 := s.PeekAt(0)
	r1, ok1 := s.PeekAt(1)
	return ok0 && ok1 && r0 == '\\' && r1 == 'u'
}

func hexValue(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	case r >= 'A' && r <= 'F':
		return r - 'A' + 10
	}
	return -1
}

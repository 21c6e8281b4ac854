package scanner

import (
	"strings"
)

// ReadUntil reads up to the first occurrence of stop and returns the text
// before it, leaving the cursor just past stop. If stop never occurs the
// cursor ends at the end of input and the text read so far is returned when
// acceptEOF is set; otherwise the result is not found (false).
func (s *Scanner) ReadUntil(stop rune, acceptEOF bool) (string, bool) {
	if sub, ok := s.Cursor.(substringer); ok {
		start := s.Index()
		for s.HasNext() {
			end := s.Index()
			if s.Next() == stop {
				return decoded(sub.Substring(start, end)), true
			}
		}
		if acceptEOF {
			return decoded(sub.Substring(start, s.Index())), true
		}
		return "", false
	}

	var b strings.Builder
	for s.HasNext() {
		r := s.Next()
		if r == stop {
			return b.String(), true
		}
		b.WriteRune(r)
	}
	return eofResult(&b, acceptEOF)
}

// ReadUntilEscaped is like ReadUntil, but stop is taken literally when
// preceded by escape, and a doubled escape yields a single escape. Escape
// before any other character is kept as is.
func (s *Scanner) ReadUntilEscaped(stop rune, acceptEOF bool, escape rune) (string, bool) {
	var b strings.Builder
	for s.HasNext() {
		r := s.Next()
		if r == escape && escape != NUL && s.HasNext() {
			if n := s.Peek(); n == stop || n == escape {
				b.WriteRune(s.Next())
				continue
			}
		}
		if r == stop {
			return b.String(), true
		}
		b.WriteRune(r)
	}
	return eofResult(&b, acceptEOF)
}

// ReadUntilSyntax reads up to the first unescaped, unquoted occurrence of
// stop. At every position the syntax is applied in this order:
//
//   - the escape character makes the following character literal;
//   - the primary quote start reads a quotation (see QuotePolicy);
//   - the alternate quote start does the same with its own policy;
//   - the entity start reads up to the entity end and appends the resolved
//     replacement, or the entity text itself if it does not resolve;
//   - stop ends the read, leaving the cursor just past it.
//
// Quote delimiters and escapes are not part of the result. End of input is
// handled as in ReadUntil.
func (s *Scanner) ReadUntilSyntax(stop rune, acceptEOF bool, syntax Syntax) (string, bool) {
	var b strings.Builder
	for s.HasNext() {
		r := s.Next()
		switch {
		case r == syntax.Escape && syntax.Escape != NUL:
			if s.HasNext() {
				b.WriteRune(s.Next())
			}
		case r == syntax.Quote.Start && syntax.Quote.Enabled():
			s.readQuoted(&b, syntax.Quote)
		case r == syntax.AltQuote.Start && syntax.AltQuote.Enabled():
			s.readQuoted(&b, syntax.AltQuote)
		case r == syntax.EntityStart && syntax.entitiesEnabled():
			s.readEntity(&b, syntax)
		case r == stop:
			return b.String(), true
		default:
			b.WriteRune(r)
		}
	}
	return eofResult(&b, acceptEOF)
}

// readQuoted assumes p.Start has been consumed and reads through p.End.
func (s *Scanner) readQuoted(b *strings.Builder, p QuotePolicy) {
	if p.Lazy && p.Start == p.End && p.End == p.Escape {
		if r, ok := s.PeekAt(0); ok && r == p.Start {
			// lazy: a doubled quote right after the start is a literal quote
			s.Next()
			b.WriteRune(r)
			return
		}
	}
	for s.HasNext() {
		r := s.Next()
		if r == p.Escape && p.Escape != NUL && s.HasNext() {
			if n := s.Peek(); n == p.End || n == p.Escape {
				b.WriteRune(s.Next())
				continue
			}
		}
		if r == p.End {
			return
		}
		b.WriteRune(r)
	}
}

// readEntity assumes syntax.EntityStart has been consumed.
func (s *Scanner) readEntity(b *strings.Builder, syntax Syntax) {
	var name strings.Builder
	for s.HasNext() {
		r := s.Next()
		if r == syntax.EntityEnd {
			if v, ok := syntax.resolve(name.String()); ok {
				b.WriteString(v)
			} else {
				b.WriteRune(syntax.EntityStart)
				b.WriteString(name.String())
				b.WriteRune(syntax.EntityEnd)
			}
			return
		}
		name.WriteRune(r)
	}
	// unterminated entity at end of input
	b.WriteRune(syntax.EntityStart)
	b.WriteString(name.String())
}

// ReadUntilFilter reads up to the first character accepted by stop. Unlike
// ReadUntil the stop character is not consumed; the cursor is left on it.
func (s *Scanner) ReadUntilFilter(stop CharFilter, acceptEOF bool) (string, bool) {
	return s.ReadUntilFilterEscaped(stop, acceptEOF, NUL)
}

// ReadUntilFilterEscaped is like ReadUntilFilter, but a character accepted by
// stop is taken literally when preceded by escape. A doubled escape yields a
// single escape.
func (s *Scanner) ReadUntilFilterEscaped(stop CharFilter, acceptEOF bool, escape rune) (string, bool) {
	var b strings.Builder
	for s.HasNext() {
		r := s.Peek()
		if r == escape && escape != NUL {
			if n, ok := s.PeekAt(1); ok && (n == escape || stop.Accept(n)) {
				s.Next()
				b.WriteRune(s.Next())
				continue
			}
		}
		if stop.Accept(r) {
			return b.String(), true
		}
		b.WriteRune(s.Next())
	}
	return eofResult(&b, acceptEOF)
}

// ReadUntilFilterSuffix reads up to the first character that is accepted by
// stop and starts an occurrence of suffix. The returned text never contains
// the suffix; includeSuffix decides whether the cursor is left on the stop
// character or moved past the suffix. An empty suffix makes this
// ReadUntilFilter.
func (s *Scanner) ReadUntilFilterSuffix(stop CharFilter, acceptEOF bool, suffix string, ignoreCase, includeSuffix bool) (string, bool) {
	var b strings.Builder
	n := len([]rune(suffix))
	for s.HasNext() {
		r := s.Peek()
		if stop.Accept(r) && s.matchesAhead(suffix, ignoreCase) {
			if includeSuffix {
				s.Read(n)
			}
			return b.String(), true
		}
		b.WriteRune(s.Next())
	}
	return eofResult(&b, acceptEOF)
}

// SkipUntil consumes everything through the first occurrence of stop. It
// returns false if stop was not found, with the cursor at the end of input.
func (s *Scanner) SkipUntil(stop rune) bool {
	for s.HasNext() {
		if s.Next() == stop {
			return true
		}
	}
	return false
}

// SkipUntilEscaped is the non-accumulating form of ReadUntilEscaped.
func (s *Scanner) SkipUntilEscaped(stop, escape rune) bool {
	for s.HasNext() {
		r := s.Next()
		if r == escape && escape != NUL && s.HasNext() {
			if n := s.Peek(); n == stop || n == escape {
				s.Next()
				continue
			}
		}
		if r == stop {
			return true
		}
	}
	return false
}

// ReadWhile reads as long as filter accepts the next character, but at most
// max characters. A max below 1 means no limit.
func (s *Scanner) ReadWhile(filter CharFilter, max int) string {
	var b strings.Builder
	for i := 0; (max < 1 || i < max) && s.HasNext() && filter.Accept(s.Peek()); i++ {
		b.WriteRune(s.Next())
	}
	return b.String()
}

// SkipWhile consumes characters accepted by filter and returns how many.
func (s *Scanner) SkipWhile(filter CharFilter) int {
	n := 0
	for s.HasNext() && filter.Accept(s.Peek()) {
		s.Next()
		n++
	}
	return n
}

// SkipWhileChar consumes repetitions of r and returns how many.
func (s *Scanner) SkipWhileChar(r rune) int {
	n := 0
	for s.HasNext() && s.Peek() == r {
		s.Next()
		n++
	}
	return n
}

// SkipNewLine consumes a single "\n", "\r\n" or "\r" and returns the number
// of characters consumed.
func (s *Scanner) SkipNewLine() int {
	switch s.ForcePeek() {
	case '\n':
		s.Next()
		return 1
	case '\r':
		s.Next()
		if s.ForcePeek() == '\n' {
			s.Next()
			return 2
		}
		return 1
	}
	return 0
}

// ReadLine reads the rest of the current line and consumes its line break.
// The result is false only if the input was already exhausted.
func (s *Scanner) ReadLine(trim bool) (string, bool) {
	if !s.HasNext() {
		return "", false
	}
	line, _ := s.ReadUntilFilter(Newline, true)
	s.SkipNewLine()
	if trim {
		line = strings.TrimSpace(line)
	}
	return line, true
}

func eofResult(b *strings.Builder, acceptEOF bool) (string, bool) {
	if acceptEOF {
		return b.String(), true
	}
	return "", false
}

package scanner

// Expect consumes the next character if it equals r.
func (s *Scanner) Expect(r rune) bool {
	if s.HasNext() && s.Peek() == r {
		s.Next()
		return true
	}
	return false
}

// ExpectString consumes expected if the input continues with it. Matching is
// not transactional: on a mismatch the matching prefix stays consumed and the
// cursor is left on the first character that differs.
func (s *Scanner) ExpectString(expected string, ignoreCase bool) bool {
	for _, e := range expected {
		if !s.HasNext() || !equalRune(s.Peek(), e, ignoreCase) {
			return false
		}
		s.Next()
	}
	return true
}

// ExpectStrict consumes expected if the input continues with it and leaves
// the cursor untouched otherwise. On a Stream the length of expected must not
// exceed the lookahead capacity.
func (s *Scanner) ExpectStrict(expected string, ignoreCase bool) bool {
	if !s.matchesAhead(expected, ignoreCase) {
		return false
	}
	s.Read(len([]rune(expected)))
	return true
}

func (s *Scanner) matchesAhead(expected string, ignoreCase bool) bool {
	i := 0
	for _, e := range expected {
		r, ok := s.PeekAt(i)
		if !ok || !equalRune(r, e, ignoreCase) {
			return false
		}
		i++
	}
	return true
}

// Require consumes r or returns a *ParseError.
func (s *Scanner) Require(r rune) error {
	if s.Expect(r) {
		return nil
	}
	return s.parseError(string(r), 1)
}

// RequireString consumes expected or returns a *ParseError, leaving the
// cursor where it was.
func (s *Scanner) RequireString(expected string, ignoreCase bool) error {
	if s.ExpectStrict(expected, ignoreCase) {
		return nil
	}
	return s.parseError(expected, len([]rune(expected)))
}

func (s *Scanner) parseError(expected string, n int) *ParseError {
	return &ParseError{
		Index:     s.Index(),
		Expected:  expected,
		Unmatched: s.PeekString(n),
	}
}

// SkipOver searches forward for substring and moves the cursor past the
// first occurrence. If stop is not nil and accepts a character before an
// occurrence starts, the search is aborted with the cursor just past that
// character. Without a match the cursor ends at the end of input.
func (s *Scanner) SkipOver(substring string, ignoreCase bool, stop CharFilter) bool {
	n := len([]rune(substring))
	for {
		if s.matchesAhead(substring, ignoreCase) {
			s.Read(n)
			return true
		}
		if !s.HasNext() {
			return false
		}
		if r := s.Next(); stop != nil && stop.Accept(r) {
			return false
		}
	}
}

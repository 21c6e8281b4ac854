package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpect(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newScanner func(string) *Scanner) {
		s := newScanner("ab")
		assert.False(t, s.Expect('b'))
		assert.Equal(t, 0, s.Index())
		assert.True(t, s.Expect('a'))
		assert.True(t, s.Expect('b'))
		assert.False(t, s.Expect('b'))
	})
}

func TestExpectString(t *testing.T) {
	forBackends(t, lookaheadBackends, func(t *testing.T, newScanner func(string) *Scanner) {
		t.Run("partial match consumes prefix", func(t *testing.T) {
			s := newScanner("Hello World!")
			assert.False(t, s.ExpectString("Hello WorlD", false))
			assert.Equal(t, 10, s.Index())
			assert.Equal(t, 'd', s.Peek())
		})

		t.Run("strict restores cursor", func(t *testing.T) {
			s := newScanner("Hello World!")
			assert.False(t, s.ExpectStrict("Hello WorlD", false))
			assert.Equal(t, 0, s.Index())
			assert.Equal(t, 'H', s.Peek())
		})

		t.Run("ignore case", func(t *testing.T) {
			s := newScanner("Hello World!")
			assert.True(t, s.ExpectString("hello world", true))
			assert.Equal(t, '!', s.Peek())

			s = newScanner("Hello World!")
			assert.True(t, s.ExpectStrict("HELLO WORLD", true))
			assert.Equal(t, '!', s.Peek())
		})

		t.Run("input too short", func(t *testing.T) {
			s := newScanner("Hel")
			assert.False(t, s.ExpectStrict("Hello", false))
			assert.Equal(t, 0, s.Index())

			assert.False(t, s.ExpectString("Hello", false))
			assert.False(t, s.HasNext())
		})

		t.Run("empty expectation", func(t *testing.T) {
			s := newScanner("abc")
			assert.True(t, s.ExpectString("", false))
			assert.True(t, s.ExpectStrict("", false))
			assert.Equal(t, 0, s.Index())
		})
	})
}

func TestRequire(t *testing.T) {
	forBackends(t, lookaheadBackends, func(t *testing.T, newScanner func(string) *Scanner) {
		s := newScanner("select * from t")
		require.NoError(t, s.RequireString("SELECT", true))
		require.NoError(t, s.Require(' '))

		err := s.Require('x')
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "x", perr.Expected)
		assert.Equal(t, "*", perr.Unmatched)
		assert.Equal(t, 7, perr.Index)

		s.Read(2)
		err = s.RequireString("into", false)
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "into", perr.Expected)
		assert.Equal(t, "from", perr.Unmatched)
		assert.Equal(t, 9, s.Index())
	})
}

func TestSkipOver(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		substring  string
		ignoreCase bool
		stop       CharFilter
		expected   bool
		rest       string
	}{
		{"found", "foo bar baz", "bar", false, nil, true, " baz"},
		{"found at start", "barbaz", "bar", false, nil, true, "baz"},
		{"ignore case", "FOO BAR baz", "bar", true, nil, true, " baz"},
		{"case mismatch", "FOO BAR baz", "bar", false, nil, false, ""},
		{"not found", "foo", "x", false, nil, false, ""},
		{"overlapping prefix", "aaab", "aab", false, nil, true, ""},
		{"stopped", "foo;bar", "bar", false, ListFilter(';'), false, "bar"},
		{"match before stop", "foo bar;", "bar", false, ListFilter(';'), true, ";"},
		{"empty substring", "abc", "", false, nil, true, "abc"},
	}
	forBackends(t, lookaheadBackends, func(t *testing.T, newScanner func(string) *Scanner) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := newScanner(tt.input)
				assert.Equal(t, tt.expected, s.SkipOver(tt.substring, tt.ignoreCase, tt.stop))
				assert.Equal(t, tt.rest, s.Read(100))
			})
		}
	})
}

package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJavaStringLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		rest     string
	}{
		{"octal and unicode escapes", "\"Hi \\\"\\176\\477\\579\\u2022\\uuuuu2211\\\"\\n\"", "Hi \"~'7/9•∑\"\n", ""},
		{"empty", `""x`, "", "x"},
		{"single character escapes", `"\b\t\n\f\r\s\'\\"`, "\b\t\n\f\r '\\", ""},
		{"octal boundaries", `"\0\7\08\377\400"`, "\x00\x07\x008\u00ff \x30", ""},
		{"upper case hex", `"\u00E9\u00e9"`, "éé", ""},
		{"non ascii passes through", `"• ∑"rest`, "• ∑", "rest"},
		{"surrogate pair", `"\uD83D\uDE00!"`, "😀!", ""},
		{"surrogate pair with repeated u", `"\uuD83D\uuude00"`, "😀", ""},
		{"unpaired high surrogate", `"\uD83Dx\uD83D\u0041"`, "\uFFFDx\uFFFDA", ""},
		{"high surrogate before other escape", `"\uD83D\n"`, "\uFFFD\n", ""},
		{"lone low surrogate", `"\uDE00"`, "\uFFFD", ""},
	}
	forEachBackend(t, func(t *testing.T, newScanner func(string) *Scanner) {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := newScanner(tt.input)
				text, err := s.ReadJavaStringLiteral()
				require.NoError(t, err)
				assert.Equal(t, tt.expected, text)
				assert.Equal(t, tt.rest, s.Read(100))
			})
		}
	})
}

func TestReadJavaStringLiteral_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing quote", `abc"`},
		{"unterminated", `"abc`},
		{"illegal escape", `"\q"`},
		{"short unicode escape", `"\u12"`},
		{"bad hex digit", `"\u12g4"`},
		{"escape at end", `"\`},
		{"bad escape after high surrogate", `"\uD83D\uZZ00"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromString(tt.input).ReadJavaStringLiteral()
			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
		})
	}
}

func TestReadJavaCharLiteral(t *testing.T) {
	tests := []struct {
		input    string
		expected rune
	}{
		{`'a'`, 'a'},
		{`'\n'`, '\n'},
		{`'\''`, '\''},
		{`'\u0041'`, 'A'},
		{`'\101'`, 'A'},
		{`'∑'`, '∑'},
	}
	forEachBackend(t, func(t *testing.T, newScanner func(string) *Scanner) {
		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				r, err := newScanner(tt.input).ReadJavaCharLiteral()
				require.NoError(t, err)
				assert.Equal(t, tt.expected, r)
			})
		}
	})

	for _, input := range []string{`''`, `'ab'`, `a`, `'`} {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := FromString(input).ReadJavaCharLiteral()
			assert.Error(t, err)
		})
	}
}

package scanner

import (
	"unicode"

	"github.com/smasher164/xid"
)

// CharFilter decides whether a single character belongs to some class.
// Scanner operations use it as a stop condition or to select characters to
// read or skip.
type CharFilter interface {
	Accept(r rune) bool
}

// CharFilterFunc adapts an ordinary predicate to a CharFilter.
type CharFilterFunc func(r rune) bool

func (f CharFilterFunc) Accept(r rune) bool {
	return f(r)
}

var (
	AcceptAll CharFilter = CharFilterFunc(func(rune) bool { return true })

	ASCIILetter CharFilter = CharFilterFunc(func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})

	ASCIIDigit CharFilter = CharFilterFunc(func(r rune) bool {
		return r >= '0' && r <= '9'
	})

	Whitespace CharFilter = CharFilterFunc(unicode.IsSpace)

	Newline CharFilter = CharFilterFunc(func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	// IdentifierStart accepts characters with the Unicode XID_Start property.
	IdentifierStart CharFilter = CharFilterFunc(xid.Start)

	// IdentifierPart accepts characters with the Unicode XID_Continue property.
	IdentifierPart CharFilter = CharFilterFunc(xid.Continue)
)

// ListFilter accepts exactly the given characters.
func ListFilter(chars ...rune) CharFilter {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return CharFilterFunc(func(r rune) bool {
		_, ok := set[r]
		return ok
	})
}

// Not inverts a filter.
func Not(f CharFilter) CharFilter {
	return CharFilterFunc(func(r rune) bool { return !f.Accept(r) })
}

// Any accepts a character if at least one of the filters does.
func Any(filters ...CharFilter) CharFilter {
	return CharFilterFunc(func(r rune) bool {
		for _, f := range filters {
			if f.Accept(r) {
				return true
			}
		}
		return false
	})
}

package scanner

// NUL is returned by the forcing operations once the input is exhausted. In a
// Syntax it marks a delimiter as disabled.
const NUL rune = 0

// QuotePolicy describes one kind of quotation.
//
// Inside a quotation every character is copied verbatim until End. If Escape
// is set, Escape followed by End (or by a second Escape) yields the literal
// character. When Start, End and Escape are all the same character a doubled
// occurrence right after Start is ambiguous; Lazy selects between reading it
// as an escaped literal (true) or as an empty quotation (false).
type QuotePolicy struct {
	Start  rune
	End    rune
	Escape rune
	Lazy   bool
}

// Enabled reports whether the policy has a start and an end delimiter.
func (p QuotePolicy) Enabled() bool {
	return p.Start != NUL && p.End != NUL
}

// DoubledQuote returns a policy where the quote character is escaped by
// doubling it, as in SQL string literals.
func DoubledQuote(q rune, lazy bool) QuotePolicy {
	return QuotePolicy{Start: q, End: q, Escape: q, Lazy: lazy}
}

// Syntax configures ReadUntilSyntax. The zero value disables everything, so
// reading with it is the same as a plain ReadUntil.
type Syntax struct {
	Escape   rune
	Quote    QuotePolicy
	AltQuote QuotePolicy

	EntityStart rune
	EntityEnd   rune
	// Resolve maps an entity name to its replacement. A false result makes
	// the scanner keep the entity text as it appeared in the input.
	Resolve func(name string) (string, bool)
}

// WithEntities returns a copy of the syntax with entity handling enabled.
func (s Syntax) WithEntities(start, end rune, resolve func(string) (string, bool)) Syntax {
	s.EntityStart = start
	s.EntityEnd = end
	s.Resolve = resolve
	return s
}

func (s Syntax) entitiesEnabled() bool {
	return s.EntityStart != NUL && s.EntityEnd != NUL
}

func (s Syntax) resolve(name string) (string, bool) {
	if s.Resolve == nil {
		return "", false
	}
	return s.Resolve(name)
}

// MapResolver resolves entities from a fixed table.
func MapResolver(entities map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := entities[name]
		return v, ok
	}
}

var xmlEntities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"quot": "\"",
	"apos": "'",
}

var (
	// SQLSyntax reads 'string literals' with '' as the escaped quote and
	// "quoted identifiers" with "" as the escaped double quote.
	SQLSyntax = Syntax{
		Quote:    DoubledQuote('\'', false),
		AltQuote: DoubledQuote('"', false),
	}

	// XMLSyntax reads attribute-style values in either quote kind and
	// resolves the predefined XML entities.
	XMLSyntax = Syntax{
		Quote:    QuotePolicy{Start: '"', End: '"'},
		AltQuote: QuotePolicy{Start: '\'', End: '\''},
	}.WithEntities('&', ';', MapResolver(xmlEntities))
)

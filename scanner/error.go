package scanner

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrExhausted is the panic value of Next when no character is left.
	ErrExhausted = errors.New("scanner: read past end of input")

	// ErrLookahead is the panic value when an operation needs to look further
	// ahead than a stream's buffer capacity allows.
	ErrLookahead = errors.New("scanner: lookahead exceeds buffer capacity")
)

// ParseError is returned when the input does not contain what the caller
// required at the current position.
type ParseError struct {
	Index     int    // byte offset where matching started
	Expected  string // what the caller asked for
	Unmatched string // input found at Index instead
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: expected %q but found %q", e.Index, e.Expected, e.Unmatched)
}

// NumberFormatError is returned when no valid numeric literal could be read.
type NumberFormatError struct {
	Index int
	Text  string
	Err   error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("offset %d: invalid number %q: %v", e.Index, e.Text, e.Err)
}

func (e *NumberFormatError) Unwrap() error {
	return e.Err
}

func (e *NumberFormatError) Cause() error {
	return e.Err
}

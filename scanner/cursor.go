package scanner

// Cursor is the set of primitives a character source has to provide. Every
// other Scanner operation is built on these.
//
// Index is a byte offset into the UTF-8 encoded input. It satisfies
// 0 <= Index() <= length, and HasNext() is false exactly when the cursor is at
// the end.
type Cursor interface {
	// Index returns the byte offset of the next unread character.
	Index() int

	// HasNext reports whether at least one more character can be read.
	HasNext() bool

	// Next consumes and returns the next character. It panics with
	// ErrExhausted if HasNext() is false.
	Next() rune

	// Peek returns the next character without consuming it, or NUL at the end.
	Peek() rune

	// PeekAt returns the character offset positions ahead of the cursor
	// without consuming anything. The result is false past the end of input.
	PeekAt(offset int) (rune, bool)

	// ForceNext is like Next, but returns NUL and leaves the cursor alone when
	// the input is exhausted.
	ForceNext() rune

	// ForcePeek is like Peek. It never fails.
	ForcePeek() rune

	// Read consumes up to count characters and returns them. Fewer are
	// returned if the input ends first. Bytes that are not valid UTF-8 are
	// read as U+FFFD, one per byte.
	Read(count int) string
}

// substringer is implemented by cursors that can cut text out of their input
// without copying it character by character.
type substringer interface {
	Substring(start, end int) string
}

package wire

import "github.com/meszmate/imap-wire/core"

// cursor is the streaming byte-slice abstraction every primitive
// parser consumes from. It never backtracks past bytes a caller has
// already committed to (see pos), and any rule that would need to
// read past the end of buf reports Incomplete rather than guessing.
type cursor struct {
	b   []byte
	pos int
	ext Extensions
}

func newCursor(b []byte, ext Extensions) *cursor {
	return &cursor{b: b, ext: ext}
}

func (c *cursor) remaining() []byte { return c.b[c.pos:] }

func (c *cursor) eof() bool { return c.pos >= len(c.b) }

// peekByte returns the next byte without consuming it, or false if
// the buffer is exhausted.
func (c *cursor) peekByte() (byte, bool) {
	if c.pos >= len(c.b) {
		return 0, false
	}
	return c.b[c.pos], true
}

// peekAt returns the byte at offset bytes past the current position,
// or false if that position is not yet available.
func (c *cursor) peekAt(offset int) (byte, bool) {
	if c.pos+offset >= len(c.b) {
		return 0, false
	}
	return c.b[c.pos+offset], true
}

func (c *cursor) advance(n int) { c.pos += n }

// expectByte consumes b if it is next, failing with a SyntaxError
// otherwise (or Incomplete if the buffer is simply too short to know).
func (c *cursor) expectByte(want byte) error {
	got, ok := c.peekByte()
	if !ok {
		return Incomplete
	}
	if got != want {
		return errExpected(string(want), c.pos)
	}
	c.advance(1)
	return nil
}

// expectBytes consumes the literal sequence want.
func (c *cursor) expectBytes(want string) error {
	for i := 0; i < len(want); i++ {
		got, ok := c.peekAt(i)
		if !ok {
			return Incomplete
		}
		if got != want[i] {
			return errExpected(want, c.pos)
		}
	}
	c.advance(len(want))
	return nil
}

// expectKeyword consumes the fixed word want, matching ASCII letters
// case-insensitively (protocol keywords are case-insensitive on the
// wire).
func (c *cursor) expectKeyword(want string) error {
	for i := 0; i < len(want); i++ {
		got, ok := c.peekAt(i)
		if !ok {
			return Incomplete
		}
		w := want[i]
		if got != w && toUpperByte(got) != toUpperByte(w) {
			return errExpected(want, c.pos)
		}
	}
	c.advance(len(want))
	return nil
}

func toUpperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// expectCRLF consumes a trailing CRLF, the terminator of every IMAP
// line.
func (c *cursor) expectCRLF() error {
	return c.expectBytes("\r\n")
}

// expectSP consumes a single space, the field separator used
// throughout the grammar.
func (c *cursor) expectSP() error {
	return c.expectByte(' ')
}

// takeWhile1 greedily consumes bytes matching pred, requiring at
// least one. Because the buffer may still be growing, reaching the
// end of buf without seeing a byte that fails pred is ambiguous and
// reported as Incomplete rather than treated as a terminator.
func (c *cursor) takeWhile1(pred func(byte) bool, rule string) (string, error) {
	start := c.pos
	for c.pos < len(c.b) {
		if !pred(c.b[c.pos]) {
			if c.pos == start {
				return "", errExpected(rule, start)
			}
			return string(c.b[start:c.pos]), nil
		}
		c.pos++
	}
	c.pos = start
	return "", Incomplete
}

// takeN consumes exactly n bytes, or reports Incomplete if fewer are
// available.
func (c *cursor) takeN(n int) ([]byte, error) {
	if c.pos+n > len(c.b) {
		return nil, Incomplete
	}
	b := c.b[c.pos : c.pos+n]
	c.advance(n)
	return b, nil
}

// takeTextToCR consumes TEXT-CHARs up to (not including) the first
// CR, reporting Incomplete when no CR is buffered yet (the text may
// still be growing).
func (c *cursor) takeTextToCR() (string, error) {
	i := c.pos
	for i < len(c.b) {
		b := c.b[i]
		if b == '\r' {
			s := string(c.b[c.pos:i])
			c.pos = i
			return s, nil
		}
		if !core.IsTextChar(b) {
			return "", errExpected("text", i)
		}
		i++
	}
	return "", Incomplete
}

// takeUntilByte consumes bytes up to (not including) the first
// occurrence of stop, reporting Incomplete if stop is not found
// within the buffered bytes. The byte after each escape byte is
// skipped, so an escaped stop does not end the run; unescaping is left
// to the caller (used by quoted date-time parsing).
func (c *cursor) takeUntilByte(stop byte, escape byte) ([]byte, error) {
	i := c.pos
	for i < len(c.b) {
		if c.b[i] == escape {
			i += 2
			continue
		}
		if c.b[i] == stop {
			b := c.b[c.pos:i]
			c.pos = i
			return b, nil
		}
		i++
	}
	return nil, Incomplete
}

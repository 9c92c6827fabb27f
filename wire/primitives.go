package wire

import (
	"encoding/base64"
	"strconv"
	"time"

	"github.com/meszmate/imap-wire/core"
)

func parseAtom(c *cursor) (core.Atom, error) {
	s, err := c.takeWhile1(core.IsAtomChar, "atom")
	if err != nil {
		return core.Atom{}, err
	}
	return core.UnvalidatedAtom(s), nil
}

func parseAtomExt(c *cursor) (core.AtomExt, error) {
	s, err := c.takeWhile1(core.IsAtomExtChar, "atom-ext")
	if err != nil {
		return core.AtomExt{}, err
	}
	a, err := core.NewAtomExt(s)
	if err != nil {
		return core.AtomExt{}, err
	}
	return a, nil
}

func parseTag(c *cursor) (core.Tag, error) {
	s, err := c.takeWhile1(func(b byte) bool {
		return b != '+' && core.IsAtomExtChar(b)
	}, "tag")
	if err != nil {
		return core.Tag{}, err
	}
	return core.NewTag(s)
}

// parseQuoted parses a double-quoted string, unescaping \" and \\.
func parseQuoted(c *cursor) (core.Quoted, error) {
	if err := c.expectByte('"'); err != nil {
		return core.Quoted{}, err
	}
	var out []byte
	for {
		b, ok := c.peekByte()
		if !ok {
			return core.Quoted{}, Incomplete
		}
		switch b {
		case '"':
			c.advance(1)
			return core.NewQuoted(string(out))
		case '\\':
			esc, ok := c.peekAt(1)
			if !ok {
				return core.Quoted{}, Incomplete
			}
			if esc != '"' && esc != '\\' {
				return core.Quoted{}, errExpected(`escaped '"' or '\\'`, c.pos+1)
			}
			out = append(out, esc)
			c.advance(2)
		case '\r', '\n', 0:
			return core.Quoted{}, errExpected("quoted-char", c.pos)
		default:
			out = append(out, b)
			c.advance(1)
		}
	}
}

// parseLiteralHeader parses "{" number ["+"] "}" CRLF, returning the
// declared length and sync mode. It does not consume the payload.
func parseLiteralHeader(c *cursor) (uint32, core.LiteralMode, error) {
	start := c.pos
	if err := c.expectByte('{'); err != nil {
		return 0, 0, err
	}
	digits, err := c.takeWhile1(isDigit, "literal length")
	if err != nil {
		c.pos = start
		return 0, 0, err
	}
	n, convErr := strconv.ParseUint(digits, 10, 32)

	mode := core.LiteralSync
	b, ok := c.peekByte()
	if !ok {
		c.pos = start
		return 0, 0, Incomplete
	}
	if b == '+' || b == '-' {
		if !c.ext.LiteralPlus {
			c.pos = start
			return 0, 0, errExpected("'}'", c.pos)
		}
		mode = core.LiteralNonSync
		c.advance(1)
	}
	if err := c.expectByte('}'); err != nil {
		c.pos = start
		return 0, 0, err
	}
	if err := c.expectCRLF(); err != nil {
		c.pos = start
		return 0, 0, err
	}
	if convErr != nil {
		return 0, 0, errBadNumber(start)
	}
	return uint32(n), mode, nil
}

// parseLiteral parses a full literal: header, then exactly that many
// payload bytes, rejecting any NUL byte found among them.
func parseLiteral(c *cursor) (core.Literal, error) {
	start := c.pos
	length, mode, err := parseLiteralHeader(c)
	if err != nil {
		return core.Literal{}, err
	}
	payload, err := c.takeN(int(length))
	if err != nil {
		// LiteralFound is reported only when the buffer stops exactly
		// at the literal boundary: a server decides there whether to
		// send a continuation request. Once any payload byte has
		// arrived that decision is behind us and the condition is a
		// plain Incomplete.
		if c.eof() {
			return core.Literal{}, LiteralFound{Length: length, Mode: mode}
		}
		return core.Literal{}, Incomplete
	}
	for i, b := range payload {
		if b == 0 {
			return core.Literal{}, errLiteralContainsNull(start + i)
		}
	}
	return core.NewLiteralMode(payload, mode)
}

func parseIString(c *cursor) (core.IString, error) {
	b, ok := c.peekByte()
	if !ok {
		return core.IString{}, Incomplete
	}
	if b == '{' {
		l, err := parseLiteral(c)
		if err != nil {
			return core.IString{}, err
		}
		return core.NewIStringLiteral(l), nil
	}
	q, err := parseQuoted(c)
	if err != nil {
		return core.IString{}, err
	}
	return core.NewIStringQuoted(q), nil
}

func parseNString(c *cursor) (core.NString, error) {
	if b, ok := c.peekByte(); ok && (b == 'N' || b == 'n') {
		if err := c.expectKeyword("NIL"); err == nil {
			return core.NewNStringNil(), nil
		} else if err == Incomplete {
			return core.NString{}, Incomplete
		}
	}
	s, err := parseIString(c)
	if err != nil {
		return core.NString{}, err
	}
	return core.NewNString(s), nil
}

func parseAString(c *cursor) (core.AString, error) {
	b, ok := c.peekByte()
	if !ok {
		return core.AString{}, Incomplete
	}
	if b == '"' || b == '{' {
		s, err := parseIString(c)
		if err != nil {
			return core.AString{}, err
		}
		return core.NewAStringIString(s), nil
	}
	a, err := parseAtomExt(c)
	if err != nil {
		return core.AString{}, err
	}
	return core.NewAStringAtom(a), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseNumber parses a non-empty decimal run into a uint32.
func parseNumber(c *cursor) (uint32, error) {
	start := c.pos
	digits, err := c.takeWhile1(isDigit, "number")
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.ParseUint(digits, 10, 32)
	if convErr != nil {
		return 0, errBadNumber(start)
	}
	return uint32(n), nil
}

// parseNZNumber is parseNumber additionally rejecting zero.
func parseNZNumber(c *cursor) (uint32, error) {
	start := c.pos
	n, err := parseNumber(c)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errBadNumber(start)
	}
	return n, nil
}

// parseBase64 parses a base64 run and decodes it.
func parseBase64(c *cursor) ([]byte, error) {
	start := c.pos
	s, err := c.takeWhile1(func(b byte) bool {
		return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '+' || b == '/' || b == '='
	}, "base64")
	if err != nil {
		return nil, err
	}
	decoded, decErr := base64.StdEncoding.DecodeString(s)
	if decErr != nil {
		return nil, errBadBase64(start)
	}
	return decoded, nil
}

// parseDate parses a bare date-day "-" date-month "-" date-year
// triple, as used in SEARCH date keys (e.g. "1-Jan-2026").
func parseDate(c *cursor) (time.Time, error) {
	start := c.pos
	day, err := c.takeWhile1(isDigit, "date-day")
	if err != nil {
		return time.Time{}, err
	}
	if err := c.expectByte('-'); err != nil {
		c.pos = start
		return time.Time{}, err
	}
	month, err := c.takeN(3)
	if err != nil {
		c.pos = start
		return time.Time{}, err
	}
	if err := c.expectByte('-'); err != nil {
		c.pos = start
		return time.Time{}, err
	}
	year, err := c.takeN(4)
	if err != nil {
		c.pos = start
		return time.Time{}, err
	}
	t, perr := time.Parse("2-Jan-2006", day+"-"+string(month)+"-"+string(year))
	if perr != nil {
		return time.Time{}, errBadDateTime(start)
	}
	// time.Parse normalizes out-of-range days (Feb 30 becomes Mar 1)
	// instead of failing; an impossible calendar date must be rejected,
	// and any normalization shows up as a changed day-of-month.
	if dayNum, _ := strconv.Atoi(day); t.Day() != dayNum {
		return time.Time{}, errBadDateTime(start)
	}
	return t, nil
}

// parseDateTime parses a quoted date-time, "DD-Mon-YYYY HH:MM:SS
// +ZZZZ", as used by APPEND and FETCH INTERNALDATE.
func parseDateTime(c *cursor) (time.Time, error) {
	start := c.pos
	if err := c.expectByte('"'); err != nil {
		return time.Time{}, err
	}
	raw, err := c.takeUntilByte('"', '\\')
	if err != nil {
		c.pos = start
		return time.Time{}, err
	}
	c.advance(1)
	s := string(raw)
	// date-day-fixed permits a space-padded single-digit day.
	if len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	t, perr := time.Parse("2-Jan-2006 15:04:05 -0700", s)
	if perr != nil {
		return time.Time{}, errBadDateTime(start)
	}
	// Same normalization trap as parseDate: verify the day survived.
	dayEnd := 0
	for dayEnd < len(s) && isDigit(s[dayEnd]) {
		dayEnd++
	}
	if dayNum, _ := strconv.Atoi(s[:dayEnd]); t.Day() != dayNum {
		return time.Time{}, errBadDateTime(start)
	}
	return t, nil
}

// parseCharset parses Atom | Quoted.
func parseCharset(c *cursor) (core.Charset, error) {
	b, ok := c.peekByte()
	if !ok {
		return core.Charset{}, Incomplete
	}
	if b == '"' {
		q, err := parseQuoted(c)
		if err != nil {
			return core.Charset{}, err
		}
		return core.NewCharsetQuoted(q), nil
	}
	a, err := parseAtom(c)
	if err != nil {
		return core.Charset{}, err
	}
	return core.NewCharset(a.String())
}

package wire

import (
	"strings"

	imap "github.com/meszmate/imap-wire"
	"github.com/meszmate/imap-wire/core"
)

// isFetchTokenChar bounds the characters of a fetch-att keyword.
// This is deliberately narrower than atom-char: '[' must terminate
// the keyword so "BODY[" splits into the keyword and its section.
func isFetchTokenChar(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '.'
}

// parseFetchSpec parses the attribute part of a FETCH command: one of
// the ALL/FULL/FAST macros, a single fetch-att, or a parenthesised
// fetch-att list.
func parseFetchSpec(c *cursor) (imap.FetchMacro, []imap.FetchAttr, error) {
	b, ok := c.peekByte()
	if !ok {
		return imap.FetchMacroNone, nil, Incomplete
	}
	if b == '(' {
		c.advance(1)
		var attrs []imap.FetchAttr
		for {
			attr, err := parseFetchAttr(c)
			if err != nil {
				return imap.FetchMacroNone, nil, err
			}
			attrs = append(attrs, attr)
			nb, ok := c.peekByte()
			if !ok {
				return imap.FetchMacroNone, nil, Incomplete
			}
			if nb == ' ' {
				c.advance(1)
				continue
			}
			if nb == ')' {
				c.advance(1)
				return imap.FetchMacroNone, attrs, nil
			}
			return imap.FetchMacroNone, nil, errExpected("')' or SP", c.pos)
		}
	}

	start := c.pos
	word, err := c.takeWhile1(isFetchTokenChar, "fetch-att")
	if err != nil {
		return imap.FetchMacroNone, nil, err
	}
	switch strings.ToUpper(word) {
	case "ALL":
		return imap.FetchMacroAll, nil, nil
	case "FAST":
		return imap.FetchMacroFast, nil, nil
	case "FULL":
		return imap.FetchMacroFull, nil, nil
	}
	c.pos = start
	attr, err := parseFetchAttr(c)
	if err != nil {
		return imap.FetchMacroNone, nil, err
	}
	return imap.FetchMacroNone, []imap.FetchAttr{attr}, nil
}

// parseFetchAttr parses a single fetch-att.
func parseFetchAttr(c *cursor) (imap.FetchAttr, error) {
	start := c.pos
	word, err := c.takeWhile1(isFetchTokenChar, "fetch-att")
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(word) {
	case "ENVELOPE":
		return imap.FetchAttrEnvelope{}, nil
	case "FLAGS":
		return imap.FetchAttrFlags{}, nil
	case "INTERNALDATE":
		return imap.FetchAttrInternalDate{}, nil
	case "RFC822":
		return imap.FetchAttrRFC822{}, nil
	case "RFC822.HEADER":
		return imap.FetchAttrRFC822Header{}, nil
	case "RFC822.SIZE":
		return imap.FetchAttrRFC822Size{}, nil
	case "RFC822.TEXT":
		return imap.FetchAttrRFC822Text{}, nil
	case "BODYSTRUCTURE":
		return imap.FetchAttrBodyStructure{}, nil
	case "UID":
		return imap.FetchAttrUID{}, nil
	case "BODY", "BODY.PEEK":
		peek := strings.HasSuffix(strings.ToUpper(word), ".PEEK")
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b != '[' {
			if peek {
				return nil, errExpected("'['", c.pos)
			}
			return imap.FetchAttrBody{}, nil
		}
		section, err := parseSection(c)
		if err != nil {
			return nil, err
		}
		partial, err := parseSectionPartial(c)
		if err != nil {
			return nil, err
		}
		return imap.FetchAttrBodySection{Section: section, Partial: partial, Peek: peek}, nil
	}
	return nil, errExpected("fetch-att", start)
}

// parseSection parses "[" [section-spec] "]". The part-number path
// and the specifier keyword share the dotted-token syntax, so the
// token is read whole and split afterwards: leading all-digit
// segments are the MIME part path, the remainder is the specifier.
func parseSection(c *cursor) (imap.BodySection, error) {
	var s imap.BodySection
	if err := c.expectByte('['); err != nil {
		return s, err
	}
	b, ok := c.peekByte()
	if !ok {
		return s, Incomplete
	}
	if b == ']' {
		c.advance(1)
		return s, nil
	}

	token, err := c.takeWhile1(isFetchTokenChar, "section")
	if err != nil {
		return s, err
	}
	segments := strings.Split(token, ".")
	i := 0
	for i < len(segments) && isAllDigits(segments[i]) {
		n, err := parsePartNumber(segments[i], c.pos)
		if err != nil {
			return s, err
		}
		s.Part = append(s.Part, n)
		i++
	}
	spec := strings.ToUpper(strings.Join(segments[i:], "."))
	switch spec {
	case "":
		s.Specifier = imap.SectionNone
	case "HEADER":
		s.Specifier = imap.SectionHeader
	case "TEXT":
		s.Specifier = imap.SectionText
	case "MIME":
		// MIME is only valid after a part path.
		if len(s.Part) == 0 {
			return s, errExpected("section-msgtext", c.pos)
		}
		s.Specifier = imap.SectionMIME
	case "HEADER.FIELDS", "HEADER.FIELDS.NOT":
		if spec == "HEADER.FIELDS" {
			s.Specifier = imap.SectionHeaderFields
		} else {
			s.Specifier = imap.SectionHeaderFieldsNot
		}
		if err := c.expectSP(); err != nil {
			return s, err
		}
		fields, err := parseHeaderList(c)
		if err != nil {
			return s, err
		}
		s.Fields = fields
	default:
		return s, errExpected("section-spec", c.pos)
	}
	if err := c.expectByte(']'); err != nil {
		return s, err
	}
	return s, nil
}

// parseHeaderList parses "(" header-fld-name *(SP header-fld-name) ")".
func parseHeaderList(c *cursor) ([]core.AString, error) {
	if err := c.expectByte('('); err != nil {
		return nil, err
	}
	var fields []core.AString
	for {
		a, err := parseAString(c)
		if err != nil {
			return nil, err
		}
		fields = append(fields, a)
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b == ' ' {
			c.advance(1)
			continue
		}
		if b == ')' {
			c.advance(1)
			return fields, nil
		}
		return nil, errExpected("')' or SP", c.pos)
	}
}

// parseSectionPartial parses the optional "<" number "." nz-number ">"
// suffix on a fetch-att body section; absent returns nil.
func parseSectionPartial(c *cursor) (*imap.SectionPartial, error) {
	b, ok := c.peekByte()
	if !ok || b != '<' {
		if !ok {
			return nil, Incomplete
		}
		return nil, nil
	}
	c.advance(1)
	offset, err := parseNumber(c)
	if err != nil {
		return nil, err
	}
	if err := c.expectByte('.'); err != nil {
		return nil, err
	}
	count, err := parseNZNumber(c)
	if err != nil {
		return nil, err
	}
	if err := c.expectByte('>'); err != nil {
		return nil, err
	}
	return &imap.SectionPartial{Offset: offset, Count: count}, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// parsePartNumber converts one dotted segment of a section-part path,
// which must be a non-zero uint32.
func parsePartNumber(s string, pos int) (uint32, error) {
	var n uint64
	for i := 0; i < len(s); i++ {
		n = n*10 + uint64(s[i]-'0')
		if n > 0xFFFFFFFF {
			return 0, errBadNumber(pos)
		}
	}
	if n == 0 {
		return 0, errBadNumber(pos)
	}
	return uint32(n), nil
}

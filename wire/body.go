package wire

import (
	"strings"

	imap "github.com/meszmate/imap-wire"
)

// parseBodyStructure parses a parenthesised body, either a single
// part or a multipart container; containers recurse into their
// children before the subtype.
func parseBodyStructure(c *cursor) (imap.BodyStructure, error) {
	var bs imap.BodyStructure
	if err := c.expectByte('('); err != nil {
		return bs, err
	}
	b, ok := c.peekByte()
	if !ok {
		return bs, Incomplete
	}
	if b == '(' {
		return parseBodyMultipart(c)
	}
	return parseBodySinglepart(c)
}

// parseBodyMultipart parses 1*body SP subtype [ext...] ")" with the
// opening "(" already consumed.
func parseBodyMultipart(c *cursor) (imap.BodyStructure, error) {
	var parts []imap.BodyStructure
	for {
		b, ok := c.peekByte()
		if !ok {
			return imap.BodyStructure{}, Incomplete
		}
		if b != '(' {
			break
		}
		part, err := parseBodyStructure(c)
		if err != nil {
			return imap.BodyStructure{}, err
		}
		parts = append(parts, part)
	}
	if err := c.expectSP(); err != nil {
		return imap.BodyStructure{}, err
	}
	subtype, err := parseIString(c)
	if err != nil {
		return imap.BodyStructure{}, err
	}
	ext, err := parseBodyExtTail(c)
	if err != nil {
		return imap.BodyStructure{}, err
	}
	if err := c.expectByte(')'); err != nil {
		return imap.BodyStructure{}, err
	}
	return imap.NewBodyStructureMulti(parts, subtype, ext)
}

// parseBodySinglepart parses media-type SP body-fields plus the
// type-specific tail, with the opening "(" already consumed.
func parseBodySinglepart(c *cursor) (imap.BodyStructure, error) {
	var zero imap.BodyStructure
	typ, err := parseIString(c)
	if err != nil {
		return zero, err
	}
	if err := c.expectSP(); err != nil {
		return zero, err
	}
	subtype, err := parseIString(c)
	if err != nil {
		return zero, err
	}
	if err := c.expectSP(); err != nil {
		return zero, err
	}

	var body imap.Body
	if body.Params, err = parseBodyParams(c); err != nil {
		return zero, err
	}
	if err = c.expectSP(); err != nil {
		return zero, err
	}
	if body.ID, err = parseNString(c); err != nil {
		return zero, err
	}
	if err = c.expectSP(); err != nil {
		return zero, err
	}
	if body.Description, err = parseNString(c); err != nil {
		return zero, err
	}
	if err = c.expectSP(); err != nil {
		return zero, err
	}
	if body.Encoding, err = parseIString(c); err != nil {
		return zero, err
	}
	if err = c.expectSP(); err != nil {
		return zero, err
	}
	if body.Size, err = parseNumber(c); err != nil {
		return zero, err
	}

	typName := string(typ.Bytes())
	subName := string(subtype.Bytes())
	switch {
	case strings.EqualFold(typName, "MESSAGE") && strings.EqualFold(subName, "RFC822"):
		if err = c.expectSP(); err != nil {
			return zero, err
		}
		env, err := parseEnvelope(c)
		if err != nil {
			return zero, err
		}
		if err = c.expectSP(); err != nil {
			return zero, err
		}
		inner, err := parseBodyStructure(c)
		if err != nil {
			return zero, err
		}
		if err = c.expectSP(); err != nil {
			return zero, err
		}
		lines, err := parseNumber(c)
		if err != nil {
			return zero, err
		}
		body.Specific = imap.NewBodySpecificMessage(env, &inner, lines)
	case strings.EqualFold(typName, "TEXT"):
		if err = c.expectSP(); err != nil {
			return zero, err
		}
		lines, err := parseNumber(c)
		if err != nil {
			return zero, err
		}
		body.Specific = imap.NewBodySpecificText(subtype, lines)
	default:
		body.Specific = imap.NewBodySpecificBasic(typ, subtype)
	}

	ext, err := parseBodyExtTail(c)
	if err != nil {
		return zero, err
	}
	if err := c.expectByte(')'); err != nil {
		return zero, err
	}
	return imap.NewBodyStructureSingle(body, ext), nil
}

// parseBodyParams parses a body parameter list: "(" string SP string
// *(SP string SP string) ")" or NIL (empty list).
func parseBodyParams(c *cursor) ([]imap.BodyParam, error) {
	b, ok := c.peekByte()
	if !ok {
		return nil, Incomplete
	}
	if b == 'N' || b == 'n' {
		if err := c.expectKeyword("NIL"); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err := c.expectByte('('); err != nil {
		return nil, err
	}
	var params []imap.BodyParam
	for {
		key, err := parseIString(c)
		if err != nil {
			return nil, err
		}
		if err = c.expectSP(); err != nil {
			return nil, err
		}
		value, err := parseIString(c)
		if err != nil {
			return nil, err
		}
		params = append(params, imap.BodyParam{Key: key, Value: value})
		nb, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if nb == ' ' {
			c.advance(1)
			continue
		}
		if nb == ')' {
			c.advance(1)
			return params, nil
		}
		return nil, errExpected("')' or SP", c.pos)
	}
}

// parseBodyExtTail consumes the optional extension data trailing a
// body: *(SP body-extension) up to the closing parenthesis. MD5,
// disposition, language and location all fit the generic
// nstring/number/list shape, so the tail is parsed uniformly.
func parseBodyExtTail(c *cursor) ([]imap.BodyExtension, error) {
	var ext []imap.BodyExtension
	for {
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b != ' ' {
			return ext, nil
		}
		c.advance(1)
		e, err := parseBodyExtension(c)
		if err != nil {
			return nil, err
		}
		ext = append(ext, e)
	}
}

// parseBodyExtension parses one body-extension element: an nstring, a
// number, or a parenthesised list of further elements.
func parseBodyExtension(c *cursor) (imap.BodyExtension, error) {
	var zero imap.BodyExtension
	b, ok := c.peekByte()
	if !ok {
		return zero, Incomplete
	}
	switch {
	case b == '(':
		c.advance(1)
		var items []imap.BodyExtension
		for {
			e, err := parseBodyExtension(c)
			if err != nil {
				return zero, err
			}
			items = append(items, e)
			nb, ok := c.peekByte()
			if !ok {
				return zero, Incomplete
			}
			if nb == ' ' {
				c.advance(1)
				continue
			}
			if nb == ')' {
				c.advance(1)
				return imap.NewBodyExtensionList(items), nil
			}
			return zero, errExpected("')' or SP", c.pos)
		}
	case isDigit(b):
		n, err := parseNumber(c)
		if err != nil {
			return zero, err
		}
		return imap.NewBodyExtensionNumber(n), nil
	default:
		s, err := parseNString(c)
		if err != nil {
			return zero, err
		}
		return imap.NewBodyExtensionString(s), nil
	}
}

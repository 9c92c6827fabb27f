package wire

import (
	imap "github.com/meszmate/imap-wire"
)

// parseEnvelope parses the parenthesised ENVELOPE value: date,
// subject, six address lists, in-reply-to and message-id.
func parseEnvelope(c *cursor) (imap.Envelope, error) {
	var env imap.Envelope
	if err := c.expectByte('('); err != nil {
		return env, err
	}
	var err error
	if env.Date, err = parseNString(c); err != nil {
		return env, err
	}
	if err = c.expectSP(); err != nil {
		return env, err
	}
	if env.Subject, err = parseNString(c); err != nil {
		return env, err
	}
	for _, dst := range []*[]imap.Address{&env.From, &env.Sender, &env.ReplyTo, &env.To, &env.Cc, &env.Bcc} {
		if err = c.expectSP(); err != nil {
			return env, err
		}
		if *dst, err = parseAddressList(c); err != nil {
			return env, err
		}
	}
	if err = c.expectSP(); err != nil {
		return env, err
	}
	if env.InReplyTo, err = parseNString(c); err != nil {
		return env, err
	}
	if err = c.expectSP(); err != nil {
		return env, err
	}
	if env.MessageID, err = parseNString(c); err != nil {
		return env, err
	}
	if err = c.expectByte(')'); err != nil {
		return env, err
	}
	return env, nil
}

// parseAddressList parses "(" 1*address ")" or NIL; NIL decodes to an
// empty list.
func parseAddressList(c *cursor) ([]imap.Address, error) {
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
	var addrs []imap.Address
	for {
		nb, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if nb == ')' {
			c.advance(1)
			return addrs, nil
		}
		// Some servers separate addresses with a space even though
		// the grammar packs them back to back.
		if nb == ' ' {
			c.advance(1)
			continue
		}
		addr, err := parseAddress(c)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
}

// parseAddress parses "(" name SP route SP mailbox SP host ")".
func parseAddress(c *cursor) (imap.Address, error) {
	var a imap.Address
	if err := c.expectByte('('); err != nil {
		return a, err
	}
	var err error
	if a.Name, err = parseNString(c); err != nil {
		return a, err
	}
	if err = c.expectSP(); err != nil {
		return a, err
	}
	if a.Route, err = parseNString(c); err != nil {
		return a, err
	}
	if err = c.expectSP(); err != nil {
		return a, err
	}
	if a.Mailbox, err = parseNString(c); err != nil {
		return a, err
	}
	if err = c.expectSP(); err != nil {
		return a, err
	}
	if a.Host, err = parseNString(c); err != nil {
		return a, err
	}
	if err = c.expectByte(')'); err != nil {
		return a, err
	}
	return a, nil
}

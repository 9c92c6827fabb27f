package wire

import (
	"strings"

	imap "github.com/meszmate/imap-wire"
)

// parseMailbox parses an astring and applies INBOX normalization.
func parseMailbox(c *cursor) (imap.Mailbox, error) {
	a, err := parseAString(c)
	if err != nil {
		return imap.Mailbox{}, err
	}
	return imap.NewMailboxAString(a), nil
}

// parseFlag parses a single flag token: an optional leading backslash
// followed by an atom, or a bare keyword atom.
func parseFlag(c *cursor) (imap.Flag, error) {
	start := c.pos
	hasSlash := false
	if b, ok := c.peekByte(); ok && b == '\\' {
		hasSlash = true
		c.advance(1)
	} else if !ok {
		return imap.Flag{}, Incomplete
	}
	a, err := parseAtom(c)
	if err != nil {
		c.pos = start
		return imap.Flag{}, err
	}
	token := a.String()
	if hasSlash {
		token = "\\" + token
	}
	return imap.ParseFlag(token)
}

// parseFlagPerm parses a flag-perm: a regular flag, or the "\*"
// wildcard.
func parseFlagPerm(c *cursor) (imap.FlagPerm, error) {
	if b, ok := c.peekByte(); ok && b == '\\' {
		if n, ok := c.peekAt(1); ok && n == '*' {
			c.advance(2)
			return imap.FlagPermWildcard, nil
		}
	}
	f, err := parseFlag(c)
	if err != nil {
		return imap.FlagPerm{}, err
	}
	return imap.NewFlagPerm(f), nil
}

// parseFlagFetch parses a flag-fetch: a regular flag, or \Recent.
func parseFlagFetch(c *cursor) (imap.FlagFetch, error) {
	start := c.pos
	if b, ok := c.peekByte(); ok && b == '\\' {
		save := c.pos
		c.advance(1)
		a, err := parseAtom(c)
		if err != nil {
			c.pos = start
			return imap.FlagFetch{}, err
		}
		if strings.EqualFold(a.String(), "Recent") {
			return imap.FlagFetchRecent, nil
		}
		c.pos = save
	}
	f, err := parseFlag(c)
	if err != nil {
		return imap.FlagFetch{}, err
	}
	return imap.NewFlagFetch(f), nil
}

// parseSeqNo parses a single "nz-number / *" token.
func parseSeqNo(c *cursor) (imap.SeqNo, error) {
	if b, ok := c.peekByte(); ok && b == '*' {
		c.advance(1)
		return imap.Largest, nil
	}
	n, err := parseNZNumber(c)
	if err != nil {
		return imap.SeqNo{}, err
	}
	return imap.NewSeqNo(n)
}

// parseSequence parses a single seq-number or seq-range.
func parseSequence(c *cursor) (imap.Sequence, error) {
	start, err := parseSeqNo(c)
	if err != nil {
		return imap.Sequence{}, err
	}
	if b, ok := c.peekByte(); ok && b == ':' {
		c.advance(1)
		end, err := parseSeqNo(c)
		if err != nil {
			return imap.Sequence{}, err
		}
		return imap.NewRangeSequence(start, end), nil
	}
	return imap.NewSingleSequence(start), nil
}

// parseSequenceSet parses a full 1*(seq / range *("," ...)) set.
func parseSequenceSet(c *cursor) (imap.SequenceSet, error) {
	var items []imap.Sequence
	for {
		seq, err := parseSequence(c)
		if err != nil {
			return imap.SequenceSet{}, err
		}
		items = append(items, seq)
		if b, ok := c.peekByte(); ok && b == ',' {
			c.advance(1)
			continue
		}
		break
	}
	return imap.NewSequenceSet(items)
}

// parseCap parses a single capability atom.
func parseCap(c *cursor) (imap.Cap, error) {
	a, err := parseAtom(c)
	if err != nil {
		return imap.Cap(""), err
	}
	return imap.Cap(a.String()), nil
}

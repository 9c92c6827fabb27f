package wire

import (
	"strings"
	"time"

	imap "github.com/meszmate/imap-wire"
)

// parseSearchCriteria parses the "search-key *(SP search-key)" tail of
// a SEARCH command, up to (not including) the terminating CRLF.
// Multiple top-level keys implicitly AND and are wrapped in a single
// SearchKeyAnd.
func parseSearchCriteria(c *cursor) (imap.SearchKey, error) {
	var keys []imap.SearchKey
	for {
		key, err := parseSearchKey(c, imap.MaxSearchKeyDepth)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b != ' ' {
			break
		}
		c.advance(1)
	}
	if len(keys) == 1 {
		return keys[0], nil
	}
	and, err := imap.NewSearchKeyAnd(keys)
	if err != nil {
		return nil, err
	}
	return and, nil
}

// parseSearchKey parses a single search-key. depth bounds the nesting
// of parenthesised lists, OR and NOT; adversarial input deeper than
// the bound fails rather than exhausting the stack.
func parseSearchKey(c *cursor, depth int) (imap.SearchKey, error) {
	if depth < 0 {
		return nil, errRecursionLimitExceeded(c.pos)
	}
	b, ok := c.peekByte()
	if !ok {
		return nil, Incomplete
	}
	if b == '(' {
		c.advance(1)
		var keys []imap.SearchKey
		for {
			key, err := parseSearchKey(c, depth-1)
			if err != nil {
				return nil, err
			}
			keys = append(keys, key)
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
				break
			}
			return nil, errExpected("')' or SP", c.pos)
		}
		and, err := imap.NewSearchKeyAnd(keys)
		if err != nil {
			return nil, err
		}
		return and, nil
	}
	if b == '*' || isDigit(b) {
		set, err := parseSequenceSet(c)
		if err != nil {
			return nil, err
		}
		return imap.SearchKeySequenceSet{Set: set}, nil
	}

	start := c.pos
	word, err := c.takeWhile1(func(b byte) bool {
		return b != ' ' && b != '(' && b != ')' && b != '\r'
	}, "search-key")
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(word) {
	case "ALL":
		return imap.SearchKeyAll{}, nil
	case "ANSWERED":
		return imap.SearchKeyAnswered{}, nil
	case "DELETED":
		return imap.SearchKeyDeleted{}, nil
	case "DRAFT":
		return imap.SearchKeyDraft{}, nil
	case "FLAGGED":
		return imap.SearchKeyFlagged{}, nil
	case "NEW":
		return imap.SearchKeyNew{}, nil
	case "OLD":
		return imap.SearchKeyOld{}, nil
	case "RECENT":
		return imap.SearchKeyRecent{}, nil
	case "SEEN":
		return imap.SearchKeySeen{}, nil
	case "UNANSWERED":
		return imap.SearchKeyUnanswered{}, nil
	case "UNDELETED":
		return imap.SearchKeyUndeleted{}, nil
	case "UNDRAFT":
		return imap.SearchKeyUndraft{}, nil
	case "UNFLAGGED":
		return imap.SearchKeyUnflagged{}, nil
	case "UNSEEN":
		return imap.SearchKeyUnseen{}, nil

	case "BCC":
		v, err := parseSearchAString(c)
		return imap.SearchKeyBcc{Value: v}, err
	case "BODY":
		v, err := parseSearchAString(c)
		return imap.SearchKeyBody{Value: v}, err
	case "CC":
		v, err := parseSearchAString(c)
		return imap.SearchKeyCc{Value: v}, err
	case "FROM":
		v, err := parseSearchAString(c)
		return imap.SearchKeyFrom{Value: v}, err
	case "SUBJECT":
		v, err := parseSearchAString(c)
		return imap.SearchKeySubject{Value: v}, err
	case "TEXT":
		v, err := parseSearchAString(c)
		return imap.SearchKeyText{Value: v}, err
	case "TO":
		v, err := parseSearchAString(c)
		return imap.SearchKeyTo{Value: v}, err

	case "KEYWORD":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		a, err := parseAtom(c)
		if err != nil {
			return nil, err
		}
		return imap.SearchKeyKeyword{Flag: a.String()}, nil
	case "UNKEYWORD":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		a, err := parseAtom(c)
		if err != nil {
			return nil, err
		}
		return imap.SearchKeyUnkeyword{Flag: a.String()}, nil

	case "HEADER":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		field, err := parseSearchAString(c)
		if err != nil {
			return nil, err
		}
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		value, err := parseSearchAString(c)
		if err != nil {
			return nil, err
		}
		return imap.SearchKeyHeader{Field: field, Value: value}, nil

	case "BEFORE":
		d, err := parseSearchDate(c)
		return imap.SearchKeyBefore{Date: d}, err
	case "ON":
		d, err := parseSearchDate(c)
		return imap.SearchKeyOn{Date: d}, err
	case "SINCE":
		d, err := parseSearchDate(c)
		return imap.SearchKeySince{Date: d}, err
	case "SENTBEFORE":
		d, err := parseSearchDate(c)
		return imap.SearchKeySentBefore{Date: d}, err
	case "SENTON":
		d, err := parseSearchDate(c)
		return imap.SearchKeySentOn{Date: d}, err
	case "SENTSINCE":
		d, err := parseSearchDate(c)
		return imap.SearchKeySentSince{Date: d}, err

	case "LARGER":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		n, err := parseNumber(c)
		return imap.SearchKeyLarger{Size: n}, err
	case "SMALLER":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		n, err := parseNumber(c)
		return imap.SearchKeySmaller{Size: n}, err

	case "UID":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		set, err := parseSequenceSet(c)
		if err != nil {
			return nil, err
		}
		return imap.SearchKeyUID{Set: set}, nil

	case "NOT":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		inner, err := parseSearchKey(c, depth-1)
		if err != nil {
			return nil, err
		}
		return imap.SearchKeyNot{Key: inner}, nil

	case "OR":
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		left, err := parseSearchKey(c, depth-1)
		if err != nil {
			return nil, err
		}
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		right, err := parseSearchKey(c, depth-1)
		if err != nil {
			return nil, err
		}
		return imap.SearchKeyOr{Left: left, Right: right}, nil
	}
	return nil, errExpected("search-key", start)
}

// parseSearchAString parses the SP-prefixed astring argument of a
// text-matching key, returning its decoded content.
func parseSearchAString(c *cursor) (string, error) {
	if err := c.expectSP(); err != nil {
		return "", err
	}
	a, err := parseAString(c)
	if err != nil {
		return "", err
	}
	return string(a.Bytes()), nil
}

// parseSearchDate parses the SP-prefixed date argument of a date key.
// The grammar permits the date to be enclosed in double quotes.
func parseSearchDate(c *cursor) (t time.Time, err error) {
	if err := c.expectSP(); err != nil {
		return t, err
	}
	quoted := false
	if b, ok := c.peekByte(); ok && b == '"' {
		quoted = true
		c.advance(1)
	}
	t, err = parseDate(c)
	if err != nil {
		return t, err
	}
	if quoted {
		if err := c.expectByte('"'); err != nil {
			return t, err
		}
	}
	return t, nil
}
